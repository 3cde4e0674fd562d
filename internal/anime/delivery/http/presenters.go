package http

import (
	"bytes"
	"encoding/json"

	"anime-catalog/internal/anime"
	pkgErrors "anime-catalog/pkg/errors"
)

var validationMessages = pkgErrors.Messages{
	"name.required": "The name must not be empty",
	"id.required":   "The id must not be null",
	"id.gt":         "The id must be positive",
}

// --- Request DTOs ---

type createReq struct {
	Name string `json:"name" binding:"required"`
}

func (r createReq) toInput() anime.CreateAnimeInput {
	return anime.CreateAnimeInput{Name: r.Name}
}

type createManyReq []createReq

func (r createManyReq) toInput() []anime.CreateAnimeInput {
	out := make([]anime.CreateAnimeInput, len(r))
	for i, item := range r {
		out[i] = item.toInput()
	}
	return out
}

type replaceReq struct {
	ID   *int64 `json:"id"   binding:"required,gt=0"`
	Name string `json:"name" binding:"required"`
}

func (r replaceReq) toInput() anime.UpdateAnimeInput {
	return anime.UpdateAnimeInput{ID: *r.ID, Name: r.Name}
}

type idRef struct {
	ID int64 `json:"id"`
}

// deleteManyReq accepts `[{"id":1},...]` or `{"ids":[1,...]}`.
type deleteManyReq []idRef

func (r *deleteManyReq) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			IDs []int64 `json:"ids"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		refs := make(deleteManyReq, len(obj.IDs))
		for i, id := range obj.IDs {
			refs[i] = idRef{ID: id}
		}
		*r = refs
		return nil
	}

	var refs []idRef
	if err := json.Unmarshal(data, &refs); err != nil {
		return err
	}
	*r = refs
	return nil
}

func (r deleteManyReq) toInput() []anime.IDRef {
	out := make([]anime.IDRef, len(r))
	for i, ref := range r {
		out[i] = anime.IDRef{ID: ref.ID}
	}
	return out
}

type listReq struct {
	Page int
	Size int
	Sort []anime.Sort
}

func (r listReq) toInput() anime.ListAnimesInput {
	return anime.ListAnimesInput{Page: r.Page, Size: r.Size, Sort: r.Sort}
}

// --- Response DTOs ---

type animeResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newAnimeResp(a anime.Anime) animeResp {
	return animeResp{ID: a.ID, Name: a.Name}
}

func newAnimeResps(animes []anime.Anime) []animeResp {
	out := make([]animeResp, len(animes))
	for i, a := range animes {
		out[i] = newAnimeResp(a)
	}
	return out
}

type pageResp struct {
	Content          []animeResp `json:"content"`
	Page             int         `json:"page"`
	Size             int         `json:"size"`
	Offset           int         `json:"offset"`
	TotalElements    int64       `json:"totalElements"`
	TotalPages       int         `json:"totalPages"`
	NumberOfElements int         `json:"numberOfElements"`
	First            bool        `json:"first"`
	Last             bool        `json:"last"`
	Empty            bool        `json:"empty"`
}

func (h *handler) newPageResp(out anime.ListAnimesOutput) pageResp {
	totalPages := out.TotalPages()
	return pageResp{
		Content:          newAnimeResps(out.Animes),
		Page:             out.Page,
		Size:             out.Size,
		Offset:           out.Offset(),
		TotalElements:    out.Total,
		TotalPages:       totalPages,
		NumberOfElements: len(out.Animes),
		First:            out.Page == 0,
		Last:             out.Page >= totalPages-1,
		Empty:            len(out.Animes) == 0,
	}
}
