package anime

import "math"

// --- Anime Domain Model ---

// Anime is the catalog entity. ID is zero until the store assigns one.
type Anime struct {
	ID   int64
	Name string
}

// IDRef references an Anime by id in bulk requests.
type IDRef struct {
	ID int64
}

// --- UseCase Inputs ---

type CreateAnimeInput struct {
	Name string
}

type UpdateAnimeInput struct {
	ID   int64
	Name string
}

// SortField names a column the catalog can be ordered by.
type SortField string

const (
	SortByID   SortField = "id"
	SortByName SortField = "name"
)

// Sort is one ordering clause.
type Sort struct {
	Field SortField
	Desc  bool
}

// DefaultPageSize applies when a caller asks for a non-positive page size.
const DefaultPageSize = 5

// MaxPage is the last page index whose offset still fits in an int for size.
func MaxPage(size int) int {
	if size <= 0 {
		return 0
	}
	return math.MaxInt/size - 1
}

type ListAnimesInput struct {
	Page int
	Size int
	Sort []Sort
}

// --- UseCase Outputs ---

type ListAnimesOutput struct {
	Animes []Anime
	Total  int64
	Page   int
	Size   int
}

// Offset is the index of the first element of the page.
func (o ListAnimesOutput) Offset() int {
	return o.Page * o.Size
}

// TotalPages is the number of pages of Size needed to hold Total.
func (o ListAnimesOutput) TotalPages() int {
	if o.Size <= 0 {
		return 1
	}
	return int((o.Total + int64(o.Size) - 1) / int64(o.Size))
}
