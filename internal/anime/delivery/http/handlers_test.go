package http

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"anime-catalog/config"
	"anime-catalog/internal/anime"
	"anime-catalog/internal/middleware"
	"anime-catalog/internal/model"
	"anime-catalog/internal/user"
	"anime-catalog/pkg/response"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// adminUsers authenticates every Basic request as an admin.
type adminUsers struct{}

func (adminUsers) Authenticate(ctx context.Context, username, password string) (model.Scope, error) {
	return model.Scope{Username: username, Roles: []string{model.RoleAdmin, model.RoleUser}}, nil
}
func (adminUsers) Login(ctx context.Context, input user.LoginInput) (user.Token, error) {
	return user.Token{}, nil
}
func (adminUsers) Verify(ctx context.Context, token string) (model.Scope, error) {
	return model.Scope{}, user.ErrInvalidToken
}

// mockUseCase records the last input of each call.
type mockUseCase struct {
	err error

	listIn    anime.ListAnimesInput
	findName  string
	created   []anime.CreateAnimeInput
	replaced  anime.UpdateAnimeInput
	deletedID int64
	refs      []anime.IDRef
	calls     int
}

func (m *mockUseCase) List(ctx context.Context, input anime.ListAnimesInput) (anime.ListAnimesOutput, error) {
	m.calls++
	m.listIn = input
	return anime.ListAnimesOutput{
		Animes: []anime.Anime{{ID: 1, Name: "Naruto"}},
		Total:  11,
		Page:   input.Page,
		Size:   input.Size,
	}, m.err
}

func (m *mockUseCase) ListAll(ctx context.Context) ([]anime.Anime, error) {
	m.calls++
	return []anime.Anime{}, m.err
}

func (m *mockUseCase) FindByName(ctx context.Context, name string) ([]anime.Anime, error) {
	m.calls++
	m.findName = name
	return []anime.Anime{{ID: 2, Name: name}}, m.err
}

func (m *mockUseCase) Detail(ctx context.Context, id int64) (anime.Anime, error) {
	m.calls++
	if m.err != nil {
		return anime.Anime{}, m.err
	}
	return anime.Anime{ID: id, Name: "Bleach"}, nil
}

func (m *mockUseCase) Create(ctx context.Context, input anime.CreateAnimeInput) (anime.Anime, error) {
	m.calls++
	m.created = []anime.CreateAnimeInput{input}
	return anime.Anime{ID: 10, Name: input.Name}, m.err
}

func (m *mockUseCase) CreateMany(ctx context.Context, inputs []anime.CreateAnimeInput) ([]anime.Anime, error) {
	m.calls++
	m.created = inputs
	out := make([]anime.Anime, len(inputs))
	for i, in := range inputs {
		out[i] = anime.Anime{ID: int64(i + 1), Name: in.Name}
	}
	return out, m.err
}

func (m *mockUseCase) Replace(ctx context.Context, input anime.UpdateAnimeInput) error {
	m.calls++
	m.replaced = input
	return m.err
}

func (m *mockUseCase) Delete(ctx context.Context, id int64) error {
	m.calls++
	m.deletedID = id
	return m.err
}

func (m *mockUseCase) DeleteMany(ctx context.Context, refs []anime.IDRef) error {
	m.calls++
	m.refs = refs
	return m.err
}

func newRouter(uc anime.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(&mockLogger{}, adminUsers{}, config.AuthConfig{Realm: "test"}, config.AccessConfig{}, config.HTTPServerConfig{})
	h := New(&mockLogger{}, uc, PageConfig{DefaultPage: 0, DefaultSize: 5, MaxSize: 20})
	RegisterRoutes(&r.RouterGroup, h, mw)
	return r
}

func call(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth("albert", "1234")
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestList(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
		wantSort []anime.Sort
	}{
		{"defaults", "", 0, 5, nil},
		{"explicit", "?page=2&size=3", 2, 3, nil},
		{"invalid falls back", "?page=-1&size=abc", 0, 5, nil},
		{"size capped", "?size=5000", 0, 20, nil},
		{"sort", "?sort=name,DESC&sort=rating&sort=id", 0, 5, []anime.Sort{{Field: anime.SortByName, Desc: true}, {Field: anime.SortByID}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			w := call(newRouter(uc), http.MethodGet, "/animes"+tt.query, "")
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
			}
			if uc.listIn.Page != tt.wantPage || uc.listIn.Size != tt.wantSize {
				t.Errorf("input = %+v", uc.listIn)
			}
			if len(uc.listIn.Sort) != len(tt.wantSort) {
				t.Fatalf("sort = %+v, want %+v", uc.listIn.Sort, tt.wantSort)
			}
			for i := range tt.wantSort {
				if uc.listIn.Sort[i] != tt.wantSort[i] {
					t.Errorf("sort[%d] = %+v, want %+v", i, uc.listIn.Sort[i], tt.wantSort[i])
				}
			}
		})
	}

	t.Run("page body", func(t *testing.T) {
		w := call(newRouter(&mockUseCase{}), http.MethodGet, "/animes?page=1&size=5", "")
		var got pageResp
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.TotalElements != 11 || got.TotalPages != 3 || got.Offset != 5 || got.First || got.Last || got.NumberOfElements != 1 {
			t.Errorf("page = %+v", got)
		}
	})

	t.Run("huge page stays past the end", func(t *testing.T) {
		for _, page := range []string{"3689348814741910324", "9223372036854775807"} {
			uc := &mockUseCase{}
			w := call(newRouter(uc), http.MethodGet, "/animes?page="+page+"&size=5", "")
			if w.Code != http.StatusOK {
				t.Fatalf("page %s: status = %d", page, w.Code)
			}
			if uc.listIn.Page != math.MaxInt/5-1 {
				t.Errorf("page %s: input page = %d", page, uc.listIn.Page)
			}
			var got pageResp
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Offset < 0 || got.Offset%5 != 0 || !got.Last || got.First {
				t.Errorf("page %s: page = %+v", page, got)
			}
		}
	})
}

func TestDetail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		w := call(newRouter(&mockUseCase{}), http.MethodGet, "/animes/1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"name":"Bleach"`) {
			t.Errorf("body = %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		w := call(newRouter(&mockUseCase{err: anime.ErrAnimeNotFound}), http.MethodGet, "/animes/99", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Title != "Not Found Exception" || body.Details != "Anime not found" || body.DeveloperMessage != "Check the documentation." {
			t.Errorf("body = %+v", body)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		uc := &mockUseCase{}
		w := call(newRouter(uc), http.MethodGet, "/animes/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
		if body := decodeError(t, w); body.Title != "Response Status Exception" {
			t.Errorf("title = %q", body.Title)
		}
		if uc.calls != 0 {
			t.Error("usecase must not be called")
		}
	})

	t.Run("admin variant", func(t *testing.T) {
		w := call(newRouter(&mockUseCase{}), http.MethodGet, "/animes/admin/by-id-user-details/4", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"id":4`) {
			t.Errorf("status = %d, body = %s", w.Code, w.Body.String())
		}
	})
}

func TestFindByName(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	w := call(r, http.MethodGet, "/animes/find?name=Dragon", "")
	if w.Code != http.StatusOK || uc.findName != "Dragon" {
		t.Fatalf("status = %d, name = %q", w.Code, uc.findName)
	}

	w = call(r, http.MethodGet, "/animes/find", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing name: status = %d", w.Code)
	}
	if body := decodeError(t, w); !strings.Contains(body.Details, "name") {
		t.Errorf("details = %q", body.Details)
	}
}

func TestCreate(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		w := call(newRouter(&mockUseCase{}), http.MethodPost, "/animes/admin", `{"name":"Monster"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if w.Body.String() != `{"id":10,"name":"Monster"}` {
			t.Errorf("body = %s", w.Body.String())
		}
	})

	t.Run("empty name", func(t *testing.T) {
		uc := &mockUseCase{}
		w := call(newRouter(uc), http.MethodPost, "/animes/admin", `{"name":""}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Title != "Method Argument Not Valid Exception" || body.Fields != "name" || body.FieldsErrors != "The name must not be empty" {
			t.Errorf("body = %+v", body)
		}
		if uc.calls != 0 {
			t.Error("usecase must not be called")
		}
	})

	t.Run("unreadable body", func(t *testing.T) {
		w := call(newRouter(&mockUseCase{}), http.MethodPost, "/animes/admin", `{"name":`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
		if body := decodeError(t, w); body.Title != "Internal Server Error" {
			t.Errorf("title = %q", body.Title)
		}
	})
}

func TestCreateMany(t *testing.T) {
	t.Run("all valid", func(t *testing.T) {
		uc := &mockUseCase{}
		w := call(newRouter(uc), http.MethodPost, "/animes/admin/save-many", `[{"name":"A"},{"name":"B"}]`)
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d", w.Code)
		}
		if len(uc.created) != 2 || uc.created[1].Name != "B" {
			t.Errorf("created = %+v", uc.created)
		}
	})

	t.Run("invalid element is indexed", func(t *testing.T) {
		uc := &mockUseCase{}
		w := call(newRouter(uc), http.MethodPost, "/animes/admin/save-many", `[{"name":"A"},{"name":""},{}]`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Fields != "[1].name, [2].name" {
			t.Errorf("fields = %q", body.Fields)
		}
		if uc.calls != 0 {
			t.Error("nothing may be created")
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		uc := &mockUseCase{}
		w := call(newRouter(uc), http.MethodPost, "/animes/admin/save-many", `{"name":"A"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
		if body := decodeError(t, w); body.Title != "Internal Server Error" {
			t.Errorf("body = %+v", body)
		}
		if uc.calls != 0 {
			t.Error("nothing may be created")
		}
	})
}

func TestCreateManyUsesGinDecoder(t *testing.T) {
	binding.EnableDecoderDisallowUnknownFields = true
	defer func() { binding.EnableDecoderDisallowUnknownFields = false }()

	uc := &mockUseCase{}
	w := call(newRouter(uc), http.MethodPost, "/animes/admin/save-many", `[{"name":"A","rating":9}]`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if uc.calls != 0 {
		t.Error("usecase must not be called")
	}
}

func TestReplace(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantFields string
		wantErrors string
	}{
		{"ok", `{"id":3,"name":"X"}`, nil, http.StatusNoContent, "", ""},
		{"missing id", `{"name":"X"}`, nil, http.StatusBadRequest, "id", "The id must not be null"},
		{"zero id", `{"id":0,"name":"X"}`, nil, http.StatusBadRequest, "id", "The id must be positive"},
		{"not found", `{"id":3,"name":"X"}`, anime.ErrAnimeNotFound, http.StatusNotFound, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{err: tt.err}
			w := call(newRouter(uc), http.MethodPut, "/animes/admin", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
			}
			if tt.wantFields != "" {
				body := decodeError(t, w)
				if body.Fields != tt.wantFields || body.FieldsErrors != tt.wantErrors {
					t.Errorf("body = %+v", body)
				}
			}
			if tt.wantStatus == http.StatusNoContent && (uc.replaced.ID != 3 || uc.replaced.Name != "X") {
				t.Errorf("replaced = %+v", uc.replaced)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	uc := &mockUseCase{}
	w := call(newRouter(uc), http.MethodDelete, "/animes/admin/7", "")
	if w.Code != http.StatusNoContent || uc.deletedID != 7 {
		t.Fatalf("status = %d, id = %d", w.Code, uc.deletedID)
	}

	w = call(newRouter(&mockUseCase{err: anime.ErrAnimeNotFound}), http.MethodDelete, "/animes/admin/7", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d", w.Code)
	}
}

func TestDeleteMany(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantIDs    []int64
	}{
		{"array form", `[{"id":1},{"id":2}]`, http.StatusNoContent, []int64{1, 2}},
		{"object form", `{"ids":[3,4]}`, http.StatusNoContent, []int64{3, 4}},
		{"malformed", `[{"id":"x"}]`, http.StatusBadRequest, nil},
		{"empty body", ``, http.StatusBadRequest, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			w := call(newRouter(uc), http.MethodDelete, "/animes/admin/delete-many", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d", w.Code)
			}
			if len(uc.refs) != len(tt.wantIDs) {
				t.Fatalf("refs = %+v", uc.refs)
			}
			for i, id := range tt.wantIDs {
				if uc.refs[i].ID != id {
					t.Errorf("refs[%d] = %d, want %d", i, uc.refs[i].ID, id)
				}
			}
		})
	}
}

func TestStoreFailureIs500(t *testing.T) {
	w := call(newRouter(&mockUseCase{err: errors.New("db down")}), http.MethodGet, "/animes/all", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if body := decodeError(t, w); body.Title != "Internal Server Error" || body.Details != "db down" {
		t.Errorf("body = %+v", body)
	}
}
