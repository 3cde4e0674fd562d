package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

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

type mockUseCase struct {
	token user.Token
	err   error
}

func (m *mockUseCase) Authenticate(ctx context.Context, username, password string) (model.Scope, error) {
	return model.Scope{}, m.err
}

func (m *mockUseCase) Login(ctx context.Context, input user.LoginInput) (user.Token, error) {
	return m.token, m.err
}

func (m *mockUseCase) Verify(ctx context.Context, token string) (model.Scope, error) {
	return model.Scope{}, m.err
}

func newRouter(uc user.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(&r.RouterGroup, New(&mockLogger{}, uc))
	return r
}

func post(r http.Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	t.Run("returns token", func(t *testing.T) {
		exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		r := newRouter(&mockUseCase{token: user.Token{AccessToken: "abc", TokenType: "Bearer", ExpiresAt: exp}})

		w := post(r, `{"username":"albert","password":"1234"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		var got tokenResp
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.AccessToken != "abc" || got.TokenType != "Bearer" || !got.ExpiresAt.Equal(exp) {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		r := newRouter(&mockUseCase{err: user.ErrInvalidCredentials})

		w := post(r, `{"username":"albert","password":"nope"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d", w.Code)
		}
		var body response.ErrorBody
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Details != "Bad credentials" {
			t.Errorf("details = %q", body.Details)
		}
	})

	t.Run("missing password", func(t *testing.T) {
		r := newRouter(&mockUseCase{})

		w := post(r, `{"username":"albert"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
		var body response.ErrorBody
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Fields != "password" || body.FieldsErrors != "The password must not be empty" {
			t.Errorf("body = %+v", body)
		}
	})

	t.Run("store failure is 500", func(t *testing.T) {
		r := newRouter(&mockUseCase{err: errors.New("db down")})

		w := post(r, `{"username":"albert","password":"1234"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d", w.Code)
		}
	})
}
