package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/repository"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/service"
)

type oneAccount struct{}

func (oneAccount) Authenticate(_ context.Context, email, password string) (*domain.Identity, error) {
	if email == "admin@example.com" && password == "pw" {
		return &domain.Identity{UID: "admin", Email: email}, nil
	}
	return nil, domain.ErrInvalidCredentials
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewSessionService(oneAccount{}, repository.NewMemorySessions(), time.Hour, nil)
	r := gin.New()
	New(svc, false).Register(r.Group("/auth"))
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	r := setupRouter()

	tests := []struct {
		name string
		body string
		code int
	}{
		{"wrong password", `{"email":"admin@example.com","password":"nope"}`, http.StatusUnauthorized},
		{"unknown email", `{"email":"ghost@example.com","password":"pw"}`, http.StatusUnauthorized},
		{"missing fields", `{"email":"admin@example.com"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/auth/login", tt.body)
			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), domain.LoginFailedMessage)
			assert.Empty(t, w.Result().Cookies())
		})
	}

	t.Run("success sets the session cookie", func(t *testing.T) {
		w := postJSON(r, "/auth/login", `{"email":"admin@example.com","password":"pw"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"redirect":"/admin/dashboard"`)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, auth.CookieName, cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)

		req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
		req.AddCookie(cookies[0])
		sw := httptest.NewRecorder()
		r.ServeHTTP(sw, req)
		assert.Equal(t, http.StatusOK, sw.Code)
		assert.Contains(t, sw.Body.String(), `"email":"admin@example.com"`)

		logoutReq := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		logoutReq.AddCookie(cookies[0])
		lw := httptest.NewRecorder()
		r.ServeHTTP(lw, logoutReq)
		assert.Equal(t, http.StatusOK, lw.Code)

		again := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
		again.AddCookie(cookies[0])
		aw := httptest.NewRecorder()
		r.ServeHTTP(aw, again)
		assert.Equal(t, http.StatusUnauthorized, aw.Code)
	})
}
