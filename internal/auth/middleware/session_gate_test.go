package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
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

func setupGate(t *testing.T) (*gin.Engine, *service.SessionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.NewSessionService(oneAccount{}, repository.NewMemorySessions(), time.Hour, nil)
	r := gin.New()
	r.GET("/admin/dashboard", RequireSession(svc, nil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "uid": auth.AdminUID(c)})
	})
	return r, svc
}

func TestRequireSession(t *testing.T) {
	r, svc := setupGate(t)

	t.Run("api clients get 401 without a session", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("browsers are redirected to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, auth.LoginPath, w.Header().Get("Location"))
	})

	t.Run("allowed right after sign-in", func(t *testing.T) {
		session, err := svc.SignIn(context.Background(), "admin@example.com", "pw")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		req.Header.Set("Authorization", "Bearer "+session.Token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"uid":"admin"`)

		cookieReq := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		cookieReq.AddCookie(&http.Cookie{Name: auth.CookieName, Value: session.Token})
		w = httptest.NewRecorder()
		r.ServeHTTP(w, cookieReq)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown tokens are denied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		req.Header.Set("Authorization", "Bearer forged")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
