package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpapi "github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/assets"
	authhttp "github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/http"
	authmw "github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/middleware"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/service"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/contact"
	contacthttp "github.com/GoSim-25-26J-441/portfolio-backend/internal/contact/http"
	contenthttp "github.com/GoSim-25-26J-441/portfolio-backend/internal/content/http"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/repository"
)

type RouterDeps struct {
	ServiceName string
	Version     string

	AllowedOrigins   []string
	TrustedProxies   []string
	SecureCookie     bool
	ContactPerMinute int
	LoginPerMinute   int

	Log         *zap.Logger
	Projects    *repository.ProjectRepository
	Experiences *repository.ExperienceRepository
	Sessions    *service.SessionService
	Uploader    assets.Uploader
	Sender      contact.Sender

	StorePing   httpapi.Pinger
	SessionPing httpapi.Pinger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	if dep.Log == nil {
		dep.Log = zap.NewNop()
	}

	r := gin.New()
	// ClientIP only follows X-Forwarded-For from these peers; with none
	// configured the rate limiters key on the socket address.
	if err := r.SetTrustedProxies(dep.TrustedProxies); err != nil {
		dep.Log.Warn("invalid TRUSTED_PROXIES, trusting none", zap.Strings("proxies", dep.TrustedProxies), zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Log))
	if len(dep.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     dep.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.StorePing, dep.SessionPing)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")

	content := contenthttp.New(dep.Projects, dep.Experiences, dep.Uploader, dep.Log)
	content.RegisterPublic(api)

	contactLimit := middleware.NewRateLimiter(dep.ContactPerMinute)
	contacthttp.New(dep.Sender, dep.Log).Register(api, contactLimit.Middleware())

	loginLimit := middleware.NewRateLimiter(dep.LoginPerMinute)
	authhttp.New(dep.Sessions, dep.SecureCookie).Register(api.Group("/auth"), loginLimit.Middleware())

	admin := api.Group("/admin")
	admin.Use(authmw.RequireSession(dep.Sessions, dep.Log))
	content.RegisterAdmin(admin)

	return r
}
