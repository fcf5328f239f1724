package bootstrap

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/assets"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/provider"
	authrepo "github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/repository"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/service"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/contact"
	contentrepo "github.com/GoSim-25-26J-441/portfolio-backend/internal/content/repository"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/store"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logging"
)

const ServiceName = "portfolio-backend"

// BuildContainer registers every provider. Nothing is constructed until it
// is first invoked, so a memory/static setup never dials Firebase or Redis.
func BuildContainer(cfg *config.Config) *do.Injector {
	inj := do.New()

	// config
	do.ProvideValue(inj, cfg)

	// closers
	do.ProvideValue(inj, &Closers{})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logging.New(cfg.App.Environment, cfg.App.LogLevel)
	})

	// Firebase app, shared by Firestore and the auth client
	do.Provide(inj, func(i *do.Injector) (*firebase.App, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return auth.InitializeFirebase(context.Background(), &cfg.Firebase)
	})

	// document store
	do.Provide(inj, func(i *do.Injector) (store.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		closers := do.MustInvoke[*Closers](i)
		log := do.MustInvoke[*zap.Logger](i)
		ctx := context.Background()

		switch cfg.Store.Driver {
		case config.StoreFirestore:
			app := do.MustInvoke[*firebase.App](i)
			client, err := app.Firestore(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to get Firestore client: %w", err)
			}
			closers.Add("firestore", client.Close)
			log.Info("content store ready", zap.String("driver", cfg.Store.Driver))
			return store.NewFirestoreStore(client), nil

		case config.StorePostgres:
			db, err := OpenDB(ctx, DBOptions{DSN: cfg.Database.DSN()})
			if err != nil {
				return nil, err
			}
			closers.Add("postgres", db.Close)
			s := store.NewPostgresStore(db)
			if err := s.EnsureSchema(ctx); err != nil {
				return nil, err
			}
			log.Info("content store ready", zap.String("driver", cfg.Store.Driver))
			return s, nil

		case config.StoreMemory:
			log.Warn("content store is in-memory; data is lost on restart")
			return store.NewMemoryStore(), nil
		}
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	})

	// content repositories
	do.Provide(inj, func(i *do.Injector) (*contentrepo.ProjectRepository, error) {
		return contentrepo.NewProjectRepository(do.MustInvoke[store.Store](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*contentrepo.ExperienceRepository, error) {
		return contentrepo.NewExperienceRepository(do.MustInvoke[store.Store](i)), nil
	})

	// Redis, nil when REDIS_ADDR is unset
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.Redis.Addr == "" {
			return nil, nil
		}
		rdb, err := OpenRedis(context.Background(), cfg.Redis)
		if err != nil {
			return nil, err
		}
		do.MustInvoke[*Closers](i).Add("redis", rdb.Close)
		return rdb, nil
	})

	// session repository
	do.Provide(inj, func(i *do.Injector) (authrepo.SessionRepository, error) {
		if rdb := do.MustInvoke[*redis.Client](i); rdb != nil {
			return authrepo.NewRedisSessions(rdb), nil
		}
		return authrepo.NewMemorySessions(), nil
	})

	// credential check
	do.Provide(inj, func(i *do.Injector) (service.Authenticator, error) {
		cfg := do.MustInvoke[*config.Config](i)
		switch cfg.Auth.Provider {
		case config.AuthFirebase:
			app := do.MustInvoke[*firebase.App](i)
			client, err := auth.AuthClient(context.Background(), app)
			if err != nil {
				return nil, err
			}
			return provider.NewFirebasePassword(cfg.Firebase.APIKey, cfg.Auth.AdminEmail, client), nil
		case config.AuthStatic:
			return provider.NewStatic(cfg.Auth.AdminEmail, cfg.Auth.AdminPasswordHash), nil
		}
		return nil, fmt.Errorf("unknown AUTH_PROVIDER %q", cfg.Auth.Provider)
	})

	// session service
	do.Provide(inj, func(i *do.Injector) (*service.SessionService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewSessionService(
			do.MustInvoke[service.Authenticator](i),
			do.MustInvoke[authrepo.SessionRepository](i),
			cfg.Auth.SessionTTL,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// S3 uploads, nil when the bucket is not configured
	do.Provide(inj, func(i *do.Injector) (assets.Uploader, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		if !cfg.UploadsEnabled() {
			log.Warn("asset uploads disabled; AWS_BUCKET_NAME or AWS_REGION missing")
			return nil, nil
		}
		client, err := assets.NewS3Client(context.Background(), assets.S3Options{
			Bucket:          cfg.S3.Bucket,
			Region:          cfg.S3.Region,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
		return assets.NewS3Uploader(client, cfg.S3.Bucket, cfg.S3.Region, log), nil
	})

	// EmailJS, nil when identifiers are missing
	do.Provide(inj, func(i *do.Injector) (contact.Sender, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.ContactEnabled() {
			do.MustInvoke[*zap.Logger](i).Warn("contact form disabled; EmailJS identifiers missing")
			return nil, nil
		}
		return contact.NewEmailJSClient(contact.EmailJSConfig{
			Endpoint:   cfg.EmailJS.Endpoint,
			ServiceID:  cfg.EmailJS.ServiceID,
			TemplateID: cfg.EmailJS.TemplateID,
			PublicKey:  cfg.EmailJS.PublicKey,
			PrivateKey: cfg.EmailJS.PrivateKey,
		}), nil
	})

	// router
	do.Provide(inj, func(i *do.Injector) (RouterDeps, error) {
		cfg := do.MustInvoke[*config.Config](i)
		s := do.MustInvoke[store.Store](i)

		dep := RouterDeps{
			ServiceName:      ServiceName,
			Version:          cfg.App.Version,
			AllowedOrigins:   cfg.Server.AllowedOrigins,
			TrustedProxies:   cfg.Server.TrustedProxies,
			SecureCookie:     cfg.App.Environment == "production",
			ContactPerMinute: cfg.Limits.ContactPerMinute,
			LoginPerMinute:   cfg.Limits.LoginPerMinute,
			Log:              do.MustInvoke[*zap.Logger](i),
			Projects:         do.MustInvoke[*contentrepo.ProjectRepository](i),
			Experiences:      do.MustInvoke[*contentrepo.ExperienceRepository](i),
			Sessions:         do.MustInvoke[*service.SessionService](i),
			Uploader:         do.MustInvoke[assets.Uploader](i),
			Sender:           do.MustInvoke[contact.Sender](i),
		}
		if p, ok := s.(store.Pinger); ok {
			dep.StorePing = p
		}
		if rdb := do.MustInvoke[*redis.Client](i); rdb != nil {
			dep.SessionPing = redisPinger{client: rdb}
		}
		return dep, nil
	})
	do.Provide(inj, func(i *do.Injector) (*gin.Engine, error) {
		return BuildRouter(do.MustInvoke[RouterDeps](i)), nil
	})

	return inj
}
