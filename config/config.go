package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreFirestore = "firestore"
	StorePostgres  = "postgres"
	StoreMemory    = "memory"

	AuthFirebase = "firebase"
	AuthStatic   = "static"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Firebase FirebaseConfig
	Auth     AuthConfig
	Redis    RedisConfig
	S3       S3Config
	EmailJS  EmailJSConfig
	Limits   LimitsConfig
	App      AppConfig
}

type ServerConfig struct {
	Port            string
	AllowedOrigins  []string
	TrustedProxies  []string
	ShutdownTimeout time.Duration
}

type StoreConfig struct {
	Driver string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type FirebaseConfig struct {
	CredentialsPath string
	ProjectID       string
	APIKey          string
}

type AuthConfig struct {
	Provider          string
	AdminEmail        string
	AdminPasswordHash string
	SessionTTL        time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type S3Config struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

type EmailJSConfig struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string
}

type LimitsConfig struct {
	ContactPerMinute int
	LoginPerMinute   int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := FromViper(newViper())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("TRUSTED_PROXIES", "")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("STORE_DRIVER", StoreFirestore)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "portfolio")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("AUTH_PROVIDER", AuthFirebase)
	v.SetDefault("SESSION_TTL", "1h")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("EMAILJS_ENDPOINT", "https://api.emailjs.com/api/v1.0/email/send")
	v.SetDefault("CONTACT_RATE_PER_MINUTE", 5)
	v.SetDefault("LOGIN_RATE_PER_MINUTE", 10)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_VERSION", "1.0.0")

	return v
}

// FromViper maps a populated viper instance onto Config without validating it.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Port:            v.GetString("PORT"),
			AllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			TrustedProxies:  splitList(v.GetString("TRUSTED_PROXIES")),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Firebase: FirebaseConfig{
			CredentialsPath: v.GetString("FIREBASE_CREDENTIALS_PATH"),
			ProjectID:       v.GetString("FIREBASE_PROJECT_ID"),
			APIKey:          v.GetString("FIREBASE_API_KEY"),
		},
		Auth: AuthConfig{
			Provider:          strings.ToLower(strings.TrimSpace(v.GetString("AUTH_PROVIDER"))),
			AdminEmail:        strings.TrimSpace(v.GetString("ADMIN_EMAIL")),
			AdminPasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
			SessionTTL:        v.GetDuration("SESSION_TTL"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		S3: S3Config{
			Bucket:          v.GetString("AWS_BUCKET_NAME"),
			Region:          v.GetString("AWS_REGION"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		},
		EmailJS: EmailJSConfig{
			Endpoint:   v.GetString("EMAILJS_ENDPOINT"),
			ServiceID:  v.GetString("EMAILJS_SERVICE_ID"),
			TemplateID: v.GetString("EMAILJS_TEMPLATE_ID"),
			PublicKey:  v.GetString("EMAILJS_PUBLIC_KEY"),
			PrivateKey: v.GetString("EMAILJS_PRIVATE_KEY"),
		},
		Limits: LimitsConfig{
			ContactPerMinute: v.GetInt("CONTACT_RATE_PER_MINUTE"),
			LoginPerMinute:   v.GetInt("LOGIN_RATE_PER_MINUTE"),
		},
		App: AppConfig{
			Environment: v.GetString("APP_ENV"),
			LogLevel:    v.GetString("LOG_LEVEL"),
			Version:     v.GetString("APP_VERSION"),
		},
	}
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Store.Driver {
	case StoreFirestore:
		if c.Firebase.CredentialsPath == "" {
			return fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required for the firestore store")
		}
	case StorePostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}

	if c.Auth.AdminEmail == "" {
		return fmt.Errorf("ADMIN_EMAIL is required")
	}
	switch c.Auth.Provider {
	case AuthFirebase:
		if c.Firebase.APIKey == "" {
			return fmt.Errorf("FIREBASE_API_KEY is required for firebase auth")
		}
		if c.Firebase.CredentialsPath == "" {
			return fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required for firebase auth")
		}
	case AuthStatic:
		if c.Auth.AdminPasswordHash == "" {
			return fmt.Errorf("ADMIN_PASSWORD_HASH is required for static auth")
		}
	default:
		return fmt.Errorf("unknown AUTH_PROVIDER %q", c.Auth.Provider)
	}

	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	return nil
}

// UploadsEnabled reports whether S3 settings are complete.
func (c *Config) UploadsEnabled() bool {
	return c.S3.Bucket != "" && c.S3.Region != ""
}

// ContactEnabled reports whether EmailJS identifiers are complete.
func (c *Config) ContactEnabled() bool {
	return c.EmailJS.ServiceID != "" && c.EmailJS.TemplateID != "" && c.EmailJS.PublicKey != ""
}

func splitList(raw string) []string {
	out := make([]string, 0, 4)
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
