package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viperWith(values map[string]interface{}) *viper.Viper {
	v := newViper()
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg := FromViper(newViper())

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.AllowedOrigins)
	assert.Empty(t, cfg.Server.TrustedProxies)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, StoreFirestore, cfg.Store.Driver)
	assert.Equal(t, AuthFirebase, cfg.Auth.Provider)
	assert.Equal(t, time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "https://api.emailjs.com/api/v1.0/email/send", cfg.EmailJS.Endpoint)
	assert.Equal(t, 5, cfg.Limits.ContactPerMinute)
}

func TestFromViper_TrustedProxies(t *testing.T) {
	cfg := FromViper(viperWith(map[string]interface{}{
		"TRUSTED_PROXIES": "10.0.0.0/8, 192.168.1.10",
	}))
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.10"}, cfg.Server.TrustedProxies)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]interface{}
		wantErr string
	}{
		{
			name: "memory store with static auth",
			values: map[string]interface{}{
				"STORE_DRIVER":        "memory",
				"AUTH_PROVIDER":       "static",
				"ADMIN_EMAIL":         "admin@example.com",
				"ADMIN_PASSWORD_HASH": "$2a$10$hash",
			},
		},
		{
			name: "firestore requires credentials",
			values: map[string]interface{}{
				"STORE_DRIVER":  "firestore",
				"AUTH_PROVIDER": "static",
				"ADMIN_EMAIL":   "admin@example.com",
			},
			wantErr: "FIREBASE_CREDENTIALS_PATH",
		},
		{
			name: "unknown driver",
			values: map[string]interface{}{
				"STORE_DRIVER": "mongo",
				"ADMIN_EMAIL":  "admin@example.com",
			},
			wantErr: "unknown STORE_DRIVER",
		},
		{
			name: "admin email is required",
			values: map[string]interface{}{
				"STORE_DRIVER":        "memory",
				"AUTH_PROVIDER":       "static",
				"ADMIN_PASSWORD_HASH": "$2a$10$hash",
			},
			wantErr: "ADMIN_EMAIL",
		},
		{
			name: "firebase auth requires api key",
			values: map[string]interface{}{
				"STORE_DRIVER":              "memory",
				"AUTH_PROVIDER":             "firebase",
				"ADMIN_EMAIL":               "admin@example.com",
				"FIREBASE_CREDENTIALS_PATH": "/secrets/sa.json",
			},
			wantErr: "FIREBASE_API_KEY",
		},
		{
			name: "static auth requires hash",
			values: map[string]interface{}{
				"STORE_DRIVER":  "memory",
				"AUTH_PROVIDER": "static",
				"ADMIN_EMAIL":   "admin@example.com",
			},
			wantErr: "ADMIN_PASSWORD_HASH",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromViper(viperWith(tt.values)).Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", Name: "n", SSLMode: "require"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=n sslmode=require", d.DSN())
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b ,"))
	assert.Empty(t, splitList(""))
}
