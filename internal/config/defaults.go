package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultHTTPAddress            = ":3000"
	DefaultDSN                    = "postgres://localhost:5432/blog?sslmode=disable"
	DefaultSessionCookieName      = "blog.sid"
	DefaultSessionTTL             = 14 * 24 * time.Hour
	DefaultRequestTimeout         = 30 * time.Second
	DefaultShutdownTimeout        = 10 * time.Second
	DefaultSessionCleanupInterval = time.Hour
	DefaultLogLevel               = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionCookieName: DefaultSessionCookieName,
			SessionTTL:        DefaultSessionTTL,
			PasswordHashCost:  bcrypt.DefaultCost,
			LogLevel:          DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Workers: Workers{
			SessionCleanupInterval: DefaultSessionCleanupInterval,
		},
	}
}
