package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all runtime settings. The JWT secret default is an insecure
// placeholder suitable only for local development.
type Config struct {
	Port        string        `env:"PORT,         default=8080"`
	Env         string        `env:"ENV,          default=development"`
	LogLevel    string        `env:"LOG_LEVEL,    default=info"`
	PingMessage string        `env:"PING_MESSAGE, default=pong"`
	JWTSecret   string        `env:"JWT_SECRET,   default=dev-secret-change-me"`
	TokenTTL    time.Duration `env:"JWT_TTL,      default=168h"`
	CORSOrigins []string      `env:"CORS_ORIGINS, default=http://localhost:5173,http://localhost:3000"`

	// StoreBackend selects the credential store: "memory" (default) or "mongo".
	StoreBackend  string `env:"STORE_BACKEND,   default=memory"`
	SeedDemoUsers bool   `env:"SEED_DEMO_USERS, default=true"`

	// Out-of-band admin provisioning. All three must be set for an admin
	// account to be created at startup.
	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// TokenRevocation enables the Redis-backed denylist consulted on verify
	// and fed by logout.
	TokenRevocation bool `env:"TOKEN_REVOCATION, default=false"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=dailydone"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
