package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=1h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Bootstrap BootstrapConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=imoveis_api"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// BootstrapConfig controls the one-shot startup seeding. The default admin is
// only created when no admin exists; sample data is only installed when
// explicitly requested and the listings collection is empty.
type BootstrapConfig struct {
	AdminName         string `env:"ADMIN_NAME,          default=Admin"`
	AdminEmail        string `env:"ADMIN_EMAIL,         default=admin@example.com"`
	AdminPassword     string `env:"ADMIN_PASSWORD,      required"`
	InstallSampleData bool   `env:"INSTALL_SAMPLE_DATA, default=false"`
}

// Load reads configuration from environment variables using go-envconfig.
// Secrets are never defaulted: a missing JWT_SECRET or ADMIN_PASSWORD is a
// startup error, not a silently embedded credential.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
