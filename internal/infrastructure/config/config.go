package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string        `env:"PORT,        default=8080"`
	Env        string        `env:"ENV,         default=development"`
	BaseURL    string        `env:"BASE_URL,    default=http://localhost:8080"`
	JWTSecret  string        `env:"JWT_SECRET"`
	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`

	Mongo MongoConfig
	Redis RedisConfig
	SMTP  SMTPConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=accounts"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// SMTPConfig configures outbound mail. Mail is disabled when Host, User, or
// Password is left empty.
type SMTPConfig struct {
	Host        string `env:"SMTP_HOST"`
	User        string `env:"SMTP_USER"`
	Password    string `env:"SMTP_PASSWORD"`
	FromAddress string `env:"SMTP_FROM, default=Accounts <noreply@localhost>"`
	SkipVerify  bool   `env:"SMTP_SKIP_VERIFY, default=false"`
	Workers     int    `env:"SMTP_WORKERS, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
