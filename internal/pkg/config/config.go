package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=7750"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo    MongoConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Upload   UploadConfig
	Geocoder GeocoderConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=bootcamp_directory"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type JWTConfig struct {
	Secret string `env:"JWT_SECRET"`
	// ExpireDays is the token validity window; CookieExpireDays controls the
	// token cookie's Expires attribute.
	ExpireDays       int `env:"JWT_EXPIRE_DAYS,        default=30"`
	CookieExpireDays int `env:"JWT_COOKIE_EXPIRE_DAYS, default=30"`
}

type UploadConfig struct {
	// MaxBytes caps photo uploads; Path is where files land on disk.
	MaxBytes int64  `env:"MAX_FILE_UPLOAD,   default=1000000"`
	Path     string `env:"FILE_UPLOAD_PATH,  default=./public/uploads"`
}

type GeocoderConfig struct {
	BaseURL string `env:"GEOCODER_URL, default=https://nominatim.openstreetmap.org"`
}

// Production reports whether the service runs in production mode; it flips
// the Secure attribute on the token cookie and switches logs to JSON.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
