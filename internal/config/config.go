package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	SurrealURL  string `env:"SURREAL_URL" envDefault:"ws://127.0.0.1:8000/rpc"`
	SurrealNS   string `env:"SURREAL_NS" envDefault:"community"`
	SurrealDB   string `env:"SURREAL_DB" envDefault:"community"`
	SurrealUser string `env:"SURREAL_USER" envDefault:"root"`
	SurrealPass string `env:"SURREAL_PASS" envDefault:"root"`

	// RedisAddr 为空时不启用摘要缓存
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	SummaryTTL    time.Duration `env:"SUMMARY_CACHE_TTL" envDefault:"5m"`

	// KafkaBrokers 为空时不发事件
	KafkaBrokers []string `env:"KAFKA_BROKERS"`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"community-events"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"secret-key"`
	JWTTTL    time.Duration `env:"JWT_TTL"` // 0 表示不过期

	SnowflakeNode int64 `env:"SNOWFLAKE_NODE" envDefault:"1"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
