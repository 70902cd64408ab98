// Package config 从环境变量（及 .env 文件）读取运行配置
package config

import (
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// MemoryDB 使用内存存储代替 Postgres
const MemoryDB = "memory"

type Config struct {
	// Port 监听地址，如 ":3000"
	Port      string
	BuildMode string
	// DatabaseURL Postgres DSN 或 MemoryDB
	DatabaseURL   string
	AdminToken    string
	LogLevel      zerolog.Level
	LogFile       string
	RateLimit     int
	RateWindow    time.Duration
	PublishedOnly bool
	Migrate       bool
}

func (c *Config) LoadDefaults() {
	c.Port = ":3000"
	c.BuildMode = "prod"
	c.DatabaseURL = MemoryDB
	c.LogLevel = zerolog.InfoLevel
	c.LogFile = "app.log"
	c.RateLimit = 20
	c.RateWindow = 60 * time.Second
	c.PublishedOnly = true
	c.Migrate = true
}

func (c *Config) Dev() bool {
	return c.BuildMode == "dev"
}

// Load 读取 .env（可不存在），再用 APP_* 环境变量覆盖默认值
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env")
	}

	cfg := &Config{}
	cfg.LoadDefaults()
	if err := cfg.fromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) fromEnv() error {
	if v := os.Getenv("APP_PORT"); v != "" {
		if !strings.Contains(v, ":") {
			v = ":" + v
		}
		c.Port = v
	}
	if v := os.Getenv("APP_BUILD_MODE"); v != "" {
		c.BuildMode = v
	}
	if v := os.Getenv("APP_DB"); v != "" {
		c.DatabaseURL = v
	}
	c.AdminToken = os.Getenv("APP_ADMIN_TOKEN")

	if v := os.Getenv("APP_LOG_LEVEL"); v != "" {
		level, err := zerolog.ParseLevel(v)
		if err != nil {
			return errors.Wrap(err, "APP_LOG_LEVEL")
		}
		c.LogLevel = level
	}
	if v, ok := os.LookupEnv("APP_LOG_FILE"); ok {
		c.LogFile = v
	}
	if v := os.Getenv("APP_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "APP_RATE_LIMIT")
		}
		c.RateLimit = n
	}
	if v := os.Getenv("APP_RATE_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrap(err, "APP_RATE_WINDOW")
		}
		c.RateWindow = d
	}
	if v := os.Getenv("APP_PUBLISHED_ONLY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(err, "APP_PUBLISHED_ONLY")
		}
		c.PublishedOnly = b
	}
	if v := os.Getenv("APP_MIGRATE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(err, "APP_MIGRATE")
		}
		c.Migrate = b
	}
	return nil
}
