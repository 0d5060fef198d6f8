package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

type Config struct {
	Port           string   `yaml:"port"`
	Backend        string   `yaml:"backend"`
	SQLitePath     string   `yaml:"sqlitePath"`
	RedisAddr      string   `yaml:"redisAddr"`
	RedisPassword  string   `yaml:"redisPassword"`
	MongoURI       string   `yaml:"mongoUri"`
	MongoDB        string   `yaml:"mongoDb"`
	JWTKey         string   `yaml:"jwtKey"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

func Default() Config {
	return Config{
		Port:           "8080",
		Backend:        BackendSQLite,
		SQLitePath:     "pms.db",
		MongoDB:        "pms",
		AllowedOrigins: []string{"*"},
	}
}

// Load builds the configuration in three layers: defaults, then an optional
// YAML file, then environment variables (highest precedence). A .env file in
// the working directory is folded into the environment first.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}
	applyEnv(&cfg)

	switch cfg.Backend {
	case BackendMemory, BackendSQLite, BackendRedis, BackendMongo:
	default:
		return Config{}, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("STORAGE_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.SQLitePath = v
	}
	if v := os.Getenv("REDIS_ADD"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASS"); v != "" {
		cfg.RedisPassword = v
	}
	if v := os.Getenv("MONGOURI"); v != "" {
		cfg.MongoURI = v
	}
	if v := os.Getenv("DB"); v != "" {
		cfg.MongoDB = v
	}
	if v := os.Getenv("JWT_KEY"); v != "" {
		cfg.JWTKey = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = strings.Split(v, ",")
	}
}
