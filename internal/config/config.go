package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host        string   `yaml:"host"`
		Port        int      `yaml:"port"`
		Env         string   `yaml:"env"`
		PublicURL   string   `yaml:"public_url"` // Если пусто, origin берется из запроса
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"` // postgres, mysql, sqlite
		DSN    string `yaml:"url"`
		Debug  bool   `yaml:"debug"`
	} `yaml:"database"`

	Email struct {
		Enabled      bool   `yaml:"enabled"`
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		ConfirmURL   string `yaml:"confirm_url"` // Ссылка в письме, токен дописывается в конец
	} `yaml:"email"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // минуты
	} `yaml:"jwt"`

	Auth struct {
		// 0 - токен подтверждения не истекает
		ConfirmationTTL time.Duration `yaml:"confirmation_ttl"`
		// Период очистки истекших токенов; работает только при ConfirmationTTL > 0
		TokenCleanupInterval time.Duration `yaml:"token_cleanup_interval"`
	} `yaml:"auth"`

	Storage struct {
		BasePath    string `yaml:"base_path"`
		MediaPrefix string `yaml:"media_prefix"`
	} `yaml:"storage"`

	Upload struct {
		MaxSize       int64 `yaml:"max_size"`        // байты
		AvatarMaxSide int   `yaml:"avatar_max_side"` // px, больший аватар уменьшается
		ImageQuality  int   `yaml:"image_quality"`   // JPEG 1-100
	} `yaml:"upload"`

	Pagination struct {
		PageSize int `yaml:"page_size"`
	} `yaml:"pagination"`

	RateLimit struct {
		RequestsPerMinute int `yaml:"requests_per_minute"`
		Burst             int `yaml:"burst"`
	} `yaml:"rate_limit"`

	FirstAdmin struct {
		Username string `yaml:"username"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"first_admin"`
}

var AppConfig *Config

// LoadConfig загружает конфиг в AppConfig. Ошибка чтения - фатальна.
func LoadConfig() {
	// .env не обязателен
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// Load читает YAML (если файл существует), накладывает переменные окружения и значения по умолчанию.
func Load(path string) (*Config, error) {
	var cfg Config

	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file at %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		log.Printf("Config file %s not found, using environment only", path)
	default:
		return nil, fmt.Errorf("failed to open config file at %s: %w", path, err)
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret is required (JWT_SECRET)")
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Database.Driver, "DATABASE_DRIVER")
	setString(&cfg.Database.DSN, "DATABASE_URL")
	setString(&cfg.Server.Env, "SERVER_ENV")
	setString(&cfg.Server.PublicURL, "SERVER_PUBLIC_URL")
	setString(&cfg.JWT.Secret, "JWT_SECRET")
	setString(&cfg.Email.SMTPHost, "SMTP_HOST")
	setString(&cfg.Email.SMTPUsername, "SMTP_USER")
	setString(&cfg.Email.SMTPPassword, "SMTP_PASSWORD")
	setString(&cfg.FirstAdmin.Username, "FIRST_ADMIN_USERNAME")
	setString(&cfg.FirstAdmin.Email, "FIRST_ADMIN_EMAIL")
	setString(&cfg.FirstAdmin.Password, "FIRST_ADMIN_PASSWORD")

	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Email.SMTPPort = port
		}
	}
	if v := os.Getenv("EMAIL_ENABLED"); v != "" {
		cfg.Email.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.Server.CORSOrigins = strings.Split(v, ",")
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{"*"}
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60 * 24
	}
	if cfg.Auth.TokenCleanupInterval == 0 {
		cfg.Auth.TokenCleanupInterval = time.Hour
	}
	if cfg.Email.SMTPPort == 0 {
		cfg.Email.SMTPPort = 587
	}
	if cfg.Email.FromName == "" {
		cfg.Email.FromName = "Job Board"
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if cfg.Storage.MediaPrefix == "" {
		cfg.Storage.MediaPrefix = "/static"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 10 * 1024 * 1024 // 10MB
	}
	if cfg.Upload.AvatarMaxSide == 0 {
		cfg.Upload.AvatarMaxSide = 800
	}
	if cfg.Pagination.PageSize <= 0 {
		cfg.Pagination.PageSize = 10
	}
	if cfg.RateLimit.RequestsPerMinute == 0 {
		cfg.RateLimit.RequestsPerMinute = 30
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 10
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

// IsDevelopment - удобная проверка окружения
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}
