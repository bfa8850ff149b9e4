package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string `env:"PORT" envDefault:"8080"`
	Timezone string `env:"TZ" envDefault:"UTC"`
	DBPath   string `env:"DB_PATH" envDefault:"mycolab.db"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	LLMEndpoint    string `env:"LLM_ENDPOINT"`
	LLMAPIKey      string `env:"LLM_API_KEY"`
	LLMModel       string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	ChatRatePerMin int    `env:"CHAT_RATE_PER_MIN" envDefault:"10"`

	MailEndpoint string `env:"MAIL_ENDPOINT"`
	MailAPIKey   string `env:"MAIL_API_KEY"`
	MailFrom     string `env:"MAIL_FROM" envDefault:"noreply@mycolab.local"`

	StorageEndpoint string `env:"STORAGE_ENDPOINT"`
	StorageAPIKey   string `env:"STORAGE_API_KEY"`
	StorageBucket   string `env:"STORAGE_BUCKET" envDefault:"photos"`
	UploadDir       string `env:"UPLOAD_DIR" envDefault:"uploads"`
	PublicBaseURL   string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`

	StageConfigPath string `env:"STAGE_CONFIG_PATH"`
	StageAdjustPath string `env:"STAGE_ADJUST_PATH"`

	LibraryAllowedDomains []string `env:"LIBRARY_ALLOWED_DOMAINS" envSeparator:","`
	LibraryMaxBytes       int      `env:"LIBRARY_MAX_BYTES_PER_PAGE" envDefault:"1500000"`

	AuthMode   string   `env:"AUTH_MODE" envDefault:"dev"` // dev|header
	AdminUsers []string `env:"ADMIN_USERS" envSeparator:","`
}

// Load reads .env (if present) and then the process environment.
func Load() (AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}
	return Parse()
}

// Parse reads only the process environment.
func Parse() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	cfg.AuthMode = strings.ToLower(strings.TrimSpace(cfg.AuthMode))
	if cfg.AuthMode != "header" {
		cfg.AuthMode = "dev"
	}
	cfg.LibraryAllowedDomains = trimAll(cfg.LibraryAllowedDomains)
	for i, d := range cfg.LibraryAllowedDomains {
		cfg.LibraryAllowedDomains[i] = strings.ToLower(d)
	}
	cfg.AdminUsers = trimAll(cfg.AdminUsers)
	return cfg, nil
}

// LogValue keeps secrets out of the start-up log line.
func (c AppConfig) LogValue() slog.Value {
	redact := func(s string) string {
		if s == "" {
			return ""
		}
		return "***"
	}
	return slog.GroupValue(
		slog.String("port", c.Port),
		slog.String("db_path", c.DBPath),
		slog.String("llm_endpoint", c.LLMEndpoint),
		slog.String("llm_api_key", redact(c.LLMAPIKey)),
		slog.String("llm_model", c.LLMModel),
		slog.String("mail_endpoint", c.MailEndpoint),
		slog.String("mail_api_key", redact(c.MailAPIKey)),
		slog.String("storage_endpoint", c.StorageEndpoint),
		slog.String("storage_api_key", redact(c.StorageAPIKey)),
		slog.String("auth_mode", c.AuthMode),
	)
}

func trimAll(in []string) []string {
	out := in[:0]
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
