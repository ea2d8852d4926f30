package infra

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
)

type Config struct {
	Env  string `env:"ENV,default=dev"`
	Port string `env:"PORT,default=8080"`

	// DatabaseURL is only used by the SQL migration runner.
	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST,default=localhost"`
	DBUser      string `env:"DB_USER"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME"`
	DBPort      string `env:"DB_PORT,default=5432"`
	AutoMigrate bool   `env:"AUTO_MIGRATE,default=false"`

	SecretKey   string        `env:"SECRET_KEY"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,default=720h"`
	TokenDBPath string        `env:"TOKEN_DB_PATH,default=token_blacklist.db"`

	GeminiAPIKey     string  `env:"GEMINI_API_KEY"`
	GeminiModel      string  `env:"GEMINI_MODEL,default=gemini-2.5-flash"`
	AIRatePerMinute  float64 `env:"AI_RATE_PER_MINUTE,default=10"`
	AIRateBurst      int     `env:"AI_RATE_BURST,default=3"`
	CORSAllowOrigins string  `env:"CORS_ALLOWED_ORIGINS"`
}

// LoadConfig reads the process environment into a Config.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("failed to decode environment: %w", err)
	}
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY environment variable not set")
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}
	return &cfg, nil
}

// UsePostgres reports whether a PostgreSQL database has been configured.
// Without DB_NAME the application falls back to an in-memory SQLite database.
func (c *Config) UsePostgres() bool {
	return c.DBName != ""
}

func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

func (c *Config) AllowedOrigins() []string {
	if strings.TrimSpace(c.CORSAllowOrigins) == "" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(c.CORSAllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
