package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ZertGraf/pachca-tags/internal/domain"
	. "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	// remote api settings
	APIURL          string        `env:"PACHCA_API_URL" env-default:"https://api.pachca.com/api/shared/v1"`
	AdminToken      string        `env:"PACHCA_ADMIN_TOKEN"`
	HTTPTimeout     time.Duration `env:"PACHCA_HTTP_TIMEOUT" env-default:"30s"`
	RequestIDHeader string        `env:"PACHCA_REQUEST_ID_HEADER" env-default:"X-Request-ID"`

	// csv files
	TagsExportFile  string `env:"TAGS_EXPORT_FILE" env-default:"tags_export.csv"`
	UsersExportFile string `env:"USERS_EXPORT_FILE" env-default:"users_export.csv"`
	UsersTagsFile   string `env:"USERS_TAGS_FILE" env-default:"users_tags.csv"`

	// logging configuration
	LogLevel     string `env:"LOG_LEVEL" env-default:"warn"`
	LogFormat    string `env:"LOG_FORMAT" env-default:"text"`
	LogAddSource bool   `env:"LOG_ADD_SOURCE" env-default:"false"`
}

func New() (*Config, error) {
	var cfg Config

	// read from .env file if exists (optional)
	if err := cleanenv.ReadConfig(".env", &cfg); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read dotenv file: %w", err)
	}

	// read from environment variables (required)
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate trims the admin token and rejects a blank one with domain.ErrMissingToken.
func (c *Config) Validate() error {
	c.AdminToken = strings.TrimSpace(c.AdminToken)
	if c.AdminToken == "" {
		return domain.ErrMissingToken
	}
	if err := ValidateStruct(c,
		Field(&c.APIURL, Required, is.URL),
		Field(&c.HTTPTimeout, Required, Min(time.Second)),
		Field(&c.TagsExportFile, Required),
		Field(&c.UsersExportFile, Required),
		Field(&c.UsersTagsFile, Required),
	); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
