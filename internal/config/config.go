package config

import (
	"github.com/kelseyhightower/envconfig"

	"github.com/teamform/teamform/internal/submission"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port              int      `envconfig:"PORT" default:"8080"`
	LogLevel          string   `envconfig:"LOG_LEVEL" default:"info"`
	Version           string   `envconfig:"VERSION" default:"dev"`
	MaxUploadBytes    int64    `envconfig:"MAX_UPLOAD_BYTES" default:"10485760"`
	AllowedExtensions []string `envconfig:"ALLOWED_EXTENSIONS" default:".tsv"`
	RandomSeed        uint64   `envconfig:"RANDOM_SEED" default:"0"`
	ColumnMembers     string   `envconfig:"COLUMN_MEMBERS" default:"github-логины коллег по проекту через запятую"`
	ColumnProjects    string   `envconfig:"COLUMN_PROJECTS" default:"Я хочу работать над проектом..."`
	ColumnTimestamp   string   `envconfig:"COLUMN_TIMESTAMP" default:"Время создания"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Columns returns the configured submission column names.
func (c *Config) Columns() submission.Columns {
	return submission.Columns{
		Members:   c.ColumnMembers,
		Projects:  c.ColumnProjects,
		Timestamp: c.ColumnTimestamp,
	}
}
