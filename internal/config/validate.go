package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Import.MaxUploadBytes <= 0 {
		return fmt.Errorf("import.max_upload_bytes must be > 0 (got %d)", c.Import.MaxUploadBytes)
	}
	if c.Import.MaxSentences <= 0 {
		return fmt.Errorf("import.max_sentences must be > 0 (got %d)", c.Import.MaxSentences)
	}

	if strings.TrimSpace(c.Search.TextConfig) == "" {
		return fmt.Errorf("search.text_config must not be empty")
	}

	if err := c.Report.validate(); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return nil
}

func (r *ReportConfig) validate() error {
	if strings.TrimSpace(r.Dir) == "" {
		return fmt.Errorf("dir must not be empty")
	}

	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", r.Timezone, err)
	}
	r.Location = loc

	return nil
}
