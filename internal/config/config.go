package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const defaultLocale = "en"

type Config struct {
	Locale    string
	LocaleDir string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{
		Locale:    os.Getenv("DIALOGCAT_LOCALE"),
		LocaleDir: os.Getenv("DIALOGCAT_LOCALE_DIR"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	c.Locale = strings.TrimSpace(c.Locale)
	if c.Locale == "" {
		c.Locale = defaultLocale
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return fmt.Errorf("config: invalid DIALOGCAT_LOCALE (%q): %w", c.Locale, err)
	}
	c.Locale = tag.String()

	c.LocaleDir = strings.TrimSpace(c.LocaleDir)
	if c.LocaleDir == "" {
		return nil
	}
	info, err := os.Stat(c.LocaleDir)
	if err != nil {
		return fmt.Errorf("config: invalid DIALOGCAT_LOCALE_DIR (%q): %w", c.LocaleDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("config: DIALOGCAT_LOCALE_DIR (%q) is not a directory", c.LocaleDir)
	}
	return nil
}
