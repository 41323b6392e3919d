// Package config loads the pricing tool settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"pricingtool/logging"
	"pricingtool/services"
)

// Environment variable names.
const (
	EnvLedgerPath = "PRICINGTOOL_LEDGER_PATH"
	EnvLogLevel   = "PRICINGTOOL_LOG_LEVEL"
	EnvLogFormat  = "PRICINGTOOL_LOG_FORMAT"
	EnvLogOutput  = "PRICINGTOOL_LOG_OUTPUT"
	EnvCurrency   = "PRICINGTOOL_CURRENCY"
)

// DefaultLedgerPath is used when neither flag nor environment names a file.
const DefaultLedgerPath = "project_data.csv"

// Config holds the settings shared by the web server and the commands.
type Config struct {
	LedgerPath string
	Currency   string
	Logging    logging.Config
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LedgerPath: DefaultLedgerPath,
		Currency:   services.DefaultCurrency,
		Logging:    logging.DefaultConfig(),
	}
}

// Load reads the optional dotenv files (variables already set in the process
// win) and then overlays the environment onto Default. A missing dotenv file
// is not an error.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Default()
	cfg.LedgerPath = getenv(EnvLedgerPath, cfg.LedgerPath)
	cfg.Currency = strings.ToUpper(getenv(EnvCurrency, cfg.Currency))
	cfg.Logging.Level = getenv(EnvLogLevel, cfg.Logging.Level)
	cfg.Logging.Format = getenv(EnvLogFormat, cfg.Logging.Format)
	cfg.Logging.Output = getenv(EnvLogOutput, cfg.Logging.Output)
	return cfg, nil
}

// WithLedgerPath returns a copy of c using path when it is non-empty.
func (c Config) WithLedgerPath(path string) Config {
	if strings.TrimSpace(path) != "" {
		c.LedgerPath = path
	}
	return c
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}
