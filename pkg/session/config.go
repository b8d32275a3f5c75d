package session

import (
	"fmt"
	"os"
	"time"

	"github.com/mstoykov/envconfig"
)

// Config holds browser session options.
type Config struct {
	Driver            string        `envconfig:"UICHECK_DRIVER"`             // Driver name, "rod" or "playwright"
	Headless          bool          `envconfig:"UICHECK_HEADLESS"`           // Run the browser without a window
	BrowserBin        string        `envconfig:"UICHECK_BROWSER_BIN"`        // Browser executable; empty lets the driver pick or download one
	ElementTimeout    time.Duration `envconfig:"UICHECK_ELEMENT_TIMEOUT"`    // Upper bound for element lookups and waits
	NavigationTimeout time.Duration `envconfig:"UICHECK_NAVIGATION_TIMEOUT"` // Upper bound for page loads
}

// DefaultConfig returns the defaults used when no environment is set.
func DefaultConfig() Config {
	return Config{
		Driver:            "rod",
		Headless:          true,
		ElementTimeout:    10 * time.Second,
		NavigationTimeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays UICHECK_* environment variables on DefaultConfig.
func ConfigFromEnv() (Config, error) {
	return configFromLookup(os.LookupEnv)
}

func configFromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()
	if err := envconfig.Process("", &cfg, lookup); err != nil {
		return cfg, fmt.Errorf("failed to read session config from environment: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate reports configuration values that cannot work.
func (c Config) Validate() error {
	if c.Driver == "" {
		return fmt.Errorf("session config: driver must be set")
	}
	if c.ElementTimeout <= 0 {
		return fmt.Errorf("session config: element timeout must be positive, got %v", c.ElementTimeout)
	}
	if c.NavigationTimeout <= 0 {
		return fmt.Errorf("session config: navigation timeout must be positive, got %v", c.NavigationTimeout)
	}
	return nil
}
