// Package config loads the hrs configuration from ~/.hrs/config.toml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"hrs/internal/timelog"
)

// Config is the root configuration for hrs.
type Config struct {
	// Workday is the expected day length as a Go duration string, e.g. "7h30m".
	Workday string        `toml:"workday"`
	Outlook OutlookConfig `toml:"outlook"`
}

// OutlookConfig holds Microsoft Graph / Outlook calendar push settings.
type OutlookConfig struct {
	// TenantID is the Azure AD tenant. "common" covers personal and
	// multi-tenant organisational accounts.
	TenantID string `toml:"tenant_id"`
	// ClientID is the Azure app (client) ID for the OAuth2 device code flow.
	ClientID string `toml:"client_id"`
	// Timezone is the IANA timezone for created events. Empty = UTC.
	Timezone string `toml:"timezone"`
}

const (
	// DefaultTenantID is the Microsoft "common" tenant.
	DefaultTenantID = "common"
	// DefaultClientID is the well-known public Azure CLI app ID. It supports
	// the device code flow without a client secret or app registration.
	DefaultClientID = "04b07795-8542-4c4a-95af-30b2c573d5ab"
)

// configTemplate is the annotated config written on first run.
const configTemplate = `# hrs configuration – ~/.hrs/config.toml
#
# All settings are optional; the defaults shown below are built in.

# Expected length of a full working day (Go duration syntax).
workday = "7h30m"

[outlook]
# Azure AD tenant ID. "common" works for personal Microsoft accounts and any
# organisation; replace with your tenant GUID for single-tenant deployments.
tenant_id = "common"

# Azure application (client) ID used for the OAuth2 device code flow.
# The built-in value is the public Azure CLI app – no registration needed.
client_id = "04b07795-8542-4c4a-95af-30b2c573d5ab"

# IANA timezone for created calendar events, e.g. "Europe/Berlin".
# Leave empty to use UTC. Overridable with: hrs outlook push --timezone <tz>
timezone = ""
`

// configFilePath returns the path to ~/.hrs/config.toml.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".hrs", "config.toml"), nil
}

// defaultConfig returns a Config pre-filled with the built-in defaults.
func defaultConfig() Config {
	return Config{
		Workday: timelog.Workday.String(),
		Outlook: OutlookConfig{
			TenantID: DefaultTenantID,
			ClientID: DefaultClientID,
		},
	}
}

// LoadFile reads a TOML config from the given path and fills zero-value
// fields with the built-in defaults, so callers always get a usable Config.
func LoadFile(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}
	if cfg.Workday == "" {
		cfg.Workday = timelog.Workday.String()
	}
	if cfg.Outlook.TenantID == "" {
		cfg.Outlook.TenantID = DefaultTenantID
	}
	if cfg.Outlook.ClientID == "" {
		cfg.Outlook.ClientID = DefaultClientID
	}
	return cfg, nil
}

// Load reads ~/.hrs/config.toml, creating it with an annotated template on
// first run.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// First run: write the template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	return LoadFile(path)
}

// WorkdayLength parses the configured workday, falling back to the built-in
// 7h30m baseline for missing or nonsensical values.
func (c Config) WorkdayLength() time.Duration {
	d, err := time.ParseDuration(c.Workday)
	if err != nil || d <= 0 {
		return timelog.Workday
	}
	return d
}

// writeDefault creates the config directory and writes the annotated
// template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
