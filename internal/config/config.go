// Package config loads and saves the WalletPal TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all WalletPal configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Storage    StorageConfig    `toml:"storage"`
	Budget     BudgetConfig     `toml:"budget"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds file locations.
type GeneralConfig struct {
	DataFile string `toml:"data_file"`
	LogFile  string `toml:"log_file,omitempty"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Backend    string `toml:"backend"`
	SQLitePath string `toml:"sqlite_path,omitempty"`
}

// BudgetConfig holds ledger behavior settings.
type BudgetConfig struct {
	SavingsOverage string `toml:"savings_overage"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// Environment overrides, applied after the config file.
const (
	EnvDataFile = "WALLETPAL_DATA_FILE"
	EnvBackend  = "WALLETPAL_BACKEND"
	EnvTheme    = "WALLETPAL_THEME"
	EnvConfig   = "WALLETPAL_CONFIG"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DataFile: filepath.Join(DataDir(), "walletpal_data.txt"),
		},
		Storage: StorageConfig{
			Backend: "text",
		},
		Budget: BudgetConfig{
			SavingsOverage: "confirm",
		},
		Appearance: AppearanceConfig{
			Theme: "greenback",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "walletpal")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "walletpal")
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "walletpal")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "walletpal")
}

// ConfigPath returns the full path to the config file. WALLETPAL_CONFIG
// overrides the default location.
func ConfigPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied on top.
func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config at path.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDataFile); v != "" {
		cfg.General.DataFile = v
	}
	if v := os.Getenv(EnvBackend); v != "" {
		cfg.Storage.Backend = strings.ToLower(v)
	}
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Appearance.Theme = v
	}
}

// Save writes the config to the default path.
func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes the config to path.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists at the default path.
func Exists() bool {
	return ExistsAt(ConfigPath())
}

// ExistsAt returns true if a config file exists at path.
func ExistsAt(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// StoragePath returns the location the active backend reads and writes.
func (c Config) StoragePath() string {
	if c.Storage.Backend == "sqlite" {
		if c.Storage.SQLitePath != "" {
			return c.Storage.SQLitePath
		}
		return strings.TrimSuffix(c.General.DataFile, filepath.Ext(c.General.DataFile)) + ".db"
	}
	return c.General.DataFile
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.General.DataFile) == "" {
		errs = append(errs, errors.New("general.data_file must not be empty"))
	}
	switch c.Storage.Backend {
	case "text", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("storage.backend %q must be text or sqlite", c.Storage.Backend))
	}
	switch strings.ToLower(c.Budget.SavingsOverage) {
	case "", "confirm", "reject":
	default:
		errs = append(errs, fmt.Errorf("budget.savings_overage %q must be confirm or reject", c.Budget.SavingsOverage))
	}

	return errors.Join(errs...)
}
