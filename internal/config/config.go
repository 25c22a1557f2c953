package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"launchlist/internal/domain"
	"launchlist/internal/eventbus"
)

const (
	appName        = "launchlist"
	configFileName = "config.toml"
	socketFileName = "launchlist.sock"
	logFileName    = "launchlist.log"
)

// Config represents the application configuration
type Config struct {
	Version    int           `toml:"version"`
	SocketPath string        `toml:"socket_path"`
	LogFile    string        `toml:"log_file"`
	LogLevel   string        `toml:"log_level"`
	Layout     domain.Layout `toml:"layout"`
	Theme      domain.Theme  `toml:"theme"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service reading path, or the default
// location when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, appName, configFileName)
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file; a missing file yields the defaults
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Settings the file
// leaves out keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate reports settings the list cannot work with
func (c *Config) Validate() error {
	if c.Layout.ItemHeight <= 0 {
		return fmt.Errorf("layout.item_height must be positive, got %d", c.Layout.ItemHeight)
	}
	if c.Layout.VisibleItems <= 0 {
		return fmt.Errorf("layout.visible_items must be positive, got %d", c.Layout.VisibleItems)
	}
	if c.Layout.ListPadding < 0 {
		return fmt.Errorf("layout.list_padding must not be negative, got %d", c.Layout.ListPadding)
	}
	return nil
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.SocketPath == "" {
		c.SocketPath = def.SocketPath
	}
	if c.LogFile == "" {
		c.LogFile = def.LogFile
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Layout.ItemLines <= 0 {
		c.Layout.ItemLines = def.Layout.ItemLines
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		runtimeDir = os.TempDir()
	}

	stateDir, err := os.UserCacheDir()
	if err != nil {
		stateDir = os.TempDir()
	}

	return &Config{
		Version:    1,
		SocketPath: filepath.Join(runtimeDir, socketFileName),
		LogFile:    filepath.Join(stateDir, appName, logFileName),
		LogLevel:   "info",
		Layout:     domain.DefaultLayout(),
		Theme:      DefaultTheme(),
	}
}

// DefaultTheme returns the stock colours
func DefaultTheme() domain.Theme {
	return domain.Theme{
		Title:      "252",
		Subtitle:   "241",
		Selected:   "226",
		SelectedBg: "238",
		Border:     "99",
	}
}
