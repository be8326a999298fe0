package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed config.toml.sample
var configTemplate string

type Config struct {
	StorageDir string        `toml:"storage_dir"`
	MediaDir   string        `toml:"media_dir"`
	Server     ServerConfig  `toml:"server"`
	Portal     *PortalConfig `toml:"portal,omitempty"`
	Images     *ImagesConfig `toml:"images,omitempty"`
}

type ServerConfig struct {
	Host            string   `toml:"host"`
	Port            int      `toml:"port"`
	AllowedOrigins  []string `toml:"allowed_origins"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// PortalConfig carries the identity provider endpoints for client portal
// sign-in. When absent the portal routes are disabled.
type PortalConfig struct {
	ClientID     string   `toml:"client_id"`
	ClientSecret string   `toml:"client_secret"`
	AuthURL      string   `toml:"auth_url"`
	TokenURL     string   `toml:"token_url"`
	UserInfoURL  string   `toml:"userinfo_url"`
	RedirectURL  string   `toml:"redirect_url"`
	Scopes       []string `toml:"scopes"`
}

// ImagesConfig carries the external image generation service credentials.
// When absent, image generation is unavailable and uploads still work.
type ImagesConfig struct {
	APIKey   string `toml:"api_key"`
	Endpoint string `toml:"endpoint"`
}

type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func GetDefaultConfig() (*Config, error) {
	storageDir, err := GetDefaultStorageDir()
	if err != nil {
		return nil, fmt.Errorf("getting default storage directory: %w", err)
	}
	return &Config{
		StorageDir: storageDir,
		MediaDir:   filepath.Join(storageDir, "media"),
		Server: ServerConfig{
			Host:            "localhost",
			Port:            8910,
			ShutdownTimeout: Duration{15 * time.Second},
		},
	}, nil
}

func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefaultConfig()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if config.StorageDir == "" {
		storageDir, err := GetDefaultStorageDir()
		if err != nil {
			return nil, fmt.Errorf("getting default storage directory: %w", err)
		}
		config.StorageDir = storageDir
	}
	if config.MediaDir == "" {
		config.MediaDir = filepath.Join(config.StorageDir, "media")
	}
	if config.Server.Host == "" {
		config.Server.Host = "localhost"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8910
	}
	if config.Server.ShutdownTimeout.Duration == 0 {
		config.Server.ShutdownTimeout = Duration{15 * time.Second}
	}

	return &config, nil
}

func (c *Config) SaveConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveTemplateConfig writes the annotated sample config with the storage
// directory filled in, used by the init command.
func (c *Config) SaveTemplateConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	template, err := c.generateConfigTemplate()
	if err != nil {
		return fmt.Errorf("generating config template: %w", err)
	}
	return os.WriteFile(configPath, []byte(template), 0644)
}

func (c *Config) generateConfigTemplate() (string, error) {
	storageDir := c.StorageDir
	if storageDir == "" {
		var err error
		storageDir, err = GetDefaultStorageDir()
		if err != nil {
			return "", fmt.Errorf("getting default storage directory: %w", err)
		}
	}

	// Replace the placeholder storage_dir with the actual path
	template := strings.Replace(configTemplate, "/home/user/.local/share/quimera", storageDir, 1)
	return template, nil
}

// Addr returns the host:port the server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetDefaultStorageDir returns the default storage directory for databases
func GetDefaultStorageDir() (string, error) {
	// Use XDG_DATA_HOME if set, otherwise use ~/.local/share
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	quimeraDir := filepath.Join(dataDir, "quimera")

	// Create the directory if it doesn't exist
	if err := os.MkdirAll(quimeraDir, 0755); err != nil {
		return "", fmt.Errorf("creating storage directory %s: %w", quimeraDir, err)
	}

	return quimeraDir, nil
}

// GetConfigDir returns the configuration directory
func GetConfigDir() (string, error) {
	// Use XDG_CONFIG_HOME if set, otherwise use ~/.config
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	quimeraConfigDir := filepath.Join(configDir, "quimera")

	// Create the directory if it doesn't exist
	if err := os.MkdirAll(quimeraConfigDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory %s: %w", quimeraConfigDir, err)
	}

	return quimeraConfigDir, nil
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}
