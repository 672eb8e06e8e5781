// Package config loads the xcurl configuration file and environment
// overrides.
package config

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ideaspaper/xcurl/internal/constants"
	"github.com/ideaspaper/xcurl/internal/paths"
	"github.com/ideaspaper/xcurl/pkg/client"
	"github.com/ideaspaper/xcurl/pkg/errors"
	"github.com/ideaspaper/xcurl/pkg/models"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "XCURL"
)

// Config represents the application configuration
type Config struct {
	// Highlighting
	Theme      string `yaml:"theme" mapstructure:"theme"`
	ShowColors bool   `yaml:"showColors" mapstructure:"showColors"`

	// HTTP client settings
	FollowRedirects bool `yaml:"followRedirect" mapstructure:"followRedirect"`
	TimeoutMs       int  `yaml:"timeoutInMilliseconds" mapstructure:"timeoutInMilliseconds"`
	InsecureSSL     bool `yaml:"insecureSSL" mapstructure:"insecureSSL"`

	// Proxy settings
	Proxy                string   `yaml:"proxy" mapstructure:"proxy"`
	ExcludeHostsForProxy []string `yaml:"excludeHostsForProxy" mapstructure:"excludeHostsForProxy"`

	// Headers sent with every request unless overridden
	DefaultHeaders map[string]string `yaml:"defaultHeaders" mapstructure:"defaultHeaders"`

	// Directory holding <name>.yaml profiles; empty means the app dir
	ProfileDir string `yaml:"profileDir" mapstructure:"profileDir"`

	configPath string
}

// DefaultConfig returns a new config with default values
func DefaultConfig() *Config {
	return &Config{
		Theme:           constants.DefaultTheme,
		ShowColors:      true,
		FollowRedirects: true,
		TimeoutMs:       constants.DefaultTimeout,
		DefaultHeaders: map[string]string{
			constants.HeaderUserAgent: constants.DefaultUserAgent,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("theme", d.Theme)
	v.SetDefault("showColors", d.ShowColors)
	v.SetDefault("followRedirect", d.FollowRedirects)
	v.SetDefault("timeoutInMilliseconds", d.TimeoutMs)
	v.SetDefault("insecureSSL", d.InsecureSSL)
	v.SetDefault("proxy", "")
	v.SetDefault("excludeHostsForProxy", []string{})
	v.SetDefault("defaultHeaders", d.DefaultHeaders)
	v.SetDefault("profileDir", "")
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType(configFileType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig loads configuration from ~/.xcurl/config.yaml
func LoadConfig() (*Config, error) {
	dir, err := paths.AppDataDir("")
	if err != nil {
		return nil, errors.Wrap(err, "failed to get home directory")
	}
	return LoadConfigFromDir(dir)
}

// LoadConfigFromDir loads config.yaml from dir. A missing file yields the
// defaults with environment overrides applied.
func LoadConfigFromDir(dir string) (*Config, error) {
	v := newViper()
	v.SetConfigName(configFileName)
	v.AddConfigPath(dir)
	return load(v, filepath.Join(dir, configFileName+"."+configFileType))
}

// LoadConfigFromFile loads configuration from a specific file path
func LoadConfigFromFile(filePath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(filePath)
	return load(v, filePath)
}

func load(v *viper.Viper, configPath string) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}
	cfg.configPath = configPath

	if cfg.DefaultHeaders == nil {
		cfg.DefaultHeaders = make(map[string]string)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.TimeoutMs < 0 {
		return errors.NewConfigError("timeoutInMilliseconds", strconv.Itoa(c.TimeoutMs), "must not be negative")
	}
	return nil
}

// Path returns the file the config was loaded from or will be saved to.
func (c *Config) Path() string {
	return c.configPath
}

// SetPath sets the file Save writes to.
func (c *Config) SetPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		p, err := paths.DefaultConfigPath()
		if err != nil {
			return errors.Wrap(err, "failed to get home directory")
		}
		c.configPath = p
	}

	if err := paths.EnsureDir(filepath.Dir(c.configPath)); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := c.ToYAML()
	if err != nil {
		return err
	}
	return paths.WriteFile(c.configPath, []byte(data))
}

// ToYAML renders the configuration as a YAML document.
func (c *Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode config")
	}
	return string(data), nil
}

// Timeout returns the request timeout, zero meaning none.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// HeaderDefaults returns the default headers sorted by name.
func (c *Config) HeaderDefaults() []models.KV {
	out := make([]models.KV, 0, len(c.DefaultHeaders))
	for _, k := range slices.Sorted(maps.Keys(c.DefaultHeaders)) {
		out = append(out, models.KV{Key: strings.ToLower(k), Value: c.DefaultHeaders[k]})
	}
	return out
}

// ProfilePath returns the file holding the named profile.
func (c *Config) ProfilePath(name string) (string, error) {
	if c.ProfileDir != "" {
		return filepath.Join(c.ProfileDir, name+".yaml"), nil
	}
	return paths.DefaultProfilePath(name)
}

// ToClientConfig converts Config to client.ClientConfig
func (c *Config) ToClientConfig() *client.ClientConfig {
	cfg := client.DefaultConfig()

	cfg.FollowRedirects = c.FollowRedirects
	cfg.InsecureSSL = c.InsecureSSL
	cfg.Proxy = c.Proxy
	cfg.ExcludeProxy = slices.Clone(c.ExcludeHostsForProxy)

	if c.TimeoutMs > 0 {
		cfg.Timeout = c.Timeout()
	}

	return cfg
}
