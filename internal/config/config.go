package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"memo/internal/status"
)

const (
	DefaultHost = "0.0.0.0"
	DefaultPort = 3000
	// DefaultGinMode keeps gin's debug route dump off the menu's terminal.
	DefaultGinMode = "release"
)

var ginModes = []string{"debug", "release", "test"}

// Config holds the unified application configuration
type Config struct {
	MemoDir      string
	Host         string
	Port         int
	StatusURL    string
	FetchTimeout time.Duration
	LogDir       string
	GinMode      string
}

// Settings represents the config file structure
type Settings struct {
	MemoDir      string `yaml:"memo_dir"`
	Host         string `yaml:"host,omitempty"`
	Port         int    `yaml:"port,omitempty"`
	StatusURL    string `yaml:"status_url,omitempty"`
	FetchTimeout string `yaml:"fetch_timeout,omitempty"`
	LogDir       string `yaml:"log_dir,omitempty"`
	GinMode      string `yaml:"gin_mode,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	Dir  string
	Port int
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	v := viper.New()

	defaultDir, err := GetDefaultDir()
	if err != nil {
		return nil, err
	}
	v.SetDefault("memo_dir", defaultDir)
	v.SetDefault("host", DefaultHost)
	v.SetDefault("port", DefaultPort)
	v.SetDefault("status_url", status.DefaultURL)
	v.SetDefault("fetch_timeout", "0s")
	v.SetDefault("log_dir", "")
	v.SetDefault("gin_mode", DefaultGinMode)

	// PORT is honoured for hosts that only know the conventional variable.
	bindings := map[string][]string{
		"memo_dir":      {"MEMO_DIR"},
		"host":          {"MEMO_HOST"},
		"port":          {"MEMO_PORT", "PORT"},
		"status_url":    {"MEMO_STATUS_URL"},
		"fetch_timeout": {"MEMO_FETCH_TIMEOUT"},
		"log_dir":       {"MEMO_LOG_DIR"},
		"gin_mode":      {"MEMO_GIN_MODE", "GIN_MODE"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, err
		}
	}

	if configPath, err := getConfigPath(); err == nil {
		if _, statErr := os.Stat(configPath); statErr == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	cfg := &Config{
		MemoDir:   expandPath(v.GetString("memo_dir")),
		Host:      v.GetString("host"),
		StatusURL: v.GetString("status_url"),
		LogDir:    expandPath(v.GetString("log_dir")),
		GinMode:   strings.ToLower(strings.TrimSpace(v.GetString("gin_mode"))),
	}

	port, err := cast.ToIntE(v.Get("port"))
	if err != nil {
		return nil, fmt.Errorf("invalid port %q: %w", v.GetString("port"), err)
	}
	cfg.Port = port

	timeout, err := time.ParseDuration(v.GetString("fetch_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid fetch_timeout: %w", err)
	}
	cfg.FetchTimeout = timeout

	// Priority 1: CLI flags override everything
	if flags.Dir != "" {
		cfg.MemoDir = expandPath(flags.Dir)
	}
	if flags.Port != 0 {
		cfg.Port = flags.Port
	}

	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Dir(cfg.MemoDir)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.MemoDir == "" {
		return fmt.Errorf("memo_dir must not be empty")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("fetch_timeout must not be negative")
	}
	if !slices.Contains(ginModes, c.GinMode) {
		return fmt.Errorf("gin_mode %q must be one of %s", c.GinMode, strings.Join(ginModes, ", "))
	}
	return nil
}

// GetDefaultDir returns the default memo directory path
func GetDefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "memo", "memos"), nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "memo", "config.yaml"), nil
}

// EnsureDirs creates the memo and log directories if missing
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.MemoDir, c.LogDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	defaultDir, err := GetDefaultDir()
	if err != nil {
		return err
	}

	settings := Settings{
		MemoDir:      defaultDir,
		Host:         DefaultHost,
		Port:         DefaultPort,
		StatusURL:    status.DefaultURL,
		FetchTimeout: "0s",
		GinMode:      DefaultGinMode,
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
