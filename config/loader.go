package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "JEWELMUSIC"

// LoaderOptions control where settings are read from.
type LoaderOptions struct {
	// ConfigFile is an explicit yaml config file path. When empty, the
	// standard locations are searched.
	ConfigFile string
	// EnvFile is an explicit .env file path. When empty, ./.env is used
	// if it exists.
	EnvFile string
}

// FileSystem abstracts file operations for testing.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// Load reads settings from the resolved .env file, config file, and
// JEWELMUSIC_* environment variables, applies defaults, and validates.
func Load(opts LoaderOptions) (*Settings, error) {
	return load(opts, RealFileSystem{})
}

func load(opts LoaderOptions, fs FileSystem) (*Settings, error) {
	if envFile := resolveEnvFile(opts.EnvFile, fs); envFile != "" {
		if err := fs.LoadEnv(envFile); err != nil {
			return nil, fmt.Errorf("config: load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range []string{
		"api_key", "environment", "base_url", "timeout",
		"max_retries", "user_agent", "log_level",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", key, err)
		}
	}

	if configFile := resolveConfigFile(opts.ConfigFile, fs); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// resolveEnvFile returns the explicit path, or ./.env when present.
func resolveEnvFile(explicit string, fs FileSystem) string {
	if explicit != "" {
		return explicit
	}
	if fs.Exists(".env") {
		return ".env"
	}
	return ""
}

// resolveConfigFile returns the explicit path or the first standard
// location that exists.
func resolveConfigFile(explicit string, fs FileSystem) string {
	if explicit != "" {
		return explicit
	}
	for _, path := range []string{
		"./jewelmusic.yml",
		"./config/jewelmusic.yml",
	} {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}
