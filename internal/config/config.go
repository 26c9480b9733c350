// Package config manages the persistent CLI configuration backed by Viper.
//
// Configuration lives at ~/.wallpack/config.yaml and can be overridden by
// WALLPACK_* environment variables. Recognized keys:
//
//	repo_root       path to the local wallpapers repository checkout
//	repo_url        git URL the checkout is cloned from
//	default_variant default pack variant for build ("normal" or "retro")
//	default_dest    default output directory for build
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/wallpack-dev/wallpack/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the CLI.
const (
	KeyRepoRoot       = "repo_root"
	KeyRepoURL        = "repo_url"
	KeyDefaultVariant = "default_variant"
	KeyDefaultDest    = "default_dest"
)

// Dir returns the path to the config directory (~/.wallpack/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.wallpack/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
