// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package before building; Go's
// //go:embed bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	RepoURL     string `yaml:"repo_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "wallpack",
			DisplayName: "WallPack",
			Description: "Wallpaper pack generator for Linux desktops",
			HomeDir:     ".wallpack",
			EnvPrefix:   "WALLPACK",
			GoModule:    "github.com/wallpack-dev/wallpack",
			RepoURL:     "https://github.com/wallpack-dev/wallpapers.git",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "wallpack").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "WallPack").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".wallpack").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "WALLPACK").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by release scripts, not at runtime.
func GoModule() string { load(); return defaults.GoModule }

// RepoURL returns the default git URL for the wallpapers repository.
func RepoURL() string { load(); return defaults.RepoURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("REPO") → "WALLPACK_REPO".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
