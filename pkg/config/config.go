package config

import (
	"fmt"
	"runtime"

	"github.com/t6modm/t6modm/pkg/errors"
)

// Environment variables that must point at the tool installations
const (
	EnvLinkerHome = "OAT_HOME"
	EnvGameHome   = "GAME_HOME"

	// EnvPrefix introduces any other setting, T6MODM_BUILD_ZONE_NAME -> build.zone_name
	EnvPrefix = "T6MODM_"
)

// Config is the resolved tool configuration for one build
type Config struct {
	Linker LinkerConfig `koanf:"linker" toml:"linker"`
	Game   GameConfig   `koanf:"game" toml:"game"`
	Build  BuildConfig  `koanf:"build" toml:"build"`

	// Editor is the command used to review the generated zone with --wait
	Editor string `koanf:"editor" toml:"editor"`
}

// LinkerConfig describes the external linker installation
type LinkerConfig struct {
	Home      string   `koanf:"home" toml:"home"`
	Binary    string   `koanf:"binary" toml:"binary"`
	Verbose   bool     `koanf:"verbose" toml:"verbose"`
	ExtraArgs []string `koanf:"extra_args" toml:"extra_args"`
}

// GameConfig describes the game installation the linker reads from
type GameConfig struct {
	Home      string   `koanf:"home" toml:"home"`
	ID        string   `koanf:"id" toml:"id"`
	Languages []string `koanf:"languages" toml:"languages"`
}

// BuildConfig names the artifacts a build produces
type BuildConfig struct {
	OutputDir     string `koanf:"output_dir" toml:"output_dir"`
	ZoneName      string `koanf:"zone_name" toml:"zone_name"`
	ClientArchive string `koanf:"client_archive" toml:"client_archive"`
	ServerArchive string `koanf:"server_archive" toml:"server_archive"`
	MetadataFile  string `koanf:"metadata_file" toml:"metadata_file"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Linker: LinkerConfig{
			Binary:  defaultLinkerBinary(),
			Verbose: true,
		},
		Game: GameConfig{
			ID:        "T6",
			Languages: []string{"english"},
		},
		Build: BuildConfig{
			ZoneName:      "mod",
			ClientArchive: "mod.iwd",
			ServerArchive: "server-only.zip",
			MetadataFile:  "mod.json",
		},
	}
}

func defaultLinkerBinary() string {
	if runtime.GOOS == "windows" {
		return "Linker.exe"
	}
	return "Linker"
}

// defaultMap is Default in the koanf key layout
func defaultMap() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"linker.binary":        d.Linker.Binary,
		"linker.verbose":       d.Linker.Verbose,
		"game.id":              d.Game.ID,
		"game.languages":       d.Game.Languages,
		"build.zone_name":      d.Build.ZoneName,
		"build.client_archive": d.Build.ClientArchive,
		"build.server_archive": d.Build.ServerArchive,
		"build.metadata_file":  d.Build.MetadataFile,
	}
}

// Validate checks the values a build cannot run without
func (c *Config) Validate() error {
	if c.Linker.Home == "" {
		return missingEnv(EnvLinkerHome)
	}
	if c.Game.Home == "" {
		return missingEnv(EnvGameHome)
	}
	if c.Build.ZoneName == "" {
		return errors.New(errors.ErrConfigValid, "build.zone_name must not be empty")
	}
	return nil
}

func missingEnv(name string) error {
	return errors.Newf(errors.ErrConfigValid,
		"the environment variable %s is not defined. You can define it in a .t6modm.env file", name).
		WithDetail("variable", name)
}

// String summarises the configuration for debug logs
func (c *Config) String() string {
	return fmt.Sprintf("linker=%s game=%s zone=%s", c.Linker.Home, c.Game.Home, c.Build.ZoneName)
}
