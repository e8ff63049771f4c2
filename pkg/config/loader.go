package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/t6modm/t6modm/pkg/errors"
	"github.com/t6modm/t6modm/pkg/logging"
	"github.com/t6modm/t6modm/pkg/paths"
)

// Load builds the configuration for the project at p. Layers, lowest first:
//  1. built-in defaults
//  2. <project>/.t6modm.toml
//  3. environment, after loading <project>/.t6modm.env without overriding
//     variables that are already set
func Load(p *paths.Paths) (*Config, error) {
	logger := logging.GetLogger("config.loader")

	if err := loadEnvFile(p.EnvFile()); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaultMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Project config if it exists
	configPath := p.ConfigFile()
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", configPath)
		}
		logger.Debug().Str("path", configPath).Msg("Loaded project config")
	}

	// 3. Environment
	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	postProcess(&cfg)

	logger.Debug().Str("config", cfg.String()).Msg("Configuration loaded")
	return &cfg, nil
}

// loadEnvFile applies a dotenv file when present
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat %s", path)
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to load %s", path)
	}
	return nil
}

// envKey maps environment variable names to config keys. Names it does not
// know are dropped.
func envKey(name string) string {
	switch name {
	case EnvLinkerHome:
		return "linker.home"
	case EnvGameHome:
		return "game.home"
	case paths.EnvProjectDir:
		return ""
	}

	if !strings.HasPrefix(name, EnvPrefix) {
		return ""
	}
	rest := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	if section, key, ok := strings.Cut(rest, "_"); ok {
		switch section {
		case "linker", "game", "build":
			return section + "." + key
		}
	}
	return rest
}

func postProcess(cfg *Config) {
	if cfg.Linker.Home != "" {
		cfg.Linker.Home = filepath.Clean(cfg.Linker.Home)
	}
	if cfg.Game.Home != "" {
		cfg.Game.Home = filepath.Clean(cfg.Game.Home)
	}
	if cfg.Linker.Binary == "" {
		cfg.Linker.Binary = defaultLinkerBinary()
	}
}
