// Package config loads the project configuration file that tells the
// engine which files to scan, which preprocessors to run on them, and where
// to keep its cache.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-version"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// schemaVersion is the configuration schema this build understands.
// Config.Version is checked against it so an older binary fails loudly
// instead of silently ignoring fields it doesn't know about.
const schemaVersion = "1.0.0"

// PreprocessorBinding maps a preprocessor name (as registered in
// preprocessor.Registry) to the file extensions it should run on.
type PreprocessorBinding struct {
	Name       string   `mapstructure:"name"`
	Extensions []string `mapstructure:"extensions"`
}

// Config is the shape of a .cssx.yaml configuration file.
type Config struct {
	Version       string                `mapstructure:"version"`
	Name          string                `mapstructure:"name"`
	Extensions    []string              `mapstructure:"extensions"`
	Ignore        []string              `mapstructure:"ignore"`
	Preprocessors []PreprocessorBinding `mapstructure:"preprocessors"`
	CacheDir      string                `mapstructure:"cache_dir"`
}

// Default returns the configuration used when no config file is found.
func Default() Config {
	return Config{
		Version:    schemaVersion,
		Name:       "cssx",
		Extensions: []string{".html", ".js", ".jsx", ".ts", ".tsx", ".rb", ".erb", ".vue", ".svelte"},
		Ignore:     []string{"node_modules", "vendor", ".git"},
		CacheDir:   ".cssx-cache",
	}
}

// Load reads the configuration file at configPath, falling back to the
// current directory and the user's home directory (via go-homedir) when
// configPath is empty. When configPath is empty and no config file is found,
// Default() is returned without an error; an explicit configPath that cannot
// be read is an error.
func Load(configPath string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(".cssx")
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	cfg := Default()
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.Version == "" {
		cfg.Version = schemaVersion
	}
	if err := checkSchemaVersion(cfg.Version); err != nil {
		return Config{}, err
	}

	if cfg.CacheDir == "" {
		cfg.CacheDir = Default().CacheDir
	}
	cfg.CacheDir = filepath.Clean(cfg.CacheDir)

	return cfg, nil
}

// checkSchemaVersion rejects a config file built for a newer schema than
// this binary understands.
func checkSchemaVersion(configured string) error {
	have, err := version.NewVersion(schemaVersion)
	if err != nil {
		return fmt.Errorf("internal schema version %q is not valid semver: %w", schemaVersion, err)
	}

	want, err := version.NewVersion(configured)
	if err != nil {
		return fmt.Errorf("config version %q is not valid semver: %w", configured, err)
	}

	if want.GreaterThan(have) {
		return fmt.Errorf("config schema version %s is newer than supported version %s", want, have)
	}
	return nil
}
