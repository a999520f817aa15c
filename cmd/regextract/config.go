package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// defaultChunkSize matches chunk.DefaultSize.
const defaultChunkSize = 1024

// envPrefix is the prefix for environment variables (REGEXTRACT_FORMAT, ...).
const envPrefix = "REGEXTRACT"

// settings is the merged configuration used by every command.
type settings struct {
	Verbose   bool     `mapstructure:"verbose"`
	LogFile   string   `mapstructure:"log_file"`
	Patterns  []string `mapstructure:"patterns"`
	Format    string   `mapstructure:"format"`
	Types     []string `mapstructure:"types"`
	ChunkSize int      `mapstructure:"chunk_size"`
}

// readConfig wires environment variables into v and reads the config
// file. An explicit cfgFile must exist; the default locations are optional.
func readConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("format", "text")
	v.SetDefault("chunk_size", defaultChunkSize)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("regextract")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "regextract"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// loadSettings decodes and validates the merged configuration.
func loadSettings(v *viper.Viper) (settings, error) {
	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return settings{}, fmt.Errorf("decoding config: %w", err)
	}

	s.Format = strings.ToLower(strings.TrimSpace(s.Format))
	if !validFormats[s.Format] {
		return settings{}, fmt.Errorf("unknown format %q (want text, jsonl or yaml)", s.Format)
	}
	if s.ChunkSize <= 0 {
		return settings{}, fmt.Errorf("chunk size must be positive, got %d", s.ChunkSize)
	}
	return s, nil
}
