package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/mknyszek/preload-model/memory"
)

// Settings configures the memory model and selects which profile of the
// characterisation document to sweep.
type Settings struct {
	Memory    memory.Config `mapstructure:"memory"`
	Hardware  string        `mapstructure:"hardware"`
	Operation string        `mapstructure:"operation"`
	Profile   string        `mapstructure:"profile"`
	LogLevel  string        `mapstructure:"log_level"`
}

// SetDefaults registers the default settings on v.
func SetDefaults(v *viper.Viper) {
	mem := memory.DefaultConfig()
	v.SetDefault("memory.total_bytes", mem.TotalBytes)
	v.SetDefault("memory.activation_fraction", mem.ActivationFraction)
	v.SetDefault("memory.word_size", mem.WordSize)
	v.SetDefault("memory.preload_scale", mem.PreloadScale)
	v.SetDefault("hardware", DefaultHardware)
	v.SetDefault("operation", DefaultOperation)
	v.SetDefault("profile", DefaultProfile)
	v.SetDefault("log_level", "info")
}

// LoadSettings resolves settings from defaults, the optional file at path,
// and PRELOAD_* environment variables, in increasing order of precedence.
// Flags bound to v take precedence over all of them.
func LoadSettings(v *viper.Viper, path string) (Settings, error) {
	SetDefaults(v)
	v.SetEnvPrefix("PRELOAD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return Settings{}, &Error{Kind: ErrNotFound, Path: path}
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, &Error{Kind: ErrMalformed, Path: path, Err: err}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	return s, nil
}
