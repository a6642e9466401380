package cli

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jacoelho/gdsxml"
)

const (
	defaultConfigFile = "gdsxml.toml"
	envPrefix         = "GDSXML"
)

// Config is the validation and logging configuration shared by commands.
// Values come from flags, GDSXML_* environment variables and the config
// file, in that order of precedence.
type Config struct {
	MaxDepth        int    `mapstructure:"max_depth"`
	MaxDocumentSize int    `mapstructure:"max_document_size"`
	StopOnFirst     bool   `mapstructure:"stop_on_first"`
	SkipPatterns    bool   `mapstructure:"skip_patterns"`
	LogLevel        string `mapstructure:"log_level"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

var flagKeys = map[string]string{
	"max_depth":         "max-depth",
	"max_document_size": "max-document-size",
	"stop_on_first":     "stop-on-first",
	"skip_patterns":     "skip-patterns",
	"log_level":         "log-level",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("max_depth", 0)
	v.SetDefault("max_document_size", 0)
	v.SetDefault("stop_on_first", false)
	v.SetDefault("skip_patterns", false)
	v.SetDefault("log_level", "info")
}

func loadConfig(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
	}

	for key, name := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return Config{}, errors.Wrapf(err, "bind flag --%s", name)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	cfg.File = path
	return cfg, nil
}

func (c Config) validateOptions() gdsxml.ValidateOptions {
	return gdsxml.NewValidateOptions().
		WithMaxDepth(c.MaxDepth).
		WithMaxDocumentSize(c.MaxDocumentSize).
		WithStopOnFirst(c.StopOnFirst).
		WithSkipPatterns(c.SkipPatterns)
}
