package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the client reads,
// e.g. HTTPSOCK_LOG_LEVEL.
const EnvPrefix = "HTTPSOCK"

// Config holds the settings shared by every command
type Config struct {
	LogLevel   string `mapstructure:"log_level"`
	LogFormat  string `mapstructure:"log_format"`
	Output     string `mapstructure:"output"`
	NoColor    bool   `mapstructure:"no_color"`
	Verbose    bool   `mapstructure:"verbose"`
	ChunkSize  int    `mapstructure:"chunk_size"`
	UnixSocket string `mapstructure:"unix_socket"`
}

// flagKeys maps command-line flag names to config keys
var flagKeys = map[string]string{
	"log-level":   "log_level",
	"log-format":  "log_format",
	"output":      "output",
	"no-color":    "no_color",
	"verbose":     "verbose",
	"chunk-size":  "chunk_size",
	"unix-socket": "unix_socket",
}

// Load resolves the configuration. Precedence, highest first: flags that
// were set explicitly, HTTPSOCK_* environment variables (a .env file in
// the working directory is loaded into the environment first), the
// optional YAML file at path, built-in defaults.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "console")
	v.SetDefault("output", "text")
	v.SetDefault("no_color", false)
	v.SetDefault("verbose", false)
	v.SetDefault("chunk_size", 1024)
	v.SetDefault("unix_socket", "")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if errs := ValidateConfig(&cfg); len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errs[0])
	}
	return &cfg, nil
}
