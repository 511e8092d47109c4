package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration using Viper.
// Priority order: environment variables > config file > defaults.
func LoadConfig(configPath string) (*ServerConfig, error) {
	v := viper.New()

	v.SetConfigName("server")
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/wordchain")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Short env names for the common deployment knobs.
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.host", "HOST")
	v.BindEnv("server.loglevel", "LOG_LEVEL")
	v.BindEnv("server.ratelimit", "RATE_LIMIT")
	v.BindEnv("server.ratelimitburst", "RATE_LIMIT_BURST")
	v.BindEnv("dictionary.baseurl", "DICTIONARY_URL")
	v.BindEnv("dictionary.timeout", "DICTIONARY_TIMEOUT")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.readtimeout", "0s")
	v.SetDefault("server.writetimeout", "0s")
	v.SetDefault("server.idletimeout", "0s")
	v.SetDefault("server.shutdowntimeout", "30s")
	v.SetDefault("server.ratelimit", 10.0)
	v.SetDefault("server.ratelimitburst", 20)
	v.SetDefault("server.loglevel", "info")

	v.SetDefault("game.startingscore", 100)
	v.SetDefault("game.minwordlength", 4)
	v.SetDefault("game.speedbonus", 5)

	v.SetDefault("dictionary.baseurl", "https://api.dictionaryapi.dev/api/v2/entries/en")
	v.SetDefault("dictionary.timeout", "5s")

	// The config file is optional; env vars and defaults carry a bare
	// deployment.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !strings.Contains(err.Error(), "no such file or directory") {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	cfg := &ServerConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
