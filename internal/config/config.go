package config

import (
	"fmt"
	"time"
)

// This file defines the configuration structures; loading is handled by
// viper in viper_config.go.

// ServerConfig is the root configuration.
type ServerConfig struct {
	Server     ServerSettings     `yaml:"server"`
	Game       GameSettings       `yaml:"game"`
	Dictionary DictionarySettings `yaml:"dictionary"`
}

// ServerSettings contains the HTTP server knobs.
type ServerSettings struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`

	// Read/write timeouts default to 0 so long-lived websocket
	// connections are not killed mid-game.
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	IdleTimeout     time.Duration `yaml:"idleTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`

	// Rate limiting (using golang.org/x/time/rate)
	RateLimit      float64 `yaml:"rateLimit"`
	RateLimitBurst int     `yaml:"rateLimitBurst"`

	LogLevel string `yaml:"logLevel"`
}

// GameSettings contains the round rule constants.
type GameSettings struct {
	StartingScore int `yaml:"startingScore"`
	MinWordLength int `yaml:"minWordLength"`
	SpeedBonus    int `yaml:"speedBonus"`
}

// DictionarySettings configures the external word lookup.
type DictionarySettings struct {
	BaseURL string        `yaml:"baseUrl"`
	Timeout time.Duration `yaml:"timeout"`
}

// Addr returns the listen address.
func (c *ServerConfig) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// Validate checks the configuration for values that would break the game.
func (c *ServerConfig) Validate() error {
	if c.Game.StartingScore <= 0 {
		return fmt.Errorf("startingScore must be positive, got %d", c.Game.StartingScore)
	}
	if c.Game.MinWordLength < 1 {
		return fmt.Errorf("minWordLength must be at least 1, got %d", c.Game.MinWordLength)
	}
	if c.Game.SpeedBonus < 0 {
		return fmt.Errorf("speedBonus must not be negative, got %d", c.Game.SpeedBonus)
	}
	if c.Dictionary.Timeout <= 0 {
		return fmt.Errorf("dictionary timeout must be positive, got %v", c.Dictionary.Timeout)
	}
	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("rateLimit must be positive, got %v", c.Server.RateLimit)
	}
	return nil
}
