// Package config loads the settings of the minimaxGo front-ends from an optional YAML file
// and MINIMAX_* environment variables. Environment variables override the file.
package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/janpfeifer/minimaxGo/internal/game"
	"github.com/pkg/errors"
	"strings"
)

// Config of a play session.
type Config struct {
	Game       string `yaml:"game" env:"MINIMAX_GAME" env-default:"tictactoe" env-description:"Game to play: tictactoe or othello"`
	Difficulty string `yaml:"difficulty" env:"MINIMAX_DIFFICULTY" env-description:"AI difficulty: easy, medium (othello only), hard or a search depth"`
	AIConfig   string `yaml:"ai-config" env:"MINIMAX_AI_CONFIG" env-description:"AI player configuration, e.g. minimax,max_depth=3. Overrides difficulty"`
	First      string `yaml:"first" env:"MINIMAX_FIRST" env-default:"human" env-description:"Who plays first: human, ai or random"`
	Seed       uint64 `yaml:"seed" env:"MINIMAX_SEED" env-description:"Seed for the AI, 0 for a random seed"`
	NoColor    bool   `yaml:"no-color" env:"MINIMAX_NO_COLOR" env-description:"Disable colors in the terminal"`
}

// Valid values for Config.First.
const (
	FirstHuman  = "human"
	FirstAI     = "ai"
	FirstRandom = "random"
)

// Load the configuration from the YAML file in path, overridden by the environment.
// If path is empty, only the environment (and the defaults) are used.
func Load(path string) (*Config, error) {
	config := &Config{}
	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load configuration %q", path)
	}
	if err = config.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "invalid configuration %q", path)
	}
	return config, nil
}

// MustLoad is like Load, but panics on errors.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

// Validate the values of the configuration, normalizing them to lower case.
func (c *Config) Validate() error {
	variant, err := game.ParseVariant(c.Game)
	if err != nil {
		return err
	}
	c.Game = string(variant)
	if c.Difficulty != "" {
		if _, err = variant.Depth(game.Difficulty(c.Difficulty)); err != nil {
			return err
		}
		c.Difficulty = strings.ToLower(c.Difficulty)
	}
	c.First = strings.ToLower(c.First)
	switch c.First {
	case FirstHuman, FirstAI, FirstRandom:
	default:
		return errors.Errorf("invalid first=%q, valid values are %q, %q or %q", c.First, FirstHuman, FirstAI, FirstRandom)
	}
	return nil
}

// Variant returns the parsed game variant. Only valid after Validate.
func (c *Config) Variant() game.Variant {
	return game.Variant(c.Game)
}

// Usage returns the description of the environment variables, to be included in the
// help message of the binaries.
func Usage() string {
	description, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return err.Error()
	}
	return description
}
