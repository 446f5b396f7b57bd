package config

import (
	"os"

	"carddeck/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the dealer CLI
type Config struct {
	loaded        bool
	Decks         int   `yaml:"decks" envconfig:"decks"`
	IncludeJokers bool  `yaml:"includeJokers" envconfig:"include_jokers"`
	Hands         int   `yaml:"hands" envconfig:"hands"`
	CardsPerHand  int   `yaml:"cardsPerHand" envconfig:"cards_per_hand"`
	Seed          int64 `yaml:"seed" envconfig:"seed"`
	Log           struct {
		Level string `yaml:"level" envconfig:"level"`
		JSON  bool   `yaml:"json" envconfig:"json"`
	} `yaml:"log"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is not an
// error; defaults and environment overrides still apply.
func Load() error {
	config = Config{
		Decks:         1,
		IncludeJokers: true,
		Hands:         2,
		CardsPerHand:  5,
	}
	config.Log.Level = "info"

	configFile := util.Getenv("DECK_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("deck", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
