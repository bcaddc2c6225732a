// Package config reads the runner's settings from BARTOK_* environment
// variables, optionally seeded from a .env file.
package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const DefaultEnvFile = ".env"

type Config struct {
	Players       int           `env:"BARTOK_PLAYERS,default=4"`
	HumanSlot     int           `env:"BARTOK_HUMAN_SLOT,default=-1"`
	StartingCards int           `env:"BARTOK_STARTING_CARDS,default=7"`
	Seed          int64         `env:"BARTOK_SEED,default=0"`
	RestartDelay  time.Duration `env:"BARTOK_RESTART_DELAY,default=1s"`
	DeckFile      string        `env:"BARTOK_DECK_FILE"`
	LayoutFile    string        `env:"BARTOK_LAYOUT_FILE"`
	LogLevel      string        `env:"BARTOK_LOG_LEVEL,default=info"`
	// HouseRules is semicolon separated, e.g. "eights-wild".
	HouseRules []string `env:"BARTOK_HOUSE_RULES"`
	Rounds     int      `env:"BARTOK_ROUNDS,default=1"`
}

// Load reads envFile into the environment if it exists, without overriding
// variables already set, then decodes the environment.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	var c Config
	if err := envdecode.Decode(&c); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return Config{}, err
	}
	return c, c.Validate()
}

// Validate catches settings no game could be built from.
func (c Config) Validate() error {
	if c.LayoutFile == "" {
		if c.Players < 2 {
			return errors.New("BARTOK_PLAYERS must be at least 2")
		}
		if c.HumanSlot >= c.Players {
			return errors.New("BARTOK_HUMAN_SLOT must be a seat at the table, or -1")
		}
	}
	if c.StartingCards < 1 {
		return errors.New("BARTOK_STARTING_CARDS must be positive")
	}
	if c.Rounds < 1 {
		return errors.New("BARTOK_ROUNDS must be positive")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level is the configured log level.
func (c Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
