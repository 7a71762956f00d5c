package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// DatabaseURL is only required by commands that persist or serve stored
	// results; extraction from a file runs without it.
	DatabaseURL string `envconfig:"DATABASE_URL" default:""`
	DBMinConns  int32  `envconfig:"GALA_DB_MIN_CONNS" default:"1"`
	DBMaxConns  int32  `envconfig:"GALA_DB_MAX_CONNS" default:"8"`

	CeremonyName string `envconfig:"GALA_CEREMONY_NAME" default:"Golden Globes"`
	CeremonyYear int    `envconfig:"GALA_CEREMONY_YEAR" default:"2013"`

	// Extraction tunables. The reference values mirror the behavior the
	// pipeline was calibrated against; they are deliberately overridable
	// because the heuristics are weak signals, not hard constraints.
	WindowRadius        int     `envconfig:"GALA_WINDOW_RADIUS" default:"90"`
	MinTicketConfidence int     `envconfig:"GALA_MIN_TICKET_CONFIDENCE" default:"1"`
	MaxNamesPerPost     int     `envconfig:"GALA_MAX_NAMES_PER_POST" default:"10"`
	SimilarityThreshold float64 `envconfig:"GALA_SIMILARITY_THRESHOLD" default:"0.88"`
	PersonOverrideScore float64 `envconfig:"GALA_PERSON_OVERRIDE_SCORE" default:"0.90"`
	FuzzyMaxDistance    int     `envconfig:"GALA_FUZZY_MAX_DISTANCE" default:"10"`
	FuzzyMaxPhraseWords int     `envconfig:"GALA_FUZZY_MAX_PHRASE_WORDS" default:"12"`
	NomineesPerAward    int     `envconfig:"GALA_NOMINEES_PER_AWARD" default:"5"`
	PresentersPerAward  int     `envconfig:"GALA_PRESENTERS_PER_AWARD" default:"2"`
	MaxHosts            int     `envconfig:"GALA_MAX_HOSTS" default:"2"`
	EnglishOnly         bool    `envconfig:"GALA_ENGLISH_ONLY" default:"true"`

	ServeHost string `envconfig:"GALA_SERVE_HOST" default:"0.0.0.0"`
	ServePort int    `envconfig:"GALA_SERVE_PORT" default:"8090"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DBMinConns < 0 {
		return fmt.Errorf("GALA_DB_MIN_CONNS must be >= 0")
	}
	if c.DBMaxConns < 1 {
		return fmt.Errorf("GALA_DB_MAX_CONNS must be >= 1")
	}
	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("GALA_DB_MIN_CONNS (%d) cannot exceed GALA_DB_MAX_CONNS (%d)", c.DBMinConns, c.DBMaxConns)
	}
	if c.CeremonyYear < 1944 {
		return fmt.Errorf("GALA_CEREMONY_YEAR (%d) predates the ceremony", c.CeremonyYear)
	}
	if c.WindowRadius < 20 {
		return fmt.Errorf("GALA_WINDOW_RADIUS must be >= 20")
	}
	if c.SimilarityThreshold <= 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("GALA_SIMILARITY_THRESHOLD must be in (0, 1]")
	}
	if c.PersonOverrideScore <= 0 || c.PersonOverrideScore > 1 {
		return fmt.Errorf("GALA_PERSON_OVERRIDE_SCORE must be in (0, 1]")
	}
	if c.FuzzyMaxDistance < 1 {
		return fmt.Errorf("GALA_FUZZY_MAX_DISTANCE must be >= 1")
	}
	if c.FuzzyMaxPhraseWords < 3 {
		return fmt.Errorf("GALA_FUZZY_MAX_PHRASE_WORDS must be >= 3")
	}
	if c.NomineesPerAward < 1 {
		return fmt.Errorf("GALA_NOMINEES_PER_AWARD must be >= 1")
	}
	if c.PresentersPerAward < 1 {
		return fmt.Errorf("GALA_PRESENTERS_PER_AWARD must be >= 1")
	}
	if c.MaxHosts < 1 {
		return fmt.Errorf("GALA_MAX_HOSTS must be >= 1")
	}
	return nil
}

func (c *Config) RequireDatabaseURL() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required for this command")
	}
	return nil
}
