// Package config loads the headless driver's settings. Game rules are fixed
// and live in models; only how the driver plays is configurable here.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/gauntlet/internal/models"
)

// Config is the driver configuration
type Config struct {
	Game      GameConfig      `mapstructure:"game"`
	Autopilot AutopilotConfig `mapstructure:"autopilot"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// GameConfig controls which games the driver simulates
type GameConfig struct {
	// Players are seated in order; the first one shoots first
	Players []string `mapstructure:"players"`

	// Rounds is how many games to play back to back
	Rounds int `mapstructure:"rounds"`

	// Seed fixes the dice and shuffles. Zero seeds from the clock.
	Seed int64 `mapstructure:"seed"`

	// MaxTurns stops a game that has not finished after this many turns
	MaxTurns int `mapstructure:"max_turns"`
}

// AutopilotConfig tunes the automated players
type AutopilotConfig struct {
	// EscapeThreshold is the turn damage at which the shooter takes an escape
	EscapeThreshold int `mapstructure:"escape_threshold"`

	// BetAmount is what every other player stakes FOR the shooter
	BetAmount int `mapstructure:"bet_amount"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validate checks every section and reports all violations at once
func (c Config) Validate() error {
	var errs []string

	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateAutopilot(c.Autopilot); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if n := len(g.Players); n < models.MinPlayers || n > models.MaxPlayers {
		errs = append(errs, fmt.Sprintf("game.players must name %d to %d players (got %d)", models.MinPlayers, models.MaxPlayers, n))
	}
	if g.Rounds < 1 {
		errs = append(errs, fmt.Sprintf("game.rounds must be >= 1 (got %d)", g.Rounds))
	}
	if g.Seed < 0 {
		errs = append(errs, fmt.Sprintf("game.seed must be >= 0 (got %d)", g.Seed))
	}
	if g.MaxTurns < 1 {
		errs = append(errs, fmt.Sprintf("game.max_turns must be >= 1 (got %d)", g.MaxTurns))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateAutopilot(a AutopilotConfig) error {
	var errs []string
	if a.EscapeThreshold < 0 {
		errs = append(errs, fmt.Sprintf("autopilot.escape_threshold must be >= 0 (got %d)", a.EscapeThreshold))
	}
	if a.BetAmount < 0 || a.BetAmount > models.MaxBet {
		errs = append(errs, fmt.Sprintf("autopilot.bet_amount must be between 0 and %d (got %d)", models.MaxBet, a.BetAmount))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration, applies GAUNTLET_ environment overrides and
// validates the result. An empty path skips the file and uses defaults.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetEnvPrefix("GAUNTLET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.players", []string{"Alice", "Bob", "Carol"})
	v.SetDefault("game.rounds", 1)
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.max_turns", 500)

	v.SetDefault("autopilot.escape_threshold", 3)
	v.SetDefault("autopilot.bet_amount", 1)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
