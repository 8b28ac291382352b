// Package config holds the engine settings shared by the shell and the
// automatic game runner.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"draughts/eval"
	"draughts/game"
)

// Config is the engine configuration.
type Config struct {
	// Depth is the search depth in plies.
	Depth int `mapstructure:"depth"`
	// Evaluator names the heuristic used at search cutoff.
	Evaluator string `mapstructure:"evaluator"`
	// MaxTurns is the draw cap for a full game; 0 disables it.
	MaxTurns int `mapstructure:"max_turns"`
	// Debug turns on debug logging.
	Debug bool `mapstructure:"debug"`
}

// DefaultConfig returns the out-of-the-box settings: a 3-ply material
// engine.
func DefaultConfig() Config {
	return Config{
		Depth:     3,
		Evaluator: eval.MaterialEvaluator,
		MaxTurns:  game.DefaultMaxTurns,
	}
}

// Load reads configuration from an optional config file and from
// DRAUGHTS_* environment variables, on top of the defaults. cfgFile
// may be empty.
func Load(cfgFile string) (Config, error) {
	c := DefaultConfig()

	v := viper.New()
	v.SetDefault("depth", c.Depth)
	v.SetDefault("evaluator", c.Evaluator)
	v.SetDefault("max_turns", c.MaxTurns)
	v.SetDefault("debug", c.Debug)

	v.SetEnvPrefix("draughts")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return c, err
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}
