// Package config holds the numeric game settings the simulation core reads.
//
// The settings are an immutable record loaded once at startup; every key the
// core reads has a documented default so a missing or partial file still
// yields a playable configuration.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/keeperforge/keeper-core/internal/errors"
)

// Settings holds per-game numeric rules
type Settings struct {
	// MaxGoldPileOutsideTreasury is the default capacity of a gold pile
	// that is not tied to a treasury room. Default 400.
	MaxGoldPileOutsideTreasury int `yaml:"max_gold_pile_outside_treasury"`

	// ManaGainBase is the mana gained per tick by every mana-using player.
	// Default 30.
	ManaGainBase int `yaml:"mana_gain_base"`

	// TickRate is the simulation tick rate in Hz. Default 20.
	TickRate int `yaml:"tick_rate"`
}

// Default returns settings with every key at its documented default
func Default() *Settings {
	return &Settings{
		MaxGoldPileOutsideTreasury: 400,
		ManaGainBase:               30,
		TickRate:                   20,
	}
}

// Load reads settings from a YAML file, filling defaults for absent keys
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read settings file %s", path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse settings file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures the settings are usable
func (s *Settings) Validate() error {
	vb := errors.NewValidationBuilder()

	if s.MaxGoldPileOutsideTreasury <= 0 {
		vb.InvalidField("MaxGoldPileOutsideTreasury", "must be positive")
	}
	if s.TickRate <= 0 {
		vb.InvalidField("TickRate", "must be positive")
	}

	return vb.Build()
}
