package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keeperforge/keeper-core/internal/config"
	"github.com/keeperforge/keeper-core/internal/errors"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, 400, cfg.MaxGoldPileOutsideTreasury)
	assert.Equal(t, 30, cfg.ManaGainBase)
	assert.Equal(t, 20, cfg.TickRate)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_gold_pile_outside_treasury: 500\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.MaxGoldPileOutsideTreasury)
	assert.Equal(t, 30, cfg.ManaGainBase)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_rate: -1\n"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
