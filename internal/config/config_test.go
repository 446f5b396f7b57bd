package config

import (
	"os"
	"testing"

	"carddeck/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("DECK_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("DECK_HANDS", "4")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal(2, cfg.Decks)
	a.False(cfg.IncludeJokers)
	a.Equal(4, cfg.Hands)
	a.Equal(int64(42), cfg.Seed)
	a.Equal("debug", cfg.Log.Level)

	// ensure that it's only loaded once
	_ = os.Setenv("DECK_HANDS", "9")
	// ensure we aren't using a pointer
	cfg.Hands = -1
	cfg = Instance()
	a.Equal(4, cfg.Hands)
}

func TestDefaults(t *testing.T) {
	clear := util.SetEnv("DECK_CONFIG_FILE", "testdata/missing.yaml")
	defer clear()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, 1, cfg.Decks)
	assert.True(t, cfg.IncludeJokers)
	assert.Equal(t, 2, cfg.Hands)
	assert.Equal(t, 5, cfg.CardsPerHand)
	assert.Equal(t, "info", cfg.Log.Level)
}
