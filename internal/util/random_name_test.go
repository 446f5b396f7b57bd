package util

import (
	"strings"
	"testing"

	"carddeck/internal/rng"

	"github.com/stretchr/testify/assert"
)

func TestRandomHandName(t *testing.T) {
	a := assert.New(t)

	name := RandomHandName(rng.NewSeeded(1))
	parts := strings.Split(name, " ")
	a.Equal(2, len(parts))
	a.Contains(adjectives, parts[0])
	a.Contains(players, parts[1])

	a.Equal(RandomHandName(rng.NewSeeded(7)), RandomHandName(rng.NewSeeded(7)))
}
