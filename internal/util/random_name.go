package util

import (
	"fmt"

	"carddeck/internal/rng"
)

var adjectives = []string{
	"Lucky", "Bold", "Quiet", "Bluffing", "Patient", "Reckless", "Steady", "Cunning", "Cheerful", "Grim",
	"Golden", "Crimson", "Emerald", "Midnight", "Marble", "Velvet", "Rusty", "Polished", "Humble", "Royal",
}

var players = []string{
	"Dealer", "Shark", "Rounder", "Whale", "Maverick", "Gambler", "Railbird", "Grinder", "Joker", "Ace",
	"Duchess", "Baron", "Drifter", "Cowboy", "Countess", "Rook", "Pirate", "Sheriff", "Banker", "Duke",
}

// RandomHandName returns a label for a dealt hand by combining an
// adjective with a card-table persona
func RandomHandName(r rng.Generator) string {
	return fmt.Sprintf("%s %s", adjectives[r.Intn(len(adjectives))], players[r.Intn(len(players))])
}
