package deck

import "strings"

// Suit represents a card suit
type Suit int

// suit constants, in bridge order
const (
	NoSuit Suit = iota
	Clubs
	Diamonds
	Hearts
	Spades
)

var suits = []Suit{Clubs, Diamonds, Hearts, Spades}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	}

	return ""
}

// Name returns the English name of the suit
func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	}

	return ""
}

// sortKey orders suits for display. Anything outside the known four,
// including the joker's missing suit, sorts last.
func (s Suit) sortKey() int {
	if s >= Clubs && s <= Spades {
		return int(s)
	}

	return 10
}

// ParseSuit returns the Suit matching the glyph or English name.
// Matching is case-insensitive.
func ParseSuit(input string) (Suit, error) {
	for _, s := range suits {
		if input == s.String() || strings.EqualFold(input, s.Name()) {
			return s, nil
		}
	}

	return NoSuit, &ParseError{Kind: "suit", Input: input}
}
