package deck

import (
	"strings"
	"unicode/utf8"
)

// Card is an individual playing card. Cards are immutable values; the
// zero-suit, Joker-value form is the joker and carries no suit. Cards
// built through the constructors are canonical, so == and map keys
// agree with Equal.
type Card struct {
	Suit  Suit  `json:"suit"`
	Value Value `json:"value"`
}

// NewCard returns a card with the given suit and value. Passing the
// Joker value returns the canonical joker regardless of suit.
func NewCard(suit Suit, value Value) Card {
	if value == Joker {
		return NewJoker()
	}

	return Card{Suit: suit, Value: value}
}

// NewJoker returns a joker
func NewJoker() Card {
	return Card{Suit: NoSuit, Value: Joker}
}

// IsJoker returns true if the card is a joker
func (c Card) IsJoker() bool {
	return c.Value == Joker
}

// Equal returns true if the cards are equal. Jokers are equal to each
// other regardless of any suit they may claim.
func (c Card) Equal(card Card) bool {
	if c.IsJoker() && card.IsJoker() {
		return true
	}

	return c.Suit == card.Suit && c.Value == card.Value
}

// canonical collapses every joker to the single canonical form so
// cards can be used as map keys.
func (c Card) canonical() Card {
	if c.IsJoker() {
		return NewJoker()
	}

	return c
}

func (c Card) String() string {
	return c.displayString(3)
}

// Justify positions a card within its rendered field
type Justify int

// justification constants
const (
	JustifyLeft Justify = iota
	JustifyRight
	JustifyCenter
)

// Format renders the card into a field of the given width. The widest
// display name that fits is chosen, the suit glyph is appended for
// non-jokers, and the result is padded per the justification. A width
// of zero means no limit and no padding.
func (c Card) Format(justify Justify, width int) string {
	return pad(c.displayString(width), justify, width)
}

// displayString picks the widest name that fits the width. The suit
// glyph counts against the width for regular cards.
func (c Card) displayString(width int) string {
	names := c.Value.names()
	s := names[0]

	if c.IsJoker() {
		for _, name := range names {
			s = name
			if width == 0 || utf8.RuneCountInString(name) <= width {
				break
			}
		}

		return s
	}

	for _, name := range names {
		s = name
		if width == 0 || utf8.RuneCountInString(name) < width {
			break
		}
	}

	return s + c.Suit.String()
}

func pad(s string, justify Justify, width int) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}

	switch justify {
	case JustifyRight:
		return strings.Repeat(" ", gap) + s
	case JustifyCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}
