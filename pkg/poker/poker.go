package poker

import (
	"fmt"
	"strings"
)

// Category is a poker hand category, i.e., straight flush
type Category int

// Constants for category, ordered worst to best
const (
	HighCard Category = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	FiveOfAKind
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case FiveOfAKind:
		return "Five of a kind"
	default:
		panic(fmt.Sprintf("unknown category: %d", int(c)))
	}
}

// HandRank is the totally-ordered result of ranking a hand: a category
// plus its tie-break strengths. The best hand compares greatest.
type HandRank struct {
	Category  Category
	Tiebreaks []int
}

// Compare returns a negative number if r ranks below other, zero if
// they tie exactly, and a positive number otherwise. Ordering is
// lexicographic: category first, then tie-breaks element by element.
func (r HandRank) Compare(other HandRank) int {
	if r.Category != other.Category {
		return int(r.Category) - int(other.Category)
	}

	for i := 0; i < len(r.Tiebreaks) && i < len(other.Tiebreaks); i++ {
		if r.Tiebreaks[i] != other.Tiebreaks[i] {
			return r.Tiebreaks[i] - other.Tiebreaks[i]
		}
	}

	return len(r.Tiebreaks) - len(other.Tiebreaks)
}

// Less returns true if r ranks below other
func (r HandRank) Less(other HandRank) bool {
	return r.Compare(other) < 0
}

func (r HandRank) String() string {
	if len(r.Tiebreaks) == 0 {
		return r.Category.String()
	}

	parts := make([]string, len(r.Tiebreaks))
	for i, t := range r.Tiebreaks {
		parts[i] = fmt.Sprintf("%d", t)
	}

	return fmt.Sprintf("%s (%s)", r.Category, strings.Join(parts, ","))
}
