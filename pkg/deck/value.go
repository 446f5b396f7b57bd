package deck

import (
	"strconv"
	"strings"
)

// Value represents a card value. Values run Ace (1) through King (13).
// Joker sits above King so an unconditional max puts jokers first.
type Value int

// value constants
const (
	Ace   Value = 1
	Two   Value = 2
	Three Value = 3
	Four  Value = 4
	Five  Value = 5
	Six   Value = 6
	Seven Value = 7
	Eight Value = 8
	Nine  Value = 9
	Ten   Value = 10
	Jack  Value = 11
	Queen Value = 12
	King  Value = 13
	Joker Value = 15
)

var valueNames = map[Value]string{
	Ace:   "Ace",
	Two:   "Two",
	Three: "Three",
	Four:  "Four",
	Five:  "Five",
	Six:   "Six",
	Seven: "Seven",
	Eight: "Eight",
	Nine:  "Nine",
	Ten:   "Ten",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
	Joker: "Joker",
}

// displayNames lists the display names for a value, longest first.
// Rendering picks the first name that fits the requested width. Values
// not listed here render as their number.
var displayNames = map[Value][]string{
	Ace:   {"Ace", "A"},
	King:  {"King", "Kng", "K"},
	Queen: {"Queen", "Que", "Q"},
	Jack:  {"Jack", "Jck", "J"},
	Ten:   {"10", "X"},
	Joker: {"Joker", "Jok", "🤡"},
}

func (v Value) String() string {
	if name, ok := valueNames[v]; ok {
		return name
	}

	return strconv.Itoa(int(v))
}

// AcesHigh returns the competitive strength of the value: Ace counts
// as 14 and Joker as 15, everything else is its natural number.
func (v Value) AcesHigh() int {
	switch v {
	case Ace:
		return 14
	case Joker:
		return 15
	default:
		return int(v)
	}
}

// names returns the candidate display names for the value, longest
// first.
func (v Value) names() []string {
	if names, ok := displayNames[v]; ok {
		return names
	}

	return []string{strconv.Itoa(int(v))}
}

// ParseValueInt returns the Value for n. Only 1 through 13 are valid;
// the joker cannot be named by number.
func ParseValueInt(n int) (Value, error) {
	if n >= int(Ace) && n <= int(King) {
		return Value(n), nil
	}

	return 0, &ParseError{Kind: "value", Input: strconv.Itoa(n)}
}

// ParseValue returns the Value matching the English name,
// case-insensitively, or a numeric string 1-13. Display abbreviations
// are not accepted.
func ParseValue(input string) (Value, error) {
	for v, name := range valueNames {
		if strings.EqualFold(input, name) {
			return v, nil
		}
	}

	if n, err := strconv.Atoi(input); err == nil {
		if v, err := ParseValueInt(n); err == nil {
			return v, nil
		}
	}

	return 0, &ParseError{Kind: "value", Input: input}
}
