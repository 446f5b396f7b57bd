package deck

import (
	"errors"
	"fmt"
)

// errors returned by deck and hand operations
var (
	// ErrDeckCount is returned when building a deck with a negative count
	ErrDeckCount = errors.New("deck count cannot be negative")

	// ErrEmptyDeck is returned when a deal is attempted on an empty deck
	ErrEmptyDeck = errors.New("deck is empty")

	// ErrInsufficientCards is returned when a multi-hand deal asks for more cards than remain
	ErrInsufficientCards = errors.New("not enough cards to deal")

	// ErrNotFound is returned when a hand search has no match
	ErrNotFound = errors.New("no matching card in hand")

	// ErrBadTarget is returned when a hand search target is not a card, suit, or value
	ErrBadTarget = errors.New("unsupported search target")

	// ErrComparisonMode is returned for an unknown comparison mode
	ErrComparisonMode = errors.New("unknown comparison mode")

	// ErrSortOrder is returned for an unknown sort order
	ErrSortOrder = errors.New("unknown sort order")
)

// ParseError is returned when an input cannot be recognized as a suit
// or value
type ParseError struct {
	Kind  string
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %s: %q", e.Kind, e.Input)
}
