package deck

import (
	"sort"
	"strings"

	"golang.org/x/exp/slices"
)

// Hand represents an ordered collection of cards. Order is significant
// and preserved unless explicitly sorted, and duplicates are
// permitted. A hand is not required to be a valid poker hand.
type Hand []Card

// NewHand returns a hand holding the given cards
func NewHand(cards ...Card) Hand {
	return Hand(slices.Clone(cards))
}

// Append adds a card to the hand
func (h *Hand) Append(card Card) {
	*h = append(*h, card)
}

// Extend adds multiple cards to the hand
func (h *Hand) Extend(cards []Card) {
	*h = append(*h, cards...)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	return Hand(slices.Clone(h))
}

func matchValue(value Value) func(Card) bool {
	return func(c Card) bool { return c.Value == value }
}

func matchSuit(suit Suit) func(Card) bool {
	return func(c Card) bool { return c.Suit == suit }
}

// matcher resolves a search target into a predicate. A Card is matched
// under the active comparison mode; an explicit Suit or Value matches
// that attribute directly. Strings and ints are parsed into a suit or
// value first.
func (h Hand) matcher(target any) (func(Card) bool, error) {
	switch v := target.(type) {
	case Card:
		switch defaultComparison {
		case Exact:
			return v.Equal, nil
		case Values:
			return matchValue(v.Value), nil
		case Suits:
			return matchSuit(v.Suit), nil
		default:
			return nil, ErrComparisonMode
		}
	case Value:
		return matchValue(v), nil
	case Suit:
		return matchSuit(v), nil
	case int:
		value, err := ParseValueInt(v)
		if err != nil {
			return nil, err
		}

		return matchValue(value), nil
	case string:
		if suit, err := ParseSuit(v); err == nil {
			return matchSuit(suit), nil
		}

		value, err := ParseValue(v)
		if err != nil {
			return nil, err
		}

		return matchValue(value), nil
	}

	return nil, ErrBadTarget
}

// Index locates the first card matching the target under the active
// comparison mode. The target may be a Card, Suit, Value, or a string
// or int that parses to one. Returns ErrNotFound on a miss.
func (h Hand) Index(target any) (int, error) {
	match, err := h.matcher(target)
	if err != nil {
		return -1, err
	}

	for i, c := range h {
		if match(c) {
			return i, nil
		}
	}

	return -1, ErrNotFound
}

// Contains returns true if the hand holds a match for the target under
// the active comparison mode
func (h Hand) Contains(target any) bool {
	_, err := h.Index(target)
	return err == nil
}

// Count returns the number of cards matching the target under the
// active comparison mode. Unmatchable targets count zero.
func (h Hand) Count(target any) int {
	match, err := h.matcher(target)
	if err != nil {
		return 0
	}

	count := 0
	for _, c := range h {
		if match(c) {
			count++
		}
	}

	return count
}

func comparisonOrDefault(cmp []Comparison) Comparison {
	if len(cmp) > 0 {
		return cmp[0]
	}

	return defaultComparison
}

// Intersect returns the cards of the hand that have a counterpart in
// other. Under Exact the result is a true set intersection with
// duplicates collapsed; under Values or Suits it is a filter of the
// hand keeping order and duplicates for every card whose value or suit
// appears anywhere in other.
func (h Hand) Intersect(other Hand, cmp ...Comparison) (Hand, error) {
	out := make(Hand, 0, len(h))

	switch comparisonOrDefault(cmp) {
	case Exact:
		inOther := make(map[Card]struct{}, len(other))
		for _, c := range other {
			inOther[c.canonical()] = struct{}{}
		}

		seen := make(map[Card]struct{}, len(h))
		for _, c := range h {
			key := c.canonical()
			if _, ok := inOther[key]; !ok {
				continue
			}

			if _, ok := seen[key]; ok {
				continue
			}

			seen[key] = struct{}{}
			out = append(out, c)
		}
	case Values:
		values := make(map[Value]struct{}, len(other))
		for _, c := range other {
			values[c.Value] = struct{}{}
		}

		for _, c := range h {
			if _, ok := values[c.Value]; ok {
				out = append(out, c)
			}
		}
	case Suits:
		handSuits := make(map[Suit]struct{}, len(other))
		for _, c := range other {
			handSuits[c.Suit] = struct{}{}
		}

		for _, c := range h {
			if _, ok := handSuits[c.Suit]; ok {
				out = append(out, c)
			}
		}
	default:
		return nil, ErrComparisonMode
	}

	return out, nil
}

// Union returns every card of the hand in original order, followed by
// the cards from other whose identity, value, or suit (per the mode)
// is not already present in the hand.
func (h Hand) Union(other Hand, cmp ...Comparison) (Hand, error) {
	out := h.Clone()

	switch comparisonOrDefault(cmp) {
	case Exact:
		have := make(map[Card]struct{}, len(h))
		for _, c := range h {
			have[c.canonical()] = struct{}{}
		}

		for _, c := range other {
			if _, ok := have[c.canonical()]; !ok {
				out = append(out, c)
			}
		}
	case Values:
		values := make(map[Value]struct{}, len(h))
		for _, c := range h {
			values[c.Value] = struct{}{}
		}

		for _, c := range other {
			if _, ok := values[c.Value]; !ok {
				out = append(out, c)
			}
		}
	case Suits:
		handSuits := make(map[Suit]struct{}, len(h))
		for _, c := range h {
			handSuits[c.Suit] = struct{}{}
		}

		for _, c := range other {
			if _, ok := handSuits[c.Suit]; !ok {
				out = append(out, c)
			}
		}
	default:
		return nil, ErrComparisonMode
	}

	return out, nil
}

// And is Intersect under the active comparison mode, returning a new
// hand
func (h Hand) And(other Hand) (Hand, error) {
	return h.Intersect(other)
}

// Or is Union under the active comparison mode, returning a new hand
func (h Hand) Or(other Hand) (Hand, error) {
	return h.Union(other)
}

// IntersectWith replaces the hand's contents with the intersection
func (h *Hand) IntersectWith(other Hand, cmp ...Comparison) error {
	out, err := h.Intersect(other, cmp...)
	if err != nil {
		return err
	}

	*h = out
	return nil
}

// UnionWith replaces the hand's contents with the union
func (h *Hand) UnionWith(other Hand, cmp ...Comparison) error {
	out, err := h.Union(other, cmp...)
	if err != nil {
		return err
	}

	*h = out
	return nil
}

// lessFunc builds the comparator for a sort order. A nil comparator
// means leave the current order alone.
func (h Hand) lessFunc(order SortOrder) (func(a, b Card) bool, error) {
	switch order {
	case SortDefault:
		return func(a, b Card) bool {
			if a.Value != b.Value {
				return a.Value < b.Value
			}

			return a.Suit.sortKey() < b.Suit.sortKey()
		}, nil
	case SortAcesHigh:
		return func(a, b Card) bool {
			if av, bv := a.Value.AcesHigh(), b.Value.AcesHigh(); av != bv {
				return av < bv
			}

			return a.Suit.sortKey() < b.Suit.sortKey()
		}, nil
	case SortPoker:
		counts := make(map[Value]int, len(h))
		for _, c := range h {
			counts[c.Value]++
		}

		return func(a, b Card) bool {
			if counts[a.Value] != counts[b.Value] {
				return counts[a.Value] > counts[b.Value]
			}

			if av, bv := a.Value.AcesHigh(), b.Value.AcesHigh(); av != bv {
				return av > bv
			}

			return a.Suit.sortKey() < b.Suit.sortKey()
		}, nil
	case SortUnsorted:
		return nil, nil
	}

	return nil, ErrSortOrder
}

func (h Hand) sorted(reverse bool, orders []SortOrder) (Hand, error) {
	order := defaultSortOrder
	if len(orders) > 0 {
		order = orders[0]
	}

	less, err := h.lessFunc(order)
	if err != nil {
		return nil, err
	}

	out := h.Clone()
	if less == nil {
		return out, nil
	}

	cmp := less
	if reverse {
		// invert the comparator rather than the result, so ties keep
		// their original order
		cmp = func(a, b Card) bool { return less(b, a) }
	}

	sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j]) })
	return out, nil
}

// Sorted returns the cards sorted ascending by the given order, or the
// active default order when none is given. The hand is not mutated.
func (h Hand) Sorted(order ...SortOrder) (Hand, error) {
	return h.sorted(false, order)
}

// SortedDesc is Sorted with the comparator inverted
func (h Hand) SortedDesc(order ...SortOrder) (Hand, error) {
	return h.sorted(true, order)
}

// Sort sorts the cards in place
func (h *Hand) Sort(order ...SortOrder) error {
	out, err := h.sorted(false, order)
	if err != nil {
		return err
	}

	*h = out
	return nil
}

// SortDesc sorts the cards in place with the comparator inverted
func (h *Hand) SortDesc(order ...SortOrder) error {
	out, err := h.sorted(true, order)
	if err != nil {
		return err
	}

	*h = out
	return nil
}

// Direction selects an optional display-only sort when rendering a
// hand
type Direction int

// render direction constants
const (
	NoSort Direction = iota
	Ascending
	Descending
)

// Format renders the hand as a concatenation of individually formatted
// cards. Each card occupies a field one wider than the card width so
// columns stay separated. Ascending and Descending sort the rendering
// using the active default order without mutating the hand.
func (h Hand) Format(justify Justify, width int, dir Direction) string {
	cards := h
	switch dir {
	case Ascending:
		if sorted, err := h.Sorted(); err == nil {
			cards = sorted
		}
	case Descending:
		if sorted, err := h.SortedDesc(); err == nil {
			cards = sorted
		}
	}

	var sb strings.Builder
	for _, c := range cards {
		if width == 0 {
			sb.WriteString(c.displayString(0))
			sb.WriteByte(' ')
			continue
		}

		sb.WriteString(pad(c.displayString(width), justify, width+1))
	}

	return strings.TrimRight(sb.String(), " ")
}

func (h Hand) String() string {
	return h.Format(JustifyLeft, 3, Descending)
}
