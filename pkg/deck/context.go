package deck

// Comparison determines what "matching" means for hand search and set
// algebra
type Comparison string

// comparison mode constants
const (
	// Exact matches on full card equality
	Exact Comparison = "exact"
	// Values matches by value only, ignoring suit
	Values Comparison = "values"
	// Suits matches by suit only, ignoring value
	Suits Comparison = "suits"
)

func (c Comparison) valid() bool {
	switch c {
	case Exact, Values, Suits:
		return true
	}

	return false
}

// SortOrder determines hand iteration order for display and comparison
type SortOrder string

// sort order constants
const (
	// SortDefault orders by value then suit, with jokers last
	SortDefault SortOrder = "default"
	// SortPoker groups by value frequency, strongest groups first
	SortPoker SortOrder = "poker"
	// SortAcesHigh is like SortDefault with Ace above King
	SortAcesHigh SortOrder = "aces-high"
	// SortUnsorted leaves the current order untouched
	SortUnsorted SortOrder = "unsorted"
)

func (s SortOrder) valid() bool {
	switch s {
	case SortDefault, SortPoker, SortAcesHigh, SortUnsorted:
		return true
	}

	return false
}

// The process-wide defaults are only reachable through the With*
// helpers, which guarantee restoration when the scope exits. In a
// concurrent setting these would need to move into a per-goroutine
// context.
var (
	defaultComparison = Exact
	defaultSortOrder  = SortDefault
)

// DefaultComparison returns the active default comparison mode
func DefaultComparison() Comparison {
	return defaultComparison
}

// DefaultSortOrder returns the active default sort order
func DefaultSortOrder() SortOrder {
	return defaultSortOrder
}

// WithComparison runs fn with cmp as the default comparison mode. The
// previous default is restored when fn returns, panics included.
func WithComparison(cmp Comparison, fn func()) error {
	if !cmp.valid() {
		return ErrComparisonMode
	}

	prev := defaultComparison
	defaultComparison = cmp
	defer func() {
		defaultComparison = prev
	}()

	fn()
	return nil
}

// WithSortOrder runs fn with order as the default sort order. The
// previous default is restored when fn returns, panics included.
func WithSortOrder(order SortOrder, fn func()) error {
	if !order.valid() {
		return ErrSortOrder
	}

	prev := defaultSortOrder
	defaultSortOrder = order
	defer func() {
		defaultSortOrder = prev
	}()

	fn()
	return nil
}
