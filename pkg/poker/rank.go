package poker

import (
	"errors"
	"sort"

	"carddeck/pkg/deck"
)

// ErrJokerInHand is returned when ranking a hand that contains a
// joker. Wild cards are not supported.
var ErrJokerInHand = errors.New("cannot rank a hand containing jokers")

// ErrNoCards is returned when ranking an empty hand
var ErrNoCards = errors.New("no cards to rank")

// Rank classifies the cards into the best possible 5-card poker hand.
// With more than five cards, every 5-card combination is ranked and
// the maximum returned. Rank is invariant under input reordering.
func Rank(cards []deck.Card) (HandRank, error) {
	if len(cards) == 0 {
		return HandRank{}, ErrNoCards
	}

	for _, c := range cards {
		if c.IsJoker() {
			return HandRank{}, ErrJokerInHand
		}
	}

	if len(cards) > 5 {
		return rankBest(cards), nil
	}

	return rankFive(cards), nil
}

// rankBest ranks every 5-card combination and keeps the maximum.
// Cost is C(n,5), fine for the hand sizes poker deals in.
func rankBest(cards []deck.Card) HandRank {
	var best HandRank
	pick := make([]deck.Card, 0, 5)

	var walk func(start int)
	walk = func(start int) {
		if len(pick) == 5 {
			if r := rankFive(pick); best.Category == 0 || best.Less(r) {
				best = r
			}

			return
		}

		for i := start; i <= len(cards)-(5-len(pick)); i++ {
			pick = append(pick, cards[i])
			walk(i + 1)
			pick = pick[:len(pick)-1]
		}
	}

	walk(0)
	return best
}

func rankFive(cards []deck.Card) HandRank {
	groups := groupValues(cards)
	suitCount := countSuits(cards)
	top, isStraight := straightHigh(cards)

	primary := groups[0]
	var secondary group
	if len(groups) > 1 {
		secondary = groups[1]
	}

	switch {
	case primary.count == 5:
		return HandRank{Category: FiveOfAKind, Tiebreaks: []int{primary.strength}}
	case suitCount == 1 && isStraight:
		return HandRank{Category: StraightFlush, Tiebreaks: []int{top}}
	case primary.count == 4:
		return HandRank{Category: FourOfAKind, Tiebreaks: []int{primary.strength}}
	case primary.count == 3 && secondary.count == 2:
		return HandRank{Category: FullHouse, Tiebreaks: []int{primary.strength}}
	case suitCount == 1 && len(cards) == 5:
		strengths := make([]int, len(cards))
		for i, c := range cards {
			strengths[i] = c.Value.AcesHigh()
		}

		sort.Sort(sort.Reverse(sort.IntSlice(strengths)))
		return HandRank{Category: Flush, Tiebreaks: strengths}
	case isStraight:
		return HandRank{Category: Straight, Tiebreaks: []int{top}}
	case primary.count == 3:
		tiebreaks := []int{primary.strength}
		if secondary.count > 0 {
			tiebreaks = append(tiebreaks, secondary.strength)
		}

		return HandRank{Category: ThreeOfAKind, Tiebreaks: tiebreaks}
	case primary.count == 2 && secondary.count == 2:
		return HandRank{Category: TwoPair, Tiebreaks: []int{primary.strength, secondary.strength}}
	case primary.count == 2:
		tiebreaks := []int{primary.strength}
		if secondary.count > 0 {
			tiebreaks = append(tiebreaks, secondary.strength)
		}

		return HandRank{Category: Pair, Tiebreaks: tiebreaks}
	}

	tiebreaks := make([]int, len(groups))
	for i, g := range groups {
		tiebreaks[i] = g.strength
	}

	return HandRank{Category: HighCard, Tiebreaks: tiebreaks}
}

// group is one distinct value in a hand along with its multiplicity
type group struct {
	value    deck.Value
	count    int
	strength int
}

// groupValues returns the distinct values, largest groups first and
// stronger values first within the same size
func groupValues(cards []deck.Card) []group {
	counts := make(map[deck.Value]int)
	for _, c := range cards {
		counts[c.Value]++
	}

	groups := make([]group, 0, len(counts))
	for v, n := range counts {
		groups = append(groups, group{value: v, count: n, strength: v.AcesHigh()})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}

		return groups[i].strength > groups[j].strength
	})

	return groups
}

func countSuits(cards []deck.Card) int {
	distinct := make(map[deck.Suit]struct{}, 4)
	for _, c := range cards {
		distinct[c.Suit] = struct{}{}
	}

	return len(distinct)
}

// straightHigh detects a straight under both ace arrangements: once
// with aces high (10-J-Q-K-A) and once with aces low (A-2-3-4-5). A
// straight needs exactly five consecutive, distinct ranks. The ace-low
// straight reports 5 as its top card.
func straightHigh(cards []deck.Card) (int, bool) {
	if len(cards) != 5 {
		return 0, false
	}

	acesHigh := make([]int, len(cards))
	acesLow := make([]int, len(cards))
	for i, c := range cards {
		acesHigh[i] = c.Value.AcesHigh()
		acesLow[i] = int(c.Value)
	}

	if top, ok := runOfFive(acesHigh); ok {
		return top, true
	}

	return runOfFive(acesLow)
}

func runOfFive(ranks []int) (int, bool) {
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[0]-i {
			return 0, false
		}
	}

	return ranks[0], true
}
