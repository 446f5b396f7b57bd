package poker

import (
	"testing"

	"carddeck/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func rankOf(t *testing.T, s string) HandRank {
	t.Helper()

	r, err := Rank(deck.CardsFromString(s))
	assert.NoError(t, err)
	return r
}

func TestRank_HighCard(t *testing.T) {
	a := assert.New(t)

	a.Equal(HandRank{Category: HighCard, Tiebreaks: []int{9, 7, 5, 4, 2}}, rankOf(t, "2s,4c,5h,7d,9s"))

	// aces count high
	a.Equal(HandRank{Category: HighCard, Tiebreaks: []int{14, 7, 5, 4, 2}}, rankOf(t, "2s,4c,5h,7d,1s"))
}

func TestRank_Pair(t *testing.T) {
	a := assert.New(t)

	// the kicker is the next-highest remaining value
	a.Equal(HandRank{Category: Pair, Tiebreaks: []int{2, 9}}, rankOf(t, "2s,2c,5h,7d,9s"))
	a.Equal(HandRank{Category: Pair, Tiebreaks: []int{14, 9}}, rankOf(t, "1s,1c,5h,7d,9s"))

	// a bare pair has no kicker
	a.Equal(HandRank{Category: Pair, Tiebreaks: []int{5}}, rankOf(t, "5s,5c"))
}

func TestRank_TwoPair(t *testing.T) {
	a := assert.New(t)

	a.Equal(HandRank{Category: TwoPair, Tiebreaks: []int{13, 5}}, rankOf(t, "13c,5h,13d,5s,9c"))
	a.Equal(HandRank{Category: TwoPair, Tiebreaks: []int{14, 2}}, rankOf(t, "1c,2h,1d,2s,9c"))
}

func TestRank_ThreeOfAKind(t *testing.T) {
	a := assert.New(t)

	a.Equal(HandRank{Category: ThreeOfAKind, Tiebreaks: []int{5, 13}}, rankOf(t, "5c,5d,5h,13s,2c"))
	a.Equal(HandRank{Category: ThreeOfAKind, Tiebreaks: []int{5}}, rankOf(t, "5c,5d,5h"))
}

func TestRank_Straight(t *testing.T) {
	a := assert.New(t)

	a.Equal(HandRank{Category: Straight, Tiebreaks: []int{6}}, rankOf(t, "2c,3c,4h,5d,6s"))

	// ace-low straight tops out at the five
	a.Equal(HandRank{Category: Straight, Tiebreaks: []int{5}}, rankOf(t, "1c,2c,3h,4d,5s"))

	// ace-high straight
	a.Equal(HandRank{Category: Straight, Tiebreaks: []int{14}}, rankOf(t, "10c,11c,12h,13d,1s"))

	// four in a row is no straight
	a.Equal(HighCard, rankOf(t, "2c,3c,4h,5d,7s").Category)

	// K-A-2 does not wrap
	a.Equal(HighCard, rankOf(t, "12c,13c,1h,2d,3s").Category)
}

func TestRank_Flush(t *testing.T) {
	a := assert.New(t)

	a.Equal(HandRank{Category: Flush, Tiebreaks: []int{13, 9, 8, 4, 2}}, rankOf(t, "2c,4c,8c,9c,13c"))

	// four suited cards are not a flush
	a.Equal(HighCard, rankOf(t, "2c,4c,8c,9c").Category)
}

func TestRank_FullHouse(t *testing.T) {
	a := assert.New(t)

	a.Equal(HandRank{Category: FullHouse, Tiebreaks: []int{5}}, rankOf(t, "5c,5d,5h,13s,13c"))
	a.Equal(HandRank{Category: FullHouse, Tiebreaks: []int{14}}, rankOf(t, "1c,1d,1h,2s,2c"))
}

func TestRank_FourOfAKind(t *testing.T) {
	a := assert.New(t)

	a.Equal(HandRank{Category: FourOfAKind, Tiebreaks: []int{5}}, rankOf(t, "5c,5d,5h,5s,2c"))
	a.Equal(HandRank{Category: FourOfAKind, Tiebreaks: []int{14}}, rankOf(t, "1c,1d,1h,1s,13c"))
}

func TestRank_StraightFlush(t *testing.T) {
	a := assert.New(t)

	a.Equal(HandRank{Category: StraightFlush, Tiebreaks: []int{9}}, rankOf(t, "5c,6c,7c,8c,9c"))

	// steel wheel
	a.Equal(HandRank{Category: StraightFlush, Tiebreaks: []int{5}}, rankOf(t, "1s,2s,3s,4s,5s"))

	// royal
	a.Equal(HandRank{Category: StraightFlush, Tiebreaks: []int{14}}, rankOf(t, "10h,11h,12h,13h,1h"))
}

func TestRank_FiveOfAKind(t *testing.T) {
	a := assert.New(t)

	// only reachable with more than one deck
	a.Equal(HandRank{Category: FiveOfAKind, Tiebreaks: []int{9}}, rankOf(t, "9c,9d,9h,9s,9c"))

	// a suited quint is a five of a kind, not a flush
	a.Equal(HandRank{Category: FiveOfAKind, Tiebreaks: []int{14}}, rankOf(t, "1c,1c,1c,1c,1c"))
}

func TestRank_rejectsJokers(t *testing.T) {
	a := assert.New(t)

	_, err := Rank(deck.CardsFromString("jk,2c,3c,4c,5c"))
	a.Equal(ErrJokerInHand, err)

	_, err = Rank(deck.CardsFromString("2c,3c,4c,5c,6c,jk,9d"))
	a.Equal(ErrJokerInHand, err)

	_, err = Rank(nil)
	a.Equal(ErrNoCards, err)
}

func TestRank_permutationInvariance(t *testing.T) {
	a := assert.New(t)

	cards := deck.CardsFromString("13c,5h,13d,5s,9c")
	want, err := Rank(cards)
	a.NoError(err)

	reversed := make([]deck.Card, len(cards))
	for i, c := range cards {
		reversed[len(cards)-1-i] = c
	}

	got, err := Rank(reversed)
	a.NoError(err)
	a.Zero(want.Compare(got))
}

func TestRank_sevenCards(t *testing.T) {
	a := assert.New(t)

	// the straight flush hides inside the trips
	a.Equal(HandRank{Category: StraightFlush, Tiebreaks: []int{6}}, rankOf(t, "2c,3c,4c,5c,6c,6d,6h"))

	// best five of a seven-card pool
	a.Equal(HandRank{Category: TwoPair, Tiebreaks: []int{13, 9}}, rankOf(t, "13c,13d,6h,6c,9s,9d,2c"))

	// seven suited cards keep only the best five
	a.Equal(HandRank{Category: Flush, Tiebreaks: []int{13, 11, 9, 7, 5}}, rankOf(t, "2h,3h,5h,7h,9h,11h,13h"))
}

func TestRank_sevenCardsMatchesBestSubset(t *testing.T) {
	a := assert.New(t)

	cards := deck.CardsFromString("3s,5s,6h,7h,11c,12c,1h")
	want, err := Rank(cards)
	a.NoError(err)

	var best HandRank
	pick := make([]deck.Card, 0, 5)
	var walk func(start int)
	walk = func(start int) {
		if len(pick) == 5 {
			r, err := Rank(pick)
			a.NoError(err)
			if best.Category == 0 || best.Less(r) {
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

	a.Zero(want.Compare(best))
}

func TestHandRank_Compare(t *testing.T) {
	a := assert.New(t)

	a.True(rankOf(t, "2c,2d,3h,4s,5c").Less(rankOf(t, "2c,2d,2h,4s,5c")))
	a.True(rankOf(t, "2c,3c,4c,5c,6c").Compare(rankOf(t, "5c,5d,5h,5s,2c")) > 0)

	// same category, tie-breaks decide
	a.True(rankOf(t, "12c,11h,9d,7s,2c").Less(rankOf(t, "13c,3h,4d,7s,2c")))
	a.True(rankOf(t, "2s,2c,5h,7d,9s").Less(rankOf(t, "2h,2d,5c,7s,10c")))

	// identical hands tie
	a.Zero(rankOf(t, "13c,5h,13d,5s,9c").Compare(rankOf(t, "13s,5d,13h,5c,9h")))

	// a longer tie-break tuple beats its own prefix
	a.True(rankOf(t, "5s,5c").Less(rankOf(t, "5s,5c,2d")))
}

func TestCategory_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("High card", HighCard.String())
	a.Equal("Pair", Pair.String())
	a.Equal("Two pair", TwoPair.String())
	a.Equal("Three of a kind", ThreeOfAKind.String())
	a.Equal("Straight", Straight.String())
	a.Equal("Flush", Flush.String())
	a.Equal("Full house", FullHouse.String())
	a.Equal("Four of a kind", FourOfAKind.String())
	a.Equal("Straight flush", StraightFlush.String())
	a.Equal("Five of a kind", FiveOfAKind.String())
	a.Panics(func() { _ = Category(0).String() })
}

func TestHandRank_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("Straight (6)", rankOf(t, "2c,3c,4h,5d,6s").String())
	a.Equal("Two pair (13,5)", rankOf(t, "13c,5h,13d,5s,9c").String())
}

func BenchmarkRank(b *testing.B) {
	cards := deck.CardsFromString("3s,5s,6h,7h,11c,12c,1h")
	for i := 0; i < b.N; i++ {
		_, _ = Rank(cards)
	}
}
