package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"

	"carddeck/internal/rng"
)

// Deck represents a playing deck. The top of the deck is the end of
// the Cards slice; DealFromBottom takes from the front.
type Deck struct {
	Cards []Card `json:"cards"`
}

// New returns a single unshuffled deck.
// You must call the Shuffle() method to shuffle the cards.
func New(includeJokers bool) *Deck {
	d, _ := NewMulti(1, includeJokers)
	return d
}

// NewMulti returns a deck built from the given number of 52-card
// decks. Duplicate cards are intentional with more than one deck.
// Exactly two jokers are appended in total when requested, regardless
// of the deck count.
func NewMulti(decks int, includeJokers bool) (*Deck, error) {
	if decks < 0 {
		return nil, ErrDeckCount
	}

	cards := make([]Card, 0, decks*52+2)
	for i := 0; i < decks; i++ {
		for _, suit := range suits {
			for value := Ace; value <= King; value++ {
				cards = append(cards, NewCard(suit, value))
			}
		}
	}

	if includeJokers {
		cards = append(cards, NewJoker(), NewJoker())
	}

	return &Deck{Cards: cards}, nil
}

// Shuffle will shuffle the deck of cards in place using the supplied
// randomness source
func (d *Deck) Shuffle(r rng.Generator) {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := r.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Deal removes and returns the top card.
// If there are no more cards, an ErrEmptyDeck is returned.
func (d *Deck) Deal() (Card, error) {
	n := len(d.Cards)
	if n == 0 {
		return Card{}, ErrEmptyDeck
	}

	card := d.Cards[n-1]
	d.Cards = d.Cards[:n-1]

	return card, nil
}

// DealFromBottom removes and returns the bottom card.
// If there are no more cards, an ErrEmptyDeck is returned.
func (d *Deck) DealFromBottom() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// DealHands deals the requested number of hands round-robin: one card
// to each hand per round, for cardsPerHand rounds. Returns
// ErrInsufficientCards if the deck cannot cover the ask.
func (d *Deck) DealHands(hands, cardsPerHand int) ([]*Hand, error) {
	if hands*cardsPerHand > len(d.Cards) {
		return nil, ErrInsufficientCards
	}

	dealt := make([]*Hand, hands)
	for i := range dealt {
		dealt[i] = &Hand{}
	}

	for round := 0; round < cardsPerHand; round++ {
		for _, h := range dealt {
			card, err := d.Deal()
			if err != nil {
				return nil, err
			}

			h.Append(card)
		}
	}

	return dealt, nil
}

// CanDeal returns true if there are {want} cards left in the deck
func (d *Deck) CanDeal(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}
