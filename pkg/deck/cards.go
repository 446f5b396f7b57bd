package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var cardRx = regexp.MustCompile(`(?i)^([1-9]|1[0-3])([cdhs])\z`)

// CardFromString returns a Card from a compact string.
// The string must be in the format of <value><suit> where value is
// 1-13 and suit is one of [cdhs], or "jk" for a joker.
func CardFromString(s string) Card {
	if strings.EqualFold(s, "jk") {
		return NewJoker()
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	value, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return NewCard(suit, Value(value))
}

// CardsFromString will return a slice of cards from a comma-separated
// compact string, i.e. "1c,10h,jk"
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a compact string (1c)
func CardToString(card Card) string {
	if card.IsJoker() {
		return "jk"
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Value, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 1c,2h,jk,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
