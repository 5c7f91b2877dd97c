package camel

import (
	"fmt"
	"strings"
)

// Card is a single face symbol. Cards have no suit.
type Card byte

// Wildcard is the symbol that joins the largest group under the Jokers rules.
const Wildcard Card = 'J'

// HandSize is the number of cards in every hand.
const HandSize = 5

// symbols lists every valid face symbol.
const symbols = "23456789TJQKA"

// ParseCard validates a single face symbol.
func ParseCard(c byte) (Card, error) {
	if strings.IndexByte(symbols, c) < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCard, c)
	}
	return Card(c), nil
}

// String returns the face symbol.
func (c Card) String() string {
	return string(rune(c))
}

// Cards is a fixed five card sequence, first card first.
type Cards [HandSize]Card

// ParseCards parses exactly five face symbols, e.g. "KTJJT".
func ParseCards(s string) (Cards, error) {
	var cards Cards
	if len(s) != HandSize {
		return cards, fmt.Errorf("%w: %q has %d cards, want %d", ErrCardCount, s, len(s), HandSize)
	}
	for i := 0; i < HandSize; i++ {
		card, err := ParseCard(s[i])
		if err != nil {
			return cards, fmt.Errorf("card %d of %q: %w", i+1, s, err)
		}
		cards[i] = card
	}
	return cards, nil
}

func (cs Cards) String() string {
	var b strings.Builder
	b.Grow(HandSize)
	for _, c := range cs {
		b.WriteByte(byte(c))
	}
	return b.String()
}
