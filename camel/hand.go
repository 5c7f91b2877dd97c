package camel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMissingSeparator = errors.New("missing space between cards and bid")
	ErrCardCount        = errors.New("wrong number of cards")
	ErrUnknownCard      = errors.New("unknown card")
	ErrInvalidBid       = errors.New("invalid bid")
)

// Hand is a parsed record: five cards and the bid placed on them.
type Hand struct {
	Cards Cards
	Bid   uint64
}

// ParseHand parses a record of the form "<5 cards> <bid>", e.g. "32T3K 765".
func ParseHand(line string) (Hand, error) {
	line = strings.TrimSuffix(line, "\r")

	cardField, bidField, ok := strings.Cut(line, " ")
	if !ok {
		return Hand{}, fmt.Errorf("%w: %q", ErrMissingSeparator, line)
	}

	cards, err := ParseCards(cardField)
	if err != nil {
		return Hand{}, err
	}

	bid, err := strconv.ParseUint(bidField, 10, 64)
	if err != nil {
		return Hand{}, fmt.Errorf("%w: %q", ErrInvalidBid, bidField)
	}

	return Hand{Cards: cards, Bid: bid}, nil
}

// MustParseHand is like ParseHand but panics on error. Intended for tests and fixtures.
func MustParseHand(line string) Hand {
	h, err := ParseHand(line)
	if err != nil {
		panic(err)
	}
	return h
}

func (h Hand) String() string {
	return fmt.Sprintf("%s %d", h.Cards, h.Bid)
}
