package camel

import (
	"cmp"
	"slices"
)

// Standing is a hand's place in the final ordering.
type Standing struct {
	Hand     Hand
	Key      Key
	Position int // 1-based, weakest hand is 1
}

// Type returns the hand's category.
func (s Standing) Type() HandType {
	return s.Key.Type
}

// Winnings is the bid multiplied by the position.
func (s Standing) Winnings() uint64 {
	return s.Hand.Bid * uint64(s.Position)
}

// Rank orders hands weakest to strongest and numbers them from 1.
// Hands with identical cards are ordered by bid, then by input order.
func (r Rules) Rank(hands []Hand) []Standing {
	standings := make([]Standing, len(hands))
	for i, h := range hands {
		standings[i] = Standing{Hand: h, Key: r.Key(h.Cards)}
	}

	slices.SortStableFunc(standings, func(a, b Standing) int {
		if c := a.Key.Compare(b.Key); c != 0 {
			return c
		}
		return cmp.Compare(a.Hand.Bid, b.Hand.Bid)
	})

	for i := range standings {
		standings[i].Position = i + 1
	}
	return standings
}

// Total sums the winnings of every standing.
func Total(standings []Standing) uint64 {
	var total uint64
	for _, s := range standings {
		total += s.Winnings()
	}
	return total
}

// Score ranks hands and returns the total winnings.
func (r Rules) Score(hands []Hand) uint64 {
	return Total(r.Rank(hands))
}
