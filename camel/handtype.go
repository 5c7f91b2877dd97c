package camel

import "cmp"

// HandType enumerates the hand categories ordered from weakest to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// HandTypes lists every category, weakest first.
var HandTypes = [...]HandType{
	HighCard,
	Pair,
	TwoPair,
	ThreeOfAKind,
	FullHouse,
	FourOfAKind,
	FiveOfAKind,
}

// String returns a human-readable category name.
func (t HandType) String() string {
	switch t {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case FiveOfAKind:
		return "Five of a Kind"
	default:
		return "Unknown"
	}
}

// Compare returns -1, 0 or +1 as t is weaker than, equal to or stronger than u.
func (t HandType) Compare(u HandType) int {
	return cmp.Compare(uint8(t), uint8(u))
}

// Key orders hands: category first, then card strengths in dealt order.
type Key struct {
	Type     HandType
	Tiebreak uint64
}

// Compare returns -1, 0 or +1 as k is weaker than, equal to or stronger than o.
func (k Key) Compare(o Key) int {
	if c := k.Type.Compare(o.Type); c != 0 {
		return c
	}
	return cmp.Compare(k.Tiebreak, o.Tiebreak)
}
