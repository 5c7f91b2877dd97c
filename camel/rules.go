package camel

import (
	"fmt"
	"slices"
	"strings"
)

// Rules fixes the strength order of the symbols and whether the wildcard is active.
type Rules struct {
	name  string
	order string // weakest first
	wild  bool
}

var (
	// Jokers treats J as a wildcard that is also the weakest card.
	Jokers = Rules{name: "jokers", order: "J23456789TQKA", wild: true}
	// Standard counts J as itself, ranked between T and Q.
	Standard = Rules{name: "standard", order: "23456789TJQKA"}
)

// ParseRules looks up a rule set by name.
func ParseRules(name string) (Rules, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Jokers.name:
		return Jokers, nil
	case Standard.name:
		return Standard, nil
	default:
		return Rules{}, fmt.Errorf("unknown rules %q (want %q or %q)", name, Jokers.name, Standard.name)
	}
}

func (r Rules) String() string {
	return r.name
}

// Strength returns the card's rank under these rules, 0 (weakest) to 12 (A).
// Invalid cards return -1.
func (r Rules) Strength(c Card) int {
	return strings.IndexByte(r.order, byte(c))
}

func (r Rules) isWild(c Card) bool {
	return r.wild && c == Wildcard
}

// Classify returns the hand type of five cards.
//
// Under wildcard rules every J is added to the non-wildcard symbol with the
// highest count. Ties go to the weakest such symbol, and a hand of five
// wildcards lands on the weakest non-wildcard symbol. Only the sorted counts
// decide the type, so the tie-break never changes the result.
func (r Rules) Classify(cards Cards) HandType {
	var counts [len(symbols)]uint8
	var wild uint8
	for _, c := range cards {
		if r.isWild(c) {
			wild++
			continue
		}
		counts[r.Strength(c)]++
	}

	if wild > 0 {
		target := -1
		for i, n := range counts {
			if r.isWild(Card(r.order[i])) {
				continue
			}
			if target < 0 || n > counts[target] {
				target = i
			}
		}
		counts[target] += wild
	}

	slices.SortFunc(counts[:], func(a, b uint8) int { return int(b) - int(a) })

	var top [HandSize]uint8
	copy(top[:], counts[:HandSize])
	switch top {
	case [HandSize]uint8{5}:
		return FiveOfAKind
	case [HandSize]uint8{4, 1}:
		return FourOfAKind
	case [HandSize]uint8{3, 2}:
		return FullHouse
	case [HandSize]uint8{3, 1, 1}:
		return ThreeOfAKind
	case [HandSize]uint8{2, 2, 1}:
		return TwoPair
	case [HandSize]uint8{2, 1, 1, 1}:
		return Pair
	default:
		return HighCard
	}
}

// tiebreakBase leaves headroom over the 13 strengths so each card is one
// readable base-100 digit.
const tiebreakBase = 100

// Tiebreak encodes the card strengths into one number, first card most significant.
func (r Rules) Tiebreak(cards Cards) uint64 {
	var v uint64
	for _, c := range cards {
		v = v*tiebreakBase + uint64(r.Strength(c))
	}
	return v
}

// Key returns the sort key of five cards.
func (r Rules) Key(cards Cards) Key {
	return Key{Type: r.Classify(cards), Tiebreak: r.Tiebreak(cards)}
}
