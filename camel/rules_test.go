package camel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCards(t *testing.T, s string) Cards {
	t.Helper()
	cards, err := ParseCards(s)
	require.NoError(t, err)
	return cards
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cards    string
		jokers   HandType
		standard HandType
	}{
		{"AAAAA", FiveOfAKind, FiveOfAKind},
		{"AA8AA", FourOfAKind, FourOfAKind},
		{"23332", FullHouse, FullHouse},
		{"TTT98", ThreeOfAKind, ThreeOfAKind},
		{"23432", TwoPair, TwoPair},
		{"A23A4", Pair, Pair},
		{"23456", HighCard, HighCard},

		{"32T3K", Pair, Pair},
		{"KK677", TwoPair, TwoPair},
		{"T55J5", FourOfAKind, ThreeOfAKind},
		{"KTJJT", FourOfAKind, TwoPair},
		{"QQQJA", FourOfAKind, ThreeOfAKind},

		{"JJJJJ", FiveOfAKind, FiveOfAKind},
		{"JJJJ2", FiveOfAKind, FourOfAKind},
		{"JJJ23", FourOfAKind, ThreeOfAKind},
		{"JJ234", ThreeOfAKind, Pair},
		{"J2345", Pair, HighCard},
		{"J2233", FullHouse, TwoPair},
		{"JJ223", FourOfAKind, TwoPair},
	}

	for _, tc := range tests {
		t.Run(tc.cards, func(t *testing.T) {
			t.Parallel()
			cards := mustCards(t, tc.cards)
			assert.Equal(t, tc.jokers, Jokers.Classify(cards), "jokers")
			assert.Equal(t, tc.standard, Standard.Classify(cards), "standard")
		})
	}
}

func TestClassifyIdenticalCardsIsFiveOfAKind(t *testing.T) {
	t.Parallel()

	for _, c := range symbols {
		cards := mustCards(t, strings.Repeat(string(c), HandSize))
		assert.Equal(t, FiveOfAKind, Jokers.Classify(cards), "%s jokers", cards)
		assert.Equal(t, FiveOfAKind, Standard.Classify(cards), "%s standard", cards)
	}
}

func TestClassifyWildcardNeverWeakens(t *testing.T) {
	t.Parallel()

	for _, c := range strings.ReplaceAll(symbols, "J", "") {
		for k := 1; k < HandSize; k++ {
			withJokers := strings.Repeat("J", k) + strings.Repeat(string(c), HandSize-k)
			replaced := strings.Repeat(string(c), HandSize)

			got := Jokers.Classify(mustCards(t, withJokers))
			want := Jokers.Classify(mustCards(t, replaced))
			assert.GreaterOrEqual(t, got.Compare(want), 0, "%s vs %s", withJokers, replaced)
		}
	}

	// Mixed hands: replacing each J with the most common other symbol must not
	// produce a stronger hand than the wildcard version.
	for _, tc := range []struct{ wild, replaced string }{
		{"T55J5", "T5555"},
		{"KTJJT", "KTTTT"},
		{"QQQJA", "QQQQA"},
		{"2J3J4", "22324"},
		{"J9988", "99988"},
	} {
		got := Jokers.Classify(mustCards(t, tc.wild))
		want := Jokers.Classify(mustCards(t, tc.replaced))
		assert.GreaterOrEqual(t, got.Compare(want), 0, "%s vs %s", tc.wild, tc.replaced)
	}
}

func TestStrength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Jokers.Strength('J'))
	assert.Equal(t, 1, Jokers.Strength('2'))
	assert.Equal(t, 9, Jokers.Strength('T'))
	assert.Equal(t, 10, Jokers.Strength('Q'))
	assert.Equal(t, 12, Jokers.Strength('A'))

	assert.Equal(t, 0, Standard.Strength('2'))
	assert.Equal(t, 9, Standard.Strength('J'))
	assert.Equal(t, 12, Standard.Strength('A'))

	assert.Equal(t, -1, Jokers.Strength('X'))
}

func TestTiebreak(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(1109000009), Jokers.Tiebreak(mustCards(t, "KTJJT")))
	assert.Equal(t, uint64(0), Jokers.Tiebreak(mustCards(t, "JJJJJ")))
	assert.Equal(t, uint64(1212121212), Jokers.Tiebreak(mustCards(t, "AAAAA")))
	assert.Equal(t, uint64(1108090908), Standard.Tiebreak(mustCards(t, "KTJJT")))
}

func TestTiebreakEarliestCardDominates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		weaker, stronger string
	}{
		{"2AAAA", "33332"},
		{"JKKK2", "QQQQ2"},
		{"T55J5", "QQQJA"},
		{"KTJJT", "KTTJT"},
		{"AAAA2", "AAAA3"},
	}

	for _, tc := range tests {
		weak := Jokers.Key(mustCards(t, tc.weaker))
		strong := Jokers.Key(mustCards(t, tc.stronger))
		require.Equal(t, weak.Type, strong.Type, "%s and %s must share a type", tc.weaker, tc.stronger)
		assert.Equal(t, -1, weak.Compare(strong), "%s < %s", tc.weaker, tc.stronger)
		assert.Equal(t, 1, strong.Compare(weak), "%s > %s", tc.stronger, tc.weaker)
	}
}

func TestParseRules(t *testing.T) {
	t.Parallel()

	r, err := ParseRules("jokers")
	require.NoError(t, err)
	assert.Equal(t, Jokers, r)

	r, err = ParseRules(" Standard ")
	require.NoError(t, err)
	assert.Equal(t, Standard, r)
	assert.Equal(t, "standard", r.String())

	_, err = ParseRules("wild")
	assert.Error(t, err)
}
