// Package camel ranks five card hands with an optional wildcard and scores
// bids by final position.
//
// A typical run parses each record with ParseHand, orders them with
// Rules.Rank and sums the result with Total:
//
//	standings := camel.Jokers.Rank(hands)
//	fmt.Println("Total score:", camel.Total(standings))
package camel
