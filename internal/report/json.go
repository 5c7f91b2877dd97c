package report

import (
	"encoding/json"
	"io"

	"github.com/lox/camelcards/internal/fileutil"
	"github.com/lox/camelcards/internal/scorer"
)

// Standing is the exported form of one ranked hand.
type Standing struct {
	Position int    `json:"position"`
	Cards    string `json:"cards"`
	Bid      uint64 `json:"bid"`
	Type     string `json:"type"`
	Winnings uint64 `json:"winnings"`
}

// Export is the document written by WriteJSON.
type Export struct {
	Rules     string     `json:"rules"`
	Total     uint64     `json:"total"`
	Standings []Standing `json:"standings"`
}

// NewExport converts a scoring result into its exported form.
func NewExport(result scorer.Result) Export {
	out := Export{
		Rules:     result.Rules.String(),
		Total:     result.Total,
		Standings: make([]Standing, 0, len(result.Standings)),
	}
	for _, s := range result.Standings {
		out.Standings = append(out.Standings, Standing{
			Position: s.Position,
			Cards:    s.Hand.Cards.String(),
			Bid:      s.Hand.Bid,
			Type:     s.Type().String(),
			Winnings: s.Winnings(),
		})
	}
	return out
}

// WriteJSON atomically writes the standings document to path.
func WriteJSON(path string, result scorer.Result) error {
	export := NewExport(result)
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(export)
	})
}
