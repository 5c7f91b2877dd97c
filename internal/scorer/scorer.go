// Package scorer runs the load, rank and score pipeline over a hands file.
package scorer

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/camelcards/camel"
	"github.com/lox/camelcards/internal/handfile"
)

// Result is the outcome of one scoring run.
type Result struct {
	Rules     camel.Rules
	Standings []camel.Standing // weakest first
	Total     uint64
	Elapsed   time.Duration
}

// Scorer ranks hands under one rule set.
type Scorer struct {
	rules  camel.Rules
	logger *log.Logger
	clock  quartz.Clock
}

// New creates a scorer. Pass quartz.NewReal() outside of tests.
func New(rules camel.Rules, logger *log.Logger, clock quartz.Clock) *Scorer {
	return &Scorer{
		rules:  rules,
		logger: logger.WithPrefix("scorer"),
		clock:  clock,
	}
}

// Score ranks hands and totals the winnings.
func (s *Scorer) Score(hands []camel.Hand) Result {
	start := s.clock.Now()

	standings := s.rules.Rank(hands)
	result := Result{
		Rules:     s.rules,
		Standings: standings,
		Total:     camel.Total(standings),
		Elapsed:   s.clock.Since(start),
	}

	s.logger.Debug("Ranked hands",
		"rules", s.rules.String(),
		"hands", len(standings),
		"total", result.Total,
		"elapsed", result.Elapsed)

	return result
}

// ScoreFile loads every hand in path and scores them. Any malformed line
// fails the whole run.
func (s *Scorer) ScoreFile(path string) (Result, error) {
	hands, err := handfile.Load(path)
	if err != nil {
		return Result{}, err
	}
	s.logger.Debug("Loaded hands", "path", path, "hands", len(hands))

	return s.Score(hands), nil
}
