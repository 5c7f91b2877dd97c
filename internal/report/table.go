// Package report renders scoring results for people and for other tools.
package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/camelcards/camel"
	"github.com/lox/camelcards/internal/scorer"
)

// Printer writes standings tables and the total line.
type Printer struct {
	w      io.Writer
	header lipgloss.Style
	hand   lipgloss.Style
	kind   lipgloss.Style
	number lipgloss.Style
}

// NewPrinter styles output for w. With color false every style renders as
// plain text.
func NewPrinter(w io.Writer, color bool) *Printer {
	var r *lipgloss.Renderer
	if color {
		r = lipgloss.NewRenderer(w)
	} else {
		r = lipgloss.NewRenderer(w, termenv.WithProfile(termenv.Ascii))
	}

	return &Printer{
		w:      w,
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		hand:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		kind:   r.NewStyle().Foreground(lipgloss.Color("12")),
		number: r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// Standings prints one row per hand, weakest first.
func (p *Printer) Standings(standings []camel.Standing) error {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		p.header.Render("rank"),
		p.header.Render("hand"),
		p.header.Render("type"),
		p.header.Render("bid"),
		p.header.Render("winnings"))

	for _, s := range standings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			strconv.Itoa(s.Position),
			p.hand.Render(s.Hand.Cards.String()),
			p.kind.Render(s.Type().String()),
			strconv.FormatUint(s.Hand.Bid, 10),
			p.number.Render(strconv.FormatUint(s.Winnings(), 10)))
	}

	return tw.Flush()
}

// Total prints the final score line. The line itself is never styled so
// scripts can match it.
func (p *Printer) Total(result scorer.Result) error {
	_, err := fmt.Fprintf(p.w, "Total score: %d\n", result.Total)
	return err
}
