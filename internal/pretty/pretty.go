// Package pretty renders short human summaries of ranked tables for the
// terminal.
package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"abrank-core/aggregate"
	"abrank-core/rank"
)

// Options control the console summary.
type Options struct {
	Top     int  // rows to show; <= 0 shows none
	NoColor bool // force plain output
}

// DefaultOptions shows the top five rows.
var DefaultOptions = Options{Top: 5}

type palette struct {
	head, good, warn, bad *color.Color
}

func newPalette(o Options) palette {
	p := palette{
		head: color.New(color.FgCyan, color.Bold),
		good: color.New(color.FgGreen),
		warn: color.New(color.FgYellow),
		bad:  color.New(color.FgRed),
	}
	if o.NoColor {
		for _, c := range []*color.Color{p.head, p.good, p.warn, p.bad} {
			c.DisableColor()
		}
	}
	return p
}

func opt(v *float64, prec int) string {
	if v == nil {
		return "NA"
	}
	return fmt.Sprintf("%.*f", prec, *v)
}

func clip(n, top int) int {
	if top < n {
		return top
	}
	return n
}

// Final prints the head of the final ranking.
func Final(w io.Writer, rows []rank.Row, devCol string, o Options) {
	n := clip(len(rows), o.Top)
	if n <= 0 {
		return
	}
	p := newPalette(o)
	p.head.Fprintf(w, "Top %d candidates\n", n)
	fmt.Fprintf(w, "%4s  %-32s %8s %8s %6s %8s\n", "rank", "candidate_id", "final", devCol, "iptm", "if_pae")
	for _, r := range rows[:n] {
		c := p.good
		switch {
		case r.FinalScore == nil:
			c = p.bad
		case r.IPTM != nil && *r.IPTM < 0.5:
			c = p.warn
		}
		c.Fprintf(w, "%4d  %-32s %8s %8.3f %6s %8s\n",
			r.Rank, r.CandidateID, opt(r.FinalScore, 3), r.Dev,
			opt(r.IPTM, 3), opt(r.MeanInterfacePAE, 2))
	}
}

// Candidates prints the head of the developability ranking and the
// filter funnel.
func Candidates(w io.Writer, res aggregate.Result, o Options) {
	p := newPalette(o)
	funnel := fmt.Sprintf("merged %d, passed filters %d, selected %d", res.Merged, len(res.Ranked), len(res.Selected))
	if len(res.Ranked) == 0 {
		p.bad.Fprintln(w, funnel)
		return
	}
	p.head.Fprintln(w, funnel)

	n := clip(len(res.Ranked), o.Top)
	if n <= 0 {
		return
	}
	fmt.Fprintf(w, "%-32s %7s %7s %7s %7s\n", "id", "DCS", "plddt", "sol", "risk")
	for _, c := range res.Ranked[:n] {
		col := p.good
		if c.Liability.Risk > 0.5 {
			col = p.warn
		}
		col.Fprintf(w, "%-32s %7.2f %7.2f %7.3f %7.3f\n",
			c.ID, c.DCS, c.Structure.Mean, c.Solubility.Score, c.Liability.Risk)
	}
}

// Rule prints a section divider.
func Rule(w io.Writer, title string, o Options) {
	p := newPalette(o)
	p.head.Fprintf(w, "== %s %s\n", title, strings.Repeat("=", max(0, 60-len(title))))
}
