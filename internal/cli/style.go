package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

var (
	colorAccent = lipgloss.Color("#06B6D4")
	colorMuted  = lipgloss.Color("#94A3B8")
	colorGood   = lipgloss.Color("#10B981")
	colorBad    = lipgloss.Color("#F43F5E")
)

type styles struct {
	title lipgloss.Style
	muted lipgloss.Style
	err   lipgloss.Style
	ok    lipgloss.Style
	neg   lipgloss.Style
	pos   lipgloss.Style
}

// newStyles binds styles to out so colour is dropped when out is not a terminal.
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title: r.NewStyle().Bold(true).Foreground(colorAccent),
		muted: r.NewStyle().Foreground(colorMuted),
		err:   r.NewStyle().Foreground(colorBad),
		ok:    r.NewStyle().Bold(true).Foreground(colorGood),
		neg:   r.NewStyle().Foreground(colorBad),
		pos:   r.NewStyle().Foreground(colorGood),
	}
}

func formatMoney(d decimal.Decimal) string {
	return "S/. " + d.StringFixed(2)
}

// formatSigned prints outgoing amounts red with a minus and incoming ones green with a plus.
func (s styles) formatSigned(d decimal.Decimal) string {
	if d.IsNegative() {
		return s.neg.Render("-" + formatMoney(d.Abs()))
	}
	return s.pos.Render("+" + formatMoney(d))
}
