package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lixenwraith/codebreaker/constants"
	"github.com/lixenwraith/codebreaker/core"
	"github.com/lixenwraith/codebreaker/engine"
)

const submitLabel = constants.SubmitLabel

var (
	colorDim    = lipgloss.Color("#666677")
	colorLabel  = lipgloss.Color("#aaaaee")
	colorCursor = lipgloss.Color("#ffa500")
	colorError  = lipgloss.Color("#F25D94")
	colorBanner = lipgloss.Color("#ffdd44")
)

type styles struct {
	r *lipgloss.Renderer

	label  lipgloss.Style
	dim    lipgloss.Style
	cursor lipgloss.Style
	ready  lipgloss.Style
	err    lipgloss.Style
	page   lipgloss.Style
	banner lipgloss.Style
	won    lipgloss.Style
	lost   lipgloss.Style
	play   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		r:      r,
		label:  r.NewStyle().Foreground(colorLabel),
		dim:    r.NewStyle().Foreground(colorDim),
		cursor: r.NewStyle().Foreground(colorCursor).Bold(true),
		ready:  r.NewStyle().Foreground(hex(core.ColorGreen.RGB())).Bold(true),
		err:    r.NewStyle().Foreground(colorError),
		page:   r.NewStyle().PaddingLeft(constants.PageIndent),
		banner: r.NewStyle().Foreground(colorBanner).Bold(true),
		won:    r.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#90ee90")),
		lost:   r.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#c83232")),
		play:   r.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#87cefa")),
	}
}

func hex(c core.RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// peg renders a display color as its letter, '?' for hidden and '_' for empty
func (s styles) peg(c core.Color) string {
	switch c {
	case core.ColorEmpty:
		return s.dim.Render("_")
	case core.ColorHidden:
		return s.dim.Render("?")
	}
	p, _ := c.Peg()
	return s.r.NewStyle().Foreground(hex(c.RGB())).Render(string(p.Rune()))
}

func (s styles) pins(f core.Feedback) string {
	var b strings.Builder
	for _, p := range f.Pins() {
		b.WriteString(pinRune(p))
	}
	return s.label.Render(b.String())
}

func (s styles) status(st engine.RoundStatus) string {
	switch st {
	case engine.StatusWon:
		return s.won.Render(constants.StatusTextWon)
	case engine.StatusLost:
		return s.lost.Render(constants.StatusTextLost)
	default:
		return s.play.Render(constants.StatusTextEditing)
	}
}
