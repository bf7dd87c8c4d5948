package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lixenwraith/codebreaker/core"
	"github.com/lixenwraith/codebreaker/engine"
	"github.com/lixenwraith/codebreaker/input"
	"github.com/lixenwraith/codebreaker/mode"
	"github.com/muesli/reflow/wordwrap"
)

const (
	pageWidth = 60
	prompt    = "> "
)

// StatsFunc returns the one-line session summary shown under the board
type StatsFunc func() string

// Console is the line-mode frontend: one command per line in, one board per command out
type Console struct {
	router *mode.Router
	stats  StatsFunc
	in     io.Reader
	out    io.Writer
	styles styles
}

// New creates a console over router reading from in and writing to out
func New(router *mode.Router, stats StatsFunc, in io.Reader, out io.Writer) *Console {
	if stats == nil {
		stats = func() string { return "" }
	}
	return &Console{
		router: router,
		stats:  stats,
		in:     in,
		out:    out,
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
}

// Run processes commands until quit or end of input
func (c *Console) Run() error {
	c.print()

	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			return scanner.Err()
		}

		intent, err := input.ParseCommand(scanner.Text())
		if err != nil {
			log.Debug("command rejected", "line", scanner.Text(), "err", err)
			fmt.Fprintln(c.out, c.styles.err.Render(err.Error()))
			continue
		}
		if intent.Type == input.IntentNone {
			// Enter on an open page returns, as it does on the terminal
			if c.router.Menu().Active() {
				continue
			}
			intent = input.Intent{Type: input.IntentBack, Count: 1}
		}
		if !c.router.Handle(intent) {
			return nil
		}
		c.router.Settle()
		c.print()
	}
}

func (c *Console) print() {
	fmt.Fprintln(c.out, c.Render(c.router.Game(), c.router.Menu()))
}

// Render returns the current screen as text
func (c *Console) Render(view engine.View, menu *mode.Menu) string {
	if !menu.BoardVisible() {
		return c.styles.page.Render(wordwrap.String(menu.Page().Text(), pageWidth))
	}

	board := c.renderBoard(view)
	if menu.IsOpen() {
		return board + "\n\n" + c.styles.banner.Render(wordwrap.String(menu.Page().Text(), pageWidth))
	}
	return board
}

func (c *Console) renderBoard(view engine.View) string {
	var b strings.Builder
	s := c.styles

	b.WriteString(s.label.Render("secret "))
	for _, slot := range view.Secret() {
		b.WriteString(" " + s.peg(slot.Color()))
	}
	b.WriteString("\n")

	history := view.History()
	for k := 0; k < view.Attempts(); k++ {
		fmt.Fprintf(&b, "%s ", s.label.Render(fmt.Sprintf("%6d", k+1)))
		switch {
		case k < len(history):
			for _, col := range history[k].Guess.Colors() {
				b.WriteString(" " + s.peg(col))
			}
			b.WriteString("  " + s.pins(history[k].Feedback))
		case k == len(history) && view.Status() == engine.StatusEditing:
			b.WriteString(c.renderGuess(view.Guess()))
		default:
			b.WriteString(s.dim.Render(" . . . ."))
		}
		b.WriteString("\n")
	}

	b.WriteString(s.status(view.Status()))
	fmt.Fprintf(&b, " round %d  turn %d/%d", view.RoundNumber(), view.Turn(), view.Attempts())
	if line := c.stats(); line != "" {
		b.WriteString("  " + s.dim.Render(line))
	}
	return b.String()
}

func (c *Console) renderGuess(gv engine.GuessView) string {
	var b strings.Builder
	s := c.styles
	for i, col := range gv.Colors {
		if i == gv.Cursor {
			b.WriteString(s.cursor.Render(">") + s.peg(col))
			continue
		}
		b.WriteString(" " + s.peg(col))
	}

	label := s.dim.Render(" " + submitLabel)
	if gv.Ready {
		label = s.ready.Render(" " + submitLabel)
	}
	if gv.Cursor == engine.SubmitPosition {
		label = s.cursor.Render(">") + strings.TrimPrefix(label, " ")
	}
	b.WriteString("  " + label)
	return b.String()
}

// pinRune renders feedback as black 'B', white 'W', none '.'
func pinRune(p core.Pin) string {
	switch p {
	case core.PinBlack:
		return "B"
	case core.PinWhite:
		return "W"
	default:
		return "."
	}
}
