package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/codebreaker/constants"
	"github.com/lixenwraith/codebreaker/core"
	"github.com/lixenwraith/codebreaker/engine"
	"github.com/lixenwraith/codebreaker/mode"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	hintText       = "h help  r new  q quit"
	minBannerWidth = 32
	minPageWrap    = 10
	dimFactor      = 0.5
)

// TerminalRenderer draws the board and menu pages to a tcell screen
// It reads the round only through engine.View
type TerminalRenderer struct {
	engine.BaseListener

	screen  tcell.Screen
	width   int
	height  int
	layout  Layout
	originX int
	originY int

	// Remaining submit-button flash after a rejected submit
	flash time.Duration
}

// NewTerminalRenderer creates a renderer for a board of attempts rows at spacing
func NewTerminalRenderer(screen tcell.Screen, attempts, spacing int) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		layout: NewLayout(attempts, spacing),
	}
	w, h := screen.Size()
	r.Resize(w, h)
	return r
}

// Resize recenters the board for a new screen size
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.originX = max((width-r.layout.Width)/2, 0)
	r.originY = max((height-r.layout.Height)/2, 0)
}

// Layout returns the board geometry
func (r *TerminalRenderer) Layout() Layout { return r.layout }

// Origin returns the screen cell of the board's top-left corner
func (r *TerminalRenderer) Origin() (x, y int) { return r.originX, r.originY }

// OnReject starts the submit button flash
func (r *TerminalRenderer) OnReject() {
	r.flash = constants.ErrorFlashTimeout
}

// Update advances frame-local animation
func (r *TerminalRenderer) Update(delta time.Duration) {
	r.flash = max(r.flash-delta, 0)
}

// RenderFrame renders the entire frame from one snapshot of view
func (r *TerminalRenderer) RenderFrame(view engine.View, menu *mode.Menu, stats string) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	if menu.BoardVisible() {
		r.drawBoard(engine.TakeSnapshot(view), stats, defaultStyle)
		if !menu.Active() {
			r.drawBanner(menu.Page().Text(), defaultStyle)
		}
	} else {
		r.drawPage(menu.Page().Text(), defaultStyle)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) {
	if y < 0 || y >= r.height {
		return
	}
	for _, ch := range s {
		if x >= r.width {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

func (r *TerminalRenderer) drawBoard(view engine.View, stats string, style tcell.Style) {
	l := r.layout
	ox, oy := r.originX, r.originY

	for i, slot := range view.Secret() {
		r.drawPeg(ox+l.PegX(i), oy+l.SecretY(), slot.Color(), 1, style)
	}

	top, bottom := l.RuleY()
	r.drawRule(oy+top, style)
	r.drawRule(oy+bottom, style)

	history := view.History()
	for k, entry := range history {
		y := oy + l.AttemptY(k)
		for i, c := range entry.Guess.Colors() {
			r.drawPeg(ox+l.PegX(i), y, c, 1, style)
		}
		r.drawPins(ox+l.PinX(), y, entry.Feedback.Pins(), style)
	}

	guessRow := -1
	if view.Status() == engine.StatusEditing && view.Turn() < view.Attempts() {
		guessRow = view.Turn()
		r.drawGuessRow(view.Guess(), oy+l.AttemptY(guessRow), style)
	}

	// Unused attempts
	emptyStyle := style.Foreground(RgbSeparator)
	for k := len(history); k < l.Attempts; k++ {
		if k == guessRow {
			continue
		}
		y := oy + l.AttemptY(k)
		for i := 0; i < core.CodeLength; i++ {
			r.screen.SetContent(ox+l.PegX(i), y, constants.SlotGlyph, nil, emptyStyle)
		}
	}

	r.drawStatus(view, stats, style)
}

func (r *TerminalRenderer) drawPeg(x, y int, c core.Color, brightness float64, style tcell.Style) {
	glyph := constants.PegGlyph
	if c == core.ColorEmpty {
		glyph = constants.SlotGlyph
	}
	fg := ToTcell(c.RGB().Scale(brightness))
	r.screen.SetContent(x, y, glyph, nil, style.Foreground(fg))
}

func (r *TerminalRenderer) drawRule(y int, style tcell.Style) {
	ruleStyle := style.Foreground(RgbSeparator)
	for x := 0; x < r.layout.Width; x++ {
		r.screen.SetContent(r.originX+x, y, '─', nil, ruleStyle)
	}
}

// drawPins lays pins out in a 2x2 block, black first
func (r *TerminalRenderer) drawPins(x, y int, pins [core.CodeLength]core.Pin, style tcell.Style) {
	for i, p := range pins {
		ch := ' '
		if p != core.PinNone {
			ch = constants.PinGlyph
		}
		pinStyle := style.Background(RgbPinTray).Foreground(PinColor(p))
		r.screen.SetContent(x+i%2, y+i/2, ch, nil, pinStyle)
	}
}

func (r *TerminalRenderer) drawGuessRow(gv engine.GuessView, y int, style tcell.Style) {
	l := r.layout
	ox := r.originX

	brightness := 1.0
	if gv.Disabled || gv.Submitted {
		brightness = dimFactor
	}
	for i, c := range gv.Colors {
		r.drawPeg(ox+l.PegX(i), y, c, brightness, style)
	}

	base := rgbSubmitIdle
	if gv.Ready {
		base = core.ColorGreen.RGB()
	}
	if r.flash > 0 {
		alpha := float64(r.flash) / float64(constants.ErrorFlashTimeout)
		base = base.Blend(rgbRejectFlash, alpha)
	}
	submitStyle := style.Foreground(ToTcell(base))
	if gv.Ready && gv.Cursor == engine.SubmitPosition {
		submitStyle = submitStyle.Bold(true)
	}
	r.drawText(ox+l.SubmitX(), y, constants.SubmitLabel, submitStyle)

	if gv.Submitted {
		return
	}
	cursorX := ox + l.SubmitX() + 1
	if gv.Cursor < engine.SubmitPosition {
		cursorX = ox + l.PegX(gv.Cursor)
	}
	r.screen.SetContent(cursorX, y+1, '^', nil, style.Foreground(RgbCursor))
}

func (r *TerminalRenderer) drawStatus(view engine.View, stats string, style tcell.Style) {
	y := r.originY + r.layout.StatusY()
	x := r.originX
	avail := uint(max(r.width-x, 0))

	var label string
	var bg tcell.Color
	switch view.Status() {
	case engine.StatusWon:
		label, bg = constants.StatusTextWon, RgbWonBg
	case engine.StatusLost:
		label, bg = constants.StatusTextLost, RgbLostBg
	default:
		label, bg = constants.StatusTextEditing, RgbEditingBg
	}
	r.drawText(x, y, label, style.Foreground(RgbStatusText).Background(bg))

	turn := fmt.Sprintf(" R%d %d/%d", view.RoundNumber(), view.Turn(), view.Attempts())
	r.drawText(x+len(label), y, turn, style.Foreground(RgbStatusBar))

	textStyle := style.Foreground(RgbStatusBar)
	r.drawText(x, y+1, truncate.String(stats, avail), textStyle)
	r.drawText(x, y+2, truncate.String(hintText, avail), style.Foreground(RgbSeparator))
}

// drawBanner boxes page text over the attempt rows, leaving secret and status visible
func (r *TerminalRenderer) drawBanner(text string, style tcell.Style) {
	width := min(r.width, max(r.layout.Width, minBannerWidth))
	lines := strings.Split(wordwrap.String(text, max(width-4, 1)), "\n")

	boxH := len(lines) + 2
	areaTop := r.originY + r.layout.AttemptY(0)
	areaH := r.layout.AttemptY(r.layout.Attempts) - r.layout.AttemptY(0)
	bx := max((r.width-width)/2, 0)
	by := areaTop + max((areaH-boxH)/2, 0)

	borderStyle := style.Foreground(RgbBannerBorder)
	for y := by; y < by+boxH; y++ {
		for x := bx; x < bx+width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	for x := bx; x < bx+width; x++ {
		r.screen.SetContent(x, by, '─', nil, borderStyle)
		r.screen.SetContent(x, by+boxH-1, '─', nil, borderStyle)
	}

	textStyle := style.Foreground(RgbPageText)
	for i, line := range lines {
		r.drawText(bx+2, by+1+i, line, textStyle)
	}
}

func (r *TerminalRenderer) drawPage(text string, style tcell.Style) {
	wrap := max(r.width-2*constants.PageIndent, minPageWrap)
	lines := strings.Split(wordwrap.String(text, wrap), "\n")

	textStyle := style.Foreground(RgbPageText)
	for i, line := range lines {
		r.drawText(constants.PageIndent, 1+i, line, textStyle)
	}
}
