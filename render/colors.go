package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/codebreaker/core"
)

// Board chrome colors
var (
	RgbBackground   = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbSeparator    = tcell.NewRGBColor(80, 80, 100)   // Dim rule between sections
	RgbPinTray      = tcell.NewRGBColor(120, 120, 120) // Mid gray so black and white pins both show
	RgbCursor       = tcell.NewRGBColor(255, 165, 0)   // Orange cursor marker
	RgbStatusBar    = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusText   = tcell.NewRGBColor(0, 0, 0)       // Dark text on status badges
	RgbPageText     = tcell.NewRGBColor(220, 220, 220)
	RgbBannerBorder = tcell.NewRGBColor(255, 255, 0)

	// Status badge backgrounds
	RgbEditingBg = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbWonBg     = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbLostBg    = tcell.NewRGBColor(200, 50, 50)   // Red
)

// Channel values for blending, kept as core.RGB so they mix without tcell
var (
	rgbSubmitIdle  = core.RGB{R: 110, G: 110, B: 110} // Submit button before the row is ready
	rgbRejectFlash = core.RGB{R: 255, G: 0, B: 0}
)

// ToTcell converts explicit channels to a tcell color
func ToTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// PegColor maps a display color to its tcell foreground
func PegColor(c core.Color) tcell.Color {
	return ToTcell(c.RGB())
}

// PinColor maps a feedback pin to its tcell foreground on the pin tray
func PinColor(p core.Pin) tcell.Color {
	switch p {
	case core.PinBlack:
		return PegColor(core.ColorBlack)
	case core.PinWhite:
		return PegColor(core.ColorWhite)
	default:
		return RgbPinTray
	}
}
