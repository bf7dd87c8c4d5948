package core

// Color is a display color for a board cell
// Sentinels (Empty, Hidden) only exist for display and never reach scoring
type Color uint8

const (
	ColorEmpty  Color = iota // Slot with no peg chosen yet
	ColorHidden              // Secret slot before reveal
	ColorRed
	ColorBlue
	ColorGreen
	ColorYellow
	ColorBlack
	ColorWhite
)

var colorNames = [...]string{
	ColorEmpty:  "empty",
	ColorHidden: "hidden",
	ColorRed:    "red",
	ColorBlue:   "blue",
	ColorGreen:  "green",
	ColorYellow: "yellow",
	ColorBlack:  "black",
	ColorWhite:  "white",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "invalid"
}

// IsSentinel reports whether c is Empty or Hidden
func (c Color) IsSentinel() bool {
	return c == ColorEmpty || c == ColorHidden
}

// Peg returns the selectable peg for c, false for sentinels
func (c Color) Peg() (Peg, bool) {
	if c.IsSentinel() || c > ColorWhite {
		return 0, false
	}
	return Peg(c - ColorRed), true
}

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
)

var colorRGB = [...]RGB{
	ColorEmpty:  {204, 204, 204},
	ColorHidden: {90, 90, 90},
	ColorRed:    {204, 0, 0},
	ColorBlue:   {0, 0, 204},
	ColorGreen:  {0, 204, 0},
	ColorYellow: {230, 200, 0},
	ColorBlack:  {20, 20, 20},
	ColorWhite:  {245, 245, 245},
}

// RGB returns the display channels for c
func (c Color) RGB() RGB {
	if int(c) < len(colorRGB) {
		return colorRGB[c]
	}
	return RGBBlack
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies each channel by factor (dimming disabled input)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}
