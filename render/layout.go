package render

import (
	"github.com/lixenwraith/codebreaker/core"
	"github.com/lixenwraith/codebreaker/engine"
)

// Layout places board elements in board-relative cells
// Row 0 is the secret, then a rule, one block of 2+spacing rows per attempt,
// a second rule and three status lines
type Layout struct {
	Spacing  int
	Attempts int
	Width    int
	Height   int
}

// NewLayout sizes a board for attempts rows at spacing
func NewLayout(attempts, spacing int) Layout {
	return Layout{
		Spacing:  spacing,
		Attempts: attempts,
		Width:    engine.MinWidth(spacing),
		Height:   engine.MinHeight(attempts, spacing),
	}
}

// PegX is the column of slot i
func (l Layout) PegX(i int) int { return 1 + i*(1+l.Spacing) }

// PinX is the left column of the 2x2 pin block
func (l Layout) PinX() int { return l.PegX(core.CodeLength) }

// SubmitX is the first column of the submit label
func (l Layout) SubmitX() int { return l.PinX() + 3 }

// SecretY is the row of the secret pegs
func (l Layout) SecretY() int { return 0 }

// AttemptY is the top row of attempt block k
func (l Layout) AttemptY(k int) int { return 2 + k*(2+l.Spacing) }

// RuleY returns the rows of the two separators
func (l Layout) RuleY() (top, bottom int) {
	return 1, l.AttemptY(l.Attempts)
}

// StatusY is the first of the three status lines
func (l Layout) StatusY() int { return l.AttemptY(l.Attempts) + 1 }
