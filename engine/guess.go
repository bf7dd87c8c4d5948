package engine

import "github.com/lixenwraith/codebreaker/core"

// SubmitPosition is the cursor index of the submit affordance right of the slots
const SubmitPosition = core.CodeLength

// Slot holds either no peg (Empty) or one selectable peg
type Slot struct {
	peg    core.Peg
	filled bool
}

// Peg returns the chosen peg, false while the slot is empty
func (s Slot) Peg() (core.Peg, bool) {
	return s.peg, s.filled
}

// Color returns the display color, Empty when unset
func (s Slot) Color() core.Color {
	if !s.filled {
		return core.ColorEmpty
	}
	return s.peg.Color()
}

// GuessSlotSet is the editable guess row
// Cursor 0..3 edits a slot; cursor 4 sits on the submit affordance
type GuessSlotSet struct {
	slots     [core.CodeLength]Slot
	cursor    int
	submitted bool
	disabled  bool
}

// NewGuessSlotSet creates an empty, enabled guess row
func NewGuessSlotSet() *GuessSlotSet {
	return &GuessSlotSet{}
}

// MoveCursor steps the cursor by direction; moves past either end are ignored
func (g *GuessSlotSet) MoveCursor(direction int) {
	if g.disabled {
		return
	}
	next := g.cursor + direction
	if next < 0 || next > SubmitPosition {
		return
	}
	g.cursor = next
}

// CycleColor steps the peg under the cursor through the palette
// An empty slot starts at the first peg going forward and the last going backward
func (g *GuessSlotSet) CycleColor(direction int) {
	if g.disabled || g.cursor == SubmitPosition {
		return
	}
	if direction != -1 && direction != 1 {
		return
	}

	slot := &g.slots[g.cursor]
	if !slot.filled {
		pegs := core.SelectableColors()
		if direction > 0 {
			slot.peg = pegs[0]
		} else {
			slot.peg = pegs[len(pegs)-1]
		}
		slot.filled = true
		return
	}
	slot.peg = slot.peg.Next(direction)
}

// SetSlot places peg at index directly (line-mode guess entry)
func (g *GuessSlotSet) SetSlot(index int, peg core.Peg) {
	if g.disabled || index < 0 || index >= core.CodeLength || !peg.Valid() {
		return
	}
	g.slots[index] = Slot{peg: peg, filled: true}
}

// TrySubmit marks the guess submitted when the cursor is on submit and every slot is filled
func (g *GuessSlotSet) TrySubmit() bool {
	if g.disabled || g.cursor != SubmitPosition || !g.Ready() {
		return false
	}
	g.submitted = true
	return true
}

// Reset empties the slots and clears cursor and submit flag; disabled is untouched
func (g *GuessSlotSet) Reset() {
	g.slots = [core.CodeLength]Slot{}
	g.cursor = 0
	g.submitted = false
}

// Disable blocks all editing until Enable
func (g *GuessSlotSet) Disable() {
	g.disabled = true
}

// Enable re-allows editing, only called by a round restart
func (g *GuessSlotSet) Enable() {
	g.disabled = false
}

// Ready reports whether no slot is empty
func (g *GuessSlotSet) Ready() bool {
	for _, s := range g.slots {
		if !s.filled {
			return false
		}
	}
	return true
}

func (g *GuessSlotSet) Submitted() bool { return g.submitted }
func (g *GuessSlotSet) Disabled() bool  { return g.disabled }
func (g *GuessSlotSet) Cursor() int     { return g.cursor }

// Slots returns a copy of the current row
func (g *GuessSlotSet) Slots() [core.CodeLength]Slot {
	return g.slots
}

// Code returns the finalized guess, false while any slot is empty
func (g *GuessSlotSet) Code() (core.Code, bool) {
	var code core.Code
	for i, s := range g.slots {
		if !s.filled {
			return code, false
		}
		code[i] = s.peg
	}
	return code, true
}
