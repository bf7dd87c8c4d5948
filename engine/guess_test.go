package engine

import (
	"testing"

	"github.com/lixenwraith/codebreaker/core"
)

// fillSlots cycles every slot once forward, leaving the cursor on submit
func fillSlots(g *GuessSlotSet) {
	for i := 0; i < core.CodeLength; i++ {
		g.CycleColor(1)
		g.MoveCursor(1)
	}
}

// TestGuessSlotSetInitialState verifies a fresh row is empty and editable
func TestGuessSlotSetInitialState(t *testing.T) {
	g := NewGuessSlotSet()

	if g.Cursor() != 0 {
		t.Errorf("Expected cursor 0, got %d", g.Cursor())
	}
	if g.Ready() {
		t.Error("Expected empty row not ready")
	}
	if g.Submitted() || g.Disabled() {
		t.Error("Expected fresh row not submitted and not disabled")
	}
	for i, s := range g.Slots() {
		if s.Color() != core.ColorEmpty {
			t.Errorf("Expected slot %d empty, got %v", i, s.Color())
		}
	}
}

// TestMoveCursorClamps verifies repeated out-of-range moves never change the cursor
func TestMoveCursorClamps(t *testing.T) {
	g := NewGuessSlotSet()

	for i := 0; i < 5; i++ {
		g.MoveCursor(-1)
	}
	if g.Cursor() != 0 {
		t.Errorf("Expected cursor pinned at 0, got %d", g.Cursor())
	}

	for i := 0; i < 10; i++ {
		g.MoveCursor(1)
	}
	if g.Cursor() != SubmitPosition {
		t.Errorf("Expected cursor pinned at %d, got %d", SubmitPosition, g.Cursor())
	}

	g.MoveCursor(1)
	if g.Cursor() != SubmitPosition {
		t.Errorf("Expected extra move to be a no-op, got %d", g.Cursor())
	}
}

// TestCycleColor verifies empty start, wrapping, and the submit affordance no-op
func TestCycleColor(t *testing.T) {
	g := NewGuessSlotSet()

	g.CycleColor(1)
	if p, ok := g.Slots()[0].Peg(); !ok || p != core.PegRed {
		t.Errorf("Expected first forward cycle to pick Red, got %v ok=%v", p, ok)
	}

	g.CycleColor(-1)
	if p, _ := g.Slots()[0].Peg(); p != core.PegWhite {
		t.Errorf("Expected Red-1 to wrap to White, got %v", p)
	}

	g.MoveCursor(1)
	g.CycleColor(-1)
	if p, ok := g.Slots()[1].Peg(); !ok || p != core.PegWhite {
		t.Errorf("Expected first backward cycle to pick White, got %v ok=%v", p, ok)
	}

	for i := 0; i < core.CodeLength; i++ {
		g.MoveCursor(1)
	}
	before := g.Slots()
	g.CycleColor(1)
	if g.Slots() != before {
		t.Error("Expected cycling on submit affordance to be a no-op")
	}
}

// TestTrySubmitGate verifies submit requires cursor on submit and every slot filled
func TestTrySubmitGate(t *testing.T) {
	g := NewGuessSlotSet()

	// Not ready, cursor on slot
	if g.TrySubmit() {
		t.Error("Expected submit rejected on empty row")
	}

	// Ready but cursor on slot
	for i := 0; i < core.CodeLength; i++ {
		g.CycleColor(1)
		if i < core.CodeLength-1 {
			g.MoveCursor(1)
		}
	}
	if !g.Ready() {
		t.Fatal("Expected row ready after filling all slots")
	}
	if g.TrySubmit() {
		t.Error("Expected submit rejected with cursor on a slot")
	}

	// Cursor on submit but one slot empty
	h := NewGuessSlotSet()
	for i := 0; i < core.CodeLength; i++ {
		if i != 2 {
			h.CycleColor(1)
		}
		h.MoveCursor(1)
	}
	if h.TrySubmit() {
		t.Error("Expected submit rejected with an empty slot")
	}

	g.MoveCursor(1)
	if !g.TrySubmit() || !g.Submitted() {
		t.Error("Expected submit accepted when ready and on submit")
	}
	code, ok := g.Code()
	if !ok || code != (core.Code{core.PegRed, core.PegRed, core.PegRed, core.PegRed}) {
		t.Errorf("Expected RRRR, got %s ok=%v", code, ok)
	}
}

// TestDisabledBlocksAllOperations verifies the global input gate
func TestDisabledBlocksAllOperations(t *testing.T) {
	g := NewGuessSlotSet()
	g.CycleColor(1)
	g.Disable()

	before := *g
	g.MoveCursor(1)
	g.CycleColor(1)
	g.SetSlot(1, core.PegBlue)
	if g.TrySubmit() {
		t.Error("Expected submit rejected while disabled")
	}
	if *g != before {
		t.Error("Expected disabled row to be unchanged")
	}

	// Reset keeps the gate closed; only Enable reopens it
	g.Reset()
	if !g.Disabled() {
		t.Error("Expected Reset to leave row disabled")
	}
	g.Enable()
	g.MoveCursor(1)
	if g.Cursor() != 1 {
		t.Errorf("Expected cursor 1 after enable, got %d", g.Cursor())
	}
}

// TestResetClearsRow verifies reset returns to the initial state
func TestResetClearsRow(t *testing.T) {
	g := NewGuessSlotSet()
	fillSlots(g)
	g.TrySubmit()

	g.Reset()
	if g.Cursor() != 0 || g.Ready() || g.Submitted() {
		t.Errorf("Expected cleared row, got cursor=%d ready=%v submitted=%v", g.Cursor(), g.Ready(), g.Submitted())
	}
	if _, ok := g.Code(); ok {
		t.Error("Expected no code after reset")
	}
}
