package engine

import "github.com/lixenwraith/codebreaker/core"

// GuessView is the render-facing state of the guess row
type GuessView struct {
	Colors    [core.CodeLength]core.Color
	Cursor    int // SubmitPosition when on the submit affordance
	Ready     bool
	Submitted bool
	Disabled  bool
}

// View is the read-only query surface renderers depend on
type View interface {
	Secret() [core.CodeLength]SecretSlot
	History() []HistoryEntry
	Guess() GuessView
	Status() RoundStatus
	Turn() int
	Attempts() int
	RoundNumber() int
}

var _ View = (*Game)(nil)
var _ View = Snapshot{}

// Snapshot is an immutable copy of a View taken between ticks
type Snapshot struct {
	SecretSlots  [core.CodeLength]SecretSlot
	Entries      []HistoryEntry
	GuessRow     GuessView
	RoundStatus  RoundStatus
	TurnPointer  int
	AttemptCount int
	Round        int
}

// TakeSnapshot copies the current state of v
func TakeSnapshot(v View) Snapshot {
	return Snapshot{
		SecretSlots:  v.Secret(),
		Entries:      v.History(),
		GuessRow:     v.Guess(),
		RoundStatus:  v.Status(),
		TurnPointer:  v.Turn(),
		AttemptCount: v.Attempts(),
		Round:        v.RoundNumber(),
	}
}

func (s Snapshot) Secret() [core.CodeLength]SecretSlot { return s.SecretSlots }
func (s Snapshot) Guess() GuessView                    { return s.GuessRow }
func (s Snapshot) Status() RoundStatus                 { return s.RoundStatus }
func (s Snapshot) Turn() int                           { return s.TurnPointer }
func (s Snapshot) Attempts() int                       { return s.AttemptCount }
func (s Snapshot) RoundNumber() int                    { return s.Round }

func (s Snapshot) History() []HistoryEntry {
	out := make([]HistoryEntry, len(s.Entries))
	copy(out, s.Entries)
	return out
}
