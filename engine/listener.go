package engine

import "github.com/lixenwraith/codebreaker/core"

// Listener observes round events without write access to the round
// Callbacks run synchronously on the loop goroutine and must not call back into Game
type Listener interface {
	OnCycle()
	OnReject()
	OnSubmit(entry HistoryEntry, turn int)
	OnRoundEnd(status RoundStatus, secret core.Code, turns int)
	OnRestart(round int)
}

// BaseListener provides no-op callbacks for embedding
type BaseListener struct{}

func (BaseListener) OnCycle()                               {}
func (BaseListener) OnReject()                              {}
func (BaseListener) OnSubmit(HistoryEntry, int)             {}
func (BaseListener) OnRoundEnd(RoundStatus, core.Code, int) {}
func (BaseListener) OnRestart(int)                          {}
