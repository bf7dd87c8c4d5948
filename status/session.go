package status

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/codebreaker/core"
	"github.com/lixenwraith/codebreaker/engine"
)

// Metric keys
const (
	KeyRounds     = "session.rounds"
	KeyWon        = "session.won"
	KeyLost       = "session.lost"
	KeyGuesses    = "session.guesses"
	KeyWinTurns   = "session.win_turns"
	KeyAvgWin     = "session.avg_win_turns"
	KeyLastSecret = "session.last_secret"
)

// Session counts rounds and guesses across restarts
// Pointers are resolved once so event handlers only touch atomics
type Session struct {
	engine.BaseListener

	reg *Registry

	rounds   *atomic.Int64
	won      *atomic.Int64
	lost     *atomic.Int64
	guesses  *atomic.Int64
	winTurns *atomic.Int64
	avgWin   *AtomicFloat
	secret   *AtomicString
}

// NewSession registers session metrics in reg; the first round counts as started
func NewSession(reg *Registry) *Session {
	s := &Session{
		reg:      reg,
		rounds:   reg.Ints.Get(KeyRounds),
		won:      reg.Ints.Get(KeyWon),
		lost:     reg.Ints.Get(KeyLost),
		guesses:  reg.Ints.Get(KeyGuesses),
		winTurns: reg.Ints.Get(KeyWinTurns),
		avgWin:   reg.Floats.Get(KeyAvgWin),
		secret:   reg.Strings.Get(KeyLastSecret),
	}
	s.rounds.Store(1)
	return s
}

func (s *Session) Registry() *Registry { return s.reg }

func (s *Session) OnSubmit(_ engine.HistoryEntry, _ int) {
	s.guesses.Add(1)
}

func (s *Session) OnRoundEnd(status engine.RoundStatus, secret core.Code, turns int) {
	switch status {
	case engine.StatusWon:
		n := s.won.Add(1)
		total := s.winTurns.Add(int64(turns))
		s.avgWin.Set(float64(total) / float64(n))
	case engine.StatusLost:
		s.lost.Add(1)
	}
	s.secret.Store(secret.String())
}

func (s *Session) OnRestart(_ int) {
	s.rounds.Add(1)
}

// Stats is a point-in-time copy of the counters
type Stats struct {
	Rounds      int64
	Won         int64
	Lost        int64
	Guesses     int64
	AvgWinTurns float64
	LastSecret  string
}

func (s *Session) Stats() Stats {
	return Stats{
		Rounds:      s.rounds.Load(),
		Won:         s.won.Load(),
		Lost:        s.lost.Load(),
		Guesses:     s.guesses.Load(),
		AvgWinTurns: s.avgWin.Get(),
		LastSecret:  s.secret.Load(),
	}
}

// String formats the stats for a one-line status bar
func (st Stats) String() string {
	if st.Won == 0 {
		return fmt.Sprintf("W%d L%d", st.Won, st.Lost)
	}
	return fmt.Sprintf("W%d L%d avg %.1f", st.Won, st.Lost, st.AvgWinTurns)
}
