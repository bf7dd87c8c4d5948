package core

import (
	"errors"
	"fmt"
	"strings"
)

// Peg is a player-selectable color
// The type has no Empty/Hidden values: a Code can only hold real pegs
type Peg uint8

const (
	PegRed Peg = iota
	PegBlue
	PegGreen
	PegYellow
	PegBlack
	PegWhite

	PegCount = int(PegWhite) + 1
)

// ErrUnknownPeg is returned when a name or letter does not denote a peg
var ErrUnknownPeg = errors.New("unknown peg color")

var pegRunes = [PegCount]rune{'r', 'b', 'g', 'y', 'k', 'w'}

// SelectableColors returns the cycle order of pegs
func SelectableColors() []Peg {
	pegs := make([]Peg, PegCount)
	for i := range pegs {
		pegs[i] = Peg(i)
	}
	return pegs
}

// Valid reports whether p is inside the selectable set
func (p Peg) Valid() bool {
	return int(p) < PegCount
}

// Color returns the display color of p
func (p Peg) Color() Color {
	if !p.Valid() {
		panic(fmt.Sprintf("invariant violation: peg %d outside palette", p))
	}
	return ColorRed + Color(p)
}

func (p Peg) String() string {
	if !p.Valid() {
		return "invalid"
	}
	return p.Color().String()
}

// Rune returns the one-letter code of p (k is black)
func (p Peg) Rune() rune {
	if !p.Valid() {
		return '?'
	}
	return pegRunes[p]
}

// Next returns the cyclic neighbour of p in direction -1 or +1, wrapping both ends
func (p Peg) Next(direction int) Peg {
	if !p.Valid() {
		panic(fmt.Sprintf("invariant violation: cycling from peg %d outside palette", p))
	}
	if direction != -1 && direction != 1 {
		panic(fmt.Sprintf("invariant violation: cycle direction %d", direction))
	}
	return Peg((int(p) + direction + PegCount) % PegCount)
}

// ParsePeg accepts a color name ("red") or letter ("r")
func ParsePeg(s string) (Peg, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i := 0; i < PegCount; i++ {
		p := Peg(i)
		if s == p.String() || (len(s) == 1 && rune(s[0]) == pegRunes[i]) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPeg, s)
}
