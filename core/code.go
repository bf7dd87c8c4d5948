package core

import (
	"fmt"
	"strings"
)

// CodeLength is the number of slots in a secret or guess
const CodeLength = 4

// Code is a finalized four-peg sequence
type Code [CodeLength]Peg

func (c Code) String() string {
	var b strings.Builder
	for _, p := range c {
		b.WriteRune(p.Rune())
	}
	return b.String()
}

// Colors returns the display colors of c
func (c Code) Colors() [CodeLength]Color {
	var out [CodeLength]Color
	for i, p := range c {
		out[i] = p.Color()
	}
	return out
}

// ParseCode reads either four letters ("rgby") or four space-separated names/letters
func ParseCode(s string) (Code, error) {
	var code Code
	fields := strings.Fields(s)
	if len(fields) == 1 && len(fields[0]) == CodeLength {
		fields = strings.Split(fields[0], "")
	}
	if len(fields) != CodeLength {
		return code, fmt.Errorf("code needs %d pegs, got %d", CodeLength, len(fields))
	}
	for i, f := range fields {
		p, err := ParsePeg(f)
		if err != nil {
			return code, err
		}
		code[i] = p
	}
	return code, nil
}
