package core

// Pin is one feedback marker next to a history row
type Pin uint8

const (
	PinNone  Pin = iota
	PinWhite     // Right color, wrong position
	PinBlack     // Right color, right position
)

// Feedback is the scored result of one guess
type Feedback struct {
	Exact   int // Black pins
	Partial int // White pins
}

// Solved reports whether every position matched
func (f Feedback) Solved() bool {
	return f.Exact == CodeLength
}

// Pins lays out black pins first, then white, padded with PinNone
func (f Feedback) Pins() [CodeLength]Pin {
	var pins [CodeLength]Pin
	i := 0
	for ; i < f.Exact && i < CodeLength; i++ {
		pins[i] = PinBlack
	}
	for j := 0; j < f.Partial && i < CodeLength; j++ {
		pins[i] = PinWhite
		i++
	}
	return pins
}

// Score compares guess against secret
// Color overlap is counted per peg as a multiset intersection, then exact matches are
// subtracted so repeated colors are neither double- nor under-counted
func Score(secret, guess Code) Feedback {
	var secretCount, guessCount [PegCount]int
	exact := 0

	for i := 0; i < CodeLength; i++ {
		if secret[i] == guess[i] {
			exact++
		}
		secretCount[secret[i]]++
		guessCount[guess[i]]++
	}

	overlap := 0
	for p := 0; p < PegCount; p++ {
		overlap += min(secretCount[p], guessCount[p])
	}

	return Feedback{Exact: exact, Partial: overlap - exact}
}
