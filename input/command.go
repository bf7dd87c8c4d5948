package input

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/lixenwraith/codebreaker/core"
)

// MaxCount bounds the repeat count of a movement or cycle command
const MaxCount = 99

var (
	// ErrUnknownCommand is returned when no command word is close enough
	ErrUnknownCommand = errors.New("unknown command")
	// ErrAmbiguousCommand is returned when two command words are equally close
	ErrAmbiguousCommand = errors.New("ambiguous command")
)

// ParseCommand turns one line of text into an Intent
// Accepted forms: "<word> [count]", "guess <code>", or a bare code such as "rgby"
func ParseCommand(line string) (Intent, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Intent{}, nil
	}

	// Bare code: "rgby" or "red green blue yellow"
	if code, err := core.ParseCode(strings.Join(fields, " ")); err == nil {
		return Intent{Type: IntentGuess, Code: code, Count: 1}, nil
	}

	word, err := resolveWord(fields[0])
	if err != nil {
		return Intent{}, err
	}
	intent := Intent{Type: actionRegistry[word], Count: 1}
	rest := fields[1:]

	if intent.Type == IntentGuess {
		code, err := core.ParseCode(strings.Join(rest, " "))
		if err != nil {
			return Intent{}, fmt.Errorf("guess: %w", err)
		}
		intent.Code = code
		return intent, nil
	}

	if len(rest) > 0 {
		n, err := strconv.Atoi(rest[0])
		if err != nil || n < 1 || n > MaxCount {
			return Intent{}, fmt.Errorf("%s: bad count %q", word, rest[0])
		}
		intent.Count = n
	}
	return intent, nil
}

// resolveWord matches token exactly, else by the closest edit distance within a length-scaled limit
func resolveWord(token string) (string, error) {
	if _, ok := actionRegistry[token]; ok {
		return token, nil
	}

	names := ActionNames()
	sort.Strings(names)

	best, bestDist, tie := "", -1, false
	for _, name := range names {
		dist := levenshtein.ComputeDistance(token, name)
		if dist > levenshteinLimit(len(name)) {
			continue
		}
		switch {
		case bestDist < 0 || dist < bestDist:
			best, bestDist, tie = name, dist, false
		case dist == bestDist && actionRegistry[name] != actionRegistry[best]:
			tie = true
		}
	}

	if bestDist < 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, token)
	}
	if tie {
		return "", fmt.Errorf("%w: %q", ErrAmbiguousCommand, token)
	}
	return best, nil
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 2:
		return 0
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
