package key

import (
	"fmt"
	"strings"
)

type Mode int

const (
	Major Mode = iota
	NaturalMinor
)

type InvalidModeError struct {
	Token string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid mode %q", e.Token)
}

// semitones of each degree above the tonic
var patterns = map[Mode][7]int{
	Major:        {0, 2, 4, 5, 7, 9, 11},
	NaturalMinor: {0, 2, 3, 5, 7, 8, 10},
}

func (m Mode) Valid() bool {
	_, ok := patterns[m]
	return ok
}

func (m Mode) String() string {
	switch m {
	case Major:
		return "major"
	case NaturalMinor:
		return "minor"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

var modeNames = map[string]Mode{
	"major":         Major,
	"maj":           Major,
	"ionian":        Major,
	"minor":         NaturalMinor,
	"min":           NaturalMinor,
	"natural-minor": NaturalMinor,
	"aeolian":       NaturalMinor,
}

func ParseMode(s string) (Mode, error) {
	if m, ok := modeNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return 0, &InvalidModeError{Token: s}
}
