package interval

import (
	"fmt"
	"strings"
)

type InvalidIntervalError struct {
	Token string
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("invalid interval %q", e.Token)
}

// enharmonic aliases that share a slot with a named interval
var aliases = map[string]Interval{
	"A4": Dim5,
	"m6": Aug5,
	"d7": Maj6,
}

// Parse reads a short interval name such as "m3" or "P5". Quality letters
// are case sensitive since m and M differ.
func Parse(s string) (Interval, error) {
	s = strings.TrimSpace(s)
	for i, name := range shortNames {
		if s == name {
			return Interval(i), nil
		}
	}
	if i, ok := aliases[s]; ok {
		return i, nil
	}
	return 0, &InvalidIntervalError{Token: s}
}
