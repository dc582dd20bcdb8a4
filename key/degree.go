package key

import (
	"fmt"
	"strings"
)

// Degree is a scale position, I through VII.
type Degree int

const (
	I Degree = iota
	II
	III
	IV
	V
	VI
	VII
)

var numerals = [7]string{"I", "II", "III", "IV", "V", "VI", "VII"}

type InvalidDegreeError struct {
	Token string
}

func (e *InvalidDegreeError) Error() string {
	return fmt.Sprintf("invalid scale degree %q", e.Token)
}

func (d Degree) Valid() bool {
	return d >= I && d <= VII
}

func (d Degree) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Degree(%d)", int(d))
	}
	return numerals[d]
}

// ParseDegree reads a roman numeral in either case.
func ParseDegree(s string) (Degree, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range numerals {
		if upper == n {
			return Degree(i), nil
		}
	}
	return 0, &InvalidDegreeError{Token: s}
}
