package note

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type InvalidNoteError struct {
	Token string
}

func (e *InvalidNoteError) Error() string {
	return fmt.Sprintf("invalid note %q", e.Token)
}

// Parse reads a letter (either case) followed by any run of sharps ('#', '♯',
// or 's' for URLs) and flats ('b', '♭'). Accidentals are applied left to right through Sharpen
// and Flatten, so "E##" parses to F♯.
func Parse(s string) (Note, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, &InvalidNoteError{Token: s}
	}
	idx := strings.IndexByte(letterNames, strings.ToUpper(s[:1])[0])
	if idx < 0 {
		return nil, &InvalidNoteError{Token: s}
	}

	var n Note = Letter(idx)
	for rest := s[1:]; rest != ""; {
		r, size := utf8.DecodeRuneInString(rest)
		switch r {
		case '#', '♯', 's':
			n = n.Sharpen()
		case 'b', '♭':
			n = n.Flatten()
		default:
			return nil, &InvalidNoteError{Token: s}
		}
		rest = rest[size:]
	}
	return n, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Note {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}
