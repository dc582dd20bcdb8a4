// Package note implements spelled pitch classes: a natural letter name with
// any stack of sharps and flats on top of it.
package note

// Note is one spelled pitch. It is implemented by Letter, Sharp and Flat only.
//
// Notes are plain values and compare with == by spelling. Use Enharmonic to
// compare by pitch class.
type Note interface {
	// ID is the chromatic pitch class in [0, 11] with C at 0.
	ID() int
	// Name is the display spelling, e.g. "F♯" or "B♭".
	Name() string
	// Base is the letter the spelling is written on.
	Base() Letter
	// Accidentals is the net accidental count, positive for sharps.
	Accidentals() int
	Sharpen() Note
	Flatten() Note
	String() string

	isNote()
}

type Letter int

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

// Letters holds the seven naturals in diatonic order starting from C.
var Letters = [7]Letter{C, D, E, F, G, A, B}

var letterIDs = [7]int{0, 2, 4, 5, 7, 9, 11}

const letterNames = "CDEFGAB"

func (l Letter) ID() int          { return letterIDs[l] }
func (l Letter) Name() string     { return letterNames[l : l+1] }
func (l Letter) String() string   { return l.Name() }
func (l Letter) Base() Letter     { return l }
func (l Letter) Accidentals() int { return 0 }
func (l Letter) Sharpen() Note    { return Sharp{l} }
func (l Letter) Flatten() Note    { return Flat{l} }
func (Letter) isNote()            {}

// Step returns the letter n diatonic steps above l, wrapping from B to C.
func (l Letter) Step(n int) Letter {
	return Letter(((int(l)+n)%7 + 7) % 7)
}

// doubleSharp spells l♯♯ with a single accidental on the next letter.
// E and B sit a semitone below their neighbour so they keep one sharp.
func (l Letter) doubleSharp() Note {
	next := l.Step(1)
	if l == E || l == B {
		return Sharp{next}
	}
	return next
}

// doubleFlat is the mirror of doubleSharp: C and F keep one flat.
func (l Letter) doubleFlat() Note {
	prev := l.Step(-1)
	if l == C || l == F {
		return Flat{prev}
	}
	return prev
}

// Sharp raises Of by a semitone.
type Sharp struct{ Of Note }

func (s Sharp) ID() int          { return (s.Of.ID() + 1) % 12 }
func (s Sharp) Name() string     { return s.Of.Name() + "♯" }
func (s Sharp) String() string   { return s.Name() }
func (s Sharp) Base() Letter     { return s.Of.Base() }
func (s Sharp) Accidentals() int { return s.Of.Accidentals() + 1 }
func (Sharp) isNote()            {}

func (s Sharp) Sharpen() Note {
	if l, ok := s.Of.(Letter); ok {
		return l.doubleSharp()
	}
	return Canonical(s).Sharpen()
}

func (s Sharp) Flatten() Note { return s.Of }

// Flat lowers Of by a semitone.
type Flat struct{ Of Note }

func (f Flat) ID() int          { return (f.Of.ID() + 11) % 12 }
func (f Flat) Name() string     { return f.Of.Name() + "♭" }
func (f Flat) String() string   { return f.Name() }
func (f Flat) Base() Letter     { return f.Of.Base() }
func (f Flat) Accidentals() int { return f.Of.Accidentals() - 1 }
func (Flat) isNote()            {}

func (f Flat) Sharpen() Note { return f.Of }

func (f Flat) Flatten() Note {
	if l, ok := f.Of.(Letter); ok {
		return l.doubleFlat()
	}
	return Canonical(f).Flatten()
}

// Canonical reduces any nesting of accidentals to a letter carrying at most
// one sharp or flat. The result is enharmonic to n.
func Canonical(n Note) Note {
	switch v := n.(type) {
	case Sharp:
		return Canonical(v.Of).Sharpen()
	case Flat:
		return Canonical(v.Of).Flatten()
	default:
		return n
	}
}

// Enharmonic reports whether a and b share a pitch class.
func Enharmonic(a, b Note) bool {
	return a.ID() == b.ID()
}
