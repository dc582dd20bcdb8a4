// Package interval resolves named intervals above a root note, keeping both
// the chromatic distance and the letter-name progression correct.
package interval

import (
	"fmt"

	"github.com/jsphweid/harmonia/note"
)

// Interval is one of twelve named distances from a unison to a major seventh.
// The numeric value is the semitone count and also the chord slot order.
type Interval int

const (
	P1 Interval = iota
	Min2
	Maj2
	Min3
	Maj3
	P4
	Dim5
	P5
	Aug5
	Maj6
	Min7
	Maj7
)

// Count is the number of named intervals.
const Count = 12

// All lists every interval in slot order.
var All = [Count]Interval{P1, Min2, Maj2, Min3, Maj3, P4, Dim5, P5, Aug5, Maj6, Min7, Maj7}

var shortNames = [Count]string{"P1", "m2", "M2", "m3", "M3", "P4", "d5", "P5", "A5", "M6", "m7", "M7"}

// number of letter steps above the root, fifths share the perfect fifth's
var letterSteps = [Count]int{0, 1, 1, 2, 2, 3, 4, 4, 4, 5, 6, 6}

func (i Interval) Valid() bool {
	return i >= P1 && i <= Maj7
}

func (i Interval) Semitones() int {
	return int(i)
}

// LetterSteps is how many letter names the interval spans above its root.
func (i Interval) LetterSteps() int {
	return letterSteps[i]
}

// Degree is the ordinal interval number, 1 for a unison through 7.
func (i Interval) Degree() int {
	return letterSteps[i] + 1
}

func (i Interval) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Interval(%d)", int(i))
	}
	return shortNames[i]
}

// Resolve spells the note i above root: the root's letter is stepped by the
// interval's letter count, then raised or lowered onto the target pitch class.
// It panics if i is not one of the named intervals; use Parse for untrusted
// input.
func (i Interval) Resolve(root note.Note) note.Note {
	if !i.Valid() {
		panic(&InvalidIntervalError{Token: i.String()})
	}
	root = note.Canonical(root)
	stepped := note.DiatonicStep(root, i.LetterSteps())
	return note.Adjust(stepped, root.ID()+i.Semitones())
}
