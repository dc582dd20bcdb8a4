// Package chord builds chords as sets of interval slots above a root.
package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/note"
)

// Chord is a root plus the interval slots that are present. Notes are never
// stored; they are resolved from the root each time they are asked for.
//
// Chords are values. The modifier methods return a new Chord.
type Chord struct {
	root   note.Note
	slots  [interval.Count]bool
	suffix string
}

// Build fills the slots of quality q above root. It panics if q is not one of
// the declared qualities; use ParseQuality for untrusted input.
func Build(root note.Note, q Quality) Chord {
	p, ok := patterns[q]
	if !ok {
		panic(&InvalidQualityError{Token: q.String()})
	}
	c := Chord{root: note.Canonical(root), suffix: p.suffix}
	for _, i := range p.intervals {
		c.slots[i] = true
	}
	return c
}

// WithSus2 replaces the third with a major second.
func (c Chord) WithSus2() Chord {
	c.slots[interval.Min3] = false
	c.slots[interval.Maj3] = false
	c.slots[interval.Maj2] = true
	c.suffix += "sus2"
	return c
}

// WithSus4 replaces the third with a perfect fourth.
func (c Chord) WithSus4() Chord {
	c.slots[interval.Min3] = false
	c.slots[interval.Maj3] = false
	c.slots[interval.P4] = true
	c.suffix += "sus4"
	return c
}

// Omitting clears slot i and appends "omit" and its degree to the name.
// Either third clears both third slots.
func (c Chord) Omitting(i interval.Interval) Chord {
	if !i.Valid() {
		return c
	}
	switch i {
	case interval.Min3, interval.Maj3:
		c.slots[interval.Min3] = false
		c.slots[interval.Maj3] = false
	default:
		c.slots[i] = false
	}
	c.suffix += fmt.Sprintf("omit%d", i.Degree())
	return c
}

func (c Chord) Root() note.Note { return c.root }

func (c Chord) Name() string { return c.root.Name() + c.suffix }

func (c Chord) String() string { return c.Name() }

// Has reports whether slot i is present.
func (c Chord) Has(i interval.Interval) bool {
	return i.Valid() && c.slots[i]
}

// Intervals returns the present slots in slot order.
func (c Chord) Intervals() []interval.Interval {
	var res []interval.Interval
	for _, i := range interval.All {
		if c.slots[i] {
			res = append(res, i)
		}
	}
	return res
}

// Notes resolves every present slot against the root, in slot order.
func (c Chord) Notes() []note.Note {
	var res []note.Note
	for _, i := range c.Intervals() {
		res = append(res, i.Resolve(c.root))
	}
	return res
}

// PitchClasses returns the sorted, distinct pitch classes of the chord.
func (c Chord) PitchClasses() []int {
	seen := make(map[int]bool)
	var res []int
	for _, n := range c.Notes() {
		if !seen[n.ID()] {
			seen[n.ID()] = true
			res = append(res, n.ID())
		}
	}
	sort.Ints(res)
	return res
}
