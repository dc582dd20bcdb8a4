// Package key builds diatonic scales with one letter name per degree.
package key

import (
	"github.com/jsphweid/harmonia/note"
)

// Key is a tonic and mode together with its seven spelled degrees.
type Key struct {
	mode    Mode
	degrees [7]note.Note
}

// Build spells the scale of tonic in mode. Each degree sits on the next
// letter name and is raised or lowered to the mode's distance from the tonic.
func Build(tonic note.Note, mode Mode) (Key, error) {
	pattern, ok := patterns[mode]
	if !ok {
		return Key{}, &InvalidModeError{Token: mode.String()}
	}

	tonic = note.Canonical(tonic)
	k := Key{mode: mode}
	for i, semitones := range pattern {
		stepped := note.DiatonicStep(tonic, i)
		k.degrees[i] = note.Adjust(stepped, tonic.ID()+semitones)
	}
	return k, nil
}

func MustBuild(tonic note.Note, mode Mode) Key {
	k, err := Build(tonic, mode)
	if err != nil {
		panic(err)
	}
	return k
}

func (k Key) Mode() Mode       { return k.mode }
func (k Key) Tonic() note.Note { return k.degrees[I] }
func (k Key) Name() string     { return k.Tonic().Name() + " " + k.mode.String() }
func (k Key) String() string   { return k.Name() }
func (k Key) I() note.Note     { return k.degrees[I] }
func (k Key) II() note.Note    { return k.degrees[II] }
func (k Key) III() note.Note   { return k.degrees[III] }
func (k Key) IV() note.Note    { return k.degrees[IV] }
func (k Key) V() note.Note     { return k.degrees[V] }
func (k Key) VI() note.Note    { return k.degrees[VI] }
func (k Key) VII() note.Note   { return k.degrees[VII] }

// Degree returns the note at d. It panics if d is out of range.
func (k Key) Degree(d Degree) note.Note {
	return k.degrees[d]
}

// AsSequence returns the degrees in order from the tonic.
func (k Key) AsSequence() []note.Note {
	res := make([]note.Note, len(k.degrees))
	copy(res, k.degrees[:])
	return res
}
