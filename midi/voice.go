package midi

import (
	"github.com/jsphweid/harmonia/chord"
	"github.com/pkg/errors"
)

// Voice lays c out in close position: the root in the given octave (octave 4
// holds middle C) and every other slot stacked above it within the octave.
func Voice(c chord.Chord, octave int) ([]uint8, error) {
	base := (octave+1)*12 + c.Root().ID()
	var keys []uint8
	for _, i := range c.Intervals() {
		k := base + i.Semitones()
		if k < 0 || k > 127 {
			return nil, errors.Errorf("%v in octave %d is outside the midi key range", c.Name(), octave)
		}
		keys = append(keys, uint8(k))
	}
	return keys, nil
}

// Keys converts MIDI keys to the ints chord.Identify takes.
func Keys(keys []uint8) []int {
	res := make([]int, 0, len(keys))
	for _, k := range keys {
		res = append(res, int(k))
	}
	return res
}
