package chord

import (
	"github.com/jsphweid/harmonia/note"
	"github.com/jsphweid/harmonia/util"
	"golang.org/x/exp/slices"
)

// spelling used for a root found only by pitch class
var preferredRoots = [12]note.Note{
	note.C,
	note.Flat{Of: note.D},
	note.D,
	note.Flat{Of: note.E},
	note.E,
	note.F,
	note.Sharp{Of: note.F},
	note.G,
	note.Flat{Of: note.A},
	note.A,
	note.Flat{Of: note.B},
	note.B,
}

// candidates are every quality plus the suspended triads and sevenths
func candidates(root note.Note) []Chord {
	res := make([]Chord, 0, len(Qualities)+3)
	for _, q := range Qualities {
		res = append(res, Build(root, q))
	}
	res = append(res,
		Build(root, Major).WithSus2(),
		Build(root, Major).WithSus4(),
		Build(root, Seventh).WithSus4(),
	)
	return res
}

func normalize(pcs []int) []int {
	seen := make(map[int]bool)
	var res []int
	for _, pc := range pcs {
		pc = util.Mod(pc, 12)
		if !seen[pc] {
			seen[pc] = true
			res = append(res, pc)
		}
	}
	slices.Sort(res)
	return res
}

// Identify names every chord whose pitch classes are exactly pcs. Values are
// reduced mod 12 and duplicates ignored, so MIDI key numbers work as is.
// Chords rooted on the lowest of pcs come first.
func Identify(pcs []int) []Chord {
	set := normalize(pcs)
	if len(set) == 0 {
		return nil
	}
	low := pcs[0]
	for _, pc := range pcs[1:] {
		low = util.Min(low, pc)
	}
	bass := util.Mod(low, 12)

	var first, rest []Chord
	for pc, root := range preferredRoots {
		for _, c := range candidates(root) {
			if !slices.Equal(c.PitchClasses(), set) {
				continue
			}
			if pc == bass {
				first = append(first, c)
			} else {
				rest = append(rest, c)
			}
		}
	}
	return append(first, rest...)
}
