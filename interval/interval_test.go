package interval

import (
	"strings"
	"testing"

	"github.com/jsphweid/harmonia/note"
	"github.com/stretchr/testify/assert"
)

func names(notes []note.Note) string {
	var res []string
	for _, n := range notes {
		res = append(res, n.Name())
	}
	return strings.Join(res, " ")
}

func resolveAll(root note.Note) []note.Note {
	var res []note.Note
	for _, i := range All {
		res = append(res, i.Resolve(root))
	}
	return res
}

func TestResolve(t *testing.T) {
	cases := []struct {
		root string
		want string
	}{
		{"C", "C D♭ D E♭ E F G♭ G G♯ A B♭ B"},
		{"D", "D E♭ E F F♯ G A♭ A A♯ B C C♯"},
		{"F#", "F♯ G G♯ A A♯ B C C♯ D D♯ E E♯"},
		{"Bb", "B♭ C♭ C D♭ D E♭ F♭ F F♯ G A♭ A"},
		{"Eb", "E♭ F♭ F G♭ G A♭ A B♭ B C D♭ D"},
		{"B", "B C C♯ D D♯ E F F♯ G G♯ A A♯"},
	}

	for _, tc := range cases {
		t.Run(tc.root, func(t *testing.T) {
			got := resolveAll(note.MustParse(tc.root))
			assert.Equal(t, tc.want, names(got))
		})
	}
}

func canonicalRoots() []note.Note {
	var res []note.Note
	for _, l := range note.Letters {
		res = append(res, l, note.Sharp{Of: l}, note.Flat{Of: l})
	}
	return res
}

func TestResolveIsChromaticallyExact(t *testing.T) {
	for _, root := range canonicalRoots() {
		for _, i := range All {
			got := i.Resolve(root)
			assert.Equal(t, (root.ID()+i.Semitones())%12, got.ID(), "%v above %v", i, root)
		}
	}
}

// The letter advances by the interval's letter count unless that spelling
// would need a double accidental, in which case the result is canonical.
func TestResolveKeepsLetterProgression(t *testing.T) {
	for _, root := range canonicalRoots() {
		for _, i := range All {
			got := i.Resolve(root)
			letter := root.Base().Step(i.LetterSteps())
			diff := ((got.ID()-letter.ID())%12 + 12) % 12
			if diff > 6 {
				diff -= 12
			}
			if diff >= -1 && diff <= 1 {
				assert.Equal(t, letter, got.Base(), "%v above %v", i, root)
			} else {
				assert.Equal(t, note.Canonical(got), got, "%v above %v", i, root)
			}
		}
	}
}

func TestResolveCanonicalizesRoot(t *testing.T) {
	root := note.Sharp{Of: note.Sharp{Of: note.C}}
	assert.Equal(t, note.Note(note.D), P1.Resolve(root))
	assert.Equal(t, note.Note(note.Sharp{Of: note.F}), Maj3.Resolve(root))
}

func TestResolvePanicsOnUnknownInterval(t *testing.T) {
	assert.Panics(t, func() { Interval(12).Resolve(note.C) })
}

func TestDegree(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, P1.Degree())
	assert.Equal(3, Min3.Degree())
	assert.Equal(5, Dim5.Degree())
	assert.Equal(5, Aug5.Degree())
	assert.Equal(7, Maj7.Degree())
}

func TestParse(t *testing.T) {
	cases := map[string]Interval{
		"P1": P1, "m2": Min2, "M2": Maj2, "m3": Min3, "M3": Maj3, "P4": P4,
		"d5": Dim5, "A4": Dim5, "P5": P5, "A5": Aug5, "m6": Aug5, "M6": Maj6,
		"d7": Maj6, "m7": Min7, "M7": Maj7,
	}
	for in, want := range cases {
		got, err := Parse(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := Parse("M5")
	var invalid *InvalidIntervalError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, "M5", invalid.Token)
}
