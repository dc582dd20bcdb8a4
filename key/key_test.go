package key

import (
	"testing"

	"github.com/jsphweid/harmonia/format"
	"github.com/jsphweid/harmonia/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scaleCase struct {
	tonic string
	mode  Mode
	want  string
}

// the fifteen major and fifteen minor key signatures
var signatures = []scaleCase{
	{"C", Major, "C   D   E   F   G   A   B  "},
	{"G", Major, "G   A   B   C   D   E   F♯ "},
	{"D", Major, "D   E   F♯  G   A   B   C♯ "},
	{"A", Major, "A   B   C♯  D   E   F♯  G♯ "},
	{"E", Major, "E   F♯  G♯  A   B   C♯  D♯ "},
	{"B", Major, "B   C♯  D♯  E   F♯  G♯  A♯ "},
	{"F#", Major, "F♯  G♯  A♯  B   C♯  D♯  E♯ "},
	{"C#", Major, "C♯  D♯  E♯  F♯  G♯  A♯  B♯ "},
	{"F", Major, "F   G   A   B♭  C   D   E  "},
	{"Bb", Major, "B♭  C   D   E♭  F   G   A  "},
	{"Eb", Major, "E♭  F   G   A♭  B♭  C   D  "},
	{"Ab", Major, "A♭  B♭  C   D♭  E♭  F   G  "},
	{"Db", Major, "D♭  E♭  F   G♭  A♭  B♭  C  "},
	{"Gb", Major, "G♭  A♭  B♭  C♭  D♭  E♭  F  "},
	{"Cb", Major, "C♭  D♭  E♭  F♭  G♭  A♭  B♭ "},

	{"A", NaturalMinor, "A   B   C   D   E   F   G  "},
	{"E", NaturalMinor, "E   F♯  G   A   B   C   D  "},
	{"B", NaturalMinor, "B   C♯  D   E   F♯  G   A  "},
	{"F#", NaturalMinor, "F♯  G♯  A   B   C♯  D   E  "},
	{"C#", NaturalMinor, "C♯  D♯  E   F♯  G♯  A   B  "},
	{"G#", NaturalMinor, "G♯  A♯  B   C♯  D♯  E   F♯ "},
	{"D#", NaturalMinor, "D♯  E♯  F♯  G♯  A♯  B   C♯ "},
	{"A#", NaturalMinor, "A♯  B♯  C♯  D♯  E♯  F♯  G♯ "},
	{"D", NaturalMinor, "D   E   F   G   A   B♭  C  "},
	{"G", NaturalMinor, "G   A   B♭  C   D   E♭  F  "},
	{"C", NaturalMinor, "C   D   E♭  F   G   A♭  B♭ "},
	{"F", NaturalMinor, "F   G   A♭  B♭  C   D♭  E♭ "},
	{"Bb", NaturalMinor, "B♭  C   D♭  E♭  F   G♭  A♭ "},
	{"Eb", NaturalMinor, "E♭  F   G♭  A♭  B♭  C♭  D♭ "},
	{"Ab", NaturalMinor, "A♭  B♭  C♭  D♭  E♭  F♭  G♭ "},
}

func TestBuild(t *testing.T) {
	for _, tc := range signatures {
		t.Run(tc.tonic+" "+tc.mode.String(), func(t *testing.T) {
			k, err := Build(note.MustParse(tc.tonic), tc.mode)
			require.NoError(t, err)
			assert.Equal(t, tc.want, format.Notes(k.AsSequence()))
		})
	}
}

func TestEveryLetterOnce(t *testing.T) {
	for _, tc := range signatures {
		k := MustBuild(note.MustParse(tc.tonic), tc.mode)
		seen := map[note.Letter]bool{}
		for i, n := range k.AsSequence() {
			seen[n.Base()] = true
			assert.Equal(t, k.Tonic().Base().Step(i), n.Base(), k.Name())
		}
		assert.Len(t, seen, 7, k.Name())
	}
}

func TestAccidentalsNeverMixed(t *testing.T) {
	for _, tc := range signatures {
		k := MustBuild(note.MustParse(tc.tonic), tc.mode)
		var sharps, flats int
		for _, n := range k.AsSequence() {
			switch {
			case n.Accidentals() > 0:
				sharps++
			case n.Accidentals() < 0:
				flats++
			}
		}
		assert.False(t, sharps > 0 && flats > 0, k.Name())
	}
}

func TestDegreesMatchPattern(t *testing.T) {
	for _, tc := range signatures {
		k := MustBuild(note.MustParse(tc.tonic), tc.mode)
		for i, n := range k.AsSequence() {
			want := (k.Tonic().ID() + patterns[tc.mode][i]) % 12
			assert.Equal(t, want, n.ID(), k.Name())
		}
	}
}

func TestAccessors(t *testing.T) {
	k := MustBuild(note.Flat{Of: note.D}, Major)

	assert := assert.New(t)
	assert.Equal("D♭ major", k.Name())
	assert.Equal(note.Note(note.Flat{Of: note.D}), k.I())
	assert.Equal(note.Note(note.Flat{Of: note.E}), k.II())
	assert.Equal(note.Note(note.F), k.III())
	assert.Equal(note.Note(note.Flat{Of: note.G}), k.IV())
	assert.Equal(note.Note(note.Flat{Of: note.A}), k.V())
	assert.Equal(note.Note(note.Flat{Of: note.B}), k.VI())
	assert.Equal(note.Note(note.C), k.VII())
	assert.Equal(k.VI(), k.Degree(VI))
}

func TestAsSequenceIsACopy(t *testing.T) {
	k := MustBuild(note.C, Major)
	seq := k.AsSequence()
	seq[0] = note.B
	assert.Equal(t, note.Note(note.C), k.I())
}

func TestBuildRejectsUnknownMode(t *testing.T) {
	_, err := Build(note.C, Mode(7))
	var invalid *InvalidModeError
	assert.ErrorAs(t, err, &invalid)
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{
		"major": Major, "Major": Major, "ionian": Major,
		"minor": NaturalMinor, "natural-minor": NaturalMinor, " aeolian ": NaturalMinor,
	} {
		got, err := ParseMode(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseMode("dorian")
	var invalid *InvalidModeError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, "dorian", invalid.Token)
}

func TestParseDegree(t *testing.T) {
	for in, want := range map[string]Degree{"I": I, "ii": II, "iii": III, "IV": IV, "v": V, "vi": VI, "VII": VII} {
		got, err := ParseDegree(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDegree("VIII")
	var invalid *InvalidDegreeError
	assert.ErrorAs(t, err, &invalid)
}
