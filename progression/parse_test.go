package progression

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jsphweid/harmonia/chord"
	"github.com/jsphweid/harmonia/key"
	"github.com/stretchr/testify/assert"
)

func TestParseStep(t *testing.T) {
	cases := []struct {
		token string
		want  Step
	}{
		{"I", Step{key.I, chord.Major}},
		{"i", Step{key.I, chord.Minor}},
		{"vi", Step{key.VI, chord.Minor}},
		{"VI", Step{key.VI, chord.Major}},
		{"V7", Step{key.V, chord.Seventh}},
		{"IVmaj7", Step{key.IV, chord.MajorSeventh}},
		{"iiim7", Step{key.III, chord.MinorSeventh}},
		{"vim", Step{key.VI, chord.Minor}},
		{"viidim", Step{key.VII, chord.Diminished}},
		{"viim7b5", Step{key.VII, chord.HalfDiminished}},
		{"IM7", Step{key.I, chord.MajorSeventh}},
		{" ii ", Step{key.II, chord.Minor}},
	}

	for _, c := range cases {
		t.Run(c.token, func(t *testing.T) {
			got, err := ParseStep(c.token)
			assert.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestParseStepRejects(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseStep("X")
	var degreeErr *key.InvalidDegreeError
	assert.ErrorAs(err, &degreeErr)

	_, err = ParseStep("Ifoo")
	var qualityErr *chord.InvalidQualityError
	assert.ErrorAs(err, &qualityErr)

	_, err = ParseStep("")
	assert.Error(err)
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	p, err := Parse("pop", "I-V-vi-IV")
	assert.NoError(err)
	assert.Equal("pop", p.Name)
	assert.Equal(OneOfUs.Steps, p.Steps)

	p, err = Parse("royal", "IVmaj7, V7 iiim7 - vi")
	assert.NoError(err)
	assert.Equal(RoyalRoad.Steps, p.Steps)

	for _, named := range []Progression{OneOfUs, Canon, RoyalRoad} {
		p, err := Parse(named.Name, named.String())
		assert.NoError(err)
		assert.Equal(named, p)
	}

	_, err = Parse("empty", " - ")
	assert.Error(err)

	_, err = Parse("bad", "I-V-q")
	assert.Error(err)
}

func TestLoadTemplates(t *testing.T) {
	assert := assert.New(t)
	src := `
- name: pop
  steps: [I, V, vi, IV]
- name: two-five-one
  steps: [iim7, V7, IMaj7]
`
	_, err := LoadTemplates(strings.NewReader(src))
	assert.Error(err, "IMaj7 is not a known suffix")

	src = strings.Replace(src, "IMaj7", "Imaj7", 1)
	ps, err := LoadTemplates(strings.NewReader(src))
	assert.NoError(err)
	assert.Len(ps, 2)
	assert.Equal("pop", ps[0].Name)
	assert.Equal(OneOfUs.Steps, ps[0].Steps)
	assert.Equal([]Step{
		{key.II, chord.MinorSeventh},
		{key.V, chord.Seventh},
		{key.I, chord.MajorSeventh},
	}, ps[1].Steps)

	_, err = LoadTemplates(strings.NewReader("- steps: [I]\n"))
	assert.Error(err)

	_, err = LoadTemplates(strings.NewReader("name: [unclosed"))
	assert.Error(err)
}

func TestWriteTemplates(t *testing.T) {
	assert := assert.New(t)
	var buf bytes.Buffer

	assert.NoError(WriteTemplates(&buf, []Progression{OneOfUs, RoyalRoad}))
	assert.Contains(buf.String(), "name: one-of-us")

	ps, err := LoadTemplates(&buf)
	assert.NoError(err)
	assert.Equal([]Progression{OneOfUs, RoyalRoad}, ps)
}
