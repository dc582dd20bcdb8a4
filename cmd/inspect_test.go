package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/jsphweid/harmonia/key"
	"github.com/jsphweid/harmonia/model"
	"github.com/jsphweid/harmonia/note"
	"github.com/jsphweid/harmonia/progression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	cases := []struct {
		keys model.Keys
		want string
	}{
		{model.Keys{60, 64, 67}, "C"},
		{model.Keys{64, 67, 72}, "C"},
		{model.Keys{57, 60, 64, 67}, "Am7 / C6"},
		{model.Keys{60, 61, 62}, "?"},
		{nil, "?"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, describe(c.keys), "%v", c.keys)
	}
}

func TestInspect(t *testing.T) {
	var buf bytes.Buffer
	inspect(&buf, []model.SoundingChord{
		{Offset: 0, Keys: model.Keys{60, 64, 67}},
		{Offset: 2500000, Keys: model.Keys{55, 59, 62, 65}},
	})
	assert.Equal(t,
		"     0.000s  [60 64 67]       C\n"+
			"     2.500s  [55 59 62 65]    G7\n",
		buf.String())
}

func TestExportAndReport(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	t.Setenv("HARMONIA_OUT_DIR", dir)

	e := evaluate(key.MustBuild(note.C, key.Major), progression.OneOfUs)
	path, err := export("", e)
	require.NoError(t, err)
	assert.Equal(dir, filepath.Dir(path))
	assert.Regexp(exportFilename, filepath.Base(path))

	r, err := analyzeExports(dir)
	require.NoError(t, err)
	assert.Equal(int64(1), r.numFiles)
	assert.Equal(int64(4), r.numChords)
	assert.Equal(map[string]int64{"Am": 1, "C": 1, "F": 1, "G": 1}, r.chordCounts)

	var buf bytes.Buffer
	r.print(&buf)
	assert.Contains(buf.String(), "chords: 4\n")
}
