// Package format renders notes, keys and chords as text.
package format

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/jsphweid/harmonia/note"
	"github.com/pkg/errors"
)

// Notes left-aligns every name in a three character column and joins the
// columns with a space, e.g. "D   E   F♯  G  ". Nil entries are skipped.
func Notes(notes []note.Note) string {
	var cols []string
	for _, n := range notes {
		if n == nil {
			continue
		}
		cols = append(cols, Pad(n.Name()))
	}
	return strings.Join(cols, " ")
}

// Pad left-aligns s in a three character column. Width counts runes so
// accidentals take a single column.
func Pad(s string) string {
	return fmt.Sprintf("%-3s", s)
}

// Names returns the plain spellings of notes.
func Names(notes []note.Note) []string {
	res := make([]string, 0, len(notes))
	for _, n := range notes {
		if n != nil {
			res = append(res, n.Name())
		}
	}
	return res
}

func funcMap() template.FuncMap {
	m := sprig.TxtFuncMap()
	m["notes"] = Notes
	m["names"] = Names
	m["pad"] = Pad
	return m
}

// Render executes tmpl against data with the sprig functions plus notes,
// names and pad.
func Render(w io.Writer, tmpl string, data any) error {
	t, err := template.New("format").Funcs(funcMap()).Parse(tmpl)
	if err != nil {
		return errors.Wrap(err, "could not parse format template")
	}
	if err := t.Execute(w, data); err != nil {
		return errors.Wrap(err, "could not execute format template")
	}
	return nil
}
