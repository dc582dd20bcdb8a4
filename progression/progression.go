// Package progression evaluates chord progression templates against a key.
package progression

import (
	"fmt"
	"strings"

	"github.com/jsphweid/harmonia/chord"
	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/key"
	"github.com/jsphweid/harmonia/note"
	"github.com/jsphweid/harmonia/util"
)

// Step is one chord of a progression: a scale degree and the quality built on it.
type Step struct {
	Degree  key.Degree
	Quality chord.Quality
}

// Progression is an ordered template of steps. It holds no key; Evaluate
// binds it to one.
type Progression struct {
	Name  string
	Steps []Step
}

// Evaluate builds each step's chord on the matching degree of k.
func (p Progression) Evaluate(k key.Key) []chord.Chord {
	res := make([]chord.Chord, 0, len(p.Steps))
	for _, s := range p.Steps {
		res = append(res, chord.Build(k.Degree(s.Degree), s.Quality))
	}
	return res
}

// String renders the steps in roman numeral notation, e.g. "I-V-vi-IV".
func (p Progression) String() string {
	tokens := make([]string, 0, len(p.Steps))
	for _, s := range p.Steps {
		tokens = append(tokens, s.String())
	}
	return strings.Join(tokens, "-")
}

// String writes qualities with a minor third on a lowercase numeral, and a
// plain minor triad as the bare lowercase numeral.
func (s Step) String() string {
	numeral := s.Degree.String()
	if !chord.Build(note.C, s.Quality).Has(interval.Min3) {
		return numeral + s.Quality.Suffix()
	}
	numeral = strings.ToLower(numeral)
	if s.Quality == chord.Minor {
		return numeral
	}
	return numeral + s.Quality.Suffix()
}

var (
	OneOfUs = Progression{
		Name: "one-of-us",
		Steps: []Step{
			{key.I, chord.Major},
			{key.V, chord.Major},
			{key.VI, chord.Minor},
			{key.IV, chord.Major},
		},
	}
	Canon = Progression{
		Name: "canon",
		Steps: []Step{
			{key.I, chord.Major},
			{key.V, chord.Major},
			{key.VI, chord.Minor},
			{key.III, chord.Minor},
			{key.IV, chord.Major},
			{key.I, chord.Major},
			{key.IV, chord.Major},
			{key.V, chord.Major},
		},
	}
	RoyalRoad = Progression{
		Name: "royal-road",
		Steps: []Step{
			{key.IV, chord.MajorSeventh},
			{key.V, chord.Seventh},
			{key.III, chord.MinorSeventh},
			{key.VI, chord.Minor},
		},
	}
)

var named = map[string]Progression{
	OneOfUs.Name:   OneOfUs,
	Canon.Name:     Canon,
	RoyalRoad.Name: RoyalRoad,
}

type UnknownProgressionError struct {
	Name string
}

func (e *UnknownProgressionError) Error() string {
	return fmt.Sprintf("unknown progression %q", e.Name)
}

// Named looks up a built-in template.
func Named(name string) (Progression, error) {
	p, ok := named[name]
	if !ok {
		return Progression{}, &UnknownProgressionError{Name: name}
	}
	return p, nil
}

// Names lists the built-in templates alphabetically.
func Names() []string {
	return util.GetKeys(named)
}
