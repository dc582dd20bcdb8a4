package progression

import (
	"io"
	"strings"
	"unicode"

	"github.com/jsphweid/harmonia/chord"
	"github.com/jsphweid/harmonia/key"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ParseStep reads a roman numeral followed by an optional quality suffix,
// such as "IVmaj7" or "iiim7". A lowercase numeral without a suffix is a
// minor triad; an uppercase one is a major triad.
func ParseStep(token string) (Step, error) {
	token = strings.TrimSpace(token)
	for n := 3; n > 0; n-- {
		if n > len(token) {
			continue
		}
		d, err := key.ParseDegree(token[:n])
		if err != nil {
			continue
		}
		suffix := token[n:]
		if suffix == "" && isLower(token[:n]) {
			return Step{Degree: d, Quality: chord.Minor}, nil
		}
		q, err := chord.ParseQuality(suffix)
		if err != nil {
			return Step{}, errors.Wrapf(err, "could not parse step %q", token)
		}
		return Step{Degree: d, Quality: q}, nil
	}
	return Step{}, errors.Wrapf(&key.InvalidDegreeError{Token: token}, "could not parse step %q", token)
}

func isLower(s string) bool {
	for _, r := range s {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

func parseSteps(tokens []string) ([]Step, error) {
	steps := make([]Step, 0, len(tokens))
	for _, t := range tokens {
		s, err := ParseStep(t)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// Parse reads steps separated by '-', ',' or whitespace.
func Parse(name, s string) (Progression, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == ',' || unicode.IsSpace(r)
	})
	if len(tokens) == 0 {
		return Progression{}, errors.Errorf("progression %q has no steps", name)
	}
	steps, err := parseSteps(tokens)
	if err != nil {
		return Progression{}, err
	}
	return Progression{Name: name, Steps: steps}, nil
}

type template struct {
	Name  string   `yaml:"name"`
	Steps []string `yaml:"steps,flow"`
}

// LoadTemplates reads a YAML list of templates:
//
//   - name: pop
//     steps: [I, V, vi, IV]
func LoadTemplates(r io.Reader) ([]Progression, error) {
	var templates []template
	if err := yaml.NewDecoder(r).Decode(&templates); err != nil {
		return nil, errors.Wrap(err, "could not decode progression templates")
	}

	res := make([]Progression, 0, len(templates))
	for i, t := range templates {
		if t.Name == "" {
			return nil, errors.Errorf("progression template %d has no name", i)
		}
		steps, err := parseSteps(t.Steps)
		if err != nil {
			return nil, errors.Wrapf(err, "progression template %q", t.Name)
		}
		res = append(res, Progression{Name: t.Name, Steps: steps})
	}
	return res, nil
}

// WriteTemplates writes ps in the format LoadTemplates reads.
func WriteTemplates(w io.Writer, ps []Progression) error {
	templates := make([]template, 0, len(ps))
	for _, p := range ps {
		t := template{Name: p.Name}
		for _, s := range p.Steps {
			t.Steps = append(t.Steps, s.String())
		}
		templates = append(templates, t)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(templates); err != nil {
		return errors.Wrap(err, "could not encode progression templates")
	}
	return enc.Close()
}
