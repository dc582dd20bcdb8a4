package cmd

import (
	"os"

	"github.com/jsphweid/harmonia/chord"
	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/key"
	"github.com/jsphweid/harmonia/note"
	"github.com/jsphweid/harmonia/progression"
	"github.com/pkg/errors"
)

// buildKey reads a tonic and an optional mode, major by default.
func buildKey(args []string) (key.Key, error) {
	tonic, err := note.Parse(args[0])
	if err != nil {
		return key.Key{}, err
	}
	mode := key.Major
	if len(args) > 1 {
		if mode, err = key.ParseMode(args[1]); err != nil {
			return key.Key{}, err
		}
	}
	return key.Build(tonic, mode)
}

// omitInterval maps the degree in "omitN" to the slot it clears.
func omitInterval(degree int) (interval.Interval, error) {
	switch degree {
	case 1:
		return interval.P1, nil
	case 3:
		return interval.Maj3, nil
	case 5:
		return interval.P5, nil
	}
	return 0, errors.Errorf("can only omit the 1, 3 or 5, not %d", degree)
}

// modify applies a sus (0, 2 or 4) and then each omitted degree in order.
func modify(c chord.Chord, sus int, omit []int) (chord.Chord, error) {
	switch sus {
	case 0:
	case 2:
		c = c.WithSus2()
	case 4:
		c = c.WithSus4()
	default:
		return c, errors.Errorf("sus must be 2 or 4, not %d", sus)
	}
	for _, degree := range omit {
		i, err := omitInterval(degree)
		if err != nil {
			return c, err
		}
		c = c.Omitting(i)
	}
	return c, nil
}

// pickProgressions resolves the --name, --steps and --file flags shared by
// progression and export. With a file and no name every template in it is
// returned.
func pickProgressions(name, steps, file string) ([]progression.Progression, error) {
	switch {
	case steps != "":
		if name == "" {
			name = "custom"
		}
		p, err := progression.Parse(name, steps)
		if err != nil {
			return nil, err
		}
		return []progression.Progression{p}, nil
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return nil, errors.Wrapf(err, "could not open %v", file)
		}
		defer f.Close()
		ps, err := progression.LoadTemplates(f)
		if err != nil {
			return nil, err
		}
		if name == "" {
			return ps, nil
		}
		for _, p := range ps {
			if p.Name == name {
				return []progression.Progression{p}, nil
			}
		}
		return nil, &progression.UnknownProgressionError{Name: name}
	}
	if name == "" {
		name = progression.OneOfUs.Name
	}
	p, err := progression.Named(name)
	if err != nil {
		return nil, err
	}
	return []progression.Progression{p}, nil
}
