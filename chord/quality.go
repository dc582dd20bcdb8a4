package chord

import (
	"fmt"
	"strings"

	"github.com/jsphweid/harmonia/interval"
)

// Quality is a fixed pattern of interval slots plus the suffix used to name it.
type Quality int

const (
	Major Quality = iota
	Minor
	Augmented
	Diminished
	Seventh
	MajorSeventh
	MinorSeventh
	MinorMajorSeventh
	HalfDiminished
	DiminishedSeventh
	Sixth
	MinorSixth
	AugmentedSeventh
)

// Qualities lists every quality in declaration order.
var Qualities = []Quality{
	Major, Minor, Augmented, Diminished,
	Seventh, MajorSeventh, MinorSeventh, MinorMajorSeventh,
	HalfDiminished, DiminishedSeventh, Sixth, MinorSixth, AugmentedSeventh,
}

type pattern struct {
	suffix    string
	intervals []interval.Interval
}

var patterns = map[Quality]pattern{
	Major:             {"", []interval.Interval{interval.P1, interval.Maj3, interval.P5}},
	Minor:             {"m", []interval.Interval{interval.P1, interval.Min3, interval.P5}},
	Augmented:         {"aug", []interval.Interval{interval.P1, interval.Maj3, interval.Aug5}},
	Diminished:        {"dim", []interval.Interval{interval.P1, interval.Min3, interval.Dim5}},
	Seventh:           {"7", []interval.Interval{interval.P1, interval.Maj3, interval.P5, interval.Min7}},
	MajorSeventh:      {"maj7", []interval.Interval{interval.P1, interval.Maj3, interval.P5, interval.Maj7}},
	MinorSeventh:      {"m7", []interval.Interval{interval.P1, interval.Min3, interval.P5, interval.Min7}},
	MinorMajorSeventh: {"mM7", []interval.Interval{interval.P1, interval.Min3, interval.P5, interval.Maj7}},
	HalfDiminished:    {"m7♭5", []interval.Interval{interval.P1, interval.Min3, interval.Dim5, interval.Min7}},
	DiminishedSeventh: {"dim7", []interval.Interval{interval.P1, interval.Min3, interval.Dim5, interval.Maj6}},
	Sixth:             {"6", []interval.Interval{interval.P1, interval.Maj3, interval.P5, interval.Maj6}},
	MinorSixth:        {"m6", []interval.Interval{interval.P1, interval.Min3, interval.P5, interval.Maj6}},
	AugmentedSeventh:  {"aug7", []interval.Interval{interval.P1, interval.Maj3, interval.Aug5, interval.Min7}},
}

type InvalidQualityError struct {
	Token string
}

func (e *InvalidQualityError) Error() string {
	return fmt.Sprintf("invalid chord quality %q", e.Token)
}

func (q Quality) Valid() bool {
	_, ok := patterns[q]
	return ok
}

// Suffix is the text appended to the root when naming a chord of quality q.
func (q Quality) Suffix() string {
	return patterns[q].suffix
}

func (q Quality) String() string {
	if !q.Valid() {
		return fmt.Sprintf("Quality(%d)", int(q))
	}
	if q == Major {
		return "maj"
	}
	return q.Suffix()
}

var qualityAliases = map[string]Quality{
	"maj":     Major,
	"M":       Major,
	"min":     Minor,
	"-":       Minor,
	"+":       Augmented,
	"°":       Diminished,
	"dom7":    Seventh,
	"M7":      MajorSeventh,
	"Δ7":      MajorSeventh,
	"min7":    MinorSeventh,
	"-7":      MinorSeventh,
	"m(maj7)": MinorMajorSeventh,
	"m7b5":    HalfDiminished,
	"ø":       HalfDiminished,
	"ø7":      HalfDiminished,
	"°7":      DiminishedSeventh,
	"+7":      AugmentedSeventh,
}

// ParseQuality reads a chord suffix such as "m7" or "maj7". The empty string
// is a major triad. Matching is case sensitive since "M7" and "m7" differ.
func ParseQuality(s string) (Quality, error) {
	s = strings.TrimSpace(s)
	for _, q := range Qualities {
		if s == patterns[q].suffix {
			return q, nil
		}
	}
	if q, ok := qualityAliases[s]; ok {
		return q, nil
	}
	return 0, &InvalidQualityError{Token: s}
}
