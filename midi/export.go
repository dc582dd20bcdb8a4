package midi

import (
	"io"
	"os"

	"github.com/jsphweid/harmonia/chord"
	"github.com/jsphweid/harmonia/constants"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type ExportOptions struct {
	Name     string
	Octave   int
	Tempo    float64
	Velocity uint8
	// beats each chord is held for, in 4/4
	Beats uint8
}

func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Octave:   constants.GetOctave(),
		Tempo:    constants.GetTempo(),
		Velocity: constants.Velocity,
		Beats:    constants.BeatsPerChord,
	}
}

// Build lays chords out one after another as a type 1 file: a conductor
// track with name, meter and tempo, then a track with the chords.
func Build(chords []chord.Chord, opts ExportOptions) (*smf.SMF, error) {
	ticks := smf.MetricTicks(constants.TicksPerQuarter)
	length := ticks.Ticks4th() * uint32(opts.Beats)

	var conductor smf.Track
	if opts.Name != "" {
		conductor.Add(0, smf.MetaTrackSequenceName(opts.Name))
	}
	conductor.Add(0, smf.MetaMeter(opts.Beats, 4))
	conductor.Add(0, smf.MetaTempo(opts.Tempo))
	conductor.Close(0)

	var track smf.Track
	// delta owed to the next event, grows over chords with no notes
	var rest uint32
	for _, c := range chords {
		keys, err := Voice(c, opts.Octave)
		if err != nil {
			return nil, err
		}
		if len(keys) == 0 {
			rest += length
			continue
		}
		for i, k := range keys {
			var delta uint32
			if i == 0 {
				delta = rest
			}
			track.Add(delta, gomidi.NoteOn(0, k, opts.Velocity))
		}
		for i, k := range keys {
			var delta uint32
			if i == 0 {
				delta = length
			}
			track.Add(delta, gomidi.NoteOff(0, k))
		}
		rest = 0
	}
	track.Close(rest)

	s := smf.New()
	s.TimeFormat = ticks
	if err := s.Add(conductor); err != nil {
		return nil, errors.Wrap(err, "could not add conductor track")
	}
	if err := s.Add(track); err != nil {
		return nil, errors.Wrap(err, "could not add chord track")
	}
	return s, nil
}

func WriteProgression(w io.Writer, chords []chord.Chord, opts ExportOptions) error {
	s, err := Build(chords, opts)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return errors.Wrap(err, "could not write midi file")
	}
	return nil
}

func WriteProgressionFile(path string, chords []chord.Chord, opts ExportOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %v", path)
	}
	defer f.Close()
	return WriteProgression(f, chords, opts)
}
