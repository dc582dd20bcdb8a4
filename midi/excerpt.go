package midi

import (
	"bytes"

	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// noteEvent reports the key of a note on or off; a note on with velocity 0
// counts as an off.
func noteEvent(msg smf.Message) (channel, key uint8, on, ok bool) {
	var velocity uint8
	switch {
	case msg.GetNoteOn(&channel, &key, &velocity):
		return channel, key, velocity > 0, true
	case msg.GetNoteOff(&channel, &key, &velocity):
		return channel, key, false, true
	}
	return 0, 0, false, false
}

func isEndOfTrack(msg smf.Message) bool {
	return len(msg) >= 2 && msg[0] == 0xFF && msg[1] == 0x2F
}

// Excerpt copies s from fromTicks on, keeping at most maxNotes note on/off
// events per track (0 keeps all). Offs for keys struck before fromTicks are
// dropped and keys still held at the cut are released there. Other events
// before fromTicks are pulled to the start so tempo and meter still apply.
func Excerpt(s *smf.SMF, fromTicks uint64, maxNotes int) (*smf.SMF, error) {
	res := smf.New()
	res.TimeFormat = s.TimeFormat

	for _, track := range s.Tracks {
		var newTrack smf.Track
		var absTicks uint64
		// ticks of the last event kept, in the excerpt's time
		var lastTicks uint64
		var numNoteOnOff int
		// held key to its channel
		held := make(map[uint8]uint8)
	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			if isEndOfTrack(evt.Message) {
				break
			}

			var at uint64
			channel, key, on, isNote := noteEvent(evt.Message)
			switch {
			case isNote:
				if _, ok := held[key]; absTicks < fromTicks || (!on && !ok) {
					continue
				}
				if maxNotes > 0 && numNoteOnOff >= maxNotes {
					break TrackEventLoop
				}
				numNoteOnOff += 1
				if on {
					held[key] = channel
				} else {
					delete(held, key)
				}
				at = absTicks - fromTicks
			default:
				if absTicks > fromTicks {
					at = absTicks - fromTicks
				}
			}
			evt.Delta = uint32(at - lastTicks)
			lastTicks = at
			newTrack = append(newTrack, evt)
		}

		for _, key := range sortedKeys(keysOf(held)) {
			newTrack.Add(0, gomidi.NoteOff(held[key], key))
		}
		newTrack.Close(0)
		if err := res.Add(newTrack); err != nil {
			return nil, errors.Wrap(err, "could not add excerpt track")
		}
	}

	// read back so timing queries on the result see its tempo map
	var buf bytes.Buffer
	if _, err := res.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "could not write excerpt")
	}
	return Read(&buf)
}

func keysOf(held map[uint8]uint8) map[uint8]bool {
	res := make(map[uint8]bool, len(held))
	for k := range held {
		res[k] = true
	}
	return res
}

// Ticks converts quarter note beats to ticks in s, or 0 if s does not count
// in metric ticks.
func Ticks(s *smf.SMF, beats int) uint64 {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return 0
	}
	return uint64(ticks.Ticks4th()) * uint64(beats)
}
