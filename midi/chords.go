package midi

import (
	"sort"

	"github.com/jsphweid/harmonia/model"
	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2/smf"
)

func sortedKeys(pressed map[uint8]bool) model.Keys {
	keys := make(model.Keys, 0, len(pressed))
	for k := range pressed {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func reduceEvents(s *smf.SMF) []model.ReducedEvent {
	var reducedEvents []model.ReducedEvent
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			if _, key, on, ok := noteEvent(event.Message); ok {
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    absTime,
					IsNoteOff: !on,
					Key:       key,
				})
			}
		}
	}

	// smaller offsets first, note offs before note ons at the same offset
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].Offset != reducedEvents[j].Offset {
			return reducedEvents[i].Offset < reducedEvents[j].Offset
		}
		return reducedEvents[i].IsNoteOff && !reducedEvents[j].IsNoteOff
	})
	return reducedEvents
}

// GetChords returns the keys sounding after each moment of s at which the
// held set changes, in time order. Moments with nothing held are skipped.
func GetChords(s *smf.SMF) []model.SoundingChord {
	events := reduceEvents(s)

	var chords []model.SoundingChord
	pressed := make(map[uint8]bool)
	for i, evt := range events {
		if evt.IsNoteOff {
			if !pressed[evt.Key] {
				logrus.Warnf("note off for unpressed key %d at %dµs", evt.Key, evt.Offset)
			}
			delete(pressed, evt.Key)
		} else {
			if pressed[evt.Key] {
				logrus.Warnf("key %d double pressed at %dµs", evt.Key, evt.Offset)
			}
			pressed[evt.Key] = true
		}

		if i+1 < len(events) && events[i+1].Offset == evt.Offset {
			continue
		}
		if len(pressed) > 0 {
			chords = append(chords, model.SoundingChord{Offset: evt.Offset, Keys: sortedKeys(pressed)})
		}
	}

	for k := range pressed {
		logrus.Warnf("missing note off for key %d", k)
	}
	return chords
}
