package model

// Keys are MIDI key numbers; 60 is middle C.
type Keys = []uint8

// SoundingChord is the set of keys held at one moment of a MIDI file.
type SoundingChord struct {
	// microseconds from the start of the file
	Offset int64
	Keys   Keys
}

type ReducedEvent struct {
	Offset    int64
	IsNoteOff bool
	Key       uint8
}
