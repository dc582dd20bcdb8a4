package constants

import (
	"os"
	"strconv"
	"time"
)

func GetOutDir() string {
	path := os.Getenv("HARMONIA_OUT_DIR")
	if path != "" {
		return path
	}
	return "./out"
}

func GetAddr() string {
	addr := os.Getenv("HARMONIA_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetLogLevel() string {
	level := os.Getenv("HARMONIA_LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

// GetOctave is the octave exported chords are voiced from; 4 puts the root
// of a C chord on middle C.
func GetOctave() int {
	return getInt("HARMONIA_OCTAVE", 4)
}

func GetTempo() float64 {
	tempo, err := strconv.ParseFloat(os.Getenv("HARMONIA_TEMPO"), 64)
	if err != nil || tempo <= 0 {
		return 120
	}
	return tempo
}

func GetMidiInPort() int {
	return getInt("HARMONIA_MIDI_IN_PORT", 0)
}

func getInt(name string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return fallback
	}
	return n
}

const TicksPerQuarter = 960

const BeatsPerChord = 4

const Velocity = 100

// how long held keys must stay unchanged before listen names them
const ListenDebounce = 50 * time.Millisecond
