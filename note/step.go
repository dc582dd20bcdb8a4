package note

// DiatonicStep moves n by steps letter names and keeps its accidental, so a
// flat stays a flat: DiatonicStep(B♭, 1) is C♭. Negative steps move down.
func DiatonicStep(n Note, steps int) Note {
	c := Canonical(n)
	l := c.Base().Step(steps)
	switch acc := c.Accidentals(); {
	case acc > 0:
		return Sharp{l}
	case acc < 0:
		return Flat{l}
	}
	return l
}

// Adjust sharpens or flattens n along the shorter way round until it sits on
// pitch class pc. A double accidental collapses onto the neighbouring letter.
func Adjust(n Note, pc int) Note {
	n = Canonical(n)
	diff := ((pc-n.ID())%12 + 12) % 12
	if diff > 6 {
		diff -= 12
	}
	for ; diff > 0; diff-- {
		n = n.Sharpen()
	}
	for ; diff < 0; diff++ {
		n = n.Flatten()
	}
	return n
}

// Semitone returns the note a semitone above n, spelled on the next letter.
func Semitone(n Note) Note {
	return Adjust(DiatonicStep(n, 1), n.ID()+1)
}

// Tone returns the note a whole tone above n, spelled on the next letter.
func Tone(n Note) Note {
	return Adjust(DiatonicStep(n, 1), n.ID()+2)
}
