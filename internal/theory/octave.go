package theory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MIDI range and the octave span it covers (C-1 = 0, G9 = 127)
const (
	MinOctave = -1
	MaxOctave = 9
	MaxMIDI   = 127
)

// ErrOctaveOutOfRange is returned when a placement would leave the MIDI range
var ErrOctaveOutOfRange = errors.New("octave out of range")

// ErrInvalidNoteName is returned for note names without a usable octave
var ErrInvalidNoteName = errors.New("invalid note name")

// Pitch is a pitch class placed in a specific octave
type Pitch struct {
	Name   string
	Class  PitchClass
	Octave int
	MIDI   int
}

// Scientific returns the pitch in scientific notation, e.g. "C#4"
func (p Pitch) Scientific() string {
	return p.Name + strconv.Itoa(p.Octave)
}

// MIDINumber uses the convention (octave+1)*12 + class, so C4 = 60
func MIDINumber(class PitchClass, octave int) int {
	return (octave+1)*NumPitchClasses + int(class.normalize())
}

// AssignOctaves places the root of the scale in startOctave and every later
// note at the lowest pitch strictly above the one before it, so the result
// always ascends
func AssignOctaves(s Scale, startOctave int) ([]Pitch, error) {
	if startOctave < MinOctave || startOctave > MaxOctave {
		return nil, fmt.Errorf("%w: start octave %d not in %d..%d", ErrOctaveOutOfRange, startOctave, MinOctave, MaxOctave)
	}

	pitches := make([]Pitch, 0, len(s.Classes))
	octave := startOctave
	prev := -1
	for i, class := range s.Classes {
		midi := MIDINumber(class, octave)
		if midi <= prev {
			octave++
			midi = MIDINumber(class, octave)
		}
		if midi > MaxMIDI {
			return nil, fmt.Errorf("%w: %s%d exceeds MIDI %d", ErrOctaveOutOfRange, s.Notes[i], octave, MaxMIDI)
		}
		pitches = append(pitches, Pitch{
			Name:   s.Notes[i],
			Class:  class,
			Octave: octave,
			MIDI:   midi,
		})
		prev = midi
	}
	return pitches, nil
}

// ParseScientific parses a note name with octave such as "E1", "C4", "F#3"
// or "Bb-1"
func ParseScientific(name string) (Pitch, error) {
	name = strings.TrimSpace(name)

	// pitch part is the letter plus an optional accidental
	split := 1
	if len(name) > 1 && (name[1] == '#' || name[1] == 'b') {
		split = 2
	}
	if len(name) <= split {
		return Pitch{}, fmt.Errorf("%w: missing octave in %q", ErrInvalidNoteName, name)
	}

	class, spelling, err := ParsePitch(name[:split])
	if err != nil {
		return Pitch{}, err
	}

	octave, err := strconv.Atoi(name[split:])
	if err != nil {
		return Pitch{}, fmt.Errorf("%w: bad octave in %q", ErrInvalidNoteName, name)
	}
	if octave < MinOctave || octave > MaxOctave {
		return Pitch{}, fmt.Errorf("%w: %q", ErrOctaveOutOfRange, name)
	}

	midi := MIDINumber(class, octave)
	if midi > MaxMIDI {
		return Pitch{}, fmt.Errorf("%w: %q exceeds MIDI %d", ErrOctaveOutOfRange, name, MaxMIDI)
	}

	return Pitch{
		Name:   class.Name(spelling),
		Class:  class,
		Octave: octave,
		MIDI:   midi,
	}, nil
}
