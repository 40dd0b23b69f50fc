package theory

import (
	"fmt"
	"strings"
)

// PitchClass is a semitone position within an octave (C = 0 ... B = 11)
type PitchClass int

// NumPitchClasses is the number of semitones in an octave
const NumPitchClasses = 12

// Spelling selects sharp or flat names for the black keys
type Spelling int

const (
	SpellSharps Spelling = iota
	SpellFlats
)

var sharpNames = [NumPitchClasses]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [NumPitchClasses]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// Accepted spellings, keyed by lowercase form
var pitchSpellings = map[string]struct {
	class    PitchClass
	spelling Spelling
}{
	"c": {0, SpellSharps}, "c#": {1, SpellSharps}, "db": {1, SpellFlats},
	"d": {2, SpellSharps}, "d#": {3, SpellSharps}, "eb": {3, SpellFlats},
	"e": {4, SpellSharps},
	"f": {5, SpellSharps}, "f#": {6, SpellSharps}, "gb": {6, SpellFlats},
	"g": {7, SpellSharps}, "g#": {8, SpellSharps}, "ab": {8, SpellFlats},
	"a": {9, SpellSharps}, "a#": {10, SpellSharps}, "bb": {10, SpellFlats},
	"b": {11, SpellSharps},
}

// UnknownPitchError is returned when a pitch name matches none of the
// accepted spellings
type UnknownPitchError struct {
	Input string
}

func (e *UnknownPitchError) Error() string {
	return fmt.Sprintf("unknown pitch: %q", e.Input)
}

// ParsePitch resolves a pitch name such as "C", "f#" or "Bb" to its pitch
// class. Matching is case-insensitive and ignores surrounding whitespace.
// The returned spelling is flats when the name was written with a flat.
func ParsePitch(name string) (PitchClass, Spelling, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	p, ok := pitchSpellings[key]
	if !ok {
		return 0, SpellSharps, &UnknownPitchError{Input: name}
	}
	return p.class, p.spelling, nil
}

// Name returns the display name of the pitch class in the given spelling
func (p PitchClass) Name(s Spelling) string {
	idx := p.normalize()
	if s == SpellFlats {
		return flatNames[idx]
	}
	return sharpNames[idx]
}

// String uses sharp spelling
func (p PitchClass) String() string {
	return p.Name(SpellSharps)
}

// Transpose moves the pitch class up (or down, for negative values) by the
// given number of semitones, wrapping around the octave
func (p PitchClass) Transpose(semitones int) PitchClass {
	return PitchClass(int(p) + semitones).normalize()
}

// Distance is the upward interval in semitones from one pitch class to
// another, in the range 0-11
func Distance(from, to PitchClass) int {
	return int(to.Transpose(-int(from)))
}

func (p PitchClass) normalize() PitchClass {
	v := int(p) % NumPitchClasses
	if v < 0 {
		v += NumPitchClasses
	}
	return PitchClass(v)
}
