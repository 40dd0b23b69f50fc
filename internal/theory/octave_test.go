package theory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func midiOf(pitches []Pitch) []int {
	out := make([]int, len(pitches))
	for i, p := range pitches {
		out[i] = p.MIDI
	}
	return out
}

func TestAssignOctaves(t *testing.T) {
	tests := []struct {
		name         string
		root         string
		selector     string
		octave       int
		expectedMIDI []int
		expectedLast string
	}{
		{
			name:         "C major from middle C",
			root:         "C",
			selector:     "major",
			octave:       4,
			expectedMIDI: []int{60, 62, 64, 65, 67, 69, 71},
			expectedLast: "B4",
		},
		{
			name:         "A minor crosses into octave 5",
			root:         "A",
			selector:     "naturalMinor",
			octave:       4,
			expectedMIDI: []int{69, 71, 72, 74, 76, 77, 79},
			expectedLast: "G5",
		},
		{
			name:         "Bb major in octave 3",
			root:         "Bb",
			selector:     "major",
			octave:       3,
			expectedMIDI: []int{58, 60, 62, 63, 65, 67, 69},
			expectedLast: "A4",
		},
		{
			name:         "lowest octave",
			root:         "C",
			selector:     "major",
			octave:       -1,
			expectedMIDI: []int{0, 2, 4, 5, 7, 9, 11},
			expectedLast: "B-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := BuildScale(tt.root, tt.selector)
			require.NoError(t, err)

			pitches, err := AssignOctaves(s, tt.octave)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedMIDI, midiOf(pitches))
			assert.Equal(t, tt.expectedLast, pitches[len(pitches)-1].Scientific())
			assert.Equal(t, s.Notes[0], pitches[0].Name)
			assert.Equal(t, tt.octave, pitches[0].Octave)
		})
	}
}

func TestAssignOctaves_Ascending(t *testing.T) {
	for _, def := range Definitions() {
		for class := PitchClass(0); class < NumPitchClasses; class++ {
			s, err := BuildFromDefinition(class.String(), def)
			require.NoError(t, err)

			pitches, err := AssignOctaves(s, 4)
			require.NoError(t, err)
			for i := 1; i < len(pitches); i++ {
				assert.Greater(t, pitches[i].MIDI, pitches[i-1].MIDI)
			}
			span := pitches[len(pitches)-1].MIDI - pitches[0].MIDI
			assert.Less(t, span, NumPitchClasses, "%s %s spans more than an octave", s.Root, def.Type)
		}
	}
}

func TestAssignOctaves_OutOfRange(t *testing.T) {
	s, err := BuildScale("G", "chromatic")
	require.NoError(t, err)

	_, err = AssignOctaves(s, 9)
	assert.ErrorIs(t, err, ErrOctaveOutOfRange, "G#9 is above MIDI 127")

	_, err = AssignOctaves(s, 10)
	assert.ErrorIs(t, err, ErrOctaveOutOfRange)

	_, err = AssignOctaves(s, -2)
	assert.ErrorIs(t, err, ErrOctaveOutOfRange)
}

func TestParseScientific(t *testing.T) {
	tests := []struct {
		input        string
		expectedMIDI int
		expectedName string
	}{
		{"C4", 60, "C4"},
		{"c4", 60, "C4"},
		{"E1", 28, "E1"},
		{"F#3", 54, "F#3"},
		{"Bb2", 46, "Bb2"},
		{"bb2", 46, "Bb2"},
		{"b3", 59, "B3"},
		{"C-1", 0, "C-1"},
		{"G9", 127, "G9"},
		{" A4 ", 69, "A4"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParseScientific(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedMIDI, p.MIDI)
			assert.Equal(t, tt.expectedName, p.Scientific())
		})
	}
}

func TestParseScientific_Errors(t *testing.T) {
	_, err := ParseScientific("H4")
	var pitchErr *UnknownPitchError
	assert.True(t, errors.As(err, &pitchErr))

	_, err = ParseScientific("C")
	assert.ErrorIs(t, err, ErrInvalidNoteName)

	_, err = ParseScientific("Bb")
	assert.ErrorIs(t, err, ErrInvalidNoteName)

	_, err = ParseScientific("Cx")
	assert.ErrorIs(t, err, ErrInvalidNoteName)

	_, err = ParseScientific("G#9")
	assert.ErrorIs(t, err, ErrOctaveOutOfRange)

	_, err = ParseScientific("C12")
	assert.ErrorIs(t, err, ErrOctaveOutOfRange)
}
