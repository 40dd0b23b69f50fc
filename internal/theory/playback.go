package theory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/scales-api/internal/models"
)

// Direction controls the order in which scale notes are played
type Direction string

const (
	DirectionUp     Direction = "up"
	DirectionDown   Direction = "down"
	DirectionUpDown Direction = "updown"
)

// Playback defaults: one quarter-note slot per note, an eighth note sounding
const (
	defaultVelocity     = 100
	defaultBeatsPerNote = 1.0
	defaultNoteDuration = 0.5
	maxVelocity         = 127
)

// ErrInvalidDirection is returned for an unknown playback direction
var ErrInvalidDirection = errors.New("invalid playback direction")

// PlaybackOptions tunes the event sequence. Zero values take the defaults.
type PlaybackOptions struct {
	Direction    Direction
	Velocity     int
	StartBeat    float64
	BeatsPerNote float64
	NoteDuration float64
}

// ParseDirection accepts "", "up", "down" and "updown" in any case; empty
// means up
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case "", DirectionUp:
		return DirectionUp, nil
	case DirectionDown:
		return DirectionDown, nil
	case DirectionUpDown:
		return DirectionUpDown, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// PlaybackEvents converts placed pitches into sequential note events that a
// player can schedule. Timing is in beats; no audio is produced here.
func PlaybackEvents(pitches []Pitch, opts PlaybackOptions) ([]models.NoteEvent, error) {
	direction, err := ParseDirection(string(opts.Direction))
	if err != nil {
		return nil, err
	}

	velocity := opts.Velocity
	if velocity <= 0 {
		velocity = defaultVelocity
	}
	if velocity > maxVelocity {
		velocity = maxVelocity
	}
	step := opts.BeatsPerNote
	if step <= 0 {
		step = defaultBeatsPerNote
	}
	duration := opts.NoteDuration
	if duration <= 0 {
		duration = defaultNoteDuration
	}

	ordered := orderPitches(pitches, direction)
	events := make([]models.NoteEvent, 0, len(ordered))
	beat := opts.StartBeat
	for _, p := range ordered {
		events = append(events, models.NoteEvent{
			MidiNoteNumber: p.MIDI,
			Velocity:       velocity,
			StartBeats:     beat,
			DurationBeats:  duration,
		})
		beat += step
	}
	return events, nil
}

func orderPitches(pitches []Pitch, direction Direction) []Pitch {
	switch direction {
	case DirectionDown:
		return reversePitches(pitches)
	case DirectionUpDown:
		if len(pitches) < 2 {
			return append([]Pitch(nil), pitches...)
		}
		// Skip the top note on the way down so it isn't repeated
		up := append([]Pitch(nil), pitches...)
		return append(up, reversePitches(pitches[:len(pitches)-1])...)
	default:
		return append([]Pitch(nil), pitches...)
	}
}

func reversePitches(s []Pitch) []Pitch {
	result := make([]Pitch, len(s))
	for i, v := range s {
		result[len(s)-1-i] = v
	}
	return result
}
