package models

// NoteEvent represents a single musical note with timing and pitch information
type NoteEvent struct {
	MidiNoteNumber int     `json:"midiNoteNumber"`
	Velocity       int     `json:"velocity"`
	StartBeats     float64 `json:"startBeats"`
	DurationBeats  float64 `json:"durationBeats"`
}

// ScaleRequest asks for a built-in scale or mode
type ScaleRequest struct {
	Root      string `json:"root"`
	Type      string `json:"type"`
	Octave    *int   `json:"octave,omitempty"`    // Defaults to the configured octave
	Start     string `json:"start,omitempty"`     // Root with octave, e.g. "Bb3"; overrides Octave
	Direction string `json:"direction,omitempty"` // "up", "down", "updown"
}

// CustomScaleRequest asks for a scale from an arbitrary interval pattern
type CustomScaleRequest struct {
	Root      string `json:"root"`
	Name      string `json:"name"`
	Steps     []int  `json:"steps"`
	Octave    *int   `json:"octave,omitempty"`
	Start     string `json:"start,omitempty"`
	Direction string `json:"direction,omitempty"`
}

// PitchInfo is a scale note placed in an octave
type PitchInfo struct {
	Name       string `json:"name"`
	Octave     int    `json:"octave"`
	Scientific string `json:"scientific"` // e.g. "C#4"
	MIDI       int    `json:"midi"`
	Interval   int    `json:"interval"` // Semitones above the root pitch class
}

// ScaleResponse carries both the structured notes and the display string
type ScaleResponse struct {
	Root    string      `json:"root"`
	Type    string      `json:"type"`
	Name    string      `json:"name"`
	Family  string      `json:"family"`
	Steps   []int       `json:"steps"`
	Notes   []string    `json:"notes"`
	Display string      `json:"display"` // "<Root> <Name> is: <n1>, ..."
	Pitches []PitchInfo `json:"pitches"`
	Events  []NoteEvent `json:"events"`
}

// ScaleTypeInfo describes one entry of the scale listing
type ScaleTypeInfo struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Family      string `json:"family"`
	Steps       []int  `json:"steps"`
	Description string `json:"description,omitempty"`
	Character   string `json:"character,omitempty"`
}

// ScaleListResponse is returned by the scale listing endpoint
type ScaleListResponse struct {
	Scales []ScaleTypeInfo `json:"scales"`
	Count  int             `json:"count"`
}

// ParseDisplayRequest carries a display string to split into notes
type ParseDisplayRequest struct {
	Display string `json:"display"`
}

// ParseDisplayResponse is the recovered header and note list
type ParseDisplayResponse struct {
	Header string   `json:"header"`
	Notes  []string `json:"notes"`
}

// ErrorResponse is the body of every 4xx/5xx response
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}
