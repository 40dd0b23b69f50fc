package handlers

// Error kinds returned in ErrorResponse.Error
const (
	errorKindInvalidRequest   = "invalid_request"
	errorKindUnknownPitch     = "unknown_pitch"
	errorKindUnknownScaleType = "unknown_scale_type"
	errorKindInvalidPattern   = "invalid_pattern"
	errorKindInvalidDirection = "invalid_direction"
	errorKindOctaveOutOfRange = "octave_out_of_range"
	errorKindMalformedDisplay = "malformed_display"
	errorKindInternal         = "internal_error"
)
