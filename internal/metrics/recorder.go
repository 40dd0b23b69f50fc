package metrics

import (
	"context"
	"time"
)

// Recorder is implemented by every metrics sink
type Recorder interface {
	RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration)
	RecordScaleGeneration(ctx context.Context, scaleType string, success bool, duration time.Duration)
}

// Multi fans a call out to several recorders
type Multi []Recorder

func (m Multi) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	for _, r := range m {
		r.RecordAPIRequest(ctx, endpoint, statusCode, duration)
	}
}

func (m Multi) RecordScaleGeneration(ctx context.Context, scaleType string, success bool, duration time.Duration) {
	for _, r := range m {
		r.RecordScaleGeneration(ctx, scaleType, success, duration)
	}
}

// Nop discards everything
type Nop struct{}

func (Nop) RecordAPIRequest(context.Context, string, int, time.Duration)       {}
func (Nop) RecordScaleGeneration(context.Context, string, bool, time.Duration) {}
