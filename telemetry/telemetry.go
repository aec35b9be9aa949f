// Package telemetry is the exception-event sink injected into the client.
// Purely observational; implementations never affect control flow.
package telemetry

import (
	"sync"

	"github.com/rs/zerolog"
)

type Recorder interface {
	Exception(operation string, err error)
}

type Event struct {
	Operation string
	Err       error
}

type LogRecorder struct {
	logger zerolog.Logger
}

func NewLogRecorder(logger zerolog.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

func (r *LogRecorder) Exception(operation string, err error) {
	r.logger.Error().Err(err).Str("operation", operation).Msg("exception")
}

type NoopRecorder struct{}

func (NoopRecorder) Exception(string, error) {}

func Noop() Recorder {
	return NoopRecorder{}
}

// RecordingRecorder captures events for inspection in tests.
type RecordingRecorder struct {
	mu     sync.Mutex
	events []Event
}

func NewRecordingRecorder() *RecordingRecorder {
	return &RecordingRecorder{
		mu:     sync.Mutex{},
		events: nil,
	}
}

func (r *RecordingRecorder) Exception(operation string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, Event{Operation: operation, Err: err})
}

func (r *RecordingRecorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)

	return out
}
