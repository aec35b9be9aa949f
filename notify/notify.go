// Package notify abstracts the user-visible notification surface. The
// client fires error notifications through it without consuming a result.
package notify

import (
	"sync"

	"github.com/rs/zerolog"
)

type Notifier interface {
	Error(message string)
}

type LogNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Error(message string) {
	n.logger.Error().Msg(message)
}

type NoopNotifier struct{}

func (NoopNotifier) Error(string) {}

func Noop() Notifier {
	return NoopNotifier{}
}

// RecordingNotifier captures messages for inspection in tests.
type RecordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{
		mu:       sync.Mutex{},
		messages: nil,
	}
}

func (n *RecordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.messages = append(n.messages, message)
}

func (n *RecordingNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]string, len(n.messages))
	copy(out, n.messages)

	return out
}
