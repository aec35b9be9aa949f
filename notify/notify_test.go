package notify_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/truffletools/azbaas/notify"
)

func TestLogNotifier_WritesErrorEvent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	notifier := notify.NewLogNotifier(zerolog.New(&buf))
	notifier.Error("something failed")

	require.Contains(t, buf.String(), `"level":"error"`)
	require.Contains(t, buf.String(), "something failed")
}

func TestRecordingNotifier_CapturesMessagesInOrder(t *testing.T) {
	t.Parallel()

	notifier := notify.NewRecordingNotifier()
	notifier.Error("first")
	notifier.Error("second")

	require.Equal(t, []string{"first", "second"}, notifier.Messages())
}
