package manifest

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/extkit/extension"
)

type toastNotifier struct{}

func (toastNotifier) Notify(msg string) {}

type soundNotifier struct{}

func (soundNotifier) Notify(msg string) {}

// newNotifierRegistry builds a registry with a "notifier" category holding
// two registered implementations, system default toastNotifier.
func newNotifierRegistry(t *testing.T) *extension.Registry {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := extension.New(extension.WithLogger(logger))

	_, err := reg.RegisterCategory("notifier", toastNotifier{},
		extension.WithCapabilities(extension.MustNewDescriptor("notifiable", "Notify")))
	require.NoError(t, err)

	_, err = reg.Register("notifier", soundNotifier{})
	require.NoError(t, err)

	return reg
}
