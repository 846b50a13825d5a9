package manifest

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/extkit/extension"
)

func quietApplier() *Applier {
	return NewApplier(WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func Test_Applier_ApplyDefaults(t *testing.T) {
	reg := newNotifierRegistry(t)
	soundID := extension.MustIdentityOf(soundNotifier{})

	m := &Manifest{
		Defaults: map[string]string{"notifier": soundID.String()},
	}

	applied, err := quietApplier().ApplyDefaults(reg, m)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)

	def, err := reg.Default("notifier")
	require.NoError(t, err)
	assert.Equal(t, soundNotifier{}, def)
}

func Test_Applier_ApplyDefaults_ToleratesStaleEntries(t *testing.T) {
	reg := newNotifierRegistry(t)

	// Both entries reference things absent from this build; the system
	// default must stay selected and no error may surface.
	m := &Manifest{
		Defaults: map[string]string{
			"notifier":         "github.com/gone/ext.RemovedNotifier",
			"removed-category": "github.com/gone/ext.Anything",
		},
	}

	applied, err := quietApplier().ApplyDefaults(reg, m)
	require.NoError(t, err)
	assert.Equal(t, 0, applied)

	def, err := reg.Default("notifier")
	require.NoError(t, err)
	assert.Equal(t, toastNotifier{}, def)
}

func Test_Applier_ApplyDefaults_InvalidManifest(t *testing.T) {
	reg := newNotifierRegistry(t)

	m := &Manifest{Defaults: map[string]string{"notifier": ""}}

	_, err := quietApplier().ApplyDefaults(reg, m)
	assert.Error(t, err)
}

func Test_Lint(t *testing.T) {
	reg := newNotifierRegistry(t)

	m := &Manifest{
		Capabilities: map[string]Capability{
			"notifiable": {Methods: []string{"Notify"}},
			"open-ended": {},
		},
		Defaults: map[string]string{
			"notifier":         extension.MustIdentityOf(soundNotifier{}).String(),
			"removed-category": "github.com/gone/ext.Anything",
			"notifier2":        "also-unknown",
		},
	}
	_, err := reg.RegisterCategory("notifier2", toastNotifier{})
	require.NoError(t, err)

	problems := Lint(reg, m)
	require.Len(t, problems, 3)

	var details []string
	for _, p := range problems {
		details = append(details, p.String())
	}
	assert.Contains(t, details[0], "open-ended")
	assert.Contains(t, details[1], "not a registered extension")
	assert.Contains(t, details, "removed-category: category not registered")
}

func Test_Lint_CleanManifest(t *testing.T) {
	reg := newNotifierRegistry(t)

	m := &Manifest{
		Capabilities: map[string]Capability{"notifiable": {Methods: []string{"Notify"}}},
		Defaults:     map[string]string{"notifier": extension.MustIdentityOf(toastNotifier{}).String()},
	}

	assert.Empty(t, Lint(reg, m))
}
