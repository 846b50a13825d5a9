package picker

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/extkit/extension"
)

type plainTheme struct{}

func (plainTheme) Apply(s string) string { return s }

type fancyTheme struct{}

func (fancyTheme) Apply(s string) string { return s }

func (fancyTheme) ExtensionVersion() string { return "2.1.0" }

func (fancyTheme) ExtensionInfo() extension.Info {
	return extension.Info{Label: "Fancy theme", Description: "animated"}
}

func Test_SelectOptions(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := extension.New(extension.WithLogger(logger))

	c, err := reg.RegisterCategory("theme", plainTheme{},
		extension.WithCapabilities(extension.MustNewDescriptor("themable", "Apply")))
	require.NoError(t, err)
	_, err = c.Register(fancyTheme{})
	require.NoError(t, err)

	options, err := selectOptions(c)
	require.NoError(t, err)
	require.Len(t, options, 2)

	var titles []string
	for _, o := range options {
		titles = append(titles, o.Key)
	}
	assert.Contains(t, titles, "plainTheme")
	assert.Contains(t, titles, "Fancy theme 2.1.0 (animated)")
}

func Test_PickDefault_UnknownCategory(t *testing.T) {
	reg := extension.New()

	err := NewTerminalPicker().PickDefault(reg, "nope")
	assert.ErrorIs(t, err, extension.ErrUnknownCategory)
}
