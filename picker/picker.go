// Package picker provides interactive terminal selection of a category's
// default extension. It is an optional affordance for CLI hosts; nothing in
// the registry depends on it.
package picker

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/reglet-dev/extkit/extension"
)

// TerminalPicker lets a user pick a category's default extension from a list.
type TerminalPicker struct{}

// NewTerminalPicker creates a new TerminalPicker.
func NewTerminalPicker() *TerminalPicker {
	return &TerminalPicker{}
}

// IsInteractive checks if we're running in an interactive terminal.
func (p *TerminalPicker) IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// PickDefault presents the category's registered extensions and applies the
// chosen one via SetDefaultByID. The current default is preselected, so
// accepting the prompt unchanged is a no-op.
func (p *TerminalPicker) PickDefault(reg *extension.Registry, category string) error {
	c, err := reg.Category(category)
	if err != nil {
		return err
	}

	options, err := selectOptions(c)
	if err != nil {
		return err
	}

	selection := c.DefaultID().String()
	err = huh.NewSelect[string]().
		Title(fmt.Sprintf("Default extension for %q", category)).
		Description("The system default remains available as a fallback.").
		Options(options...).
		Value(&selection).
		Run()
	if err != nil {
		return err
	}

	return c.SetDefaultByID(extension.ID(selection))
}

func selectOptions(c *extension.Category) ([]huh.Option[string], error) {
	ids := c.IDs()
	options := make([]huh.Option[string], 0, len(ids))
	for _, id := range ids {
		info, err := c.Info(id)
		if err != nil {
			return nil, err
		}
		options = append(options, huh.NewOption(optionTitle(info), id.String()))
	}
	return options, nil
}

func optionTitle(info extension.Info) string {
	title := info.Label
	if info.Version != "" {
		title = fmt.Sprintf("%s %s", title, info.Version)
	}
	if info.Description != "" {
		title = fmt.Sprintf("%s (%s)", title, info.Description)
	}
	return title
}
