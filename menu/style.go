// SPDX-License-Identifier: MIT

package menu

import "github.com/charmbracelet/lipgloss"

// Styler decorates console text.
type Styler interface {
	// Header styles a section title.
	Header(s string) string
	// Error styles an error message.
	Error(s string) string
}

// NewStyler returns a lipgloss-backed Styler when color is true and a
// PlainStyler otherwise.
func NewStyler(color bool) Styler {
	if !color {
		return PlainStyler{}
	}

	return ColorStyler{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3")),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")),
	}
}

// PlainStyler returns text unchanged.
type PlainStyler struct{}

// Header returns s unchanged.
func (PlainStyler) Header(s string) string { return s }

// Error returns s unchanged.
func (PlainStyler) Error(s string) string { return s }

// ColorStyler renders through lipgloss styles. lipgloss degrades to plain
// text when the terminal has no color support.
type ColorStyler struct {
	header lipgloss.Style
	err    lipgloss.Style
}

// Header renders s bold in blue.
func (c ColorStyler) Header(s string) string { return c.header.Render(s) }

// Error renders s in red.
func (c ColorStyler) Error(s string) string { return c.err.Render(s) }
