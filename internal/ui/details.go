package ui

import (
	"strings"

	internalstrings "github.com/amonks/pomo/internal/strings"
	"github.com/charmbracelet/lipgloss"
)

// Detail is a labelled value in a details block.
type Detail struct {
	Label string
	Value string
}

// DetailsBuilder collects labelled values and renders them aligned.
type DetailsBuilder struct {
	rows   []Detail
	styled bool
	label  lipgloss.Style
	title  lipgloss.Style
	header string
}

// NewDetailsBuilder returns a builder. When styled is false no ANSI codes are
// emitted.
func NewDetailsBuilder(styled bool) *DetailsBuilder {
	return &DetailsBuilder{
		styled: styled,
		label:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		title:  lipgloss.NewStyle().Bold(true),
	}
}

// Title sets a heading line rendered above the rows.
func (builder *DetailsBuilder) Title(title string) {
	builder.header = title
}

// Add appends a row.
func (builder *DetailsBuilder) Add(label, value string) {
	builder.rows = append(builder.rows, Detail{Label: label, Value: value})
}

// String renders the block.
func (builder *DetailsBuilder) String() string {
	width := 0
	for _, row := range builder.rows {
		if w := lipgloss.Width(row.Label); w > width {
			width = w
		}
	}

	var out strings.Builder
	if builder.header != "" {
		out.WriteString(builder.render(builder.title, builder.header))
		out.WriteByte('\n')
	}
	for _, row := range builder.rows {
		label := row.Label + strings.Repeat(" ", width-lipgloss.Width(row.Label))
		out.WriteString(builder.render(builder.label, label))
		out.WriteString("  ")
		out.WriteString(normalizeCell(row.Value))
		out.WriteByte('\n')
	}
	return out.String()
}

func (builder *DetailsBuilder) render(style lipgloss.Style, value string) string {
	if !builder.styled {
		return value
	}
	return style.Render(value)
}

func normalizeCell(value string) string {
	return internalstrings.NormalizeWhitespace(value)
}
