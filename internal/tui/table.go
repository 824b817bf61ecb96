package tui

import (
	"strings"

	"github.com/anmicius0/parking-slot-manager/internal/slot"
	"github.com/charmbracelet/lipgloss"
)

var slotColumns = []struct {
	title string
	width int
	value func(slot.Slot) string
}{
	{"ID", 38, func(s slot.Slot) string { return s.ID }},
	{"Number", 10, func(s slot.Slot) string { return s.Number }},
	{"Size", 8, func(s slot.Slot) string { return string(s.Size) }},
	{"Vehicle", 12, func(s slot.Slot) string { return string(s.VehicleType) }},
	{"Location", 20, func(s slot.Slot) string { return s.Location }},
	{"Fee/h", 10, func(s slot.Slot) string { return s.FeePerHour.StringFixed(2) }},
}

// RenderSlots lays slots out as a fixed-width table.
func (st Styles) RenderSlots(slots []slot.Slot) string {
	if len(slots) == 0 {
		return st.Hint.Render("No parking slots yet.")
	}

	cell := func(style lipgloss.Style, width int, text string) string {
		return style.Width(width).MaxWidth(width).Render(text)
	}

	lines := make([]string, 0, len(slots)+1)
	header := make([]string, 0, len(slotColumns))
	for _, c := range slotColumns {
		header = append(header, cell(st.Header, c.width, c.title))
	}
	lines = append(lines, strings.Join(header, ""))

	for _, s := range slots {
		row := make([]string, 0, len(slotColumns))
		for _, c := range slotColumns {
			row = append(row, cell(st.Body.Padding(0, 1), c.width, c.value(s)))
		}
		lines = append(lines, strings.Join(row, ""))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
