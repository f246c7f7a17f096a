package terminal

import (
	"fmt"
	"strings"

	"github.com/ericfisherdev/canvascal/internal/domain/model"
)

var weekdayHeaders = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// RenderMonth draws m as a text grid followed by the assignments it contains.
// Days with assignments carry a trailing "*".
func RenderMonth(m model.Month) string {
	var b strings.Builder

	b.WriteString(m.Title())
	b.WriteByte('\n')

	var header strings.Builder
	for _, h := range weekdayHeaders {
		fmt.Fprintf(&header, "%3s ", h)
	}
	b.WriteString(strings.TrimRight(header.String(), " "))
	b.WriteByte('\n')

	for _, week := range m.Weeks {
		var line strings.Builder
		for _, day := range week {
			line.WriteString(renderCell(day))
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(RenderAssignments(m))
	return b.String()
}

func renderCell(d model.Day) string {
	if d.IsBlank() {
		return "    "
	}
	mark := " "
	if d.HasAssignments() {
		mark = "*"
	}
	return fmt.Sprintf("%3d%s", d.Date.Day(), mark)
}

// RenderAssignments lists the month's assignments grouped by day.
func RenderAssignments(m model.Month) string {
	var b strings.Builder
	listed := false

	for _, week := range m.Weeks {
		for _, day := range week {
			if !day.HasAssignments() {
				continue
			}
			listed = true
			b.WriteString(day.Date.Format("Mon Jan _2"))
			b.WriteByte('\n')
			for _, a := range day.Assignments {
				b.WriteString("  ")
				b.WriteString(a.DueAt.In(m.Location).Format("15:04"))
				b.WriteString("  ")
				b.WriteString(a.Name)
				if a.Course != "" {
					fmt.Fprintf(&b, " (%s)", a.Course)
				}
				b.WriteByte('\n')
			}
		}
	}

	if !listed {
		b.WriteString(model.MsgNoAssignments)
		b.WriteByte('\n')
	}
	return b.String()
}
