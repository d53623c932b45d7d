package formatter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/penwyp/go-apod-widget/internal/util"
)

// Values longer than this are cut in the table
const maxValueWidth = 72

// TextFormatter prints each entry as a two column table
type TextFormatter struct {
	headers []string
}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		headers: []string{"Field", "Value"},
	}
}

func (f *TextFormatter) Format(w io.Writer, report Report) error {
	rows := make([][]string, 0, 8*len(report.Entries)+2)
	for i, entry := range report.Entries {
		if len(report.Entries) > 1 {
			rows = append(rows, []string{fmt.Sprintf("Entry %d", i+1), ""})
		}
		rows = append(rows,
			[]string{"Kind", report.Kind},
			[]string{"Time", util.GetTimeProvider().Format(entry.Timestamp, time.RFC3339)},
			[]string{"Title", entry.Title},
			[]string{"Explanation", entry.Explanation},
			[]string{"Image", entry.Image.Name},
			[]string{"Bytes", formatNumber(entry.Image.Bytes)},
			[]string{"Caption", fmt.Sprintf("%t", entry.ShowCaption)},
			[]string{"Layout", fmt.Sprintf("%s (%s)", entry.Variant, entry.Size)},
		)
	}
	if report.Policy != "" {
		rows = append(rows, []string{"Reload", report.Policy})
	}
	if report.NextReload != nil {
		rows = append(rows, []string{"Next reload", util.GetTimeProvider().Format(*report.NextReload, time.RFC3339)})
	}

	for _, row := range rows {
		row[1] = truncate(row[1], maxValueWidth)
	}
	widths := f.calculateColumnWidths(rows)

	var b strings.Builder
	f.printBorder(&b, widths, "top")
	f.printRow(&b, f.headers, widths)
	f.printBorder(&b, widths, "middle")
	for _, row := range rows {
		f.printRow(&b, row, widths)
	}
	f.printBorder(&b, widths, "bottom")

	_, err := io.WriteString(w, b.String())
	return err
}

func (f *TextFormatter) calculateColumnWidths(rows [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i, value := range row {
			if w := runewidth.StringWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func (f *TextFormatter) printBorder(b *strings.Builder, widths []int, borderType string) {
	var left, middle, right string

	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2)) // +2 for padding spaces
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right + "\n")
}

func (f *TextFormatter) printRow(b *strings.Builder, values []string, widths []int) {
	b.WriteString("│")
	for i, value := range values {
		b.WriteString(" " + runewidth.FillRight(value, widths[i]) + " │")
	}
	b.WriteString("\n")
}

func truncate(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

func formatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var result []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, digit)
	}
	return string(result)
}
