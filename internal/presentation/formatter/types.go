package formatter

import (
	"fmt"
	"io"
	"time"

	"github.com/penwyp/go-apod-widget/internal/core/model"
	"github.com/penwyp/go-apod-widget/internal/presentation/layout"
)

// Formatter writes a report in one output format
type Formatter interface {
	Format(w io.Writer, report Report) error
}

// ImageView describes an image without its content
type ImageView struct {
	Name      string `json:"name"`
	URL       string `json:"url,omitempty"`
	MediaType string `json:"media_type,omitempty"`
	Bytes     int    `json:"bytes"`
}

// EntryView is the printable form of an entry
type EntryView struct {
	Timestamp   time.Time `json:"timestamp"`
	Title       string    `json:"title"`
	Explanation string    `json:"explanation"`
	ShowCaption bool      `json:"show_caption"`
	Image       ImageView `json:"image"`
	Size        string    `json:"size"`
	Variant     string    `json:"variant"`
}

// Report is the output of one placeholder, snapshot or timeline request
type Report struct {
	Kind       string      `json:"kind"`
	Entries    []EntryView `json:"entries"`
	Policy     string      `json:"policy,omitempty"`
	NextReload *time.Time  `json:"next_reload,omitempty"`

	// Kept for formatters that draw the entry itself
	entries []model.Entry
	size    model.SizeClass
}

func newEntryView(entry model.Entry, size model.SizeClass) EntryView {
	return EntryView{
		Timestamp:   entry.Timestamp,
		Title:       entry.Title,
		Explanation: entry.Explanation,
		ShowCaption: entry.ShowCaption,
		Image: ImageView{
			Name:      entry.Image.Name,
			URL:       entry.Image.URL,
			MediaType: entry.Image.MediaType,
			Bytes:     len(entry.Image.Data),
		},
		Size:    size.String(),
		Variant: layout.SelectForEntry(entry, size).String(),
	}
}

// NewEntryReport builds a report for a single entry
func NewEntryReport(kind string, entry model.Entry, size model.SizeClass) Report {
	return Report{
		Kind:    kind,
		Entries: []EntryView{newEntryView(entry, size)},
		entries: []model.Entry{entry},
		size:    size,
	}
}

// NewTimelineReport builds a report for a timeline and its reload policy
func NewTimelineReport(tl model.Timeline, size model.SizeClass) Report {
	report := Report{
		Kind:    "timeline",
		Entries: make([]EntryView, 0, len(tl.Entries)),
		Policy:  tl.Policy.String(),
		entries: tl.Entries,
		size:    size,
	}
	for _, entry := range tl.Entries {
		report.Entries = append(report.Entries, newEntryView(entry, size))
	}
	if len(tl.Entries) > 0 {
		if next, ok := tl.Policy.NextReload(tl.Entries[len(tl.Entries)-1].Timestamp); ok {
			report.NextReload = &next
		}
	}
	return report
}

// GetFormatter returns the formatter for an output name
func GetFormatter(output string, param model.LayoutParam) (Formatter, error) {
	switch output {
	case "text", "":
		return NewTextFormatter(), nil
	case "json":
		return NewJSONFormatter(), nil
	case "render":
		return NewRenderFormatter(param), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (use text, json or render)", output)
	}
}
