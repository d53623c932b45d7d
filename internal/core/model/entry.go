package model

import "time"

// Image is an opaque handle to picture content. The timeline core never
// inspects it; only the rendering layer does.
type Image struct {
	Name      string `json:"name"`
	URL       string `json:"url,omitempty"`
	MediaType string `json:"media_type,omitempty"`
	Data      []byte `json:"-"`
}

// IsZero reports whether the image carries no identity at all
func (i Image) IsZero() bool {
	return i.Name == "" && i.URL == "" && len(i.Data) == 0
}

// Label returns a short human readable identifier for the image
func (i Image) Label() string {
	if i.Name != "" {
		return i.Name
	}
	if i.URL != "" {
		return i.URL
	}
	return "image"
}

// Entry is one immutable snapshot of content to display plus its creation time.
// Rendering an entry needs no further I/O.
type Entry struct {
	Timestamp   time.Time `json:"timestamp"`
	Image       Image     `json:"image"`
	Title       string    `json:"title"`
	Explanation string    `json:"explanation"`
	ShowCaption bool      `json:"show_caption"`
}

// NewEntry creates an entry stamped with the given time
func NewEntry(at time.Time, image Image, title, explanation string, showCaption bool) Entry {
	return Entry{
		Timestamp:   at,
		Image:       image,
		Title:       title,
		Explanation: explanation,
		ShowCaption: showCaption,
	}
}
