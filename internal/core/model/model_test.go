package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntentShouldShowText(t *testing.T) {
	tests := []struct {
		name     string
		intent   Intent
		expected bool
	}{
		{name: "nil_intent", intent: nil, expected: false},
		{name: "empty_intent", intent: Intent{}, expected: false},
		{name: "true", intent: Intent{ShowTextKey: true}, expected: true},
		{name: "false", intent: Intent{ShowTextKey: false}, expected: false},
		{name: "string_true", intent: Intent{ShowTextKey: "true"}, expected: false},
		{name: "number_one", intent: Intent{ShowTextKey: 1}, expected: false},
		{name: "nil_value", intent: Intent{ShowTextKey: nil}, expected: false},
		{name: "other_key_only", intent: Intent{"show_text": true}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.intent.ShouldShowText())
		})
	}
}

func TestIntentWithShowTextCopies(t *testing.T) {
	original := Intent{"other": 1}
	updated := original.WithShowText(true)

	assert.True(t, updated.ShouldShowText())
	assert.Equal(t, 1, updated["other"])
	assert.False(t, original.ShouldShowText(), "original intent must not change")

	var nilIntent Intent
	assert.True(t, nilIntent.WithShowText(true).ShouldShowText())
}

func TestReloadPolicy(t *testing.T) {
	from := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("after", func(t *testing.T) {
		p := After(5 * time.Minute)
		next, ok := p.NextReload(from)
		require.True(t, ok)
		assert.Equal(t, from.Add(5*time.Minute), next)
		assert.Equal(t, "after(5m0s)", p.String())
	})

	t.Run("negative_duration_clamped", func(t *testing.T) {
		p := After(-time.Minute)
		assert.Equal(t, time.Duration(0), p.Duration)
	})

	t.Run("never", func(t *testing.T) {
		p := Never()
		_, ok := p.NextReload(from)
		assert.False(t, ok)
		assert.Equal(t, "never", p.String())
	})

	t.Run("equality", func(t *testing.T) {
		assert.Equal(t, After(15*time.Minute), After(15*time.Minute))
		assert.NotEqual(t, After(5*time.Minute), After(15*time.Minute))
	})
}

func TestParseSizeClass(t *testing.T) {
	tests := []struct {
		input    string
		expected SizeClass
		ok       bool
	}{
		{"small", SizeSmall, true},
		{"Medium", SizeMedium, true},
		{" L ", SizeLarge, true},
		{"unknown", SizeUnknown, true},
		{"auto", SizeUnknown, false},
		{"", SizeUnknown, false},
		{"huge", SizeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			size, ok := ParseSizeClass(tt.input)
			assert.Equal(t, tt.expected, size)
			assert.Equal(t, tt.ok, ok)
		})
	}

	assert.Equal(t, "unknown", SizeClass(42).String())
}

func TestFetchOutcomeConstructors(t *testing.T) {
	img := Image{Name: "m31.jpg"}
	ok := Success(img, "M31", "The Andromeda Galaxy")
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, "M31", ok.Title)
	assert.Equal(t, img, ok.Image)

	failed := Failure("timeout")
	assert.False(t, failed.IsSuccess())
	assert.Equal(t, "timeout", failed.Reason)

	var zero FetchOutcome
	assert.False(t, zero.IsSuccess())
}

func TestTimelineEntryAt(t *testing.T) {
	base := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)
	first := Entry{Timestamp: base, Title: "first"}
	second := Entry{Timestamp: base.Add(10 * time.Minute), Title: "second"}
	tl := Timeline{Entries: []Entry{first, second}, Policy: After(time.Hour)}

	e, ok := tl.EntryAt(base.Add(-time.Minute))
	require.True(t, ok)
	assert.Equal(t, "first", e.Title)

	e, _ = tl.EntryAt(base.Add(5 * time.Minute))
	assert.Equal(t, "first", e.Title)

	e, _ = tl.EntryAt(base.Add(10 * time.Minute))
	assert.Equal(t, "second", e.Title)

	_, ok = Timeline{}.EntryAt(base)
	assert.False(t, ok)
}

func TestImageLabel(t *testing.T) {
	assert.Equal(t, "Placeholder", Image{Name: "Placeholder"}.Label())
	assert.Equal(t, "https://example.com/a.jpg", Image{URL: "https://example.com/a.jpg"}.Label())
	assert.Equal(t, "image", Image{}.Label())
	assert.True(t, Image{}.IsZero())
}
