package formatter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-apod-widget/internal/core/model"
)

var testTime = time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)

func errorTimeline() model.Timeline {
	entry := model.NewEntry(testTime, model.Image{Name: "Error", MediaType: "text/plain", Data: []byte("x")},
		"Connection Error", "", true)
	return model.Timeline{Entries: []model.Entry{entry}, Policy: model.After(15 * time.Minute)}
}

func TestNewTimelineReport(t *testing.T) {
	report := NewTimelineReport(errorTimeline(), model.SizeMedium)

	assert.Equal(t, "timeline", report.Kind)
	require.Len(t, report.Entries, 1)
	assert.Equal(t, "medium_caption", report.Entries[0].Variant)
	assert.Equal(t, "medium", report.Entries[0].Size)
	assert.Equal(t, 1, report.Entries[0].Image.Bytes)
	assert.Equal(t, "after(15m0s)", report.Policy)
	require.NotNil(t, report.NextReload)
	assert.Equal(t, testTime.Add(15*time.Minute), *report.NextReload)
}

func TestNewTimelineReportNeverPolicy(t *testing.T) {
	tl := errorTimeline()
	tl.Policy = model.Never()
	report := NewTimelineReport(tl, model.SizeSmall)
	assert.Equal(t, "never", report.Policy)
	assert.Nil(t, report.NextReload)
}

func TestJSONFormatterFormat(t *testing.T) {
	var buf bytes.Buffer
	report := NewEntryReport("snapshot", model.NewEntry(testTime, model.Image{Name: "Placeholder"}, "Sample Text", "Explanation Sample Text", false), model.SizeLarge)

	require.NoError(t, NewJSONFormatter().Format(&buf, report))

	var decoded map[string]interface{}
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "snapshot", decoded["kind"])
	assert.NotContains(t, decoded, "policy")

	entries, ok := decoded["entries"].([]interface{})
	require.True(t, ok)
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]interface{})
	assert.Equal(t, "Sample Text", entry["title"])
	assert.Equal(t, false, entry["show_caption"])
	assert.Equal(t, "plain_image", entry["variant"])
}

func TestTextFormatterFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter().Format(&buf, NewTimelineReport(errorTimeline(), model.SizeSmall)))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "└"))
	assert.Contains(t, out, "Connection Error")
	assert.Contains(t, out, "small_caption (small)")
	assert.Contains(t, out, "after(15m0s)")

	// All rows share one width
	width := len([]rune(lines[0]))
	for _, line := range lines {
		assert.Equal(t, width, len([]rune(line)), line)
	}
}

func TestTextFormatterTruncatesLongValues(t *testing.T) {
	var buf bytes.Buffer
	long := strings.Repeat("galaxy ", 40)
	report := NewEntryReport("snapshot", model.NewEntry(testTime, model.Image{}, "T", long, true), model.SizeLarge)

	require.NoError(t, NewTextFormatter().Format(&buf, report))
	assert.Contains(t, buf.String(), "…")
}

func TestRenderFormatter(t *testing.T) {
	var buf bytes.Buffer
	report := NewTimelineReport(errorTimeline(), model.SizeLarge)

	require.NoError(t, NewRenderFormatter(model.LayoutParam{Width: 60, Height: 30}).Format(&buf, report))
	assert.Contains(t, buf.String(), "Connection Error")
}

func TestGetFormatter(t *testing.T) {
	for _, name := range []string{"", "text", "json", "render"} {
		f, err := GetFormatter(name, model.LayoutParam{})
		require.NoError(t, err, name)
		assert.NotNil(t, f)
	}

	_, err := GetFormatter("csv", model.LayoutParam{})
	assert.Error(t, err)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "999", formatNumber(999))
	assert.Equal(t, "1,000", formatNumber(1000))
	assert.Equal(t, "8,388,608", formatNumber(8388608))
}
