package widget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/penwyp/go-apod-widget/internal/core/model"
)

func TestStateManager_FallbackUntilTimeline(t *testing.T) {
	sm := NewStateManager()
	now := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)

	placeholder := model.NewEntry(now, model.Image{Name: "placeholder"}, "Sample", "", true)
	sm.SetFallback(placeholder)
	assert.Equal(t, placeholder, sm.CurrentEntry(now))

	_, ok := sm.Timeline()
	assert.False(t, ok)

	entry := model.NewEntry(now, model.Image{Name: "m31"}, "Andromeda", "", false)
	sm.SetTimeline(model.Timeline{Entries: []model.Entry{entry}, Policy: model.After(time.Hour)}, now)

	assert.Equal(t, entry, sm.CurrentEntry(now))
	assert.Equal(t, now, sm.LastUpdate())

	tl, ok := sm.Timeline()
	assert.True(t, ok)
	assert.Len(t, tl.Entries, 1)
}

func TestStateManager_EmptyTimelineKeepsFallback(t *testing.T) {
	sm := NewStateManager()
	now := time.Now()

	placeholder := model.NewEntry(now, model.Image{Name: "placeholder"}, "Sample", "", true)
	sm.SetFallback(placeholder)
	sm.SetTimeline(model.Timeline{Policy: model.Never()}, now)

	assert.Equal(t, placeholder, sm.CurrentEntry(now))
}

func TestStateManager_Intent(t *testing.T) {
	sm := NewStateManager()
	assert.False(t, sm.Intent().ShouldShowText())

	sm.SetIntent(model.Intent{model.ShowTextKey: true})
	assert.True(t, sm.Intent().ShouldShowText())
}

func TestStateManager_Loading(t *testing.T) {
	sm := NewStateManager()
	assert.False(t, sm.IsLoading())
	sm.SetLoading(true)
	assert.True(t, sm.IsLoading())
}

func TestStateManager_StatusMessageExpires(t *testing.T) {
	sm := NewStateManager()
	at := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)

	sm.SetStatus("Refreshing...", at)
	assert.Equal(t, "Refreshing...", sm.GetInteractionState(at.Add(time.Second)).StatusMessage)
	assert.Empty(t, sm.GetInteractionState(at.Add(statusMessageTTL+time.Second)).StatusMessage)
}

func TestStateManager_UpdateInteractionState(t *testing.T) {
	sm := NewStateManager()
	size := model.SizeLarge

	sm.UpdateInteractionState(func(s *model.InteractionState) {
		s.IsPaused = true
		s.ForcedSize = &size
	})

	state := sm.GetInteractionState(time.Now())
	assert.True(t, state.IsPaused)
	assert.Equal(t, model.SizeLarge, *state.ForcedSize)
}
