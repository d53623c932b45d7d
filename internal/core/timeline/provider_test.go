package timeline

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/penwyp/go-apod-widget/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingAdapter returns a fixed outcome and records how often it was called
type countingAdapter struct {
	outcome model.FetchOutcome
	calls   atomic.Int32
}

func (a *countingAdapter) Fetch(ctx context.Context) model.FetchOutcome {
	a.calls.Add(1)
	return a.outcome
}

var fixedNow = time.Date(2024, 3, 14, 21, 0, 0, 0, time.UTC)

func newTestProvider(adapter FetchAdapter) *Provider {
	return NewProvider(adapter, WithClock(func() time.Time { return fixedNow }))
}

func intents() map[string]model.Intent {
	return map[string]model.Intent{
		"nil":        nil,
		"empty":      {},
		"true":       {model.ShowTextKey: true},
		"false":      {model.ShowTextKey: false},
		"wrong_type": {model.ShowTextKey: "yes"},
		"unrelated":  {"other": true},
	}
}

func TestPlaceholder(t *testing.T) {
	adapter := &countingAdapter{outcome: model.Failure("unused")}
	p := newTestProvider(adapter)

	first := p.Placeholder()
	second := p.Placeholder()

	assert.Equal(t, first, second)
	assert.Equal(t, "Placeholder", first.Image.Name)
	assert.Equal(t, "Sample Text", first.Title)
	assert.Equal(t, "Explanation Sample Text", first.Explanation)
	assert.True(t, first.ShowCaption)
	assert.Equal(t, fixedNow, first.Timestamp)
	assert.NotEmpty(t, first.Image.Data, "placeholder art should be embedded")
	assert.Equal(t, int32(0), adapter.calls.Load(), "placeholder must not fetch")
}

func TestSnapshot(t *testing.T) {
	adapter := &countingAdapter{outcome: model.Failure("unused")}
	p := newTestProvider(adapter)

	for name, intent := range intents() {
		t.Run(name, func(t *testing.T) {
			entry := p.Snapshot(intent)
			assert.Equal(t, intent.ShouldShowText(), entry.ShowCaption)
			assert.Equal(t, "Placeholder", entry.Image.Name)
			assert.Equal(t, "Sample Text", entry.Title)
		})
	}

	assert.True(t, p.Snapshot(model.Intent{model.ShowTextKey: true}).ShowCaption)
	assert.False(t, p.Snapshot(nil).ShowCaption)
	assert.Equal(t, int32(0), adapter.calls.Load(), "snapshot must not fetch")
}

func TestTimelineFailure(t *testing.T) {
	for _, reason := range []string{"timeout", "", "malformed payload"} {
		for name, intent := range intents() {
			t.Run(fmt.Sprintf("%q/%s", reason, name), func(t *testing.T) {
				adapter := &countingAdapter{outcome: model.Failure(reason)}
				tl := newTestProvider(adapter).Timeline(context.Background(), intent)

				assert.Equal(t, int32(1), adapter.calls.Load())
				require.Len(t, tl.Entries, 1)
				entry := tl.Entries[0]
				assert.Equal(t, "Connection Error", entry.Title)
				assert.Empty(t, entry.Explanation)
				assert.True(t, entry.ShowCaption, "errors are always captioned")
				assert.Equal(t, "Error", entry.Image.Name)
				assert.Equal(t, model.After(15*time.Minute), tl.Policy)
			})
		}
	}
}

func TestTimelineSuccess(t *testing.T) {
	img := model.Image{Name: "m31.jpg", URL: "https://apod.example/m31.jpg"}
	for name, intent := range intents() {
		t.Run(name, func(t *testing.T) {
			adapter := &countingAdapter{outcome: model.Success(img, "M31", "The Andromeda Galaxy")}
			tl := newTestProvider(adapter).Timeline(context.Background(), intent)

			assert.Equal(t, int32(1), adapter.calls.Load())
			require.Len(t, tl.Entries, 1)
			entry := tl.Entries[0]
			assert.Equal(t, "M31", entry.Title)
			assert.Equal(t, "The Andromeda Galaxy", entry.Explanation)
			assert.Equal(t, img, entry.Image)
			assert.Equal(t, intent.ShouldShowText(), entry.ShowCaption)
			assert.Equal(t, fixedNow, entry.Timestamp)
			assert.Equal(t, model.After(5*time.Minute), tl.Policy)
		})
	}
}

func TestTimelineScenarioUnsetConfig(t *testing.T) {
	adapter := &countingAdapter{outcome: model.Success(model.Image{Name: "img"}, "M31", "The Andromeda Galaxy")}
	tl := newTestProvider(adapter).Timeline(context.Background(), nil)

	require.Len(t, tl.Entries, 1)
	assert.Equal(t, model.Entry{
		Timestamp:   fixedNow,
		Image:       model.Image{Name: "img"},
		Title:       "M31",
		Explanation: "The Andromeda Galaxy",
		ShowCaption: false,
	}, tl.Entries[0])
	assert.Equal(t, model.After(5*time.Minute), tl.Policy)
}

func TestTimelineAsyncDeliversOnce(t *testing.T) {
	adapter := &countingAdapter{outcome: model.Success(model.Image{Name: "img"}, "t", "e")}
	ch := newTestProvider(adapter).TimelineAsync(context.Background(), nil)

	select {
	case tl, ok := <-ch:
		require.True(t, ok)
		require.Len(t, tl.Entries, 1)
		assert.Equal(t, "t", tl.Entries[0].Title)
	case <-time.After(2 * time.Second):
		t.Fatal("timeline was never delivered")
	}

	_, open := <-ch
	assert.False(t, open, "channel must be closed after the single delivery")
	assert.Equal(t, int32(1), adapter.calls.Load())
}

func TestTimelineAsyncAdapterOnOtherGoroutine(t *testing.T) {
	release := make(chan struct{})
	adapter := FetchAdapterFunc(func(ctx context.Context) model.FetchOutcome {
		<-release
		return model.Failure("late")
	})
	ch := newTestProvider(adapter).TimelineAsync(context.Background(), nil)

	select {
	case <-ch:
		t.Fatal("timeline delivered before the adapter completed")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	tl := <-ch
	assert.Equal(t, "Connection Error", tl.Entries[0].Title)
}

func TestTimelineConcurrentInvocationsAreIndependent(t *testing.T) {
	img := model.Image{Name: "img"}
	p := newTestProvider(FetchAdapterFunc(func(ctx context.Context) model.FetchOutcome {
		if ctx.Value(failKey{}) != nil {
			return model.Failure("boom")
		}
		return model.Success(img, "ok", "fine")
	}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ctx := context.Background()
			shouldFail := i%2 == 0
			if shouldFail {
				ctx = context.WithValue(ctx, failKey{}, true)
			}
			intent := model.Intent{model.ShowTextKey: i%3 == 0}
			tl := p.Timeline(ctx, intent)

			if shouldFail {
				assert.Equal(t, "Connection Error", tl.Entries[0].Title)
				assert.True(t, tl.Entries[0].ShowCaption)
				assert.Equal(t, model.After(15*time.Minute), tl.Policy)
			} else {
				assert.Equal(t, "ok", tl.Entries[0].Title)
				assert.Equal(t, i%3 == 0, tl.Entries[0].ShowCaption)
				assert.Equal(t, model.After(5*time.Minute), tl.Policy)
			}
		}(i)
	}
	wg.Wait()
}

type failKey struct{}

func TestWithContentOverridesAssets(t *testing.T) {
	content := DefaultContent{
		Placeholder:       model.Image{Name: "custom-placeholder"},
		Error:             model.Image{Name: "custom-error"},
		SampleTitle:       "Preview",
		SampleExplanation: "Preview explanation",
	}
	p := NewProvider(&countingAdapter{outcome: model.Failure("x")}, WithContent(content))

	assert.Equal(t, "custom-placeholder", p.Placeholder().Image.Name)
	assert.Equal(t, "Preview", p.Snapshot(nil).Title)
	assert.Equal(t, "custom-error", p.Timeline(context.Background(), nil).Entries[0].Image.Name)
}
