package fetch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/penwyp/go-apod-widget/internal/core/model"
	"github.com/stretchr/testify/assert"
)

type panicSource struct{}

func (panicSource) FetchPicture(ctx context.Context) (Picture, error) { panic("boom") }
func (panicSource) GetSourceName() string { return "panic" }

// deadlineSource waits for ctx and reports whether a deadline was set
type deadlineSource struct {
	sawDeadline bool
}

func (s *deadlineSource) FetchPicture(ctx context.Context) (Picture, error) {
	_, s.sawDeadline = ctx.Deadline()
	<-ctx.Done()
	return Picture{}, ctx.Err()
}

func (s *deadlineSource) GetSourceName() string { return "slow" }

func TestAdapter_Fetch(t *testing.T) {
	tests := []struct {
		name       string
		source     Source
		wantKind   model.OutcomeKind
		wantTitle  string
		wantReason string
	}{
		{
			name:      "success",
			source:    &stubSource{name: "stub", pic: StaticPicture()},
			wantKind:  model.OutcomeSuccess,
			wantTitle: "Pillars of Creation",
		},
		{
			name:       "error",
			source:     &stubSource{name: "stub", err: errors.New("dns failure")},
			wantKind:   model.OutcomeFailure,
			wantReason: "dns failure",
		},
		{
			name:       "panic",
			source:     panicSource{},
			wantKind:   model.OutcomeFailure,
			wantReason: "source panic: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := NewAdapter(tt.source, 0).Fetch(context.Background())
			assert.Equal(t, tt.wantKind, outcome.Kind)
			assert.Equal(t, tt.wantTitle, outcome.Title)
			assert.Equal(t, tt.wantReason, outcome.Reason)
		})
	}
}

func TestAdapter_SuccessCarriesImage(t *testing.T) {
	pic := StaticPicture()
	outcome := NewAdapter(NewStaticSource(), 0).Fetch(context.Background())

	assert.True(t, outcome.IsSuccess())
	assert.Equal(t, pic.Image, outcome.Image)
	assert.Equal(t, pic.Explanation, outcome.Explanation)
}

func TestAdapter_Timeout(t *testing.T) {
	source := &deadlineSource{}
	start := time.Now()
	outcome := NewAdapter(source, 20*time.Millisecond).Fetch(context.Background())

	assert.True(t, source.sawDeadline)
	assert.False(t, outcome.IsSuccess())
	assert.Contains(t, outcome.Reason, context.DeadlineExceeded.Error())
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestAdapter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome := NewAdapter(NewStaticSource(), 0).Fetch(ctx)
	assert.Equal(t, model.OutcomeFailure, outcome.Kind)
}
