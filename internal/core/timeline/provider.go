package timeline

import (
	"context"
	"time"

	"github.com/penwyp/go-apod-widget/internal/core/constants"
	"github.com/penwyp/go-apod-widget/internal/core/model"
	"github.com/penwyp/go-apod-widget/internal/util"
)

// FetchAdapter performs one data retrieval. Implementations return exactly
// one outcome per call and never panic; failures are reported as
// model.Failure values.
type FetchAdapter interface {
	Fetch(ctx context.Context) model.FetchOutcome
}

// FetchAdapterFunc adapts a plain function to FetchAdapter
type FetchAdapterFunc func(ctx context.Context) model.FetchOutcome

// Fetch calls f(ctx)
func (f FetchAdapterFunc) Fetch(ctx context.Context) model.FetchOutcome {
	return f(ctx)
}

// fetchState tracks one timeline invocation; it is never stored on the provider
type fetchState int

const (
	stateIdle fetchState = iota
	stateFetching
	stateResolvedSuccess
	stateResolvedFailure
	stateCompleted
)

func (s fetchState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateFetching:
		return "fetching"
	case stateResolvedSuccess:
		return "resolved(success)"
	case stateResolvedFailure:
		return "resolved(failure)"
	case stateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Provider converts fetch attempts into timelines. It holds only immutable
// configuration, so concurrent calls are independent.
type Provider struct {
	adapter FetchAdapter
	content DefaultContent
	now     func() time.Time

	successInterval time.Duration
	failureInterval time.Duration
}

// Option customises a Provider
type Option func(*Provider)

// WithClock overrides the time source used to stamp entries
func WithClock(now func() time.Time) Option {
	return func(p *Provider) {
		if now != nil {
			p.now = now
		}
	}
}

// WithContent overrides the bundled placeholder and error assets
func WithContent(content DefaultContent) Option {
	return func(p *Provider) {
		p.content = content
	}
}

// NewProvider creates a provider backed by the given adapter
func NewProvider(adapter FetchAdapter, opts ...Option) *Provider {
	p := &Provider{
		adapter:         adapter,
		content:         BundledContent(),
		now:             time.Now,
		successInterval: constants.SuccessReloadInterval,
		failureInterval: constants.FailureReloadInterval,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Placeholder returns the fixed entry shown during initial load. It performs
// no I/O and cannot fail.
func (p *Provider) Placeholder() model.Entry {
	return model.NewEntry(p.now(), p.content.Placeholder,
		p.content.SampleTitle, p.content.SampleExplanation, true)
}

// Snapshot returns a quick preview entry built from the placeholder assets,
// honouring the caption toggle in intent
func (p *Provider) Snapshot(intent model.Intent) model.Entry {
	return model.NewEntry(p.now(), p.content.Placeholder,
		p.content.SampleTitle, p.content.SampleExplanation, intent.ShouldShowText())
}

// Timeline performs exactly one fetch and maps its outcome to a single-entry
// timeline plus reload policy. Failures are absorbed into an error entry.
func (p *Provider) Timeline(ctx context.Context, intent model.Intent) model.Timeline {
	state := stateIdle
	transition := func(next fetchState) {
		util.LogDebugf("timeline: %s -> %s", state, next)
		state = next
	}

	transition(stateFetching)
	outcome := p.adapter.Fetch(ctx)

	var entry model.Entry
	var policy model.ReloadPolicy
	if outcome.IsSuccess() {
		transition(stateResolvedSuccess)
		entry = model.NewEntry(p.now(), outcome.Image, outcome.Title, outcome.Explanation, intent.ShouldShowText())
		policy = model.After(p.successInterval)
	} else {
		transition(stateResolvedFailure)
		util.LogInfof("Fetch failed (%s), showing error entry", outcome.Reason)
		// Errors are always captioned so the failure stays visible
		entry = model.NewEntry(p.now(), p.content.Error, constants.ConnectionErrorTitle, "", true)
		policy = model.After(p.failureInterval)
	}
	transition(stateCompleted)

	return model.Timeline{
		Entries: []model.Entry{entry},
		Policy:  policy,
	}
}

// TimelineAsync runs Timeline on its own goroutine. The returned channel
// receives exactly one timeline and is then closed.
func (p *Provider) TimelineAsync(ctx context.Context, intent model.Intent) <-chan model.Timeline {
	result := make(chan model.Timeline, 1)
	go func() {
		defer close(result)
		result <- p.Timeline(ctx, intent)
	}()
	return result
}
