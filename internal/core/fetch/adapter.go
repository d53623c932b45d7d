package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/penwyp/go-apod-widget/internal/core/model"
	"github.com/penwyp/go-apod-widget/internal/util"
)

// Adapter turns a Source into a timeline fetch adapter. Every call returns
// exactly one outcome; errors and panics are normalised into failures.
type Adapter struct {
	source  Source
	timeout time.Duration
}

// NewAdapter creates an adapter. A timeout of zero leaves the deadline to ctx.
func NewAdapter(source Source, timeout time.Duration) *Adapter {
	return &Adapter{
		source:  source,
		timeout: timeout,
	}
}

// Fetch performs one retrieval
func (a *Adapter) Fetch(ctx context.Context) (outcome model.FetchOutcome) {
	defer func() {
		if r := recover(); r != nil {
			util.LogErrorf("Picture source %s panicked: %v", a.source.GetSourceName(), r)
			outcome = model.Failure(fmt.Sprintf("source panic: %v", r))
		}
	}()

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	pic, err := a.source.FetchPicture(ctx)
	if err != nil {
		util.LogWarnf("Fetch from %s failed after %s: %v", a.source.GetSourceName(), time.Since(start).Round(time.Millisecond), err)
		return model.Failure(err.Error())
	}

	util.LogInfof("Fetched %q from %s in %s", pic.Title, a.source.GetSourceName(), time.Since(start).Round(time.Millisecond))
	return model.Success(pic.Image, pic.Title, pic.Explanation)
}
