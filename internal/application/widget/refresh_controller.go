package widget

import (
	"sync"
	"time"

	"github.com/penwyp/go-apod-widget/internal/core/model"
	"github.com/penwyp/go-apod-widget/internal/util"
)

// RefreshController decides when the next timeline is requested. A reload
// policy is a minimum delay: the controller never asks earlier than the
// policy allows unless a reload is explicitly requested.
type RefreshController struct {
	mu        sync.Mutex
	next      time.Time
	scheduled bool
	inFlight  bool
	requested bool
}

func NewRefreshController() *RefreshController {
	return &RefreshController{}
}

// Schedule sets the next reload from a policy applied at from
func (rc *RefreshController) Schedule(policy model.ReloadPolicy, from time.Time) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.scheduleLocked(policy, from)
}

func (rc *RefreshController) scheduleLocked(policy model.ReloadPolicy, from time.Time) {
	rc.next, rc.scheduled = policy.NextReload(from)
	if rc.scheduled {
		util.LogDebugf("Next timeline reload at %s (%s)", rc.next.Format(time.RFC3339), policy)
	} else {
		util.LogDebug("Automatic timeline reloads disabled")
	}
}

// RequestNow asks for a reload as soon as no request is in flight
func (rc *RefreshController) RequestNow() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.requested = true
}

// Due reports whether a reload should start at now. Paused widgets only
// reload on explicit request.
func (rc *RefreshController) Due(now time.Time, paused bool) bool {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.inFlight {
		return false
	}
	if rc.requested {
		return true
	}
	return !paused && rc.scheduled && !now.Before(rc.next)
}

// Begin marks a request as in flight. It returns false when one already is.
func (rc *RefreshController) Begin() bool {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.inFlight {
		return false
	}
	rc.inFlight = true
	rc.requested = false
	return true
}

// Complete records a delivered timeline and schedules the next reload
func (rc *RefreshController) Complete(policy model.ReloadPolicy, at time.Time) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.inFlight = false
	rc.scheduleLocked(policy, at)
}

// NextReload returns the scheduled reload instant, if any
func (rc *RefreshController) NextReload() (time.Time, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.next, rc.scheduled
}

// InFlight reports whether a request is outstanding
func (rc *RefreshController) InFlight() bool {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.inFlight
}
