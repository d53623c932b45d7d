package model

import (
	"fmt"
	"time"
)

// PolicyKind tags a ReloadPolicy
type PolicyKind int

const (
	// PolicyAfter asks the host to reload once a duration has elapsed
	PolicyAfter PolicyKind = iota
	// PolicyNever disables automatic reloads
	PolicyNever
)

// ReloadPolicy tells the host scheduler when to request the next timeline.
// It is advisory: hosts treat the duration as a minimum delay.
type ReloadPolicy struct {
	Kind     PolicyKind    `json:"kind"`
	Duration time.Duration `json:"duration"`
}

// After returns a policy that reloads once d has elapsed
func After(d time.Duration) ReloadPolicy {
	if d < 0 {
		d = 0
	}
	return ReloadPolicy{Kind: PolicyAfter, Duration: d}
}

// Never returns a policy that never reloads automatically
func Never() ReloadPolicy {
	return ReloadPolicy{Kind: PolicyNever}
}

// NextReload returns the earliest instant a reload may happen, counted from
// the given time. The boolean is false for PolicyNever.
func (p ReloadPolicy) NextReload(from time.Time) (time.Time, bool) {
	if p.Kind == PolicyNever {
		return time.Time{}, false
	}
	return from.Add(p.Duration), true
}

func (p ReloadPolicy) String() string {
	if p.Kind == PolicyNever {
		return "never"
	}
	return fmt.Sprintf("after(%s)", p.Duration)
}
