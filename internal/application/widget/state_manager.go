package widget

import (
	"sync"
	"time"

	"github.com/penwyp/go-apod-widget/internal/core/model"
)

// How long a status message stays on the status line
const statusMessageTTL = 3 * time.Second

// StateManager manages widget state in a thread-safe manner
type StateManager struct {
	mu sync.RWMutex

	// Content state
	timeline    model.Timeline
	fallback    model.Entry // shown until the first timeline arrives
	hasTimeline bool
	intent      model.Intent

	// Loading state
	isLoading bool

	// Interaction state
	interactionState model.InteractionState
	statusSetAt      time.Time

	lastUpdate time.Time
}

func NewStateManager() *StateManager {
	return &StateManager{}
}

// SetFallback sets the entry shown while no timeline is available
func (sm *StateManager) SetFallback(entry model.Entry) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.fallback = entry
}

// SetTimeline stores a delivered timeline
func (sm *StateManager) SetTimeline(tl model.Timeline, at time.Time) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.timeline = tl
	sm.hasTimeline = len(tl.Entries) > 0
	sm.lastUpdate = at
}

// CurrentEntry returns the entry to display at now
func (sm *StateManager) CurrentEntry(now time.Time) model.Entry {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	if sm.hasTimeline {
		if entry, ok := sm.timeline.EntryAt(now); ok {
			return entry
		}
	}
	return sm.fallback
}

// Timeline returns the last delivered timeline
func (sm *StateManager) Timeline() (model.Timeline, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.timeline, sm.hasTimeline
}

func (sm *StateManager) LastUpdate() time.Time {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.lastUpdate
}

func (sm *StateManager) SetIntent(intent model.Intent) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.intent = intent
}

func (sm *StateManager) Intent() model.Intent {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.intent
}

func (sm *StateManager) SetLoading(loading bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.isLoading = loading
}

func (sm *StateManager) IsLoading() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.isLoading
}

// GetInteractionState returns a copy of the interaction state as of now,
// dropping a status message that has expired
func (sm *StateManager) GetInteractionState(now time.Time) model.InteractionState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	state := sm.interactionState
	if state.StatusMessage != "" && now.Sub(sm.statusSetAt) > statusMessageTTL {
		state.StatusMessage = ""
	}
	return state
}

// UpdateInteractionState updates the interaction state using a function
func (sm *StateManager) UpdateInteractionState(fn func(*model.InteractionState)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	fn(&sm.interactionState)
}

// SetStatus shows a transient message on the status line
func (sm *StateManager) SetStatus(message string, at time.Time) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.interactionState.StatusMessage = message
	sm.statusSetAt = at
}
