package model

import "time"

// Timeline is an ordered set of entries plus the reload policy the host
// should follow once they are delivered
type Timeline struct {
	Entries []Entry      `json:"entries"`
	Policy  ReloadPolicy `json:"policy"`
}

// EntryAt returns the entry that should be on screen at the given time: the
// latest one whose timestamp is not after now, or the first entry when all of
// them lie in the future. ok is false for an empty timeline.
func (t Timeline) EntryAt(now time.Time) (Entry, bool) {
	if len(t.Entries) == 0 {
		return Entry{}, false
	}
	current := t.Entries[0]
	for _, e := range t.Entries[1:] {
		if e.Timestamp.After(now) {
			break
		}
		current = e
	}
	return current, true
}
