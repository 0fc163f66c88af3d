package tally

import (
	"sync"
)

// Latest holds the most recent view. Views issued before the held one are ignored.
type Latest struct {
	view View
	lock sync.RWMutex
}

// NewLatest returns a holder of the empty view
func NewLatest() *Latest {
	return &Latest{view: Empty()}
}

// Get returns the held view
func (l *Latest) Get() View {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.view.Clone()
}

// Set replaces the held view if the given one was issued later, and reports whether it did
func (l *Latest) Set(view View) bool {
	l.lock.Lock()
	defer l.lock.Unlock()

	if view.AsOf <= l.view.AsOf {
		return false
	}

	l.view = view.Clone()
	return true
}

// Reset goes back to the empty view without rewinding the ordering, so views still in flight stay stale
func (l *Latest) Reset() {
	l.lock.Lock()
	defer l.lock.Unlock()

	asOf := l.view.AsOf
	l.view = Empty()
	l.view.AsOf = asOf
}
