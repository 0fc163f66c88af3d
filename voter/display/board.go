package display

import (
	"sync"

	"github.com/axelarnetwork/fhevote/voter/session"
)

// Board keeps the most recent snapshot it was shown
type Board struct {
	lock     sync.RWMutex
	snapshot session.Snapshot
}

// NewBoard returns a board showing the given snapshot
func NewBoard(initial session.Snapshot) *Board {
	return &Board{snapshot: initial}
}

// Observe replaces the shown snapshot unless it is newer than s
func (b *Board) Observe(s session.Snapshot) {
	b.lock.Lock()
	defer b.lock.Unlock()

	if s.Seq < b.snapshot.Seq {
		return
	}

	b.snapshot = s
}

// Latest returns the shown snapshot
func (b *Board) Latest() session.Snapshot {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return b.snapshot
}
