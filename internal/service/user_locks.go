package service

import (
	"sync"

	"github.com/google/uuid"
)

// userLocks hands out one mutex per user. Entries are dropped once nobody
// holds or waits for them.
type userLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func newUserLocks() *userLocks {
	return &userLocks{
		locks: make(map[uuid.UUID]*userLock),
	}
}

func (ul *userLocks) lock(uid uuid.UUID) func() {
	ul.mu.Lock()
	l, ok := ul.locks[uid]
	if !ok {
		l = &userLock{}
		ul.locks[uid] = l
	}
	l.refs++
	ul.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		ul.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(ul.locks, uid)
		}
		ul.mu.Unlock()
	}
}

func (ul *userLocks) size() int {
	ul.mu.Lock()
	defer ul.mu.Unlock()
	return len(ul.locks)
}
