package storage

import (
	"sync"
)

// addressLocks serializes writers per address. Entries are dropped once no writer holds them.
type addressLocks struct {
	mu    sync.Mutex
	locks map[string]*addressLock
}

type addressLock struct {
	sync.Mutex
	refs int
}

func newAddressLocks() *addressLocks {
	return &addressLocks{locks: make(map[string]*addressLock)}
}

func (l *addressLocks) lock(address string) (unlock func()) {
	l.mu.Lock()
	entry, ok := l.locks[address]
	if !ok {
		entry = &addressLock{}
		l.locks[address] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.Lock()
	return func() {
		entry.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, address)
		}
		l.mu.Unlock()
	}
}

func (l *addressLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
