package service

import "sync"

// ActivityLock serializes read-modify-write cycles per activity id so that
// concurrent registration toggles and attendance confirmations against the
// same activity never interleave into a lost update. Readers do not take
// the lock: repository writes replace the whole record atomically, so a
// concurrent read sees either the old or the new snapshot.
type ActivityLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewActivityLock creates an empty keyed lock.
func NewActivityLock() *ActivityLock {
	return &ActivityLock{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for the given activity id and returns the
// matching unlock function.
func (l *ActivityLock) Lock(activityID string) func() {
	l.mu.Lock()
	m, ok := l.locks[activityID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[activityID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
