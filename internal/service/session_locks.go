package service

import "sync"

// sessionLocks serializes answer commits per evaluation token. Concurrent
// submissions for the same session (duplicate retries, multiple tabs) take
// the same mutex, so they cannot both advance progress for one question or
// race past the completion boundary. Different sessions never contend.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *sessionLocks) get(token string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[token]
	if !ok {
		m = &sync.Mutex{}
		l.locks[token] = m
	}
	return m
}
