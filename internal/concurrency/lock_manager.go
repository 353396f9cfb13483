package concurrency

import (
	"context"
	"sync"
)

// LockManager hands out one lock per key. Entries are reference counted and
// dropped once nobody holds or waits on them, so the map does not grow with
// every user ever seen.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	ch   chan struct{}
	refs int
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyLock)}
}

// Lock blocks until the lock for key is held or ctx is done. The returned
// func releases the lock and must be called exactly once.
func (lm *LockManager) Lock(ctx context.Context, key string) (func(), error) {
	lm.mu.Lock()
	kl, ok := lm.locks[key]
	if !ok {
		kl = &keyLock{ch: make(chan struct{}, 1)}
		lm.locks[key] = kl
	}
	kl.refs++
	lm.mu.Unlock()

	select {
	case kl.ch <- struct{}{}:
	case <-ctx.Done():
		lm.release(key, kl)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-kl.ch
			lm.release(key, kl)
		})
	}, nil
}

func (lm *LockManager) release(key string, kl *keyLock) {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	kl.refs--
	if kl.refs == 0 {
		delete(lm.locks, key)
	}
}

// Len reports how many keys currently have holders or waiters
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
