// Package keylock serializes work per key, e.g. all mutations of one account.
package keylock

import (
	"context"
	"sort"
	"sync"
)

// Locker acquires every key or none. The returned func releases them.
type Locker interface {
	Lock(ctx context.Context, keys ...string) (func(), error)
}

// Run calls fn while holding keys. The keys are released before Run returns.
func Run(ctx context.Context, l Locker, fn func() error, keys ...string) error {
	unlock, err := l.Lock(ctx, keys...)
	if err != nil {
		return err
	}
	defer unlock()
	return fn()
}

type entry struct {
	ch   chan struct{}
	refs int
}

// Local is an in-process Locker. Entries are dropped once nobody waits on them.
type Local struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func NewLocal() *Local {
	return &Local{entries: make(map[string]*entry)}
}

func (l *Local) Lock(ctx context.Context, keys ...string) (func(), error) {
	keys = normalize(keys)
	acquired := make([]string, 0, len(keys))

	for _, key := range keys {
		if err := l.acquire(ctx, key); err != nil {
			l.release(acquired)
			return nil, err
		}
		acquired = append(acquired, key)
	}

	var once sync.Once
	return func() {
		once.Do(func() { l.release(acquired) })
	}, nil
}

func (l *Local) acquire(ctx context.Context, key string) error {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		l.unref(key, e)
		return ctx.Err()
	}
}

func (l *Local) release(keys []string) {
	for i := len(keys) - 1; i >= 0; i-- {
		l.mu.Lock()
		e := l.entries[keys[i]]
		l.mu.Unlock()
		<-e.ch
		l.unref(keys[i], e)
	}
}

func (l *Local) unref(key string, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}

// normalize sorts and de-duplicates keys so that two callers locking the
// same set never wait on each other in opposite order.
func normalize(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
