package config

import "sync"

// lockedStore serialises every call to the wrapped Store.
type lockedStore struct {
	mu sync.Mutex
	s  Store
}

// Locked wraps s so that it can be shared between goroutines. Stores are
// not safe for concurrent use on their own.
func Locked(s Store) Store {
	if ls, ok := s.(*lockedStore); ok {
		return ls
	}
	return &lockedStore{s: s}
}

func (l *lockedStore) Path() string {
	return l.s.Path()
}

func (l *lockedStore) Load() (Source, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Load()
}

func (l *lockedStore) Get(key, def string) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Get(key, def)
}

func (l *lockedStore) Lookup(key string) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Lookup(key)
}

func (l *lockedStore) GetOrInsertDefault(key, def string) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.GetOrInsertDefault(key, def)
}

func (l *lockedStore) Put(key, value string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.Put(key, value)
}

func (l *lockedStore) Remove(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.Remove(key)
}

func (l *lockedStore) All() map[string]string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.All()
}

func (l *lockedStore) Save() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Save()
}
