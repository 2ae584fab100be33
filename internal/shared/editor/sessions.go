package editor

import "sync"

// Sessions keeps one editor per session key. Each editor is used under its own lock.
type Sessions[T any] struct {
	mu      sync.Mutex
	binding Binding[T]
	entries map[string]*session[T]
}

type session[T any] struct {
	mu     sync.Mutex
	editor *Editor[T]
}

func NewSessions[T any](binding Binding[T]) *Sessions[T] {
	return &Sessions[T]{binding: binding, entries: map[string]*session[T]{}}
}

// With runs fn with exclusive access to the editor of key, creating it on first use.
func (s *Sessions[T]) With(key string, fn func(*Editor[T]) error) error {
	s.mu.Lock()
	entry, ok := s.entries[key]
	if !ok {
		entry = &session[T]{editor: New(s.binding)}
		s.entries[key] = entry
	}
	s.mu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.editor)
}

// Drop forgets the editor of key.
func (s *Sessions[T]) Drop(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}
