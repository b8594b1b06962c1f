package model

import "github.com/pkg/errors"

// ErrKeyNotFound is returned when the history has no entry for a key
var ErrKeyNotFound = errors.New("key not found in history")

// History remembers the generation at which each board key first appeared.
// Entries are never overwritten or removed.
type History struct {
	generations map[string]int
}

// NewHistory returns an empty history
func NewHistory() *History {
	return &History{generations: make(map[string]int)}
}

// Contains reports whether the key has been recorded
func (h *History) Contains(key string) bool {
	_, ok := h.generations[key]
	return ok
}

// RecordIfAbsent stores key at generation unless it was already recorded.
// It reports whether an entry was added.
func (h *History) RecordIfAbsent(key string, generation int) bool {
	if h.Contains(key) {
		return false
	}
	h.generations[key] = generation
	return true
}

// FirstSeenAt returns the generation at which key was first recorded
func (h *History) FirstSeenAt(key string) (int, error) {
	gen, ok := h.generations[key]
	if !ok {
		return 0, errors.Wrapf(ErrKeyNotFound, "[FirstSeenAt] key %q", key)
	}
	return gen, nil
}

// Len returns the number of distinct keys recorded
func (h *History) Len() int {
	return len(h.generations)
}
