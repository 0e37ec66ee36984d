package store

import "go.trai.ch/cradle/internal/core/domain"

// DerivedKey names one kind of value computed from an artifact. Each
// caller declares its own key constant; two distinct keys never collide
// on the same entry.
type DerivedKey string

// GetOrCompute returns the derived value stored under tag for path's
// current entry, computing it with producer on a miss. The producer runs
// outside the store lock, so two racing callers may both compute; the
// producer must be idempotent and the later write wins. The write-back is
// skipped when the entry was replaced or the file changed while the
// producer ran, but the computed value is still returned.
//
// It reports false when path has no successful entry to derive from.
func (s *ArtifactStore) GetOrCompute(path string, tag DerivedKey, producer func(*domain.Artifact) any) (any, bool) {
	key := s.key(path)

	s.mu.Lock()
	entry := s.entries[key]
	if entry == nil || entry.State != StateSuccess {
		s.mu.Unlock()
		return nil, false
	}
	if value, ok := entry.derived[tag]; ok {
		s.mu.Unlock()
		return value, true
	}
	artifact := entry.Artifact
	s.mu.Unlock()

	value := producer(artifact)

	// Hash outside the lock; the identity re-check inside catches an
	// entry replaced while the producer or the hash ran.
	unchanged := s.fresh(key, entry)

	s.mu.Lock()
	if unchanged && s.entries[key] == entry {
		entry.derived[tag] = value
	}
	s.mu.Unlock()

	return value, true
}

// Derived is a typed view over one derived-data key.
type Derived[T any] struct {
	tag DerivedKey
}

// NewDerived declares a typed accessor for tag. Every user of the same
// tag must use the same T; the tag, not the type, is the cache key.
func NewDerived[T any](tag DerivedKey) Derived[T] {
	return Derived[T]{tag: tag}
}

// GetOrCompute is the typed counterpart of ArtifactStore.GetOrCompute.
func (d Derived[T]) GetOrCompute(s *ArtifactStore, path string, producer func(*domain.Artifact) T) (T, bool) {
	value, ok := s.GetOrCompute(path, d.tag, func(artifact *domain.Artifact) any {
		return producer(artifact)
	})
	if !ok {
		var zero T
		return zero, false
	}
	return value.(T), true
}
