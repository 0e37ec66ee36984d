// Package store maintains the process-wide cache of compiled artifacts.
package store

import (
	"path/filepath"
	"sync"

	"go.trai.ch/cradle/internal/core/domain"
	"go.trai.ch/cradle/internal/core/ports"
)

// State tags a cache entry as a successful or failed compile.
type State uint8

const (
	// StateSuccess holds an artifact with its freshness hash.
	StateSuccess State = iota
	// StateFailed records that the last compile failed without a prior
	// success for the path.
	StateFailed
)

// Entry is a cache slot for one canonical path. Entries are replaced as a
// whole, never mutated in place, so readers holding an Entry never observe
// a torn write.
type Entry struct {
	// State tags the entry.
	State State
	// Artifact is the compiled product. Nil for failed entries.
	Artifact *domain.Artifact
	// Hash is the content hash of the source file at store time.
	Hash domain.ContentHash

	derived map[DerivedKey]any
}

// Continuation is invoked with the entry that settled a deferred request.
type Continuation func(*Entry)

// ArtifactStore maps canonical file paths to compiled artifacts. Freshness
// is checked lazily on lookup against the file's current content hash;
// there is no background polling. Requests that arrive before an artifact
// exists can park a continuation that is delivered on the next Store or
// MarkFailed for the path.
type ArtifactStore struct {
	mu      sync.Mutex
	entries map[string]*Entry
	pending map[string][]Continuation

	resolver ports.PathResolver
	hasher   ports.Hasher
	logger   ports.Logger
}

// New creates an empty artifact store.
func New(resolver ports.PathResolver, hasher ports.Hasher, logger ports.Logger) *ArtifactStore {
	return &ArtifactStore{
		entries:  make(map[string]*Entry),
		pending:  make(map[string][]Continuation),
		resolver: resolver,
		hasher:   hasher,
		logger:   logger,
	}
}

// key canonicalizes path into the cache key. Canonicalization failures
// degrade to the cleaned path so cache operations themselves never fail.
func (s *ArtifactStore) key(path string) string {
	key, err := s.resolver.Canonicalize(path)
	if err != nil {
		s.logger.Warn("failed to canonicalize " + path + ", using it verbatim")
		return filepath.Clean(path)
	}
	return key
}

// fresh reports whether the entry is still servable. Failed entries carry
// no artifact and are always servable; success entries must match the
// file's current content hash.
func (s *ArtifactStore) fresh(key string, entry *Entry) bool {
	if entry.State == StateFailed {
		return true
	}
	hash, err := s.hasher.HashFile(key)
	if err != nil {
		return false
	}
	return hash == entry.Hash
}

// Lookup returns the entry for path if one exists and is not stale. A
// stale entry is reported as a miss but left in place; the caller decides
// whether to recompile or delete.
func (s *ArtifactStore) Lookup(path string) (*Entry, bool) {
	key := s.key(path)

	s.mu.Lock()
	entry := s.entries[key]
	s.mu.Unlock()

	if entry == nil || !s.fresh(key, entry) {
		return nil, false
	}
	return entry, true
}

// Store inserts or replaces the entry for path with a successful compile
// result, hashed against the file's current bytes, then delivers every
// queued continuation for the path in FIFO order. The old entry and its
// derived data are discarded as a unit.
func (s *ArtifactStore) Store(path string, artifact *domain.Artifact) {
	key := s.key(path)
	hash, err := s.hasher.HashFile(key)
	if err != nil {
		// The entry is still inserted so waiters settle; the mismatched
		// hash makes every subsequent lookup miss until a re-store.
		s.logger.Warn("failed to hash " + key + ", stored artifact will read as stale")
	}

	entry := &Entry{
		State:    StateSuccess,
		Artifact: artifact,
		Hash:     hash,
		derived:  make(map[DerivedKey]any),
	}

	s.mu.Lock()
	s.entries[key] = entry
	waiters := s.takeWaiters(key)
	s.mu.Unlock()

	deliver(waiters, entry)
}

// MarkFailed records a failed compile for path. An existing entry is left
// untouched so a transient failure never regresses a known-good artifact;
// queued continuations are delivered either way.
func (s *ArtifactStore) MarkFailed(path string) {
	key := s.key(path)

	s.mu.Lock()
	entry, ok := s.entries[key]
	if !ok {
		entry = &Entry{State: StateFailed}
		s.entries[key] = entry
	}
	waiters := s.takeWaiters(key)
	s.mu.Unlock()

	deliver(waiters, entry)
}

// Delete removes the entry for path. Pending continuations are kept; they
// settle on the next Store or MarkFailed.
func (s *ArtifactStore) Delete(path string) {
	key := s.key(path)

	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// AwaitOrDefer invokes cont immediately when a servable entry exists for
// path, and parks it on the path's queue otherwise. Freshness hashing
// happens outside the lock; a settlement that races the hash is caught
// by an entry identity re-check and the decision re-runs, so a
// continuation is never enqueued after its delivery already happened.
func (s *ArtifactStore) AwaitOrDefer(path string, cont Continuation) {
	key := s.key(path)

	for {
		s.mu.Lock()
		entry := s.entries[key]
		if entry == nil {
			s.pending[key] = append(s.pending[key], cont)
			s.mu.Unlock()
			return
		}
		if entry.State == StateFailed {
			s.mu.Unlock()
			cont(entry)
			return
		}
		s.mu.Unlock()

		servable := s.fresh(key, entry)

		s.mu.Lock()
		if s.entries[key] != entry {
			s.mu.Unlock()
			continue
		}
		if servable {
			s.mu.Unlock()
			cont(entry)
			return
		}
		s.pending[key] = append(s.pending[key], cont)
		s.mu.Unlock()
		return
	}
}

// Defer parks cont unconditionally. Continuations that find the delivered
// entry not yet usable re-register through this to wait for the next
// settlement.
func (s *ArtifactStore) Defer(path string, cont Continuation) {
	key := s.key(path)

	s.mu.Lock()
	s.pending[key] = append(s.pending[key], cont)
	s.mu.Unlock()
}

// takeWaiters snapshots and clears the queue for key. Caller holds mu.
func (s *ArtifactStore) takeWaiters(key string) []Continuation {
	waiters := s.pending[key]
	delete(s.pending, key)
	return waiters
}

// deliver runs the snapshotted continuations in FIFO order outside the
// store lock. A continuation may re-defer itself; the re-registration
// lands on a fresh queue and waits for the next settlement instead of
// being re-delivered here.
func deliver(waiters []Continuation, entry *Entry) {
	for _, cont := range waiters {
		cont(entry)
	}
}
