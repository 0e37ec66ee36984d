package ports

import "go.trai.ch/cradle/internal/core/domain"

// Hasher computes content hashes used as freshness tokens.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashFile computes the content hash of the file's current bytes.
	HashFile(path string) (domain.ContentHash, error)
}
