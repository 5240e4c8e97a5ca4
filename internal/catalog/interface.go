package catalog

import "github.com/lunde/raido/internal/models"

// PostCatalog defines the interface for catalog operations. Consumers
// should depend on this interface rather than the concrete *DB type to
// facilitate testing with mocks.
type PostCatalog interface {
	UpsertPost(row PostRow) error
	DeletePost(path string) error
	GetChecksum(path string) (string, error)
	AllChecksums() (map[string]string, error)
	AllPosts() ([]models.Post, error)
	Close() error
}

// Verify *DB satisfies PostCatalog at compile time.
var _ PostCatalog = (*DB)(nil)
