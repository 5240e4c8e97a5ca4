// Package storage defines the content directory abstraction.
package storage

import "github.com/lunde/raido/internal/models"

// Provider is the interface for reading the post content directory.
// The collection is authored externally; Raido never writes to it.
type Provider interface {
	// List returns metadata for every .md file under dir (relative to
	// the content root).
	List(dir string) ([]models.PostMetadata, error)
	// Read returns the raw bytes of the file at path (relative to the
	// content root).
	Read(path string) ([]byte, error)
}
