package catalog

import (
	"log/slog"
	"strings"

	"github.com/lunde/raido/internal/models"
	"github.com/lunde/raido/internal/parser"
	"github.com/lunde/raido/internal/storage"
)

// Sync walks the content directory and brings the catalog up to date:
//   - new/changed files are parsed and upserted
//   - files removed from disk are deleted from the catalog
func Sync(db *DB, store storage.Provider, logger *slog.Logger) error {
	metas, err := store.List("")
	if err != nil {
		return err
	}

	checksums, err := db.AllChecksums()
	if err != nil {
		return err
	}

	disk := make(map[string]struct{}, len(metas))
	for _, m := range metas {
		disk[m.Path] = struct{}{}

		if checksums[m.Path] == m.Checksum {
			continue
		}

		data, err := store.Read(m.Path)
		if err != nil {
			logger.Warn("sync: read failed", slog.String("path", m.Path), slog.String("error", err.Error()))
			continue
		}
		if err := catalogFile(db, m.Path, data); err != nil {
			logger.Warn("sync: catalog failed", slog.String("path", m.Path), slog.String("error", err.Error()))
		} else {
			logger.Debug("sync: catalogued", slog.String("path", m.Path))
		}
	}

	// Remove stale entries.
	for p := range checksums {
		if _, ok := disk[p]; !ok {
			if err := db.DeletePost(p); err != nil {
				logger.Warn("sync: delete failed", slog.String("path", p), slog.String("error", err.Error()))
			} else {
				logger.Debug("sync: removed stale", slog.String("path", p))
			}
		}
	}

	return nil
}

// catalogFile parses data and upserts it into the catalog.
func catalogFile(db *DB, path string, data []byte) error {
	post, err := postFromFile(path, data)
	if err != nil {
		return err
	}
	return db.UpsertPost(PostRow{
		Path:     path,
		Checksum: storage.Checksum(data),
		Post:     post,
	})
}

// postFromFile builds the domain record for one content file. The post ID
// is the file path without the .md extension, which is unique within the
// content directory.
func postFromFile(path string, data []byte) (models.Post, error) {
	res, err := parser.Parse(data)
	if err != nil {
		return models.Post{}, err
	}
	return models.Post{
		ID:          strings.TrimSuffix(path, ".md"),
		Title:       res.Title,
		Description: res.Description,
		PublishedAt: res.PublishedAt,
		Tags:        res.Tags,
		HeroImage:   res.HeroImage,
		ReadingTime: res.ReadingTime,
	}, nil
}
