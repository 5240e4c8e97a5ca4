package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/lunde/raido/internal/models"
)

// PostRow is a catalog entry: a parsed post plus the content-file
// bookkeeping needed for sync.
type PostRow struct {
	Path     string
	Checksum string
	Post     models.Post
}

// UpsertPost inserts or replaces a catalog entry.
func (db *DB) UpsertPost(row PostRow) error {
	tagsJSON, _ := json.Marshal(row.Post.Tags)
	heroJSON, _ := json.Marshal(row.Post.HeroImage)

	_, err := db.conn.Exec(`
		INSERT INTO posts (path, id, title, description, published_at, tags, hero_image, reading_time, checksum, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(path) DO UPDATE SET
			id           = excluded.id,
			title        = excluded.title,
			description  = excluded.description,
			published_at = excluded.published_at,
			tags         = excluded.tags,
			hero_image   = excluded.hero_image,
			reading_time = excluded.reading_time,
			checksum     = excluded.checksum,
			updated_at   = CURRENT_TIMESTAMP
	`, row.Path, row.Post.ID, row.Post.Title, row.Post.Description, row.Post.PublishedAt,
		string(tagsJSON), string(heroJSON), row.Post.ReadingTime, row.Checksum)
	if err != nil {
		return fmt.Errorf("catalog: upsert post: %w", err)
	}
	return nil
}

// DeletePost removes a catalog entry.
func (db *DB) DeletePost(path string) error {
	if _, err := db.conn.Exec(`DELETE FROM posts WHERE path = ?`, path); err != nil {
		return fmt.Errorf("catalog: delete post: %w", err)
	}
	return nil
}

// GetChecksum returns the stored checksum for a post, or empty string if
// not catalogued.
func (db *DB) GetChecksum(path string) (string, error) {
	var cs string
	err := db.conn.QueryRow(`SELECT checksum FROM posts WHERE path = ?`, path).Scan(&cs)
	if err != nil {
		return "", nil // not found is fine
	}
	return cs, nil
}

// AllChecksums returns path → checksum for every catalogued post.
func (db *DB) AllChecksums() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT path, checksum FROM posts`)
	if err != nil {
		return nil, fmt.Errorf("catalog: all checksums: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var p, cs string
		if err := rows.Scan(&p, &cs); err != nil {
			return nil, err
		}
		out[p] = cs
	}
	return out, rows.Err()
}

// AllPosts loads the whole collection, ordered by path so repeated loads
// produce the same collection order (the engine's stability baseline).
func (db *DB) AllPosts() ([]models.Post, error) {
	rows, err := db.conn.Query(`
		SELECT id, title, description, published_at, tags, hero_image, reading_time
		FROM posts
		ORDER BY path
	`)
	if err != nil {
		return nil, fmt.Errorf("catalog: all posts: %w", err)
	}
	defer rows.Close()

	var out []models.Post
	for rows.Next() {
		var p models.Post
		var tagsJSON, heroJSON string
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.PublishedAt, &tagsJSON, &heroJSON, &p.ReadingTime); err != nil {
			return nil, err
		}
		if tagsJSON != "" {
			_ = json.Unmarshal([]byte(tagsJSON), &p.Tags)
		}
		if heroJSON != "" && heroJSON != "null" {
			_ = json.Unmarshal([]byte(heroJSON), &p.HeroImage)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
