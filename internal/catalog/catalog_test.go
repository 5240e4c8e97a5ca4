package catalog

import (
	"os"
	"testing"
	"time"

	"github.com/lunde/raido/internal/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	f, err := os.CreateTemp("", "raido-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := Open(f.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func samplePost(id string) models.Post {
	return models.Post{
		ID:          id,
		Title:       "Title " + id,
		Description: "Description " + id,
		PublishedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Tags:        []string{"go", "web"},
		HeroImage:   "/images/" + id + ".png",
		ReadingTime: "2 min read",
	}
}

func TestUpsertAndAllPosts(t *testing.T) {
	db := testDB(t)
	row := PostRow{Path: "hello.md", Checksum: "abc123", Post: samplePost("hello")}
	if err := db.UpsertPost(row); err != nil {
		t.Fatalf("UpsertPost: %v", err)
	}

	posts, err := db.AllPosts()
	if err != nil {
		t.Fatalf("AllPosts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("len = %d, want 1", len(posts))
	}
	got := posts[0]
	if got.ID != "hello" || got.Title != "Title hello" {
		t.Errorf("post = %+v", got)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "go" {
		t.Errorf("tags = %v", got.Tags)
	}
	if got.HeroImage != "/images/hello.png" {
		t.Errorf("heroImage = %v", got.HeroImage)
	}
	if !got.PublishedAt.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("published = %v", got.PublishedAt)
	}
}

func TestAllPosts_OrderedByPath(t *testing.T) {
	db := testDB(t)
	for _, p := range []string{"c.md", "a.md", "b.md"} {
		if err := db.UpsertPost(PostRow{Path: p, Checksum: "1", Post: samplePost(p)}); err != nil {
			t.Fatal(err)
		}
	}
	posts, err := db.AllPosts()
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 3 || posts[0].ID != "a.md" || posts[1].ID != "b.md" || posts[2].ID != "c.md" {
		t.Errorf("order = %v %v %v", posts[0].ID, posts[1].ID, posts[2].ID)
	}
}

func TestUpsertUpdatesExisting(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertPost(PostRow{Path: "up.md", Checksum: "1", Post: samplePost("up")})

	updated := samplePost("up")
	updated.Title = "New Title"
	_ = db.UpsertPost(PostRow{Path: "up.md", Checksum: "2", Post: updated})

	cs, _ := db.GetChecksum("up.md")
	if cs != "2" {
		t.Errorf("checksum = %q, want 2", cs)
	}
	posts, _ := db.AllPosts()
	if len(posts) != 1 || posts[0].Title != "New Title" {
		t.Errorf("posts = %+v", posts)
	}
}

func TestDeletePost(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertPost(PostRow{Path: "del.md", Checksum: "x", Post: samplePost("del")})

	if err := db.DeletePost("del.md"); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	cs, _ := db.GetChecksum("del.md")
	if cs != "" {
		t.Errorf("deleted post still has checksum %q", cs)
	}
}

func TestGetChecksum_NotFound(t *testing.T) {
	db := testDB(t)
	cs, err := db.GetChecksum("nonexistent.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cs != "" {
		t.Errorf("expected empty checksum, got %q", cs)
	}
}

func TestAllChecksums(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertPost(PostRow{Path: "a.md", Checksum: "1", Post: samplePost("a")})
	_ = db.UpsertPost(PostRow{Path: "b.md", Checksum: "2", Post: samplePost("b")})

	cs, err := db.AllChecksums()
	if err != nil {
		t.Fatal(err)
	}
	if len(cs) != 2 || cs["a.md"] != "1" || cs["b.md"] != "2" {
		t.Errorf("checksums = %v", cs)
	}
}
