package query

import (
	"reflect"
	"sort"
	"testing"

	"github.com/lunde/raido/internal/models"
)

func TestVocabulary_DedupedAndSorted(t *testing.T) {
	posts := []models.Post{
		{ID: "1", Tags: []string{"zebra", "go"}},
		{ID: "2", Tags: []string{"go", "api"}},
		{ID: "3"}, // no tags
		{ID: "4", Tags: []string{"api"}},
	}
	got := Vocabulary(posts)
	want := []string{"api", "go", "zebra"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("vocabulary = %v, want %v", got, want)
	}
}

func TestVocabulary_EmptyCollection(t *testing.T) {
	got := Vocabulary(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("vocabulary = %#v, want empty non-nil slice", got)
	}
}

func TestVocabulary_AlwaysSorted(t *testing.T) {
	posts := []models.Post{
		{ID: "1", Tags: []string{"c", "a", "b"}},
		{ID: "2", Tags: []string{"b", "d"}},
	}
	got := Vocabulary(posts)
	if !sort.StringsAreSorted(got) {
		t.Errorf("vocabulary not sorted: %v", got)
	}
	seen := map[string]bool{}
	for _, tag := range got {
		if seen[tag] {
			t.Errorf("duplicate tag %q in %v", tag, got)
		}
		seen[tag] = true
	}
}
