package utils

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSplitTags(t *testing.T) {
	got := SplitTags("  A, B ,,C  ")
	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSplitTagsEmptyInput(t *testing.T) {
	got := SplitTags("")
	if len(got) != 0 {
		t.Fatalf("expected no tags, got %v", got)
	}
	got = SplitTags(" , , ")
	if len(got) != 0 {
		t.Fatalf("expected no tags, got %v", got)
	}
}

func TestTagListDecodesBothShapes(t *testing.T) {
	want := TagList{"A", "B", "C"}

	var fromString TagList
	if err := json.Unmarshal([]byte(`"  A, B ,,C  "`), &fromString); err != nil {
		t.Fatalf("decode string form: %v", err)
	}
	if !reflect.DeepEqual(fromString, want) {
		t.Fatalf("expected %v, got %v", want, fromString)
	}

	var fromArray TagList
	if err := json.Unmarshal([]byte(`["  A", " B ", "", "C  "]`), &fromArray); err != nil {
		t.Fatalf("decode array form: %v", err)
	}
	if !reflect.DeepEqual(fromArray, want) {
		t.Fatalf("expected %v, got %v", want, fromArray)
	}
}

func TestJoinTags(t *testing.T) {
	if got := JoinTags([]string{"Video", "Lip-sync"}); got != "Video, Lip-sync" {
		t.Fatalf("unexpected join: %q", got)
	}
}

func TestSlugify(t *testing.T) {
	if got := Slugify("Khoá Học AI & Video"); got == "" || got != Slugify(Slugify("Khoá Học AI & Video")) {
		t.Fatalf("slug not stable: %q", got)
	}
	if got := Slugify("Articles / 2026"); got != "articles-2026" {
		t.Fatalf("unexpected slug: %q", got)
	}
}
