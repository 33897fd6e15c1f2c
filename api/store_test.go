package api

import (
	"strings"
	"testing"
)

func TestStore_ResolveRejectsTraversal(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	for _, name := range []string{"", "../x.png", "a/b.png", `a\b.png`, "..", "foo/../bar.png"} {
		if _, err := store.Resolve(name); err == nil {
			t.Fatalf("Resolve(%q) accepted, want error", name)
		}
	}
	if _, err := store.Resolve("ok.png"); err != nil {
		t.Fatalf("Resolve(ok.png): %v", err)
	}
}

func TestStore_SaveUploadKeepsPristineTwin(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	name, err := store.SaveUpload("photo.JPEG", strings.NewReader("fake bytes"))
	if err != nil {
		t.Fatalf("SaveUpload: %v", err)
	}
	if !strings.HasSuffix(name, ".jpg") {
		t.Fatalf("got name %q, want normalized .jpg suffix", name)
	}
	if !store.Exists(name) {
		t.Fatalf("working copy missing")
	}
	if !store.Exists(OriginalName(name)) {
		t.Fatalf("pristine twin missing")
	}

	// Rename moves a file inside the directory.
	if err := store.Rename(OriginalName(name), "original_renamed.jpg"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if store.Exists(OriginalName(name)) || !store.Exists("original_renamed.jpg") {
		t.Fatalf("rename did not move the twin")
	}

	// Remove deletes both names and tolerates the already-renamed twin.
	if err := store.Remove(name); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if store.Exists(name) {
		t.Fatalf("working copy still present after Remove")
	}
}

func TestOriginalName_Idempotent(t *testing.T) {
	if got := OriginalName("original_a.png"); got != "original_a.png" {
		t.Fatalf("got %q", got)
	}
	if got := OriginalName("a.png"); got != "original_a.png" {
		t.Fatalf("got %q", got)
	}
}
