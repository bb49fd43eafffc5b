package data

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCreateListReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	created := time.Date(2026, 2, 14, 9, 30, 5, 0, time.Local)
	store := NewStoreWithClock(dir, fixedClock(created))

	id, err := store.Create("groceries", "milk, eggs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "2026-02-14T09-30-05_groceries.txt" {
		t.Errorf("unexpected identifier %q", id)
	}

	memos, err := store.List()
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(memos) != 1 {
		t.Fatalf("expected 1 memo, got %d", len(memos))
	}

	m := memos[0]
	if m.ID != id {
		t.Errorf("expected ID %q, got %q", id, m.ID)
	}
	if m.Title != "groceries" {
		t.Errorf("expected title 'groceries', got %q", m.Title)
	}
	if m.Stamp != "2026-02-14T09-30-05" {
		t.Errorf("unexpected stamp %q", m.Stamp)
	}
	if !m.CreatedAt.Equal(created) {
		t.Errorf("expected createdAt %v, got %v", created, m.CreatedAt)
	}
	if m.Size != int64(len("milk, eggs")) {
		t.Errorf("expected size %d, got %d", len("milk, eggs"), m.Size)
	}

	content, err := store.Read(id)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if content != "milk, eggs" {
		t.Errorf("expected content round trip, got %q", content)
	}
}

func TestCreateProvisionsMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "memos")
	store := NewStore(dir)

	if _, err := store.Create("title", "body"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("expected store directory to be created")
	}
}

func TestEnsureDirIsIdempotent(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "memos"))

	for i := 0; i < 2; i++ {
		if err := store.EnsureDir(); err != nil {
			t.Fatalf("call %d: unexpected error: %v", i+1, err)
		}
	}
}

func TestTitleWithSeparatorSurvivesListing(t *testing.T) {
	store := NewStoreWithClock(t.TempDir(), fixedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)))

	if _, err := store.Create("my_long_title", "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	memos, _ := store.List()
	if len(memos) != 1 {
		t.Fatalf("expected 1 memo, got %d", len(memos))
	}
	if memos[0].Title != "my_long_title" {
		t.Errorf("expected full title, got %q", memos[0].Title)
	}
}

func TestCreateRejectsTitlesWithPathSegments(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "store")
	store := NewStoreWithClock(dir, fixedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)))

	for _, title := range []string{"x/../../escaped", "a/../b", `a\b`} {
		id, err := store.Create(title, "x")
		if !errors.Is(err, ErrInvalidTitle) {
			t.Errorf("Create(%q): expected ErrInvalidTitle, got id=%q err=%v", title, id, err)
		}
	}

	if _, err := os.Stat(filepath.Join(root, "escaped.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected nothing written outside the store, stat err=%v", err)
	}
	memos, err := store.List()
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(memos) != 0 {
		t.Errorf("expected no memos written, got %+v", memos)
	}
}

func TestDeleteRemovesMemo(t *testing.T) {
	store := NewStore(t.TempDir())

	id, err := store.Create("temp", "to be removed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := store.Delete(id)
	if err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if !ok {
		t.Fatal("expected delete to report success")
	}

	memos, _ := store.List()
	if len(memos) != 0 {
		t.Errorf("expected empty list after delete, got %d", len(memos))
	}
	if _, err := store.Read(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDeleteMissingReportsFalse(t *testing.T) {
	store := NewStore(t.TempDir())

	ok, err := store.Delete("2026-01-01T00-00-00_nothing.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected false for a missing memo")
	}
}

func TestListMissingDirectoryIsEmpty(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist"))

	memos, err := store.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(memos) != 0 {
		t.Errorf("expected no memos, got %d", len(memos))
	}
}

func TestListSkipsForeignEntries(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "notes.md"), []byte("not a memo"), 0644)
	os.WriteFile(filepath.Join(dir, "loose.txt"), []byte("no stamp"), 0644)
	os.MkdirAll(filepath.Join(dir, "sub.txt"), 0755)

	memos, err := NewStore(dir).List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(memos) != 1 {
		t.Fatalf("expected only loose.txt to be listed, got %d", len(memos))
	}
	if memos[0].Title != "" || memos[0].Stamp != "loose" {
		t.Errorf("unexpected record for stampless file: %+v", memos[0])
	}
	if !memos[0].CreatedAt.IsZero() {
		t.Errorf("expected zero createdAt, got %v", memos[0].CreatedAt)
	}
}

func TestReadRejectsPathsOutsideStore(t *testing.T) {
	parent := t.TempDir()
	dir := filepath.Join(parent, "memos")
	os.MkdirAll(dir, 0755)
	os.WriteFile(filepath.Join(parent, "secret.txt"), []byte("secret"), 0644)

	store := NewStore(dir)
	for _, id := range []string{"../secret.txt", "", "..", "sub/x.txt", "missing.md"} {
		if _, err := store.Read(id); !errors.Is(err, ErrNotFound) {
			t.Errorf("Read(%q): expected ErrNotFound, got %v", id, err)
		}
		if ok, err := store.Delete(id); ok || err != nil {
			t.Errorf("Delete(%q): expected (false, nil), got (%v, %v)", id, ok, err)
		}
	}
	if _, err := os.Stat(filepath.Join(parent, "secret.txt")); err != nil {
		t.Error("file outside the store must not be touched")
	}
}

// Identifiers are second-resolution stamps plus the title, so two memos with
// the same title in the same second share one file and the later body wins.
func TestSameSecondSameTitleOverwrites(t *testing.T) {
	store := NewStoreWithClock(t.TempDir(), fixedClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)))

	first, err := store.Create("dup", "first body")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := store.Create("dup", "second body")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Fatalf("expected identical identifiers, got %q and %q", first, second)
	}

	memos, _ := store.List()
	if len(memos) != 1 {
		t.Errorf("expected a single file after collision, got %d", len(memos))
	}
	content, _ := store.Read(first)
	if content != "second body" {
		t.Errorf("expected the later body to win, got %q", content)
	}
}

func TestParseFilename(t *testing.T) {
	tests := []struct {
		name  string
		title string
		stamp string
	}{
		{"2026-02-14T09-30-05_groceries.txt", "groceries", "2026-02-14T09-30-05"},
		{"2026-02-14T09-30-05_a_b_c.txt", "a_b_c", "2026-02-14T09-30-05"},
		{"2026-02-14T09-30-05_notes.txt.txt", "notes.txt", "2026-02-14T09-30-05"},
		{"2026-02-14T09-30-05_.txt", "", "2026-02-14T09-30-05"},
		{"plain.txt", "", "plain"},
	}

	for _, tt := range tests {
		title, stamp := ParseFilename(tt.name)
		if title != tt.title || stamp != tt.stamp {
			t.Errorf("ParseFilename(%q) = (%q, %q), want (%q, %q)", tt.name, title, stamp, tt.title, tt.stamp)
		}
	}
}
