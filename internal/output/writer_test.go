package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestAppendBlockTwice verifies both blocks land in call order and the first
// one is not lost, with the directory created on demand.
func TestAppendBlockTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".metrics", "workouts_data.txt")

	first := "---\ntitle: A\nexercises:\n\n"
	second := "---\ntitle: B\nexercises:\n\n"
	if err := AppendBlock(path, first); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := AppendBlock(path, second); err != nil {
		t.Fatalf("second append: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != first+second {
		t.Errorf("file = %q, want %q", got, first+second)
	}
	if n := strings.Count(string(data), Separator+"\n"); n != 2 {
		t.Errorf("separator count = %d, want 2", n)
	}
}

func TestAppendWriterKeepsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	if err := os.WriteFile(path, []byte("existing\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewAppendWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Write("new\n"); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "existing\nnew\n" {
		t.Errorf("file = %q", data)
	}
}

// TestWriteSnapshotOverwrites verifies the count file holds only the latest value.
func TestWriteSnapshotOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".metrics", "workouts_count.txt")

	if err := WriteSnapshot(path, "1234"); err != nil {
		t.Fatal(err)
	}
	if err := WriteSnapshot(path, "42"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "42" {
		t.Errorf("file = %q, want %q", data, "42")
	}
}

func TestWriteSnapshotDirectoryBlocked(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	// A regular file where the directory should be.
	if err := WriteSnapshot(filepath.Join(blocker, "count.txt"), "1"); err == nil {
		t.Fatal("expected error, got nil")
	}
}
