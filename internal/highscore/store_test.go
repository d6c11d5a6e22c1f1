package highscore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	store := NewFileStore(path)

	if err := store.Save(4200); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != 4200 {
		t.Errorf("Load = %d, want 4200", got)
	}
}

func TestFileStoreOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	store := NewFileStore(path)

	if err := store.Save(100); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save(250); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != 250 {
		t.Errorf("Load = %d, want latest save 250", got)
	}
}

func TestFileStoreMissingFileLoadsZero(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "never-written.txt"))
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if got != 0 {
		t.Errorf("Load = %d, want 0 for missing file", got)
	}
}

func TestFileStoreEmptyFileLoadsZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
		t.Fatal(err)
	}
	store := NewFileStore(path)
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load on empty file: %v", err)
	}
	if got != 0 {
		t.Errorf("Load = %d, want 0 for empty file", got)
	}
}

func TestFileStoreCorruptFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	if err := os.WriteFile(path, []byte("over nine thousand"), 0644); err != nil {
		t.Fatal(err)
	}
	store := NewFileStore(path)
	if _, err := store.Load(); err == nil {
		t.Error("corrupt file loaded without error")
	}
}
