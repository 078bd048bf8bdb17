package task

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tasks.json")

	original := &List{Tasks: []string{"buy milk", "walk dog"}, Name: "hari"}
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Name != "hari" {
		t.Errorf("Name: got %q, want hari", loaded.Name)
	}
	if loaded.Len() != 2 || loaded.Tasks[0] != "buy milk" || loaded.Tasks[1] != "walk dog" {
		t.Errorf("Tasks: got %v", loaded.Tasks)
	}
}

func TestLoadOrInitMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")

	l, err := LoadOrInit(path, "hari")
	if err != nil {
		t.Fatalf("LoadOrInit on missing file failed: %v", err)
	}

	if l.Len() != 0 {
		t.Errorf("fresh list not empty: %v", l.Tasks)
	}
	if l.Name != "hari" {
		t.Errorf("Name: got %q, want hari", l.Name)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadOrInit should not create the file")
	}
}

func TestLoadOrInitCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := LoadOrInit(path, "hari")
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("got %v, want *FormatError", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v, want os.ErrNotExist", err)
	}
}
