package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsEligibleImage(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"look.jpg", true},
		{"look.jpeg", true},
		{"look.png", true},
		{"LOOK.JPG", true},
		{"look.Png", true},
		{"look.webp", false},
		{"look.gif", false},
		{"look.txt", false},
		{"look", false},
	}

	for _, tc := range cases {
		if got := IsEligibleImage(tc.name); got != tc.want {
			t.Errorf("IsEligibleImage(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestGetFileExtension(t *testing.T) {
	if ext := GetFileExtension("photo.JPEG"); ext != "jpeg" {
		t.Errorf("Expected jpeg, got %s", ext)
	}
	if ext := GetFileExtension("noext"); ext != "" {
		t.Errorf("Expected empty extension, got %s", ext)
	}
}

func TestListCollectionImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.jpg", "a.png", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0755); err != nil {
		t.Fatalf("Failed to create subdir: %v", err)
	}

	files, err := ListCollectionImages(dir)
	if err != nil {
		t.Fatalf("ListCollectionImages failed: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("Expected 2 files, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "a.png" || filepath.Base(files[1]) != "b.jpg" {
		t.Errorf("Expected sorted [a.png b.jpg], got %v", files)
	}
}

func TestListDesignerDirs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"chanel", "acne-studios"} {
		if err := os.Mkdir(filepath.Join(dir, name), 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	dirs, err := ListDesignerDirs(dir)
	if err != nil {
		t.Fatalf("ListDesignerDirs failed: %v", err)
	}

	if len(dirs) != 2 {
		t.Fatalf("Expected 2 dirs, got %d: %v", len(dirs), dirs)
	}
	if filepath.Base(dirs[0]) != "acne-studios" || filepath.Base(dirs[1]) != "chanel" {
		t.Errorf("Expected sorted subdirectories, got %v", dirs)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	if err := WriteFileAtomic(path, []byte(`{"ok":true}`), 0644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back: %v", err)
	}
	if string(data) != `{"ok":true}` {
		t.Errorf("Unexpected content: %s", data)
	}

	// Overwrite must also work and leave no temp files behind.
	if err := WriteFileAtomic(path, []byte(`{"ok":false}`), 0644); err != nil {
		t.Fatalf("Second WriteFileAtomic failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to list dir: %v", err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp-") {
			t.Errorf("Temp file left behind: %s", entry.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the output file, got %d entries", len(entries))
	}
}

func TestFileAndDirExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if !FileExists(path) {
		t.Error("FileExists should be true for an existing file")
	}
	if FileExists(dir) {
		t.Error("FileExists should be false for a directory")
	}
	if !DirExists(dir) {
		t.Error("DirExists should be true for an existing directory")
	}
	if DirExists(path) {
		t.Error("DirExists should be false for a file")
	}
}
