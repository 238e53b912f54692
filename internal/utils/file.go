package utils

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// eligibleExtensions are the image extensions the aggregation pipeline
// accepts, matched case-insensitively.
var eligibleExtensions = []string{"jpg", "jpeg", "png"}

// EnsureDir creates a directory if it doesn't exist.
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

// GetFileExtension returns the file extension without the dot, lower-cased.
func GetFileExtension(filename string) string {
	ext := filepath.Ext(filename)
	if len(ext) > 0 {
		return strings.ToLower(ext[1:])
	}
	return ""
}

// IsEligibleImage reports whether a filename carries an extension the
// pipeline processes.
func IsEligibleImage(filename string) bool {
	ext := GetFileExtension(filename)
	for _, eligible := range eligibleExtensions {
		if ext == eligible {
			return true
		}
	}
	return false
}

// ListCollectionImages lists eligible image files directly inside dir,
// sorted by name. It does not recurse.
func ListCollectionImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsEligibleImage(entry.Name()) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// ListDesignerDirs lists the immediate subdirectories of a season directory,
// sorted by name.
func ListDesignerDirs(seasonDir string) ([]string, error) {
	entries, err := os.ReadDir(seasonDir)
	if err != nil {
		return nil, err
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(seasonDir, entry.Name()))
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

// FileExists checks if a file exists and is not a directory.
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a directory exists.
func DirExists(dirname string) bool {
	info, err := os.Stat(dirname)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// WriteFileAtomic writes data to path via a temp file and rename, so a
// partially written file is never visible under the final name.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
