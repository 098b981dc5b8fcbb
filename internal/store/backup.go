package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// backupStamp names backup directories so they sort chronologically.
const backupStamp = "20060102-150405"

// Backup copies each existing document into a timestamped directory under
// root and returns the directory path. Documents that do not exist yet are
// skipped.
func Backup(root string, paths []string, now time.Time) (string, error) {
	dir := filepath.Join(root, now.Format(backupStamp))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating backup dir: %w", err)
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		dest := filepath.Join(dir, filepath.Base(path))
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return "", fmt.Errorf("writing %s: %w", dest, err)
		}
	}
	return dir, nil
}

// ListBackups returns the backup directory names under root, oldest first.
func ListBackups(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading backup root: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Restore copies documents out of a backup directory back to their
// configured paths, matching by file name. Paths with no matching file in
// the backup are left alone.
func Restore(dir string, paths []string) error {
	for _, path := range paths {
		src := filepath.Join(dir, filepath.Base(path))
		data, err := os.ReadFile(src)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", src, err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}
