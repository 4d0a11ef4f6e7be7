package source

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ScanPath resolves path into data files. A file must have a supported
// extension. A directory is walked and every supported file is returned,
// sorted by path; other files are ignored.
func ScanPath(path string) ([]DiscoveredFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		format, err := FormatOf(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return []DiscoveredFile{{
			Path:    path,
			Format:  format,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}}, nil
	}

	var files []DiscoveredFile
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // intentionally skip unreadable entries
		}
		if d.IsDir() {
			return nil
		}
		format, ferr := FormatOf(p)
		if ferr != nil {
			return nil
		}
		fi, ierr := d.Info()
		if ierr != nil {
			return nil //nolint:nilerr // file vanished during the walk
		}
		files = append(files, DiscoveredFile{
			Path:    p,
			Format:  format,
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
		})
		return nil
	})

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files, err
}

// Fingerprint summarizes sizes and modification times so callers can tell
// when a data set changed on disk.
func Fingerprint(files []DiscoveredFile) string {
	var size, mtime int64
	for _, f := range files {
		size += f.Size
		mtime ^= f.ModTime.UnixNano()
	}
	return fmt.Sprintf("%d:%d:%x", len(files), size, mtime)
}
