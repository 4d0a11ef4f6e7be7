package source

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/theirongolddev/ledgerlens/internal/model"
)

// ErrUnsupportedFormat is returned for files that are not CSV, JSON or SQLite.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Format identifies how a data file is parsed.
type Format string

// Supported formats.
const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatSQLite Format = "sqlite"
)

// FormatOf maps a file extension to its Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// DiscoveredFile is a data file found during scanning.
type DiscoveredFile struct {
	Path    string
	Format  Format
	Size    int64
	ModTime time.Time
}

// ParseResult holds the output of parsing a single data file.
type ParseResult struct {
	File         DiscoveredFile
	Transactions []model.Transaction
	RowErrors    int // rows with a field that had to be defaulted or skipped
	Err          error
}
