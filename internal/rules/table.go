// Package rules holds the keyword table that drives transaction categorization.
package rules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/ledgerlens/internal/model"
)

var (
	// ErrInvalidTable is returned for tables that fail validation.
	ErrInvalidTable = errors.New("invalid keyword table")
	// ErrUnsupportedFormat is returned for keyword files that are neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported keyword file format")
)

// Category is a named list of keywords. Keyword order does not affect scoring.
type Category struct {
	Name     string   `toml:"name" yaml:"name" json:"name"`
	Keywords []string `toml:"keywords" yaml:"keywords" json:"keywords"`
}

// Table is the ordered set of categories plus the tie-break priority list.
type Table struct {
	Priority   []string   `toml:"priority,omitempty" yaml:"priority,omitempty" json:"priority,omitempty"`
	Categories []Category `toml:"category" yaml:"categories" json:"categories"`
}

// Names returns category names in declared order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Categories))
	for i, c := range t.Categories {
		names[i] = c.Name
	}
	return names
}

// Lookup returns the category with the given name.
func (t *Table) Lookup(name string) (Category, bool) {
	for _, c := range t.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// KeywordCount returns the total number of keywords across all categories.
func (t *Table) KeywordCount() int {
	n := 0
	for _, c := range t.Categories {
		n += len(c.Keywords)
	}
	return n
}

// Normalize lowercases and trims names and keywords, drops empty keywords and
// fills in the default priority when none is set. Duplicate keywords are kept.
func (t *Table) Normalize() {
	for i := range t.Categories {
		c := &t.Categories[i]
		c.Name = strings.ToLower(strings.TrimSpace(c.Name))
		kept := c.Keywords[:0]
		for _, kw := range c.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				kept = append(kept, kw)
			}
		}
		c.Keywords = kept
	}
	if len(t.Priority) == 0 {
		t.Priority = append([]string(nil), DefaultPriority...)
	}
	for i, p := range t.Priority {
		t.Priority[i] = strings.ToLower(strings.TrimSpace(p))
	}
}

// Validate checks that category names are present, unique and not the
// reserved catch-all name.
func (t *Table) Validate() error {
	if len(t.Categories) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvalidTable)
	}
	seen := make(map[string]struct{}, len(t.Categories))
	for i, c := range t.Categories {
		if c.Name == "" {
			return fmt.Errorf("%w: category %d has no name", ErrInvalidTable, i+1)
		}
		if c.Name == model.CategoryOther {
			return fmt.Errorf("%w: %q is reserved", ErrInvalidTable, model.CategoryOther)
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidTable, c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}
