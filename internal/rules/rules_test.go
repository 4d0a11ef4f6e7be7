package rules

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_OrderAndPriority(t *testing.T) {
	tbl := Default()
	names := tbl.Names()
	if len(names) != 19 {
		t.Fatalf("len(Names()) = %d, want 19", len(names))
	}
	if names[0] != "food" || names[len(names)-1] != "auto" {
		t.Errorf("Names() = %v, want food first and auto last", names)
	}
	if len(tbl.Priority) != 8 || tbl.Priority[0] != "finance" || tbl.Priority[7] != "auto" {
		t.Errorf("Priority = %v", tbl.Priority)
	}
	if err := tbl.Validate(); err != nil {
		t.Errorf("Validate() on default table: %v", err)
	}
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Categories[0].Keywords[0] = "mutated"
	a.Priority[0] = "mutated"

	b := Default()
	if b.Categories[0].Keywords[0] == "mutated" || b.Priority[0] == "mutated" {
		t.Fatal("Default() shares backing arrays between calls")
	}
}

func TestDefault_KeepsDuplicateKeywords(t *testing.T) {
	c, ok := Default().Lookup("clothes_and_shoes")
	if !ok {
		t.Fatal("clothes_and_shoes missing")
	}
	n := 0
	for _, kw := range c.Keywords {
		if kw == "shoes" {
			n++
		}
	}
	if n != 2 {
		t.Errorf("shoes appears %d times, want 2", n)
	}
}

func TestParse_TOML(t *testing.T) {
	data := []byte(`
priority = ["Utilities"]

[[category]]
name = "Groceries"
keywords = ["  Market ", "", "bread"]

[[category]]
name = "utilities"
keywords = ["electricity"]
`)
	tbl, err := Parse(data, ".toml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := tbl.Names(); len(got) != 2 || got[0] != "groceries" || got[1] != "utilities" {
		t.Fatalf("Names() = %v", got)
	}
	c, _ := tbl.Lookup("groceries")
	if len(c.Keywords) != 2 || c.Keywords[0] != "market" || c.Keywords[1] != "bread" {
		t.Errorf("Keywords = %q, want [market bread]", c.Keywords)
	}
	if len(tbl.Priority) != 1 || tbl.Priority[0] != "utilities" {
		t.Errorf("Priority = %v, want [utilities]", tbl.Priority)
	}
}

func TestParse_YAMLDefaultsPriority(t *testing.T) {
	data := []byte(`
categories:
  - name: food
    keywords: [bakery, market]
  - name: transport
    keywords: [taxi]
`)
	tbl, err := Parse(data, ".yml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tbl.Priority) != len(DefaultPriority) {
		t.Errorf("Priority = %v, want default", tbl.Priority)
	}
	if tbl.KeywordCount() != 3 {
		t.Errorf("KeywordCount() = %d, want 3", tbl.KeywordCount())
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
		want   error
	}{
		{"reserved name", "[[category]]\nname = \"other\"\nkeywords = [\"x\"]\n", ".toml", ErrInvalidTable},
		{"duplicate", "[[category]]\nname = \"a\"\n[[category]]\nname = \"A\"\n", ".toml", ErrInvalidTable},
		{"empty", "", ".toml", ErrInvalidTable},
		{"unnamed", "categories:\n  - keywords: [x]\n", ".yaml", ErrInvalidTable},
		{"format", "x", ".ini", ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	tbl, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if len(tbl.Categories) != len(Default().Categories) {
		t.Error("Load(\"\") did not return the default table")
	}
}

func TestWriteTOML_RoundTripsThroughLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.toml")
	if err := WriteTOML(path, Default()); err != nil {
		t.Fatalf("WriteTOML: %v", err)
	}
	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.KeywordCount() != Default().KeywordCount() {
		t.Errorf("KeywordCount() = %d, want %d", tbl.KeywordCount(), Default().KeywordCount())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want not-exist", err)
	}
}
