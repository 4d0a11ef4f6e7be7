package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/ledgerlens/internal/model"
)

func openTemp(t *testing.T) *Ledger {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.db")
	l, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func TestSaveAndLoadTransactions(t *testing.T) {
	l := openTemp(t)
	ctx := context.Background()

	in := []model.Transaction{
		{Date: "2024-01-05", Amount: decimal.RequireFromString("1500.50"), Description: "salary", Type: "income"},
		{Date: "", Amount: decimal.RequireFromString("-0.10"), Description: "fee", Type: "expense"},
	}
	if err := l.SaveTransactions(ctx, Import{FilePath: "/tmp/a.csv", SizeBytes: 10}, in); err != nil {
		t.Fatalf("SaveTransactions: %v", err)
	}

	got, bad, err := l.LoadTransactions(ctx)
	if err != nil {
		t.Fatalf("LoadTransactions: %v", err)
	}
	if bad != 0 {
		t.Errorf("bad rows = %d, want 0", bad)
	}
	if len(got) != len(in) {
		t.Fatalf("loaded %d transactions, want %d", len(got), len(in))
	}
	for i := range in {
		if got[i].Date != in[i].Date || got[i].Description != in[i].Description || got[i].Type != in[i].Type {
			t.Errorf("txn[%d] = %+v, want %+v", i, got[i], in[i])
		}
		if !got[i].Amount.Equal(in[i].Amount) {
			t.Errorf("txn[%d].Amount = %s, want %s", i, got[i].Amount, in[i].Amount)
		}
	}
}

func TestSaveTransactions_ReplacesSameSource(t *testing.T) {
	l := openTemp(t)
	ctx := context.Background()
	imp := Import{FilePath: "/tmp/a.csv"}

	first := []model.Transaction{{Amount: decimal.NewFromInt(1)}, {Amount: decimal.NewFromInt(2)}}
	second := []model.Transaction{{Amount: decimal.NewFromInt(3)}}
	other := []model.Transaction{{Amount: decimal.NewFromInt(4)}}

	for _, step := range []struct {
		imp  Import
		txns []model.Transaction
	}{{imp, first}, {imp, second}, {Import{FilePath: "/tmp/b.json"}, other}} {
		if err := l.SaveTransactions(ctx, step.imp, step.txns); err != nil {
			t.Fatalf("SaveTransactions: %v", err)
		}
	}

	got, _, err := l.LoadTransactions(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("loaded %d transactions, want 2", len(got))
	}
	if !got[0].Amount.Equal(decimal.NewFromInt(3)) || !got[1].Amount.Equal(decimal.NewFromInt(4)) {
		t.Errorf("amounts = %s, %s, want 3, 4", got[0].Amount, got[1].Amount)
	}

	imports, err := l.Imports(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(imports) != 2 {
		t.Errorf("imports = %d, want 2", len(imports))
	}
}

func TestLoadTransactions_ForeignSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.sqlite")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	// A database written by another tool: REAL amounts and NULL text.
	_, err = db.Exec(`CREATE TABLE transactions (date TEXT, amount REAL, description TEXT, type TEXT);
		INSERT INTO transactions VALUES
		('2024-02-01', 12.5, NULL, NULL),
		('2024-02-02', -7, 'taxi', 'expense'),
		('2024-02-03', NULL, 'broken', 'expense');`)
	if err != nil {
		t.Fatal(err)
	}
	_ = db.Close()

	ro, err := OpenReadOnly(path)
	if err != nil {
		t.Fatalf("OpenReadOnly: %v", err)
	}
	defer func() { _ = ro.Close() }()

	got, bad, err := ro.LoadTransactions(context.Background())
	if err != nil {
		t.Fatalf("LoadTransactions: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("loaded %d transactions, want 3", len(got))
	}
	if bad != 1 {
		t.Errorf("bad rows = %d, want 1", bad)
	}
	if !got[0].Amount.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("amount[0] = %s, want 12.5", got[0].Amount)
	}
	if got[0].Description != "" {
		t.Errorf("description[0] = %q, want empty", got[0].Description)
	}
	if !got[1].Amount.Equal(decimal.NewFromInt(-7)) {
		t.Errorf("amount[1] = %s, want -7", got[1].Amount)
	}
	if !got[2].Amount.IsZero() {
		t.Errorf("amount[2] = %s, want 0", got[2].Amount)
	}
}

func TestLoadTransactions_DateColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`CREATE TABLE transactions (date DATE, amount REAL, description TEXT, type TEXT);
		INSERT INTO transactions VALUES
		('2024-02-01', -10, 'cafe', 'expense'),
		(NULL, 5, 'refund', 'income');`)
	if err != nil {
		t.Fatal(err)
	}
	_ = db.Close()

	ro, err := OpenReadOnly(path)
	if err != nil {
		t.Fatalf("OpenReadOnly: %v", err)
	}
	defer func() { _ = ro.Close() }()

	got, _, err := ro.LoadTransactions(context.Background())
	if err != nil {
		t.Fatalf("LoadTransactions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("loaded %d transactions, want 2", len(got))
	}
	if got[0].Date != "2024-02-01" {
		t.Errorf("date[0] = %q, want %q", got[0].Date, "2024-02-01")
	}
	if month, ok := got[0].Month(); !ok || month != "2024-02" {
		t.Errorf("month[0] = %q, %v, want %q, true", month, ok, "2024-02")
	}
	if got[1].Date != "" {
		t.Errorf("date[1] = %q, want empty", got[1].Date)
	}
}

func TestDateFromColumn(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"text", "2024-03-05", "2024-03-05"},
		{"blob", []byte("2024-03-05"), "2024-03-05"},
		{"time", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "2024-03-05"},
		{"null", nil, ""},
		{"number", int64(20240305), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dateFromColumn(tt.in); got != tt.want {
				t.Errorf("dateFromColumn(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOpenReadOnly_Missing(t *testing.T) {
	if _, err := OpenReadOnly(filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Error("OpenReadOnly(missing) error = nil, want error")
	}
}
