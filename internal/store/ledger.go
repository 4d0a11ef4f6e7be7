// Package store reads and writes SQLite transaction ledgers.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/ledgerlens/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Ledger is a SQLite database holding a transactions table.
type Ledger struct {
	db *sql.DB
}

// Import describes one source file written into the ledger.
type Import struct {
	FilePath   string
	MtimeNs    int64
	SizeBytes  int64
	RowCount   int
	ImportedAt time.Time
}

// Open opens or creates a writable ledger at dbPath.
func Open(dbPath string) (*Ledger, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating ledger dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Ledger{db: db}, nil
}

// OpenReadOnly opens an existing database without touching its schema.
// The database only needs a transactions table with date, amount,
// description and type columns.
func OpenReadOnly(dbPath string) (*Ledger, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}
	return &Ledger{db: db}, nil
}

// Close closes the ledger database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// LoadTransactions reads every transaction in insertion order.
// Unreadable amounts load as zero and are reported in the second result.
func (l *Ledger) LoadTransactions(ctx context.Context) ([]model.Transaction, int, error) {
	rows, err := l.db.QueryContext(ctx,
		"SELECT date, amount, description, type FROM transactions ORDER BY rowid")
	if err != nil {
		return nil, 0, fmt.Errorf("querying transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var (
		txns    []model.Transaction
		badRows int
	)
	for rows.Next() {
		var desc, typ sql.NullString
		var date, amount any
		if err := rows.Scan(&date, &amount, &desc, &typ); err != nil {
			return nil, 0, fmt.Errorf("scanning transaction: %w", err)
		}
		amt, ok := amountFromColumn(amount)
		if !ok {
			badRows++
		}
		txns = append(txns, model.Transaction{
			Date:        dateFromColumn(date),
			Amount:      amt,
			Description: desc.String,
			Type:        typ.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading transactions: %w", err)
	}
	return txns, badRows, nil
}

// SaveTransactions replaces the rows previously imported from imp.FilePath
// with txns and records the import.
func (l *Ledger) SaveTransactions(ctx context.Context, imp Import, txns []model.Transaction) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM transactions WHERE source_file = ?", imp.FilePath); err != nil {
		return fmt.Errorf("clearing previous import: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO transactions
		(date, amount, description, type, category, source_file)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, t := range txns {
		if _, err := stmt.ExecContext(ctx,
			t.Date, t.Amount.String(), t.Description, t.Type, t.Category, imp.FilePath,
		); err != nil {
			return fmt.Errorf("inserting transaction: %w", err)
		}
	}

	importedAt := imp.ImportedAt
	if importedAt.IsZero() {
		importedAt = time.Now()
	}
	_, err = tx.ExecContext(ctx, `INSERT OR REPLACE INTO imports
		(file_path, mtime_ns, size_bytes, row_count, imported_at)
		VALUES (?, ?, ?, ?, ?)`,
		imp.FilePath, imp.MtimeNs, imp.SizeBytes, len(txns), importedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording import: %w", err)
	}

	return tx.Commit()
}

// Imports lists the recorded source files, most recent first.
func (l *Ledger) Imports(ctx context.Context) ([]Import, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT file_path, mtime_ns, size_bytes, row_count, imported_at
		FROM imports ORDER BY imported_at DESC, file_path`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result []Import
	for rows.Next() {
		var imp Import
		var at string
		if err := rows.Scan(&imp.FilePath, &imp.MtimeNs, &imp.SizeBytes, &imp.RowCount, &at); err != nil {
			return nil, err
		}
		imp.ImportedAt, _ = time.Parse(time.RFC3339, at)
		result = append(result, imp)
	}
	return result, rows.Err()
}

// dateFromColumn converts the date column to DateLayout form. The driver
// returns time.Time for columns declared DATE or DATETIME.
func dateFromColumn(v any) string {
	switch d := v.(type) {
	case string:
		return d
	case []byte:
		return string(d)
	case time.Time:
		return d.Format(model.DateLayout)
	default:
		return ""
	}
}

// amountFromColumn converts whatever SQLite stored in the amount column.
func amountFromColumn(v any) (decimal.Decimal, bool) {
	switch a := v.(type) {
	case nil:
		return decimal.Zero, false
	case int64:
		return decimal.NewFromInt(a), true
	case float64:
		return decimal.NewFromFloat(a), true
	case []byte:
		return parseAmount(string(a))
	case string:
		return parseAmount(a)
	default:
		return decimal.Zero, false
	}
}

func parseAmount(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(s)
	if err == nil {
		return d, true
	}
	// Accept what strconv does but decimal does not, such as "+5".
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}
