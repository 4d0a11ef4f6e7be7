// Package source discovers and parses transaction exports (CSV, JSON and
// SQLite ledgers) into model.Transaction records.
package source

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/ledgerlens/internal/logger"
	"github.com/theirongolddev/ledgerlens/internal/model"
	"github.com/theirongolddev/ledgerlens/internal/store"
)

// Column and key names shared by every format.
const (
	fieldDate        = "date"
	fieldAmount      = "amount"
	fieldDescription = "description"
	fieldType        = "type"
)

// ParseFile reads one data file. Malformed rows never fail the file; they
// are defaulted or skipped and counted in RowErrors.
func ParseFile(ctx context.Context, df DiscoveredFile) ParseResult {
	res := ParseResult{File: df}
	log := logger.FromContext(ctx).With().Str("file", df.Path).Logger()

	switch df.Format {
	case FormatSQLite:
		l, err := store.OpenReadOnly(df.Path)
		if err != nil {
			res.Err = err
			return res
		}
		defer func() { _ = l.Close() }()
		res.Transactions, res.RowErrors, res.Err = l.LoadTransactions(ctx)

	case FormatCSV, FormatJSON:
		f, err := os.Open(df.Path)
		if err != nil {
			res.Err = err
			return res
		}
		defer func() { _ = f.Close() }()
		if df.Format == FormatCSV {
			res.Transactions, res.RowErrors, res.Err = ParseCSV(f)
		} else {
			res.Transactions, res.RowErrors, res.Err = ParseJSON(f)
		}

	default:
		res.Err = fmt.Errorf("%s: %w", df.Path, ErrUnsupportedFormat)
	}

	if res.Err == nil {
		log.Debug().Int("rows", len(res.Transactions)).Int("row_errors", res.RowErrors).Msg("parsed")
	}
	return res
}

// ParseCSV reads a CSV export with a header row. Known columns are date,
// amount, description and type (matched case-insensitively); others are
// ignored. A row wrapped whole in one pair of quotes is unwrapped. Short
// rows keep the columns they have. An unparseable amount becomes zero.
func ParseCSV(r io.Reader) ([]model.Transaction, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var header []string
	for header == nil {
		rec, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, 0, nil
			}
			return nil, 0, fmt.Errorf("reading CSV header: %w", err)
		}
		rec = unwrapRecord(rec)
		if isBlank(rec) {
			continue
		}
		header = make([]string, len(rec))
		for i, col := range rec {
			col = strings.TrimPrefix(col, "\ufeff")
			header[i] = strings.ToLower(strings.TrimSpace(col))
		}
	}

	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		if _, dup := colIndex[col]; !dup {
			colIndex[col] = i
		}
	}

	var (
		txns      []model.Transaction
		rowErrors int
	)
	for {
		rec, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				rowErrors++
				continue
			}
			return nil, 0, fmt.Errorf("reading CSV record: %w", err)
		}
		rec = unwrapRecord(rec)
		if isBlank(rec) {
			continue
		}

		t := model.Transaction{
			Date:        column(rec, colIndex, fieldDate),
			Description: column(rec, colIndex, fieldDescription),
			Type:        column(rec, colIndex, fieldType),
		}
		amount, ok := parseAmount(column(rec, colIndex, fieldAmount))
		if !ok {
			rowErrors++
		}
		t.Amount = amount
		txns = append(txns, t)
	}

	return txns, rowErrors, nil
}

// ParseJSON reads a top-level array of objects, or a single object.
// Non-object items are skipped. Amount may be a number or a numeric string;
// non-string text fields become empty.
func ParseJSON(r io.Reader) ([]model.Transaction, int, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("decoding JSON: %w", err)
	}

	var items []any
	switch v := doc.(type) {
	case []any:
		items = v
	case map[string]any:
		items = []any{v}
	default:
		return nil, 0, nil
	}

	var (
		txns      []model.Transaction
		rowErrors int
	)
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			rowErrors++
			continue
		}
		t := model.Transaction{
			Date:        stringField(obj, fieldDate),
			Description: stringField(obj, fieldDescription),
			Type:        stringField(obj, fieldType),
		}
		amount, ok := jsonAmount(obj[fieldAmount])
		if !ok {
			rowErrors++
		}
		t.Amount = amount
		txns = append(txns, t)
	}
	return txns, rowErrors, nil
}

// unwrapRecord re-splits a row that arrived as a single quoted field holding
// the whole comma-separated line.
func unwrapRecord(rec []string) []string {
	if len(rec) != 1 || !strings.Contains(rec[0], ",") {
		return rec
	}
	inner := csv.NewReader(strings.NewReader(rec[0]))
	inner.FieldsPerRecord = -1
	inner.LazyQuotes = true
	inner.TrimLeadingSpace = true
	split, err := inner.Read()
	if err != nil || len(split) < 2 {
		return rec
	}
	return split
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func column(rec []string, colIndex map[string]int, name string) string {
	i, ok := colIndex[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// parseAmount parses a decimal amount. Missing or invalid values are zero
// and report ok=false.
func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	s = strings.TrimPrefix(s, "+")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func jsonAmount(v any) (decimal.Decimal, bool) {
	switch a := v.(type) {
	case json.Number:
		return parseAmount(a.String())
	case string:
		return parseAmount(a)
	default:
		return decimal.Zero, false
	}
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}
