package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/ledgerlens/internal/cli"
	"github.com/theirongolddev/ledgerlens/internal/pipeline"
	"github.com/theirongolddev/ledgerlens/internal/source"
	"github.com/theirongolddev/ledgerlens/internal/store"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output.db>",
	Short: "Import CSV or JSON exports into a categorized SQLite ledger",
	Args:  cobra.ExactArgs(2),
	RunE:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]
	if f, err := source.FormatOf(out); err != nil || f != source.FormatSQLite {
		return fmt.Errorf("output %s: want a .db, .sqlite or .sqlite3 file", out)
	}

	c, err := loadClassifier()
	if err != nil {
		return err
	}
	files, err := source.ScanPath(in)
	if err != nil {
		return err
	}

	ledger, err := store.Open(out)
	if err != nil {
		return err
	}
	defer func() { _ = ledger.Close() }()

	ctx := cmd.Context()
	outAbs, _ := filepath.Abs(out)
	var total, skipped int
	for _, df := range files {
		if abs, _ := filepath.Abs(df.Path); abs == outAbs {
			continue
		}
		res := source.ParseFile(ctx, df)
		if res.Err != nil {
			skipped++
			fmt.Fprintf(os.Stderr, "  skipping %s: %v\n", df.Path, res.Err)
			continue
		}

		txns := pipeline.CategorizeAll(res.Transactions, c)
		imp := store.Import{
			FilePath:   df.Path,
			MtimeNs:    df.ModTime.UnixNano(),
			SizeBytes:  df.Size,
			RowCount:   len(txns),
			ImportedAt: time.Now(),
		}
		if err := ledger.SaveTransactions(ctx, imp, txns); err != nil {
			return fmt.Errorf("importing %s: %w", df.Path, err)
		}
		total += len(txns)
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  %s: %s transactions\n", df.Path, cli.FormatNumber(int64(len(txns))))
		}
	}

	fmt.Printf("  Wrote %s transactions to %s\n", cli.FormatNumber(int64(total)), out)

	imports, err := ledger.Imports(ctx)
	if err != nil {
		return fmt.Errorf("listing imports: %w", err)
	}
	if !flagQuiet && len(imports) > 0 {
		rows := make([][]string, 0, len(imports))
		for _, imp := range imports {
			rows = append(rows, []string{
				imp.FilePath,
				cli.FormatNumber(int64(imp.RowCount)),
				imp.ImportedAt.Local().Format("2006-01-02 15:04"),
			})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Imports in " + filepath.Base(out),
			Headers: []string{"Source", "Rows", "Imported"},
			Rows:    rows,
		}))
	}
	if skipped > 0 {
		return fmt.Errorf("%d files could not be imported", skipped)
	}
	return nil
}
