package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/ledgerlens/internal/cli"
	"github.com/theirongolddev/ledgerlens/internal/rules"
)

var flagKeywordsExport string

var keywordsCmd = &cobra.Command{
	Use:   "keywords [category]",
	Short: "Print the keyword table used for categorization",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runKeywords,
}

func init() {
	keywordsCmd.Flags().StringVar(&flagKeywordsExport, "export", "", "Write the table to a TOML file")
	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(_ *cobra.Command, args []string) error {
	c, err := loadClassifier()
	if err != nil {
		return err
	}
	table := c.Table()

	if len(args) == 1 {
		return printCategory(table, args[0])
	}

	if flagKeywordsExport != "" {
		if err := rules.WriteTOML(flagKeywordsExport, table); err != nil {
			return err
		}
		fmt.Printf("  Wrote %d categories to %s\n", len(table.Categories), flagKeywordsExport)
		return nil
	}

	if flagJSON {
		return printJSON(table)
	}

	rows := make([][]string, 0, len(table.Categories))
	for _, cat := range table.Categories {
		rows = append(rows, []string{
			cat.Name,
			cli.FormatNumber(int64(len(cat.Keywords))),
			preview(cat.Keywords, 6),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("%d categories, %d keywords", len(table.Categories), table.KeywordCount()),
		Headers: []string{"Category", "Keywords", "Examples"},
		Rows:    rows,
	}))
	fmt.Printf("\n  Tie-break priority: %s\n", strings.Join(table.Priority, ", "))
	return nil
}

func preview(words []string, n int) string {
	if len(words) <= n {
		return strings.Join(words, ", ")
	}
	return strings.Join(words[:n], ", ") + ", ..."
}

func printCategory(table *rules.Table, name string) error {
	cat, ok := table.Lookup(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return fmt.Errorf("unknown category %q (known: %s)", name, strings.Join(table.Names(), ", "))
	}
	if flagJSON {
		return printJSON(cat)
	}

	fmt.Printf("\n  %s (%d keywords)\n\n", cli.Good(cat.Name), len(cat.Keywords))
	for _, kw := range cat.Keywords {
		fmt.Printf("    %s\n", kw)
	}
	return nil
}
