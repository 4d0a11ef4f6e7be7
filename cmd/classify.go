package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/ledgerlens/internal/cli"
	"github.com/theirongolddev/ledgerlens/internal/classify"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <description>",
	Short: "Show how a description is scored and categorized",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(_ *cobra.Command, args []string) error {
	c, err := loadClassifier()
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	scores := c.Scores(text)
	category := c.Classify(text)

	if flagJSON {
		return printJSON(struct {
			Description string                   `json:"description"`
			Category    string                   `json:"category"`
			Scores      []classify.CategoryScore `json:"scores"`
		}{text, category, scores})
	}

	fmt.Printf("\n  %q -> %s\n\n", text, cli.Good(category))
	if len(scores) == 0 {
		fmt.Println(cli.Muted("  No keyword matched."))
		return nil
	}

	rows := make([][]string, 0, len(scores))
	for _, s := range scores {
		mark := ""
		if s.Category == category {
			mark = "*"
		}
		rows = append(rows, []string{s.Category, fmt.Sprintf("%d", s.Score), mark})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Score", ""},
		Rows:    rows,
	}))
	return nil
}
