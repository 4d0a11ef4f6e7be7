package cmd

import (
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the full analysis report as JSON",
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	report, result, err := runAnalysis(cmd)
	if err != nil {
		return err
	}
	defer warnLoadErrors(result)
	return printJSON(report)
}
