package cmd

import (
	"fmt"

	"github.com/inovacc/degreeclass/internal/cli"
	"github.com/spf13/cobra"
)

var degreeCmd = &cobra.Command{
	Use:   "degree",
	Short: "Show the full-degree average",
	Long: `Compute the degree average from FHEQ level 5 and level 6 records, with
level 6 weighted twice. A result within (0, 100] is written to the average
file and recorded in the history database.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		classifier, done := newClassifier(true)
		defer done()

		avg, res, err := classifier.DegreeAverage()
		cli.WriteLoadResult(cmd.ErrOrStderr(), classifier.DataPath(), res)

		if avg != nil {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "DEGREE AVERAGE: %.1f%%\n", *avg)
		}

		return err
	},
}

func init() {
	rootCmd.AddCommand(degreeCmd)
}
