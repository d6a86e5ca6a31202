package cmd

import (
	"fmt"

	"github.com/inovacc/degreeclass/internal/cli"
	"github.com/inovacc/degreeclass/internal/encoding"
	"github.com/spf13/cobra"
)

var yearsJSON bool

type yearAverageOutput struct {
	Level   int     `json:"fheq"`
	Label   string  `json:"label"`
	Average float64 `json:"average"`
}

var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "Show the weighted average of each study year",
	Long: `Compute the credit-weighted average grade of FHEQ levels 4, 5 and 6
(Y1, Y2 and Y3). Every level needs at least one record.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		classifier, done := newClassifier(false)
		defer done()

		averages, res, err := classifier.YearAverages()
		cli.WriteLoadResult(cmd.ErrOrStderr(), classifier.DataPath(), res)

		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if yearsJSON {
			rows := make([]yearAverageOutput, 0, len(averages))
			for _, avg := range averages {
				rows = append(rows, yearAverageOutput{
					Level:   int(avg.Level),
					Label:   avg.Level.Label(),
					Average: avg.Average,
				})
			}

			data, err := encoding.ToJSON(rows)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(out, string(data))

			return nil
		}

		for _, avg := range averages {
			_, _ = fmt.Fprintf(out, "%s Average: %.1f%%\n", avg.Level.Label(), avg.Average)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(yearsCmd)
	yearsCmd.Flags().BoolVar(&yearsJSON, "json", false, "Print the averages as JSON")
}
