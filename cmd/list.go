package cmd

import (
	"fmt"

	"github.com/inovacc/degreeclass/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all module records",
	Long:  `Load the data file and print every valid module record in file order. Invalid rows are reported as warnings on stderr.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		classifier, done := newClassifier(false)
		defer done()

		res, err := classifier.Reload()
		cli.WriteLoadResult(cmd.ErrOrStderr(), classifier.DataPath(), res)

		if err != nil {
			return err
		}

		for _, m := range classifier.Records() {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), m.String())
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
