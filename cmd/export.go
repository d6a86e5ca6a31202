package cmd

import (
	"fmt"

	"github.com/inovacc/degreeclass/internal/cli"
	"github.com/inovacc/degreeclass/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <sqlite-path>",
	Short: "Copy the module records into a SQLite database",
	Long: `Load the data file and write every valid record into the "modules" table
of the given SQLite database. An existing table is replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		classifier, done := newClassifier(false)
		defer done()

		res, err := classifier.Reload()
		cli.WriteLoadResult(cmd.ErrOrStderr(), classifier.DataPath(), res)

		if err != nil {
			return err
		}

		n, err := store.ExportSQLite(cmd.Context(), args[0], classifier.Records())
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s\n", n, args[0])

		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
