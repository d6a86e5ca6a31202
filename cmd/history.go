package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previously saved degree averages",
	Long:  `List every degree average written to the average file, oldest first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openHistory()
		if err != nil {
			return err
		}

		defer func() {
			_ = h.Close()
		}()

		entries, err := h.List()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if len(entries) == 0 {
			_, _ = fmt.Fprintln(out, "No degree averages recorded yet.")
			return nil
		}

		for _, e := range entries {
			_, _ = fmt.Fprintf(out, "%s  %-8s  %d records  %s\n",
				e.RecordedAt.Local().Format(time.DateTime),
				fmt.Sprintf("%.1f%%", e.Value),
				e.Records,
				e.ID,
			)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
