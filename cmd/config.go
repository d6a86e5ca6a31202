package cmd

import (
	"github.com/inovacc/degreeclass/internal/core"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the file paths and log level in use after reading the ini file and
applying command-line flags.

Example config.ini:
  [files]
  data    = data/academic_module_grades.csv
  average = data/degree_average.txt
  history = /tmp/history.bolt

  [log]
  level = warn`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		core.ShowConfig(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
