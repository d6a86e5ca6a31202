package cmd

import (
	"errors"
	"fmt"

	"github.com/inovacc/degreeclass/internal/model"
	"github.com/spf13/cobra"
)

var (
	addCode    string
	addName    string
	addCredits int
	addLevel   int
	addGrade   int
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a module record without the interactive prompt",
	Long: `Validate the given module fields with the same rules as the interactive
entry and append the record to the data file.

Example:
  degreeclass add --code CM1010 --name "Intro to Programming" --credits 15 --fheq 4 --grade 68`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := model.Module{
			Code:    addCode,
			Name:    addName,
			Credits: addCredits,
			Level:   model.Level(addLevel),
			Grade:   addGrade,
		}

		if err := validateModule(m); err != nil {
			return err
		}

		classifier, done := newClassifier(false)
		defer done()

		if err := classifier.Add(m); err != nil {
			return err
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "SUCCESS! New Academic Module created:")
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), m.String())

		return nil
	},
}

func validateModule(m model.Module) error {
	return errors.Join(
		model.ValidateCode(m.Code),
		model.ValidateName(m.Name),
		model.ValidateCredits(m.Credits),
		model.ValidateLevel(int(m.Level)),
		model.ValidateGrade(m.Grade),
	)
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addCode, "code", "", "Module code")
	addCmd.Flags().StringVar(&addName, "name", "", "Module name")
	addCmd.Flags().IntVar(&addCredits, "credits", 0, "Module credits")
	addCmd.Flags().IntVar(&addLevel, "fheq", 0, "FHEQ level of the module")
	addCmd.Flags().IntVar(&addGrade, "grade", 0, "Grade obtained (0-100)")
}
