package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"lg/fitcalc-go-api/advice"
	"lg/fitcalc-go-api/calculator"
)

var adviceCmd = &cobra.Command{
	Use:   "advice",
	Short: "Calculate a plan and ask an AI nutritionist for advice on it",
	Long:  "advice runs the same calculation as calc, then sends it to an OpenAI-compatible API. Reads OPENAI_API_KEY, OPENAI_BASE_URL and OPENAI_MODEL from the environment or .env.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}

		form, today, err := buildForm(cmd)
		if err != nil {
			return err
		}
		profile, err := form.Profile()
		if err != nil {
			return err
		}
		result, err := calculator.Calculate(profile, today)
		if err != nil {
			return err
		}

		advisor, err := advice.NewOpenAI(advice.Config{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
			Model:   os.Getenv("OPENAI_MODEL"),
		})
		if err != nil {
			return fmt.Errorf("%w (set OPENAI_API_KEY)", err)
		}

		out := cmd.OutOrStdout()
		printResult(out, profile, result, form.System())

		adv, err := advisor.Advise(cmd.Context(), profile, result)
		if err != nil {
			// The plan above is still valid; only the advice failed.
			return fmt.Errorf("could not reach the virtual nutritionist right now: %w", err)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, headingStyle.Render("Nutritionist advice"))
		fmt.Fprintf(out, "Tip: %s\n\nMeal plan:\n%s\n\nMacros: %s\n", adv.Tip, adv.MealPlan, adv.Macros)
		return nil
	},
}

var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "List activity levels and their TDEE multipliers",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("LEVEL", "MULTIPLIER", "DESCRIPTION")
		for _, a := range calculator.ActivityLevels() {
			t.Row(string(a.Level), fmt.Sprintf("%.3f", a.Multiplier), a.Label)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(adviceCmd, activitiesCmd)
	addProfileFlags(adviceCmd)
}
