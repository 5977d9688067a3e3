package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"lg/fitcalc-go-api/calculator"
)

// profileFlags mirrors calculator.Form. Weight and rate flags are read in
// the unit system chosen with --units.
var profileFlags struct {
	units        string
	gender       string
	age          int
	activity     string
	goal         string
	targetDate   string
	today        string
	heightCm     float64
	heightFeet   float64
	heightInches float64
	weight       float64
	targetWeight float64
	weeklyRate   float64
}

var calcJSON bool

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate calorie targets and the projected timeline",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		out := cmd.OutOrStdout()
		if calcJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				calculator.Result
				CompletionDate string             `json:"completion_date"`
				Display        calculator.Display `json:"display"`
			}{result, result.CompletionDate.Format("2006-01-02"), calculator.DisplayValues(profile, result, form.System())})
		}
		printResult(out, profile, result, form.System())
		return nil
	},
}

// addProfileFlags registers the profile flags on cmd.
func addProfileFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&profileFlags.units, "units", "metric", "Unit system: metric or imperial")
	f.StringVar(&profileFlags.gender, "gender", "male", "Gender: male or female")
	f.IntVar(&profileFlags.age, "age", 30, "Age in years")
	f.StringVar(&profileFlags.activity, "activity", string(calculator.ModeratelyActive),
		"Activity level: sedentary, lightly_active, moderately_active, very_active, extra_active")
	f.StringVar(&profileFlags.goal, "goal", string(calculator.GoalTargetDate), "Goal type: target_date or weekly_rate")
	f.StringVar(&profileFlags.targetDate, "target-date", "", "Target date YYYY-MM-DD (default three months from today)")
	f.StringVar(&profileFlags.today, "today", "", "Reference date YYYY-MM-DD (default today)")
	f.Float64Var(&profileFlags.heightCm, "height", 0, "Height in cm (metric)")
	f.Float64Var(&profileFlags.heightFeet, "height-ft", 0, "Height feet (imperial)")
	f.Float64Var(&profileFlags.heightInches, "height-in", 0, "Height inches (imperial)")
	f.Float64Var(&profileFlags.weight, "weight", 0, "Current weight in kg or lbs")
	f.Float64Var(&profileFlags.targetWeight, "target-weight", 0, "Target weight in kg or lbs")
	f.Float64Var(&profileFlags.weeklyRate, "weekly-rate", 0, "Weight lost per week in kg or lbs (negative to gain)")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("target-weight")
}

// buildForm turns the parsed flags into a calculator.Form and the reference
// date. Only flags the user actually set are treated as provided.
func buildForm(cmd *cobra.Command) (calculator.Form, time.Time, error) {
	pf := profileFlags
	set := cmd.Flags().Changed

	today := time.Now()
	if s := strings.TrimSpace(pf.today); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return calculator.Form{}, time.Time{}, fmt.Errorf("invalid --today %q (expected YYYY-MM-DD)", pf.today)
		}
		today = t
	}

	form := calculator.Form{
		Units:         calculator.UnitSystem(pf.units),
		Gender:        pf.gender,
		Age:           pf.age,
		ActivityLevel: pf.activity,
		GoalType:      pf.goal,
		TargetDate:    pf.targetDate,
	}
	if form.GoalType == string(calculator.GoalTargetDate) && strings.TrimSpace(form.TargetDate) == "" {
		form.TargetDate = today.AddDate(0, 3, 0).Format("2006-01-02")
	}

	var rate *float64
	if set("weekly-rate") {
		rate = &pf.weeklyRate
	}
	switch form.System() {
	case calculator.Imperial:
		if set("height-ft") {
			form.HeightFeet = &pf.heightFeet
			form.HeightInches = &pf.heightInches
		}
		form.WeightLbs = &pf.weight
		form.TargetWeightLbs = &pf.targetWeight
		form.WeeklyRateLbs = rate
	default:
		if set("height") {
			form.HeightCm = &pf.heightCm
		}
		form.WeightKg = &pf.weight
		form.TargetWeightKg = &pf.targetWeight
		form.WeeklyRateKg = rate
	}
	return form, today, nil
}

// printResult writes a human-readable summary followed by the projection.
func printResult(w io.Writer, p calculator.UserProfile, r calculator.Result, units calculator.UnitSystem) {
	d := calculator.DisplayValues(p, r, units)

	fmt.Fprintln(w, headingStyle.Render("Calorie plan"))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Height:\t%s\n", d.Height)
	fmt.Fprintf(tw, "Weight:\t%.1f -> %.1f %s\n", d.CurrentWeight, d.TargetWeight, d.WeightUnit)
	fmt.Fprintf(tw, "BMR:\t%.0f kcal\n", math.Round(r.BMR))
	fmt.Fprintf(tw, "TDEE:\t%.0f kcal\n", math.Round(r.TDEE))
	fmt.Fprintf(tw, "Daily calories:\t%.0f kcal\n", math.Round(r.DailyCalories))
	fmt.Fprintf(tw, "Weekly deficit:\t%.0f kcal\n", math.Round(r.WeeklyDeficit))
	fmt.Fprintf(tw, "Weekly change:\t%.2f %s\n", d.WeeklyChange, d.WeightUnit)
	fmt.Fprintf(tw, "Days to goal:\t%d\n", r.DaysToGoal)
	fmt.Fprintf(tw, "Completion date:\t%s\n", r.CompletionDate.Format("2006-01-02"))
	tw.Flush()

	if r.Warning != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, warningStyle.Render(r.Warning))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headingStyle.Render("Projection"))
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("DAY", "DATE", "WEIGHT ("+d.WeightUnit+")")
	for _, pt := range d.Projection {
		t.Row(fmt.Sprint(pt.Day), pt.DateLabel, fmt.Sprintf("%.1f", pt.WeightKg))
	}
	fmt.Fprintln(w, t.String())
}

func init() {
	rootCmd.AddCommand(calcCmd)
	addProfileFlags(calcCmd)
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "Print the result as JSON")
}
