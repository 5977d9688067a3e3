// CLI front end for the calorie calculator and the advice service.
// Usage: go run ./cmd/fitcalc calc --height 175 --weight 80 --target-weight 70
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "fitcalc",
	Short:         "fitcalc estimates calorie targets and a weight-change timeline",
	Long:          "fitcalc computes BMR, TDEE and a daily calorie target for a weight goal, projects the timeline, and can ask an AI nutritionist for advice.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
