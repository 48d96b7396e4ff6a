package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
)

func printWaitConfig(runID uuid.UUID, n int, maxDelay float64, unit time.Duration, collector string) {
	_, _ = bold.Println("⚙️  Configuration:")
	fmt.Printf("  Run:        %s\n", runID)
	fmt.Printf("  Tasks:      %d\n", n)
	fmt.Printf("  Max delay:  %g × %v\n", maxDelay, unit)
	fmt.Printf("  Collector:  %s\n", collector)
	fmt.Println()
}

// printDelays lists delays in the order they completed.
func printDelays(delays []float64, unit time.Duration) {
	if len(delays) == 0 {
		return
	}

	fmt.Println()
	_, _ = bold.Println("📊 DELAYS (completion order)")
	fmt.Println()

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Order", "Delay", "Slept")
	for i, d := range delays {
		slept := time.Duration(d * float64(unit))
		_ = table.Append(
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.4f", d),
			slept.Round(time.Millisecond).String(),
		)
	}
	_ = table.Render()
}

func printValues(values []float64) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("#", "Value")
	for i, v := range values {
		_ = table.Append(fmt.Sprintf("%d", i+1), fmt.Sprintf("%.6f", v))
	}
	_ = table.Render()
}

func makeProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}
