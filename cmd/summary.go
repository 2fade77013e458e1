// ABOUTME: Summary command for the milhas CLI
// ABOUTME: Shows the overall dashboard: balances, value, sales figures

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/milhasdev/milhas-cli/internal/api"
	"github.com/milhasdev/milhas-cli/internal/tui/styles"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the overall portfolio summary",
	Long:  `Display totals across all wallets: balances per currency, per-program breakdown, estimated value, and sales history.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runSummary(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

// runSummary fetches and prints the dashboard, returns exit code
func runSummary(ctx context.Context, w io.Writer) int {
	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	summary, err := app.client.OverallSummary(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", errorMessage(err))
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(summary, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatSummaryHuman(summary))
	}
	return 0
}

// formatSummaryHuman formats the dashboard for human readability
func formatSummaryHuman(s *api.Summary) string {
	out := styles.Title.Render("Portfolio of "+s.Username) + "\n\n"

	out += fmt.Sprintf("  %s %d\n", styles.Label.Render("Wallets:"), s.TotalWallets)
	out += fmt.Sprintf("  %s %d\n", styles.Label.Render("Active accounts:"), s.TotalActiveLoyaltyAccounts)
	out += fmt.Sprintf("  %s %s\n", styles.Label.Render("Estimated value:"), styles.Value.Render("R$ "+s.OverallEstimatedValue))
	out += fmt.Sprintf("  %s R$ %s\n", styles.Label.Render("Acquisition cost:"), s.TotalAcquisitionCost)

	if len(s.BalancesByCurrencyType) > 0 {
		out += "\n" + styles.Subtitle.Render("Balances by currency") + "\n"
		for _, b := range s.BalancesByCurrencyType {
			out += fmt.Sprintf("  %-10s %s across %d program(s)\n",
				b.CurrencyName, styles.Value.Render(b.TotalBalance), b.DistinctProgramsCount)
		}
	}

	if len(s.ProgramsSummary) > 0 {
		out += "\n" + styles.Subtitle.Render("Programs") + "\n"
		out += fmt.Sprintf("  %-28s %-14s %s\n", "NAME", "BALANCE", "EST. VALUE")
		for _, p := range s.ProgramsSummary {
			out += fmt.Sprintf("  %-28s %-14s R$ %s\n", p.Name, p.TotalBalance, p.TotalValue)
		}
	}

	out += "\n" + styles.Subtitle.Render("Sales") + "\n"
	out += fmt.Sprintf("  %s %s sold for R$ %s\n",
		styles.Label.Render("Total:"), s.TotalPointsSold, s.TotalRevenueFromSales)

	return out
}
