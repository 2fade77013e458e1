// ABOUTME: Simulation commands for the milhas CLI
// ABOUTME: Project transfers and sales without executing them

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

var (
	simFrom   int
	simTo     int
	simAmount float64
	simBonus  float64
	simPrice  float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate transfers and sales",
	Long:  `Project the outcome of a transfer or a sale without touching any balance.`,
}

var simulateTransferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Project a transfer between two accounts",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runSimulateTransfer(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var simulateSaleCmd = &cobra.Command{
	Use:   "sale",
	Short: "Project the profit of selling miles",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runSimulateSale(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.AddCommand(simulateTransferCmd)
	simulateCmd.AddCommand(simulateSaleCmd)

	simulateTransferCmd.Flags().IntVar(&simFrom, "from", 0, "Origin account ID (required)")
	simulateTransferCmd.Flags().IntVar(&simTo, "to", 0, "Destination account ID (required)")
	simulateTransferCmd.Flags().Float64Var(&simAmount, "amount", 0, "Amount to transfer (required)")
	simulateTransferCmd.Flags().Float64Var(&simBonus, "bonus", 0, "Bonus percentage")

	simulateSaleCmd.Flags().IntVar(&simFrom, "account", 0, "Loyalty account ID (required)")
	simulateSaleCmd.Flags().Float64Var(&simAmount, "amount", 0, "Amount to sell (required)")
	simulateSaleCmd.Flags().Float64Var(&simPrice, "price", 0, "Sale price per 1000 miles (required)")
}

// runSimulateTransfer projects a transfer and returns exit code
func runSimulateTransfer(ctx context.Context, w io.Writer) int {
	if simFrom <= 0 || simTo <= 0 || simAmount <= 0 {
		fmt.Fprintln(w, "Error: --from, --to and --amount are required")
		return 1
	}
	if simFrom == simTo {
		fmt.Fprintln(w, "Error: origin and destination accounts must differ")
		return 1
	}

	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	input := api.SimulateTransferInput{
		FromAccountID: simFrom,
		ToAccountID:   simTo,
		Amount:        simAmount,
	}
	if simBonus > 0 {
		input.BonusPercentage = &simBonus
	}

	result, err := app.client.SimulateTransfer(ctx, input)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", errorMessage(err))
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatTransferSimHuman(result))
	}
	return 0
}

// runSimulateSale projects a sale and returns exit code
func runSimulateSale(ctx context.Context, w io.Writer) int {
	if simFrom <= 0 || simAmount <= 0 || simPrice <= 0 {
		fmt.Fprintln(w, "Error: --account, --amount and --price are required")
		return 1
	}

	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	result, err := app.client.SimulateSale(ctx, api.SimulateSaleInput{
		LoyaltyAccountID:     simFrom,
		AmountToSell:         simAmount,
		SalePricePerThousand: simPrice,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", errorMessage(err))
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatSaleSimHuman(result))
	}
	return 0
}

// formatTransferSimHuman formats a transfer projection for human readability
func formatTransferSimHuman(r *api.SimulateTransferResult) string {
	out := styles.Title.Render("Transfer projection") + "\n"
	out += fmt.Sprintf("  %s %s (%s)\n", styles.Label.Render("From:"), r.FromAccountName, r.FromAccountProgram)
	out += fmt.Sprintf("  %s %s (%s)\n", styles.Label.Render("To:"), r.ToAccountName, r.ToAccountProgram)
	out += fmt.Sprintf("  %s %s\n", styles.Label.Render("Sending:"), r.AmountToTransfer)
	out += fmt.Sprintf("  %s %s%%\n", styles.Label.Render("Bonus:"), r.BonusPercentage)
	out += fmt.Sprintf("  %s %s\n", styles.Label.Render("Arriving:"), styles.Value.Render(r.AmountToReceiveAtDestination))
	out += fmt.Sprintf("  %s R$ %s\n", styles.Label.Render("Origin avg cost/1000:"), r.OriginAvgCostPerThousand)
	if r.EstimatedCostPerThousand != nil {
		out += fmt.Sprintf("  %s R$ %s\n", styles.Label.Render("Cost/1000 at destination:"), *r.EstimatedCostPerThousand)
	}
	return out
}

// formatSaleSimHuman formats a sale projection for human readability
func formatSaleSimHuman(r *api.SimulateSaleResult) string {
	out := styles.Title.Render("Sale projection") + "\n"
	out += fmt.Sprintf("  %s %s\n", styles.Label.Render("Account:"), r.LoyaltyAccountName)
	out += fmt.Sprintf("  %s %s\n", styles.Label.Render("Balance:"), r.CurrentBalance)
	out += fmt.Sprintf("  %s %s at R$ %s/1000\n", styles.Label.Render("Selling:"), r.AmountToSell, r.SalePricePerThousand)
	out += fmt.Sprintf("  %s R$ %s\n", styles.Label.Render("Gross:"), r.TotalEstimatedSale)
	out += fmt.Sprintf("  %s R$ %s\n", styles.Label.Render("Cost:"), r.TotalEstimatedCost)
	out += fmt.Sprintf("  %s R$ %s\n", styles.Label.Render("Profit:"), styles.Value.Render(r.EstimatedProfit))
	return out
}
