// ABOUTME: Loyalty account commands for the milhas CLI
// ABOUTME: List accounts across wallets and add accounts to a wallet

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
	"github.com/milhasdev/milhas-cli/internal/validate"
)

var (
	accountWalletID int
	accountForm     validate.AccountForm
)

var accountCmd = &cobra.Command{
	Use:     "account",
	Aliases: []string{"accounts"},
	Short:   "Manage loyalty accounts",
	Long:    `Loyalty accounts hold a balance in one loyalty program and live inside a wallet.`,
}

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List loyalty accounts",
	Long:  `List all loyalty accounts, or only those of one wallet with --wallet.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runAccountList(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var accountAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a loyalty account to a wallet",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runAccountAdd(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(accountListCmd)
	accountCmd.AddCommand(accountAddCmd)

	accountListCmd.Flags().IntVar(&accountWalletID, "wallet", 0, "Only accounts of this wallet")

	accountAddCmd.Flags().IntVar(&accountWalletID, "wallet", 0, "Wallet ID (required)")
	accountAddCmd.Flags().IntVar(&accountForm.Program, "program", 0, "Loyalty program ID (required)")
	accountAddCmd.Flags().StringVar(&accountForm.Name, "name", "", "Account name")
	accountAddCmd.Flags().StringVar(&accountForm.AccountNumber, "number", "", "Membership number at the program")
	accountAddCmd.Flags().Float64Var(&accountForm.CurrentBalance, "balance", 0, "Opening balance")
	accountAddCmd.Flags().Float64Var(&accountForm.AverageCost, "avg-cost", 0, "Average acquisition cost per 1000")
}

// runAccountList prints loyalty accounts and returns exit code
func runAccountList(ctx context.Context, w io.Writer) int {
	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	var accounts []api.LoyaltyAccount
	if accountWalletID > 0 {
		accounts, err = app.client.WalletLoyaltyAccounts(ctx, accountWalletID)
	} else {
		accounts, err = app.client.LoyaltyAccounts(ctx)
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", errorMessage(err))
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(accounts, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(accounts) == 0 {
		fmt.Fprintln(w, "No loyalty accounts found.")
		return 0
	}
	fmt.Fprintln(w, formatAccountsHuman(accounts))
	return 0
}

// runAccountAdd creates a loyalty account and returns exit code
func runAccountAdd(ctx context.Context, w io.Writer) int {
	if accountWalletID <= 0 {
		fmt.Fprintln(w, "Error: --wallet is required")
		return 1
	}
	if err := validate.Struct(accountForm); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	account, err := app.client.CreateLoyaltyAccount(ctx, accountWalletID, api.LoyaltyAccountPayload{
		Program:        accountForm.Program,
		AccountNumber:  accountForm.AccountNumber,
		Name:           accountForm.Name,
		CurrentBalance: accountForm.CurrentBalance,
		AverageCost:    accountForm.AverageCost,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", errorMessage(err))
		return 1
	}

	fmt.Fprintf(w, "%s Account %s created in wallet %s (id %d)\n",
		styles.StatusOK.Render("✓"),
		styles.Value.Render(account.Name),
		account.WalletName, account.ID)
	return 0
}

// formatAccountsHuman formats a loyalty account list for human readability
func formatAccountsHuman(accounts []api.LoyaltyAccount) string {
	out := fmt.Sprintf("%-5s %-22s %-20s %-12s %-10s %s\n",
		"ID", "NAME", "PROGRAM", "BALANCE", "AVG COST", "WALLET")
	for _, a := range accounts {
		name := a.Name
		if !a.IsActive {
			name += " (inactive)"
		}
		out += fmt.Sprintf("%-5d %-22s %-20s %-12s %-10s %s\n",
			a.ID, name, a.ProgramName, a.CurrentBalance, a.AverageCost, a.WalletName)
	}
	return out
}
