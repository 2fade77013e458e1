// ABOUTME: Wallet commands for the milhas CLI
// ABOUTME: List, show, create, rename, and delete wallets

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/milhasdev/milhas-cli/internal/api"
	"github.com/milhasdev/milhas-cli/internal/tui/styles"
	"github.com/milhasdev/milhas-cli/internal/validate"
)

var walletName string

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Manage wallets",
	Long:  `Wallets group loyalty accounts. Each account lives in exactly one wallet.`,
}

var walletListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your wallets",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runWalletList(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var walletShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one wallet and its accounts",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runWalletShow(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var walletCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a wallet",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runWalletCreate(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var walletRenameCmd = &cobra.Command{
	Use:   "rename <id>",
	Short: "Rename a wallet",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runWalletRename(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var walletDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a wallet",
	Long:  `Delete a wallet. The backend cascades the delete to its loyalty accounts.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runWalletDelete(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(walletCmd)
	walletCmd.AddCommand(walletListCmd)
	walletCmd.AddCommand(walletShowCmd)
	walletCmd.AddCommand(walletCreateCmd)
	walletCmd.AddCommand(walletRenameCmd)
	walletCmd.AddCommand(walletDeleteCmd)

	walletCreateCmd.Flags().StringVar(&walletName, "name", "", "Wallet name")
	walletRenameCmd.Flags().StringVar(&walletName, "name", "", "New wallet name")
}

// parseID converts a positional argument into a positive numeric ID.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// runWalletList prints all wallets and returns exit code
func runWalletList(ctx context.Context, w io.Writer) int {
	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	wallets, err := app.client.Wallets(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", errorMessage(err))
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(wallets, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(wallets) == 0 {
		fmt.Fprintln(w, "No wallets yet. Create one with: milhas wallet create --name <name>")
		return 0
	}
	fmt.Fprintln(w, formatWalletsHuman(wallets))
	return 0
}

// runWalletShow prints one wallet with its accounts, returns exit code
func runWalletShow(ctx context.Context, w io.Writer, arg string) int {
	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	wallet, err := app.client.Wallet(ctx, id)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", errorMessage(err))
		return 1
	}
	accounts, err := app.client.WalletLoyaltyAccounts(ctx, id)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", errorMessage(err))
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(map[string]interface{}{
			"wallet":   wallet,
			"accounts": accounts,
		}, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, styles.Title.Render(wallet.WalletName))
	if len(accounts) == 0 {
		fmt.Fprintln(w, "No loyalty accounts in this wallet.")
		return 0
	}
	fmt.Fprintln(w, formatAccountsHuman(accounts))
	return 0
}

// runWalletCreate creates a wallet and returns exit code
func runWalletCreate(ctx context.Context, w io.Writer) int {
	if err := validate.Struct(validate.WalletForm{WalletName: walletName}); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	wallet, err := app.client.CreateWallet(ctx, api.WalletPayload{WalletName: walletName})
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", errorMessage(err))
		return 1
	}

	fmt.Fprintf(w, "%s Wallet %s created (id %d)\n",
		styles.StatusOK.Render("✓"), styles.Value.Render(wallet.WalletName), wallet.ID)
	return 0
}

// runWalletRename updates a wallet's name and returns exit code
func runWalletRename(ctx context.Context, w io.Writer, arg string) int {
	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}
	if err := validate.Struct(validate.WalletForm{WalletName: walletName}); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	wallet, err := app.client.UpdateWallet(ctx, id, api.WalletPayload{WalletName: walletName})
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", errorMessage(err))
		return 1
	}

	fmt.Fprintf(w, "%s Wallet %d renamed to %s\n",
		styles.StatusOK.Render("✓"), wallet.ID, styles.Value.Render(wallet.WalletName))
	return 0
}

// runWalletDelete removes a wallet and returns exit code
func runWalletDelete(ctx context.Context, w io.Writer, arg string) int {
	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	if err := app.client.DeleteWallet(ctx, id); err != nil {
		fmt.Fprintf(w, "Error: %s\n", errorMessage(err))
		return 1
	}

	fmt.Fprintf(w, "%s Wallet %d deleted\n", styles.StatusOK.Render("✓"), id)
	return 0
}

// formatWalletsHuman formats a wallet list for human readability
func formatWalletsHuman(wallets []api.Wallet) string {
	out := fmt.Sprintf("%-5s %-30s %s\n", "ID", "NAME", "CREATED")
	for _, wl := range wallets {
		out += fmt.Sprintf("%-5d %-30s %s\n", wl.ID, wl.WalletName, shortDate(wl.CreatedAt))
	}
	return out
}

// shortDate trims an RFC3339 timestamp down to its date part.
func shortDate(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}
