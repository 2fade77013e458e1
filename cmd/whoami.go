// ABOUTME: Whoami command for the milhas CLI
// ABOUTME: Shows the profile behind the stored session

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

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runWhoami(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// runWhoami fetches and prints the profile, returns exit code
func runWhoami(ctx context.Context, w io.Writer) int {
	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	if !app.engine.IsLoggedIn() {
		fmt.Fprintln(w, "Not logged in. Run: milhas login")
		return 1
	}

	profile, err := app.client.Me(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", errorMessage(err))
		return 1
	}
	app.session.Set(profile)

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(profile, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatProfileHuman(profile))
	}
	return 0
}

// formatProfileHuman formats a profile for human readability
func formatProfileHuman(p *api.UserProfile) string {
	out := styles.Title.Render("Logged in as") + "\n"
	out += fmt.Sprintf("  %s %s\n", styles.Label.Render("Username:"), p.Username)
	out += fmt.Sprintf("  %s %s\n", styles.Label.Render("Email:"), p.Email)
	if p.FirstName != "" || p.LastName != "" {
		out += fmt.Sprintf("  %s %s %s\n", styles.Label.Render("Name:"), p.FirstName, p.LastName)
	}
	if p.CPF != "" {
		out += fmt.Sprintf("  %s %s\n", styles.Label.Render("CPF:"), p.CPF)
	}
	return out
}
