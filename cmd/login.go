// ABOUTME: Login command for the milhas CLI
// ABOUTME: Exchanges credentials for a token pair and stores the session

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/milhasdev/milhas-cli/internal/api"
	"github.com/milhasdev/milhas-cli/internal/auth"
	"github.com/milhasdev/milhas-cli/internal/tui/styles"
	"github.com/milhasdev/milhas-cli/internal/validate"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the wallet service",
	Long: `Authenticate against the backend and store the token pair locally.

Credentials can be passed via flags; omit them to be prompted
interactively. The stored session is reused by every other command and
refreshed automatically when the access token expires.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (omit to be prompted)")
}

// runLogin executes the login and returns exit code
func runLogin(ctx context.Context, w io.Writer) int {
	if loginUsername == "" || loginPassword == "" {
		if err := promptLogin(); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 1
		}
	}

	form := validate.LoginForm{Username: loginUsername, Password: loginPassword}
	if err := validate.Struct(form); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	profile, err := app.engine.Login(ctx, auth.Credentials{
		Username: loginUsername,
		Password: loginPassword,
	})
	if err != nil {
		if api.IsUnauthorized(err) {
			fmt.Fprintln(w, "Error: invalid username or password")
		} else {
			fmt.Fprintf(w, "Error: %s\n", errorMessage(err))
		}
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(map[string]interface{}{
			"status":   "ok",
			"username": profile.Username,
			"email":    profile.Email,
		}, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintf(w, "%s Logged in as %s\n",
			styles.StatusOK.Render("✓"), styles.Value.Render(profile.Username))
	}
	return 0
}

// promptLogin collects missing credentials interactively.
func promptLogin() error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&loginUsername),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&loginPassword),
		),
	)
	return form.Run()
}
