// ABOUTME: Register command for the milhas CLI
// ABOUTME: Creates a new account; does not log in or persist anything

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/milhasdev/milhas-cli/internal/api"
	"github.com/milhasdev/milhas-cli/internal/tui/styles"
	"github.com/milhasdev/milhas-cli/internal/validate"
)

var registerForm validate.RegisterForm

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Create an account on the wallet service.

Registration never touches the stored session: run "milhas login"
afterwards to start using the new account.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRegister(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerForm.Username, "username", "", "Username")
	registerCmd.Flags().StringVar(&registerForm.Email, "email", "", "Email address")
	registerCmd.Flags().StringVar(&registerForm.FirstName, "first-name", "", "First name")
	registerCmd.Flags().StringVar(&registerForm.LastName, "last-name", "", "Last name")
	registerCmd.Flags().StringVar(&registerForm.Password, "password", "", "Password (omit to be prompted)")
}

// runRegister executes the registration and returns exit code
func runRegister(ctx context.Context, w io.Writer) int {
	if registerForm.Password != "" && registerForm.ConfirmPassword == "" {
		registerForm.ConfirmPassword = registerForm.Password
	}
	if needsRegisterPrompt() {
		if err := promptRegister(); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 1
		}
	}

	if err := validate.Struct(registerForm); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	profile, err := app.engine.Register(ctx, api.RegisterPayload{
		Username:  registerForm.Username,
		Email:     registerForm.Email,
		FirstName: registerForm.FirstName,
		LastName:  registerForm.LastName,
		Password:  registerForm.Password,
		Password2: registerForm.ConfirmPassword,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", errorMessage(err))
		return 1
	}

	fmt.Fprintf(w, "%s Account %s created. Run %s to start.\n",
		styles.StatusOK.Render("✓"),
		styles.Value.Render(profile.Username),
		styles.Value.Render("milhas login"))
	return 0
}

// needsRegisterPrompt reports whether any required field is missing.
func needsRegisterPrompt() bool {
	return registerForm.Username == "" || registerForm.Email == "" ||
		registerForm.FirstName == "" || registerForm.LastName == "" ||
		registerForm.Password == ""
}

// promptRegister collects the registration fields interactively.
func promptRegister() error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("First name").Value(&registerForm.FirstName),
			huh.NewInput().Title("Last name").Value(&registerForm.LastName),
			huh.NewInput().Title("Username").Value(&registerForm.Username),
			huh.NewInput().Title("Email").Value(&registerForm.Email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&registerForm.Password),
			huh.NewInput().
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Value(&registerForm.ConfirmPassword),
		),
	)
	return form.Run()
}
