// ABOUTME: Loyalty program commands for the milhas CLI
// ABOUTME: List, add, toggle, and delete loyalty programs

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
	programName  string
	programMiles bool
)

var programCmd = &cobra.Command{
	Use:     "program",
	Aliases: []string{"programs"},
	Short:   "Manage loyalty programs",
	Long: `Loyalty programs are the points/miles schemes accounts belong to.

Curated programs are shared; programs you add are visible only to you.`,
}

var programListCmd = &cobra.Command{
	Use:   "list",
	Short: "List loyalty programs",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runProgramList(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var programAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a user-created loyalty program",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runProgramAdd(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var programToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a program between active and inactive",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runProgramToggle(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var programDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user-created loyalty program",
	Long:  `Delete a program you created. The backend rejects deleting curated programs and programs with accounts.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runProgramDelete(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(programCmd)
	programCmd.AddCommand(programListCmd)
	programCmd.AddCommand(programAddCmd)
	programCmd.AddCommand(programToggleCmd)
	programCmd.AddCommand(programDeleteCmd)

	programAddCmd.Flags().StringVar(&programName, "name", "", "Program name")
	programAddCmd.Flags().BoolVar(&programMiles, "miles", false, "Currency is miles (default: points)")
}

// runProgramList prints loyalty programs and returns exit code
func runProgramList(ctx context.Context, w io.Writer) int {
	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	programs, err := app.client.LoyaltyPrograms(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", errorMessage(err))
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(programs, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(programs) == 0 {
		fmt.Fprintln(w, "No loyalty programs available.")
		return 0
	}
	fmt.Fprintln(w, formatProgramsHuman(programs))
	return 0
}

// runProgramAdd creates a user program and returns exit code
func runProgramAdd(ctx context.Context, w io.Writer) int {
	currency := api.CurrencyPoints
	if programMiles {
		currency = api.CurrencyMiles
	}
	form := validate.ProgramForm{Name: programName, CurrencyType: currency}
	if err := validate.Struct(form); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	program, err := app.client.CreateLoyaltyProgram(ctx, api.LoyaltyProgramPayload{
		Name:          programName,
		CurrencyType:  currency,
		IsActive:      true,
		IsUserCreated: true,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", errorMessage(err))
		return 1
	}

	fmt.Fprintf(w, "%s Program %s (%s) created with id %d\n",
		styles.StatusOK.Render("✓"),
		styles.Value.Render(program.Name),
		program.CurrencyTypeDisplay, program.ID)
	return 0
}

// runProgramToggle flips active state and returns exit code
func runProgramToggle(ctx context.Context, w io.Writer, arg string) int {
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

	program, err := app.client.ToggleLoyaltyProgram(ctx, id)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", errorMessage(err))
		return 1
	}

	state := "inactive"
	if program.IsActive {
		state = "active"
	}
	fmt.Fprintf(w, "%s Program %s is now %s\n",
		styles.StatusOK.Render("✓"), styles.Value.Render(program.Name), state)
	return 0
}

// runProgramDelete removes a program and returns exit code
func runProgramDelete(ctx context.Context, w io.Writer, arg string) int {
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

	if err := app.client.DeleteLoyaltyProgram(ctx, id); err != nil {
		fmt.Fprintf(w, "Error: %s\n", errorMessage(err))
		return 1
	}

	fmt.Fprintf(w, "%s Program %d deleted\n", styles.StatusOK.Render("✓"), id)
	return 0
}

// formatProgramsHuman formats a program list for human readability
func formatProgramsHuman(programs []api.LoyaltyProgram) string {
	out := fmt.Sprintf("%-5s %-28s %-8s %-8s %s\n", "ID", "NAME", "TYPE", "ACTIVE", "SOURCE")
	for _, p := range programs {
		active := "no"
		if p.IsActive {
			active = "yes"
		}
		source := "curated"
		if p.IsUserCreated {
			source = "yours"
		}
		out += fmt.Sprintf("%-5d %-28s %-8s %-8s %s\n",
			p.ID, p.Name, p.CurrencyTypeDisplay, active, source)
	}
	return out
}
