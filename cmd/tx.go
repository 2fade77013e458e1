// ABOUTME: Transaction commands for the milhas CLI
// ABOUTME: List, create (flags or interactive wizard), and delete transactions

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/milhasdev/milhas-cli/internal/api"
	"github.com/milhasdev/milhas-cli/internal/tui/styles"
	"github.com/milhasdev/milhas-cli/internal/tui/txwizard"
	"github.com/milhasdev/milhas-cli/internal/validate"
)

var (
	txAccountID   int
	txInteractive bool
	txType        int
	txAmount      float64
	txCost        float64
	txBonus       float64
	txOrigin      int
	txDestination int
	txDescription string
	txDate        string
)

var txCmd = &cobra.Command{
	Use:     "tx",
	Aliases: []string{"transaction", "transactions"},
	Short:   "Manage transactions",
	Long: `Transactions move points and miles between loyalty accounts.

Types: 1 manual credit, 2 transfer, 3 redemption, 4 sale,
5 expiration, 6 adjustment. The backend applies balance effects on
create and reverses them on delete.`,
}

var txListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions",
	Long:  `List all transactions, or only those touching one account with --account.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runTxList(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var txAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transaction",
	Long: `Record a transaction via flags, or walk through the steps with
--interactive. Which accounts are required depends on the type:

  manual credit    --to
  transfer         --from and --to
  redemption/sale/expiration   --from
  adjustment       exactly one of --from / --to`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runTxAdd(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var txDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a transaction and reverse its balance effects",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runTxDelete(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(txCmd)
	txCmd.AddCommand(txListCmd)
	txCmd.AddCommand(txAddCmd)
	txCmd.AddCommand(txDeleteCmd)

	txListCmd.Flags().IntVar(&txAccountID, "account", 0, "Only transactions touching this account")

	txAddCmd.Flags().BoolVarP(&txInteractive, "interactive", "i", false, "Use the step-by-step wizard")
	txAddCmd.Flags().IntVar(&txType, "type", 0, "Transaction type (1-6)")
	txAddCmd.Flags().Float64Var(&txAmount, "amount", 0, "Amount of points/miles")
	txAddCmd.Flags().Float64Var(&txCost, "cost", 0, "Money cost or proceeds")
	txAddCmd.Flags().Float64Var(&txBonus, "bonus", 0, "Transfer bonus percentage")
	txAddCmd.Flags().IntVar(&txOrigin, "from", 0, "Origin account ID")
	txAddCmd.Flags().IntVar(&txDestination, "to", 0, "Destination account ID")
	txAddCmd.Flags().StringVar(&txDescription, "description", "", "Free-form note")
	txAddCmd.Flags().StringVar(&txDate, "date", "", "Transaction date YYYY-MM-DD (default: today)")
}

// runTxList prints transactions and returns exit code
func runTxList(ctx context.Context, w io.Writer) int {
	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	var txs []api.Transaction
	if txAccountID > 0 {
		txs, err = app.client.AccountTransactions(ctx, txAccountID)
	} else {
		txs, err = app.client.Transactions(ctx)
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", errorMessage(err))
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(txs, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(txs) == 0 {
		fmt.Fprintln(w, "No transactions found.")
		return 0
	}
	fmt.Fprintln(w, formatTransactionsHuman(txs))
	return 0
}

// runTxAdd records a transaction and returns exit code
func runTxAdd(ctx context.Context, w io.Writer) int {
	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	var payload api.TransactionPayload
	if txInteractive {
		p, ok, err := runWizard(app.client)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 1
		}
		if !ok {
			fmt.Fprintln(w, "Cancelled.")
			return 0
		}
		payload = p
	} else {
		p, err := txPayloadFromFlags()
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 1
		}
		payload = p
	}

	tx, err := app.client.CreateTransaction(ctx, payload)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", errorMessage(err))
		return 1
	}

	fmt.Fprintf(w, "%s %s of %s recorded (id %d)\n",
		styles.StatusOK.Render("✓"),
		api.TransactionTypeLabel(tx.TransactionType),
		styles.Value.Render(tx.Amount), tx.ID)
	return 0
}

// runTxDelete removes a transaction and returns exit code
func runTxDelete(ctx context.Context, w io.Writer, arg string) int {
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

	if err := app.client.DeleteTransaction(ctx, id); err != nil {
		fmt.Fprintf(w, "Error: %s\n", errorMessage(err))
		return 1
	}

	fmt.Fprintf(w, "%s Transaction %d deleted and its balance effects reversed\n",
		styles.StatusOK.Render("✓"), id)
	return 0
}

// txPayloadFromFlags validates the flag values and builds the API payload.
func txPayloadFromFlags() (api.TransactionPayload, error) {
	form := validate.TransactionForm{
		Type:   txType,
		Amount: txAmount,
		Date:   txDate,
	}
	if form.Date == "" {
		form.Date = time.Now().UTC().Format("2006-01-02")
	}
	if txCost > 0 {
		form.Cost = &txCost
	}
	if txBonus > 0 {
		form.Bonus = &txBonus
	}
	if txOrigin > 0 {
		form.Origin = &txOrigin
	}
	if txDestination > 0 {
		form.Destination = &txDestination
	}
	if err := form.Check(); err != nil {
		return api.TransactionPayload{}, err
	}

	day, err := time.Parse("2006-01-02", form.Date)
	if err != nil {
		return api.TransactionPayload{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", form.Date)
	}

	return api.TransactionPayload{
		TransactionType:    form.Type,
		Amount:             form.Amount,
		Cost:               form.Cost,
		OriginAccount:      form.Origin,
		DestinationAccount: form.Destination,
		BonusPercentage:    form.Bonus,
		Description:        txDescription,
		TransactionDate:    day.UTC().Format(time.RFC3339),
	}, nil
}

// wizardRunner wraps the wizard so its completion messages end the program.
type wizardRunner struct {
	inner     tea.Model
	payload   api.TransactionPayload
	done      bool
	cancelled bool
}

func (m wizardRunner) Init() tea.Cmd { return m.inner.Init() }

func (m wizardRunner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case txwizard.CompleteMsg:
		m.payload = msg.Payload
		m.done = true
		return m, tea.Quit
	case txwizard.CancelledMsg:
		m.cancelled = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}
	}
	inner, cmd := m.inner.Update(msg)
	m.inner = inner
	return m, cmd
}

func (m wizardRunner) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return m.inner.View()
}

// runWizard runs the interactive wizard and returns the payload, whether it
// completed, and any terminal error.
func runWizard(client *api.Client) (api.TransactionPayload, bool, error) {
	p := tea.NewProgram(wizardRunner{inner: txwizard.New(client)})
	final, err := p.Run()
	if err != nil {
		return api.TransactionPayload{}, false, err
	}
	m, ok := final.(wizardRunner)
	if !ok || !m.done {
		return api.TransactionPayload{}, false, nil
	}
	return m.payload, true, nil
}

// formatTransactionsHuman formats a transaction list for human readability
func formatTransactionsHuman(txs []api.Transaction) string {
	out := fmt.Sprintf("%-5s %-12s %-14s %-12s %-20s %-20s %s\n",
		"ID", "DATE", "TYPE", "AMOUNT", "FROM", "TO", "DESCRIPTION")
	for _, t := range txs {
		amount := t.Amount
		switch t.TransactionType {
		case api.TxManualCredit:
			amount = styles.Credit.Render("+" + t.Amount)
		case api.TxRedemption, api.TxSale, api.TxExpiration:
			amount = styles.Debit.Render("-" + t.Amount)
		}
		out += fmt.Sprintf("%-5d %-12s %-14s %-12s %-20s %-20s %s\n",
			t.ID, shortDate(t.TransactionDate), t.TransactionTypeDisplay,
			amount, t.OriginAccountName, t.DestinationAccountName, t.Description)
	}
	return out
}
