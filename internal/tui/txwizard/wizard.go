// ABOUTME: Interactive add-transaction wizard as a bubbletea model
// ABOUTME: Loads accounts with a spinner, then walks a huh form per type

package txwizard

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/milhasdev/milhas-cli/internal/api"
	"github.com/milhasdev/milhas-cli/internal/tui/styles"
	"github.com/milhasdev/milhas-cli/internal/validate"
)

// CompleteMsg is sent when the wizard finishes with a valid payload.
type CompleteMsg struct {
	Payload api.TransactionPayload
}

// CancelledMsg is sent when the wizard is cancelled.
type CancelledMsg struct{}

// accountsLoadedMsg carries the result of the initial account fetch.
type accountsLoadedMsg struct {
	accounts []api.LoyaltyAccount
	err      error
}

// Step names for the progress indicator
var stepNames = []string{"Type", "Details"}

// Wizard collects a transaction payload in two steps: pick the kind, then
// fill in the type-dependent fields.
type Wizard struct {
	client   *api.Client
	accounts []api.LoyaltyAccount
	form     *huh.Form
	spin     spinner.Model
	step     int
	loading  bool
	loadErr  error
	width    int
	errMsg   string

	// Form field values (strings for huh)
	txType      string
	origin      string
	destination string
	amount      string
	cost        string
	bonus       string
	description string
	date        string
}

// New creates a wizard that fetches selectable accounts through client.
func New(client *api.Client) *Wizard {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return &Wizard{
		client:  client,
		spin:    s,
		step:    1,
		loading: true,
		bonus:   "0",
		date:    time.Now().Format("2006-01-02"),
	}
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return tea.Batch(w.spin.Tick, w.loadAccounts())
}

func (w *Wizard) loadAccounts() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		accounts, err := w.client.LoyaltyAccounts(ctx)
		return accountsLoadedMsg{accounts: accounts, err: err}
	}
}

var typeOptions = []huh.Option[string]{
	huh.NewOption("Manual credit", "1"),
	huh.NewOption("Transfer between accounts", "2"),
	huh.NewOption("Redemption", "3"),
	huh.NewOption("Miles sale", "4"),
	huh.NewOption("Points expiration", "5"),
	huh.NewOption("Balance adjustment", "6"),
}

func (w *Wizard) accountOptions(withNone bool) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(w.accounts)+1)
	if withNone {
		opts = append(opts, huh.NewOption("(none)", ""))
	}
	for _, a := range w.accounts {
		label := fmt.Sprintf("%s — %s (%s)", a.Name, a.ProgramName, a.CurrentBalance)
		opts = append(opts, huh.NewOption(label, strconv.Itoa(a.ID)))
	}
	return opts
}

func (w *Wizard) createTypeForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Transaction type").
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(typeOptions...).
				Value(&w.txType),
		).Title("Step 1: Type").
			Description("What kind of movement is this?"),
	)
}

func (w *Wizard) createDetailsForm() *huh.Form {
	kind, _ := strconv.Atoi(w.txType)

	fields := []huh.Field{}

	needsOrigin := kind == api.TxTransfer || kind == api.TxRedemption ||
		kind == api.TxSale || kind == api.TxExpiration
	needsDestination := kind == api.TxManualCredit || kind == api.TxTransfer

	if needsOrigin || kind == api.TxAdjustment {
		fields = append(fields, huh.NewSelect[string]().
			Title("Origin account").
			Options(w.accountOptions(kind == api.TxAdjustment)...).
			Value(&w.origin))
	}
	if needsDestination || kind == api.TxAdjustment {
		fields = append(fields, huh.NewSelect[string]().
			Title("Destination account").
			Options(w.accountOptions(kind == api.TxAdjustment)...).
			Value(&w.destination))
	}

	fields = append(fields,
		huh.NewInput().
			Title("Amount").
			Placeholder("e.g., 10000").
			Value(&w.amount).
			Validate(validatePositiveNumber),
		huh.NewInput().
			Title("Cost (optional)").
			Placeholder("e.g., 160.00").
			Value(&w.cost).
			Validate(validateOptionalNumber),
	)

	if kind == api.TxTransfer {
		fields = append(fields, huh.NewInput().
			Title("Bonus percentage").
			Placeholder("e.g., 100").
			Value(&w.bonus).
			Validate(validateOptionalNumber))
	}

	fields = append(fields,
		huh.NewInput().
			Title("Date").
			Description("YYYY-MM-DD").
			Value(&w.date).
			Validate(validateDate),
		huh.NewInput().
			Title("Description (optional)").
			Value(&w.description),
	)

	return huh.NewForm(
		huh.NewGroup(fields...).
			Title("Step 2: Details").
			Description(api.TransactionTypeLabel(kind)),
	)
}

// validatePositiveNumber rejects empty, non-numeric, and non-positive input.
func validatePositiveNumber(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if f <= 0 {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}

// validateOptionalNumber allows empty input, otherwise requires >= 0.
func validateOptionalNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if f < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		if w.form != nil {
			form, cmd := w.form.Update(msg)
			if f, ok := form.(*huh.Form); ok {
				w.form = f
			}
			return w, cmd
		}
		return w, nil

	case accountsLoadedMsg:
		w.loading = false
		if msg.err != nil {
			w.loadErr = msg.err
			return w, nil
		}
		w.accounts = msg.accounts
		w.form = w.createTypeForm()
		return w, w.form.Init()

	case spinner.TickMsg:
		if !w.loading {
			return w, nil
		}
		var cmd tea.Cmd
		w.spin, cmd = w.spin.Update(msg)
		return w, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" || (w.loadErr != nil && msg.String() == "q") {
			return w, func() tea.Msg { return CancelledMsg{} }
		}
	}

	if w.form == nil {
		return w, nil
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	if w.form.State == huh.StateCompleted {
		return w.advanceStep()
	}
	return w, cmd
}

func (w *Wizard) advanceStep() (tea.Model, tea.Cmd) {
	switch w.step {
	case 1:
		w.step = 2
		w.errMsg = ""
		w.form = w.createDetailsForm()
		return w, w.form.Init()

	case 2:
		payload, err := w.buildPayload()
		if err != nil {
			// Cross-field rule failed: show it and re-run the details step.
			w.errMsg = err.Error()
			w.form = w.createDetailsForm()
			return w, w.form.Init()
		}
		return w, func() tea.Msg { return CompleteMsg{Payload: payload} }
	}
	return w, nil
}

// buildPayload turns the collected strings into a validated API payload.
func (w *Wizard) buildPayload() (api.TransactionPayload, error) {
	kind, _ := strconv.Atoi(w.txType)
	amount, _ := strconv.ParseFloat(strings.TrimSpace(w.amount), 64)

	form := validate.TransactionForm{
		Type:   kind,
		Amount: amount,
		Date:   w.date,
	}
	payload := api.TransactionPayload{
		TransactionType: kind,
		Amount:          amount,
		Description:     strings.TrimSpace(w.description),
	}

	if id, err := strconv.Atoi(w.origin); err == nil && w.origin != "" {
		form.Origin = &id
		payload.OriginAccount = &id
	}
	if id, err := strconv.Atoi(w.destination); err == nil && w.destination != "" {
		form.Destination = &id
		payload.DestinationAccount = &id
	}
	if s := strings.TrimSpace(w.cost); s != "" {
		cost, _ := strconv.ParseFloat(s, 64)
		form.Cost = &cost
		payload.Cost = &cost
	}
	if s := strings.TrimSpace(w.bonus); s != "" && s != "0" {
		bonus, _ := strconv.ParseFloat(s, 64)
		form.Bonus = &bonus
		payload.BonusPercentage = &bonus
	}

	if err := form.Check(); err != nil {
		return api.TransactionPayload{}, err
	}

	day, _ := time.Parse("2006-01-02", strings.TrimSpace(w.date))
	payload.TransactionDate = day.UTC().Format(time.RFC3339)
	return payload, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	if w.loading {
		return fmt.Sprintf("\n %s Loading loyalty accounts...\n", w.spin.View())
	}
	if w.loadErr != nil {
		return styles.StatusError.Render("Could not load loyalty accounts: "+w.loadErr.Error()) +
			"\n\nPress q to quit.\n"
	}

	var sb strings.Builder
	sb.WriteString(w.renderProgress())
	sb.WriteString("\n\n")
	if w.errMsg != "" {
		sb.WriteString(styles.StatusError.Render(w.errMsg))
		sb.WriteString("\n\n")
	}
	sb.WriteString(w.form.View())
	return sb.String()
}

// renderProgress renders the step progress indicator.
func (w *Wizard) renderProgress() string {
	var steps []string
	for i, name := range stepNames {
		stepNum := i + 1
		switch {
		case stepNum < w.step:
			steps = append(steps, styles.StatusOK.Render("✓ ")+styles.Label.Render(name))
		case stepNum == w.step:
			steps = append(steps, lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Render("● "+name))
		default:
			steps = append(steps, styles.Label.Render("○ "+name))
		}
	}
	return strings.Join(steps, "    ")
}
