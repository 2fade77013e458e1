// ABOUTME: Tests for the add-transaction wizard
// ABOUTME: Validates payload building and the cross-field account rules

package txwizard

import (
	"strings"
	"testing"

	"github.com/milhasdev/milhas-cli/internal/api"
)

func TestBuildPayload_Transfer(t *testing.T) {
	w := &Wizard{
		txType:      "2",
		origin:      "1",
		destination: "2",
		amount:      "10000",
		bonus:       "100",
		date:        "2026-01-15",
		description: "Smiles promo",
	}

	payload, err := w.buildPayload()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.TransactionType != api.TxTransfer {
		t.Errorf("expected transfer type, got %d", payload.TransactionType)
	}
	if payload.OriginAccount == nil || *payload.OriginAccount != 1 {
		t.Errorf("expected origin 1, got %v", payload.OriginAccount)
	}
	if payload.DestinationAccount == nil || *payload.DestinationAccount != 2 {
		t.Errorf("expected destination 2, got %v", payload.DestinationAccount)
	}
	if payload.BonusPercentage == nil || *payload.BonusPercentage != 100 {
		t.Errorf("expected bonus 100, got %v", payload.BonusPercentage)
	}
	if !strings.HasPrefix(payload.TransactionDate, "2026-01-15T") {
		t.Errorf("expected RFC3339 date for 2026-01-15, got %q", payload.TransactionDate)
	}
}

func TestBuildPayload_TransferSameAccountRejected(t *testing.T) {
	w := &Wizard{
		txType:      "2",
		origin:      "3",
		destination: "3",
		amount:      "500",
		date:        "2026-01-15",
	}

	_, err := w.buildPayload()
	if err == nil {
		t.Fatal("expected same-account transfer to be rejected")
	}
	if !strings.Contains(err.Error(), "must differ") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBuildPayload_ManualCreditDefaultBonusOmitted(t *testing.T) {
	w := &Wizard{
		txType:      "1",
		destination: "4",
		amount:      "2500",
		bonus:       "0",
		date:        "2026-02-01",
	}

	payload, err := w.buildPayload()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.BonusPercentage != nil {
		t.Errorf("zero bonus should be omitted, got %v", *payload.BonusPercentage)
	}
	if payload.Cost != nil {
		t.Errorf("empty cost should be omitted, got %v", *payload.Cost)
	}
}

func TestBuildPayload_AdjustmentNeedsOneSide(t *testing.T) {
	w := &Wizard{
		txType: "6",
		amount: "100",
		date:   "2026-02-01",
	}
	if _, err := w.buildPayload(); err == nil {
		t.Error("adjustment without accounts must fail")
	}

	w.origin = "1"
	if _, err := w.buildPayload(); err != nil {
		t.Errorf("adjustment with one side should pass, got %v", err)
	}
}

func TestValidatePositiveNumber(t *testing.T) {
	if err := validatePositiveNumber("10000"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := validatePositiveNumber("0"); err == nil {
		t.Error("zero must be rejected")
	}
	if err := validatePositiveNumber("abc"); err == nil {
		t.Error("non-numeric input must be rejected")
	}
}

func TestValidateOptionalNumber(t *testing.T) {
	if err := validateOptionalNumber(""); err != nil {
		t.Errorf("empty input is allowed, got %v", err)
	}
	if err := validateOptionalNumber("-5"); err == nil {
		t.Error("negative input must be rejected")
	}
}

func TestValidateDate(t *testing.T) {
	if err := validateDate("2026-01-15"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := validateDate("15/01/2026"); err == nil {
		t.Error("non-ISO date must be rejected")
	}
}

func TestWizard_StartsLoading(t *testing.T) {
	w := New(api.New("http://localhost:1", nil))

	if !w.loading {
		t.Error("wizard must start in the loading state")
	}
	view := w.View()
	if !strings.Contains(view, "Loading loyalty accounts") {
		t.Errorf("expected loading view, got %q", view)
	}
}

func TestWizard_AccountsLoadedBuildsTypeForm(t *testing.T) {
	w := New(api.New("http://localhost:1", nil))

	model, _ := w.Update(accountsLoadedMsg{accounts: []api.LoyaltyAccount{
		{ID: 1, Name: "Smiles Ana", ProgramName: "Smiles", CurrentBalance: "15000.00"},
	}})
	w = model.(*Wizard)

	if w.loading {
		t.Error("loading must end after accounts arrive")
	}
	if w.form == nil {
		t.Fatal("type form must be created")
	}
	if w.step != 1 {
		t.Errorf("expected step 1, got %d", w.step)
	}
}

func TestWizard_LoadErrorShown(t *testing.T) {
	w := New(api.New("http://localhost:1", nil))

	model, _ := w.Update(accountsLoadedMsg{err: errFake})
	w = model.(*Wizard)

	if !strings.Contains(w.View(), "Could not load loyalty accounts") {
		t.Errorf("expected error view, got %q", w.View())
	}
}

var errFake = &fakeErr{}

type fakeErr struct{}

func (*fakeErr) Error() string { return "connection refused" }
