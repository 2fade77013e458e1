// ABOUTME: Tests for the wallet API client
// ABOUTME: Uses httptest to mock backend responses

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestWallets_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wallets/" {
			t.Errorf("expected path /wallets/, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]Wallet{
			{ID: 1, WalletName: "Principal", UserUsername: "usuario"},
			{ID: 2, WalletName: "Familia"},
		})
	}))
	defer server.Close()

	c := New(server.URL, nil)
	wallets, err := c.Wallets(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(wallets) != 2 {
		t.Fatalf("expected 2 wallets, got %d", len(wallets))
	}
	if wallets[0].WalletName != "Principal" {
		t.Errorf("expected Principal, got %s", wallets[0].WalletName)
	}
}

func TestCreateWallet_SendsPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		var payload WalletPayload
		json.NewDecoder(r.Body).Decode(&payload)
		if payload.WalletName != "Viagens" {
			t.Errorf("expected wallet_name Viagens, got %q", payload.WalletName)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Wallet{ID: 3, WalletName: payload.WalletName})
	}))
	defer server.Close()

	c := New(server.URL, nil)
	wallet, err := c.CreateWallet(context.Background(), WalletPayload{WalletName: "Viagens"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wallet.ID != 3 {
		t.Errorf("expected id 3, got %d", wallet.ID)
	}
}

func TestDeleteWallet_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/wallets/5/" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := New(server.URL, nil)
	if err := c.DeleteWallet(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWalletLoyaltyAccounts_NestedRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wallets/2/loyalty-accounts/" {
			t.Errorf("expected nested route, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]LoyaltyAccount{
			{ID: 9, Name: "Smiles Ana", CurrentBalance: "15000.00", ProgramName: "Smiles"},
		})
	}))
	defer server.Close()

	c := New(server.URL, nil)
	accounts, err := c.WalletLoyaltyAccounts(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accounts) != 1 || accounts[0].CurrentBalance != "15000.00" {
		t.Errorf("unexpected accounts: %+v", accounts)
	}
}

func TestToggleLoyaltyProgram_Patch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/loyalty-programs/4/toggle-active/" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(LoyaltyProgram{ID: 4, Name: "Latam Pass", IsActive: false})
	}))
	defer server.Close()

	c := New(server.URL, nil)
	program, err := c.ToggleLoyaltyProgram(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if program.IsActive {
		t.Error("expected program toggled inactive")
	}
}

func TestDeleteLoyaltyProgram_LinkedAccountsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"detail": "Cannot delete program 'Smiles': loyalty accounts are still linked to it.",
		})
	}))
	defer server.Close()

	c := New(server.URL, nil)
	err := c.DeleteLoyaltyProgram(context.Background(), 7)
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message() != "Cannot delete program 'Smiles': loyalty accounts are still linked to it." {
		t.Errorf("expected server detail, got %q", apiErr.Message())
	}
}

func TestCreateTransaction_PayloadShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]interface{}
		json.NewDecoder(r.Body).Decode(&raw)
		if raw["transaction_type"] != float64(2) {
			t.Errorf("expected transaction_type 2, got %v", raw["transaction_type"])
		}
		if raw["origin_account"] != float64(1) || raw["destination_account"] != float64(2) {
			t.Errorf("unexpected accounts in payload: %v", raw)
		}
		if _, present := raw["cost"]; present {
			t.Error("nil cost must be omitted from the payload")
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Transaction{ID: 11, TransactionType: 2, Amount: "500.00"})
	}))
	defer server.Close()

	origin, destination := 1, 2
	c := New(server.URL, nil)
	tx, err := c.CreateTransaction(context.Background(), TransactionPayload{
		TransactionType:    TxTransfer,
		Amount:             500,
		OriginAccount:      &origin,
		DestinationAccount: &destination,
		TransactionDate:    "2026-01-15T12:00:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.ID != 11 {
		t.Errorf("expected id 11, got %d", tx.ID)
	}
}

func TestOverallSummary_Decodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/summary/overall/" {
			t.Errorf("expected /summary/overall/, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(Summary{
			Username:                   "usuario",
			TotalWallets:               2,
			TotalActiveLoyaltyAccounts: 5,
			OverallEstimatedValue:      "1234.56",
			ProgramsSummary: []ProgramSummary{
				{Name: "Smiles", CurrencyType: CurrencyMiles, TotalBalance: "50000.00", TotalValue: "900.00"},
			},
			BalancesByCurrencyType: []CurrencyBalance{
				{CurrencyName: "Milhas", TotalBalance: "50000.00", DistinctProgramsCount: 1},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL, nil)
	summary, err := c.OverallSummary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalWallets != 2 {
		t.Errorf("expected 2 wallets, got %d", summary.TotalWallets)
	}
	if len(summary.ProgramsSummary) != 1 || summary.ProgramsSummary[0].Name != "Smiles" {
		t.Errorf("unexpected programs summary: %+v", summary.ProgramsSummary)
	}
}

func TestSimulateTransfer_RoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/simulations/transfer/" {
			t.Errorf("expected /simulations/transfer/, got %s", r.URL.Path)
		}
		var input SimulateTransferInput
		json.NewDecoder(r.Body).Decode(&input)
		if input.FromAccountID != 1 || input.ToAccountID != 2 {
			t.Errorf("unexpected input: %+v", input)
		}
		json.NewEncoder(w).Encode(SimulateTransferResult{
			AmountToReceiveAtDestination: "11000.00",
		})
	}))
	defer server.Close()

	c := New(server.URL, nil)
	bonus := 10.0
	result, err := c.SimulateTransfer(context.Background(), SimulateTransferInput{
		FromAccountID: 1, ToAccountID: 2, Amount: 10000, BonusPercentage: &bonus,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AmountToReceiveAtDestination != "11000.00" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestClient_ConnectionError(t *testing.T) {
	c := New("http://localhost:1", nil)
	_, err := c.Wallets(context.Background())
	if err == nil {
		t.Error("expected connection error, got nil")
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		json.NewEncoder(w).Encode([]Wallet{})
	}))
	defer server.Close()

	c := New(server.URL, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Wallets(ctx)
	if err == nil {
		t.Error("expected error for canceled context, got nil")
	}
}
