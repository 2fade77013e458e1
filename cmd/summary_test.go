// ABOUTME: Tests for the summary command
// ABOUTME: Verifies dashboard formatting and JSON passthrough

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/milhasdev/milhas-cli/internal/api"
)

func sampleSummary() *api.Summary {
	return &api.Summary{
		UserID:                     1,
		Username:                   "ana",
		TotalWallets:               2,
		TotalActiveLoyaltyAccounts: 3,
		OverallEstimatedValue:      "3150.00",
		ProgramsSummary: []api.ProgramSummary{
			{Name: "Smiles", CurrencyType: api.CurrencyMiles, TotalBalance: "120000.00", TotalValue: "2400.00"},
			{Name: "Livelo", CurrencyType: api.CurrencyPoints, TotalBalance: "50000.00", TotalValue: "750.00"},
		},
		BalancesByCurrencyType: []api.CurrencyBalance{
			{CurrencyName: "Milhas", TotalBalance: "120000.00", DistinctProgramsCount: 1},
			{CurrencyName: "Pontos", TotalBalance: "50000.00", DistinctProgramsCount: 1},
		},
		TotalAcquisitionCost:  "1800.00",
		TotalPointsSold:       "30000.00",
		TotalRevenueFromSales: "540.00",
	}
}

func TestFormatSummaryHuman(t *testing.T) {
	output := formatSummaryHuman(sampleSummary())

	checks := []string{
		"ana",
		"3150.00",  // estimated value
		"Smiles",
		"Livelo",
		"120000.00",
		"1800.00",  // acquisition cost
		"540.00",   // sales revenue
		"Milhas",
	}
	for _, check := range checks {
		if !bytes.Contains([]byte(output), []byte(check)) {
			t.Errorf("expected output to contain %q", check)
		}
	}
}

func TestSummaryCommand_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/summary/overall/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(sampleSummary())
	}))
	defer server.Close()
	testEnv(t, server.URL)

	var buf bytes.Buffer
	code := runSummary(context.Background(), &buf)

	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("Smiles")) {
		t.Errorf("expected program breakdown, got %q", buf.String())
	}
}

func TestSummaryCommand_JSONOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(sampleSummary())
	}))
	defer server.Close()
	testEnv(t, server.URL)
	oldJSON := jsonOutput
	jsonOutput = true
	defer func() { jsonOutput = oldJSON }()

	var buf bytes.Buffer
	code := runSummary(context.Background(), &buf)

	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	var parsed api.Summary
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed.Username != "ana" {
		t.Errorf("expected username in JSON, got %q", parsed.Username)
	}
}

func TestSummaryCommand_ConnectionError(t *testing.T) {
	testEnv(t, "http://127.0.0.1:1/api")

	var buf bytes.Buffer
	code := runSummary(context.Background(), &buf)

	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Error:")) {
		t.Errorf("expected error output, got %q", buf.String())
	}
}
