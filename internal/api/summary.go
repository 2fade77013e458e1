// ABOUTME: Dashboard summary and simulation endpoints
// ABOUTME: Read-only aggregates plus what-if transfer and sale projections

package api

import (
	"context"
	"net/http"
)

// OverallSummary calls GET /summary/overall/, the aggregate dashboard KPIs.
func (c *Client) OverallSummary(ctx context.Context) (*Summary, error) {
	var s Summary
	if err := c.do(ctx, http.MethodGet, "/summary/overall/", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SimulateTransfer calls POST /simulations/transfer/. Nothing is executed;
// the server projects the credited amount and resulting cost per thousand.
func (c *Client) SimulateTransfer(ctx context.Context, input SimulateTransferInput) (*SimulateTransferResult, error) {
	var result SimulateTransferResult
	if err := c.do(ctx, http.MethodPost, "/simulations/transfer/", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SimulateSale calls POST /simulations/sale/, projecting the profit of
// selling miles at a given price per thousand.
func (c *Client) SimulateSale(ctx context.Context, input SimulateSaleInput) (*SimulateSaleResult, error) {
	var result SimulateSaleResult
	if err := c.do(ctx, http.MethodPost, "/simulations/sale/", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
