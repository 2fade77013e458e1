// ABOUTME: Transaction endpoints
// ABOUTME: List, create, and delete; the server applies balance effects

package api

import (
	"context"
	"fmt"
	"net/http"
)

// Transactions calls GET /transactions/, newest first.
func (c *Client) Transactions(ctx context.Context) ([]Transaction, error) {
	var txs []Transaction
	if err := c.do(ctx, http.MethodGet, "/transactions/", nil, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// AccountTransactions calls GET /loyalty-accounts/{id}/transactions/, listing
// only movements touching the given account as origin or destination.
func (c *Client) AccountTransactions(ctx context.Context, accountID int) ([]Transaction, error) {
	var txs []Transaction
	path := fmt.Sprintf("/loyalty-accounts/%d/transactions/", accountID)
	if err := c.do(ctx, http.MethodGet, path, nil, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// CreateTransaction calls POST /transactions/. Balance effects are applied
// server-side atomically with the insert.
func (c *Client) CreateTransaction(ctx context.Context, payload TransactionPayload) (*Transaction, error) {
	var tx Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions/", payload, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// DeleteTransaction calls DELETE /transactions/{id}/. The server reverses the
// transaction's balance effects before removing it.
func (c *Client) DeleteTransaction(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/transactions/%d/", id), nil, nil)
}
