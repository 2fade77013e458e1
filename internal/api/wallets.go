// ABOUTME: Wallet and loyalty account endpoints
// ABOUTME: Covers top-level and wallet-nested account routes

package api

import (
	"context"
	"fmt"
	"net/http"
)

// Wallets calls GET /wallets/.
func (c *Client) Wallets(ctx context.Context) ([]Wallet, error) {
	var wallets []Wallet
	if err := c.do(ctx, http.MethodGet, "/wallets/", nil, &wallets); err != nil {
		return nil, err
	}
	return wallets, nil
}

// Wallet calls GET /wallets/{id}/.
func (c *Client) Wallet(ctx context.Context, id int) (*Wallet, error) {
	var w Wallet
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/wallets/%d/", id), nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// CreateWallet calls POST /wallets/.
func (c *Client) CreateWallet(ctx context.Context, payload WalletPayload) (*Wallet, error) {
	var w Wallet
	if err := c.do(ctx, http.MethodPost, "/wallets/", payload, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// UpdateWallet calls PUT /wallets/{id}/.
func (c *Client) UpdateWallet(ctx context.Context, id int, payload WalletPayload) (*Wallet, error) {
	var w Wallet
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/wallets/%d/", id), payload, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// DeleteWallet calls DELETE /wallets/{id}/.
func (c *Client) DeleteWallet(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/wallets/%d/", id), nil, nil)
}

// LoyaltyAccounts calls GET /loyalty-accounts/, listing every active account
// across all of the user's wallets.
func (c *Client) LoyaltyAccounts(ctx context.Context) ([]LoyaltyAccount, error) {
	var accounts []LoyaltyAccount
	if err := c.do(ctx, http.MethodGet, "/loyalty-accounts/", nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// WalletLoyaltyAccounts calls GET /wallets/{id}/loyalty-accounts/.
func (c *Client) WalletLoyaltyAccounts(ctx context.Context, walletID int) ([]LoyaltyAccount, error) {
	var accounts []LoyaltyAccount
	path := fmt.Sprintf("/wallets/%d/loyalty-accounts/", walletID)
	if err := c.do(ctx, http.MethodGet, path, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// CreateLoyaltyAccount calls POST /wallets/{id}/loyalty-accounts/.
func (c *Client) CreateLoyaltyAccount(ctx context.Context, walletID int, payload LoyaltyAccountPayload) (*LoyaltyAccount, error) {
	var account LoyaltyAccount
	path := fmt.Sprintf("/wallets/%d/loyalty-accounts/", walletID)
	if err := c.do(ctx, http.MethodPost, path, payload, &account); err != nil {
		return nil, err
	}
	return &account, nil
}
