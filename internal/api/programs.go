// ABOUTME: Loyalty program endpoints
// ABOUTME: List, create, toggle-active, and delete user-created programs

package api

import (
	"context"
	"fmt"
	"net/http"
)

// LoyaltyPrograms calls GET /loyalty-programs/. The list holds the global
// catalog plus the caller's own programs.
func (c *Client) LoyaltyPrograms(ctx context.Context) ([]LoyaltyProgram, error) {
	var programs []LoyaltyProgram
	if err := c.do(ctx, http.MethodGet, "/loyalty-programs/", nil, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

// CreateLoyaltyProgram calls POST /loyalty-programs/.
func (c *Client) CreateLoyaltyProgram(ctx context.Context, payload LoyaltyProgramPayload) (*LoyaltyProgram, error) {
	var program LoyaltyProgram
	if err := c.do(ctx, http.MethodPost, "/loyalty-programs/", payload, &program); err != nil {
		return nil, err
	}
	return &program, nil
}

// ToggleLoyaltyProgram calls PATCH /loyalty-programs/{id}/toggle-active/,
// flipping the program's active flag. Only user-created programs owned by
// the caller can be toggled; the server enforces this.
func (c *Client) ToggleLoyaltyProgram(ctx context.Context, id int) (*LoyaltyProgram, error) {
	var program LoyaltyProgram
	path := fmt.Sprintf("/loyalty-programs/%d/toggle-active/", id)
	if err := c.do(ctx, http.MethodPatch, path, nil, &program); err != nil {
		return nil, err
	}
	return &program, nil
}

// DeleteLoyaltyProgram calls DELETE /loyalty-programs/{id}/. The server
// rejects the deletion when accounts are still linked to the program.
func (c *Client) DeleteLoyaltyProgram(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/loyalty-programs/%d/", id), nil, nil)
}
