// ABOUTME: User profile endpoint for the wallet API client
// ABOUTME: Fetches the authenticated user's profile

package api

import "context"

// Me returns the profile of the currently authenticated user.
func (c *Client) Me(ctx context.Context) (*UserProfile, error) {
	var out UserProfile
	if err := c.do(ctx, "GET", "/users/me/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
