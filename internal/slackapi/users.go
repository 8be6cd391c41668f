package slackapi

// In this file: user listing, profile retrieval and token identity check.

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// GetUsers returns a page of workspace members.  limit defaults to
// DefListLimit and is capped at MaxListLimit; cursor continues a previous
// listing and is passed through opaque.
func (c *Client) GetUsers(ctx context.Context, limit int, cursor string) (json.RawMessage, error) {
	form := url.Values{
		"limit":   {strconv.Itoa(clampLimit(limit))},
		"team_id": {c.creds.TeamID},
	}
	if cursor != "" {
		form.Set("cursor", cursor)
	}
	return c.get(ctx, "users.list", form)
}

// GetUserProfile fetches a single user's profile with extended labels.
func (c *Client) GetUserProfile(ctx context.Context, userID string) (json.RawMessage, error) {
	form := url.Values{
		"user":           {userID},
		"include_labels": {"true"},
	}
	return c.get(ctx, "users.profile.get", form)
}

// AuthTest reports the identity and workspace the configured token
// resolves to.
func (c *Client) AuthTest(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "auth.test", nil)
}
