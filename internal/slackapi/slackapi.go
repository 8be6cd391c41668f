// Package slackapi provides a thin client for the Slack Web API.  Each
// method issues exactly one authenticated HTTP request and returns the
// response body as it was received, without interpreting the "ok" field.
// Interpretation of provider errors is left to the caller, which forwards
// the payload verbatim to the agent.
package slackapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

const defaultBaseURL = "https://slack.com/api/"

const (
	// DefListLimit is the default page size for channel and user listings.
	DefListLimit = 100
	// MaxListLimit is the maximum page size accepted by the listing calls.
	MaxListLimit = 200
	// DefHistoryLimit is the default number of messages returned by
	// GetChannelHistory.
	DefHistoryLimit = 10
)

// Slacker is the set of workspace operations exposed over MCP.  Implemented
// by *Client.  All methods return the raw Slack response body; an error is
// returned only when the outbound request itself fails.
//
//go:generate mockgen -destination=mock_slackapi/mock_slackapi.go . Slacker
type Slacker interface {
	ListChannels(ctx context.Context, limit int, cursor string) (json.RawMessage, error)
	PostMessage(ctx context.Context, channelID string, text string) (json.RawMessage, error)
	ReplyToThread(ctx context.Context, channelID string, threadTS string, text string) (json.RawMessage, error)
	AddReaction(ctx context.Context, channelID string, timestamp string, name string) (json.RawMessage, error)
	GetChannelHistory(ctx context.Context, channelID string, limit int) (json.RawMessage, error)
	GetThreadReplies(ctx context.Context, channelID string, threadTS string) (json.RawMessage, error)
	GetUsers(ctx context.Context, limit int, cursor string) (json.RawMessage, error)
	GetUserProfile(ctx context.Context, userID string) (json.RawMessage, error)
	AuthTest(ctx context.Context) (json.RawMessage, error)
}

var _ Slacker = (*Client)(nil)

// Credentials holds the workspace connection parameters.  It is immutable
// for the lifetime of a Client.
type Credentials struct {
	// Token is the bot token (xoxb-...).
	Token string
	// TeamID is the workspace (team) ID.
	TeamID string
	// ChannelIDs is the optional pinned channel allow-list.  When set, it
	// replaces dynamic channel discovery in ListChannels.
	ChannelIDs []string
}

func (c Credentials) validate() error {
	if c.Token == "" {
		return errors.New("slackapi: bot token is empty")
	}
	if c.TeamID == "" {
		return errors.New("slackapi: team ID is empty")
	}
	return nil
}

// ParseChannelIDs splits a comma-separated channel ID list, trimming
// whitespace and dropping empty elements.
func ParseChannelIDs(s string) []string {
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Client is the Slack Web API client.  Use New to create it.
type Client struct {
	cl      *http.Client
	baseURL string
	creds   Credentials
	lister  lister
	lg      *slog.Logger
}

// Option is a functional option for the Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(cl *http.Client) Option {
	return func(c *Client) {
		if cl != nil {
			c.cl = cl
		}
	}
}

// WithBaseURL overrides the Slack API base URL.  The URL must end with a
// slash.  Used in tests and for GovSlack-style alternative endpoints.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithLogger sets the logger.  A nil logger falls back to slog.Default().
func WithLogger(lg *slog.Logger) Option {
	return func(c *Client) {
		if lg != nil {
			c.lg = lg
		}
	}
}

// New creates a new Client with the given credentials.  The channel
// discovery mode is fixed here: a non-empty Credentials.ChannelIDs selects
// pinned listing, otherwise open listing is used.  The choice is not
// re-evaluated per call.
func New(creds Credentials, opt ...Option) (*Client, error) {
	if err := creds.validate(); err != nil {
		return nil, err
	}
	c := &Client{
		cl:      http.DefaultClient,
		baseURL: defaultBaseURL,
		creds:   creds,
		lg:      slog.Default(),
	}
	for _, o := range opt {
		o(c)
	}
	if len(creds.ChannelIDs) > 0 {
		c.lister = &pinnedLister{c: c, ids: creds.ChannelIDs}
	} else {
		c.lister = &openLister{c: c}
	}
	return c, nil
}

// get issues an authenticated GET request to the named API method.
func (c *Client) get(ctx context.Context, method string, form url.Values) (json.RawMessage, error) {
	u := c.baseURL + method
	if len(form) > 0 {
		u += "?" + form.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("slackapi: %s: %w", method, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.creds.Token)
	return c.do(method, req)
}

// postJSON issues an authenticated POST request with a JSON body to the
// named API method.
func (c *Client) postJSON(ctx context.Context, method string, body any) (json.RawMessage, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("slackapi: %s: marshal request: %w", method, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+method, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("slackapi: %s: %w", method, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.creds.Token)
	req.Header.Set("Content-Type", "application/json")
	return c.do(method, req)
}

// do executes the request and returns the response body unmodified.  A
// provider-reported error (ok:false, or a non-2xx status) is part of the
// payload, not a failure: only transport-level errors are returned.
func (c *Client) do(method string, req *http.Request) (json.RawMessage, error) {
	resp, err := c.cl.Do(req)
	if err != nil {
		return nil, fmt.Errorf("slackapi: %s: %w", method, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("slackapi: %s: read response: %w", method, err)
	}
	return json.RawMessage(body), nil
}
