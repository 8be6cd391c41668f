package slackapi

// In this file: channel discovery and message retrieval.

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// lister is the channel discovery strategy.  Exactly one implementation is
// selected when the Client is constructed: openLister when no pinned
// channel list is configured, pinnedLister otherwise.
type lister interface {
	listChannels(ctx context.Context, limit int, cursor string) (json.RawMessage, error)
}

// ListChannels lists the channels visible to the workspace.  In open mode
// it returns a single conversations.list page; in pinned mode it returns
// the configured channels, looked up individually, in the synthesised
// shape of a conversations.list page with an empty next_cursor.  Callers
// need not know which mode is active.
func (c *Client) ListChannels(ctx context.Context, limit int, cursor string) (json.RawMessage, error) {
	return c.lister.listChannels(ctx, limit, cursor)
}

type openLister struct {
	c *Client
}

func (l *openLister) listChannels(ctx context.Context, limit int, cursor string) (json.RawMessage, error) {
	form := url.Values{
		"types":            {"public_channel"},
		"exclude_archived": {"true"},
		"limit":            {strconv.Itoa(clampLimit(limit))},
		"team_id":          {l.c.creds.TeamID},
	}
	if cursor != "" {
		form.Set("cursor", cursor)
	}
	return l.c.get(ctx, "conversations.list", form)
}

type pinnedLister struct {
	c   *Client
	ids []string
}

// channelInfoResponse is the minimal decode of a conversations.info reply
// needed to filter the pinned list.  The channel object itself stays raw
// so it reaches the caller byte for byte.
type channelInfoResponse struct {
	OK      bool            `json:"ok"`
	Channel json.RawMessage `json:"channel"`
}

type channelFlags struct {
	IsArchived bool `json:"is_archived"`
}

// channelListResponse mirrors the conversations.list page shape, so that
// pinned-mode output is indistinguishable from open-mode output.
type channelListResponse struct {
	OK               bool              `json:"ok"`
	Channels         []json.RawMessage `json:"channels"`
	ResponseMetadata responseMetadata  `json:"response_metadata"`
}

type responseMetadata struct {
	NextCursor string `json:"next_cursor"`
}

// listChannels looks up every pinned channel in configured order.  Lookups
// that fail provider-side (ok:false, missing or undecodable channel) and
// archived channels are skipped.  limit and cursor are ignored: pinned
// mode has no pagination, signalled by the empty next_cursor.
func (l *pinnedLister) listChannels(ctx context.Context, _ int, _ string) (json.RawMessage, error) {
	channels := make([]json.RawMessage, 0, len(l.ids))
	for _, id := range l.ids {
		raw, err := l.c.get(ctx, "conversations.info", url.Values{"channel": {id}})
		if err != nil {
			return nil, err
		}
		var info channelInfoResponse
		if err := json.Unmarshal(raw, &info); err != nil || !info.OK || len(info.Channel) == 0 {
			l.c.lg.DebugContext(ctx, "skipping pinned channel: lookup failed", "channel", id)
			continue
		}
		var flags channelFlags
		if err := json.Unmarshal(info.Channel, &flags); err != nil || flags.IsArchived {
			l.c.lg.DebugContext(ctx, "skipping pinned channel: archived", "channel", id)
			continue
		}
		channels = append(channels, info.Channel)
	}
	return json.Marshal(channelListResponse{
		OK:       true,
		Channels: channels,
	})
}

// GetChannelHistory returns the most recent messages of a channel, newest
// first, bounded by limit (default DefHistoryLimit).
func (c *Client) GetChannelHistory(ctx context.Context, channelID string, limit int) (json.RawMessage, error) {
	if limit <= 0 {
		limit = DefHistoryLimit
	}
	form := url.Values{
		"channel": {channelID},
		"limit":   {strconv.Itoa(limit)},
	}
	return c.get(ctx, "conversations.history", form)
}

// GetThreadReplies returns all messages of a thread, the parent included,
// in thread order.
func (c *Client) GetThreadReplies(ctx context.Context, channelID, threadTS string) (json.RawMessage, error) {
	form := url.Values{
		"channel": {channelID},
		"ts":      {threadTS},
	}
	return c.get(ctx, "conversations.replies", form)
}

// clampLimit applies the default and the upper bound for paginated
// listing calls.
func clampLimit(limit int) int {
	if limit <= 0 {
		return DefListLimit
	}
	return min(limit, MaxListLimit)
}
