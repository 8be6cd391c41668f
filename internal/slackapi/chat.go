package slackapi

// In this file: message posting and reactions.  These are the only
// operations that mutate workspace state.

import (
	"context"
	"encoding/json"
)

type postMessageRequest struct {
	Channel  string `json:"channel"`
	Text     string `json:"text"`
	ThreadTS string `json:"thread_ts,omitempty"`
}

type addReactionRequest struct {
	Channel   string `json:"channel"`
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
}

// PostMessage posts a new top-level message to a channel.  On success the
// provider response carries the assigned message timestamp.
func (c *Client) PostMessage(ctx context.Context, channelID, text string) (json.RawMessage, error) {
	return c.postJSON(ctx, "chat.postMessage", postMessageRequest{
		Channel: channelID,
		Text:    text,
	})
}

// ReplyToThread posts a message into the thread anchored at threadTS.  The
// request is identical to PostMessage except for the added thread_ts field.
func (c *Client) ReplyToThread(ctx context.Context, channelID, threadTS, text string) (json.RawMessage, error) {
	return c.postJSON(ctx, "chat.postMessage", postMessageRequest{
		Channel:  channelID,
		Text:     text,
		ThreadTS: threadTS,
	})
}

// AddReaction attaches an emoji reaction to the message identified by
// channel and timestamp.  name is the emoji name without the surrounding
// colons, e.g. "thumbsup".
func (c *Client) AddReaction(ctx context.Context, channelID, timestamp, name string) (json.RawMessage, error) {
	return c.postJSON(ctx, "reactions.add", addReactionRequest{
		Channel:   channelID,
		Timestamp: timestamp,
		Name:      name,
	})
}
