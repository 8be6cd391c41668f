// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mcp

// In this file: MCP tool definitions and handler implementations.  Handlers
// only forward validated arguments to the workspace client and wrap the raw
// JSON response; all branching (e.g. pinned vs. open channel listing) lives
// in the client.

import (
	"context"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/rusq/slackmcp/internal/slackapi"
)

// ─── list_channels ────────────────────────────────────────────────────────────

func (s *Server) toolListChannels() mcpsrv.ServerTool {
	tool := mcplib.NewTool("list_channels",
		mcplib.WithDescription(`List channels in the workspace.

Returns public, non-archived channels with pagination, or, when the server
is configured with a pinned channel list, exactly those channels (in
configured order, archived ones excluded) with no further pages.`),
		mcplib.WithNumber("limit",
			mcplib.Description(fmt.Sprintf("Maximum number of channels to return (default %d, max %d)", slackapi.DefListLimit, slackapi.MaxListLimit)),
		),
		mcplib.WithString("cursor",
			mcplib.Description("Pagination cursor from a previous response's response_metadata.next_cursor"),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleListChannels}
}

func (s *Server) handleListChannels(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	limit := intArg(req, "limit", slackapi.DefListLimit)
	cursor, _ := stringArg(req, "cursor")

	raw, err := s.client.ListChannels(ctx, limit, cursor)
	if err != nil {
		return resultErr(fmt.Errorf("list_channels: %w", err)), nil
	}
	return resultRaw(raw), nil
}

// ─── post_message ─────────────────────────────────────────────────────────────

func (s *Server) toolPostMessage() mcpsrv.ServerTool {
	tool := mcplib.NewTool("post_message",
		mcplib.WithDescription("Post a new message to a Slack channel. The response includes the timestamp assigned to the message."),
		mcplib.WithString("channel_id",
			mcplib.Description("The ID of the channel to post to (e.g. C01234ABCD)"),
			mcplib.Required(),
		),
		mcplib.WithString("text",
			mcplib.Description("The message text to post"),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handlePostMessage}
}

func (s *Server) handlePostMessage(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	channelID, ok := stringArg(req, "channel_id")
	if !ok || channelID == "" {
		return resultErr(errors.New("post_message: channel_id is required")), nil
	}
	text, ok := stringArg(req, "text")
	if !ok || text == "" {
		return resultErr(errors.New("post_message: text is required")), nil
	}

	raw, err := s.client.PostMessage(ctx, channelID, text)
	if err != nil {
		return resultErr(fmt.Errorf("post_message: %w", err)), nil
	}
	return resultRaw(raw), nil
}

// ─── reply_to_thread ──────────────────────────────────────────────────────────

func (s *Server) toolReplyToThread() mcpsrv.ServerTool {
	tool := mcplib.NewTool("reply_to_thread",
		mcplib.WithDescription("Reply to a message thread. The message is anchored to the parent message identified by thread_ts."),
		mcplib.WithString("channel_id",
			mcplib.Description("The ID of the channel containing the thread (e.g. C01234ABCD)"),
			mcplib.Required(),
		),
		mcplib.WithString("thread_ts",
			mcplib.Description("Timestamp of the parent message (Slack ts format, e.g. \"1234567890.123456\")"),
			mcplib.Required(),
		),
		mcplib.WithString("text",
			mcplib.Description("The reply text to post"),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleReplyToThread}
}

func (s *Server) handleReplyToThread(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	channelID, ok := stringArg(req, "channel_id")
	if !ok || channelID == "" {
		return resultErr(errors.New("reply_to_thread: channel_id is required")), nil
	}
	threadTS, ok := stringArg(req, "thread_ts")
	if !ok || threadTS == "" {
		return resultErr(errors.New("reply_to_thread: thread_ts is required")), nil
	}
	text, ok := stringArg(req, "text")
	if !ok || text == "" {
		return resultErr(errors.New("reply_to_thread: text is required")), nil
	}

	raw, err := s.client.ReplyToThread(ctx, channelID, threadTS, text)
	if err != nil {
		return resultErr(fmt.Errorf("reply_to_thread: %w", err)), nil
	}
	return resultRaw(raw), nil
}

// ─── add_reaction ─────────────────────────────────────────────────────────────

func (s *Server) toolAddReaction() mcpsrv.ServerTool {
	tool := mcplib.NewTool("add_reaction",
		mcplib.WithDescription("Add an emoji reaction to a message."),
		mcplib.WithString("channel_id",
			mcplib.Description("The ID of the channel containing the message (e.g. C01234ABCD)"),
			mcplib.Required(),
		),
		mcplib.WithString("timestamp",
			mcplib.Description("Timestamp of the message to react to (Slack ts format)"),
			mcplib.Required(),
		),
		mcplib.WithString("reaction",
			mcplib.Description("Emoji name without colons (e.g. \"thumbsup\")"),
			mcplib.Required(),
		),
		mcplib.WithIdempotentHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleAddReaction}
}

func (s *Server) handleAddReaction(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	channelID, ok := stringArg(req, "channel_id")
	if !ok || channelID == "" {
		return resultErr(errors.New("add_reaction: channel_id is required")), nil
	}
	timestamp, ok := stringArg(req, "timestamp")
	if !ok || timestamp == "" {
		return resultErr(errors.New("add_reaction: timestamp is required")), nil
	}
	reaction, ok := stringArg(req, "reaction")
	if !ok || reaction == "" {
		return resultErr(errors.New("add_reaction: reaction is required")), nil
	}

	raw, err := s.client.AddReaction(ctx, channelID, timestamp, reaction)
	if err != nil {
		return resultErr(fmt.Errorf("add_reaction: %w", err)), nil
	}
	return resultRaw(raw), nil
}

// ─── get_channel_history ──────────────────────────────────────────────────────

func (s *Server) toolGetChannelHistory() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_channel_history",
		mcplib.WithDescription("Get the most recent messages from a channel, newest first."),
		mcplib.WithString("channel_id",
			mcplib.Description("The ID of the channel to read (e.g. C01234ABCD)"),
			mcplib.Required(),
		),
		mcplib.WithNumber("limit",
			mcplib.Description(fmt.Sprintf("Number of messages to retrieve (default %d)", slackapi.DefHistoryLimit)),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetChannelHistory}
}

func (s *Server) handleGetChannelHistory(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	channelID, ok := stringArg(req, "channel_id")
	if !ok || channelID == "" {
		return resultErr(errors.New("get_channel_history: channel_id is required")), nil
	}
	limit := intArg(req, "limit", slackapi.DefHistoryLimit)

	raw, err := s.client.GetChannelHistory(ctx, channelID, limit)
	if err != nil {
		return resultErr(fmt.Errorf("get_channel_history: %w", err)), nil
	}
	return resultRaw(raw), nil
}

// ─── get_thread_replies ───────────────────────────────────────────────────────

func (s *Server) toolGetThreadReplies() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_thread_replies",
		mcplib.WithDescription("Get all replies in a message thread, including the parent message, in thread order."),
		mcplib.WithString("channel_id",
			mcplib.Description("The ID of the channel containing the thread (e.g. C01234ABCD)"),
			mcplib.Required(),
		),
		mcplib.WithString("thread_ts",
			mcplib.Description("Timestamp of the parent message (Slack ts format, e.g. \"1234567890.123456\")"),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetThreadReplies}
}

func (s *Server) handleGetThreadReplies(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	channelID, ok := stringArg(req, "channel_id")
	if !ok || channelID == "" {
		return resultErr(errors.New("get_thread_replies: channel_id is required")), nil
	}
	threadTS, ok := stringArg(req, "thread_ts")
	if !ok || threadTS == "" {
		return resultErr(errors.New("get_thread_replies: thread_ts is required")), nil
	}

	raw, err := s.client.GetThreadReplies(ctx, channelID, threadTS)
	if err != nil {
		return resultErr(fmt.Errorf("get_thread_replies: %w", err)), nil
	}
	return resultRaw(raw), nil
}

// ─── get_users ────────────────────────────────────────────────────────────────

func (s *Server) toolGetUsers() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_users",
		mcplib.WithDescription("Get a paginated list of workspace members with their basic profile information."),
		mcplib.WithString("cursor",
			mcplib.Description("Pagination cursor from a previous response's response_metadata.next_cursor"),
		),
		mcplib.WithNumber("limit",
			mcplib.Description(fmt.Sprintf("Maximum number of users to return (default %d, max %d)", slackapi.DefListLimit, slackapi.MaxListLimit)),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetUsers}
}

func (s *Server) handleGetUsers(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	limit := intArg(req, "limit", slackapi.DefListLimit)
	cursor, _ := stringArg(req, "cursor")

	raw, err := s.client.GetUsers(ctx, limit, cursor)
	if err != nil {
		return resultErr(fmt.Errorf("get_users: %w", err)), nil
	}
	return resultRaw(raw), nil
}

// ─── get_user_profile ─────────────────────────────────────────────────────────

func (s *Server) toolGetUserProfile() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_user_profile",
		mcplib.WithDescription("Get detailed profile information for a specific user, including custom profile fields."),
		mcplib.WithString("user_id",
			mcplib.Description("The ID of the user (e.g. U01234ABCD)"),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetUserProfile}
}

func (s *Server) handleGetUserProfile(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	userID, ok := stringArg(req, "user_id")
	if !ok || userID == "" {
		return resultErr(errors.New("get_user_profile: user_id is required")), nil
	}

	raw, err := s.client.GetUserProfile(ctx, userID)
	if err != nil {
		return resultErr(fmt.Errorf("get_user_profile: %w", err)), nil
	}
	return resultRaw(raw), nil
}

// ─── auth_test ────────────────────────────────────────────────────────────────

func (s *Server) toolAuthTest() mcpsrv.ServerTool {
	tool := mcplib.NewTool("auth_test",
		mcplib.WithDescription("Check which user and workspace the configured token authenticates as."),
		mcplib.WithReadOnlyHintAnnotation(true),
		mcplib.WithIdempotentHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleAuthTest}
}

func (s *Server) handleAuthTest(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	raw, err := s.client.AuthTest(ctx)
	if err != nil {
		return resultErr(fmt.Errorf("auth_test: %w", err)), nil
	}
	return resultRaw(raw), nil
}
