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

import (
	"context"
	"encoding/json"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/rusq/slackmcp/internal/slackapi/mock_slackapi"
)

// newTestServer creates a *Server backed by a MockSlacker.
func newTestServer(t *testing.T, ctrl *gomock.Controller) (*Server, *mock_slackapi.MockSlacker) {
	t.Helper()
	m := mock_slackapi.NewMockSlacker(ctrl)
	srv := New(m, WithLogger(nil))
	require.NotNil(t, srv)
	return srv, m
}

// toolReq builds a CallToolRequest with the given argument map.
func toolReq(args map[string]any) mcplib.CallToolRequest {
	req := mcplib.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// ─── New / options ────────────────────────────────────────────────────────────

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv, _ := newTestServer(t, ctrl)
	assert.NotNil(t, srv.mcp)
	assert.NotNil(t, srv.client)
	assert.NotNil(t, srv.logger)
}

func TestNew_nilLogger(t *testing.T) {
	// A nil logger must not panic and must fall back to slog.Default().
	ctrl := gomock.NewController(t)
	assert.NotPanics(t, func() {
		srv := New(mock_slackapi.NewMockSlacker(ctrl), WithLogger(nil))
		assert.NotNil(t, srv.logger)
	})
}

func TestTools_complete(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv, _ := newTestServer(t, ctrl)

	want := []string{
		"list_channels",
		"post_message",
		"reply_to_thread",
		"add_reaction",
		"get_channel_history",
		"get_thread_replies",
		"get_users",
		"get_user_profile",
		"auth_test",
	}
	tools := srv.tools()
	require.Len(t, tools, len(want))
	var got []string
	for _, tl := range tools {
		require.NotNil(t, tl.Handler, "tool %s has no handler", tl.Tool.Name)
		got = append(got, tl.Tool.Name)
	}
	assert.Equal(t, want, got)
}

func TestTools_requiredParams(t *testing.T) {
	// Every tool's schema must declare the documented required parameters.
	want := map[string][]string{
		"list_channels":       {},
		"post_message":        {"channel_id", "text"},
		"reply_to_thread":     {"channel_id", "thread_ts", "text"},
		"add_reaction":        {"channel_id", "timestamp", "reaction"},
		"get_channel_history": {"channel_id"},
		"get_thread_replies":  {"channel_id", "thread_ts"},
		"get_users":           {},
		"get_user_profile":    {"user_id"},
		"auth_test":           {},
	}

	ctrl := gomock.NewController(t)
	srv, _ := newTestServer(t, ctrl)
	for _, tl := range srv.tools() {
		wantReq, ok := want[tl.Tool.Name]
		require.True(t, ok, "unexpected tool %s", tl.Tool.Name)
		assert.ElementsMatch(t, wantReq, tl.Tool.InputSchema.Required, "tool %s", tl.Tool.Name)
	}
}

func TestAddTool(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv, _ := newTestServer(t, ctrl)

	extra := mcpsrv.ServerTool{
		Tool: mcplib.NewTool("extra_tool", mcplib.WithDescription("extra")),
		Handler: func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
			return resultText("ok"), nil
		},
	}
	assert.NotPanics(t, func() {
		srv.AddTool(extra)
	})
}

func TestInstructions(t *testing.T) {
	got := instructions()
	for _, tool := range []string{"list_channels", "post_message", "add_reaction", "auth_test"} {
		assert.Contains(t, got, tool)
	}
	assert.Contains(t, got, `"ok"`)
}

// ─── result helpers ───────────────────────────────────────────────────────────

func TestResultText(t *testing.T) {
	r := resultText("hello")
	require.NotNil(t, r)
	assert.False(t, r.IsError)
	require.Len(t, r.Content, 1)
	txt, ok := r.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	assert.Equal(t, "hello", txt.Text)
}

func TestResultErr(t *testing.T) {
	r := resultErr(assert.AnError)
	require.NotNil(t, r)
	assert.True(t, r.IsError)
	require.Len(t, r.Content, 1)
	txt, ok := r.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	assert.Equal(t, assert.AnError.Error(), txt.Text)
}

func TestResultRaw(t *testing.T) {
	// The payload must not be re-encoded, provider errors included.
	const body = `{"ok":false,"error":"channel_not_found"}`
	r := resultRaw(json.RawMessage(body))
	require.NotNil(t, r)
	assert.False(t, r.IsError)
	require.Len(t, r.Content, 1)
	txt, ok := r.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	assert.Equal(t, body, txt.Text)
}

// ─── argument helpers ─────────────────────────────────────────────────────────

func TestStringArg(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		argName string
		wantVal string
		wantOK  bool
	}{
		{
			name:    "present string",
			args:    map[string]any{"key": "value"},
			argName: "key",
			wantVal: "value",
			wantOK:  true,
		},
		{
			name:    "missing key",
			args:    map[string]any{},
			argName: "key",
			wantVal: "",
			wantOK:  false,
		},
		{
			name:    "wrong type",
			args:    map[string]any{"key": 42},
			argName: "key",
			wantVal: "",
			wantOK:  false,
		},
		{
			name:    "nil args",
			args:    nil,
			argName: "key",
			wantVal: "",
			wantOK:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := toolReq(tt.args)
			got, ok := stringArg(req, tt.argName)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantVal, got)
		})
	}
}

func TestIntArg(t *testing.T) {
	tests := []struct {
		name       string
		args       map[string]any
		argName    string
		defaultVal int
		want       int
	}{
		{
			name:       "float64 value",
			args:       map[string]any{"n": float64(42)},
			argName:    "n",
			defaultVal: 0,
			want:       42,
		},
		{
			name:       "int value",
			args:       map[string]any{"n": 7},
			argName:    "n",
			defaultVal: 0,
			want:       7,
		},
		{
			name:       "missing key uses default",
			args:       map[string]any{},
			argName:    "n",
			defaultVal: 99,
			want:       99,
		},
		{
			name:       "nil args uses default",
			args:       nil,
			argName:    "n",
			defaultVal: 5,
			want:       5,
		},
		{
			name:       "wrong type uses default",
			args:       map[string]any{"n": "not-a-number"},
			argName:    "n",
			defaultVal: 3,
			want:       3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := toolReq(tt.args)
			got := intArg(req, tt.argName, tt.defaultVal)
			assert.Equal(t, tt.want, got)
		})
	}
}
