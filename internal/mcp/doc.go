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

// Package mcp implements a Model Context Protocol (MCP) server that exposes
// live Slack workspace operations as tools an AI agent can call: listing
// channels and users, reading channel history and threads, posting messages
// and replies, and adding reactions.
//
// Every tool maps to exactly one Slack Web API call, and its result is the
// provider's JSON response passed through verbatim, provider-reported errors
// included.  The agent sees exactly what Slack returned.
//
// Transport: the server supports two transports selectable at runtime:
//   - stdio  – standard MCP stdio transport (default); suitable for local
//     agent integration (e.g. Claude Desktop, VS Code Copilot).
//   - http   – Streamable HTTP transport; suitable for remote agents or when
//     multiple concurrent clients are needed.
package mcp
