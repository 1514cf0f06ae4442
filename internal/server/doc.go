// Package server implements the MCP (Model Context Protocol) server for
// image download and optimization tools.
//
// This package provides a JSON-RPC 2.0 server that exposes two tools
// through the MCP protocol. It's designed to work with Claude and other
// MCP-compatible clients.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// The catalogue is fixed at two tools and never changes at runtime:
//   - download_image: Fetch an image over HTTP and save it locally
//   - optimize_image: Resize and/or re-encode a local image
//
// # Error Handling
//
// Failures fall into two tiers. Problems detected before a tool runs
// (unknown tool name, malformed or invalid arguments) come back as
// JSON-RPC errors:
//   - code -32601: Method not found / unknown tool
//   - code -32602: Invalid params
//   - code -32603: Internal error (handler panic)
//
// Failures inside a tool's own work (network, filesystem, codec) are
// reported as a successful transport response whose result carries
// isError=true and a human-readable message. Callers must inspect
// isError to detect them. No failure is retried.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(server.ToolDefinitions(), os.Stdin, os.Stdout)
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
