package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"image-fetch-mcp/internal/optimize"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke ("download_image" or "optimize_image").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// ToolResult is the payload returned after a tool has run. A failure
// inside a tool is reported here with IsError set, not as a JSON-RPC
// error: the transport succeeds and the caller inspects isError.
type ToolResult struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

// Content is a single content item in a tool result.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func textResult(text string) *ToolResult {
	return &ToolResult{
		Content: []Content{{Type: "text", Text: text}},
	}
}

func errorResult(err error) *ToolResult {
	return &ToolResult{
		Content: []Content{{Type: "text", Text: err.Error()}},
		IsError: true,
	}
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// Failures split into two tiers:
//   - protocol errors, raised before a handler runs: unknown tool name
//     (-32601) and malformed or invalid arguments (-32602)
//   - tool failures, raised while a handler's side effects execute:
//     these come back as a ToolResult with isError=true
//
// A panic inside a handler is mapped to -32603 rather than folded into
// the tool tier.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) (resp *MCPResponse) {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic in tool %q: %v", params.Name, r)
			resp = s.errorResponse(req.ID, -32603, "Internal error", fmt.Sprint(r))
		}
	}()

	var result *ToolResult
	switch params.Name {
	case "download_image":
		args, err := decodeDownloadArgs(params.Arguments)
		if err != nil {
			return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
		}
		result = s.runDownload(ctx, args)
	case "optimize_image":
		args, err := decodeOptimizeArgs(params.Arguments)
		if err != nil {
			return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
		}
		result = s.runOptimize(args)
	default:
		return s.errorResponse(req.ID, -32601, "Method not found", fmt.Sprintf("unknown tool: %s", params.Name))
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  result,
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// === Argument decoding ===
//
// Arguments are decoded into typed request values at the boundary, so
// handlers never see a malformed bag. A wrong JSON type surfaces as an
// unmarshal error; missing required fields and out-of-range numbers are
// reported by field name. All of these map to -32602 upstream.

type downloadArgs struct {
	URL        string `json:"url"`
	OutputPath string `json:"outputPath"`
}

func decodeDownloadArgs(raw json.RawMessage) (*downloadArgs, error) {
	var a downloadArgs
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, err
	}
	if a.URL == "" {
		return nil, errors.New("url is required and must be a non-empty string")
	}
	if a.OutputPath == "" {
		return nil, errors.New("outputPath is required and must be a non-empty string")
	}
	return &a, nil
}

type optimizeArgs struct {
	InputPath  string `json:"inputPath"`
	OutputPath string `json:"outputPath"`
	Width      *int   `json:"width"`
	Height     *int   `json:"height"`
	Quality    *int   `json:"quality"`
}

func decodeOptimizeArgs(raw json.RawMessage) (*optimizeArgs, error) {
	var a optimizeArgs
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, err
	}
	if a.InputPath == "" {
		return nil, errors.New("inputPath is required and must be a non-empty string")
	}
	if a.OutputPath == "" {
		return nil, errors.New("outputPath is required and must be a non-empty string")
	}
	if a.Width != nil && *a.Width <= 0 {
		return nil, fmt.Errorf("width must be a positive number, got %d", *a.Width)
	}
	if a.Height != nil && *a.Height <= 0 {
		return nil, fmt.Errorf("height must be a positive number, got %d", *a.Height)
	}
	if a.Quality != nil && (*a.Quality < 1 || *a.Quality > 100) {
		return nil, fmt.Errorf("quality must be between 1 and 100, got %d", *a.Quality)
	}
	return &a, nil
}

// === Tool handlers ===

func (s *Server) runDownload(ctx context.Context, args *downloadArgs) *ToolResult {
	if err := s.fetcher.Download(ctx, args.URL, args.OutputPath); err != nil {
		log.Printf("download_image failed: %v", err)
		return errorResult(fmt.Errorf("failed to download image: %w", err))
	}
	return textResult(fmt.Sprintf("Image downloaded successfully to %s", args.OutputPath))
}

func (s *Server) runOptimize(args *optimizeArgs) *ToolResult {
	opts := optimize.Options{}
	if args.Width != nil {
		opts.Width = *args.Width
	}
	if args.Height != nil {
		opts.Height = *args.Height
	}
	if args.Quality != nil {
		opts.Quality = *args.Quality
	}

	if err := optimize.Run(args.InputPath, args.OutputPath, opts); err != nil {
		log.Printf("optimize_image failed: %v", err)
		return errorResult(fmt.Errorf("failed to optimize image: %w", err))
	}
	return textResult(fmt.Sprintf("Image optimized successfully to %s", args.OutputPath))
}
