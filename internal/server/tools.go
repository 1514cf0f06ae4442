package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolDefinitions returns the tool catalogue. The set is fixed: the same
// two descriptors are returned on every call.
func ToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "download_image",
			Description: "Download an image from a URL and save it to a local path.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"url": map[string]interface{}{
						"type":        "string",
						"description": "URL of the image to download",
					},
					"outputPath": map[string]interface{}{
						"type":        "string",
						"description": "Local path to save the downloaded image",
					},
				},
				"required": []string{"url", "outputPath"},
			},
		},
		{
			Name:        "optimize_image",
			Description: "Optimize an image: resize it to fit within bounds (never enlarging) and/or re-encode it at a given quality. Output format is inferred from the output file extension.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"inputPath": map[string]interface{}{
						"type":        "string",
						"description": "Path to the source image",
					},
					"outputPath": map[string]interface{}{
						"type":        "string",
						"description": "Path to write the optimized image",
					},
					"width": map[string]interface{}{
						"type":        "number",
						"description": "Maximum output width in pixels. Aspect ratio is preserved.",
					},
					"height": map[string]interface{}{
						"type":        "number",
						"description": "Maximum output height in pixels. Aspect ratio is preserved.",
					},
					"quality": map[string]interface{}{
						"type":        "number",
						"description": "Encoding quality for JPEG and WebP output (1-100)",
						"minimum":     1,
						"maximum":     100,
					},
				},
				"required": []string{"inputPath", "outputPath"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": s.tools,
		},
	}
}
