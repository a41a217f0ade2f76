// Package tools provides centralized response utilities for MCP tool handlers.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/d-kuro/tana-mcp/internal/errors"
)

// ErrorResponse creates a standardized error response for MCP tools.
func ErrorResponse(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: "Error: " + message}},
		IsError: true,
	}
}

// ErrorResponsef creates a standardized error response with formatted message.
func ErrorResponsef(format string, args ...any) *mcp.CallToolResult {
	return ErrorResponse(fmt.Sprintf(format, args...))
}

// ErrorFromErr renders err as a failure result.
func ErrorFromErr(err error) *mcp.CallToolResult {
	if err == nil {
		return ErrorResponse("unknown error")
	}
	return ErrorResponse(err.Error())
}

// JSONResponse creates a response with pretty-printed JSON content.
func JSONResponse(data any) *mcp.CallToolResult {
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return ErrorResponsef("failed to marshal JSON: %v", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(jsonBytes)}},
		IsError: false,
	}
}

// ValidateNonEmpty returns a validation error naming fieldName if value is empty.
func ValidateNonEmpty(value, fieldName string) error {
	if value == "" {
		return errors.Validationf("%s cannot be empty", fieldName)
	}
	return nil
}
