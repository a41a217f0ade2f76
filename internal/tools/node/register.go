package node

import (
	"github.com/d-kuro/tana-mcp/internal/tools"
)

// CreateNodeTools creates all node creation tools using MCP SDK patterns.
func CreateNodeTools(ctx *tools.Context) []*tools.ServerTool {
	return []*tools.ServerTool{
		CreatePlainNodeTool(ctx),
		CreateReferenceNodeTool(ctx),
		CreateDateNodeTool(ctx),
		CreateURLNodeTool(ctx),
		CreateCheckboxNodeTool(ctx),
		CreateFileNodeTool(ctx),
		CreateFieldNodeTool(ctx),
		CreateNodeStructureTool(ctx),
		CreateNodesTool(ctx),
	}
}
