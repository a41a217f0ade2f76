package schema

import (
	"github.com/d-kuro/tana-mcp/internal/tools"
)

// CreateSchemaTools creates the supertag and field definition tools.
func CreateSchemaTools(ctx *tools.Context) []*tools.ServerTool {
	return []*tools.ServerTool{
		CreateSupertagTool(ctx),
		CreateFieldTool(ctx),
	}
}
