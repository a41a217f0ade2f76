package edit

import (
	"github.com/d-kuro/tana-mcp/internal/tools"
)

// CreateEditTools creates all node editing tools.
func CreateEditTools(ctx *tools.Context) []*tools.ServerTool {
	return []*tools.ServerTool{
		CreateSetNodeNameTool(ctx),
	}
}
