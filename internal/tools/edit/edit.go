// Package edit provides the tools that modify existing Tana nodes.
package edit

import (
	"context"
	"log/slog"
	"strings"

	"github.com/d-kuro/tana-mcp/internal/prompts"
	"github.com/d-kuro/tana-mcp/internal/tools"
)

// SetNodeNameArgs represents the arguments for the set_node_name tool.
type SetNodeNameArgs struct {
	NodeID  string `json:"nodeId" jsonschema:"ID of the node to rename"`
	NewName string `json:"newName" jsonschema:"The new node name"`
}

// CreateSetNodeNameTool creates the set_node_name tool.
func CreateSetNodeNameTool(tc *tools.Context) *tools.ServerTool {
	return tools.NewToolBuilder[SetNodeNameArgs]("set_node_name", prompts.SetNodeNameToolDescription, tc).
		WithAnnotations(tools.UpdateAnnotations("Rename node")).
		WithHandler(func(ctx context.Context, logger tools.Logger, args SetNodeNameArgs) (any, error) {
			if err := tools.ValidateNonEmpty(strings.TrimSpace(args.NodeID), "nodeId"); err != nil {
				return nil, err
			}
			if err := tools.ValidateNonEmpty(args.NewName, "newName"); err != nil {
				return nil, err
			}

			logger.Debug("Renaming node", slog.String("node_id", args.NodeID))
			renamed, err := tc.Client.SetNodeName(ctx, args.NodeID, args.NewName)
			if err != nil {
				return nil, err
			}

			logger.Info("Node renamed", slog.String("node_id", renamed.NodeID))
			return renamed, nil
		}).
		Build()
}
