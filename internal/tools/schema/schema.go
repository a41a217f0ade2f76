// Package schema provides the tools that define supertags and fields.
//
// Definitions are plain nodes tagged with a system tag and, unless told
// otherwise, placed under the workspace schema node.
package schema

import (
	"context"
	"log/slog"

	"github.com/d-kuro/tana-mcp/internal/prompts"
	"github.com/d-kuro/tana-mcp/internal/tana"
	"github.com/d-kuro/tana-mcp/internal/tools"
)

// DefinitionArgs represents the arguments for the create_supertag and create_field tools.
type DefinitionArgs struct {
	TargetNodeID string `json:"targetNodeId,omitempty" jsonschema:"Where to create the definition. Defaults to SCHEMA"`
	Name         string `json:"name" jsonschema:"Name of the definition"`
	Description  string `json:"description,omitempty" jsonschema:"What the definition is for"`
}

// definitionNode builds the node for a definition tagged with systemTag.
func definitionNode(args DefinitionArgs, systemTag string) tana.PlainNode {
	return tana.PlainNode{Content: tana.Content{
		Name:        args.Name,
		Description: args.Description,
		Supertags:   []tana.Supertag{{ID: systemTag}},
	}}
}

func targetOrSchema(target string) string {
	if target == "" {
		return tana.SchemaNodeID
	}
	return target
}

func createDefinition(tc *tools.Context, name, description, title, systemTag string) *tools.ServerTool {
	return tools.NewToolBuilder[DefinitionArgs](name, description, tc).
		WithAnnotations(tools.AdditiveAnnotations(title)).
		WithHandler(func(ctx context.Context, logger tools.Logger, args DefinitionArgs) (any, error) {
			if err := tools.ValidateNonEmpty(args.Name, "name"); err != nil {
				return nil, err
			}

			target := targetOrSchema(args.TargetNodeID)
			logger.Debug("Creating definition", slog.String("system_tag", systemTag), slog.String("target", target))

			created, err := tc.Client.CreateNode(ctx, target, definitionNode(args, systemTag))
			if err != nil {
				return nil, err
			}

			logger.Info("Definition created", slog.String("node_id", created.NodeID))
			return created, nil
		}).
		Build()
}

// CreateSupertagTool creates the create_supertag tool.
func CreateSupertagTool(tc *tools.Context) *tools.ServerTool {
	return createDefinition(tc, "create_supertag", prompts.CreateSupertagToolDescription, "Create supertag", tana.SupertagSystemTagID)
}

// CreateFieldTool creates the create_field tool.
func CreateFieldTool(tc *tools.Context) *tools.ServerTool {
	return createDefinition(tc, "create_field", prompts.CreateFieldToolDescription, "Create field", tana.FieldSystemTagID)
}
