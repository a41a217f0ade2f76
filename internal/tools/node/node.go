// Package node provides the tools that create Tana nodes.
package node

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/d-kuro/tana-mcp/internal/errors"
	"github.com/d-kuro/tana-mcp/internal/prompts"
	"github.com/d-kuro/tana-mcp/internal/tana"
	"github.com/d-kuro/tana-mcp/internal/tools"
)

// PlainNodeArgs represents the arguments for the create_plain_node tool.
type PlainNodeArgs struct {
	tools.TargetArgs
	Name string `json:"name" jsonschema:"Node text"`
	tools.ContentArgs
}

// ReferenceNodeArgs represents the arguments for the create_reference_node tool.
type ReferenceNodeArgs struct {
	tools.TargetArgs
	ReferenceID string `json:"referenceId" jsonschema:"ID of the node to reference"`
}

// DateNodeArgs represents the arguments for the create_date_node tool.
type DateNodeArgs struct {
	tools.TargetArgs
	Date string `json:"date" jsonschema:"ISO 8601 date, e.g. 2024-01-15"`
	tools.ContentArgs
}

// URLNodeArgs represents the arguments for the create_url_node tool.
type URLNodeArgs struct {
	tools.TargetArgs
	URL string `json:"url" jsonschema:"Absolute URL including the scheme"`
	tools.ContentArgs
}

// CheckboxNodeArgs represents the arguments for the create_checkbox_node tool.
type CheckboxNodeArgs struct {
	tools.TargetArgs
	Name    string `json:"name" jsonschema:"Checkbox label"`
	Checked bool   `json:"checked" jsonschema:"Whether the checkbox starts checked"`
	tools.ContentArgs
}

// FileNodeArgs represents the arguments for the create_file_node tool.
type FileNodeArgs struct {
	tools.TargetArgs
	FileData    string `json:"fileData" jsonschema:"Base64 encoded file content"`
	Filename    string `json:"filename" jsonschema:"File name shown in Tana"`
	ContentType string `json:"contentType" jsonschema:"MIME type, e.g. application/pdf"`
	tools.ContentArgs
}

// FieldNodeArgs represents the arguments for the create_field_node tool.
type FieldNodeArgs struct {
	tools.TargetArgs
	AttributeID string          `json:"attributeId" jsonschema:"ID of the field definition"`
	Children    []tana.NodeSpec `json:"children,omitempty" jsonschema:"Field values, in order"`
}

// NodeStructureArgs represents the arguments for the create_node_structure tool.
type NodeStructureArgs struct {
	tools.TargetArgs
	Node tana.NodeSpec `json:"node" jsonschema:"The node to create, with nested children"`
}

// NodesArgs represents the arguments for the create_nodes tool.
type NodesArgs struct {
	tools.TargetArgs
	Nodes []tana.NodeSpec `json:"nodes" jsonschema:"Nodes to create as siblings, at most 100"`
}

func content(name string, args tools.ContentArgs) tana.Content {
	return tana.Content{
		Name:        name,
		Description: args.Description,
		Supertags:   args.Supertags,
	}
}

// create sends a single node and logs the outcome.
func create(ctx context.Context, tc *tools.Context, logger tools.Logger, target string, n tana.Node) (any, error) {
	logger.Debug("Creating node", slog.String("kind", n.Kind()), slog.String("target", target))

	created, err := tc.Client.CreateNode(ctx, target, n)
	if err != nil {
		return nil, err
	}

	logger.Info("Node created", slog.String("node_id", created.NodeID))
	return created, nil
}

// CreatePlainNodeTool creates the create_plain_node tool.
func CreatePlainNodeTool(tc *tools.Context) *tools.ServerTool {
	return tools.NewToolBuilder[PlainNodeArgs]("create_plain_node", prompts.CreatePlainNodeToolDescription, tc).
		WithAnnotations(tools.AdditiveAnnotations("Create plain node")).
		WithHandler(func(ctx context.Context, logger tools.Logger, args PlainNodeArgs) (any, error) {
			if err := tools.ValidateNonEmpty(args.Name, "name"); err != nil {
				return nil, err
			}
			return create(ctx, tc, logger, args.TargetNodeID, tana.PlainNode{Content: content(args.Name, args.ContentArgs)})
		}).
		Build()
}

// CreateReferenceNodeTool creates the create_reference_node tool.
func CreateReferenceNodeTool(tc *tools.Context) *tools.ServerTool {
	return tools.NewToolBuilder[ReferenceNodeArgs]("create_reference_node", prompts.CreateReferenceNodeToolDescription, tc).
		WithAnnotations(tools.AdditiveAnnotations("Create reference node")).
		WithHandler(func(ctx context.Context, logger tools.Logger, args ReferenceNodeArgs) (any, error) {
			if err := tools.ValidateNonEmpty(args.ReferenceID, "referenceId"); err != nil {
				return nil, err
			}
			return create(ctx, tc, logger, args.TargetNodeID, tana.ReferenceNode{ID: args.ReferenceID})
		}).
		Build()
}

// CreateDateNodeTool creates the create_date_node tool.
func CreateDateNodeTool(tc *tools.Context) *tools.ServerTool {
	return tools.NewToolBuilder[DateNodeArgs]("create_date_node", prompts.CreateDateNodeToolDescription, tc).
		WithAnnotations(tools.AdditiveAnnotations("Create date node")).
		WithHandler(func(ctx context.Context, logger tools.Logger, args DateNodeArgs) (any, error) {
			if err := tc.Validator.ValidateDate(args.Date); err != nil {
				return nil, errors.Wrap(err, "date")
			}
			return create(ctx, tc, logger, args.TargetNodeID, tana.DateNode{Content: content(args.Date, args.ContentArgs)})
		}).
		Build()
}

// CreateURLNodeTool creates the create_url_node tool.
func CreateURLNodeTool(tc *tools.Context) *tools.ServerTool {
	return tools.NewToolBuilder[URLNodeArgs]("create_url_node", prompts.CreateURLNodeToolDescription, tc).
		WithAnnotations(tools.AdditiveAnnotations("Create URL node")).
		WithHandler(func(ctx context.Context, logger tools.Logger, args URLNodeArgs) (any, error) {
			if err := tc.Validator.ValidateURL(args.URL); err != nil {
				return nil, errors.Wrap(err, "url")
			}
			return create(ctx, tc, logger, args.TargetNodeID, tana.URLNode{Content: content(args.URL, args.ContentArgs)})
		}).
		Build()
}

// CreateCheckboxNodeTool creates the create_checkbox_node tool.
func CreateCheckboxNodeTool(tc *tools.Context) *tools.ServerTool {
	return tools.NewToolBuilder[CheckboxNodeArgs]("create_checkbox_node", prompts.CreateCheckboxNodeToolDescription, tc).
		WithAnnotations(tools.AdditiveAnnotations("Create checkbox node")).
		WithHandler(func(ctx context.Context, logger tools.Logger, args CheckboxNodeArgs) (any, error) {
			if err := tools.ValidateNonEmpty(args.Name, "name"); err != nil {
				return nil, err
			}
			return create(ctx, tc, logger, args.TargetNodeID, tana.BooleanNode{
				Content: content(args.Name, args.ContentArgs),
				Value:   args.Checked,
			})
		}).
		Build()
}

// CreateFileNodeTool creates the create_file_node tool.
func CreateFileNodeTool(tc *tools.Context) *tools.ServerTool {
	return tools.NewToolBuilder[FileNodeArgs]("create_file_node", prompts.CreateFileNodeToolDescription, tc).
		WithAnnotations(tools.AdditiveAnnotations("Upload file")).
		WithHandler(func(ctx context.Context, logger tools.Logger, args FileNodeArgs) (any, error) {
			if err := tc.Validator.ValidateBase64(args.FileData); err != nil {
				return nil, errors.Wrap(err, "fileData")
			}
			if err := tools.ValidateNonEmpty(args.Filename, "filename"); err != nil {
				return nil, err
			}
			if err := tc.Validator.ValidateContentType(args.ContentType); err != nil {
				return nil, errors.Wrap(err, "contentType")
			}
			return create(ctx, tc, logger, args.TargetNodeID, tana.FileNode{
				Content:     content("", args.ContentArgs),
				Data:        args.FileData,
				Filename:    args.Filename,
				ContentType: args.ContentType,
			})
		}).
		Build()
}

// CreateFieldNodeTool creates the create_field_node tool.
func CreateFieldNodeTool(tc *tools.Context) *tools.ServerTool {
	return tools.NewToolBuilder[FieldNodeArgs]("create_field_node", prompts.CreateFieldNodeToolDescription, tc).
		WithAnnotations(tools.AdditiveAnnotations("Set field value")).
		WithHandler(func(ctx context.Context, logger tools.Logger, args FieldNodeArgs) (any, error) {
			if err := tools.ValidateNonEmpty(args.AttributeID, "attributeId"); err != nil {
				return nil, err
			}

			children, err := buildAll(args.Children, "children")
			if err != nil {
				return nil, err
			}
			return create(ctx, tc, logger, args.TargetNodeID, tana.FieldNode{
				AttributeID: args.AttributeID,
				Children:    children,
			})
		}).
		Build()
}

// CreateNodeStructureTool creates the create_node_structure tool.
func CreateNodeStructureTool(tc *tools.Context) *tools.ServerTool {
	return tools.NewToolBuilder[NodeStructureArgs]("create_node_structure", prompts.CreateNodeStructureToolDescription, tc).
		WithAnnotations(tools.AdditiveAnnotations("Create node structure")).
		WithHandler(func(ctx context.Context, logger tools.Logger, args NodeStructureArgs) (any, error) {
			n, err := args.Node.Build()
			if err != nil {
				return nil, err
			}
			return create(ctx, tc, logger, args.TargetNodeID, n)
		}).
		Build()
}

// CreateNodesTool creates the create_nodes tool.
func CreateNodesTool(tc *tools.Context) *tools.ServerTool {
	return tools.NewToolBuilder[NodesArgs]("create_nodes", prompts.CreateNodesToolDescription, tc).
		WithAnnotations(tools.AdditiveAnnotations("Create nodes")).
		WithHandler(func(ctx context.Context, logger tools.Logger, args NodesArgs) (any, error) {
			if len(args.Nodes) > tana.MaxNodesPerRequest {
				return nil, errors.Validationf("Maximum of %d nodes can be created in a single request", tana.MaxNodesPerRequest)
			}

			nodes, err := buildAll(args.Nodes, "nodes")
			if err != nil {
				return nil, err
			}

			logger.Debug("Creating nodes", slog.Int("count", len(nodes)), slog.String("target", args.TargetNodeID))
			created, err := tc.Client.CreateNodes(ctx, args.TargetNodeID, nodes)
			if err != nil {
				return nil, err
			}

			logger.Info("Nodes created", slog.Int("count", len(created)))
			return created, nil
		}).
		Build()
}

func buildAll(specs []tana.NodeSpec, path string) ([]tana.Node, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	nodes := make([]tana.Node, 0, len(specs))
	for i, spec := range specs {
		n, err := spec.BuildAt(fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
