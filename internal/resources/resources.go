// Package resources provides the read-only documentation resources offered by the server.
package resources

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Resource URIs.
const (
	APIDocumentationURI = "tana://api/documentation"
	NodeTypesURI        = "tana://reference/node-types"
	CommonPatternsURI   = "tana://examples/common-patterns"
	ServerInfoURI       = "tana://info/server"
)

const markdown = "text/markdown"

// ServerInfo is the live state reported by the server info resource.
type ServerInfo struct {
	Name      string
	Version   string
	Endpoint  string
	Transport string
	Tools     []string
	Prompts   []string
	Resources int
}

// InfoFunc reports the current server state. It is called on every read.
type InfoFunc func() ServerInfo

// Definition pairs a resource with its handler.
type Definition struct {
	Resource *mcp.Resource
	Handler  mcp.ResourceHandler
}

// Definitions returns every resource the server offers.
func Definitions(info InfoFunc) []Definition {
	return []Definition{
		static(APIDocumentationURI, "api-documentation", "Overview of the Tana Input API", APIDocumentation),
		static(NodeTypesURI, "node-types", "Reference for every node type and its fields", NodeTypesReference),
		static(CommonPatternsURI, "common-patterns", "Worked examples of common tool calls", CommonPatterns),
		{
			Resource: &mcp.Resource{
				URI:         ServerInfoURI,
				Name:        "server-info",
				Description: "Server version, configured endpoint and registered capabilities",
				MIMEType:    markdown,
			},
			Handler: func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
				return text(req.Params.URI, RenderServerInfo(info())), nil
			},
		},
	}
}

// Register adds every resource to server and returns their URIs.
func Register(server *mcp.Server, info InfoFunc) []string {
	defs := Definitions(info)
	uris := make([]string, 0, len(defs))
	for _, def := range defs {
		server.AddResource(def.Resource, def.Handler)
		uris = append(uris, def.Resource.URI)
	}
	return uris
}

func static(uri, name, description, body string) Definition {
	return Definition{
		Resource: &mcp.Resource{
			URI:         uri,
			Name:        name,
			Description: description,
			MIMEType:    markdown,
		},
		Handler: func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
			return text(req.Params.URI, body), nil
		},
	}
}

func text(uri, body string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{URI: uri, MIMEType: markdown, Text: body},
		},
	}
}

// RenderServerInfo formats info as markdown.
func RenderServerInfo(info ServerInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", info.Name)
	fmt.Fprintf(&b, "- Version: %s\n", info.Version)
	fmt.Fprintf(&b, "- Endpoint: %s\n", info.Endpoint)
	if info.Transport != "" {
		fmt.Fprintf(&b, "- Transport: %s\n", info.Transport)
	}
	fmt.Fprintf(&b, "- Tools: %d\n", len(info.Tools))
	fmt.Fprintf(&b, "- Prompts: %d\n", len(info.Prompts))
	fmt.Fprintf(&b, "- Resources: %d\n", info.Resources)

	writeList(&b, "Tools", info.Tools)
	writeList(&b, "Prompts", info.Prompts)

	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}
