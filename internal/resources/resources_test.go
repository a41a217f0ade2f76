package resources

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func connect(t *testing.T, info InfoFunc) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := mcp.NewServer(&mcp.Implementation{Name: "test-server", Version: "v0.0.1"}, nil)
	Register(server, info)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })

	return session
}

func read(t *testing.T, session *mcp.ClientSession, uri string) string {
	t.Helper()

	result, err := session.ReadResource(context.Background(), &mcp.ReadResourceParams{URI: uri})
	if err != nil {
		t.Fatalf("ReadResource(%s): %v", uri, err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("expected 1 content, got %d", len(result.Contents))
	}
	if result.Contents[0].URI != uri {
		t.Errorf("content URI = %q, want %q", result.Contents[0].URI, uri)
	}
	return result.Contents[0].Text
}

func TestStaticResources(t *testing.T) {
	session := connect(t, func() ServerInfo { return ServerInfo{} })

	list, err := session.ListResources(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListResources: %v", err)
	}
	if len(list.Resources) != 4 {
		t.Errorf("expected 4 resources, got %d", len(list.Resources))
	}

	tests := []struct {
		uri  string
		want string
	}{
		{APIDocumentationURI, "At most 100 nodes per request"},
		{NodeTypesURI, `{"dataType": "reference", "id": "target node ID"}`},
		{CommonPatternsURI, "create_supertag"},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			if got := read(t, session, tt.uri); !strings.Contains(got, tt.want) {
				t.Errorf("resource %s does not contain %q", tt.uri, tt.want)
			}
		})
	}
}

func TestServerInfoIsLive(t *testing.T) {
	var reads atomic.Int32
	endpoint := "https://first.example.com/add"

	session := connect(t, func() ServerInfo {
		reads.Add(1)
		return ServerInfo{
			Name:      "tana-mcp",
			Version:   "v1.2.3",
			Endpoint:  endpoint,
			Tools:     []string{"create_plain_node", "set_node_name"},
			Prompts:   []string{"create-task"},
			Resources: 4,
		}
	})

	first := read(t, session, ServerInfoURI)
	for _, want := range []string{"# tana-mcp", "- Version: v1.2.3", "- Endpoint: https://first.example.com/add", "- Tools: 2", "- Prompts: 1", "- Resources: 4", "- set_node_name"} {
		if !strings.Contains(first, want) {
			t.Errorf("server info missing %q:\n%s", want, first)
		}
	}

	endpoint = "https://second.example.com/add"
	second := read(t, session, ServerInfoURI)
	if !strings.Contains(second, "second.example.com") {
		t.Errorf("server info was not recomputed:\n%s", second)
	}
	if reads.Load() != 2 {
		t.Errorf("info func called %d times, want 2", reads.Load())
	}
}

func TestUnknownResource(t *testing.T) {
	session := connect(t, func() ServerInfo { return ServerInfo{} })

	if _, err := session.ReadResource(context.Background(), &mcp.ReadResourceParams{URI: "tana://nope"}); err == nil {
		t.Error("expected error for unknown resource")
	}
}
