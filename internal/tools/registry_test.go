package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)        {}
func (nopLogger) Info(string, ...any)         {}
func (nopLogger) Warn(string, ...any)         {}
func (nopLogger) Error(string, ...any)        {}
func (l nopLogger) WithTool(string) Logger    { return l }
func (l nopLogger) WithRequest(string) Logger { return l }

type echoArgs struct {
	Text string `json:"text"`
}

func echoTool(ctx *Context, name string) *ServerTool {
	return NewToolBuilder[echoArgs](name, "Echo the text back", ctx).
		WithHandler(func(_ context.Context, _ Logger, args echoArgs) (any, error) {
			if args.Text == "fail" {
				return nil, errors.New("asked to fail")
			}
			return map[string]string{"echo": args.Text}, nil
		}).
		Build()
}

func TestRegistry(t *testing.T) {
	ctx := &Context{Logger: nopLogger{}}
	registry := NewRegistry(ctx)

	if err := registry.RegisterAll([]*ServerTool{echoTool(ctx, "b_tool"), echoTool(ctx, "a_tool")}); err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}

	if got := registry.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
	if got := registry.List(); strings.Join(got, ",") != "a_tool,b_tool" {
		t.Errorf("List() = %v, want sorted names", got)
	}
	if _, ok := registry.Get("a_tool"); !ok {
		t.Error("Get(a_tool) not found")
	}
	if err := registry.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	if err := registry.Register(echoTool(ctx, "a_tool")); err == nil {
		t.Error("expected duplicate registration to fail")
	}
	if err := registry.Register(&ServerTool{Tool: &mcp.Tool{}}); err == nil {
		t.Error("expected empty name to fail")
	}
	if err := registry.Register(nil); err == nil {
		t.Error("expected nil tool to fail")
	}
}

func TestRegistryValidateDescription(t *testing.T) {
	ctx := &Context{Logger: nopLogger{}}
	registry := NewRegistry(ctx)

	tool := echoTool(ctx, "quiet")
	tool.Tool.Description = ""
	if err := registry.Register(tool); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := registry.Validate(); err == nil {
		t.Error("expected missing description to fail validation")
	}
}

func TestToolBuilderResults(t *testing.T) {
	ctx := &Context{Logger: nopLogger{}}
	registry := NewRegistry(ctx)
	if err := registry.Register(echoTool(ctx, "echo")); err != nil {
		t.Fatal(err)
	}

	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "v0.0.1"}, nil)
	registry.Install(server)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(context.Background(), serverTransport, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(context.Background(), clientTransport, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer session.Close()

	tests := []struct {
		text    string
		want    string
		isError bool
	}{
		{"hi", "{\n  \"echo\": \"hi\"\n}", false},
		{"fail", "Error: asked to fail", true},
	}

	for _, tt := range tests {
		res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
			Name:      "echo",
			Arguments: map[string]any{"text": tt.text},
		})
		if err != nil {
			t.Fatalf("CallTool: %v", err)
		}
		if res.IsError != tt.isError {
			t.Errorf("IsError = %v, want %v", res.IsError, tt.isError)
		}
		if len(res.Content) != 1 {
			t.Fatalf("expected 1 content block, got %d", len(res.Content))
		}
		if got := res.Content[0].(*mcp.TextContent).Text; got != tt.want {
			t.Errorf("text = %q, want %q", got, tt.want)
		}
	}
}

func TestErrorFromErr(t *testing.T) {
	res := ErrorFromErr(errors.New("boom"))
	if !res.IsError {
		t.Error("expected IsError")
	}
	if got := res.Content[0].(*mcp.TextContent).Text; got != "Error: boom" {
		t.Errorf("text = %q", got)
	}
}
