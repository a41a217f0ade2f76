// Package toolstest provides helpers for testing tools against a fake Tana API
// through an in-memory MCP session.
package toolstest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/d-kuro/tana-mcp/internal/tana"
	"github.com/d-kuro/tana-mcp/internal/tools"
	"github.com/d-kuro/tana-mcp/internal/validation"
)

// Token is the API token used by clients built with NewContext.
const Token = "test-token"

// Logger is a tools.Logger that drops everything.
type Logger struct{}

func (Logger) Debug(string, ...any)              {}
func (Logger) Info(string, ...any)               {}
func (Logger) Warn(string, ...any)               {}
func (Logger) Error(string, ...any)              {}
func (l Logger) WithTool(string) tools.Logger    { return l }
func (l Logger) WithRequest(string) tools.Logger { return l }

// Request is a request received by a FakeAPI.
type Request struct {
	Authorization string
	Body          map[string]any
}

// FakeAPI is an httptest server standing in for the Tana Input API.
type FakeAPI struct {
	*httptest.Server

	mu       sync.Mutex
	status   int
	body     string
	requests []Request
}

// NewFakeAPI starts a fake answering every request with status and body.
func NewFakeAPI(t *testing.T, status int, body string) *FakeAPI {
	t.Helper()

	f := &FakeAPI{status: status, body: body}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

func (f *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(data, &body)

	f.mu.Lock()
	f.requests = append(f.requests, Request{Authorization: r.Header.Get("Authorization"), Body: body})
	status, respBody := f.status, f.body
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, respBody)
}

// Respond changes the reply for subsequent requests.
func (f *FakeAPI) Respond(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status, f.body = status, body
}

// Requests returns the requests received so far.
func (f *FakeAPI) Requests() []Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Request(nil), f.requests...)
}

// Calls returns the number of requests received so far.
func (f *FakeAPI) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// LastNodes returns the nodes array of the most recent request.
func (f *FakeAPI) LastNodes(t *testing.T) []any {
	t.Helper()
	reqs := f.Requests()
	if len(reqs) == 0 {
		t.Fatal("no request received")
	}
	nodes, ok := reqs[len(reqs)-1].Body["nodes"].([]any)
	if !ok {
		t.Fatalf("request has no nodes array: %v", reqs[len(reqs)-1].Body)
	}
	return nodes
}

// NewContext returns a tool context whose client talks to endpoint.
func NewContext(t *testing.T, endpoint string) *tools.Context {
	t.Helper()

	client, err := tana.NewClient(Token, tana.WithEndpoint(endpoint))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	return &tools.Context{
		Logger:    Logger{},
		Validator: validation.NewDefaultValidator(),
		Client:    client,
	}
}

// Connect registers serverTools on a fresh server and returns a connected client session.
func Connect(t *testing.T, serverTools ...*tools.ServerTool) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := mcp.NewServer(&mcp.Implementation{Name: "test-server", Version: "v0.0.1"}, nil)
	for _, tool := range serverTools {
		tool.RegisterFunc(server)
	}

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

// Call invokes a tool and returns its text output and error flag.
// Protocol-level failures, such as arguments rejected by the input schema,
// fail the test.
func Call(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) (string, bool) {
	t.Helper()

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}

	var texts []string
	for _, c := range result.Content {
		if text, ok := c.(*mcp.TextContent); ok {
			texts = append(texts, text.Text)
		}
	}
	return strings.Join(texts, "\n"), result.IsError
}

// CallRejected invokes a tool expecting the call itself to be rejected.
func CallRejected(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) error {
	t.Helper()

	_, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	if err == nil {
		t.Fatalf("CallTool(%s) succeeded, expected rejection", name)
	}
	return err
}
