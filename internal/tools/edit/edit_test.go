package edit

import (
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/d-kuro/tana-mcp/internal/tools/toolstest"
)

func TestSetNodeName(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{
			name:     "vendor returns nothing",
			response: `{}`,
			want:     "{\n  \"nodeId\": \"abc\"\n}",
		},
		{
			name:     "vendor returns empty body",
			response: ``,
			want:     "{\n  \"nodeId\": \"abc\"\n}",
		},
		{
			name:     "vendor echoes node",
			response: `{"children":[{"nodeId":"abc","name":"X"}]}`,
			want:     "{\n  \"nodeId\": \"abc\",\n  \"name\": \"X\"\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := toolstest.NewFakeAPI(t, http.StatusOK, tt.response)
			session := toolstest.Connect(t, CreateEditTools(toolstest.NewContext(t, api.URL))...)

			text, isError := toolstest.Call(t, session, "set_node_name", map[string]any{"nodeId": "abc", "newName": "X"})
			if isError {
				t.Fatalf("unexpected failure: %s", text)
			}
			if text != tt.want {
				t.Errorf("result = %q, want %q", text, tt.want)
			}

			reqs := api.Requests()
			if len(reqs) != 1 {
				t.Fatalf("expected 1 request, got %d", len(reqs))
			}
			wantBody := map[string]any{"targetNodeId": "abc", "setName": "X"}
			if !reflect.DeepEqual(reqs[0].Body, wantBody) {
				t.Errorf("request body = %v, want %v", reqs[0].Body, wantBody)
			}
		})
	}
}

func TestSetNodeNameFailures(t *testing.T) {
	t.Run("blank node id", func(t *testing.T) {
		api := toolstest.NewFakeAPI(t, http.StatusOK, `{}`)
		session := toolstest.Connect(t, CreateEditTools(toolstest.NewContext(t, api.URL))...)

		text, isError := toolstest.Call(t, session, "set_node_name", map[string]any{"nodeId": " ", "newName": "X"})
		if !isError || !strings.Contains(text, "nodeId cannot be empty") {
			t.Errorf("unexpected result: %v %s", isError, text)
		}
		if api.Calls() != 0 {
			t.Errorf("expected no request, got %d", api.Calls())
		}
	})

	t.Run("server error", func(t *testing.T) {
		api := toolstest.NewFakeAPI(t, http.StatusInternalServerError, `oops`)
		session := toolstest.Connect(t, CreateEditTools(toolstest.NewContext(t, api.URL))...)

		text, isError := toolstest.Call(t, session, "set_node_name", map[string]any{"nodeId": "abc", "newName": "X"})
		if !isError {
			t.Fatalf("expected failure, got %s", text)
		}
		if text != "Error: Tana API error: 500 Internal Server Error" {
			t.Errorf("unexpected message: %s", text)
		}
	})
}
