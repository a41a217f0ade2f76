package tana

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/d-kuro/tana-mcp/internal/errors"
)

func marshal(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(data)
}

func TestNodeWireFormat(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "plain omits dataType",
			node: PlainNode{Content{Name: "Hello", Description: "greeting"}},
			want: `{"name":"Hello","description":"greeting"}`,
		},
		{
			name: "reference",
			node: ReferenceNode{ID: "abc123"},
			want: `{"dataType":"reference","id":"abc123"}`,
		},
		{
			name: "date has no value",
			node: DateNode{Content{Name: "2024-01-15"}},
			want: `{"dataType":"date","name":"2024-01-15"}`,
		},
		{
			name: "url",
			node: URLNode{Content{Name: "https://tana.inc"}},
			want: `{"dataType":"url","name":"https://tana.inc"}`,
		},
		{
			name: "checked checkbox",
			node: BooleanNode{Content: Content{Name: "Task"}, Value: true},
			want: `{"dataType":"boolean","name":"Task","value":true}`,
		},
		{
			name: "unchecked checkbox keeps value",
			node: BooleanNode{Content: Content{Name: "Task"}},
			want: `{"dataType":"boolean","name":"Task","value":false}`,
		},
		{
			name: "file",
			node: FileNode{Data: "aGk=", Filename: "hi.txt", ContentType: "text/plain"},
			want: `{"dataType":"file","file":"aGk=","filename":"hi.txt","contentType":"text/plain"}`,
		},
		{
			name: "field with ordered children",
			node: FieldNode{AttributeID: "attr", Children: []Node{
				PlainNode{Content{Name: "first"}},
				PlainNode{Content{Name: "second"}},
			}},
			want: `{"type":"field","attributeId":"attr","children":[{"name":"first"},{"name":"second"}]}`,
		},
		{
			name: "supertags and nested children",
			node: PlainNode{Content{
				Name:      "Project",
				Supertags: []Supertag{{ID: "tag", Fields: map[string]string{"f1": "v1"}}},
				Children:  []Node{ReferenceNode{ID: "ref"}},
			}},
			want: `{"name":"Project","supertags":[{"id":"tag","fields":{"f1":"v1"}}],"children":[{"dataType":"reference","id":"ref"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := marshal(t, tt.node); got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestNodeInterfaceMarshal(t *testing.T) {
	req := createNodesRequest{Nodes: []Node{DateNode{Content{Name: "2024-01-15"}}}}
	want := `{"nodes":[{"dataType":"date","name":"2024-01-15"}]}`
	if got := marshal(t, req); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		wantPath string
	}{
		{"valid plain", PlainNode{Content{Name: "x"}}, ""},
		{"valid date", DateNode{Content{Name: "2024-01-15"}}, ""},
		{"valid file", FileNode{Data: "aGk=", Filename: "a.txt", ContentType: "text/plain"}, ""},
		{"nil", nil, "node"},
		{"bad date", DateNode{Content{Name: "tomorrow"}}, "node"},
		{"bad url", URLNode{Content{Name: "not-a-url"}}, "node"},
		{"empty reference", ReferenceNode{}, "node"},
		{"unnamed checkbox", BooleanNode{Value: true}, "node"},
		{"file without filename", FileNode{Data: "aGk=", ContentType: "text/plain"}, "node"},
		{"file with bad data", FileNode{Data: "%%%", Filename: "a", ContentType: "text/plain"}, "node"},
		{"file with bad content type", FileNode{Data: "aGk=", Filename: "a", ContentType: "pdf"}, "node"},
		{"field without attribute", FieldNode{}, "node"},
		{"supertag without id", PlainNode{Content{Name: "x", Supertags: []Supertag{{}}}}, "node.supertags[0]"},
		{
			"nested failure",
			PlainNode{Content{Name: "x", Children: []Node{
				PlainNode{Content{Name: "ok"}},
				FieldNode{AttributeID: "a", Children: []Node{URLNode{Content{Name: "nope"}}}},
			}}},
			"node.children[1].children[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.node)
			if tt.wantPath == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantPath) {
				t.Errorf("error %q does not mention %q", err, tt.wantPath)
			}
		})
	}
}
