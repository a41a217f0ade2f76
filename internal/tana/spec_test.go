package tana

import (
	"strings"
	"testing"

	"github.com/d-kuro/tana-mcp/internal/errors"
)

func boolPtr(b bool) *bool { return &b }

func TestNodeSpecBuild(t *testing.T) {
	tests := []struct {
		name string
		spec NodeSpec
		want string
	}{
		{
			name: "defaults to plain",
			spec: NodeSpec{Name: "Root"},
			want: `{"name":"Root"}`,
		},
		{
			name: "checkbox",
			spec: NodeSpec{DataType: "boolean", Name: "Done", Value: boolPtr(false)},
			want: `{"dataType":"boolean","name":"Done","value":false}`,
		},
		{
			name: "nested tree",
			spec: NodeSpec{
				Name:      "Meeting",
				Supertags: []Supertag{{ID: "meeting"}},
				Children: []map[string]any{
					{"dataType": "date", "name": "2024-03-01"},
					{"type": "field", "attributeId": "attendees", "children": []any{
						map[string]any{"name": "Ada"},
						map[string]any{"dataType": "reference", "id": "grace"},
					}},
				},
			},
			want: `{"name":"Meeting","supertags":[{"id":"meeting"}],"children":[` +
				`{"dataType":"date","name":"2024-03-01"},` +
				`{"type":"field","attributeId":"attendees","children":[{"name":"Ada"},{"dataType":"reference","id":"grace"}]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := tt.spec.Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if got := marshal(t, node); got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestNodeSpecBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		spec    NodeSpec
		wantMsg string
	}{
		{
			name:    "unknown data type",
			spec:    NodeSpec{DataType: "number", Name: "1"},
			wantMsg: `unknown dataType "number"`,
		},
		{
			name:    "unknown node type",
			spec:    NodeSpec{Type: "tag"},
			wantMsg: `unknown node type "tag"`,
		},
		{
			name:    "reference with children",
			spec:    NodeSpec{DataType: "reference", ID: "x", Children: []map[string]any{{"name": "child"}}},
			wantMsg: "reference node cannot set children",
		},
		{
			name:    "field with name",
			spec:    NodeSpec{Type: "field", AttributeID: "a", Name: "nope"},
			wantMsg: "field node cannot set name",
		},
		{
			name:    "plain with value",
			spec:    NodeSpec{Name: "x", Value: boolPtr(true)},
			wantMsg: "plain node cannot set value",
		},
		{
			name:    "boolean without value",
			spec:    NodeSpec{DataType: "boolean", Name: "x"},
			wantMsg: "boolean node requires a value",
		},
		{
			name:    "unknown nested field",
			spec:    NodeSpec{Name: "x", Children: []map[string]any{{"name": "y", "colour": "red"}}},
			wantMsg: "node.children[0]: malformed node",
		},
		{
			name:    "wrong nested type",
			spec:    NodeSpec{Name: "x", Children: []map[string]any{{"name": 42}}},
			wantMsg: "node.children[0]: malformed node",
		},
		{
			name: "deep invalid url",
			spec: NodeSpec{Name: "x", Children: []map[string]any{
				{"name": "y", "children": []any{map[string]any{"dataType": "url", "name": "not-a-url"}}},
			}},
			wantMsg: "node.children[0].children[0]",
		},
		{
			name:    "nil child",
			spec:    NodeSpec{Name: "x", Children: []map[string]any{nil}},
			wantMsg: "node must be an object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.spec.Build()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err, tt.wantMsg)
			}
		})
	}
}
