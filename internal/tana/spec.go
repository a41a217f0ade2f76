package tana

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/d-kuro/tana-mcp/internal/errors"
)

// NodeSpec is the loosely typed form of a node accepted from tool callers.
// The top level is checked by the tool's input schema; nested children stay
// untyped there and are decoded here, one node at a time, against the same
// variant rules.
type NodeSpec struct {
	Name        string           `json:"name,omitempty" jsonschema:"Node name. For date nodes an ISO 8601 date, for url nodes the URL"`
	Description string           `json:"description,omitempty" jsonschema:"Node description"`
	Supertags   []Supertag       `json:"supertags,omitempty" jsonschema:"Supertags to apply to the node"`
	Children    []map[string]any `json:"children,omitempty" jsonschema:"Child nodes, each with the same shape as this node"`
	DataType    string           `json:"dataType,omitempty" jsonschema:"One of plain, reference, date, url, boolean, file. Defaults to plain"`
	ID          string           `json:"id,omitempty" jsonschema:"Target node ID, for reference nodes only"`
	Value       *bool            `json:"value,omitempty" jsonschema:"Checkbox state, for boolean nodes only"`
	File        string           `json:"file,omitempty" jsonschema:"Base64 file content, for file nodes only"`
	Filename    string           `json:"filename,omitempty" jsonschema:"File name, for file nodes only"`
	ContentType string           `json:"contentType,omitempty" jsonschema:"MIME type, for file nodes only"`
	Type        string           `json:"type,omitempty" jsonschema:"Set to field to create a field node"`
	AttributeID string           `json:"attributeId,omitempty" jsonschema:"Field (attribute) ID, for field nodes only"`
}

// Build converts the spec and its descendants into a validated Node.
func (s NodeSpec) Build() (Node, error) {
	return s.build("node")
}

// BuildAt is Build with errors reported relative to path, e.g. "nodes[3]".
func (s NodeSpec) BuildAt(path string) (Node, error) {
	return s.build(path)
}

// BuildChildren decodes loosely typed children, as found in NodeSpec.Children.
func BuildChildren(children []map[string]any, path string) ([]Node, error) {
	if len(children) == 0 {
		return nil, nil
	}

	nodes := make([]Node, 0, len(children))
	for i, raw := range children {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		spec, err := decodeSpec(raw, childPath)
		if err != nil {
			return nil, err
		}
		node, err := spec.build(childPath)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func decodeSpec(raw map[string]any, path string) (NodeSpec, error) {
	var spec NodeSpec
	if raw == nil {
		return spec, errors.ValidationAt(path, "node must be an object")
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return spec, errors.ValidationAt(path, fmt.Sprintf("node is not encodable: %v", err))
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&spec); err != nil {
		return spec, errors.ValidationAt(path, fmt.Sprintf("malformed node: %v", err))
	}
	return spec, nil
}

func (s NodeSpec) build(path string) (Node, error) {
	var node Node
	var err error

	switch {
	case s.Type == nodeTypeField:
		node, err = s.buildField(path)
	case s.Type != "":
		return nil, errors.ValidationAt(path, fmt.Sprintf("unknown node type %q", s.Type))
	default:
		node, err = s.buildData(path)
	}
	if err != nil {
		return nil, err
	}

	if err := validateAt(node, path); err != nil {
		return nil, err
	}
	return node, nil
}

func (s NodeSpec) buildField(path string) (Node, error) {
	if stray := s.strayFields("name", "description", "supertags", "dataType", "id", "value", "file", "filename", "contentType"); len(stray) > 0 {
		return nil, errors.ValidationAt(path, "field node cannot set "+strings.Join(stray, ", "))
	}

	children, err := BuildChildren(s.Children, path)
	if err != nil {
		return nil, err
	}
	return FieldNode{AttributeID: s.AttributeID, Children: children}, nil
}

func (s NodeSpec) buildData(path string) (Node, error) {
	dataType := s.DataType
	if dataType == "" {
		dataType = DataTypePlain
	}

	if dataType == DataTypeReference {
		if stray := s.strayFields("name", "description", "supertags", "children", "value", "file", "filename", "contentType", "attributeId"); len(stray) > 0 {
			return nil, errors.ValidationAt(path, "reference node cannot set "+strings.Join(stray, ", "))
		}
		return ReferenceNode{ID: s.ID}, nil
	}

	if stray := s.strayFields(disallowedFor(dataType)...); len(stray) > 0 {
		return nil, errors.ValidationAt(path, fmt.Sprintf("%s node cannot set %s", dataType, strings.Join(stray, ", ")))
	}

	children, err := BuildChildren(s.Children, path)
	if err != nil {
		return nil, err
	}
	content := Content{
		Name:        s.Name,
		Description: s.Description,
		Supertags:   s.Supertags,
		Children:    children,
	}

	switch dataType {
	case DataTypePlain:
		return PlainNode{Content: content}, nil
	case DataTypeDate:
		return DateNode{Content: content}, nil
	case DataTypeURL:
		return URLNode{Content: content}, nil
	case DataTypeBoolean:
		if s.Value == nil {
			return nil, errors.ValidationAt(path, "boolean node requires a value")
		}
		return BooleanNode{Content: content, Value: *s.Value}, nil
	case DataTypeFile:
		return FileNode{Content: content, Data: s.File, Filename: s.Filename, ContentType: s.ContentType}, nil
	default:
		return nil, errors.ValidationAt(path, fmt.Sprintf("unknown dataType %q", s.DataType))
	}
}

func disallowedFor(dataType string) []string {
	switch dataType {
	case DataTypeBoolean:
		return []string{"id", "file", "filename", "contentType", "attributeId"}
	case DataTypeFile:
		return []string{"id", "value", "attributeId"}
	default:
		return []string{"id", "value", "file", "filename", "contentType", "attributeId"}
	}
}

// strayFields returns which of the named fields are set on s.
func (s NodeSpec) strayFields(names ...string) []string {
	var set []string
	for _, name := range names {
		if s.has(name) {
			set = append(set, name)
		}
	}
	return set
}

func (s NodeSpec) has(name string) bool {
	switch name {
	case "name":
		return s.Name != ""
	case "description":
		return s.Description != ""
	case "supertags":
		return len(s.Supertags) > 0
	case "children":
		return len(s.Children) > 0
	case "dataType":
		return s.DataType != ""
	case "id":
		return s.ID != ""
	case "value":
		return s.Value != nil
	case "file":
		return s.File != ""
	case "filename":
		return s.Filename != ""
	case "contentType":
		return s.ContentType != ""
	case "attributeId":
		return s.AttributeID != ""
	default:
		return false
	}
}
