// Package tana implements a client for the Tana Input API and the node model it accepts.
//
// Node is a closed set of variants. Each variant carries only the fields the
// API allows for it, so payloads like a reference node with children cannot
// be built. Every node is validated before it is sent.
package tana

import (
	"encoding/json"
	"fmt"

	"github.com/d-kuro/tana-mcp/internal/errors"
	"github.com/d-kuro/tana-mcp/internal/validation"
)

// Data types understood by the Input API.
const (
	DataTypePlain     = "plain"
	DataTypeReference = "reference"
	DataTypeDate      = "date"
	DataTypeURL       = "url"
	DataTypeBoolean   = "boolean"
	DataTypeFile      = "file"

	nodeTypeField = "field"
)

// Node is one entry of a create-nodes payload.
type Node interface {
	// Kind returns the variant name: a data type or "field".
	Kind() string

	validate(path string) error
	wire() wireNode
}

// Supertag references a tag definition, optionally filling some of its fields.
type Supertag struct {
	ID     string            `json:"id" jsonschema:"ID of the supertag definition"`
	Fields map[string]string `json:"fields,omitempty" jsonschema:"Field values keyed by field (attribute) ID"`
}

// Content holds the fields shared by plain, date, url, boolean and file nodes.
type Content struct {
	Name        string
	Description string
	Supertags   []Supertag
	Children    []Node
}

// PlainNode is a regular text node.
type PlainNode struct {
	Content
}

// ReferenceNode points at an existing node.
type ReferenceNode struct {
	ID string
}

// DateNode is a date node. Name holds the ISO 8601 date.
type DateNode struct {
	Content
}

// URLNode is a URL node. Name holds the URL.
type URLNode struct {
	Content
}

// BooleanNode is a checkbox node.
type BooleanNode struct {
	Content
	Value bool
}

// FileNode uploads a file. Data is base64 encoded.
type FileNode struct {
	Content
	Data        string
	Filename    string
	ContentType string
}

// FieldNode attaches children as values of a field.
type FieldNode struct {
	AttributeID string
	Children    []Node
}

func (PlainNode) Kind() string     { return DataTypePlain }
func (ReferenceNode) Kind() string { return DataTypeReference }
func (DateNode) Kind() string      { return DataTypeDate }
func (URLNode) Kind() string       { return DataTypeURL }
func (BooleanNode) Kind() string   { return DataTypeBoolean }
func (FileNode) Kind() string      { return DataTypeFile }
func (FieldNode) Kind() string     { return nodeTypeField }

// wireNode is the JSON shape of every variant.
type wireNode struct {
	DataType    string     `json:"dataType,omitempty"`
	Type        string     `json:"type,omitempty"`
	ID          string     `json:"id,omitempty"`
	Name        string     `json:"name,omitempty"`
	Description string     `json:"description,omitempty"`
	Value       *bool      `json:"value,omitempty"`
	File        string     `json:"file,omitempty"`
	Filename    string     `json:"filename,omitempty"`
	ContentType string     `json:"contentType,omitempty"`
	AttributeID string     `json:"attributeId,omitempty"`
	Supertags   []Supertag `json:"supertags,omitempty"`
	Children    []wireNode `json:"children,omitempty"`
}

func (c Content) wire(dataType string) wireNode {
	return wireNode{
		DataType:    dataType,
		Name:        c.Name,
		Description: c.Description,
		Supertags:   c.Supertags,
		Children:    wireChildren(c.Children),
	}
}

func wireChildren(children []Node) []wireNode {
	if len(children) == 0 {
		return nil
	}
	out := make([]wireNode, 0, len(children))
	for _, child := range children {
		out = append(out, child.wire())
	}
	return out
}

// Plain nodes are the API default, so dataType is left out.
func (n PlainNode) wire() wireNode     { return n.Content.wire("") }
func (n DateNode) wire() wireNode      { return n.Content.wire(DataTypeDate) }
func (n URLNode) wire() wireNode       { return n.Content.wire(DataTypeURL) }
func (n ReferenceNode) wire() wireNode { return wireNode{DataType: DataTypeReference, ID: n.ID} }

func (n BooleanNode) wire() wireNode {
	w := n.Content.wire(DataTypeBoolean)
	value := n.Value
	w.Value = &value
	return w
}

func (n FileNode) wire() wireNode {
	w := n.Content.wire(DataTypeFile)
	w.File = n.Data
	w.Filename = n.Filename
	w.ContentType = n.ContentType
	return w
}

func (n FieldNode) wire() wireNode {
	return wireNode{
		Type:        nodeTypeField,
		AttributeID: n.AttributeID,
		Children:    wireChildren(n.Children),
	}
}

func (n PlainNode) MarshalJSON() ([]byte, error)     { return json.Marshal(n.wire()) }
func (n ReferenceNode) MarshalJSON() ([]byte, error) { return json.Marshal(n.wire()) }
func (n DateNode) MarshalJSON() ([]byte, error)      { return json.Marshal(n.wire()) }
func (n URLNode) MarshalJSON() ([]byte, error)       { return json.Marshal(n.wire()) }
func (n BooleanNode) MarshalJSON() ([]byte, error)   { return json.Marshal(n.wire()) }
func (n FileNode) MarshalJSON() ([]byte, error)      { return json.Marshal(n.wire()) }
func (n FieldNode) MarshalJSON() ([]byte, error)     { return json.Marshal(n.wire()) }

// Validate checks node and all of its descendants, reporting the first violation.
func Validate(node Node) error {
	return validateAt(node, "node")
}

func validateAt(node Node, path string) error {
	if node == nil {
		return errors.ValidationAt(path, "node is nil")
	}
	return node.validate(path)
}

func (c Content) validate(path string) error {
	for i, tag := range c.Supertags {
		if tag.ID == "" {
			return errors.ValidationAt(fmt.Sprintf("%s.supertags[%d]", path, i), "supertag id is required")
		}
	}
	return validateChildren(c.Children, path)
}

func validateChildren(children []Node, path string) error {
	for i, child := range children {
		if err := validateAt(child, fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func (n PlainNode) validate(path string) error {
	return n.Content.validate(path)
}

func (n ReferenceNode) validate(path string) error {
	if n.ID == "" {
		return errors.ValidationAt(path, "reference node requires an id")
	}
	return nil
}

func (n DateNode) validate(path string) error {
	if err := validation.Date(n.Name); err != nil {
		return errors.Wrap(err, "%s", path)
	}
	return n.Content.validate(path)
}

func (n URLNode) validate(path string) error {
	if err := validation.URL(n.Name); err != nil {
		return errors.Wrap(err, "%s", path)
	}
	return n.Content.validate(path)
}

func (n BooleanNode) validate(path string) error {
	if n.Name == "" {
		return errors.ValidationAt(path, "boolean node requires a name")
	}
	return n.Content.validate(path)
}

func (n FileNode) validate(path string) error {
	if err := validation.Base64(n.Data); err != nil {
		return errors.Wrap(err, "%s", path)
	}
	if n.Filename == "" {
		return errors.ValidationAt(path, "file node requires a filename")
	}
	if err := validation.ContentType(n.ContentType); err != nil {
		return errors.Wrap(err, "%s", path)
	}
	return n.Content.validate(path)
}

func (n FieldNode) validate(path string) error {
	if n.AttributeID == "" {
		return errors.ValidationAt(path, "field node requires an attributeId")
	}
	return validateChildren(n.Children, path)
}
