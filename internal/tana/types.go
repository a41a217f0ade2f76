package tana

const (
	// DefaultEndpoint is the production Input API endpoint.
	DefaultEndpoint = "https://europe-west1-tagr-prod.cloudfunctions.net/addToNodeV2"

	// MaxNodesPerRequest is the API's limit on top-level nodes per call.
	MaxNodesPerRequest = 100

	// SchemaNodeID addresses the workspace schema, where tag and field
	// definitions live.
	SchemaNodeID = "SCHEMA"

	// SupertagSystemTagID marks a node as a supertag definition.
	SupertagSystemTagID = "SYS_T01"

	// FieldSystemTagID marks a node as a field definition.
	FieldSystemTagID = "SYS_T02"
)

// NodeResponse describes a node created or updated by the API.
type NodeResponse struct {
	NodeID      string         `json:"nodeId"`
	Name        string         `json:"name,omitempty"`
	Description string         `json:"description,omitempty"`
	Children    []NodeResponse `json:"children,omitempty"`
}

type createNodesRequest struct {
	TargetNodeID string `json:"targetNodeId,omitempty"`
	Nodes        []Node `json:"nodes"`
}

type setNameRequest struct {
	TargetNodeID string `json:"targetNodeId"`
	SetName      string `json:"setName"`
}

type apiResponse struct {
	Children []NodeResponse `json:"children,omitempty"`
}
