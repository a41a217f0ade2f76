package tana

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/oauth2"

	"github.com/d-kuro/tana-mcp/internal/errors"
	"github.com/d-kuro/tana-mcp/internal/logging"
	"github.com/d-kuro/tana-mcp/pkg/version"
)

// maxErrorBody bounds how much of a failed response is kept for logging.
const maxErrorBody = 4 << 10

// Client talks to the Tana Input API. It is safe for concurrent use.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides DefaultEndpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithHTTPClient sets the client used for requests. Its transport is wrapped
// to add the bearer token.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *logging.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client authenticating with the given API token.
func NewClient(token string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.Configuration("Tana API token is required")
	}

	c := &Client{
		endpoint:   DefaultEndpoint,
		httpClient: http.DefaultClient,
		logger:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	authed := *c.httpClient
	authed.Transport = &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
		Base:   base,
	}
	c.httpClient = &authed

	return c, nil
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// CreateNodes creates nodes under targetNodeID, or under the workspace root
// when targetNodeID is empty. Responses are returned in submission order.
func (c *Client) CreateNodes(ctx context.Context, targetNodeID string, nodes []Node) ([]NodeResponse, error) {
	if len(nodes) == 0 {
		return nil, errors.Validation("at least one node is required")
	}
	if len(nodes) > MaxNodesPerRequest {
		return nil, errors.Validationf("Maximum of %d nodes can be created in a single request", MaxNodesPerRequest)
	}
	for i, node := range nodes {
		if err := validateAt(node, fmt.Sprintf("nodes[%d]", i)); err != nil {
			return nil, err
		}
	}

	resp, err := c.do(ctx, createNodesRequest{TargetNodeID: targetNodeID, Nodes: nodes})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Created nodes", slog.Int("submitted", len(nodes)), slog.Int("returned", len(resp.Children)))
	if resp.Children == nil {
		return []NodeResponse{}, nil
	}
	return resp.Children, nil
}

// CreateNode creates a single node and returns the API's description of it.
func (c *Client) CreateNode(ctx context.Context, targetNodeID string, node Node) (NodeResponse, error) {
	created, err := c.CreateNodes(ctx, targetNodeID, []Node{node})
	if err != nil {
		return NodeResponse{}, err
	}
	if len(created) == 0 {
		return NodeResponse{}, errors.Remote(errors.New("failed to create node: response contained no nodes"))
	}
	return created[0], nil
}

// SetNodeName renames an existing node.
//
// The API does not reliably echo the renamed node. When it returns nothing
// the result carries only nodeID.
func (c *Client) SetNodeName(ctx context.Context, nodeID, newName string) (NodeResponse, error) {
	if strings.TrimSpace(nodeID) == "" {
		return NodeResponse{}, errors.Validation("nodeId cannot be empty")
	}
	if newName == "" {
		return NodeResponse{}, errors.Validation("newName cannot be empty")
	}

	resp, err := c.do(ctx, setNameRequest{TargetNodeID: nodeID, SetName: newName})
	if err != nil {
		return NodeResponse{}, err
	}

	if len(resp.Children) > 0 {
		return resp.Children[0], nil
	}
	c.logger.Debug("Rename response carried no node", slog.String("node_id", nodeID))
	return NodeResponse{NodeID: nodeID}, nil
}

func (c *Client) do(ctx context.Context, payload any) (*apiResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.InternalWithCause("failed to encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.InternalWithCause("failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.GetVersion().UserAgent())

	c.logger.Debug("Sending request", slog.String("endpoint", c.endpoint), slog.Int("bytes", len(body)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Remote(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Debug("Request failed",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(snippet)),
		)
		return nil, errors.NewAPIError(resp.StatusCode, statusText(resp))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Remote(errors.Wrap(err, "failed to read response"))
	}

	var out apiResponse
	if len(bytes.TrimSpace(data)) == 0 {
		return &out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Remote(errors.Wrap(err, "failed to decode response"))
	}
	return &out, nil
}

// statusText returns the reason phrase of resp, e.g. "Too Many Requests".
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
