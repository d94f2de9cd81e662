// Package rpc provides a minimal JSON-RPC 2.0 client over HTTP.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultRequestID is the id sent with every request.
const DefaultRequestID = 67

// maxErrorBody caps how much of a failed response is echoed in errors.
const maxErrorBody = 512

// Client makes JSON-RPC calls against a single endpoint.
type Client struct {
	endpoint   string
	requestID  int
	httpClient *http.Client
}

// NewClient creates a JSON-RPC client for endpoint.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint:  endpoint,
		requestID: DefaultRequestID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Error is a JSON-RPC error object returned by the server.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Call makes a single JSON-RPC call and returns the decoded "result" member.
// Numbers are decoded as json.Number so integers and floats stay distinct.
func (c *Client) Call(ctx context.Context, method string, params []any) (any, error) {
	if params == nil {
		params = []any{}
	}
	reqBody := map[string]any{
		"jsonrpc": "2.0",
		"method":  method,
		"params":  params,
		"id":      c.requestID,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rpc call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, string(body))
	}

	var rpcResp struct {
		Result any    `json:"result"`
		Error  *Error `json:"error"`
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&rpcResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	if rpcResp.Error != nil {
		return nil, rpcResp.Error
	}

	return rpcResp.Result, nil
}
