package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Call_RequestShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode body: %v", err)
			return
		}
		assert.Equal(t, "2.0", req["jsonrpc"])
		assert.Equal(t, "node_getL2Tips", req["method"])
		assert.Equal(t, []any{}, req["params"])
		assert.Equal(t, float64(67), req["id"])

		w.Write([]byte(`{"jsonrpc":"2.0","id":67,"result":{"proven":{"number":42}}}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, 5*time.Second)
	result, err := c.Call(context.Background(), "node_getL2Tips", nil)
	require.NoError(t, err)

	proven := result.(map[string]any)["proven"].(map[string]any)
	assert.Equal(t, json.Number("42"), proven["number"])
}

func TestClient_Call_RPCError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc":"2.0","id":67,"error":{"code":-32601,"message":"method not found"}}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, time.Second).Call(context.Background(), "nope", nil)

	var rpcErr *Error
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, -32601, rpcErr.Code)
}

func TestClient_Call_HTTPStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, time.Second).Call(context.Background(), "m", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 502")
}

func TestClient_Call_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, time.Second).Call(context.Background(), "m", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse response")
}

func TestClient_Call_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(url, time.Second).Call(context.Background(), "m", nil)
	assert.Error(t, err)
}
