package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_Send_Success(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bot123:abc/sendMessage", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	n := NewNotifier(server.URL, "123:abc", "-100", time.Second)
	ok := n.Send(context.Background(), "hello\nworld")

	assert.True(t, ok)
	assert.Equal(t, "-100", got["chat_id"])
	assert.Equal(t, "hello\nworld", got["text"])
}

func TestNotifier_Send_Non200(t *testing.T) {
	for _, code := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusInternalServerError, http.StatusCreated} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
			w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
		}))

		n := NewNotifier(server.URL, "t", "c", time.Second)
		assert.False(t, n.Send(context.Background(), "msg"), "status %d", code)
		server.Close()
	}
}

func TestNotifier_Send_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	n := NewNotifier(url, "secret-token", "c", time.Second)
	assert.False(t, n.Send(context.Background(), "msg"))
}

func TestNotifier_Send_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	n := NewNotifier(server.URL, "t", "c", 50*time.Millisecond)
	assert.False(t, n.Send(context.Background(), "msg"))
}

func TestRedact(t *testing.T) {
	err := redact(assert.AnError, "")
	assert.Equal(t, assert.AnError, err)

	err = redact(&testErr{"Post https://x/botSECRET/sendMessage: refused"}, "SECRET")
	assert.Equal(t, "Post https://x/bot<token>/sendMessage: refused", err.Error())
}

type testErr struct{ s string }

func (e *testErr) Error() string { return e.s }
