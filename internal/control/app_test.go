package control

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietddude/nodepulse/internal/core/config"
)

func TestApp_Lifecycle(t *testing.T) {
	node := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":{"proven":{"number":5}}}`))
	}))
	defer node.Close()

	cfg := &config.AppConfig{}
	cfg.BotToken = "t"
	cfg.ChatID = "c"
	cfg.NodeID = "1"
	cfg.Node = config.NodeConfig{RPCURL: node.URL, Timeout: time.Second}
	cfg.Monitor = config.MonitorConfig{
		Interval:     time.Hour,
		DiskPath:     t.TempDir(),
		IPServiceURL: node.URL,
		IPTimeout:    time.Second,
	}

	app := NewApp(cfg, false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	require.Eventually(t, func() bool {
		_, ok := app.Monitor().LastReport()
		return ok
	}, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	rep, _ := app.Monitor().LastReport()
	assert.True(t, rep.NodeOK)
	assert.Equal(t, "5", rep.BlockNumber)
	assert.NotNil(t, rep.Storage)
	assert.False(t, rep.Delivered)
}
