package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietddude/nodepulse/internal/core/domain"
)

type stubSource struct {
	rep domain.CycleReport
	ok  bool
}

func (s *stubSource) LastReport() (domain.CycleReport, bool) { return s.rep, s.ok }

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServer_Health_Healthy(t *testing.T) {
	src := &stubSource{ok: true, rep: domain.CycleReport{
		NodeOK:      true,
		BlockNumber: "42",
		FinishedAt:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}}
	rec := get(t, NewServer(src, 0).Handler(), "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "42", body["block_number"])
	assert.Equal(t, "2024-01-02T03:04:05Z", body["checked_at"])
}

func TestServer_Health_Unhealthy(t *testing.T) {
	src := &stubSource{ok: true, rep: domain.CycleReport{BlockNumber: domain.BlockNumberUnavailable}}
	rec := get(t, NewServer(src, 0).Handler(), "/health")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"unhealthy"`)
}

func TestServer_Health_Pending(t *testing.T) {
	rec := get(t, NewServer(&stubSource{}, 0).Handler(), "/health")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pending"`)
}

func TestServer_Detailed(t *testing.T) {
	src := &stubSource{ok: true, rep: domain.CycleReport{
		CycleID:  "abc",
		NodeOK:   true,
		PublicIP: "1.2.3.4",
		Storage:  &domain.StorageInfo{TotalBytes: 10},
		Message:  "hello",
	}}
	rec := get(t, NewServer(src, 0).Handler(), "/health/detailed")

	assert.Equal(t, http.StatusOK, rec.Code)
	var rep domain.CycleReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rep))
	assert.Equal(t, "abc", rep.CycleID)
	assert.Equal(t, domain.PublicIP("1.2.3.4"), rep.PublicIP)
	assert.Equal(t, uint64(10), rep.Storage.TotalBytes)
}

func TestServer_Metrics(t *testing.T) {
	rec := get(t, NewServer(&stubSource{}, 0).Handler(), "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
}
