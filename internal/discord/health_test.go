package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHealth(t *testing.T) {
	tests := []struct {
		name       string
		ready      bool
		apiUp      bool
		wantStatus int
		wantBody   string
	}{
		{"healthy", true, true, http.StatusOK, HealthStatusHealthy},
		{"gateway down", false, true, http.StatusServiceUnavailable, HealthStatusDegraded},
		{"api down", true, false, http.StatusServiceUnavailable, HealthStatusDegraded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := SetupTestContext(t)
			if tt.apiUp {
				tc.Mux.HandleFunc(PathHealthz, func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
				})
			}
			tc.Session.DataReady = tt.ready

			srv := NewHTTPServer("0", &Bot{Session: tc.Session, Client: tc.APIClient})
			rec := httptest.NewRecorder()
			srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var got HealthStatus
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.wantBody, got.Status)
			assert.Equal(t, tt.ready, got.Connected)
			assert.Equal(t, tt.apiUp, got.APIReachable)
		})
	}
}

func TestRecordCommand(t *testing.T) {
	before := commandCounter.Load()
	RecordCommand()
	assert.Equal(t, before+1, commandCounter.Load())
	assert.NotZero(t, lastCommandUnix.Load())
}

func TestMetricsEndpoint(t *testing.T) {
	srv := NewHTTPServer("0", &Bot{})
	rec := httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
