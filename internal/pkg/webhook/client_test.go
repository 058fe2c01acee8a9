package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify(t *testing.T) {
	t.Parallel()

	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.Notify(context.Background(), map[string]any{"run_id": "run-1", "inserted": 3})
	require.NoError(t, err)
	assert.Equal(t, "run-1", got["run_id"])
}

func TestNotify_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.Notify(context.Background(), map[string]string{"run_id": "run-1"})
	assert.ErrorContains(t, err, "status 502")
}

func TestNotify_UnreachableEndpoint(t *testing.T) {
	t.Parallel()

	client := NewClient("http://127.0.0.1:1")

	err := client.Notify(context.Background(), map[string]string{"run_id": "run-1"})
	assert.Error(t, err)
}
