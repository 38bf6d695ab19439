package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlackWebhookClient_PostAlert(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewSlackWebhookClient(server.URL)
	err := client.PostAlert(context.Background(), "🚨 something broke")

	require.NoError(t, err)
	assert.Equal(t, "🚨 something broke", received["text"])
}

func TestSlackWebhookClient_PostAlertRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewSlackWebhookClient(server.URL)
	err := client.PostAlert(context.Background(), "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to post slack webhook")
}
