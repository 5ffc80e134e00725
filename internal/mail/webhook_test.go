package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWebhookDispatcherSend(t *testing.T) {
	var got webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := NewWebhookDispatcher(srv.URL)
	err := d.Send(context.Background(), "amaka@example.com", "Welcome!",
		"<p>Hello Mama</p><p>See you inside.</p>")

	require.NoError(t, err)
	require.Equal(t, "amaka@example.com", got.To)
	require.Equal(t, "Welcome!", got.Subject)
	require.Contains(t, got.HTMLBody, "<p>Hello Mama</p>")
	require.Equal(t, "Hello Mama\nSee you inside.", got.TextBody)
}

func TestWebhookDispatcherSendRelayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	d := NewWebhookDispatcher(srv.URL)
	err := d.Send(context.Background(), "amaka@example.com", "Welcome!", "<p>hi</p>")

	require.Error(t, err)
	require.Contains(t, err.Error(), "502")
}

func TestDisabledDispatcherSend(t *testing.T) {
	err := DisabledDispatcher{}.Send(context.Background(), "amaka@example.com", "Welcome!", "<p>hi</p>")
	require.NoError(t, err)
}
