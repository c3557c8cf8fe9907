package resend

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

func TestClient_SendMail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer re_key", r.Header.Get("Authorization"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Shuttle <noreply@example.com>", body["from"])
		assert.Equal(t, []interface{}{"a@example.com"}, body["to"])
		assert.Equal(t, "Booking confirmed", body["subject"])
		assert.NotContains(t, body, "cc")

		_, _ = w.Write([]byte(`{"id":"em_1"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "re_key", "Shuttle <noreply@example.com>", 5*time.Second)
	err := client.SendMail(context.Background(), []string{"a@example.com"}, nil, "Booking confirmed", "<p>ok</p>")

	assert.NoError(t, err)
}

func TestClient_SendMailRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"domain not verified"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "re_key", "noreply@example.com", 5*time.Second)
	err := client.SendMail(context.Background(), []string{"a@example.com"}, nil, "s", "b")

	require.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), "domain not verified")
}

func TestClient_NotConfigured(t *testing.T) {
	client := NewClient("http://unused", "re_key", "", time.Second)

	assert.Equal(t, "resend", client.Name())
	assert.ErrorIs(t, client.SendMail(context.Background(), []string{"a@example.com"}, nil, "s", "b"), ErrNotConfigured)
}
