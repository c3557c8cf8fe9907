package graph

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShuttleService/pkg/logger"
)

func newTestServer(t *testing.T, api http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/tenant-1/oauth2/v2.0/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, defaultScope, r.PostForm.Get("scope"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-1","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/v1.0/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		api(w, r)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(Config{
		TenantID:     "tenant-1",
		ClientID:     "client",
		ClientSecret: "secret",
		UserUPN:      "bookings@example.com",
		AuthURL:      srv.URL,
		BaseURL:      srv.URL + "/v1.0",
		Timeout:      5 * time.Second,
	}, logger.Nop())
}

func TestClient_BusyTimes(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1.0/users/bookings@example.com/calendarView", r.URL.Path)
		assert.Equal(t, "2025-06-01T00:00:00Z", r.URL.Query().Get("startDateTime"))
		assert.Equal(t, "2025-06-02T23:59:59Z", r.URL.Query().Get("endDateTime"))
		assert.Equal(t, "subject,start,end,showAs,categories", r.URL.Query().Get("$select"))

		_, _ = w.Write([]byte(`{"value":[
			{"subject":"Trip","start":{"dateTime":"2025-06-01T06:00:00.0000000","timeZone":"UTC"},"showAs":"busy"},
			{"subject":"Leave","start":{"dateTime":"2025-06-01T15:00:00.0000000","timeZone":"UTC"},"showAs":"oof"},
			{"subject":"Maybe","start":{"dateTime":"2025-06-01T09:00:00.0000000","timeZone":"UTC"},"showAs":"tentative"},
			{"subject":"Trip again","start":{"dateTime":"2025-06-02T06:00:00.0000000","timeZone":"UTC"},"showAs":"busy"}
		]}`))
	})

	times, events, err := newTestClient(srv).BusyTimes(context.Background(), "", "2025-06-01", "2025-06-02")
	require.NoError(t, err)

	assert.Equal(t, []string{"06:00", "15:00"}, times)
	assert.Len(t, events, 4)
}

func TestClient_BusyTimesUpstreamError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":"ErrorAccessDenied"}}`))
	})

	_, _, err := newTestClient(srv).BusyTimes(context.Background(), "other@example.com", "2025-06-01", "2025-06-01")

	require.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), "ErrorAccessDenied")
}

func TestClient_SendMail(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1.0/users/bookings@example.com/sendMail", r.URL.Path)

		var body sendMailRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, body.SaveToSentItems)
		assert.Equal(t, "Hello", body.Message.Subject)
		assert.Equal(t, "HTML", body.Message.Body.ContentType)
		require.Len(t, body.Message.ToRecipients, 1)
		assert.Equal(t, "a@example.com", body.Message.ToRecipients[0].EmailAddress.Address)
		require.Len(t, body.Message.CcRecipients, 1)
		assert.Equal(t, "c@example.com", body.Message.CcRecipients[0].EmailAddress.Address)

		w.WriteHeader(http.StatusAccepted)
	})

	err := newTestClient(srv).SendMail(context.Background(),
		[]string{"a@example.com"}, []string{"c@example.com"}, "Hello", "<p>hi</p>")
	assert.NoError(t, err)
}

func TestClient_NotConfigured(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://unused", Timeout: time.Second}, logger.Nop())

	assert.False(t, client.Configured())
	assert.ErrorIs(t, client.SendMail(context.Background(), []string{"a@example.com"}, nil, "s", "b"), ErrNotConfigured)

	_, _, err := client.BusyTimes(context.Background(), "", "2025-06-01", "2025-06-01")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = client.CreateEvent(context.Background(), "", &NewEvent{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, client.DeleteEvent(context.Background(), "", "ev-1"), ErrNotConfigured)
}

func TestClient_CreateEvent(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1.0/users/ops@example.com/events", r.URL.Path)

		var body NewEvent
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Shuttle Unavailable", body.Subject)
		assert.Equal(t, "busy", body.ShowAs)
		assert.Equal(t, "2025-06-01T06:00:00", body.Start.DateTime)
		assert.Equal(t, "Text", body.Body.ContentType)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"ev-1","subject":"Shuttle Unavailable"}`))
	})

	id, err := newTestClient(srv).CreateEvent(context.Background(), "ops@example.com", &NewEvent{
		Subject: "Shuttle Unavailable",
		ShowAs:  "busy",
		Start:   DateTimeZone{DateTime: "2025-06-01T06:00:00", TimeZone: "UTC"},
		End:     DateTimeZone{DateTime: "2025-06-01T07:00:00", TimeZone: "UTC"},
		Body:    ItemBody{ContentType: "Text", Content: "Blocked slot"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ev-1", id)
}

func TestClient_CreateEventWithoutID(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := newTestClient(srv).CreateEvent(context.Background(), "", &NewEvent{Subject: "x"})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_ListAndDeleteEvents(t *testing.T) {
	var deleted []string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "/v1.0/users/bookings@example.com/calendarView", r.URL.Path)
			assert.Equal(t, "id,subject,start,end,showAs", r.URL.Query().Get("$select"))
			_, _ = w.Write([]byte(`{"value":[{"id":"ev-1","subject":"Shuttle Unavailable","showAs":"busy"}]}`))
		case http.MethodDelete:
			deleted = append(deleted, r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	})
	client := newTestClient(srv)

	events, err := client.ListEvents(context.Background(), "", "2025-06-01", "2025-06-01")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "ev-1", events[0].ID)

	require.NoError(t, client.DeleteEvent(context.Background(), "", "ev-1"))
	assert.Equal(t, []string{"/v1.0/users/bookings@example.com/events/ev-1"}, deleted)
}
