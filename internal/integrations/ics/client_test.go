package ics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShuttleService/pkg/logger"
)

var feed = strings.Join([]string{
	"BEGIN:VCALENDAR",
	"VERSION:2.0",
	"PRODID:-//shuttle//test//EN",
	"BEGIN:VEVENT",
	"UID:1",
	"DTSTART:20250601T060000Z",
	"SUMMARY:Queenstown run",
	"END:VEVENT",
	"BEGIN:VEVENT",
	"UID:2",
	"DTSTART:20250601T150000",
	"SUMMARY:Return run",
	"END:VEVENT",
	"BEGIN:VEVENT",
	"UID:3",
	"DTSTART:20250601T090000",
	"STATUS:CANCELLED",
	"END:VEVENT",
	"BEGIN:VEVENT",
	"UID:4",
	"DTSTART:20250602T060000",
	"END:VEVENT",
	"BEGIN:VEVENT",
	"UID:5",
	"DTSTART:20250610T070000",
	"END:VEVENT",
	"BEGIN:VEVENT",
	"UID:6",
	"DTSTART;VALUE=DATE:20250601",
	"END:VEVENT",
	"END:VCALENDAR",
	"",
}, "\r\n")

func TestClient_BusyTimes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/calendar")
		_, _ = w.Write([]byte(feed))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, logger.Nop())
	times, events, err := client.BusyTimes(context.Background(), "2025-06-01", "2025-06-02")
	require.NoError(t, err)

	assert.Equal(t, []string{"06:00", "15:00"}, times)
	require.Len(t, events, 3)
	assert.Equal(t, Event{Date: "2025-06-01", Time: "06:00", Summary: "Queenstown run"}, events[0])
	assert.Equal(t, "2025-06-02", events[2].Date)
}

func TestClient_BusyTimesWholeFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(feed))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, logger.Nop())
	times, events, err := client.BusyTimes(context.Background(), "", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"06:00", "15:00", "07:00"}, times)
	assert.Len(t, events, 4)
}

func TestClient_BusyTimesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, logger.Nop())
	_, _, err := client.BusyTimes(context.Background(), "2025-06-01", "2025-06-01")

	assert.ErrorIs(t, err, ErrUpstream)
}

func TestClient_SetURL(t *testing.T) {
	client := NewClient("", time.Second, logger.Nop())
	assert.False(t, client.Configured())

	_, _, err := client.BusyTimes(context.Background(), "2025-06-01", "2025-06-01")
	assert.ErrorIs(t, err, ErrNotConfigured)

	assert.ErrorIs(t, client.SetURL("ftp://example.com/cal.ics"), ErrInvalidURL)
	assert.ErrorIs(t, client.SetURL("webcal://example.com/cal.ics"), ErrInvalidURL)
	assert.Equal(t, "", client.URL())

	require.NoError(t, client.SetURL("HTTPS://example.com/upper.ics"))
	require.NoError(t, client.SetURL(" https://example.com/cal.ics "))
	assert.Equal(t, "https://example.com/cal.ics", client.URL())
	assert.True(t, client.Configured())
}
