package ics

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	ical "github.com/arran4/golang-ical"
)

// DTSTART вида 20250601T060000 или 20250601T060000Z. Событие на весь день не имеет времени.
var dtStartPattern = regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})T(\d{2})(\d{2})`)

// Client читает публичный ICS фид. Адрес можно сменить во время работы.
type Client struct {
	mu         sync.RWMutex
	url        string
	httpClient *http.Client
	log        Logger
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewClient создает клиент. Пустой url допустим: фид считается не настроенным.
func NewClient(url string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// URL текущий адрес фида
func (c *Client) URL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.url
}

// SetURL заменяет адрес фида. Допускаются только http:// и https://
func (c *Client) SetURL(url string) error {
	url = strings.TrimSpace(url)
	lower := strings.ToLower(url)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return fmt.Errorf("%w: %q", ErrInvalidURL, url)
	}

	c.mu.Lock()
	c.url = url
	c.mu.Unlock()

	c.log.Info("ICS feed url updated: url=%s", url)
	return nil
}

// Configured returns true if the feed url is set
func (c *Client) Configured() bool {
	return c.URL() != ""
}

// BusyTimes загружает фид и возвращает уникальные HH:MM начала событий
// с датой в [start, end] вместе с самими событиями. Отмененные события пропускаются.
// Пустая граница означает весь фид.
func (c *Client) BusyTimes(ctx context.Context, start, end string) ([]string, []Event, error) {
	feedURL := c.URL()
	if feedURL == "" {
		return nil, nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to execute request: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrUpstream, resp.StatusCode, string(body))
	}

	cal, err := ical.ParseCalendar(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	events := filterEvents(cal, start, end)

	seen := make(map[string]struct{}, len(events))
	times := make([]string, 0, len(events))
	for _, ev := range events {
		if _, ok := seen[ev.Time]; ok {
			continue
		}
		seen[ev.Time] = struct{}{}
		times = append(times, ev.Time)
	}

	c.log.Info("ICS feed read: start=%s, end=%s, events=%d, busy=%d", start, end, len(events), len(times))
	return times, events, nil
}

func filterEvents(cal *ical.Calendar, start, end string) []Event {
	events := make([]Event, 0)
	for _, vevent := range cal.Events() {
		if status := vevent.GetProperty(ical.ComponentPropertyStatus); status != nil &&
			strings.EqualFold(status.Value, "CANCELLED") {
			continue
		}

		dtStart := vevent.GetProperty(ical.ComponentPropertyDtStart)
		if dtStart == nil {
			continue
		}
		m := dtStartPattern.FindStringSubmatch(dtStart.Value)
		if m == nil {
			continue
		}

		ev := Event{
			Date: m[1] + "-" + m[2] + "-" + m[3],
			Time: m[4] + ":" + m[5],
		}
		if summary := vevent.GetProperty(ical.ComponentPropertySummary); summary != nil {
			ev.Summary = summary.Value
		}

		// ISO даты сравниваются как строки
		if start != "" && end != "" && (ev.Date < start || ev.Date > end) {
			continue
		}
		events = append(events, ev)
	}
	return events
}
