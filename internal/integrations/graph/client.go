package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const defaultScope = "https://graph.microsoft.com/.default"

// Config параметры подключения к Microsoft Graph
type Config struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	UserUPN      string
	AuthURL      string // https://login.microsoftonline.com
	BaseURL      string // https://graph.microsoft.com/v1.0
	Timeout      time.Duration
}

// Client клиент Microsoft Graph: календарь и отправка почты от имени ящика
type Client struct {
	baseURL    string
	userUPN    string
	configured bool
	httpClient *http.Client
	log        Logger
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewClient создает клиент. Токен получается по client credentials и кешируется oauth2.
func NewClient(cfg Config, log Logger) *Client {
	base := &http.Client{Timeout: cfg.Timeout}

	configured := cfg.TenantID != "" && cfg.ClientID != "" && cfg.ClientSecret != ""

	httpClient := base
	if configured {
		cc := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     strings.TrimRight(cfg.AuthURL, "/") + "/" + cfg.TenantID + "/oauth2/v2.0/token",
			Scopes:       []string{defaultScope},
		}
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		httpClient = cc.Client(ctx)
		httpClient.Timeout = cfg.Timeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userUPN:    cfg.UserUPN,
		configured: configured,
		httpClient: httpClient,
		log:        log,
	}
}

// Name имя транспорта для метрик и логов
func (c *Client) Name() string {
	return "graph"
}

// Configured returns true if client credentials are present
func (c *Client) Configured() bool {
	return c.configured
}

func (c *Client) mailbox(upn string) (string, error) {
	if !c.configured {
		return "", ErrNotConfigured
	}
	if upn == "" {
		upn = c.userUPN
	}
	if upn == "" {
		return "", fmt.Errorf("%w: user UPN is empty", ErrNotConfigured)
	}
	return upn, nil
}

// BusyTimes возвращает события календаря за период [start, end] (YYYY-MM-DD)
// и уникальные HH:MM начала занятых событий (showAs busy или oof).
// Пустой upn означает ящик из конфигурации.
func (c *Client) BusyTimes(ctx context.Context, upn, start, end string) ([]string, []Event, error) {
	upn, err := c.mailbox(upn)
	if err != nil {
		return nil, nil, err
	}

	events, err := c.calendarView(ctx, upn, start, end, "subject,start,end,showAs,categories")
	if err != nil {
		return nil, nil, err
	}

	seen := make(map[string]struct{})
	times := make([]string, 0)
	for _, ev := range events {
		if !ev.IsBusy() {
			continue
		}
		clock := ev.StartClock()
		if clock == "" {
			continue
		}
		if _, ok := seen[clock]; ok {
			continue
		}
		seen[clock] = struct{}{}
		times = append(times, clock)
	}

	c.log.Info("Graph calendarView: upn=%s, start=%s, end=%s, events=%d, busy=%d",
		upn, start, end, len(events), len(times))

	return times, events, nil
}

// ListEvents возвращает события календаря за период [start, end] (YYYY-MM-DD) вместе с id
func (c *Client) ListEvents(ctx context.Context, upn, start, end string) ([]Event, error) {
	upn, err := c.mailbox(upn)
	if err != nil {
		return nil, err
	}
	return c.calendarView(ctx, upn, start, end, "id,subject,start,end,showAs")
}

// CreateEvent создает событие в календаре ящика и возвращает его id
func (c *Client) CreateEvent(ctx context.Context, upn string, ev *NewEvent) (string, error) {
	upn, err := c.mailbox(upn)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	endpoint := fmt.Sprintf("%s/users/%s/events", c.baseURL, url.PathEscape(upn))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	var created Event
	if err := json.Unmarshal(body, &created); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("%w: event id is empty", ErrInvalidResponse)
	}

	c.log.Info("Graph event created: upn=%s, id=%s, subject=%s", upn, created.ID, ev.Subject)
	return created.ID, nil
}

// DeleteEvent удаляет событие календаря по id
func (c *Client) DeleteEvent(ctx context.Context, upn, id string) error {
	upn, err := c.mailbox(upn)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/users/%s/events/%s", c.baseURL, url.PathEscape(upn), url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	if _, err := c.do(req); err != nil {
		return err
	}

	c.log.Info("Graph event deleted: upn=%s, id=%s", upn, id)
	return nil
}

func (c *Client) calendarView(ctx context.Context, upn, start, end, fields string) ([]Event, error) {
	query := url.Values{}
	query.Set("startDateTime", start+"T00:00:00Z")
	query.Set("endDateTime", end+"T23:59:59Z")
	query.Set("$select", fields)

	endpoint := fmt.Sprintf("%s/users/%s/calendarView?%s", c.baseURL, url.PathEscape(upn), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var view calendarViewResponse
	if err := json.Unmarshal(body, &view); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if view.Value == nil {
		return []Event{}, nil
	}
	return view.Value, nil
}

// do выполняет запрос и возвращает тело ответа 2xx
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrUpstream, resp.StatusCode, string(body))
	}

	return body, nil
}

// SendMail отправляет HTML письмо от имени ящика из конфигурации
func (c *Client) SendMail(ctx context.Context, to, cc []string, subject, html string) error {
	upn, err := c.mailbox("")
	if err != nil {
		return err
	}

	payload, err := json.Marshal(sendMailRequest{
		Message: message{
			Subject:      subject,
			Body:         ItemBody{ContentType: "HTML", Content: html},
			ToRecipients: toRecipients(to),
			CcRecipients: toRecipients(cc),
		},
		SaveToSentItems: true,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	endpoint := fmt.Sprintf("%s/users/%s/sendMail", c.baseURL, url.PathEscape(upn))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Graph отвечает 202 Accepted
	_, err = c.do(req)
	return err
}
