package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент почтового API Resend
type Client struct {
	url        string
	apiKey     string
	from       string
	httpClient *http.Client
}

type emailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	CC      []string `json:"cc,omitempty"`
}

// NewClient создает новый экземпляр клиента Resend
func NewClient(url, apiKey, from string, timeout time.Duration) *Client {
	return &Client{
		url:    url,
		apiKey: apiKey,
		from:   from,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name имя транспорта для метрик и логов
func (c *Client) Name() string {
	return "resend"
}

// Configured returns true if both the API key and the sender are set
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.from != ""
}

// SendMail отправляет HTML письмо
func (c *Client) SendMail(ctx context.Context, to, cc []string, subject, html string) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(emailRequest{
		From:    c.from,
		To:      to,
		Subject: subject,
		HTML:    html,
		CC:      cc,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrUpstream, resp.StatusCode, string(body))
	}

	return nil
}
