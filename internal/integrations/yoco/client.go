package yoco

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
)

// Client клиент платежного шлюза Yoco
type Client struct {
	checkoutURL string
	webhooksURL string
	secretKey   string
	httpClient  *http.Client
	log         Logger
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewClient создает новый экземпляр клиента Yoco
func NewClient(checkoutURL, webhooksURL, secretKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		checkoutURL: checkoutURL,
		webhooksURL: strings.TrimRight(webhooksURL, "/"),
		secretKey:   secretKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Configured returns true if the secret key is set
func (c *Client) Configured() bool {
	return c.secretKey != ""
}

// CreateCheckout создает checkout и возвращает его id и адрес оплаты
func (c *Client) CreateCheckout(ctx context.Context, checkout *CheckoutRequest) (*Checkout, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	payload, err := json.Marshal(checkout)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.checkoutURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	c.log.Info("Creating Yoco checkout: amount=%d, currency=%s, ref=%s",
		checkout.Amount, checkout.Currency, checkout.ClientReferenceID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUpstream, err)
	}

	// Обработка статус-кодов
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("Yoco checkout rejected: status=%d, body=%s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrUpstream, resp.StatusCode, string(body))
	}

	var result Checkout
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if result.ID == "" {
		return nil, fmt.Errorf("%w: checkout id is empty", ErrInvalidResponse)
	}

	c.log.Info("Yoco checkout created: id=%s, ref=%s", result.ID, checkout.ClientReferenceID)
	return &result, nil
}

// RegisterWebhook регистрирует адрес для событий оплаты и возвращает ответ Yoco как есть
func (c *Client) RegisterWebhook(ctx context.Context, name, webhookURL string) (interface{}, error) {
	payload, err := json.Marshal(WebhookRequest{Name: name, URL: webhookURL})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	c.log.Info("Registering Yoco webhook: name=%s, url=%s", name, webhookURL)
	return c.doWebhooks(ctx, http.MethodPost, c.webhooksURL, payload)
}

// ListWebhooks возвращает зарегистрированные webhook'и
func (c *Client) ListWebhooks(ctx context.Context) (interface{}, error) {
	return c.doWebhooks(ctx, http.MethodGet, c.webhooksURL, nil)
}

// DeleteWebhook удаляет webhook по id
func (c *Client) DeleteWebhook(ctx context.Context, id string) (interface{}, error) {
	c.log.Info("Deleting Yoco webhook: id=%s", id)
	return c.doWebhooks(ctx, http.MethodDelete, c.webhooksURL+"/"+url.PathEscape(id), nil)
}

// doWebhooks выполняет запрос к API webhook'ов. Тело не в JSON возвращается как {raw: body},
// ответ не 2xx возвращается как *UpstreamError с тем же телом.
func (c *Client) doWebhooks(ctx context.Context, method, endpoint string, payload []byte) (interface{}, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUpstream, err)
	}

	data := decodeBody(body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("Yoco webhooks %s rejected: status=%d, body=%s", method, resp.StatusCode, string(body))
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: data}
	}

	return data, nil
}

func decodeBody(body []byte) interface{} {
	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return map[string]string{"raw": string(body)}
	}
	return data
}
