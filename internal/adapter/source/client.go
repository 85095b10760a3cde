package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"shopadmin-backend/internal/domain/order"
)

// GatewayError covers transport-level and non-2xx failures from the commerce
// backend. Callers surface it generically, never the backend's response body.
type GatewayError struct {
	StatusCode int
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("commerce backend returned status %d", e.StatusCode)
}

// Client talks to the commerce backend's internal order-status API. It
// implements order.Source. Credentials are passed in explicitly; there is no
// ambient session.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
			},
		},
	}
}

type orderStatusPayload struct {
	OrderNumber string `json:"orderNumber"`
	Status      string `json:"status"`
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("commerce backend unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return order.ErrSourceNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &GatewayError{StatusCode: resp.StatusCode}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) FetchOrderStatus(ctx context.Context, orderNumber string) (string, error) {
	var payload orderStatusPayload
	path := "/internal/orders/" + url.PathEscape(orderNumber) + "/status"
	if err := c.get(ctx, path, &payload); err != nil {
		return "", err
	}
	return payload.Status, nil
}

func (c *Client) FetchAllOrderStatuses(ctx context.Context) (map[string]string, error) {
	var payload []orderStatusPayload
	if err := c.get(ctx, "/internal/orders/status", &payload); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(payload))
	for _, p := range payload {
		out[p.OrderNumber] = p.Status
	}
	return out, nil
}
