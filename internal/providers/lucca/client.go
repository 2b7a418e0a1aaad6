package lucca

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"hr-export/internal/httpx"
)

// Client talks to the Lucca HR API (v3 endpoints).
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTP: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

// Lucca wraps every collection in {"data":{"items":[...]}}.
type itemsResponse struct {
	Data struct {
		Items []map[string]any `json:"items"`
	} `json:"data"`
}

// FetchItems issues a single GET against BaseURL+suffix and returns the
// decoded data.items list. No retries, no backoff: one shot per call.
func (c *Client) FetchItems(ctx context.Context, suffix string, params url.Values) ([]map[string]any, error) {
	u, err := url.Parse(c.BaseURL + suffix)
	if err != nil {
		return nil, fmt.Errorf("lucca: invalid url %q: %w", c.BaseURL+suffix, err)
	}
	u.RawQuery = params.Encode()

	var out itemsResponse
	err = httpx.DoJSON(
		ctx,
		c.HTTP,
		func(ctx context.Context) (*http.Request, error) {
			r, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
			if err != nil {
				return nil, err
			}
			r.Header.Set("Accept", "application/json")
			r.Header.Set("Authorization", "lucca application="+c.Token)
			return r, nil
		},
		&out,
	)
	if err != nil {
		return nil, fmt.Errorf("lucca: get %s failed: %w", suffix, err)
	}
	return out.Data.Items, nil
}

// Fetch is FetchItems with the degrade-to-empty policy: any transport or
// decode failure is logged and an empty list is returned. Callers cannot
// tell "no data" apart from "request failed" here; use FetchItems directly
// when that distinction matters.
func (c *Client) Fetch(ctx context.Context, suffix string, params url.Values) []map[string]any {
	items, err := c.FetchItems(ctx, suffix, params)
	if err != nil {
		log.Printf("WARN: %v (returning empty list)", err)
		return []map[string]any{}
	}
	if items == nil {
		items = []map[string]any{}
	}
	return items
}
