package priceclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrNotFound means the price source has no price for the ISBN.
var ErrNotFound = errors.New("priceclient: price not found")

// Client talks to the internal price endpoint. The intake workflow calls it
// over HTTP even though the endpoint lives in the same process, mirroring a
// real deployment where pricing is a separate service.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL: baseURL,
	}
}

type priceResponse struct {
	Data struct {
		Price float64 `json:"price"`
	} `json:"data"`
}

func (c *Client) GetPrice(ctx context.Context, isbn13 string) (float64, error) {
	u := fmt.Sprintf("%s/v1/price?isbn=%s", c.baseURL, url.QueryEscape(isbn13))

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return 0, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body priceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	return body.Data.Price, nil
}
