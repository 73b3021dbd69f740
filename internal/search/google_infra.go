package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://www.googleapis.com/customsearch/v1"

type GoogleClient struct {
	apiKey  string
	cx      string
	baseURL string
	client  *http.Client
}

func NewGoogleClient(apiKey, cx string) *GoogleClient {
	return &GoogleClient{
		apiKey:  apiKey,
		cx:      cx,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type googleResponse struct {
	Items []struct {
		Title string `json:"title"`
		Link  string `json:"link"`
	} `json:"items"`
}

func (c *GoogleClient) Search(ctx context.Context, query string) ([]Result, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("key", c.apiKey)
	q.Set("cx", c.cx)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+"?"+q.Encode(),
		nil,
	)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("google search status: %s", resp.Status)
	}

	var out googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode google search: %w", err)
	}

	results := make([]Result, 0, len(out.Items))
	for _, item := range out.Items {
		results = append(results, Result{Title: item.Title, Link: item.Link})
	}
	return results, nil
}
