// Package imagesearch finds product photos through an external search endpoint and turns
// uploaded files into inline previews.
package imagesearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultCount = 6
	maxCount     = 30
)

// Image is one search hit.
type Image struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	Alt          string `json:"alt"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	Photographer string `json:"photographer,omitempty"`
	Source       string `json:"source,omitempty"`
}

// Result reports whether the images came from the remote service or the bundled stock set.
type Result struct {
	Images   []Image `json:"images"`
	Fallback bool    `json:"fallback"`
}

type searchRequest struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

type searchResponse struct {
	Images []Image `json:"images"`
}

// Client queries one search endpoint. Any failure degrades to the stock photo set.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *log.Logger
}

func NewClient(url string, httpClient *http.Client, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Client{url: url, httpClient: httpClient, logger: logger}
}

// Search never fails: without an endpoint, or when the endpoint errors, answers with
// something other than JSON, or returns no images, the stock photos filtered by query are used.
func (c *Client) Search(ctx context.Context, query string, count int) Result {
	query = strings.TrimSpace(query)
	if count <= 0 {
		count = DefaultCount
	}
	if count > maxCount {
		count = maxCount
	}
	if c.url == "" {
		return Result{Images: FilterStock(query), Fallback: true}
	}

	images, err := c.fetch(ctx, query, count)
	if err != nil {
		c.logger.Printf("imagesearch: query=%q error=%v", query, err)
		return Result{Images: FilterStock(query), Fallback: true}
	}
	if len(images) == 0 {
		c.logger.Printf("imagesearch: query=%q no results", query)
		return Result{Images: FilterStock(query), Fallback: true}
	}
	if len(images) > count {
		images = images[:count]
	}
	return Result{Images: images}
}

func (c *Client) fetch(ctx context.Context, query string, count int) ([]Image, error) {
	body, err := json.Marshal(searchRequest{Query: query, Count: count})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}
	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out.Images, nil
}
