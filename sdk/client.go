// Package sdk is a read-only client for the public content API. External
// renderers use it to pull published articles and the site theme; it never
// touches authenticated endpoints.
package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tiny-cms/models"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tiny-cms: %d %s", e.StatusCode, e.Body)
}

type ArticleListItem struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Article struct {
	Slug      string              `json:"slug"`
	Title     string              `json:"title"`
	Body      models.DocumentNode `json:"body"`
	UpdatedAt time.Time           `json:"updated_at"`
}

type Theme struct {
	ID        uint                   `json:"id"`
	Preset    string                 `json:"preset"`
	Overrides map[string]interface{} `json:"overrides"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// GetArticles fetches all published articles (slug, title, updated_at).
func (c *Client) GetArticles(ctx context.Context) ([]ArticleListItem, error) {
	var items []ArticleListItem
	if err := c.getJSON(ctx, "/api/v1/public/articles", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetArticle fetches one published article by slug.
func (c *Client) GetArticle(ctx context.Context, slug string) (*Article, error) {
	var article Article
	if err := c.getJSON(ctx, "/api/v1/public/articles/"+url.PathEscape(slug), &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// GetTheme fetches the site-wide theme (preset + overrides).
func (c *Client) GetTheme(ctx context.Context) (*Theme, error) {
	var theme Theme
	if err := c.getJSON(ctx, "/api/v1/theme", &theme); err != nil {
		return nil, err
	}
	return &theme, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return &APIError{StatusCode: res.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	return json.NewDecoder(res.Body).Decode(out)
}
