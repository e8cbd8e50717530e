package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dancanmurithi/portfolio/pkg/github"
)

const userAgent = "Lovable-Portfolio-App"

// Client is a minimal GitHub REST v3 client covering the two reads the
// aggregator needs. An empty token means unauthenticated requests.
type Client struct {
	BaseURL string
	Token   string
	httpDo  *http.Client
}

func New(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		httpDo: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) UserRepos(ctx context.Context, username string) ([]github.RepoRecord, error) {
	var out []github.RepoRecord
	path := fmt.Sprintf("/users/%s/repos?sort=updated&per_page=100", url.PathEscape(username))
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UserEvents(ctx context.Context, username string) ([]github.EventRecord, error) {
	var out []github.EventRecord
	path := fmt.Sprintf("/users/%s/events/public?per_page=100", url.PathEscape(username))
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", userAgent)
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpDo.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("github api error: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode github response: %w", err)
	}
	return nil
}
