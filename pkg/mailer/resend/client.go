package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dancanmurithi/portfolio/pkg/mailer"
)

// Client is a minimal Resend transactional email client.
type Client struct {
	APIKey  string
	BaseURL string
	httpDo  *http.Client
}

func New(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://api.resend.com"
	}
	return &Client{
		APIKey:  apiKey,
		BaseURL: baseURL,
		httpDo: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) Send(ctx context.Context, email mailer.Email) error {
	if c.APIKey == "" {
		return errors.New("resend api key is empty")
	}
	data, err := json.Marshal(email)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/emails", c.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpDo.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errMap map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errMap)
		return fmt.Errorf("resend http %d: %v", resp.StatusCode, errMap)
	}
	return nil
}
