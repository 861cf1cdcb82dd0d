package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client calls the MyMemory translation API. Free tier, no key required.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

type apiResponse struct {
	ResponseStatus interface{} `json:"responseStatus"`
	ResponseData   struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Translate performs a single best-effort call; no caching, no retry.
func (c *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	endpoint := fmt.Sprintf("%s/get?q=%s&langpair=%s",
		c.BaseURL,
		url.QueryEscape(text),
		url.QueryEscape(source+"|"+target),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach translation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	// MyMemory reports its own status inside the body, sometimes as a
	// number and sometimes as a string.
	if status := fmt.Sprintf("%v", parsed.ResponseStatus); status != "200" {
		return "", fmt.Errorf("translation service error: status %s", status)
	}

	if parsed.ResponseData.TranslatedText == "" {
		return "", fmt.Errorf("no translation received")
	}

	return parsed.ResponseData.TranslatedText, nil
}
