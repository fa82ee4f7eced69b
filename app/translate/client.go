package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxTranslateLength = 4000

// Client talks to the public Google Translate endpoint. A client with an
// empty endpoint is disabled and passes text through unchanged.
type Client struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a translation client. Pass an empty endpoint to disable
// translation.
func NewClient(endpoint, userAgent string) *Client {
	return &Client{
		endpoint:  endpoint,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Enabled reports whether the client has an endpoint configured
func (c *Client) Enabled() bool {
	return c.endpoint != ""
}

// Translate translates text between the given language codes. "auto" is
// accepted as source. Disabled clients and empty text pass through.
func (c *Client) Translate(ctx context.Context, text, from, to string) (string, error) {
	if !c.Enabled() || strings.TrimSpace(text) == "" || from == to {
		return text, nil
	}

	truncated := text
	if len(truncated) > maxTranslateLength {
		truncated = truncated[:maxTranslateLength]
	}

	translated, _, err := c.request(ctx, truncated, from, to)
	if err != nil {
		return "", err
	}
	if translated == "" {
		return text, nil
	}
	return translated, nil
}

// Detect returns the language code the endpoint detected for the text.
// Disabled clients report "en".
func (c *Client) Detect(ctx context.Context, text string) (string, error) {
	if !c.Enabled() || strings.TrimSpace(text) == "" {
		return "en", nil
	}

	truncated := text
	if len(truncated) > 500 {
		truncated = truncated[:500]
	}

	_, detected, err := c.request(ctx, truncated, "auto", "en")
	if err != nil {
		return "", err
	}
	if detected == "" {
		detected = "en"
	}
	return detected, nil
}

func (c *Client) request(ctx context.Context, text, from, to string) (string, string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", from)
	params.Set("tl", to)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to create translate request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("translate endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("failed to read translate response: %w", err)
	}

	return parseResponse(body)
}

// parseResponse unpacks the endpoint's nested-array payload: element 0
// holds the translation segments, element 2 the detected source language.
func parseResponse(body []byte) (string, string, error) {
	var response []interface{}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", "", fmt.Errorf("failed to parse translate response: %w", err)
	}
	if len(response) == 0 {
		return "", "", errors.New("empty translate response")
	}

	segments, ok := response[0].([]interface{})
	if !ok {
		return "", "", errors.New("unexpected translate response format")
	}

	var result strings.Builder
	for _, segment := range segments {
		if parts, ok := segment.([]interface{}); ok && len(parts) > 0 {
			if translated, ok := parts[0].(string); ok {
				result.WriteString(translated)
			}
		}
	}

	detected := ""
	if len(response) > 2 {
		if lang, ok := response[2].(string); ok {
			detected = lang
		}
	}

	return result.String(), detected, nil
}
