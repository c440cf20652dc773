// Package supabase is a typed HTTP client for the hosted Supabase project:
// GoTrue auth endpoints plus the PostgREST table API. Only the small surface
// the platform consumes is covered.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to a single Supabase project.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	authToken  string
}

// NewClient creates a client authenticated with the given API key (anon or
// service-role). The key doubles as the bearer token until WithToken is used.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:     strings.TrimSpace(apiKey),
		authToken:  strings.TrimSpace(apiKey),
	}
}

// WithToken returns a copy of the client acting on behalf of a user session.
// Row-level security applies to requests issued through the returned client.
func (c *Client) WithToken(accessToken string) *Client {
	clone := *c
	clone.authToken = strings.TrimSpace(accessToken)
	return &clone
}

// BaseURL reports the project URL the client was configured with.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) do(ctx context.Context, method, path string, headers http.Header, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.authToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	return c.httpClient.Do(req)
}

// decodeInto drains the response, mapping non-2xx statuses to *APIError.
func decodeInto(resp *http.Response, dest any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp)
	}
	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	// Error envelopes differ between GoTrue and PostgREST; accept both.
	var body struct {
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorCode        string `json:"error_code"`
		Code             any    `json:"code"`
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && json.Unmarshal(raw, &body) == nil {
		switch {
		case body.ErrorDescription != "":
			apiErr.Message = body.ErrorDescription
		case body.Msg != "":
			apiErr.Message = body.Msg
		case body.Message != "":
			apiErr.Message = body.Message
		case body.Error != "":
			apiErr.Message = body.Error
		}
		if body.ErrorCode != "" {
			apiErr.Code = body.ErrorCode
		} else if code, ok := body.Code.(string); ok {
			apiErr.Code = code
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
