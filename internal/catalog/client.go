// Package catalog reduces the commerce backend's product/variant/asset graph
// into the flat icon catalog the configurator consumes.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultRequestTimeout = 30 * time.Second

// Client talks to the commerce backend's shop GraphQL endpoint.
type Client struct {
	endpoint  string
	authToken string
	client    *http.Client
}

// NewClient creates a catalog client for the given shop-api endpoint.
func NewClient(endpoint, authToken string) *Client {
	return &Client{
		endpoint:  endpoint,
		authToken: authToken,
		client:    &http.Client{Timeout: defaultRequestTimeout},
	}
}

type graphqlRequest struct {
	Query     string      `json:"query"`
	Variables interface{} `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// Execute posts one GraphQL request and decodes the data payload into out.
// A non-OK transport status or any GraphQL-level error is a hard failure;
// the caller never sees a partial result.
func (c *Client) Execute(ctx context.Context, query string, variables interface{}, out interface{}) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("encoding catalog request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building catalog request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("catalog fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog fetch failed: backend returned status %d", resp.StatusCode)
	}

	var envelope graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("catalog fetch failed: decoding response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("catalog fetch failed: %s", envelope.Errors[0].Message)
	}
	if envelope.Data == nil {
		return fmt.Errorf("catalog fetch failed: response carried no data")
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("catalog fetch failed: decoding data: %w", err)
	}
	return nil
}
