// Package gqlclient is the small JSON-over-HTTP GraphQL client the
// scheduled jobs use to call the CRM's own /graphql endpoint.
package gqlclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
)

type Client struct {
	url  string
	http *retryablehttp.Client
}

type request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func New(url string) *Client {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 3
	httpClient.Logger = nil

	return &Client{
		url:  url,
		http: httpClient,
	}
}

// Do executes the query and unmarshals the response's data object into
// out. Server-side resolver errors come back as a Go error.
func (c *Client) Do(query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to encode GraphQL request: %w", err)
	}

	req, err := retryablehttp.NewRequest(http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create GraphQL request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("GraphQL request to %s failed: %v", c.url, err)
		return fmt.Errorf("GraphQL request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GraphQL endpoint returned non-success status: %d", resp.StatusCode)
	}

	var gqlResp response
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return fmt.Errorf("failed to decode GraphQL response: %w", err)
	}

	if len(gqlResp.Errors) > 0 {
		return fmt.Errorf("GraphQL error: %s", gqlResp.Errors[0].Message)
	}

	if out != nil {
		if err := json.Unmarshal(gqlResp.Data, out); err != nil {
			return fmt.Errorf("failed to decode GraphQL data: %w", err)
		}
	}
	return nil
}
