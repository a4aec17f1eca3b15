package mcp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the HTTP client for communicating with the gatekeeper API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new MCP client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// JoinVerdict is the trimmed response of a join vet.
// Decision and Reason stay untyped: the service answers null for keys
// the model omitted.
type JoinVerdict struct {
	Decision interface{} `json:"decision"`
	Reason   interface{} `json:"reason"`
}

// MessageVerdict is the trimmed response of a message vet
type MessageVerdict struct {
	IsSpam interface{} `json:"is_spam"`
	Reason interface{} `json:"reason"`
}

// VetJoin asks the service to vet a prospective member
func (c *Client) VetJoin(name, note string) (*JoinVerdict, error) {
	body := map[string]string{"name": name, "note": note}
	var result JoinVerdict
	if err := c.post("/vet_join", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// VetMessage asks the service to vet an incoming message
func (c *Client) VetMessage(author, messageBody string) (*MessageVerdict, error) {
	body := map[string]string{"author": author, "body": messageBody}
	var result MessageVerdict
	if err := c.post("/vet_message", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Health checks whether the service is reachable
func (c *Client) Health() error {
	return c.get("/health", nil)
}

// ============ HTTP Helpers ============

func (c *Client) get(path string, result interface{}) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("HTTP GET failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) post(path string, body interface{}, result interface{}) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal body: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("HTTP POST failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
