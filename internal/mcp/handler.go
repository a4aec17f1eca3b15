package mcp

import (
	"fmt"
)

// Handler handles MCP tool calls using the HTTP client
type Handler struct {
	client *Client
}

// NewHandler creates a new MCP handler
func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

// HandleToolCall handles a tool call and returns the result
func (h *Handler) HandleToolCall(name string, args map[string]interface{}) (interface{}, error) {
	switch name {
	case "vet_join":
		return h.handleVetJoin(args)
	case "vet_message":
		return h.handleVetMessage(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

func (h *Handler) handleVetJoin(args map[string]interface{}) (interface{}, error) {
	name := getStringArg(args, "name", "")
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	note := getStringArg(args, "note", "")
	if note == "" {
		return nil, fmt.Errorf("note is required")
	}

	verdict, err := h.client.VetJoin(name, note)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"decision": verdict.Decision,
		"reason":   verdict.Reason,
	}, nil
}

func (h *Handler) handleVetMessage(args map[string]interface{}) (interface{}, error) {
	author := getStringArg(args, "author", "")
	if author == "" {
		return nil, fmt.Errorf("author is required")
	}
	body := getStringArg(args, "body", "")
	if body == "" {
		return nil, fmt.Errorf("body is required")
	}

	verdict, err := h.client.VetMessage(author, body)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"is_spam": verdict.IsSpam,
		"reason":  verdict.Reason,
	}, nil
}

// ============ Helpers ============

func getStringArg(args map[string]interface{}, key, defaultValue string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return defaultValue
}
