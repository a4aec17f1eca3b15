package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	gkmcp "github.com/agentics/gatekeeper/internal/mcp"
)

// This MCP server exposes the gatekeeper vet operations as tools over
// stdio. Tool calls are relayed to a running gatekeeper service via its
// HTTP API.

const defaultAPIURL = "http://127.0.0.1:8000"

var handler *gkmcp.Handler

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	apiURL := os.Getenv("GATEKEEPER_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	handler = gkmcp.NewHandler(gkmcp.NewClient(apiURL))

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "gatekeeper-tools",
		Version: "v1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "vet_join",
		Description: "Vet a prospective member against the moderation policy. Returns a decision (approve/reject) and a reason.",
	}, handleVetJoin)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "vet_message",
		Description: "Check an incoming message against the moderation policy. Returns is_spam (true/false) and a reason.",
	}, handleVetMessage)

	log.Printf("[MCP] Serving gatekeeper tools for %s", apiURL)
	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}

// VetJoinInput is the input for the vet_join tool
type VetJoinInput struct {
	Name string `json:"name" jsonschema:"description=The applicant's name"`
	Note string `json:"note" jsonschema:"description=The applicant's introduction note"`
}

// VetJoinOutput is the output for the vet_join tool
type VetJoinOutput struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
	Error    string `json:"error,omitempty"`
}

func handleVetJoin(ctx context.Context, req *mcp.CallToolRequest, input VetJoinInput) (*mcp.CallToolResult, VetJoinOutput, error) {
	result, err := handler.HandleToolCall("vet_join", map[string]interface{}{
		"name": input.Name,
		"note": input.Note,
	})
	if err != nil {
		return nil, VetJoinOutput{Error: err.Error()}, nil
	}

	// The service answers null for keys the model omitted; those render
	// as empty strings here
	fields := result.(map[string]interface{})
	var out VetJoinOutput
	if d, ok := fields["decision"].(string); ok {
		out.Decision = d
	}
	if r, ok := fields["reason"].(string); ok {
		out.Reason = r
	}
	return nil, out, nil
}

// VetMessageInput is the input for the vet_message tool
type VetMessageInput struct {
	Author string `json:"author" jsonschema:"description=The message author's identifier"`
	Body   string `json:"body" jsonschema:"description=The message text to check"`
}

// VetMessageOutput is the output for the vet_message tool
type VetMessageOutput struct {
	IsSpam bool   `json:"is_spam"`
	Reason string `json:"reason"`
	Error  string `json:"error,omitempty"`
}

func handleVetMessage(ctx context.Context, req *mcp.CallToolRequest, input VetMessageInput) (*mcp.CallToolResult, VetMessageOutput, error) {
	result, err := handler.HandleToolCall("vet_message", map[string]interface{}{
		"author": input.Author,
		"body":   input.Body,
	})
	if err != nil {
		return nil, VetMessageOutput{Error: err.Error()}, nil
	}

	fields := result.(map[string]interface{})
	var out VetMessageOutput
	if s, ok := fields["is_spam"].(bool); ok {
		out.IsSpam = s
	}
	if r, ok := fields["reason"].(string); ok {
		out.Reason = r
	}
	return nil, out, nil
}
