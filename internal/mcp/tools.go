package mcp

// ToolDefinition represents an MCP tool definition
type ToolDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available MCP tool definitions
func GetToolDefinitions() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "vet_join",
			Description: "Vet a prospective member against the moderation policy. Returns a decision (approve/reject) and a reason.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "The applicant's name",
					},
					"note": map[string]interface{}{
						"type":        "string",
						"description": "The applicant's introduction note",
					},
				},
				"required": []string{"name", "note"},
			},
		},
		{
			Name:        "vet_message",
			Description: "Check an incoming message against the moderation policy. Returns is_spam (true/false) and a reason.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"author": map[string]interface{}{
						"type":        "string",
						"description": "The message author's identifier",
					},
					"body": map[string]interface{}{
						"type":        "string",
						"description": "The message text to check",
					},
				},
				"required": []string{"author", "body"},
			},
		},
	}
}
