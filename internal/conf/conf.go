package conf

import (
	"os"
	"strconv"

	"github.com/agentics/gatekeeper/internal/biz/usecase"
)

// Config represents application configuration
type Config struct {
	// HTTP server configuration
	Server ServerConfig

	// Completion backend configuration
	OpenAI OpenAIConfig

	// Policy document configuration
	Policy PolicyConfig

	// Audit log configuration
	Audit AuditConfig

	// Moderator alert configuration (optional)
	Lark LarkConfig

	// Prompts configuration (loaded from YAML)
	Prompts *PromptsConfig

	// Debug mode
	Debug bool
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int
}

// OpenAIConfig contains completion backend configuration
type OpenAIConfig struct {
	APIKey  string
	BaseURL string // OpenAI-compatible endpoint, empty for the SDK default
	Model   string
}

// PolicyConfig contains policy document configuration
type PolicyConfig struct {
	Path string
}

// AuditConfig contains audit log configuration
type AuditConfig struct {
	Dir string
}

// LarkConfig contains moderator alert configuration
// Leaving AppID/AppSecret empty disables the notifier.
type LarkConfig struct {
	AppID       string
	AppSecret   string
	AlertChatID string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	// HTTP port
	port := 8000
	if val := os.Getenv("PORT"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			port = parsed
		}
	}

	// Policy document path
	policyPath := os.Getenv("POLICY_PATH")
	if policyPath == "" {
		policyPath = "policy.md"
	}

	// Audit log directory
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "./logs"
	}

	// Load prompts from YAML
	promptsConfigPath := os.Getenv("PROMPTS_CONFIG_PATH")
	promptsConfig, _ := LoadPromptsConfig(promptsConfigPath)

	return &Config{
		Server: ServerConfig{
			Port: port,
		},
		OpenAI: OpenAIConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
			Model:   os.Getenv("MODEL_ID"),
		},
		Policy: PolicyConfig{
			Path: policyPath,
		},
		Audit: AuditConfig{
			Dir: logDir,
		},
		Lark: LarkConfig{
			AppID:       os.Getenv("LARK_APP_ID"),
			AppSecret:   os.Getenv("LARK_APP_SECRET"),
			AlertChatID: os.Getenv("LARK_ALERT_CHAT"),
		},
		Prompts: promptsConfig,
		Debug:   os.Getenv("DEBUG") == "true",
	}
}

// ToVetPrompts converts to usecase prompt templates
func (c *Config) ToVetPrompts() usecase.VetPrompts {
	if c.Prompts == nil {
		return usecase.DefaultVetPrompts
	}

	return usecase.VetPrompts{
		JoinSystem:    c.Prompts.Join.SystemTemplate,
		JoinUser:      c.Prompts.Join.UserTemplate,
		MessageSystem: c.Prompts.Message.SystemTemplate,
		MessageUser:   c.Prompts.Message.UserTemplate,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.OpenAI.Model == "" {
		return &ConfigError{Field: "MODEL_ID", Message: "required"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
