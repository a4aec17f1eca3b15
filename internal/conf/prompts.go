package conf

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PromptsConfig contains all prompt templates loaded from YAML
type PromptsConfig struct {
	Join    JoinPrompts    `yaml:"join"`
	Message MessagePrompts `yaml:"message"`
}

// JoinPrompts contains the join vet prompt templates
type JoinPrompts struct {
	SystemTemplate string `yaml:"system_template"`
	UserTemplate   string `yaml:"user_template"`
}

// MessagePrompts contains the message vet prompt templates
type MessagePrompts struct {
	SystemTemplate string `yaml:"system_template"`
	UserTemplate   string `yaml:"user_template"`
}

// LoadPromptsConfig loads prompt templates from a YAML file
func LoadPromptsConfig(configPath string) (*PromptsConfig, error) {
	// Try multiple paths
	paths := []string{configPath}
	if configPath == "" {
		paths = []string{
			"configs/prompts.yaml",
			"./configs/prompts.yaml",
			"/etc/gatekeeper/prompts.yaml",
		}
		// Add path relative to executable
		if execPath, err := os.Executable(); err == nil {
			paths = append(paths, filepath.Join(filepath.Dir(execPath), "configs", "prompts.yaml"))
		}
		// Add path relative to working directory
		if wd, err := os.Getwd(); err == nil {
			paths = append(paths, filepath.Join(wd, "configs", "prompts.yaml"))
		}
	}

	var data []byte
	var loadedPath string
	var err error

	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			loadedPath = p
			break
		}
	}

	if data == nil {
		// Return default config if no file found
		fmt.Println("[Config] No prompts.yaml found, using defaults")
		return DefaultPromptsConfig(), nil
	}

	fmt.Printf("[Config] Loading prompts from: %s\n", loadedPath)

	var config PromptsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse prompts.yaml: %w", err)
	}

	// Fill in defaults for empty values
	config.fillDefaults()

	return &config, nil
}

// fillDefaults fills in default values for empty fields
func (c *PromptsConfig) fillDefaults() {
	defaults := DefaultPromptsConfig()

	if c.Join.SystemTemplate == "" {
		c.Join.SystemTemplate = defaults.Join.SystemTemplate
	}
	if c.Join.UserTemplate == "" {
		c.Join.UserTemplate = defaults.Join.UserTemplate
	}

	if c.Message.SystemTemplate == "" {
		c.Message.SystemTemplate = defaults.Message.SystemTemplate
	}
	if c.Message.UserTemplate == "" {
		c.Message.UserTemplate = defaults.Message.UserTemplate
	}
}

// DefaultPromptsConfig returns the default prompt templates
func DefaultPromptsConfig() *PromptsConfig {
	return &PromptsConfig{
		Join: JoinPrompts{
			SystemTemplate: "Policy:\n{{policy}}\nReturn JSON with decision approve/reject and reason.",
			UserTemplate:   "Name: {{name}}\nNote: {{note}}",
		},
		Message: MessagePrompts{
			SystemTemplate: "Policy:\n{{policy}}\nReturn JSON with is_spam true/false and reason.",
			UserTemplate:   "Message: {{body}}",
		},
	}
}
