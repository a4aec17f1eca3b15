package data

import (
	"fmt"
	"os"

	"github.com/agentics/gatekeeper/internal/biz/repo"
)

// filePolicy reads the policy document from disk
type filePolicy struct {
	path string
}

// NewFilePolicy creates a policy repository for the given file path
func NewFilePolicy(path string) repo.PolicyRepo {
	return &filePolicy{path: path}
}

// Load reads the full policy text, re-read on every call
func (r *filePolicy) Load() (string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return "", fmt.Errorf("read policy: %w", err)
	}
	return string(data), nil
}
