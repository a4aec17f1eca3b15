package repo

// PolicyRepo loads the moderation policy document
type PolicyRepo interface {
	// Load reads the full policy text
	// Re-read on every call, no caching
	Load() (string, error)
}
