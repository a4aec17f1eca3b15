package domain

// JoinRequest represents a request to vet a prospective member
type JoinRequest struct {
	Name string `json:"name"`
	Note string `json:"note"`
}

// MessageRequest represents a request to vet an incoming message
type MessageRequest struct {
	Author string `json:"author"`
	Body   string `json:"body"`
}
