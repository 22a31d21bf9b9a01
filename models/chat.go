package models

import "encoding/json"

// Message is a single conversation turn kept as the raw JSON the client sent.
// Roles and fields are not validated: history is forwarded to the provider as-is.
type Message = json.RawMessage

// NewMessage builds a {"role", "content"} turn; content is kept even when empty
func NewMessage(role, content string) Message {
	turn := struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}{Role: role, Content: content}

	// A struct of two strings always marshals
	data, _ := json.Marshal(turn)
	return data
}

// ChatRequest represents the request body for POST /chat
// Example: {"message": "Ho la pelle secca", "history": [{"role": "user", "content": "Ciao"}]}
type ChatRequest struct {
	Message string    `json:"message"`
	History []Message `json:"history"`
}

// ChatResponse represents the response for POST /chat
type ChatResponse struct {
	Response string    `json:"response"`
	Products []Product `json:"products"`
}

// StatusResponse is returned by the liveness endpoint
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse carries a failure description back to the client
type ErrorResponse struct {
	Detail string `json:"detail"`
}
