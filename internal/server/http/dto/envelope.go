package dto

// Response is the envelope every endpoint answers with, matching the wire
// shape the dashboard's clients already understand.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}
