package models

import "time"

// ChatMessage is one turn of a conversation as stored for the chat UI.
type ChatMessage struct {
	Role    string         `json:"role"` // "user" or "assistant"
	Content string         `json:"content"`
	Kind    SpecialistKind `json:"kind,omitempty"`
	At      time.Time      `json:"at"`
}

// HistoryResponse is returned by the history endpoint.
type HistoryResponse struct {
	SessionID string        `json:"session_id"`
	Messages  []ChatMessage `json:"messages"`
}
