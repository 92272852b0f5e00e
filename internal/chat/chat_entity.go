package chat

import "time"

type MessageRole string

const (
	RoleUser  MessageRole = "user"
	RoleModel MessageRole = "model"
)

// Message adalah satu entri transcript. Transcript per user bersifat
// append-only, kecuali penggantian in-place satu placeholder berdasarkan id.
type Message struct {
	ID        string      `json:"id"`
	Role      MessageRole `json:"role"`
	Text      string      `json:"text"`
	Timestamp time.Time   `json:"timestamp"`
}

const (
	placeholderProcessing = "Processing command..."
	placeholderThinking   = "Thinking..."
)
