package models

import "time"

// ChatMessage records one completed assistant turn. History is write-only
// bookkeeping; conversations are stateless.
type ChatMessage struct {
	ID         string    `json:"id" db:"id"`
	UserID     string    `json:"userId" db:"user_id"`
	Message    string    `json:"message" db:"message"`
	Reply      string    `json:"reply" db:"reply"`
	Model      string    `json:"model" db:"model"`
	TokensUsed int       `json:"tokensUsed" db:"tokens_used"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
