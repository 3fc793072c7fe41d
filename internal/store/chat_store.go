package store

import (
	"context"

	"github.com/bigshop/bigshop-golang/internal/models"
)

// InsertChatMessage records a completed assistant turn.
func (s *Store) InsertChatMessage(ctx context.Context, msg *models.ChatMessage) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO chat_messages (id, user_id, message, reply, model, tokens_used, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		msg.ID, msg.UserID, msg.Message, msg.Reply, msg.Model, msg.TokensUsed, msg.CreatedAt)
	return err
}
