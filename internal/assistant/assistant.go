package assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bigshop/bigshop-golang/internal/models"
	"github.com/bigshop/bigshop-golang/internal/services"
)

// Usage carries token accounting. Only meaningful for the LLM resolver.
type Usage struct {
	TotalTokens int `json:"totalTokens"`
}

// Resolution is what a resolver produces for one turn.
type Resolution struct {
	Message    string
	Operations []Operation
	Model      string
	Usage      Usage
}

// Resolver maps one user message to zero or more operations plus a reply.
// Both the keyword and the Gemini implementation satisfy it.
type Resolver interface {
	Resolve(ctx context.Context, userID, message string) (*Resolution, error)
}

// Unavailable is the resolver wired in when the LLM provider is selected
// but its credential is missing.
type Unavailable struct{}

func (Unavailable) Resolve(ctx context.Context, userID, message string) (*Resolution, error) {
	return nil, services.ErrAssistantUnavailable
}

// ChatResult is the assistant's response to one message.
type ChatResult struct {
	Message         string      `json:"message"`
	FunctionResults []Operation `json:"functionResults"`
	Timestamp       time.Time   `json:"timestamp"`
	Model           string      `json:"model"`
	Usage           Usage       `json:"usage"`
}

// HistoryStore persists completed turns.
type HistoryStore interface {
	InsertChatMessage(ctx context.Context, msg *models.ChatMessage) error
}

// Service handles one assistant turn: resolve the intent, run the
// operations, record the exchange. Every message is handled statelessly;
// the conversation id is accepted but not used for memory.
type Service struct {
	resolver Resolver
	history  HistoryStore
	log      *zap.Logger
}

func NewService(resolver Resolver, history HistoryStore, log *zap.Logger) *Service {
	return &Service{resolver: resolver, history: history, log: log}
}

// Chat processes one user message and returns the final reply with the
// ordered list of operations that were invoked.
func (s *Service) Chat(ctx context.Context, userID, message, conversationID string) (*ChatResult, error) {
	_ = conversationID // accepted for API compatibility, no server-side memory

	resolution, err := s.resolver.Resolve(ctx, userID, message)
	if err != nil {
		if errors.Is(err, services.ErrAssistantUnavailable) {
			return nil, err
		}
		s.log.Error("error processing assistant request", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to process request: %w", err)
	}

	result := &ChatResult{
		Message:         resolution.Message,
		FunctionResults: resolution.Operations,
		Timestamp:       time.Now().UTC(),
		Model:           resolution.Model,
		Usage:           resolution.Usage,
	}

	if s.history != nil {
		record := &models.ChatMessage{
			ID:         uuid.NewString(),
			UserID:     userID,
			Message:    message,
			Reply:      resolution.Message,
			Model:      resolution.Model,
			TokensUsed: resolution.Usage.TotalTokens,
			CreatedAt:  result.Timestamp,
		}
		if err := s.history.InsertChatMessage(ctx, record); err != nil {
			// The user already has their answer; history is best-effort.
			s.log.Warn("failed to save chat history", zap.Error(err))
		}
	}

	return result, nil
}
