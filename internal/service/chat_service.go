package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"wolfstreet/internal/model"
	"wolfstreet/internal/repository"
)

const chatDefaultReply = "I'm your trading copilot. Ask me about a symbol like AAPL or BTC."

const chatRiskReply = "General guidance only: manage risk, set stops, and size positions responsibly."

// tradeWords trigger the risk-management reply.
var tradeWords = []string{"buy", "sell", "entry", "exit"}

// knownSymbols get a canned per-symbol take; first match wins.
var knownSymbols = []string{"aapl", "tsla", "msft", "btc", "eth"}

// ChatService is a rule-based chat responder. Both sides of the exchange are
// persisted as chat messages.
type ChatService interface {
	Send(ctx context.Context, userID uuid.UUID, message string) (reply string, err error)
}

type chatService struct {
	repo repository.ChatRepository
}

// NewChatService creates a new chat service.
func NewChatService(repo repository.ChatRepository) ChatService {
	return &chatService{repo: repo}
}

// Send stores the user message, computes the reply and stores it under the
// assistant role.
func (s *chatService) Send(ctx context.Context, userID uuid.UUID, message string) (string, error) {
	if err := s.repo.Create(ctx, &model.ChatMessage{
		UserID:  userID,
		Role:    model.ChatRoleUser,
		Content: message,
	}); err != nil {
		return "", fmt.Errorf("store user message: %w", err)
	}

	reply := replyFor(message)

	if err := s.repo.Create(ctx, &model.ChatMessage{
		UserID:  userID,
		Role:    model.ChatRoleAssistant,
		Content: reply,
	}); err != nil {
		return "", fmt.Errorf("store assistant message: %w", err)
	}
	return reply, nil
}

// replyFor applies the keyword rules: case-insensitive substring matching,
// symbol takes override the generic trade-word reply.
func replyFor(message string) string {
	text := strings.ToLower(message)

	reply := chatDefaultReply
	for _, w := range tradeWords {
		if strings.Contains(text, w) {
			reply = chatRiskReply
			break
		}
	}
	for _, sym := range knownSymbols {
		if strings.Contains(text, sym) {
			reply = fmt.Sprintf("Quick take on %s: trend is up on daily, wait for pullback to 20EMA for better risk/reward.", strings.ToUpper(sym))
			break
		}
	}
	return reply
}
