package service

import (
	"context"

	"beautygpt-api/models"
	"beautygpt-api/repository"
)

// ChatService answers chat messages with the model reply and the products it mentions
type ChatService struct {
	gateway      CompletionGateway
	repository   repository.ProductRepositoryInterface
	systemPrompt string
}

// NewChatService creates a ChatService. systemPrompt is used unchanged for every request.
func NewChatService(gateway CompletionGateway, repo repository.ProductRepositoryInterface, systemPrompt string) *ChatService {
	return &ChatService{
		gateway:      gateway,
		repository:   repo,
		systemPrompt: systemPrompt,
	}
}

// SystemPrompt returns the instruction sent to the provider
func (s *ChatService) SystemPrompt() string {
	return s.systemPrompt
}

// Chat forwards the conversation to the provider and attaches up to
// MaxMentionedProducts catalog products referenced by the reply.
func (s *ChatService) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	text, err := s.gateway.Complete(ctx, s.systemPrompt, req.History, req.Message)
	if err != nil {
		return nil, err
	}

	return &models.ChatResponse{
		Response: text,
		Products: ExtractMentionedProducts(text, s.repository.All(), MaxMentionedProducts),
	}, nil
}
