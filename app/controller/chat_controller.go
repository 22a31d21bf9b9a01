package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"beautygpt-api/models"
)

// ChatServiceInterface defines the chat pipeline used by ChatController
type ChatServiceInterface interface {
	Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

// ChatController handles HTTP requests for the chat endpoint
type ChatController struct {
	service ChatServiceInterface
}

// NewChatController creates a new ChatController
func NewChatController(service ChatServiceInterface) *ChatController {
	return &ChatController{
		service: service,
	}
}

// chatRequestBody distinguishes a missing message from an empty one
type chatRequestBody struct {
	Message *string          `json:"message"`
	History []models.Message `json:"history"`
}

// Chat handles POST /chat
func (c *ChatController) Chat(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var body chatRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Warn().Err(err).Msg("❌ Chat: Failed to decode request body")
		writeError(w, r, http.StatusUnprocessableEntity, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if body.Message == nil {
		logger.Warn().Msg("❌ Chat: message is required")
		writeError(w, r, http.StatusUnprocessableEntity, "message is required")
		return
	}

	req := models.ChatRequest{
		Message: *body.Message,
		History: body.History,
	}
	if req.History == nil {
		req.History = []models.Message{}
	}

	logger.Debug().Int("history_len", len(req.History)).Int("message_len", len(req.Message)).Msg("📋 Chat: Request decoded")

	resp, err := c.service.Chat(r.Context(), req)
	if err != nil {
		logger.Error().Err(err).Msg("❌ Chat: completion failed")
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info().Int("products", len(resp.Products)).Msg("✅ Chat: reply generated")
	writeJSON(w, r, http.StatusOK, resp)
}
