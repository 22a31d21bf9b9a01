package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"beautygpt-api/models"
)

const (
	// GroqBaseURL is the OpenAI-compatible endpoint of the Groq API
	GroqBaseURL = "https://api.groq.com/openai/v1"
	// CompletionModel is the model every chat request is sent to
	CompletionModel = "llama-3.3-70b-versatile"
	// CompletionTemperature is the sampling temperature of every chat request
	CompletionTemperature float32 = 0.7
	// CompletionMaxTokens caps the generated reply length
	CompletionMaxTokens = 1500
)

// ErrCompletionFailed is matched by every error returned from a CompletionGateway call
var ErrCompletionFailed = errors.New("completion failed")

// CompletionError wraps the provider failure behind ErrCompletionFailed
type CompletionError struct {
	Err error
}

func (e *CompletionError) Error() string {
	return e.Err.Error()
}

func (e *CompletionError) Unwrap() []error {
	return []error{ErrCompletionFailed, e.Err}
}

// CompletionGateway sends a conversation to the text-completion provider
type CompletionGateway interface {
	Complete(ctx context.Context, systemPrompt string, history []models.Message, message string) (string, error)
}

// GroqClient implements CompletionGateway on top of the Groq chat-completions API
type GroqClient struct {
	api   *openai.Client
	model string
}

// Ensure GroqClient implements CompletionGateway
var _ CompletionGateway = (*GroqClient)(nil)

// NewGroqClient creates a GroqClient; baseURL defaults to GroqBaseURL when empty
func NewGroqClient(apiKey, baseURL string) *GroqClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = GroqBaseURL
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &conversationForwarder{next: cfg.HTTPClient}

	return &GroqClient{
		api:   openai.NewClientWithConfig(cfg),
		model: CompletionModel,
	}
}

// BuildMessages orders the conversation for the provider:
// system instruction first, history as given, the new user message last.
// History turns are copied byte for byte.
func BuildMessages(systemPrompt string, history []models.Message, message string) []models.Message {
	msgs := make([]models.Message, 0, len(history)+2)
	msgs = append(msgs, models.NewMessage(openai.ChatMessageRoleSystem, systemPrompt))
	msgs = append(msgs, history...)
	msgs = append(msgs, models.NewMessage(openai.ChatMessageRoleUser, message))
	return msgs
}

type conversationKey struct{}

func withConversation(ctx context.Context, messages []models.Message) context.Context {
	return context.WithValue(ctx, conversationKey{}, messages)
}

// conversationForwarder sits between the openai client and its HTTP client.
// It swaps the typed "messages" of the outgoing body for the raw conversation
// carried by the request context, so client turns keep every field they had.
type conversationForwarder struct {
	next openai.HTTPDoer
}

func (f *conversationForwarder) Do(req *http.Request) (*http.Response, error) {
	messages, ok := req.Context().Value(conversationKey{}).([]models.Message)
	if !ok || req.Body == nil {
		return f.next.Do(req)
	}

	body, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}

	body, err = replaceMessages(body, messages)
	if err != nil {
		return nil, err
	}

	out := req.Clone(req.Context())
	out.Body = io.NopCloser(bytes.NewReader(body))
	out.ContentLength = int64(len(body))
	out.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
	return f.next.Do(out)
}

func replaceMessages(body []byte, messages []models.Message) ([]byte, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode request body: %w", err)
	}

	encoded, err := json.Marshal(messages)
	if err != nil {
		return nil, fmt.Errorf("encode messages: %w", err)
	}
	payload["messages"] = encoded

	return json.Marshal(payload)
}

// Complete sends the conversation and returns the generated text verbatim.
// There is no retry: any failure is returned as a *CompletionError.
func (c *GroqClient) Complete(ctx context.Context, systemPrompt string, history []models.Message, message string) (string, error) {
	logger := zerolog.Ctx(ctx)
	start := time.Now()

	// The wire messages come from the conversation in ctx
	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		Temperature: CompletionTemperature,
		MaxTokens:   CompletionMaxTokens,
	}

	ctx = withConversation(ctx, BuildMessages(systemPrompt, history, message))
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		logger.Error().Err(err).
			Str("model", c.model).
			Dur("duration", time.Since(start)).
			Msg("completion request failed")
		return "", &CompletionError{Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &CompletionError{Err: fmt.Errorf("no choices in completion response")}
	}

	text := resp.Choices[0].Message.Content
	logger.Info().
		Str("model", resp.Model).
		Int("history_len", len(history)).
		Int("prompt_tokens", resp.Usage.PromptTokens).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Int("content_length", len(text)).
		Dur("duration", time.Since(start)).
		Msg("completion received")

	return text, nil
}
