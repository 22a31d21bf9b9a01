package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beautygpt-api/models"
	"beautygpt-api/repository"
)

type gatewayCall struct {
	systemPrompt string
	history      []models.Message
	message      string
}

type fakeGateway struct {
	reply string
	err   error
	calls []gatewayCall
}

func (f *fakeGateway) Complete(ctx context.Context, systemPrompt string, history []models.Message, message string) (string, error) {
	f.calls = append(f.calls, gatewayCall{systemPrompt: systemPrompt, history: history, message: message})
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestChatServiceEndToEnd(t *testing.T) {
	catalog := []models.Product{
		{ID: 1, Name: "HydraGlow Serum", Brand: "PureSkin", Category: "serum", SkinTypes: []string{"dry"}},
	}
	repo := repository.NewProductRepository(catalog)
	gateway := &fakeGateway{reply: "Per la pelle secca ti consiglio **HydraGlow Serum** - €24.9"}
	svc := NewChatService(gateway, repo, BuildSystemPrompt(catalog))

	resp, err := svc.Chat(context.Background(), models.ChatRequest{
		Message: "Ho la pelle secca, cosa mi consigli?",
		History: []models.Message{},
	})
	require.NoError(t, err)

	assert.Equal(t, gateway.reply, resp.Response)
	assert.Equal(t, catalog, resp.Products)

	require.Len(t, gateway.calls, 1)
	assert.Equal(t, "Ho la pelle secca, cosa mi consigli?", gateway.calls[0].message)
	assert.Empty(t, gateway.calls[0].history)
}

func TestChatServiceUsesSameSystemPrompt(t *testing.T) {
	repo := repository.NewProductRepository(testProducts())
	gateway := &fakeGateway{reply: "Dimmi di più sulla tua pelle"}
	prompt := BuildSystemPrompt(testProducts())
	svc := NewChatService(gateway, repo, prompt)

	_, err := svc.Chat(context.Background(), models.ChatRequest{Message: "Ciao"})
	require.NoError(t, err)
	_, err = svc.Chat(context.Background(), models.ChatRequest{
		Message: "Ho 30 anni",
		History: []models.Message{models.NewMessage("user", "Ciao"), models.NewMessage("assistant", "Dimmi di più sulla tua pelle")},
	})
	require.NoError(t, err)

	require.Len(t, gateway.calls, 2)
	assert.Equal(t, prompt, gateway.calls[0].systemPrompt)
	assert.Equal(t, gateway.calls[0].systemPrompt, gateway.calls[1].systemPrompt)
	assert.Equal(t, prompt, svc.SystemPrompt())
	assert.Len(t, gateway.calls[1].history, 2)
}

func TestChatServiceNoProductsIsEmptyList(t *testing.T) {
	svc := NewChatService(&fakeGateway{reply: "Che tipo di pelle hai?"}, repository.NewProductRepository(testProducts()), "p")

	resp, err := svc.Chat(context.Background(), models.ChatRequest{Message: "Ciao"})
	require.NoError(t, err)
	require.NotNil(t, resp.Products)
	assert.Empty(t, resp.Products)
}

func TestChatServiceCapsProducts(t *testing.T) {
	catalog := append(testProducts(), models.Product{ID: 4, Name: "Sun Shield SPF50", Brand: "Solaria"})
	svc := NewChatService(
		&fakeGateway{reply: "Solaria, Lumière, Dermalia e PureSkin"},
		repository.NewProductRepository(catalog),
		"p",
	)

	resp, err := svc.Chat(context.Background(), models.ChatRequest{Message: "Tutto"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, productIDs(resp.Products))
}

func TestChatServicePropagatesGatewayError(t *testing.T) {
	failure := &CompletionError{Err: errors.New("connection refused")}
	svc := NewChatService(&fakeGateway{err: failure}, repository.NewProductRepository(testProducts()), "p")

	resp, err := svc.Chat(context.Background(), models.ChatRequest{Message: "Ciao"})
	assert.Nil(t, resp)
	require.ErrorIs(t, err, ErrCompletionFailed)
	assert.Equal(t, "connection refused", err.Error())
}
