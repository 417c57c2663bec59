package services

import (
	"context"

	"github.com/tbranton/whisperwood/pkg/chat"
)

// LLMService defines the interface for the command translator backend.
type LLMService interface {
	// InitModel prepares the model on startup.
	InitModel(ctx context.Context, modelName string) error

	// Chat sends a conversation and returns the model's reply.
	Chat(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error)
}
