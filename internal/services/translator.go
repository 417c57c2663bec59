package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tbranton/whisperwood/pkg/action"
	"github.com/tbranton/whisperwood/pkg/catalog"
	"github.com/tbranton/whisperwood/pkg/prompts"
	"github.com/tbranton/whisperwood/pkg/state"
)

// Translator turns free-form player text into engine actions using an
// LLM backend. The model sees the current game context and answers
// with a JSON action array; it never mutates state itself.
type Translator struct {
	llm    LLMService
	logger *slog.Logger
}

// NewTranslator creates a translator backed by the given LLM service.
func NewTranslator(llm LLMService, logger *slog.Logger) *Translator {
	return &Translator{
		llm:    llm,
		logger: logger,
	}
}

// Translate maps player input to a sequence of actions. An error means
// the backend failed; a model response that cannot be parsed comes back
// as an UNKNOWN_COMMAND action instead, so the player gets a reply.
func (t *Translator) Translate(ctx context.Context, c *catalog.Catalog, gs *state.GameState, input string) ([]action.Action, error) {
	messages, err := prompts.New().
		WithCatalog(c).
		WithGameState(gs).
		WithPlayerInput(input).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	resp, err := t.llm.Chat(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("llm chat failed: %w", err)
	}

	actions := action.DecodeTranslated(resp.Message)
	t.logger.Debug("Translated player input",
		"input", input,
		"action_count", len(actions))
	return actions, nil
}
