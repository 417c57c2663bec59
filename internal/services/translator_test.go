package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbranton/whisperwood/pkg/action"
	"github.com/tbranton/whisperwood/pkg/catalog"
	"github.com/tbranton/whisperwood/pkg/chat"
	"github.com/tbranton/whisperwood/pkg/state"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestTranslateBuildsContextMessages(t *testing.T) {
	mock := NewMockLLMAPI()
	mock.Script(`[{"actionType": "MOVE", "params": {"direction": "east"}}]`)

	c := catalog.Default()
	gs := state.NewGameState(c, "Wren")

	tr := NewTranslator(mock, testLogger())
	actions, err := tr.Translate(context.Background(), c, gs, "go east")
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, action.Move, actions[0].Type)
	assert.Equal(t, "east", actions[0].Direction)

	_, calls := mock.GetCalls()
	require.Len(t, calls, 1)
	require.Len(t, calls[0].Messages, 3)
	assert.Equal(t, chat.ChatRoleSystem, calls[0].Messages[0].Role)
	assert.Contains(t, calls[0].Messages[1].Content, "GAME CONTEXT")
	assert.Equal(t, "go east", calls[0].Messages[2].Content)
}

func TestTranslateMultipleActions(t *testing.T) {
	mock := NewMockLLMAPI()
	mock.Script(`[
		{"actionType": "TAKE_ITEM", "params": {"itemName": "Rusty Sword"}},
		{"actionType": "EQUIP_ITEM", "params": {"itemName": "Rusty Sword"}}
	]`)

	c := catalog.Default()
	gs := state.NewGameState(c, "Wren")

	tr := NewTranslator(mock, testLogger())
	actions, err := tr.Translate(context.Background(), c, gs, "grab the sword and wield it")
	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, action.TakeItem, actions[0].Type)
	assert.Equal(t, action.EquipItem, actions[1].Type)
}

func TestTranslateMalformedResponseDegrades(t *testing.T) {
	mock := NewMockLLMAPI()
	mock.Script("I think you want to go east!")

	c := catalog.Default()
	gs := state.NewGameState(c, "Wren")

	tr := NewTranslator(mock, testLogger())
	actions, err := tr.Translate(context.Background(), c, gs, "go east")
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, action.Unknown, actions[0].Type)
}

func TestTranslateBackendError(t *testing.T) {
	mock := NewMockLLMAPI()
	mock.SetChatError(errors.New("connection refused"))

	c := catalog.Default()
	gs := state.NewGameState(c, "Wren")

	tr := NewTranslator(mock, testLogger())
	_, err := tr.Translate(context.Background(), c, gs, "go east")
	assert.Error(t, err)
}

func TestTranslateEmptyInput(t *testing.T) {
	mock := NewMockLLMAPI()
	c := catalog.Default()
	gs := state.NewGameState(c, "Wren")

	tr := NewTranslator(mock, testLogger())
	_, err := tr.Translate(context.Background(), c, gs, "  ")
	assert.Error(t, err)

	_, calls := mock.GetCalls()
	assert.Empty(t, calls, "backend is not called for empty input")
}
