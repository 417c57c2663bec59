package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbranton/whisperwood/pkg/catalog"
	"github.com/tbranton/whisperwood/pkg/chat"
	"github.com/tbranton/whisperwood/pkg/state"
)

func TestBuildRequiresInputs(t *testing.T) {
	_, err := New().Build()
	assert.Error(t, err)

	c := catalog.Default()
	_, err = New().WithCatalog(c).WithGameState(state.NewGameState(c, "Wren")).Build()
	assert.Error(t, err, "empty input is rejected")
}

func TestBuildMessageShape(t *testing.T) {
	c := catalog.Default()
	gs := state.NewGameState(c, "Wren")

	messages, err := New().
		WithCatalog(c).
		WithGameState(gs).
		WithPlayerInput("pick up the sword").
		Build()
	require.NoError(t, err)
	require.Len(t, messages, 3)

	assert.Equal(t, chat.ChatRoleSystem, messages[0].Role)
	assert.Contains(t, messages[0].Content, "JSON array")
	assert.Equal(t, chat.ChatRoleSystem, messages[1].Role)
	assert.Contains(t, messages[1].Content, "GAME CONTEXT")
	assert.Equal(t, chat.ChatRoleUser, messages[2].Role)
	assert.Equal(t, "pick up the sword", messages[2].Content)
}

func TestContextListsSurroundings(t *testing.T) {
	c := catalog.Default()
	gs := state.NewGameState(c, "Wren")

	messages, err := New().WithCatalog(c).WithGameState(gs).WithPlayerInput("look").Build()
	require.NoError(t, err)
	ctx := messages[1].Content

	assert.Contains(t, ctx, "starter_room")
	assert.Contains(t, ctx, `"Rusty Sword"`)
	assert.Contains(t, ctx, "east->village_outskirts")
	assert.Contains(t, ctx, "75 gold")
}

func TestContextShowsCombat(t *testing.T) {
	c := catalog.Default()
	gs := state.NewGameState(c, "Wren")
	gs.Combat = &state.CombatState{
		Enemies: []*state.CombatEnemy{state.NewCombatEnemy(c.Enemies["goblin_scout"], 0)},
		FocusID: "goblin_scout_0",
	}

	messages, err := New().WithCatalog(c).WithGameState(gs).WithPlayerInput("hit it").Build()
	require.NoError(t, err)

	ctx := messages[1].Content
	assert.Contains(t, ctx, "IN COMBAT")
	assert.Contains(t, ctx, "goblin_scout_0")
	assert.Contains(t, ctx, "current target")
}
