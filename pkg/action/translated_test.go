package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbranton/whisperwood/pkg/catalog"
)

func TestDecodeTranslated(t *testing.T) {
	raw := `[
		{"actionType": "PLAYER_ATTACK", "params": {"attackType": "thrust", "targetEnemyId": "goblin_scout_0", "targetBodyPart": "Head"}},
		{"actionType": "MOVE", "params": {"direction": "north"}}
	]`

	actions := DecodeTranslated(raw)
	require.Len(t, actions, 2)

	assert.Equal(t, PlayerAttack, actions[0].Type)
	assert.Equal(t, catalog.AttackThrust, actions[0].AttackType)
	assert.Equal(t, "goblin_scout_0", actions[0].TargetEnemyID)
	assert.Equal(t, catalog.PartHead, actions[0].TargetBodyPart)

	assert.Equal(t, Move, actions[1].Type)
	assert.Equal(t, "north", actions[1].Direction)
}

func TestDecodeTranslatedStripsCodeFence(t *testing.T) {
	raw := "```json\n[{\"actionType\": \"EXAMINE\", \"params\": {\"targetName\": \"room\"}}]\n```"

	actions := DecodeTranslated(raw)
	require.Len(t, actions, 1)
	assert.Equal(t, Examine, actions[0].Type)
	assert.Equal(t, "room", actions[0].TargetName)
}

func TestDecodeTranslatedSingleObject(t *testing.T) {
	raw := `{"actionType": "EVADE_ACTION", "params": {}}`

	actions := DecodeTranslated(raw)
	require.Len(t, actions, 1)
	assert.Equal(t, Evade, actions[0].Type)
}

func TestDecodeTranslatedDefaultsAttackType(t *testing.T) {
	raw := `[{"actionType": "PLAYER_ATTACK", "params": {"targetEnemyId": "wolf_0"}}]`

	actions := DecodeTranslated(raw)
	require.Len(t, actions, 1)
	assert.Equal(t, catalog.AttackSlash, actions[0].AttackType)
}

func TestDecodeTranslatedMalformed(t *testing.T) {
	actions := DecodeTranslated("I cannot help with that.")
	require.Len(t, actions, 1)
	assert.Equal(t, Unknown, actions[0].Type)
	assert.NotEmpty(t, actions[0].Reason)
}

func TestDecodeTranslatedUnknownType(t *testing.T) {
	raw := `[{"actionType": "CAST_FIREBALL", "params": {}}]`

	actions := DecodeTranslated(raw)
	require.Len(t, actions, 1)
	assert.Equal(t, Unknown, actions[0].Type)
	assert.Contains(t, actions[0].Reason, "CAST_FIREBALL")
}

func TestDecodeTranslatedUnknownCommandReason(t *testing.T) {
	raw := `[{"actionType": "UNKNOWN_COMMAND", "params": {"reason": "the player asked for a pizza"}}]`

	actions := DecodeTranslated(raw)
	require.Len(t, actions, 1)
	assert.Equal(t, Unknown, actions[0].Type)
	assert.Equal(t, "the player asked for a pizza", actions[0].Reason)
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `[{"a":1}]`, `[{"a":1}]`},
		{"fence with tag", "```json\n[]\n```", "[]"},
		{"fence without tag", "```\n[]\n```", "[]"},
		{"fence no newline", "```[]```", "[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.in))
		})
	}
}
