package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbranton/whisperwood/pkg/catalog"
)

func TestSaveCodeRoundTrip(t *testing.T) {
	c := catalog.Default()
	gs := NewGameState(c, "Wren")
	gs.Player.Gold = 300
	gs.Player.AddItem("mystic_orb")
	gs.CurrentLocationID = "deep_woods"
	gs.GameTime = 17

	code, err := EncodeSaveCode(gs.Snapshot())
	require.NoError(t, err)
	require.NotEmpty(t, code)

	save, err := DecodeSaveCode(code)
	require.NoError(t, err)

	restored, err := Restore(c, save)
	require.NoError(t, err)
	assert.Equal(t, 300, restored.Player.Gold)
	assert.True(t, restored.Player.HasItem("mystic_orb"))
	assert.Equal(t, "deep_woods", restored.CurrentLocationID)
	assert.Equal(t, 17, restored.GameTime)
}

func TestSaveCodeIsObfuscated(t *testing.T) {
	gs := NewGameState(catalog.Default(), "Wren")
	code, err := EncodeSaveCode(gs.Snapshot())
	require.NoError(t, err)
	assert.NotContains(t, code, "player")
	assert.NotContains(t, code, "gold")
}

func TestDecodeSaveCodeRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"empty", ""},
		{"not shifted base64", "this is not a save"},
		{"truncated", "Kx"},
		{"control characters", "\x01\x02\x03"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeSaveCode(tc.code)
			assert.Error(t, err)
		})
	}
}
