package state

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tbranton/whisperwood/pkg/catalog"
)

// Save is the portable snapshot of a playthrough. Transient state
// (ongoing combat, open dialogue, the follow-up queue) is deliberately
// excluded; a restored game resumes at the current location out of
// combat.
type Save struct {
	ID                uuid.UUID                 `json:"id"`
	Player            *Player                   `json:"player"`
	CurrentLocationID string                    `json:"current_location_id"`
	ActiveQuests      map[string]*QuestProgress `json:"active_quests,omitempty"`
	CompletedQuests   map[string]*QuestProgress `json:"completed_quests,omitempty"`
	Locations         map[string]*LocationState `json:"locations"`
	BossesEngaged     map[string]bool           `json:"bosses_engaged,omitempty"`
	GameTime          int                       `json:"game_time"`
	GameOver          bool                      `json:"game_over,omitempty"`
}

// Snapshot captures the persistent portion of the game state.
func (gs *GameState) Snapshot() Save {
	return Save{
		ID:                gs.ID,
		Player:            gs.Player,
		CurrentLocationID: gs.CurrentLocationID,
		ActiveQuests:      gs.ActiveQuests,
		CompletedQuests:   gs.CompletedQuests,
		Locations:         gs.Locations,
		BossesEngaged:     gs.BossesEngaged,
		GameTime:          gs.GameTime,
		GameOver:          gs.GameOver,
	}
}

// Restore rebuilds a game state from a snapshot against the catalog.
// Locations missing from the save (content added since the save was
// made) start fresh from their templates; saved locations unknown to
// the catalog are dropped.
func Restore(c *catalog.Catalog, save Save) (*GameState, error) {
	if save.Player == nil {
		return nil, fmt.Errorf("save has no player")
	}
	if _, ok := c.Locations[save.CurrentLocationID]; !ok {
		return nil, fmt.Errorf("save location %q is not in the catalog", save.CurrentLocationID)
	}
	for questID := range save.ActiveQuests {
		if _, ok := c.Quests[questID]; !ok {
			return nil, fmt.Errorf("save references unknown quest %q", questID)
		}
	}

	gs := NewGameState(c, save.Player.Name)
	if save.ID != uuid.Nil {
		gs.ID = save.ID
	}
	gs.Player = save.Player
	gs.CurrentLocationID = save.CurrentLocationID
	if save.ActiveQuests != nil {
		gs.ActiveQuests = save.ActiveQuests
	}
	if save.CompletedQuests != nil {
		gs.CompletedQuests = save.CompletedQuests
	}
	if save.BossesEngaged != nil {
		gs.BossesEngaged = save.BossesEngaged
	}
	gs.GameTime = save.GameTime
	gs.GameOver = save.GameOver

	for id, ls := range save.Locations {
		if _, ok := c.Locations[id]; !ok {
			continue
		}
		gs.Locations[id] = ls
	}

	return gs, nil
}
