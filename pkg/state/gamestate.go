package state

import (
	"github.com/google/uuid"

	"github.com/tbranton/whisperwood/pkg/action"
	"github.com/tbranton/whisperwood/pkg/catalog"
)

// MaxMessages caps the message log; older entries are dropped first.
const MaxMessages = 200

// Message kinds classify log entries for display.
const (
	MsgGame          = "game"
	MsgSystem        = "system"
	MsgCombat        = "combat"
	MsgDialogue      = "dialogue"
	MsgQuest         = "quest"
	MsgLevelUp       = "level_up"
	MsgBodyCondition = "body_condition"
	MsgError         = "error"
	MsgAssist        = "ai_assist"
)

// Message is one entry of the game's narration log.
type Message struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
}

// GameState is the complete runtime state of one playthrough.
type GameState struct {
	ID uuid.UUID `json:"id"`

	Player            *Player `json:"player"`
	CurrentLocationID string  `json:"current_location_id"`

	Messages []Message `json:"messages"`

	ActiveQuests    map[string]*QuestProgress `json:"active_quests"`
	CompletedQuests map[string]*QuestProgress `json:"completed_quests"`

	DialogueNPCID   string `json:"dialogue_npc_id,omitempty"`
	DialogueStageID string `json:"dialogue_stage_id,omitempty"`

	Combat *CombatState `json:"combat,omitempty"`

	Locations map[string]*LocationState `json:"locations"`

	// BossesEngaged records unique enemies that have been fought so
	// their lairs stay quiet afterwards.
	BossesEngaged map[string]bool `json:"bosses_engaged,omitempty"`

	GameTime int  `json:"game_time"`
	GameOver bool `json:"game_over,omitempty"`

	// Pending is the follow-up action queue drained by the dispatcher
	// within a single turn. It is never persisted.
	Pending []action.Action `json:"-"`
}

// NewGameState starts a fresh playthrough of the given catalog.
func NewGameState(c *catalog.Catalog, playerName string) *GameState {
	gs := &GameState{
		ID:                uuid.New(),
		Player:            NewPlayer(playerName),
		CurrentLocationID: c.StartLocationID,
		ActiveQuests:      make(map[string]*QuestProgress),
		CompletedQuests:   make(map[string]*QuestProgress),
		Locations:         make(map[string]*LocationState, len(c.Locations)),
		BossesEngaged:     make(map[string]bool),
	}
	for id, tpl := range c.Locations {
		gs.Locations[id] = NewLocationState(tpl)
	}
	return gs
}

// AddMessage appends to the narration log, dropping the oldest entries
// past the cap.
func (gs *GameState) AddMessage(text, kind string) {
	gs.Messages = append(gs.Messages, Message{Text: text, Kind: kind})
	if over := len(gs.Messages) - MaxMessages; over > 0 {
		gs.Messages = gs.Messages[over:]
	}
}

// Queue appends follow-up actions for the dispatcher to drain.
func (gs *GameState) Queue(actions ...action.Action) {
	gs.Pending = append(gs.Pending, actions...)
}

// Location returns the mutable state of a location by id.
func (gs *GameState) Location(id string) (*LocationState, bool) {
	ls, ok := gs.Locations[id]
	return ls, ok
}

// CurrentLocation returns the mutable state of the player's location.
func (gs *GameState) CurrentLocation() *LocationState {
	return gs.Locations[gs.CurrentLocationID]
}

// InCombat reports whether a fight is ongoing.
func (gs *GameState) InCombat() bool {
	return gs.Combat != nil
}

// InDialogue reports whether the player is talking to an NPC.
func (gs *GameState) InDialogue() bool {
	return gs.DialogueNPCID != ""
}

// QuestActive returns progress for an active quest.
func (gs *GameState) QuestActive(questID string) (*QuestProgress, bool) {
	q, ok := gs.ActiveQuests[questID]
	return q, ok
}

// QuestCompleted reports whether the quest has been finished.
func (gs *GameState) QuestCompleted(questID string) bool {
	_, ok := gs.CompletedQuests[questID]
	return ok
}
