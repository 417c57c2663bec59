package cond

// View provides the minimal interface needed to evaluate conditions.
// This avoids an import cycle with the state package.
type View interface {
	HasItem(itemID string) bool
	QuestState(questID string) (stage int, active bool, completed bool)
	PlayerLevel() int
	PlayerGold() int
	LocationID() string
	LocationHasItem(itemID string) bool
	NPCPresent(npcID string) bool
	DialogueNPC() string
	BossDefeated(enemyID string) bool
}

// QuestStageRef identifies a specific stage of a quest.
type QuestStageRef struct {
	QuestID string `json:"quest_id"`
	Stage   int    `json:"stage"`
}

// When is a declarative condition over the game state. All specified
// fields must hold for the condition to trigger; an empty When never
// triggers. Any provides disjunction when a single clause is not enough.
type When struct {
	HasItem         string         `json:"has_item,omitempty"`          // Player inventory contains this item id
	MissingItem     string         `json:"missing_item,omitempty"`      // Player inventory lacks this item id
	QuestNotStarted string         `json:"quest_not_started,omitempty"` // Quest is neither active nor completed
	QuestCompleted  string         `json:"quest_completed,omitempty"`   // Quest is in the completed set
	QuestStageIs    *QuestStageRef `json:"quest_stage_is,omitempty"`    // Quest is active at exactly this stage
	MinLevel        int            `json:"min_level,omitempty"`         // Player level >= this value
	MinGold         int            `json:"min_gold,omitempty"`          // Player gold >= this value
	AtLocation      string         `json:"at_location,omitempty"`       // Player is at this location id
	LocationHasItem string         `json:"location_has_item,omitempty"` // Current location contains this item id
	NPCPresent      string         `json:"npc_present,omitempty"`       // This NPC is at the current location
	TalkingTo       string         `json:"talking_to,omitempty"`        // Player is in dialogue with this NPC
	BossDefeated    string         `json:"boss_defeated,omitempty"`     // This unique enemy has been engaged and put down
	BossAlive       string         `json:"boss_alive,omitempty"`        // This unique enemy has not yet been engaged
	Any             []When         `json:"any,omitempty"`               // At least one nested condition holds
}

// IsZero reports whether no condition is specified at all.
func (w When) IsZero() bool {
	return w.HasItem == "" &&
		w.MissingItem == "" &&
		w.QuestNotStarted == "" &&
		w.QuestCompleted == "" &&
		w.QuestStageIs == nil &&
		w.MinLevel == 0 &&
		w.MinGold == 0 &&
		w.AtLocation == "" &&
		w.LocationHasItem == "" &&
		w.NPCPresent == "" &&
		w.TalkingTo == "" &&
		w.BossDefeated == "" &&
		w.BossAlive == "" &&
		len(w.Any) == 0
}

// Evaluate checks whether all clauses of the condition are met.
// An empty condition returns false, matching the convention that a
// conditional with nothing specified should not trigger.
func Evaluate(w When, v View) bool {
	if w.IsZero() {
		return false
	}

	if w.HasItem != "" && !v.HasItem(w.HasItem) {
		return false
	}
	if w.MissingItem != "" && v.HasItem(w.MissingItem) {
		return false
	}

	if w.QuestNotStarted != "" {
		_, active, completed := v.QuestState(w.QuestNotStarted)
		if active || completed {
			return false
		}
	}
	if w.QuestCompleted != "" {
		_, _, completed := v.QuestState(w.QuestCompleted)
		if !completed {
			return false
		}
	}
	if w.QuestStageIs != nil {
		stage, active, _ := v.QuestState(w.QuestStageIs.QuestID)
		if !active || stage != w.QuestStageIs.Stage {
			return false
		}
	}

	if w.MinLevel > 0 && v.PlayerLevel() < w.MinLevel {
		return false
	}
	if w.MinGold > 0 && v.PlayerGold() < w.MinGold {
		return false
	}

	if w.AtLocation != "" && v.LocationID() != w.AtLocation {
		return false
	}
	if w.LocationHasItem != "" && !v.LocationHasItem(w.LocationHasItem) {
		return false
	}
	if w.NPCPresent != "" && !v.NPCPresent(w.NPCPresent) {
		return false
	}
	if w.TalkingTo != "" && v.DialogueNPC() != w.TalkingTo {
		return false
	}
	if w.BossDefeated != "" && !v.BossDefeated(w.BossDefeated) {
		return false
	}
	if w.BossAlive != "" && v.BossDefeated(w.BossAlive) {
		return false
	}

	if len(w.Any) > 0 {
		matched := false
		for _, alt := range w.Any {
			if Evaluate(alt, v) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}
