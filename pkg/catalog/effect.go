package catalog

import "github.com/tbranton/whisperwood/pkg/cond"

// QuestAdvance moves an active quest to a specific stage index.
type QuestAdvance struct {
	QuestID string `json:"quest_id"`
	Stage   int    `json:"stage"`
}

// Effect is a declarative state change attached to dialogue stages,
// dialogue choices and location enter hooks. Content stays plain data;
// the engine interprets each field. Zero fields are no-ops.
type Effect struct {
	Message      string        `json:"message,omitempty"`
	StartQuest   string        `json:"start_quest,omitempty"`
	AdvanceQuest *QuestAdvance `json:"advance_quest,omitempty"`
	StartCombat  []string      `json:"start_combat,omitempty"` // enemy template ids

	// TakeItems removes item ids from the player's inventory,
	// mapped to the count removed. GiveItems adds one of each id.
	TakeItems map[string]int `json:"take_items,omitempty"`
	GiveItems []string       `json:"give_items,omitempty"`

	Gold int `json:"gold,omitempty"` // positive grants, negative charges

	// Rest fully restores overall health and every body part that is
	// not severely injured, the way a night at an inn would.
	Rest bool `json:"rest,omitempty"`
}

// IsZero reports whether the effect changes nothing and carries no message.
func (e Effect) IsZero() bool {
	return e.Message == "" &&
		e.StartQuest == "" &&
		e.AdvanceQuest == nil &&
		len(e.StartCombat) == 0 &&
		len(e.TakeItems) == 0 &&
		len(e.GiveItems) == 0 &&
		e.Gold == 0 &&
		!e.Rest
}

// EnterHook fires when the player arrives at a location. A nil When
// always fires; otherwise the condition gates the effect.
type EnterHook struct {
	When   *cond.When `json:"when,omitempty"`
	Effect Effect     `json:"effect"`
}
