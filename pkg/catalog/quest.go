package catalog

import "github.com/tbranton/whisperwood/pkg/cond"

// QuestStage is one step of a quest. CompleteWhen, if set, lets the
// quest tracker advance the stage automatically once the condition
// holds; stages without it advance only through explicit effects.
type QuestStage struct {
	Description  string     `json:"description"`
	CompleteWhen *cond.When `json:"complete_when,omitempty"`

	// Kill-count stages name the target enemy and how many to defeat.
	Target      string `json:"target,omitempty"`
	TargetCount int    `json:"target_count,omitempty"`
}

// Rewards is granted once when a quest completes.
type Rewards struct {
	Gold            int      `json:"gold,omitempty"`
	XP              int      `json:"xp,omitempty"`
	AttributePoints int      `json:"attribute_points,omitempty"`
	Items           []string `json:"items,omitempty"`
}

// Quest is a quest template. A quest is complete when its stage index
// reaches the final stage.
type Quest struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	GiverNPCID  string       `json:"giver_npc_id,omitempty"`
	Stages      []QuestStage `json:"stages"`
	Rewards     Rewards      `json:"rewards"`
}

// FinalStage returns the index of the last stage.
func (q Quest) FinalStage() int {
	if len(q.Stages) == 0 {
		return 0
	}
	return len(q.Stages) - 1
}
