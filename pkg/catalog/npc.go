package catalog

import "github.com/tbranton/whisperwood/pkg/cond"

// DialogueText is one variant of a stage's spoken line. Variants are
// evaluated in order and the first whose condition holds is used; a nil
// condition always matches and usually ends the list as the fallback.
type DialogueText struct {
	When *cond.When `json:"when,omitempty"`
	Text string     `json:"text"`
}

// DialogueChoice is an option the player can pick at a dialogue stage.
// A choice with a condition is hidden while the condition does not hold.
type DialogueChoice struct {
	Text           string     `json:"text"`
	When           *cond.When `json:"when,omitempty"`
	NextStage      string     `json:"next_stage,omitempty"`
	ClosesDialogue bool       `json:"closes_dialogue,omitempty"`
	Effect         *Effect    `json:"effect,omitempty"`
}

// DialogueStage is one node of an NPC's dialogue graph. Entering a
// stage speaks the first matching text variant and applies the stage
// effect. AutoAdvanceTo chains into another stage without player input.
type DialogueStage struct {
	Text          []DialogueText   `json:"text"`
	Effect        *Effect          `json:"effect,omitempty"`
	Choices       []DialogueChoice `json:"choices,omitempty"`
	AutoAdvanceTo string           `json:"auto_advance_to,omitempty"`
	EndsDialogue  bool             `json:"ends_dialogue,omitempty"`
}

// Say picks the stage's spoken line for the current game state.
func (s DialogueStage) Say(v cond.View) string {
	for _, t := range s.Text {
		if t.When == nil || cond.Evaluate(*t.When, v) {
			return t.Text
		}
	}
	return ""
}

// NPC is a character template. Vendors expose buy/sell stock; healers
// get dynamically generated treatment choices on their initial stage.
type NPC struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	InitialStage string `json:"initial_stage"`

	Vendor    bool       `json:"vendor,omitempty"`
	Sells     []string   `json:"sells,omitempty"`
	BuysTypes []ItemType `json:"buys_types,omitempty"`

	Healer    bool `json:"healer,omitempty"`
	TreatCost int  `json:"treat_cost,omitempty"`

	Dialogue map[string]DialogueStage `json:"dialogue"`

	RelatedQuestIDs []string `json:"related_quest_ids,omitempty"`
}

// Buys reports whether the vendor purchases items of the given type.
func (n NPC) Buys(t ItemType) bool {
	for _, bt := range n.BuysTypes {
		if bt == t {
			return true
		}
	}
	return false
}
