// Package action defines the engine's action vocabulary. Every state
// change flows through an Action, whether it originates from the
// player, the command translator, or engine follow-ups.
package action

import "github.com/tbranton/whisperwood/pkg/catalog"

// Type identifies an action.
type Type string

const (
	Move          Type = "MOVE"
	TakeItem      Type = "TAKE_ITEM"
	DropItem      Type = "DROP_ITEM"
	UseItem       Type = "USE_ITEM"
	EquipItem     Type = "EQUIP_ITEM"
	UnequipItem   Type = "UNEQUIP_ITEM"
	Examine       Type = "EXAMINE"
	TalkToNPC     Type = "TALK_TO_NPC"
	SelectChoice  Type = "SELECT_DIALOGUE_CHOICE"
	EndDialogue   Type = "END_DIALOGUE"
	StartCombat   Type = "START_COMBAT"
	PlayerAttack  Type = "PLAYER_ATTACK"
	EnemyAttack   Type = "ENEMY_ATTACK"
	SetTarget     Type = "SET_COMBAT_TARGET"
	Evade         Type = "EVADE_ACTION"
	Defend        Type = "DEFEND_ACTION"
	StartQuest    Type = "START_QUEST"
	AdvanceQuest  Type = "ADVANCE_QUEST"
	LevelUp       Type = "LEVEL_UP"
	AllocatePoint Type = "ALLOCATE_ATTRIBUTE_POINT"
	BuyItem       Type = "BUY_ITEM"
	SellItem      Type = "SELL_ITEM"
	TreatInjury   Type = "TREAT_INJURY"
	AddMessage    Type = "ADD_MESSAGE"
	AckGameOver   Type = "GAME_OVER_ACKNOWLEDGED"
	NewGame       Type = "NEW_GAME"
	Unknown       Type = "UNKNOWN_COMMAND"
)

// Action is one unit of work for the dispatcher. Fields form a union;
// each type reads only the parameters it documents and ignores the rest.
type Action struct {
	Type Type `json:"type"`

	Direction string `json:"direction,omitempty"` // MOVE

	ItemName string `json:"item_name,omitempty"` // TAKE_ITEM, USE_ITEM, EQUIP_ITEM, BUY_ITEM, SELL_ITEM
	ItemID   string `json:"item_id,omitempty"`   // preferred over ItemName when known

	TargetBodyPart catalog.BodyPart  `json:"target_body_part,omitempty"` // USE_ITEM, PLAYER_ATTACK, TREAT_INJURY
	Slot           catalog.EquipSlot `json:"slot,omitempty"`             // EQUIP_ITEM, UNEQUIP_ITEM

	TargetName string `json:"target_name,omitempty"` // EXAMINE

	NPCName string `json:"npc_name,omitempty"` // TALK_TO_NPC
	NPCID   string `json:"npc_id,omitempty"`   // TALK_TO_NPC, BUY_ITEM, SELL_ITEM, TREAT_INJURY

	ChoiceIndex int `json:"choice_index,omitempty"` // SELECT_DIALOGUE_CHOICE

	EnemyIDs      []string           `json:"enemy_ids,omitempty"`       // START_COMBAT (template ids)
	AttackType    catalog.AttackType `json:"attack_type,omitempty"`     // PLAYER_ATTACK
	TargetEnemyID string             `json:"target_enemy_id,omitempty"` // PLAYER_ATTACK (combat id)
	EnemyCombatID string             `json:"enemy_combat_id,omitempty"` // ENEMY_ATTACK, SET_COMBAT_TARGET

	QuestID    string `json:"quest_id,omitempty"`    // START_QUEST, ADVANCE_QUEST
	StageIndex *int   `json:"stage_index,omitempty"` // ADVANCE_QUEST, nil means next stage

	Attribute catalog.Attribute `json:"attribute,omitempty"` // ALLOCATE_ATTRIBUTE_POINT
	Points    int               `json:"points,omitempty"`    // ALLOCATE_ATTRIBUTE_POINT

	Message string `json:"message,omitempty"` // ADD_MESSAGE
	Reason  string `json:"reason,omitempty"`  // UNKNOWN_COMMAND

	Cost int `json:"cost,omitempty"` // TREAT_INJURY
}

// MsgAction builds an ADD_MESSAGE action.
func MsgAction(message string) Action {
	return Action{Type: AddMessage, Message: message}
}
