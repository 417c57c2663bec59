package action

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tbranton/whisperwood/pkg/catalog"
)

// translatedAction is the wire shape the command translator produces:
// an action type plus a free-form params object.
type translatedAction struct {
	ActionType string          `json:"actionType"`
	Params     json.RawMessage `json:"params"`
}

type translatedParams struct {
	Direction      string             `json:"direction"`
	ItemName       string             `json:"itemName"`
	ItemID         string             `json:"itemId"`
	TargetBodyPart catalog.BodyPart   `json:"targetBodyPart"`
	Slot           catalog.EquipSlot  `json:"slot"`
	TargetName     string             `json:"targetName"`
	NPCName        string             `json:"npcName"`
	NPCID          string             `json:"npcId"`
	ChoiceIndex    int                `json:"choiceIndex"`
	AttackType     catalog.AttackType `json:"attackType"`
	TargetEnemyID  string             `json:"targetEnemyId"`
	EnemyCombatID  string             `json:"enemyCombatId"`
	Attribute      catalog.Attribute  `json:"attribute"`
	Points         int                `json:"points"`
	Reason         string             `json:"reason"`
}

// DecodeTranslated parses a translator response into actions. The raw
// text may be wrapped in a markdown code fence; anything that fails to
// parse, and any unrecognized action type, becomes a single
// UNKNOWN_COMMAND so the caller can surface it instead of dropping the
// player's input silently.
func DecodeTranslated(raw string) []Action {
	cleaned := StripCodeFence(raw)

	var translated []translatedAction
	if err := json.Unmarshal([]byte(cleaned), &translated); err != nil {
		// Some models return a single object instead of an array.
		var one translatedAction
		if err2 := json.Unmarshal([]byte(cleaned), &one); err2 != nil || one.ActionType == "" {
			return []Action{{Type: Unknown, Reason: "malformed translator response"}}
		}
		translated = []translatedAction{one}
	}

	actions := make([]Action, 0, len(translated))
	for _, ta := range translated {
		actions = append(actions, ta.toAction())
	}
	if len(actions) == 0 {
		return []Action{{Type: Unknown, Reason: "translator produced no actions"}}
	}
	return actions
}

func (ta translatedAction) toAction() Action {
	var p translatedParams
	if len(ta.Params) > 0 {
		// Params are advisory; a broken params object degrades to the
		// action with zero parameters rather than failing the batch.
		_ = json.Unmarshal(ta.Params, &p)
	}

	switch Type(ta.ActionType) {
	case Move:
		return Action{Type: Move, Direction: p.Direction}
	case TakeItem:
		return Action{Type: TakeItem, ItemName: p.ItemName, ItemID: p.ItemID}
	case DropItem:
		return Action{Type: DropItem, ItemName: p.ItemName, ItemID: p.ItemID}
	case UseItem:
		return Action{Type: UseItem, ItemName: p.ItemName, ItemID: p.ItemID, TargetBodyPart: p.TargetBodyPart}
	case EquipItem:
		return Action{Type: EquipItem, ItemName: p.ItemName, ItemID: p.ItemID, Slot: p.Slot}
	case UnequipItem:
		return Action{Type: UnequipItem, ItemName: p.ItemName, ItemID: p.ItemID, Slot: p.Slot}
	case Examine:
		return Action{Type: Examine, TargetName: p.TargetName}
	case TalkToNPC:
		return Action{Type: TalkToNPC, NPCName: p.NPCName, NPCID: p.NPCID}
	case SelectChoice:
		return Action{Type: SelectChoice, ChoiceIndex: p.ChoiceIndex}
	case EndDialogue:
		return Action{Type: EndDialogue}
	case PlayerAttack:
		at := p.AttackType
		if at == "" {
			at = catalog.AttackSlash
		}
		return Action{Type: PlayerAttack, AttackType: at, TargetEnemyID: p.TargetEnemyID, TargetBodyPart: p.TargetBodyPart}
	case SetTarget:
		return Action{Type: SetTarget, EnemyCombatID: p.EnemyCombatID}
	case Evade:
		return Action{Type: Evade}
	case Defend:
		return Action{Type: Defend}
	case AllocatePoint:
		return Action{Type: AllocatePoint, Attribute: p.Attribute, Points: p.Points}
	case BuyItem:
		return Action{Type: BuyItem, ItemName: p.ItemName, ItemID: p.ItemID, NPCID: p.NPCID}
	case SellItem:
		return Action{Type: SellItem, ItemName: p.ItemName, ItemID: p.ItemID, NPCID: p.NPCID}
	case Unknown:
		return Action{Type: Unknown, Reason: p.Reason}
	default:
		return Action{Type: Unknown, Reason: fmt.Sprintf("unsupported action type %q", ta.ActionType)}
	}
}

// StripCodeFence removes a surrounding markdown code fence, with or
// without a language tag, returning the inner text trimmed.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		// Drop the language tag line if present.
		first := strings.TrimSpace(s[:idx])
		if first == "" || !strings.ContainsAny(first, "{[") {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
