package engine

import (
	"fmt"

	"github.com/tbranton/whisperwood/pkg/action"
	"github.com/tbranton/whisperwood/pkg/catalog"
	"github.com/tbranton/whisperwood/pkg/state"
)

// applyEffect interprets a declarative content effect. TakeItems and
// gold charges act as prerequisites: when the player lacks the goods or
// the coin, nothing in the effect runs and applyEffect returns false.
func (e *Engine) applyEffect(gs *state.GameState, eff catalog.Effect) bool {
	for itemID, count := range eff.TakeItems {
		if gs.Player.CountItem(itemID) < count {
			item := e.catalog.Items[itemID]
			gs.AddMessage(fmt.Sprintf("You don't have enough. (%d %s needed)", count, item.Name), state.MsgDialogue)
			return false
		}
	}
	if eff.Gold < 0 && gs.Player.Gold < -eff.Gold {
		gs.AddMessage(fmt.Sprintf("You can't afford that. (%d gold needed)", -eff.Gold), state.MsgError)
		return false
	}
	for itemID, count := range eff.TakeItems {
		gs.Player.RemoveItems(itemID, count)
	}

	if eff.Message != "" {
		gs.AddMessage(eff.Message, state.MsgGame)
	}

	for _, itemID := range eff.GiveItems {
		if item, ok := e.catalog.Items[itemID]; ok {
			gs.Player.AddItem(item.ID)
			gs.AddMessage(fmt.Sprintf("You receive a %s.", item.Name), state.MsgGame)
		}
	}

	if eff.Gold > 0 {
		gs.Player.Gold += eff.Gold
		gs.AddMessage(fmt.Sprintf("You receive %d gold.", eff.Gold), state.MsgGame)
	} else if eff.Gold < 0 {
		gs.Player.Gold += eff.Gold
		gs.AddMessage(fmt.Sprintf("You pay %d gold.", -eff.Gold), state.MsgGame)
	}

	if eff.Rest {
		e.rest(gs)
	}

	if eff.StartQuest != "" {
		gs.Queue(action.Action{Type: action.StartQuest, QuestID: eff.StartQuest})
	}
	if eff.AdvanceQuest != nil {
		stage := eff.AdvanceQuest.Stage
		gs.Queue(action.Action{Type: action.AdvanceQuest, QuestID: eff.AdvanceQuest.QuestID, StageIndex: &stage})
	}
	if len(eff.StartCombat) > 0 {
		gs.Queue(action.Action{Type: action.StartCombat, EnemyIDs: eff.StartCombat})
	}

	return true
}

// rest restores overall health and every body part short of a severe
// injury. Severe injuries need a healer, not a bed.
func (e *Engine) rest(gs *state.GameState) {
	p := gs.Player
	p.Health = p.MaxHealth
	for _, bp := range p.BodyParts {
		if bp.Condition == catalog.ConditionSeverelyInjured {
			continue
		}
		bp.Heal(bp.MaxHP)
	}
	gs.AddMessage("You sleep deeply and wake restored.", state.MsgGame)
}
