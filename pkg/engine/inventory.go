package engine

import (
	"fmt"
	"strings"

	"github.com/tbranton/whisperwood/pkg/action"
	"github.com/tbranton/whisperwood/pkg/catalog"
	"github.com/tbranton/whisperwood/pkg/state"
)

func (e *Engine) useItem(gs *state.GameState, act action.Action) {
	item, ok := e.resolveItem(act.ItemID, act.ItemName, gs.Player.Inventory)
	if !ok {
		gs.AddMessage("You aren't carrying that.", state.MsgError)
		return
	}

	switch {
	case item.HealAmount > 0:
		e.drinkHealing(gs, item)
	case item.BodyPartHeal != nil:
		e.applySplint(gs, item, act.TargetBodyPart)
	case item.StatBonus != nil:
		e.drinkStatTonic(gs, item)
	default:
		gs.AddMessage(fmt.Sprintf("You can't figure out how to use the %s here.", item.Name), state.MsgError)
	}
}

// drinkHealing spends the potion's pool on body parts first, worst
// grades first in head-to-leg order, then spills what is left onto
// overall health. A potion that would change nothing stays in the pack.
func (e *Engine) drinkHealing(gs *state.GameState, item catalog.Item) {
	p := gs.Player
	if p.Health >= p.MaxHealth && !anyPartHurt(p) {
		gs.AddMessage(fmt.Sprintf("You're unhurt. The %s would be wasted.", item.Name), state.MsgGame)
		return
	}

	pool := item.HealAmount
	for _, grade := range []catalog.Condition{
		catalog.ConditionSeverelyInjured,
		catalog.ConditionInjured,
		catalog.ConditionBruised,
	} {
		for _, part := range catalog.BodyParts {
			if pool == 0 {
				break
			}
			bp, ok := p.BodyParts[part]
			if !ok || bp.Condition != grade || bp.CurrentHP >= bp.MaxHP {
				continue
			}
			amount := bp.MaxHP - bp.CurrentHP
			if amount > pool {
				amount = pool
			}
			if bp.Heal(amount) {
				gs.AddMessage(fmt.Sprintf("Your %s feels better. It is now %s.", part, bp.Condition), state.MsgBodyCondition)
			}
			pool -= amount
		}
	}

	restored := item.HealAmount - pool
	if pool > 0 && p.Health < p.MaxHealth {
		spill := p.MaxHealth - p.Health
		if spill > pool {
			spill = pool
		}
		p.Health += spill
		restored += spill
	}

	p.RemoveItems(item.ID, 1)
	gs.AddMessage(fmt.Sprintf("You drink the %s and recover %d health.", item.Name, restored), state.MsgGame)
}

func anyPartHurt(p *state.Player) bool {
	for _, bp := range p.BodyParts {
		if bp.CurrentHP < bp.MaxHP {
			return true
		}
	}
	return false
}

func (e *Engine) applySplint(gs *state.GameState, item catalog.Item, target catalog.BodyPart) {
	p := gs.Player
	if target == "" {
		target = item.BodyPartHeal.Part
	}
	if target == "" {
		for _, part := range catalog.BodyParts {
			if bp, ok := p.BodyParts[part]; ok && bp.Condition == catalog.ConditionSeverelyInjured {
				target = part
				break
			}
		}
	}
	bp, ok := p.BodyParts[target]
	if !ok || bp.Condition != catalog.ConditionSeverelyInjured {
		gs.AddMessage(fmt.Sprintf("Nothing needs the %s badly enough.", item.Name), state.MsgGame)
		return
	}

	bp.Condition = item.BodyPartHeal.Condition
	// Lift the part just clear of the severe threshold so the new
	// grade holds.
	if floor := bp.MaxHP*3/10 + 1; bp.CurrentHP < floor {
		bp.CurrentHP = floor
	}
	if item.BodyPartHeal.Amount > 0 {
		bp.Heal(item.BodyPartHeal.Amount)
	}
	p.RemoveItems(item.ID, 1)
	gs.AddMessage(fmt.Sprintf("You bind your %s with the %s. It is now %s.", target, item.Name, bp.Condition), state.MsgBodyCondition)
}

func (e *Engine) drinkStatTonic(gs *state.GameState, item catalog.Item) {
	p := gs.Player
	p.Add(item.StatBonus.Attribute, item.StatBonus.Amount)
	if item.StatBonus.Attribute == catalog.AttrConstitution {
		e.recomputeVitals(gs)
	}
	p.RemoveItems(item.ID, 1)
	gs.AddMessage(fmt.Sprintf("You drink the %s. %s permanently increased by %d!", item.Name, item.StatBonus.Attribute, item.StatBonus.Amount), state.MsgGame)
}

func (e *Engine) equipItem(gs *state.GameState, act action.Action) {
	p := gs.Player
	item, ok := e.resolveItem(act.ItemID, act.ItemName, p.Inventory)
	if !ok {
		gs.AddMessage("You aren't carrying that.", state.MsgError)
		return
	}
	if !item.Equippable {
		gs.AddMessage(fmt.Sprintf("You can't equip the %s.", item.Name), state.MsgError)
		return
	}

	slot := item.Slot
	if act.Slot != "" {
		slot = act.Slot
	}

	if previousID, ok := p.Equipped[slot]; ok {
		p.AddItem(previousID)
		if previous, ok := e.catalog.Items[previousID]; ok {
			gs.AddMessage(fmt.Sprintf("You put away the %s.", previous.Name), state.MsgGame)
		}
	}
	p.RemoveItems(item.ID, 1)
	p.Equipped[slot] = item.ID
	gs.AddMessage(fmt.Sprintf("You equip the %s.", item.Name), state.MsgGame)
}

func (e *Engine) unequipItem(gs *state.GameState, act action.Action) {
	p := gs.Player
	for slot, itemID := range p.Equipped {
		item, ok := e.catalog.Items[itemID]
		if !ok {
			continue
		}
		if (act.Slot != "" && slot == act.Slot) ||
			itemID == act.ItemID ||
			strings.EqualFold(item.Name, act.ItemName) {
			delete(p.Equipped, slot)
			p.AddItem(itemID)
			gs.AddMessage(fmt.Sprintf("You unequip the %s.", item.Name), state.MsgGame)
			return
		}
	}
	gs.AddMessage("You don't have that equipped.", state.MsgError)
}

func (e *Engine) buyItem(gs *state.GameState, act action.Action) {
	npc, ok := e.vendorFor(gs, act.NPCID)
	if !ok {
		gs.AddMessage("There's no one here to buy from.", state.MsgError)
		return
	}
	item, ok := e.resolveItem(act.ItemID, act.ItemName, npc.Sells)
	if !ok {
		gs.AddMessage(fmt.Sprintf("%s doesn't sell that.", npc.Name), state.MsgError)
		return
	}
	if gs.Player.Gold < item.Value {
		gs.AddMessage(fmt.Sprintf("You need %d gold for the %s.", item.Value, item.Name), state.MsgError)
		return
	}

	gs.Player.Gold -= item.Value
	gs.Player.AddItem(item.ID)
	gs.AddMessage(fmt.Sprintf("You buy the %s for %d gold.", item.Name, item.Value), state.MsgGame)
}

func (e *Engine) sellItem(gs *state.GameState, act action.Action) {
	npc, ok := e.vendorFor(gs, act.NPCID)
	if !ok {
		gs.AddMessage("There's no one here to sell to.", state.MsgError)
		return
	}
	item, ok := e.resolveItem(act.ItemID, act.ItemName, gs.Player.Inventory)
	if !ok {
		gs.AddMessage("You aren't carrying that.", state.MsgError)
		return
	}
	if !npc.Buys(item.Type) {
		gs.AddMessage(fmt.Sprintf("%s has no use for the %s.", npc.Name, item.Name), state.MsgError)
		return
	}

	// Merchants pay what a thing is worth.
	price := item.Value
	gs.Player.RemoveItems(item.ID, 1)
	gs.Player.Gold += price
	gs.AddMessage(fmt.Sprintf("You sell the %s for %d gold.", item.Name, price), state.MsgGame)
}

// vendorFor resolves the merchant being addressed: an explicit NPC id,
// the current dialogue partner, or the only vendor in the room.
func (e *Engine) vendorFor(gs *state.GameState, npcID string) (catalog.NPC, bool) {
	if npcID == "" {
		npcID = gs.DialogueNPCID
	}
	if npcID != "" {
		npc, ok := e.catalog.NPCs[npcID]
		if ok && npc.Vendor {
			return npc, true
		}
		return catalog.NPC{}, false
	}
	for _, id := range gs.CurrentLocation().NPCIDs {
		if npc, ok := e.catalog.NPCs[id]; ok && npc.Vendor {
			return npc, true
		}
	}
	return catalog.NPC{}, false
}
