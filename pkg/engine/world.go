package engine

import (
	"fmt"
	"strings"

	"github.com/tbranton/whisperwood/pkg/action"
	"github.com/tbranton/whisperwood/pkg/catalog"
	"github.com/tbranton/whisperwood/pkg/cond"
	"github.com/tbranton/whisperwood/pkg/state"
)

// ambientSpawnChance is the per-entry chance that a non-guaranteed
// spawn is prowling when the player arrives.
const ambientSpawnChance = 0.45

func (e *Engine) move(gs *state.GameState, act action.Action) {
	if gs.InCombat() {
		gs.AddMessage("You can't leave while enemies block your way!", state.MsgError)
		return
	}
	if gs.InDialogue() {
		e.endDialogue(gs)
	}

	direction := strings.ToLower(strings.TrimSpace(act.Direction))
	loc := e.catalog.Locations[gs.CurrentLocationID]
	exit, ok := loc.ExitTo(direction)
	if !ok {
		gs.AddMessage(fmt.Sprintf("You can't go %s from here.", direction), state.MsgError)
		return
	}

	if exit.Locked && !gs.CurrentLocation().Unlocked(direction) {
		if exit.KeyID != "" && gs.Player.HasItem(exit.KeyID) {
			gs.CurrentLocation().Unlock(direction)
			key := e.catalog.Items[exit.KeyID]
			gs.AddMessage(fmt.Sprintf("You unlock the way %s with the %s.", direction, key.Name), state.MsgGame)
		} else {
			msg := exit.LockMessage
			if msg == "" {
				msg = "The way is locked."
			}
			gs.AddMessage(msg, state.MsgGame)
			return
		}
	}

	gs.CurrentLocationID = exit.LocationID
	e.enterLocation(gs, false)
}

// enterLocation narrates arrival, fires on-enter hooks and rolls for
// an encounter. Quiet suppresses the encounter roll on the opening
// scene so a new game never starts mid-fight.
func (e *Engine) enterLocation(gs *state.GameState, opening bool) {
	loc := e.catalog.Locations[gs.CurrentLocationID]
	ls := gs.CurrentLocation()
	ls.Visited = true

	gs.AddMessage(loc.Name, state.MsgGame)
	if desc := loc.Description.Render(gs); desc != "" {
		gs.AddMessage(desc, state.MsgGame)
	}
	for _, itemID := range ls.ItemIDs {
		if item, ok := e.catalog.Items[itemID]; ok {
			gs.AddMessage(fmt.Sprintf("You spot a %s here.", item.Name), state.MsgGame)
		}
	}
	for _, npcID := range ls.NPCIDs {
		if npc, ok := e.catalog.NPCs[npcID]; ok {
			gs.AddMessage(fmt.Sprintf("%s is here.", npc.Name), state.MsgGame)
		}
	}

	// Enemies a hook throws at the player are out of the spawn roll, or
	// a scripted boss fight would start twice.
	scripted := make(map[string]bool)
	for _, hook := range loc.OnEnter {
		if hook.When == nil || cond.Evaluate(*hook.When, gs) {
			if e.applyEffect(gs, hook.Effect) {
				for _, id := range hook.Effect.StartCombat {
					scripted[id] = true
				}
			}
		}
	}

	if opening {
		return
	}

	var encounter []string
	for _, spawn := range ls.Spawns {
		tpl, ok := e.catalog.Enemies[spawn.ID]
		if !ok {
			continue
		}
		if scripted[tpl.ID] {
			continue
		}
		if tpl.Boss && gs.BossesEngaged[tpl.ID] {
			continue
		}
		if spawn.Guaranteed() {
			for i := 0; i < spawn.Count; i++ {
				encounter = append(encounter, spawn.ID)
			}
		} else if roll(e.dice, ambientSpawnChance) {
			encounter = append(encounter, spawn.ID)
		}
	}
	if len(encounter) > 0 {
		gs.Queue(action.Action{Type: action.StartCombat, EnemyIDs: encounter})
	}
}

func (e *Engine) takeItem(gs *state.GameState, act action.Action) {
	ls := gs.CurrentLocation()
	item, ok := e.resolveItem(act.ItemID, act.ItemName, ls.ItemIDs)
	if !ok {
		gs.AddMessage("There's nothing like that here.", state.MsgError)
		return
	}
	ls.RemoveItem(item.ID)
	gs.Player.AddItem(item.ID)
	gs.AddMessage(fmt.Sprintf("You pick up the %s.", item.Name), state.MsgGame)
}

func (e *Engine) dropItem(gs *state.GameState, act action.Action) {
	item, ok := e.resolveItem(act.ItemID, act.ItemName, gs.Player.Inventory)
	if !ok {
		gs.AddMessage("You aren't carrying that.", state.MsgError)
		return
	}
	gs.Player.RemoveItems(item.ID, 1)
	gs.CurrentLocation().AddItem(item.ID)
	gs.AddMessage(fmt.Sprintf("You drop the %s.", item.Name), state.MsgGame)
}

func (e *Engine) examine(gs *state.GameState, act action.Action) {
	name := act.TargetName
	if name == "" {
		name = act.ItemName
	}

	ls := gs.CurrentLocation()
	if item, ok := e.resolveItem(act.ItemID, name, gs.Player.Inventory); ok {
		gs.AddMessage(item.Description, state.MsgGame)
		return
	}
	if item, ok := e.resolveItem(act.ItemID, name, ls.ItemIDs); ok {
		gs.AddMessage(item.Description, state.MsgGame)
		return
	}
	for _, npcID := range ls.NPCIDs {
		npc, ok := e.catalog.NPCs[npcID]
		if ok && (strings.EqualFold(npc.Name, name) || npcID == name) {
			gs.AddMessage(npc.Description, state.MsgGame)
			return
		}
	}
	gs.AddMessage("You see nothing special.", state.MsgGame)
}

// resolveItem finds an item in a pool of item ids, matching by id
// first and then by case-insensitive name.
func (e *Engine) resolveItem(itemID, itemName string, pool []string) (catalog.Item, bool) {
	if itemID != "" {
		for _, id := range pool {
			if id == itemID {
				return e.catalog.Items[id], true
			}
		}
	}
	if itemName != "" {
		for _, id := range pool {
			item, ok := e.catalog.Items[id]
			if ok && strings.EqualFold(item.Name, itemName) {
				return item, true
			}
		}
		// Allow ids in the name field; translated commands are loose
		// about which they fill.
		for _, id := range pool {
			if strings.EqualFold(id, itemName) {
				return e.catalog.Items[id], true
			}
		}
	}
	return catalog.Item{}, false
}
