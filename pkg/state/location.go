package state

import "github.com/tbranton/whisperwood/pkg/catalog"

// LocationState is the mutable state of one location: which items
// remain on the ground, which enemies still spawn, which NPCs are
// present and which locked exits have been opened.
type LocationState struct {
	ID      string `json:"id"`
	Visited bool   `json:"visited"`

	ItemIDs []string `json:"item_ids,omitempty"`
	NPCIDs  []string `json:"npc_ids,omitempty"`

	// Spawns is the remaining spawn list; defeated guaranteed spawns
	// are removed so they do not come back on re-entry.
	Spawns []catalog.SpawnSpec `json:"spawns,omitempty"`

	// UnlockedExits records exit directions opened with a key.
	UnlockedExits map[string]bool `json:"unlocked_exits,omitempty"`
}

// NewLocationState instantiates a location template's mutable state.
func NewLocationState(tpl catalog.Location) *LocationState {
	ls := &LocationState{
		ID:      tpl.ID,
		ItemIDs: append([]string(nil), tpl.ItemIDs...),
		NPCIDs:  append([]string(nil), tpl.NPCIDs...),
		Spawns:  append([]catalog.SpawnSpec(nil), tpl.Spawns...),
	}
	return ls
}

// HasItem reports whether the item lies at this location.
func (ls *LocationState) HasItem(itemID string) bool {
	for _, id := range ls.ItemIDs {
		if id == itemID {
			return true
		}
	}
	return false
}

// RemoveItem takes one copy of the item off the ground. It returns
// false when the item is not here.
func (ls *LocationState) RemoveItem(itemID string) bool {
	for i, id := range ls.ItemIDs {
		if id == itemID {
			ls.ItemIDs = append(ls.ItemIDs[:i], ls.ItemIDs[i+1:]...)
			return true
		}
	}
	return false
}

// AddItem drops an item at this location.
func (ls *LocationState) AddItem(itemID string) {
	ls.ItemIDs = append(ls.ItemIDs, itemID)
}

// HasNPC reports whether the NPC is present.
func (ls *LocationState) HasNPC(npcID string) bool {
	for _, id := range ls.NPCIDs {
		if id == npcID {
			return true
		}
	}
	return false
}

// Unlock records a locked exit as opened.
func (ls *LocationState) Unlock(direction string) {
	if ls.UnlockedExits == nil {
		ls.UnlockedExits = make(map[string]bool)
	}
	ls.UnlockedExits[direction] = true
}

// Unlocked reports whether a locked exit has been opened.
func (ls *LocationState) Unlocked(direction string) bool {
	return ls.UnlockedExits[direction]
}

// RemoveSpawn depletes one guaranteed spawn entry for the template id
// so cleared lairs stay cleared. Ambient entries re-roll on every visit
// and are never removed.
func (ls *LocationState) RemoveSpawn(templateID string) {
	for i, s := range ls.Spawns {
		if s.ID == templateID && s.Guaranteed() {
			if s.Count > 1 {
				ls.Spawns[i].Count--
				return
			}
			ls.Spawns = append(ls.Spawns[:i], ls.Spawns[i+1:]...)
			return
		}
	}
}
