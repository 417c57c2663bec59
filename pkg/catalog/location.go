package catalog

import (
	"encoding/json"

	"github.com/tbranton/whisperwood/pkg/tmpl"
)

// Exit connects a location to another in a named direction. Locked
// exits require the key item; unlocking persists on the runtime
// location state.
type Exit struct {
	Direction   string `json:"direction"`
	LocationID  string `json:"location_id"`
	Locked      bool   `json:"locked,omitempty"`
	KeyID       string `json:"key_id,omitempty"`
	LockMessage string `json:"lock_message,omitempty"`
}

// SpawnSpec declares an enemy presence at a location. Guaranteed
// entries always produce Count instances when the location repopulates;
// ambient entries (Count zero) produce a single instance on a spawn
// roll instead.
//
// It unmarshals from either a bare enemy id string (ambient) or an
// object with id and count (guaranteed).
type SpawnSpec struct {
	ID    string `json:"id"`
	Count int    `json:"count,omitempty"`
}

// Guaranteed reports whether the spawn always occurs.
func (s SpawnSpec) Guaranteed() bool {
	return s.Count > 0
}

func (s *SpawnSpec) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		s.ID = id
		s.Count = 0
		return nil
	}
	type plain SpawnSpec
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = SpawnSpec(p)
	return nil
}

func (s SpawnSpec) MarshalJSON() ([]byte, error) {
	if !s.Guaranteed() {
		return json.Marshal(s.ID)
	}
	type plain SpawnSpec
	return json.Marshal(plain(s))
}

// Location is a location template. ItemIDs, NPCIDs and Spawns are the
// initial contents; runtime state tracks what remains.
type Location struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description tmpl.Text   `json:"description"`
	Exits       []Exit      `json:"exits"`
	ItemIDs     []string    `json:"item_ids,omitempty"`
	NPCIDs      []string    `json:"npc_ids,omitempty"`
	Spawns      []SpawnSpec `json:"spawns,omitempty"`
	Inn         bool        `json:"inn,omitempty"`
	Shop        bool        `json:"shop,omitempty"`
	Dungeon     bool        `json:"dungeon,omitempty"`
	OnEnter     []EnterHook `json:"on_enter,omitempty"`
}

// ExitTo returns the exit matching the given direction, if any.
// Matching is done by the caller after normalizing case.
func (l Location) ExitTo(direction string) (Exit, bool) {
	for _, e := range l.Exits {
		if e.Direction == direction {
			return e, true
		}
	}
	return Exit{}, false
}
