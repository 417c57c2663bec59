package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Catalog is the complete content set for one world: every template
// the engine can instantiate, keyed by id.
type Catalog struct {
	Items     map[string]Item     `json:"items"`
	Enemies   map[string]Enemy    `json:"enemies"`
	Locations map[string]Location `json:"locations"`
	NPCs      map[string]NPC      `json:"npcs"`
	Quests    map[string]Quest    `json:"quests"`

	StartLocationID string `json:"start_location_id"`
}

// Load reads a catalog from JSON and validates it.
func Load(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks referential integrity across the catalog. Every id
// referenced by a template must resolve to another template.
func (c *Catalog) Validate() error {
	var errs []string
	addf := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	if c.StartLocationID == "" {
		addf("start_location_id is required")
	} else if _, ok := c.Locations[c.StartLocationID]; !ok {
		addf("start_location_id %q is not a known location", c.StartLocationID)
	}

	checkItem := func(owner, id string) {
		if _, ok := c.Items[id]; !ok {
			addf("%s references unknown item %q", owner, id)
		}
	}
	checkEnemy := func(owner, id string) {
		if _, ok := c.Enemies[id]; !ok {
			addf("%s references unknown enemy %q", owner, id)
		}
	}
	checkQuest := func(owner, id string) {
		if _, ok := c.Quests[id]; !ok {
			addf("%s references unknown quest %q", owner, id)
		}
	}
	checkEffect := func(owner string, e *Effect) {
		if e == nil {
			return
		}
		if e.StartQuest != "" {
			checkQuest(owner, e.StartQuest)
		}
		if e.AdvanceQuest != nil {
			checkQuest(owner, e.AdvanceQuest.QuestID)
		}
		for _, id := range e.StartCombat {
			checkEnemy(owner, id)
		}
		for id := range e.TakeItems {
			checkItem(owner, id)
		}
		for _, id := range e.GiveItems {
			checkItem(owner, id)
		}
	}

	for id, it := range c.Items {
		if it.ID != id {
			addf("item %q has mismatched id %q", id, it.ID)
		}
		if it.Equippable && it.Slot == "" {
			addf("item %q is equippable but has no slot", id)
		}
	}

	for id, e := range c.Enemies {
		if e.ID != id {
			addf("enemy %q has mismatched id %q", id, e.ID)
		}
		if e.MaxHealth <= 0 {
			addf("enemy %q must have positive max health", id)
		}
		for _, drop := range e.Loot {
			checkItem("enemy "+id, drop.ItemID)
		}
	}

	for id, loc := range c.Locations {
		owner := "location " + id
		if loc.ID != id {
			addf("%s has mismatched id %q", owner, loc.ID)
		}
		for _, exit := range loc.Exits {
			if _, ok := c.Locations[exit.LocationID]; !ok {
				addf("%s exit %q leads to unknown location %q", owner, exit.Direction, exit.LocationID)
			}
			if exit.Locked && exit.KeyID != "" {
				checkItem(owner, exit.KeyID)
			}
		}
		for _, itemID := range loc.ItemIDs {
			checkItem(owner, itemID)
		}
		for _, npcID := range loc.NPCIDs {
			if _, ok := c.NPCs[npcID]; !ok {
				addf("%s references unknown npc %q", owner, npcID)
			}
		}
		for _, spawn := range loc.Spawns {
			checkEnemy(owner, spawn.ID)
		}
		for _, hook := range loc.OnEnter {
			checkEffect(owner+" on_enter", &hook.Effect)
		}
	}

	for id, npc := range c.NPCs {
		owner := "npc " + id
		if npc.ID != id {
			addf("%s has mismatched id %q", owner, npc.ID)
		}
		if len(npc.Dialogue) > 0 {
			if _, ok := npc.Dialogue[npc.InitialStage]; !ok {
				addf("%s initial stage %q does not exist", owner, npc.InitialStage)
			}
		}
		for _, itemID := range npc.Sells {
			checkItem(owner, itemID)
		}
		for _, questID := range npc.RelatedQuestIDs {
			checkQuest(owner, questID)
		}
		for stageID, stage := range npc.Dialogue {
			sOwner := fmt.Sprintf("%s stage %q", owner, stageID)
			checkEffect(sOwner, stage.Effect)
			if stage.AutoAdvanceTo != "" {
				if _, ok := npc.Dialogue[stage.AutoAdvanceTo]; !ok {
					addf("%s auto-advances to unknown stage %q", sOwner, stage.AutoAdvanceTo)
				}
			}
			for _, choice := range stage.Choices {
				checkEffect(sOwner, choice.Effect)
				if choice.NextStage != "" {
					if _, ok := npc.Dialogue[choice.NextStage]; !ok {
						addf("%s choice %q leads to unknown stage %q", sOwner, choice.Text, choice.NextStage)
					}
				}
				if choice.NextStage == "" && !choice.ClosesDialogue && choice.Effect == nil {
					addf("%s choice %q has no destination", sOwner, choice.Text)
				}
			}
		}
	}

	for id, q := range c.Quests {
		owner := "quest " + id
		if q.ID != id {
			addf("%s has mismatched id %q", owner, q.ID)
		}
		if len(q.Stages) == 0 {
			addf("%s has no stages", owner)
		}
		if q.GiverNPCID != "" {
			if _, ok := c.NPCs[q.GiverNPCID]; !ok {
				addf("%s giver %q is not a known npc", owner, q.GiverNPCID)
			}
		}
		for i, stage := range q.Stages {
			if stage.Target != "" {
				checkEnemy(fmt.Sprintf("%s stage %d", owner, i), stage.Target)
			}
		}
		for _, itemID := range q.Rewards.Items {
			checkItem(owner+" rewards", itemID)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n%s", strings.Join(errs, "\n"))
	}
	return nil
}
