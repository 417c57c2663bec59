package catalog

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, "starter_room", c.StartLocationID)
	assert.NotEmpty(t, c.Items)
	assert.NotEmpty(t, c.Enemies)
	assert.NotEmpty(t, c.Locations)
	assert.NotEmpty(t, c.NPCs)
	assert.NotEmpty(t, c.Quests)

	// Every exit should be walkable back through the graph.
	for id, loc := range c.Locations {
		for _, exit := range loc.Exits {
			_, ok := c.Locations[exit.LocationID]
			assert.True(t, ok, "location %s exit %s dangles", id, exit.Direction)
		}
	}
}

func TestValidateCatchesDanglingReferences(t *testing.T) {
	c := Default()
	loc := c.Locations["starter_room"]
	loc.ItemIDs = append(loc.ItemIDs, "no_such_item")
	c.Locations["starter_room"] = loc

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_item")
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	_, err := Load(strings.NewReader("{not json"))
	require.Error(t, err)
}

func TestSpawnSpecUnmarshal(t *testing.T) {
	var loc Location
	data := `{
		"id": "x", "name": "X",
		"description": {"base": "test"},
		"exits": [],
		"spawns": ["goblin_scout", {"id": "dire_wolf", "count": 2}]
	}`
	require.NoError(t, json.Unmarshal([]byte(data), &loc))

	require.Len(t, loc.Spawns, 2)
	assert.Equal(t, SpawnSpec{ID: "goblin_scout"}, loc.Spawns[0])
	assert.False(t, loc.Spawns[0].Guaranteed())
	assert.Equal(t, SpawnSpec{ID: "dire_wolf", Count: 2}, loc.Spawns[1])
	assert.True(t, loc.Spawns[1].Guaranteed())
}

func TestEnemyDamageModifier(t *testing.T) {
	c := Default()
	spider := c.Enemies["giant_cave_spider"]

	mod, ok := spider.DamageModifier(PartTorso, AttackThrust)
	require.True(t, ok)
	assert.InDelta(t, 1.5, mod, 0.001)

	_, ok = spider.DamageModifier(PartLeftArm, AttackThrust)
	assert.False(t, ok)

	assert.True(t, spider.IsWeakSpot(PartHead))
	assert.False(t, spider.IsWeakSpot(PartTorso))
	assert.True(t, spider.Boss)
}

func TestDialogueStageSay(t *testing.T) {
	c := Default()
	hermit := c.NPCs["old_hermit"]
	stage := hermit.Dialogue["start"]

	// With nothing started the fallback line is used.
	v := &catalogStubView{}
	assert.Contains(t, stage.Say(v), "Another wanderer")

	// At the orb-placed stage the variant line wins.
	v.quests = map[string][2]int{"find_mystic_orb": {2, 1}}
	assert.Contains(t, stage.Say(v), "Did you place the Orb")
}

func TestVendorBuys(t *testing.T) {
	c := Default()
	borin := c.NPCs["borin_blacksmith"]
	assert.True(t, borin.Buys(ItemWeapon))
	assert.True(t, borin.Buys(ItemShield))
	assert.False(t, borin.Buys(ItemQuestItem))
}

func TestExitTo(t *testing.T) {
	c := Default()
	outpost := c.Locations["goblin_outpost"]

	exit, ok := outpost.ExitTo("north")
	require.True(t, ok)
	assert.True(t, exit.Locked)
	assert.Equal(t, "chieftain_hut_key", exit.KeyID)

	_, ok = outpost.ExitTo("up")
	assert.False(t, ok)
}

// catalogStubView is a minimal cond.View for catalog-level tests.
type catalogStubView struct {
	quests map[string][2]int // stage, active(0/1)
}

func (s *catalogStubView) HasItem(string) bool         { return false }
func (s *catalogStubView) LocationHasItem(string) bool { return false }
func (s *catalogStubView) NPCPresent(string) bool      { return false }
func (s *catalogStubView) PlayerLevel() int            { return 1 }
func (s *catalogStubView) PlayerGold() int             { return 0 }
func (s *catalogStubView) LocationID() string          { return "" }
func (s *catalogStubView) DialogueNPC() string         { return "" }
func (s *catalogStubView) BossDefeated(string) bool    { return false }

func (s *catalogStubView) QuestState(id string) (int, bool, bool) {
	q, ok := s.quests[id]
	if !ok {
		return 0, false, false
	}
	return q[0], q[1] == 1, false
}
