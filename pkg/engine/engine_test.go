package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbranton/whisperwood/pkg/action"
	"github.com/tbranton/whisperwood/pkg/catalog"
	"github.com/tbranton/whisperwood/pkg/state"
)

// scriptDice returns queued values, falling back to 0.5 and 0. The
// 0.5 fallback keeps damage variance at exactly 1.0 and fails every
// chance roll below 50%, so combat math stays predictable.
type scriptDice struct {
	floats []float64
	ints   []int
}

func (d *scriptDice) Float64() float64 {
	if len(d.floats) > 0 {
		v := d.floats[0]
		d.floats = d.floats[1:]
		return v
	}
	return 0.5
}

func (d *scriptDice) IntN(n int) int {
	if len(d.ints) > 0 {
		v := d.ints[0]
		d.ints = d.ints[1:]
		if v < n {
			return v
		}
	}
	return 0
}

func newTestEngine(t *testing.T) (*Engine, *state.GameState) {
	t.Helper()
	eng := New(catalog.Default(), WithDice(&scriptDice{}))
	gs := eng.NewGame("Wren")
	return eng, gs
}

func hasMessage(gs *state.GameState, substr string) bool {
	for _, m := range gs.Messages {
		if strings.Contains(m.Text, substr) {
			return true
		}
	}
	return false
}

func TestNewGameOpening(t *testing.T) {
	_, gs := newTestEngine(t)

	assert.Equal(t, "starter_room", gs.CurrentLocationID)
	assert.False(t, gs.InCombat())
	assert.True(t, gs.CurrentLocation().Visited)
	assert.True(t, hasMessage(gs, "Old Shack"))
	assert.True(t, hasMessage(gs, "Rusty Sword"), "ground items are pointed out on arrival")
}

func TestMoveRejectsUnknownDirection(t *testing.T) {
	eng, gs := newTestEngine(t)

	eng.Dispatch(gs, action.Action{Type: action.Move, Direction: "up"})
	assert.Equal(t, "starter_room", gs.CurrentLocationID)
	assert.True(t, hasMessage(gs, "can't go up"))
}

func TestTakeAndEquip(t *testing.T) {
	eng, gs := newTestEngine(t)

	eng.Dispatch(gs,
		action.Action{Type: action.TakeItem, ItemName: "Rusty Sword"},
		action.Action{Type: action.EquipItem, ItemName: "Rusty Sword"},
	)

	assert.Equal(t, "rusty_sword", gs.Player.Equipped[catalog.SlotMainHand])
	assert.False(t, gs.Player.HasItem("rusty_sword"), "equipped items leave the inventory")
	assert.False(t, gs.CurrentLocation().HasItem("rusty_sword"))
	assert.Equal(t, 17, gs.Player.EffectiveAttack(eng.Catalog()))
}

func TestCombatRound(t *testing.T) {
	eng, gs := newTestEngine(t)

	eng.Dispatch(gs, action.Action{Type: action.StartCombat, EnemyIDs: []string{"goblin_scout"}})
	require.True(t, gs.InCombat())
	assert.Equal(t, "goblin_scout_0", gs.Combat.FocusID)

	eng.Dispatch(gs, action.Action{
		Type:           action.PlayerAttack,
		AttackType:     catalog.AttackSlash,
		TargetBodyPart: catalog.PartTorso,
	})

	// Attack 14 against defense 9 with neutral variance.
	enemy, ok := gs.Combat.Enemy("goblin_scout_0")
	require.True(t, ok)
	assert.Equal(t, 25, enemy.Health)

	// The scout answers with 14 against defense 8, aimed at the head.
	assert.Equal(t, 119, gs.Player.Health)
	assert.Equal(t, 26, gs.Player.BodyParts[catalog.PartHead].CurrentHP)
	assert.Equal(t, 2, gs.Combat.Round)
}

func TestPowerAttackCooldown(t *testing.T) {
	eng, gs := newTestEngine(t)

	eng.Dispatch(gs, action.Action{Type: action.StartCombat, EnemyIDs: []string{"goblin_scout"}})
	eng.Dispatch(gs, action.Action{
		Type:           action.PlayerAttack,
		AttackType:     catalog.AttackPower,
		TargetBodyPart: catalog.PartTorso,
	})

	// Raw 5, power 1.75x, torso power modifier 1.2x, floored. The
	// cooldown starts at 3 and ticks once as the turn ends.
	enemy, _ := gs.Combat.Enemy("goblin_scout_0")
	assert.Equal(t, 20, enemy.Health)
	assert.Equal(t, state.PowerAttackCooldown-1, gs.Player.PowerCooldown)

	eng.Dispatch(gs, action.Action{
		Type:           action.PlayerAttack,
		AttackType:     catalog.AttackPower,
		TargetBodyPart: catalog.PartTorso,
	})
	assert.Equal(t, 15, enemy.Health, "a power attack on cooldown lands as a slash")
	assert.True(t, hasMessage(gs, "settle for a slash"))
	assert.Equal(t, state.PowerAttackCooldown-2, gs.Player.PowerCooldown)
}

func TestVictoryRewards(t *testing.T) {
	eng, gs := newTestEngine(t)

	eng.Dispatch(gs, action.Action{Type: action.StartCombat, EnemyIDs: []string{"goblin_scout"}})
	enemy, _ := gs.Combat.Enemy("goblin_scout_0")
	enemy.Health = 3

	eng.Dispatch(gs, action.Action{
		Type:           action.PlayerAttack,
		AttackType:     catalog.AttackSlash,
		TargetBodyPart: catalog.PartTorso,
	})

	assert.False(t, gs.InCombat())
	assert.Equal(t, 20, gs.Player.XP)
	assert.Equal(t, state.InitialGold+1, gs.Player.Gold)
	assert.True(t, gs.Player.HasItem("goblin_ear"), "80% drop lands on a 0.5 roll")
	assert.True(t, hasMessage(gs, "collapses"))
}

func TestHeadshotIsFatal(t *testing.T) {
	eng, gs := newTestEngine(t)

	eng.Dispatch(gs, action.Action{Type: action.StartCombat, EnemyIDs: []string{"goblin_scout"}})
	enemy, _ := gs.Combat.Enemy("goblin_scout_0")
	enemy.BodyParts[catalog.PartHead].CurrentHP = 2

	eng.Dispatch(gs, action.Action{
		Type:           action.PlayerAttack,
		AttackType:     catalog.AttackThrust,
		TargetBodyPart: catalog.PartHead,
	})

	assert.False(t, gs.InCombat())
	assert.True(t, hasMessage(gs, "fatal"))
}

func TestPlayerDefeatEndsGame(t *testing.T) {
	eng, gs := newTestEngine(t)

	eng.Dispatch(gs, action.Action{Type: action.StartCombat, EnemyIDs: []string{"goblin_scout"}})
	gs.Player.Health = 3

	eng.Dispatch(gs, action.Action{Type: action.Evade})

	assert.True(t, gs.GameOver)
	assert.False(t, gs.InCombat())

	timeBefore := gs.GameTime
	eng.Dispatch(gs, action.Action{Type: action.Move, Direction: "east"})
	assert.Equal(t, timeBefore, gs.GameTime, "actions after game over are refused")
	assert.True(t, hasMessage(gs, "new game"))
}

func TestDefendBehindShield(t *testing.T) {
	eng, gs := newTestEngine(t)
	gs.Player.AddItem("wooden_buckler")
	eng.Dispatch(gs, action.Action{Type: action.EquipItem, ItemName: "Wooden Buckler"})

	eng.Dispatch(gs, action.Action{Type: action.StartCombat, EnemyIDs: []string{"goblin_scout"}})
	eng.Dispatch(gs, action.Action{Type: action.Defend})

	// Raw 4 against defense 10, halved to 2, minus the buckler's 2.
	assert.Equal(t, 125, gs.Player.Health, "the shield absorbs the whole blow")
	assert.True(t, hasMessage(gs, "turns the"))
	assert.False(t, gs.Player.Defending, "the stance is spent with the attack")
}

func TestDefendRequiresShield(t *testing.T) {
	eng, gs := newTestEngine(t)

	eng.Dispatch(gs, action.Action{Type: action.StartCombat, EnemyIDs: []string{"goblin_scout"}})
	eng.Dispatch(gs, action.Action{Type: action.Defend})

	assert.True(t, hasMessage(gs, "no shield"))
	assert.False(t, gs.Player.Defending)
	assert.Equal(t, 125, gs.Player.Health, "a refused defend doesn't hand the enemy a turn")
}

func TestBossEngagedOnlyOnce(t *testing.T) {
	eng, gs := newTestEngine(t)

	eng.Dispatch(gs, action.Action{Type: action.StartCombat, EnemyIDs: []string{"giant_cave_spider"}})
	require.True(t, gs.InCombat())
	assert.True(t, gs.BossesEngaged["giant_cave_spider"])

	gs.Combat = nil
	eng.Dispatch(gs, action.Action{Type: action.StartCombat, EnemyIDs: []string{"giant_cave_spider"}})
	assert.False(t, gs.InCombat(), "an engaged boss never respawns")
}

func TestHermitDialogueStartsQuest(t *testing.T) {
	eng, gs := newTestEngine(t)
	gs.CurrentLocationID = "village_outskirts"

	eng.Dispatch(gs, action.Action{Type: action.TalkToNPC, NPCName: "Old Hermit"})
	require.True(t, gs.InDialogue())
	assert.True(t, hasMessage(gs, "Another wanderer"))

	// 0: ask about the woods, 1: ask if he needs help, 2: leave.
	eng.Dispatch(gs, action.Action{Type: action.SelectChoice, ChoiceIndex: 1})
	eng.Dispatch(gs, action.Action{Type: action.SelectChoice, ChoiceIndex: 0})

	progress, active := gs.QuestActive("find_mystic_orb")
	require.True(t, active)
	assert.Equal(t, 0, progress.Stage)
	assert.False(t, gs.InDialogue(), "quest details stage ends the conversation")
}

func TestOrbQuestProgression(t *testing.T) {
	eng, gs := newTestEngine(t)

	eng.Dispatch(gs, action.Action{Type: action.StartQuest, QuestID: "find_mystic_orb"})
	gs.Player.AddItem("mystic_orb")
	eng.Dispatch(gs, action.MsgAction("you pocket the orb"))

	progress, _ := gs.QuestActive("find_mystic_orb")
	require.Equal(t, 1, progress.Stage, "picking up the orb advances the quest")

	gs.CurrentLocationID = "deep_woods"
	gs.Locations["deep_woods"].Spawns = nil
	eng.Dispatch(gs, action.Action{Type: action.Move, Direction: "east"})

	assert.Equal(t, "mossy_clearing", gs.CurrentLocationID)
	progress, _ = gs.QuestActive("find_mystic_orb")
	assert.Equal(t, 2, progress.Stage)
	assert.False(t, gs.Player.HasItem("mystic_orb"), "the orb stays on the pedestal")
}

func TestLockedExitNeedsKey(t *testing.T) {
	eng, gs := newTestEngine(t)
	gs.CurrentLocationID = "goblin_outpost"

	eng.Dispatch(gs, action.Action{Type: action.Move, Direction: "north"})
	assert.Equal(t, "goblin_outpost", gs.CurrentLocationID)
	assert.True(t, hasMessage(gs, "heavy goblin lock"))

	gs.Player.AddItem("chieftain_hut_key")
	eng.Dispatch(gs, action.Action{Type: action.Move, Direction: "north"})

	assert.Equal(t, "goblin_chieftain_hut", gs.CurrentLocationID)
	assert.True(t, gs.Locations["goblin_outpost"].Unlocked("north"))
	require.True(t, gs.InCombat(), "the chieftain's guard is always home")
	assert.Equal(t, "hobgoblin_bruiser_0", gs.Combat.FocusID)
}

func TestLevelUpCurve(t *testing.T) {
	eng, gs := newTestEngine(t)
	gs.Player.XP = 120

	eng.Dispatch(gs, action.Action{Type: action.LevelUp})

	p := gs.Player
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 20, p.XP)
	assert.Equal(t, 160, p.XPToNextLevel)
	assert.Equal(t, state.AttributePointsPerLevel, p.AttributePoints)
	assert.Equal(t, 130, p.MaxHealth)
	assert.Equal(t, 130, p.Health, "growth heals the gained health")
}

func TestAllocateConstitutionGrowsHealth(t *testing.T) {
	eng, gs := newTestEngine(t)
	gs.Player.AttributePoints = 2

	eng.Dispatch(gs, action.Action{Type: action.AllocatePoint, Attribute: catalog.AttrConstitution, Points: 1})

	assert.Equal(t, 8, gs.Player.Constitution)
	assert.Equal(t, 1, gs.Player.AttributePoints)
	assert.Equal(t, 135, gs.Player.MaxHealth)
}

func TestHealerTreatment(t *testing.T) {
	eng, gs := newTestEngine(t)
	gs.CurrentLocationID = "willow_creek_library"
	arm := gs.Player.BodyParts[catalog.PartLeftArm]
	arm.Damage(1000)
	require.Equal(t, catalog.ConditionSeverelyInjured, arm.Condition)

	eng.Dispatch(gs, action.Action{
		Type:           action.TreatInjury,
		NPCID:          "village_healer_lyra",
		TargetBodyPart: catalog.PartLeftArm,
	})

	assert.Equal(t, state.InitialGold-25, gs.Player.Gold)
	assert.Equal(t, catalog.ConditionInjured, arm.Condition)
	assert.Equal(t, 7, arm.CurrentHP)
}

func TestHealthPotion(t *testing.T) {
	eng, gs := newTestEngine(t)
	gs.Player.Health = 60
	gs.Player.AddItem("health_potion")

	eng.Dispatch(gs, action.Action{Type: action.UseItem, ItemName: "Health Potion"})

	assert.Equal(t, 85, gs.Player.Health)
	assert.False(t, gs.Player.HasItem("health_potion"))
}

func TestHealthPotionNotWastedAtFullHealth(t *testing.T) {
	eng, gs := newTestEngine(t)
	gs.Player.AddItem("health_potion")

	eng.Dispatch(gs, action.Action{Type: action.UseItem, ItemName: "Health Potion"})

	assert.True(t, gs.Player.HasItem("health_potion"), "unneeded potions are kept")
	assert.True(t, hasMessage(gs, "wasted"))
}

func TestVendorBuyAndSell(t *testing.T) {
	eng, gs := newTestEngine(t)
	gs.CurrentLocationID = "blacksmith_shop"

	eng.Dispatch(gs, action.Action{Type: action.BuyItem, ItemName: "Iron Sword"})
	assert.True(t, gs.Player.HasItem("iron_sword"))
	assert.Equal(t, state.InitialGold-60, gs.Player.Gold)

	eng.Dispatch(gs, action.Action{Type: action.SellItem, ItemName: "Iron Sword"})
	assert.False(t, gs.Player.HasItem("iron_sword"))
	assert.Equal(t, state.InitialGold, gs.Player.Gold, "vendors pay full value")
}

func TestInnRest(t *testing.T) {
	eng, gs := newTestEngine(t)
	gs.CurrentLocationID = "sleeping_dragon_inn"
	gs.Player.Health = 40
	gs.Player.BodyParts[catalog.PartTorso].Damage(20)
	gs.Player.BodyParts[catalog.PartLeftLeg].Damage(1000)

	eng.Dispatch(gs, action.Action{Type: action.TalkToNPC, NPCName: "Barley Buttercup"})
	require.True(t, gs.InDialogue())

	// 0: rent a room.
	eng.Dispatch(gs, action.Action{Type: action.SelectChoice, ChoiceIndex: 0})
	eng.Dispatch(gs, action.Action{Type: action.SelectChoice, ChoiceIndex: 0})

	assert.Equal(t, state.InitialGold-10, gs.Player.Gold)
	assert.Equal(t, gs.Player.MaxHealth, gs.Player.Health)
	assert.Equal(t, catalog.ConditionHealthy, gs.Player.BodyParts[catalog.PartTorso].Condition)
	assert.Equal(t, catalog.ConditionSeverelyInjured, gs.Player.BodyParts[catalog.PartLeftLeg].Condition,
		"a night's rest can't mend a severe injury")
}

func TestGameTimeAdvances(t *testing.T) {
	eng, gs := newTestEngine(t)
	before := gs.GameTime

	eng.Dispatch(gs, action.MsgAction("one"), action.MsgAction("two"))
	assert.Equal(t, before+2, gs.GameTime)
}

func TestWaitingEnemiesHoldBack(t *testing.T) {
	eng, gs := newTestEngine(t)

	eng.Dispatch(gs, action.Action{Type: action.StartCombat, EnemyIDs: []string{"goblin_scout", "goblin_scout"}})
	require.Len(t, gs.Combat.Enemies, 2)

	eng.Dispatch(gs, action.Action{Type: action.Evade})

	assert.Equal(t, 119, gs.Player.Health, "only the front enemy answers the turn")
}

func TestNextEnemyStepsUp(t *testing.T) {
	eng, gs := newTestEngine(t)

	eng.Dispatch(gs, action.Action{Type: action.StartCombat, EnemyIDs: []string{"goblin_scout", "goblin_scout"}})
	first, _ := gs.Combat.Enemy("goblin_scout_0")
	first.Health = 3

	eng.Dispatch(gs, action.Action{
		Type:           action.PlayerAttack,
		AttackType:     catalog.AttackSlash,
		TargetBodyPart: catalog.PartTorso,
	})

	require.True(t, gs.InCombat())
	active, ok := gs.Combat.Active()
	require.True(t, ok)
	assert.Equal(t, "goblin_scout_1", active.CombatID)
	assert.True(t, hasMessage(gs, "steps up to fight"))
	assert.Equal(t, 119, gs.Player.Health, "the newcomer gets the answering blow")
}

func TestStanceSpentOnEnemyAttack(t *testing.T) {
	eng, gs := newTestEngine(t)

	eng.Dispatch(gs, action.Action{Type: action.StartCombat, EnemyIDs: []string{"goblin_scout"}})
	eng.Dispatch(gs, action.Action{Type: action.Evade})

	assert.False(t, gs.Player.Evading, "the stance is spent once the attack resolves")
	assert.Equal(t, 119, gs.Player.Health, "a failed dodge takes the full hit")
}

func TestEvadeWinsOpposedRoll(t *testing.T) {
	eng := New(catalog.Default(), WithDice(&scriptDice{ints: []int{19, 0}}))
	gs := eng.NewGame("Wren")

	eng.Dispatch(gs, action.Action{Type: action.StartCombat, EnemyIDs: []string{"goblin_scout"}})
	eng.Dispatch(gs, action.Action{Type: action.Evade})

	// Agility 5 + 20 clears dexterity 8 + 1.
	assert.True(t, hasMessage(gs, "You dodge"))
	assert.Equal(t, 125, gs.Player.Health)
	assert.False(t, gs.Player.Evading)
}

func TestEvadeTieGoesToAttacker(t *testing.T) {
	eng := New(catalog.Default(), WithDice(&scriptDice{ints: []int{13, 10}}))
	gs := eng.NewGame("Wren")

	eng.Dispatch(gs, action.Action{Type: action.StartCombat, EnemyIDs: []string{"goblin_scout"}})
	eng.Dispatch(gs, action.Action{Type: action.Evade})

	// Agility 5 + 14 against dexterity 8 + 11: even rolls land the hit.
	assert.False(t, hasMessage(gs, "You dodge"))
	assert.Equal(t, 119, gs.Player.Health)
}

func TestEnemyWoundNarrated(t *testing.T) {
	eng, gs := newTestEngine(t)

	eng.Dispatch(gs, action.Action{Type: action.StartCombat, EnemyIDs: []string{"goblin_scout"}})
	eng.Dispatch(gs, action.Action{
		Type:           action.PlayerAttack,
		AttackType:     catalog.AttackSlash,
		TargetBodyPart: catalog.PartTorso,
	})

	assert.True(t, hasMessage(gs, "torso is Bruised"))
}

func TestLevelUpCascades(t *testing.T) {
	eng, gs := newTestEngine(t)
	gs.Player.XP = 280

	eng.Dispatch(gs, action.Action{Type: action.LevelUp})

	p := gs.Player
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 20, p.XP)
	assert.Equal(t, 256, p.XPToNextLevel)
	assert.Equal(t, 2*state.AttributePointsPerLevel, p.AttributePoints)

	climbs := 0
	for _, m := range gs.Messages {
		if strings.Contains(m.Text, "You reach level") {
			climbs++
		}
	}
	assert.Equal(t, 2, climbs, "crossing two thresholds narrates two climbs")
}

func TestLevelUpRestoresBody(t *testing.T) {
	eng, gs := newTestEngine(t)
	gs.Player.XP = 120
	gs.Player.Health = 30
	gs.Player.BodyParts[catalog.PartLeftArm].Damage(1000)

	eng.Dispatch(gs, action.Action{Type: action.LevelUp})

	p := gs.Player
	assert.Equal(t, p.MaxHealth, p.Health)
	for part, bp := range p.BodyParts {
		assert.Equal(t, catalog.ConditionHealthy, bp.Condition, "part %s", part)
		assert.Equal(t, bp.MaxHP, bp.CurrentHP, "part %s", part)
	}
}

func TestPotionHealsWorstPartsFirst(t *testing.T) {
	eng, gs := newTestEngine(t)
	p := gs.Player
	arm := p.BodyParts[catalog.PartLeftArm]
	torso := p.BodyParts[catalog.PartTorso]
	arm.Damage(10)
	torso.Damage(5)
	p.Health = 100
	require.Equal(t, catalog.ConditionInjured, arm.Condition)
	require.Equal(t, catalog.ConditionBruised, torso.Condition)

	p.AddItem("health_potion")
	eng.Dispatch(gs, action.Action{Type: action.UseItem, ItemName: "Health Potion"})

	assert.Equal(t, arm.MaxHP, arm.CurrentHP, "the worst part heals first")
	assert.Equal(t, torso.MaxHP, torso.CurrentHP)
	assert.Equal(t, 110, p.Health, "what's left of the pool spills into overall health")
	assert.False(t, p.HasItem("health_potion"))
}

func TestDialogueClosesWhenNothingToSay(t *testing.T) {
	eng, gs := newTestEngine(t)
	npc := catalog.NPC{
		ID: "stray_cat", Name: "Stray Cat",
		Dialogue: map[string]catalog.DialogueStage{
			"stare": {Text: []catalog.DialogueText{{Text: "The cat stares back."}}},
		},
	}

	gs.DialogueNPCID = npc.ID
	eng.enterStage(gs, npc, "stare", 0)

	assert.False(t, gs.InDialogue(), "a stage with no choices ends the conversation")
}

func TestDialogueEffectAtomicWhenGoldShort(t *testing.T) {
	eng, gs := newTestEngine(t)
	gs.Player.AddItem("goblin_ear")
	gs.Player.Gold = 3

	ok := eng.applyEffect(gs, catalog.Effect{
		TakeItems: map[string]int{"goblin_ear": 1},
		Gold:      -10,
	})

	assert.False(t, ok)
	assert.True(t, gs.Player.HasItem("goblin_ear"), "nothing is taken when the charge fails")
	assert.Equal(t, 3, gs.Player.Gold)
}

func TestAmbientSpawnsSurviveKills(t *testing.T) {
	eng, gs := newTestEngine(t)
	gs.CurrentLocationID = "forest_west_edge"

	eng.Dispatch(gs, action.Action{Type: action.StartCombat, EnemyIDs: []string{"goblin_scout"}})
	enemy, _ := gs.Combat.Enemy("goblin_scout_0")
	enemy.Health = 3
	eng.Dispatch(gs, action.Action{
		Type:           action.PlayerAttack,
		AttackType:     catalog.AttackSlash,
		TargetBodyPart: catalog.PartTorso,
	})

	require.False(t, gs.InCombat())
	assert.Len(t, gs.Locations["forest_west_edge"].Spawns, 2, "ambient entries keep re-rolling on later visits")
}

func TestLairFightStartsOnce(t *testing.T) {
	eng, gs := newTestEngine(t)
	gs.CurrentLocationID = "dark_cave_entrance"

	eng.Dispatch(gs, action.Action{Type: action.Move, Direction: "north"})

	require.True(t, gs.InCombat())
	assert.Len(t, gs.Combat.Enemies, 1, "the lair's spawn entry is the same fight, not a second one")
	assert.Equal(t, "giant_cave_spider_0", gs.Combat.FocusID)
	assert.False(t, hasMessage(gs, "already fighting"))
}

func TestArrivalNarratesResidents(t *testing.T) {
	eng, gs := newTestEngine(t)

	eng.Dispatch(gs, action.Action{Type: action.Move, Direction: "east"})
	assert.Equal(t, "village_outskirts", gs.CurrentLocationID)
	assert.True(t, hasMessage(gs, "Old Hermit is here"))

	eng.Dispatch(gs, action.Action{Type: action.Move, Direction: "west"})
	spotted := 0
	for _, m := range gs.Messages {
		if strings.Contains(m.Text, "You spot a Rusty Sword here") {
			spotted++
		}
	}
	assert.Equal(t, 2, spotted, "ground items are pointed out on every arrival")
}

func TestDamageStaysInBounds(t *testing.T) {
	eng := New(catalog.Default(), WithDice(NewDice(7)))
	cases := []struct {
		attack, defense int
		power           bool
		modifier        float64
	}{
		{22, 0, false, 1.0},
		{14, 9, true, 1.2},
		{5, 40, false, 1.5},
		{1, 0, true, 1.0},
	}
	for _, tc := range cases {
		for i := 0; i < 200; i++ {
			dmg := eng.rollDamage(tc.attack, tc.defense, tc.power, tc.modifier)
			require.GreaterOrEqual(t, dmg, 1)
			require.LessOrEqual(t, float64(dmg), float64(tc.attack)*powerAttackMultiplier*tc.modifier*1.1)
		}
	}
}

func TestConditionsTrackDamageRatio(t *testing.T) {
	eng, gs := newTestEngine(t)

	check := func(after string) {
		t.Helper()
		for part, bp := range gs.Player.BodyParts {
			assert.Equal(t, state.ConditionFor(bp.CurrentHP, bp.MaxHP), bp.Condition, "%s after %s", part, after)
		}
	}

	eng.Dispatch(gs, action.Action{Type: action.StartCombat, EnemyIDs: []string{"goblin_scout"}})
	eng.Dispatch(gs, action.Action{
		Type:           action.PlayerAttack,
		AttackType:     catalog.AttackSlash,
		TargetBodyPart: catalog.PartTorso,
	})
	check("combat")

	gs.Player.AddItem("health_potion")
	eng.Dispatch(gs, action.Action{Type: action.UseItem, ItemName: "Health Potion"})
	check("a potion")

	gs.Combat = nil
	gs.Player.XP = 120
	eng.Dispatch(gs, action.Action{Type: action.LevelUp})
	check("a level up")

	gs.Player.AttributePoints = 1
	eng.Dispatch(gs, action.Action{Type: action.AllocatePoint, Attribute: catalog.AttrConstitution, Points: 1})
	check("an allocation")
}
