package cond

import "testing"

// fakeView is a minimal View for condition tests.
type fakeView struct {
	items      map[string]bool
	locItems   map[string]bool
	npcs       map[string]bool
	quests     map[string][3]int // stage, active(0/1), completed(0/1)
	bosses     map[string]bool
	level      int
	gold       int
	locationID string
	dialogue   string
}

func (f *fakeView) HasItem(id string) bool         { return f.items[id] }
func (f *fakeView) LocationHasItem(id string) bool { return f.locItems[id] }
func (f *fakeView) NPCPresent(id string) bool      { return f.npcs[id] }
func (f *fakeView) PlayerLevel() int               { return f.level }
func (f *fakeView) PlayerGold() int                { return f.gold }
func (f *fakeView) LocationID() string             { return f.locationID }
func (f *fakeView) DialogueNPC() string            { return f.dialogue }
func (f *fakeView) BossDefeated(id string) bool    { return f.bosses[id] }

func (f *fakeView) QuestState(id string) (int, bool, bool) {
	q, ok := f.quests[id]
	if !ok {
		return 0, false, false
	}
	return q[0], q[1] == 1, q[2] == 1
}

func TestEvaluate(t *testing.T) {
	view := &fakeView{
		items:      map[string]bool{"rusty_sword": true},
		locItems:   map[string]bool{"mystic_orb": true},
		npcs:       map[string]bool{"old_hermit": true},
		quests:     map[string][3]int{"goblin_menace": {1, 1, 0}, "find_orb": {3, 0, 1}},
		bosses:     map[string]bool{"giant_cave_spider": true},
		level:      3,
		gold:       40,
		locationID: "village_square",
		dialogue:   "old_hermit",
	}

	tests := []struct {
		name string
		when When
		want bool
	}{
		{"empty never triggers", When{}, false},
		{"has item", When{HasItem: "rusty_sword"}, true},
		{"has item missing", When{HasItem: "mystic_orb"}, false},
		{"missing item", When{MissingItem: "mystic_orb"}, true},
		{"missing item held", When{MissingItem: "rusty_sword"}, false},
		{"quest not started", When{QuestNotStarted: "spider_hunt"}, true},
		{"quest not started but active", When{QuestNotStarted: "goblin_menace"}, false},
		{"quest completed", When{QuestCompleted: "find_orb"}, true},
		{"quest completed but active", When{QuestCompleted: "goblin_menace"}, false},
		{"quest stage exact", When{QuestStageIs: &QuestStageRef{QuestID: "goblin_menace", Stage: 1}}, true},
		{"quest stage wrong", When{QuestStageIs: &QuestStageRef{QuestID: "goblin_menace", Stage: 2}}, false},
		{"quest stage of completed quest", When{QuestStageIs: &QuestStageRef{QuestID: "find_orb", Stage: 3}}, false},
		{"min level met", When{MinLevel: 3}, true},
		{"min level unmet", When{MinLevel: 4}, false},
		{"min gold", When{MinGold: 40}, true},
		{"min gold unmet", When{MinGold: 41}, false},
		{"at location", When{AtLocation: "village_square"}, true},
		{"wrong location", When{AtLocation: "forest_entrance"}, false},
		{"location has item", When{LocationHasItem: "mystic_orb"}, true},
		{"npc present", When{NPCPresent: "old_hermit"}, true},
		{"talking to", When{TalkingTo: "old_hermit"}, true},
		{"talking to someone else", When{TalkingTo: "borin"}, false},
		{"all clauses must hold", When{HasItem: "rusty_sword", MinLevel: 4}, false},
		{"conjunction holds", When{HasItem: "rusty_sword", AtLocation: "village_square"}, true},
		{"boss defeated", When{BossDefeated: "giant_cave_spider"}, true},
		{"boss defeated unmet", When{BossDefeated: "bandit_leader"}, false},
		{"boss alive", When{BossAlive: "bandit_leader"}, true},
		{"boss alive but defeated", When{BossAlive: "giant_cave_spider"}, false},
		{"any matches second", When{Any: []When{{MinLevel: 10}, {HasItem: "rusty_sword"}}}, true},
		{"any matches none", When{Any: []When{{MinLevel: 10}, {HasItem: "mystic_orb"}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.when, view); got != tt.want {
				t.Errorf("Evaluate(%+v) = %v, want %v", tt.when, got, tt.want)
			}
		})
	}
}
