package state

// GameState implements cond.View so content conditions can be
// evaluated directly against the live state.

func (gs *GameState) HasItem(itemID string) bool {
	return gs.Player.HasItem(itemID)
}

func (gs *GameState) QuestState(questID string) (stage int, active bool, completed bool) {
	if q, ok := gs.CompletedQuests[questID]; ok {
		return q.Stage, false, true
	}
	if q, ok := gs.ActiveQuests[questID]; ok {
		return q.Stage, true, false
	}
	return 0, false, false
}

func (gs *GameState) PlayerLevel() int {
	return gs.Player.Level
}

func (gs *GameState) PlayerGold() int {
	return gs.Player.Gold
}

func (gs *GameState) LocationID() string {
	return gs.CurrentLocationID
}

func (gs *GameState) LocationHasItem(itemID string) bool {
	loc := gs.CurrentLocation()
	return loc != nil && loc.HasItem(itemID)
}

func (gs *GameState) NPCPresent(npcID string) bool {
	loc := gs.CurrentLocation()
	return loc != nil && loc.HasNPC(npcID)
}

func (gs *GameState) DialogueNPC() string {
	return gs.DialogueNPCID
}

func (gs *GameState) BossDefeated(enemyID string) bool {
	return gs.BossesEngaged[enemyID]
}
