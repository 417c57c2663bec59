package engine

import (
	"fmt"

	"github.com/tbranton/whisperwood/pkg/cond"
	"github.com/tbranton/whisperwood/pkg/state"
)

func (e *Engine) startQuest(gs *state.GameState, questID string) {
	quest, ok := e.catalog.Quests[questID]
	if !ok {
		e.log.Warn("start of unknown quest", "quest", questID)
		return
	}
	if _, active := gs.QuestActive(questID); active || gs.QuestCompleted(questID) {
		return
	}

	gs.ActiveQuests[questID] = &state.QuestProgress{QuestID: questID}
	gs.AddMessage(fmt.Sprintf("New quest: %s", quest.Title), state.MsgQuest)
	gs.AddMessage(quest.Stages[0].Description, state.MsgQuest)
}

// advanceQuest moves an active quest to an explicit stage, or to the
// next one when stageIndex is nil. Reaching the terminal stage
// completes the quest and grants its rewards.
func (e *Engine) advanceQuest(gs *state.GameState, questID string, stageIndex *int) {
	quest, ok := e.catalog.Quests[questID]
	if !ok {
		e.log.Warn("advance of unknown quest", "quest", questID)
		return
	}
	progress, active := gs.QuestActive(questID)
	if !active {
		return
	}

	target := progress.Stage + 1
	if stageIndex != nil {
		target = *stageIndex
	}
	if target <= progress.Stage {
		return
	}
	if target > quest.FinalStage() {
		target = quest.FinalStage()
	}
	progress.Stage = target

	if target >= quest.FinalStage() {
		e.completeQuest(gs, questID)
		return
	}
	gs.AddMessage(fmt.Sprintf("%s: %s", quest.Title, quest.Stages[target].Description), state.MsgQuest)
}

func (e *Engine) completeQuest(gs *state.GameState, questID string) {
	quest := e.catalog.Quests[questID]
	progress := gs.ActiveQuests[questID]
	progress.Completed = true
	delete(gs.ActiveQuests, questID)
	gs.CompletedQuests[questID] = progress

	gs.AddMessage(fmt.Sprintf("Quest completed: %s", quest.Title), state.MsgQuest)

	r := quest.Rewards
	if r.Gold > 0 {
		gs.Player.Gold += r.Gold
		gs.AddMessage(fmt.Sprintf("You receive %d gold.", r.Gold), state.MsgQuest)
	}
	if r.AttributePoints > 0 {
		gs.Player.AttributePoints += r.AttributePoints
		gs.AddMessage(fmt.Sprintf("You gain %d attribute points.", r.AttributePoints), state.MsgQuest)
	}
	for _, itemID := range r.Items {
		if item, ok := e.catalog.Items[itemID]; ok {
			gs.Player.AddItem(item.ID)
			gs.AddMessage(fmt.Sprintf("You receive a %s.", item.Name), state.MsgQuest)
		}
	}
	if r.XP > 0 {
		e.grantXP(gs, r.XP)
	}
}

// checkQuests advances any active quest whose current stage's
// completion condition now holds. Kill-count stages never advance on
// their own; turning them in is part of the story.
func (e *Engine) checkQuests(gs *state.GameState) {
	for questID, progress := range gs.ActiveQuests {
		quest, ok := e.catalog.Quests[questID]
		if !ok {
			continue
		}
		for progress.Stage < quest.FinalStage() {
			when := quest.Stages[progress.Stage].CompleteWhen
			if when == nil || !cond.Evaluate(*when, gs) {
				break
			}
			e.advanceQuest(gs, questID, nil)
			if gs.QuestCompleted(questID) {
				break
			}
		}
	}
}
