package engine

import (
	"fmt"
	"strings"

	"github.com/tbranton/whisperwood/pkg/action"
	"github.com/tbranton/whisperwood/pkg/catalog"
	"github.com/tbranton/whisperwood/pkg/cond"
	"github.com/tbranton/whisperwood/pkg/state"
)

// maxAutoAdvance bounds dialogue auto-advance chains so a cyclic graph
// cannot hang a turn.
const maxAutoAdvance = 10

// dialogueOption is a selectable entry at the current stage: either an
// authored choice or a generated healer treatment.
type dialogueOption struct {
	choice    catalog.DialogueChoice
	treatPart catalog.BodyPart
}

func (e *Engine) talkToNPC(gs *state.GameState, act action.Action) {
	if gs.InCombat() {
		gs.AddMessage("You're a little busy fighting right now!", state.MsgError)
		return
	}

	npc, ok := e.resolveNPC(gs, act.NPCID, act.NPCName)
	if !ok {
		gs.AddMessage("There's no one like that here.", state.MsgError)
		return
	}

	gs.DialogueNPCID = npc.ID
	e.enterStage(gs, npc, npc.InitialStage, 0)
}

func (e *Engine) selectChoice(gs *state.GameState, act action.Action) {
	npc, ok := e.dialoguePartner(gs)
	if !ok {
		gs.AddMessage("You aren't talking to anyone.", state.MsgError)
		return
	}
	stage, ok := npc.Dialogue[gs.DialogueStageID]
	if !ok {
		e.endDialogue(gs)
		return
	}

	options := e.visibleOptions(gs, npc, stage)
	if act.ChoiceIndex < 0 || act.ChoiceIndex >= len(options) {
		gs.AddMessage("That isn't one of your options.", state.MsgError)
		return
	}
	opt := options[act.ChoiceIndex]

	if opt.treatPart != "" {
		gs.Queue(action.Action{Type: action.TreatInjury, NPCID: npc.ID, TargetBodyPart: opt.treatPart})
		return
	}

	gs.AddMessage(fmt.Sprintf("You: %s", opt.choice.Text), state.MsgDialogue)
	if opt.choice.Effect != nil {
		if !e.applyEffect(gs, *opt.choice.Effect) {
			return
		}
	}
	if opt.choice.ClosesDialogue {
		e.endDialogue(gs)
		return
	}
	if opt.choice.NextStage != "" {
		e.enterStage(gs, npc, opt.choice.NextStage, 0)
	}
}

func (e *Engine) endDialogue(gs *state.GameState) {
	if !gs.InDialogue() {
		return
	}
	if npc, ok := e.catalog.NPCs[gs.DialogueNPCID]; ok {
		gs.AddMessage(fmt.Sprintf("You part ways with %s.", npc.Name), state.MsgDialogue)
	}
	gs.DialogueNPCID = ""
	gs.DialogueStageID = ""
}

// enterStage speaks a stage's line, applies its effect and follows
// auto-advance chains. An unknown stage id force-closes the dialogue
// rather than stranding the player.
func (e *Engine) enterStage(gs *state.GameState, npc catalog.NPC, stageID string, depth int) {
	if depth > maxAutoAdvance {
		e.log.Warn("dialogue auto-advance chain too deep", "npc", npc.ID, "stage", stageID)
		e.endDialogue(gs)
		return
	}
	stage, ok := npc.Dialogue[stageID]
	if !ok {
		e.log.Warn("dialogue stage missing", "npc", npc.ID, "stage", stageID)
		e.endDialogue(gs)
		return
	}
	gs.DialogueStageID = stageID

	if line := stage.Say(gs); line != "" {
		gs.AddMessage(fmt.Sprintf("%s: %s", npc.Name, line), state.MsgDialogue)
	}
	if stage.Effect != nil {
		e.applyEffect(gs, *stage.Effect)
	}

	if stage.AutoAdvanceTo != "" {
		e.enterStage(gs, npc, stage.AutoAdvanceTo, depth+1)
		return
	}
	if stage.EndsDialogue {
		e.endDialogue(gs)
		return
	}

	options := e.visibleOptions(gs, npc, stage)
	if len(options) == 0 {
		// A stage with nothing left to offer closes on its own.
		e.endDialogue(gs)
		return
	}
	for i, opt := range options {
		text := opt.choice.Text
		if opt.treatPart != "" {
			text = fmt.Sprintf("Have your %s treated (%d gold)", opt.treatPart, npc.TreatCost)
		}
		gs.AddMessage(fmt.Sprintf("%d) %s", i+1, text), state.MsgDialogue)
	}
}

// visibleOptions filters the stage's choices by their conditions and,
// for healers on their opening stage, appends a treatment entry per
// severely injured body part.
func (e *Engine) visibleOptions(gs *state.GameState, npc catalog.NPC, stage catalog.DialogueStage) []dialogueOption {
	var options []dialogueOption
	for _, c := range stage.Choices {
		if c.When != nil && !cond.Evaluate(*c.When, gs) {
			continue
		}
		options = append(options, dialogueOption{choice: c})
	}
	if npc.Healer && gs.DialogueStageID == npc.InitialStage {
		for _, part := range catalog.BodyParts {
			bp, ok := gs.Player.BodyParts[part]
			if ok && bp.Condition == catalog.ConditionSeverelyInjured {
				options = append(options, dialogueOption{treatPart: part})
			}
		}
	}
	return options
}

func (e *Engine) treatInjury(gs *state.GameState, act action.Action) {
	npcID := act.NPCID
	if npcID == "" {
		npcID = gs.DialogueNPCID
	}
	npc, ok := e.catalog.NPCs[npcID]
	if !ok || !npc.Healer {
		gs.AddMessage("No one here can treat your wounds.", state.MsgError)
		return
	}

	bp, ok := gs.Player.BodyParts[act.TargetBodyPart]
	if !ok || bp.Condition != catalog.ConditionSeverelyInjured {
		gs.AddMessage("That doesn't need treatment.", state.MsgError)
		return
	}
	if gs.Player.Gold < npc.TreatCost {
		gs.AddMessage(fmt.Sprintf("You need %d gold for treatment.", npc.TreatCost), state.MsgError)
		return
	}

	gs.Player.Gold -= npc.TreatCost
	bp.Condition = catalog.ConditionInjured
	if healed := bp.MaxHP * 3 / 10; healed > bp.CurrentHP {
		bp.CurrentHP = healed
	}
	if bp.CurrentHP < 1 {
		bp.CurrentHP = 1
	}
	gs.AddMessage(fmt.Sprintf("%s binds and splints your %s. It will mend, in time.", npc.Name, act.TargetBodyPart), state.MsgBodyCondition)
}

func (e *Engine) dialoguePartner(gs *state.GameState) (catalog.NPC, bool) {
	if !gs.InDialogue() {
		return catalog.NPC{}, false
	}
	npc, ok := e.catalog.NPCs[gs.DialogueNPCID]
	return npc, ok
}

// resolveNPC finds an NPC at the current location by id or name.
func (e *Engine) resolveNPC(gs *state.GameState, npcID, npcName string) (catalog.NPC, bool) {
	ls := gs.CurrentLocation()
	for _, id := range ls.NPCIDs {
		npc, ok := e.catalog.NPCs[id]
		if !ok {
			continue
		}
		if id == npcID || strings.EqualFold(npc.Name, npcName) || strings.EqualFold(id, npcName) {
			return npc, true
		}
	}
	return catalog.NPC{}, false
}
