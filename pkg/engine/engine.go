// Package engine advances a game state one action at a time. The
// dispatcher owns the follow-up queue: handlers never recurse into the
// dispatcher, they queue further actions and the drain loop runs them
// in order.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/tbranton/whisperwood/pkg/action"
	"github.com/tbranton/whisperwood/pkg/catalog"
	"github.com/tbranton/whisperwood/pkg/state"
)

// Engine resolves actions against a game state. It is stateless apart
// from the catalog and dice, so one engine can serve many sessions.
type Engine struct {
	catalog *catalog.Catalog
	dice    Dice
	log     *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithDice replaces the random source, mainly for deterministic tests.
func WithDice(d Dice) Option {
	return func(e *Engine) { e.dice = d }
}

// WithLogger sets the engine's logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New creates an engine for the given catalog.
func New(c *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog: c,
		dice:    NewDice(0),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog exposes the content the engine runs.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// NewGame starts a fresh playthrough and narrates the opening scene.
func (e *Engine) NewGame(playerName string) *state.GameState {
	gs := state.NewGameState(e.catalog, playerName)
	e.enterLocation(gs, true)
	e.drain(gs)
	return gs
}

// Dispatch applies the given actions in order, then drains any
// follow-up actions the handlers queued. Each processed action
// advances game time by one tick.
func (e *Engine) Dispatch(gs *state.GameState, actions ...action.Action) {
	gs.Queue(actions...)
	e.drain(gs)
}

func (e *Engine) drain(gs *state.GameState) {
	// Queued follow-ups run strictly after the action that queued
	// them, so a bounded loop over the front of the queue suffices.
	for len(gs.Pending) > 0 {
		act := gs.Pending[0]
		gs.Pending = gs.Pending[1:]
		e.apply(gs, act)
	}
}

func (e *Engine) apply(gs *state.GameState, act action.Action) {
	e.log.Debug("dispatch action", "type", act.Type, "game_time", gs.GameTime)

	if gs.GameOver && act.Type != action.AckGameOver && act.Type != action.NewGame {
		gs.AddMessage("The tale has ended. Start a new game to play again.", state.MsgSystem)
		return
	}

	gs.GameTime++

	switch act.Type {
	case action.Move:
		gs.Player.ClearStances()
		e.move(gs, act)
	case action.TakeItem:
		e.takeItem(gs, act)
	case action.DropItem:
		e.dropItem(gs, act)
	case action.UseItem:
		e.useItem(gs, act)
	case action.EquipItem:
		e.equipItem(gs, act)
	case action.UnequipItem:
		e.unequipItem(gs, act)
	case action.Examine:
		e.examine(gs, act)
	case action.TalkToNPC:
		e.talkToNPC(gs, act)
	case action.SelectChoice:
		e.selectChoice(gs, act)
	case action.EndDialogue:
		e.endDialogue(gs)
	case action.StartCombat:
		gs.Player.ClearStances()
		e.startCombat(gs, act.EnemyIDs)
	case action.PlayerAttack:
		gs.Player.ClearStances()
		e.playerAttack(gs, act)
	case action.EnemyAttack:
		e.enemyTurn(gs, act.EnemyCombatID)
	case action.SetTarget:
		e.setTarget(gs, act)
	case action.Evade:
		e.evade(gs)
	case action.Defend:
		e.defend(gs)
	case action.StartQuest:
		e.startQuest(gs, act.QuestID)
	case action.AdvanceQuest:
		e.advanceQuest(gs, act.QuestID, act.StageIndex)
	case action.LevelUp:
		e.levelUp(gs)
	case action.AllocatePoint:
		e.allocatePoint(gs, act)
	case action.BuyItem:
		e.buyItem(gs, act)
	case action.SellItem:
		e.sellItem(gs, act)
	case action.TreatInjury:
		e.treatInjury(gs, act)
	case action.AddMessage:
		gs.AddMessage(act.Message, state.MsgGame)
	case action.AckGameOver:
		// Nothing to resolve; the caller decides what comes next.
	case action.NewGame:
		fresh := state.NewGameState(e.catalog, gs.Player.Name)
		*gs = *fresh
		e.enterLocation(gs, true)
	case action.Unknown:
		// The reason comes from the translator, so it reads as
		// guidance rather than an engine failure.
		reason := act.Reason
		if reason == "" {
			reason = "I don't understand that."
		}
		gs.AddMessage(reason, state.MsgAssist)
	default:
		gs.AddMessage(fmt.Sprintf("Nothing happens. (%s)", act.Type), state.MsgError)
	}

	e.checkQuests(gs)
}
