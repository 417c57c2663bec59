package engine

import (
	"fmt"
	"math"

	"github.com/tbranton/whisperwood/pkg/action"
	"github.com/tbranton/whisperwood/pkg/catalog"
	"github.com/tbranton/whisperwood/pkg/state"
)

// xpForNextLevel is the XP needed to climb out of the given level.
func xpForNextLevel(level int) int {
	return int(math.Floor(state.XPBase * math.Pow(state.XPGrowth, float64(level-1))))
}

// grantXP awards experience and queues a level-up when the threshold
// is crossed. Crossing several thresholds at once levels up repeatedly,
// one queued action at a time.
func (e *Engine) grantXP(gs *state.GameState, amount int) {
	gs.Player.XP += amount
	gs.AddMessage(fmt.Sprintf("You gain %d XP.", amount), state.MsgQuest)
	if gs.Player.XP >= gs.Player.XPToNextLevel {
		gs.Queue(action.Action{Type: action.LevelUp})
	}
}

func (e *Engine) levelUp(gs *state.GameState) {
	p := gs.Player
	if p.XP < p.XPToNextLevel {
		return
	}

	p.XP -= p.XPToNextLevel
	p.Level++
	p.XPToNextLevel = xpForNextLevel(p.Level)
	p.AttributePoints += state.AttributePointsPerLevel

	// Leveling restores the whole body: full health, fresh parts.
	p.MaxHealth = state.MaxHealthFor(p.Constitution, p.Level)
	p.Health = p.MaxHealth
	p.BodyParts = state.NewPlayerBodyParts(p.MaxHealth, p.Constitution)

	gs.AddMessage(fmt.Sprintf("You reach level %d! You have %d attribute points to spend.", p.Level, p.AttributePoints), state.MsgLevelUp)

	if p.XP >= p.XPToNextLevel {
		gs.Queue(action.Action{Type: action.LevelUp})
	}
}

func (e *Engine) allocatePoint(gs *state.GameState, act action.Action) {
	p := gs.Player
	points := act.Points
	if points <= 0 {
		points = 1
	}
	valid := false
	for _, attr := range catalog.Attributes {
		if attr == act.Attribute {
			valid = true
			break
		}
	}
	if !valid {
		gs.AddMessage("That isn't an attribute you can raise.", state.MsgError)
		return
	}
	if p.AttributePoints < points {
		gs.AddMessage("You don't have enough attribute points.", state.MsgError)
		return
	}

	p.Add(act.Attribute, points)
	p.AttributePoints -= points
	if act.Attribute == catalog.AttrConstitution {
		e.recomputeVitals(gs)
	}
	gs.AddMessage(fmt.Sprintf("%s increased to %d.", act.Attribute, p.Get(act.Attribute)), state.MsgLevelUp)
}

// recomputeVitals rebuilds max health and body part pools after a
// constitution increase. Damage already taken carries over as a flat
// deficit, and no part's condition gets worse from growing.
func (e *Engine) recomputeVitals(gs *state.GameState) {
	p := gs.Player

	oldMax := p.MaxHealth
	p.MaxHealth = state.MaxHealthFor(p.Constitution, p.Level)
	p.Health += p.MaxHealth - oldMax
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
	if p.Health < 1 {
		p.Health = 1
	}

	fresh := state.NewPlayerBodyParts(p.MaxHealth, p.Constitution)
	for part, bp := range p.BodyParts {
		deficit := bp.MaxHP - bp.CurrentHP
		next := fresh[part]
		bp.MaxHP = next.MaxHP
		bp.CurrentHP = next.MaxHP - deficit
		if bp.CurrentHP < 0 {
			bp.CurrentHP = 0
		}
		if c := state.ConditionFor(bp.CurrentHP, bp.MaxHP); severityRank[c] < severityRank[bp.Condition] {
			bp.Condition = c
		}
	}
}

var severityRank = map[catalog.Condition]int{
	catalog.ConditionHealthy:         0,
	catalog.ConditionBruised:         1,
	catalog.ConditionInjured:         2,
	catalog.ConditionSeverelyInjured: 3,
	catalog.ConditionMissing:         4,
}
