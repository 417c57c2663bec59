package engine

import (
	"fmt"
	"math"

	"github.com/tbranton/whisperwood/pkg/action"
	"github.com/tbranton/whisperwood/pkg/catalog"
	"github.com/tbranton/whisperwood/pkg/state"
)

const (
	powerAttackMultiplier = 1.75
	weakSpotMultiplier    = 1.3
	// Enemies below this fraction of max health may try to flee.
	fleeThresholdPercent = 20
)

func (e *Engine) startCombat(gs *state.GameState, enemyIDs []string) {
	if gs.InDialogue() {
		e.endDialogue(gs)
	}
	if gs.InCombat() {
		gs.AddMessage("You're already fighting!", state.MsgError)
		return
	}

	var enemies []*state.CombatEnemy
	counts := make(map[string]int)
	for _, id := range enemyIDs {
		tpl, ok := e.catalog.Enemies[id]
		if !ok {
			continue
		}
		if tpl.Boss {
			if gs.BossesEngaged[tpl.ID] {
				continue
			}
			gs.BossesEngaged[tpl.ID] = true
		}
		enemies = append(enemies, state.NewCombatEnemy(tpl, counts[id]))
		counts[id]++
	}
	if len(enemies) == 0 {
		gs.AddMessage("There's nothing here to fight.", state.MsgError)
		return
	}

	gs.Combat = &state.CombatState{
		Enemies: enemies,
		FocusID: enemies[0].CombatID,
		Round:   1,
	}

	if len(enemies) == 1 {
		gs.AddMessage(fmt.Sprintf("A %s attacks!", enemies[0].Name), state.MsgCombat)
	} else {
		gs.AddMessage(fmt.Sprintf("%d enemies attack!", len(enemies)), state.MsgCombat)
	}
}

func (e *Engine) playerAttack(gs *state.GameState, act action.Action) {
	if !gs.InCombat() {
		gs.AddMessage("There's nothing to attack.", state.MsgError)
		return
	}
	cs := gs.Combat

	var target *state.CombatEnemy
	if act.TargetEnemyID != "" {
		enemy, ok := cs.Enemy(act.TargetEnemyID)
		if !ok || enemy.Defeated() {
			gs.AddMessage("That enemy is already down.", state.MsgError)
			return
		}
		cs.FocusID = enemy.CombatID
		target = enemy
	} else {
		enemy, ok := cs.Focus()
		if !ok {
			return
		}
		target = enemy
	}

	attackType := act.AttackType
	if attackType == "" {
		attackType = catalog.AttackSlash
	}
	// A power attack on cooldown still lands, just as a slash.
	if attackType == catalog.AttackPower && gs.Player.PowerCooldown > 0 {
		gs.AddMessage(fmt.Sprintf("You need %d more turns to wind up another power attack. You settle for a slash.", gs.Player.PowerCooldown), state.MsgCombat)
		attackType = catalog.AttackSlash
	}
	if attackType == catalog.AttackPower {
		gs.Player.PowerCooldown = state.PowerAttackCooldown
	}

	part := act.TargetBodyPart
	if part == "" {
		part = catalog.PartTorso
	}
	tpl := e.catalog.Enemies[target.TemplateID]

	if roll(e.dice, tpl.EvasionChance) {
		gs.AddMessage(fmt.Sprintf("The %s darts aside and your %s attack misses!", target.Name, attackType), state.MsgCombat)
		e.endPlayerTurn(gs)
		return
	}

	modifier := 1.0
	if m, ok := tpl.DamageModifier(part, attackType); ok {
		modifier = m
	} else if tpl.IsWeakSpot(part) {
		modifier = weakSpotMultiplier
	}

	dmg := e.rollDamage(gs.Player.EffectiveAttack(e.catalog), target.EffectiveDefense(), attackType == catalog.AttackPower, modifier)

	fatal := false
	wounded := false
	var struck *state.BodyPartState
	if bp, ok := target.BodyParts[part]; ok {
		wounded = bp.Damage(dmg)
		struck = bp
		if bp.CurrentHP == 0 && (part == catalog.PartHead || part == catalog.PartTorso) {
			fatal = true
		}
	}
	target.Health -= dmg
	if target.Health < 0 || fatal {
		target.Health = 0
	}

	gs.AddMessage(fmt.Sprintf("Your %s attack hits the %s's %s for %d damage!", attackType, target.Name, part, dmg), state.MsgCombat)
	if fatal {
		gs.AddMessage(fmt.Sprintf("The blow to the %s is fatal!", part), state.MsgCombat)
	} else if wounded && struck != nil {
		gs.AddMessage(fmt.Sprintf("The %s's %s is %s!", target.Name, part, struck.Condition), state.MsgBodyCondition)
	}

	if target.Defeated() {
		e.handleVictory(gs, target)
		if cs.Over() {
			gs.Combat = nil
			gs.AddMessage("The fight is over.", state.MsgCombat)
			return
		}
		if next, ok := cs.Active(); ok {
			gs.AddMessage(fmt.Sprintf("The %s steps up to fight!", next.Name), state.MsgCombat)
		}
	}

	e.endPlayerTurn(gs)
}

func (e *Engine) setTarget(gs *state.GameState, act action.Action) {
	if !gs.InCombat() {
		gs.AddMessage("You aren't in combat.", state.MsgError)
		return
	}
	combatID := act.EnemyCombatID
	if combatID == "" {
		combatID = act.TargetEnemyID
	}
	enemy, ok := gs.Combat.Enemy(combatID)
	if !ok || enemy.Defeated() {
		gs.AddMessage("There's no such enemy to target.", state.MsgError)
		return
	}
	gs.Combat.FocusID = enemy.CombatID
	gs.AddMessage(fmt.Sprintf("You focus on the %s.", enemy.Name), state.MsgCombat)
}

func (e *Engine) evade(gs *state.GameState) {
	if !gs.InCombat() {
		gs.AddMessage("There's nothing to evade.", state.MsgError)
		return
	}
	gs.Player.Evading = true
	gs.Player.Defending = false
	gs.AddMessage("You stay light on your feet, ready to dodge.", state.MsgCombat)
	e.endPlayerTurn(gs)
}

func (e *Engine) defend(gs *state.GameState) {
	if !gs.InCombat() {
		gs.AddMessage("There's nothing to defend against.", state.MsgError)
		return
	}
	if !gs.Player.HasShield(e.catalog) {
		gs.AddMessage("You have no shield to brace behind.", state.MsgError)
		return
	}
	gs.Player.Defending = true
	gs.Player.Evading = false
	gs.AddMessage("You raise your shield and brace yourself.", state.MsgCombat)
	e.endPlayerTurn(gs)
}

// endPlayerTurn runs the bookkeeping every player combat turn shares:
// the power cooldown ticks down and the active enemy answers.
func (e *Engine) endPlayerTurn(gs *state.GameState) {
	if gs.Player.PowerCooldown > 0 {
		gs.Player.PowerCooldown--
	}
	e.queueEnemyTurn(gs)
}

// queueEnemyTurn schedules the active enemy's attack and advances the
// round. Waiting enemies act only once they step up.
func (e *Engine) queueEnemyTurn(gs *state.GameState) {
	if gs.Combat == nil {
		return
	}
	if enemy, ok := gs.Combat.Active(); ok {
		gs.Queue(action.Action{Type: action.EnemyAttack, EnemyCombatID: enemy.CombatID})
	}
	gs.Combat.Round++
}

func (e *Engine) enemyTurn(gs *state.GameState, combatID string) {
	if gs.Combat == nil || gs.GameOver {
		return
	}
	enemy, ok := gs.Combat.Enemy(combatID)
	if !ok || enemy.Defeated() {
		return
	}
	tpl := e.catalog.Enemies[enemy.TemplateID]

	if enemy.Health*100 < enemy.MaxHealth*fleeThresholdPercent && roll(e.dice, tpl.FleeChance) {
		gs.AddMessage(fmt.Sprintf("The %s breaks away and flees!", enemy.Name), state.MsgCombat)
		enemy.Health = 0
		if gs.Combat.Over() {
			gs.Combat = nil
			gs.AddMessage("The fight is over.", state.MsgCombat)
		}
		return
	}

	// Stances last for one incoming attack.
	evading, defending := gs.Player.Evading, gs.Player.Defending
	gs.Player.ClearStances()

	if evading {
		dodge := gs.Player.Agility + d20(e.dice)
		strike := enemy.Dexterity + d20(e.dice)
		if dodge > strike {
			gs.AddMessage(fmt.Sprintf("You dodge the %s's attack!", enemy.Name), state.MsgCombat)
			return
		}
	}

	part := catalog.BodyParts[e.dice.IntN(len(catalog.BodyParts))]
	dmg := e.rollDamage(enemy.EffectiveAttack(), gs.Player.EffectiveDefense(e.catalog), false, 1.0)

	if defending {
		part = catalog.PartTorso
		dmg = dmg/2 - gs.Player.ShieldBonus(e.catalog)
		if dmg <= 0 {
			gs.AddMessage(fmt.Sprintf("Your shield turns the %s's blow aside.", enemy.Name), state.MsgCombat)
			return
		}
	}

	fatal := false
	if bp, ok := gs.Player.BodyParts[part]; ok {
		changed := bp.Damage(dmg)
		if bp.CurrentHP == 0 && (part == catalog.PartHead || part == catalog.PartTorso) {
			fatal = true
		}
		if changed && !fatal {
			gs.AddMessage(fmt.Sprintf("Your %s is %s!", part, bp.Condition), state.MsgBodyCondition)
		}
	}
	gs.Player.Health -= dmg
	if gs.Player.Health < 0 || fatal {
		gs.Player.Health = 0
	}

	gs.AddMessage(fmt.Sprintf("The %s hits your %s for %d damage!", enemy.Name, part, dmg), state.MsgCombat)

	if gs.Player.Health <= 0 {
		gs.GameOver = true
		gs.Combat = nil
		if fatal {
			gs.AddMessage(fmt.Sprintf("The blow to your %s proves fatal. You have died.", part), state.MsgCombat)
		} else {
			gs.AddMessage("Your wounds overcome you. You have died.", state.MsgCombat)
		}
	}
}

// rollDamage runs the shared damage pipeline: attack against defense
// with a chip floor, a power bonus, a body part modifier and a little
// variance.
func (e *Engine) rollDamage(attack, defense int, power bool, modifier float64) int {
	chip := attack / 10
	if chip < 1 {
		chip = 1
	}
	raw := attack - defense
	if raw < chip {
		raw = chip
	}

	f := float64(raw)
	if power {
		f *= powerAttackMultiplier
	}
	f *= modifier
	f *= 0.9 + 0.2*e.dice.Float64()

	dmg := int(math.Floor(f))
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

func (e *Engine) handleVictory(gs *state.GameState, enemy *state.CombatEnemy) {
	tpl := e.catalog.Enemies[enemy.TemplateID]
	gs.AddMessage(fmt.Sprintf("The %s collapses!", enemy.Name), state.MsgCombat)

	if tpl.XP > 0 {
		e.grantXP(gs, tpl.XP)
	}
	if tpl.Gold.Max > 0 {
		gold := tpl.Gold.Min
		if spread := tpl.Gold.Max - tpl.Gold.Min; spread > 0 {
			gold += e.dice.IntN(spread + 1)
		}
		gs.Player.Gold += gold
		gs.AddMessage(fmt.Sprintf("You loot %d gold.", gold), state.MsgCombat)
	}
	for _, drop := range tpl.Loot {
		if !roll(e.dice, drop.Chance) {
			continue
		}
		if item, ok := e.catalog.Items[drop.ItemID]; ok {
			gs.Player.AddItem(item.ID)
			gs.AddMessage(fmt.Sprintf("The %s dropped a %s.", enemy.Name, item.Name), state.MsgCombat)
		}
	}

	gs.CurrentLocation().RemoveSpawn(enemy.TemplateID)

	for _, progress := range gs.ActiveQuests {
		quest, ok := e.catalog.Quests[progress.QuestID]
		if !ok || progress.Stage >= len(quest.Stages) {
			continue
		}
		stage := quest.Stages[progress.Stage]
		if stage.Target != enemy.TemplateID {
			continue
		}
		progress.RecordKill(enemy.TemplateID)
		if stage.TargetCount > 1 {
			gs.AddMessage(fmt.Sprintf("%s: %d/%d %s defeated.", quest.Title, progress.Kills(enemy.TemplateID), stage.TargetCount, enemy.Name), state.MsgQuest)
		}
	}
}
