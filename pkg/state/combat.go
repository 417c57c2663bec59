package state

import (
	"fmt"

	"github.com/tbranton/whisperwood/pkg/catalog"
)

// CombatEnemy is a live instance of an enemy template in the current
// fight. CombatID distinguishes multiple copies of the same template.
type CombatEnemy struct {
	CombatID   string `json:"combat_id"`
	TemplateID string `json:"template_id"`
	Name       string `json:"name"`

	Health    int `json:"health"`
	MaxHealth int `json:"max_health"`
	catalog.Stats

	BodyParts map[catalog.BodyPart]*BodyPartState `json:"body_parts"`
}

// NewCombatEnemy instantiates an enemy template. The index makes the
// combat id unique within one fight ("goblin_scout_0").
func NewCombatEnemy(tpl catalog.Enemy, index int) *CombatEnemy {
	return &CombatEnemy{
		CombatID:   fmt.Sprintf("%s_%d", tpl.ID, index),
		TemplateID: tpl.ID,
		Name:       tpl.Name,
		Health:     tpl.MaxHealth,
		MaxHealth:  tpl.MaxHealth,
		Stats:      tpl.Stats,
		BodyParts:  NewEnemyBodyParts(tpl.MaxHealth, tpl.Constitution),
	}
}

// Defeated reports whether the enemy is out of the fight.
func (e *CombatEnemy) Defeated() bool {
	return e.Health <= 0
}

// EffectiveAttack is the enemy's attack power, reduced while an arm is
// severely injured. Enemies are hampered more than the player.
func (e *CombatEnemy) EffectiveAttack() int {
	attack := e.Strength*2 + e.Dexterity/2
	if e.partSevere(catalog.PartLeftArm) || e.partSevere(catalog.PartRightArm) {
		attack = attack * 6 / 10
	}
	if attack < 1 {
		attack = 1
	}
	return attack
}

// EffectiveDefense is the enemy's defense power, reduced while a leg
// is severely injured.
func (e *CombatEnemy) EffectiveDefense() int {
	defense := e.Agility + e.Constitution/2
	if e.partSevere(catalog.PartLeftLeg) || e.partSevere(catalog.PartRightLeg) {
		defense = defense * 6 / 10
	}
	return defense
}

func (e *CombatEnemy) partSevere(part catalog.BodyPart) bool {
	bp, ok := e.BodyParts[part]
	return ok && bp.Condition == catalog.ConditionSeverelyInjured
}

// CombatState is the state of an ongoing fight. FocusID is the combat
// id of the current foe, the enemy player attacks and the next to act.
type CombatState struct {
	Enemies []*CombatEnemy `json:"enemies"`
	FocusID string         `json:"focus_id,omitempty"`
	Round   int            `json:"round"`
}

// Enemy returns the live enemy with the given combat id.
func (cs *CombatState) Enemy(combatID string) (*CombatEnemy, bool) {
	for _, e := range cs.Enemies {
		if e.CombatID == combatID {
			return e, true
		}
	}
	return nil, false
}

// Remaining returns the enemies still standing.
func (cs *CombatState) Remaining() []*CombatEnemy {
	var alive []*CombatEnemy
	for _, e := range cs.Enemies {
		if !e.Defeated() {
			alive = append(alive, e)
		}
	}
	return alive
}

// Focus returns the current foe. When the focused enemy is down, focus
// shifts to the next one standing.
func (cs *CombatState) Focus() (*CombatEnemy, bool) {
	if e, ok := cs.Enemy(cs.FocusID); ok && !e.Defeated() {
		return e, true
	}
	for _, e := range cs.Enemies {
		if !e.Defeated() {
			cs.FocusID = e.CombatID
			return e, true
		}
	}
	return nil, false
}

// Active returns the enemy whose turn it is to fight back: the first
// one standing in engagement order. Enemies behind it wait their turn.
func (cs *CombatState) Active() (*CombatEnemy, bool) {
	for _, e := range cs.Enemies {
		if !e.Defeated() {
			return e, true
		}
	}
	return nil, false
}

// Over reports whether every enemy is defeated.
func (cs *CombatState) Over() bool {
	return len(cs.Remaining()) == 0
}
