// Package state holds the mutable runtime state of one playthrough:
// the player, per-location state, quest progress, combat and the
// message log. Templates live in the catalog package; everything here
// is an instance derived from them.
package state

import "github.com/tbranton/whisperwood/pkg/catalog"

// BodyPartState is the live HP pool of one body part.
type BodyPartState struct {
	Condition catalog.Condition `json:"condition"`
	CurrentHP int               `json:"current_hp"`
	MaxHP     int               `json:"max_hp"`
}

// ConditionFor grades a part by its HP ratio.
func ConditionFor(current, max int) catalog.Condition {
	switch {
	case current == 0:
		return catalog.ConditionSeverelyInjured
	case current*10 <= max*3:
		return catalog.ConditionSeverelyInjured
	case current*10 <= max*6:
		return catalog.ConditionInjured
	case current < max:
		return catalog.ConditionBruised
	default:
		return catalog.ConditionHealthy
	}
}

// Damage reduces the part's HP and refreshes its condition. It returns
// true when the condition grade changed.
func (b *BodyPartState) Damage(amount int) bool {
	b.CurrentHP -= amount
	if b.CurrentHP < 0 {
		b.CurrentHP = 0
	}
	return b.refresh()
}

// Heal restores HP up to the part's maximum and refreshes its
// condition. It returns true when the condition grade changed.
func (b *BodyPartState) Heal(amount int) bool {
	b.CurrentHP += amount
	if b.CurrentHP > b.MaxHP {
		b.CurrentHP = b.MaxHP
	}
	return b.refresh()
}

func (b *BodyPartState) refresh() bool {
	old := b.Condition
	b.Condition = ConditionFor(b.CurrentHP, b.MaxHP)
	return b.Condition != old
}

func newPart(max int) *BodyPartState {
	return &BodyPartState{Condition: catalog.ConditionHealthy, CurrentHP: max, MaxHP: max}
}

// NewPlayerBodyParts derives the player's six HP pools from total max
// health and constitution.
func NewPlayerBodyParts(maxHealth, constitution int) map[catalog.BodyPart]*BodyPartState {
	head := maxInt(10, maxHealth*20/100+constitution)
	torso := maxInt(20, maxHealth*35/100+constitution*2)
	limb := maxInt(15, maxHealth*15/100+constitution)
	return map[catalog.BodyPart]*BodyPartState{
		catalog.PartHead:     newPart(head),
		catalog.PartTorso:    newPart(torso),
		catalog.PartLeftArm:  newPart(limb),
		catalog.PartRightArm: newPart(limb),
		catalog.PartLeftLeg:  newPart(limb),
		catalog.PartRightLeg: newPart(limb),
	}
}

// NewEnemyBodyParts derives an enemy's six HP pools from total max
// health and constitution. Enemies get lower floors than the player.
func NewEnemyBodyParts(maxHealth, constitution int) map[catalog.BodyPart]*BodyPartState {
	head := maxInt(10, maxHealth*20/100+constitution)
	torso := maxInt(15, maxHealth*35/100+constitution*2)
	limb := maxInt(8, maxHealth*15/100+constitution)
	return map[catalog.BodyPart]*BodyPartState{
		catalog.PartHead:     newPart(head),
		catalog.PartTorso:    newPart(torso),
		catalog.PartLeftArm:  newPart(limb),
		catalog.PartRightArm: newPart(limb),
		catalog.PartLeftLeg:  newPart(limb),
		catalog.PartRightLeg: newPart(limb),
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
