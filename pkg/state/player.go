package state

import "github.com/tbranton/whisperwood/pkg/catalog"

const (
	// XPBase and XPGrowth control the level curve: the XP needed for
	// the next level is XPBase * XPGrowth^(level-1).
	XPBase   = 100
	XPGrowth = 1.6

	AttributePointsPerLevel = 2
	PowerAttackCooldown     = 3

	InitialGold = 75
)

// InitialStats is the attribute block every new player starts with.
var InitialStats = catalog.Stats{
	Strength:     6,
	Dexterity:    5,
	Constitution: 7,
	Intelligence: 5,
	Agility:      5,
}

// MaxHealthFor computes total max health from constitution and level.
func MaxHealthFor(constitution, level int) int {
	return 50 + constitution*10 + level*5
}

// Player is the player character's full runtime state.
type Player struct {
	Name string `json:"name"`
	catalog.Stats

	Health    int `json:"health"`
	MaxHealth int `json:"max_health"`

	// Inventory holds item template ids; duplicates are distinct
	// copies of the same item.
	Inventory []string                        `json:"inventory"`
	Equipped  map[catalog.EquipSlot]string    `json:"equipped"`
	BodyParts map[catalog.BodyPart]*BodyPartState `json:"body_parts"`

	Gold            int `json:"gold"`
	Level           int `json:"level"`
	XP              int `json:"xp"`
	XPToNextLevel   int `json:"xp_to_next_level"`
	AttributePoints int `json:"attribute_points"`

	Evading   bool `json:"evading,omitempty"`
	Defending bool `json:"defending,omitempty"`

	PowerCooldown int `json:"power_cooldown,omitempty"`
}

// NewPlayer creates a level 1 player with the starting attribute block.
func NewPlayer(name string) *Player {
	if name == "" {
		name = "Adventurer"
	}
	maxHP := MaxHealthFor(InitialStats.Constitution, 1)
	return &Player{
		Name:          name,
		Stats:         InitialStats,
		Health:        maxHP,
		MaxHealth:     maxHP,
		Inventory:     []string{},
		Equipped:      make(map[catalog.EquipSlot]string),
		BodyParts:     NewPlayerBodyParts(maxHP, InitialStats.Constitution),
		Gold:          InitialGold,
		Level:         1,
		XPToNextLevel: XPBase,
	}
}

// AddItem puts one copy of the item into the inventory.
func (p *Player) AddItem(itemID string) {
	p.Inventory = append(p.Inventory, itemID)
}

// CountItem returns how many copies of the item the player carries.
func (p *Player) CountItem(itemID string) int {
	n := 0
	for _, id := range p.Inventory {
		if id == itemID {
			n++
		}
	}
	return n
}

// HasItem reports whether at least one copy is carried.
func (p *Player) HasItem(itemID string) bool {
	return p.CountItem(itemID) > 0
}

// RemoveItems takes up to count copies of the item out of the
// inventory and returns how many were actually removed.
func (p *Player) RemoveItems(itemID string, count int) int {
	removed := 0
	kept := p.Inventory[:0]
	for _, id := range p.Inventory {
		if id == itemID && removed < count {
			removed++
			continue
		}
		kept = append(kept, id)
	}
	p.Inventory = kept
	return removed
}

// EffectiveAttack is the player's attack power: strength and dexterity
// plus the main hand weapon, reduced while an arm is severely injured.
func (p *Player) EffectiveAttack(c *catalog.Catalog) int {
	attack := p.Strength*2 + p.Dexterity/2
	if weaponID, ok := p.Equipped[catalog.SlotMainHand]; ok {
		if weapon, ok := c.Items[weaponID]; ok {
			attack += weapon.AttackBonus
		}
	}
	if p.partSevere(catalog.PartLeftArm) || p.partSevere(catalog.PartRightArm) {
		attack = attack * 7 / 10
	}
	return maxInt(1, attack)
}

// EffectiveDefense is the player's defense power: agility and
// constitution plus all equipped defense bonuses, reduced while a leg
// is severely injured.
func (p *Player) EffectiveDefense(c *catalog.Catalog) int {
	defense := p.Agility + p.Constitution/2
	for _, itemID := range p.Equipped {
		if item, ok := c.Items[itemID]; ok {
			defense += item.DefenseBonus
		}
	}
	if p.partSevere(catalog.PartLeftLeg) || p.partSevere(catalog.PartRightLeg) {
		defense = defense * 7 / 10
	}
	return defense
}

// ShieldBonus returns the defense bonus of an off-hand shield, or 0
// when no shield is held.
func (p *Player) ShieldBonus(c *catalog.Catalog) int {
	itemID, ok := p.Equipped[catalog.SlotOffHand]
	if !ok {
		return 0
	}
	item, ok := c.Items[itemID]
	if !ok || !item.IsShield() {
		return 0
	}
	return item.DefenseBonus
}

// HasShield reports whether a shield is equipped in the off hand.
func (p *Player) HasShield(c *catalog.Catalog) bool {
	itemID, ok := p.Equipped[catalog.SlotOffHand]
	if !ok {
		return false
	}
	item, ok := c.Items[itemID]
	return ok && item.IsShield()
}

func (p *Player) partSevere(part catalog.BodyPart) bool {
	bp, ok := p.BodyParts[part]
	return ok && bp.Condition == catalog.ConditionSeverelyInjured
}

// ClearStances drops evade and defend. Moving, attacking or entering
// combat resets the player's stance.
func (p *Player) ClearStances() {
	p.Evading = false
	p.Defending = false
}
