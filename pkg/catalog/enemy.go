package catalog

// LootDrop is one entry of an enemy's loot table.
type LootDrop struct {
	ItemID string  `json:"item_id"`
	Chance float64 `json:"chance"`
}

// GoldRange is the inclusive range of gold an enemy yields when defeated.
type GoldRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Enemy is an enemy template. Body part HP pools are derived from
// MaxHealth and Constitution when a combat instance is created, so the
// template stores only the aggregate.
type Enemy struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxHealth   int    `json:"max_health"`
	Stats

	// WeakSpots take a 1.3x damage bonus when no explicit modifier
	// covers the part and attack type.
	WeakSpots []BodyPart `json:"weak_spots,omitempty"`

	EvasionChance float64 `json:"evasion_chance,omitempty"`
	FleeChance    float64 `json:"flee_chance,omitempty"`

	Loot []LootDrop `json:"loot,omitempty"`
	Gold GoldRange  `json:"gold"`
	XP   int        `json:"xp"`

	// DamageModifiers scale incoming damage per part and attack type.
	DamageModifiers map[BodyPart]map[AttackType]float64 `json:"damage_modifiers,omitempty"`

	// Boss enemies are engaged at most once per game; they do not
	// respawn and their lair falls quiet after the fight.
	Boss bool `json:"boss,omitempty"`
}

// DamageModifier returns the multiplier for an attack type landing on
// the given part, and whether one is defined.
func (e Enemy) DamageModifier(part BodyPart, attack AttackType) (float64, bool) {
	byAttack, ok := e.DamageModifiers[part]
	if !ok {
		return 0, false
	}
	mod, ok := byAttack[attack]
	return mod, ok
}

// IsWeakSpot reports whether the part is one of the enemy's weak spots.
func (e Enemy) IsWeakSpot(part BodyPart) bool {
	for _, p := range e.WeakSpots {
		if p == part {
			return true
		}
	}
	return false
}
