package catalog

// BodyPartHeal describes targeted healing applied by usable items such
// as splints. Condition is the resulting grade for the treated part;
// Amount is flat HP restored to parts instead of or in addition to the
// condition change.
type BodyPartHeal struct {
	Part      BodyPart  `json:"part,omitempty"`      // empty means the worst injured part
	Condition Condition `json:"condition,omitempty"` // treated part is raised to at least this grade
	Amount    int       `json:"amount,omitempty"`
}

// StatBonus is a permanent attribute increase granted by consuming an item.
type StatBonus struct {
	Attribute Attribute `json:"attribute"`
	Amount    int       `json:"amount"`
}

// Item is an item template. Runtime inventories hold item ids and look
// templates up here; items carry no mutable state of their own.
type Item struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Type         ItemType      `json:"type"`
	AttackBonus  int           `json:"attack_bonus,omitempty"`
	DefenseBonus int           `json:"defense_bonus,omitempty"`
	HealAmount   int           `json:"heal_amount,omitempty"`
	BodyPartHeal *BodyPartHeal `json:"body_part_heal,omitempty"`
	StatBonus    *StatBonus    `json:"stat_bonus,omitempty"`
	Unlocks      string        `json:"unlocks,omitempty"` // exit key id this item opens
	Equippable   bool          `json:"equippable,omitempty"`
	Slot         EquipSlot     `json:"slot,omitempty"`
	Usable       bool          `json:"usable,omitempty"`
	Value        int           `json:"value"`
}

// IsShield reports whether the item grants the defend stance bonus
// when held in the off hand.
func (i Item) IsShield() bool {
	return i.Type == ItemShield
}
