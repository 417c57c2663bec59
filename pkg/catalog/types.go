// Package catalog holds the immutable content templates the engine
// consumes by id lookup: items, enemies, locations, NPCs and quests.
// Templates are plain data; runtime instances are independent copies
// owned by the state package.
package catalog

// ItemType classifies an item template.
type ItemType string

const (
	ItemWeapon    ItemType = "weapon"
	ItemArmor     ItemType = "armor"
	ItemPotion    ItemType = "potion"
	ItemKey       ItemType = "key"
	ItemQuestItem ItemType = "quest_item"
	ItemMisc      ItemType = "misc"
	ItemBook      ItemType = "book"
	ItemTool      ItemType = "tool"
	ItemShield    ItemType = "shield"
)

// EquipSlot is a slot on the player's body that can hold one item.
type EquipSlot string

const (
	SlotMainHand EquipSlot = "MainHand"
	SlotOffHand  EquipSlot = "OffHand"
	SlotHead     EquipSlot = "Head"
	SlotTorso    EquipSlot = "Torso"
	SlotLegs     EquipSlot = "Legs"
	SlotFeet     EquipSlot = "Feet"
	SlotHands    EquipSlot = "Hands"
	SlotAmulet   EquipSlot = "Amulet"
	SlotRing1    EquipSlot = "Ring1"
	SlotRing2    EquipSlot = "Ring2"
)

// EquipSlots lists every slot in display order.
var EquipSlots = []EquipSlot{
	SlotMainHand, SlotOffHand, SlotHead, SlotTorso, SlotLegs,
	SlotFeet, SlotHands, SlotAmulet, SlotRing1, SlotRing2,
}

// BodyPart identifies one of the six localized hit zones.
type BodyPart string

const (
	PartHead     BodyPart = "Head"
	PartTorso    BodyPart = "Torso"
	PartLeftArm  BodyPart = "LeftArm"
	PartRightArm BodyPart = "RightArm"
	PartLeftLeg  BodyPart = "LeftLeg"
	PartRightLeg BodyPart = "RightLeg"
)

// BodyParts lists every part in the fixed head-to-leg order used by
// healing and display.
var BodyParts = []BodyPart{
	PartHead, PartTorso, PartLeftArm, PartRightArm, PartLeftLeg, PartRightLeg,
}

// Condition is the health grade of a body part. It is always a pure
// function of the part's current/max HP ratio.
type Condition string

const (
	ConditionHealthy         Condition = "Healthy"
	ConditionBruised         Condition = "Bruised"
	ConditionInjured         Condition = "Injured"
	ConditionSeverelyInjured Condition = "SeverelyInjured"
	ConditionMissing         Condition = "Missing"
)

// AttackType is the style of a player attack.
type AttackType string

const (
	AttackThrust AttackType = "thrust"
	AttackSlash  AttackType = "slash"
	AttackPower  AttackType = "power"
)

// Attribute names one of the five base stats.
type Attribute string

const (
	AttrStrength     Attribute = "Strength"
	AttrDexterity    Attribute = "Dexterity"
	AttrConstitution Attribute = "Constitution"
	AttrIntelligence Attribute = "Intelligence"
	AttrAgility      Attribute = "Agility"
)

// Attributes lists the five base stats in display order.
var Attributes = []Attribute{
	AttrStrength, AttrDexterity, AttrConstitution, AttrIntelligence, AttrAgility,
}

// Stats is the attribute block shared by the player and enemy templates.
type Stats struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Agility      int `json:"agility"`
}

// Get returns the value of the named attribute.
func (s Stats) Get(a Attribute) int {
	switch a {
	case AttrStrength:
		return s.Strength
	case AttrDexterity:
		return s.Dexterity
	case AttrConstitution:
		return s.Constitution
	case AttrIntelligence:
		return s.Intelligence
	case AttrAgility:
		return s.Agility
	}
	return 0
}

// Add adds points to the named attribute.
func (s *Stats) Add(a Attribute, points int) {
	switch a {
	case AttrStrength:
		s.Strength += points
	case AttrDexterity:
		s.Dexterity += points
	case AttrConstitution:
		s.Constitution += points
	case AttrIntelligence:
		s.Intelligence += points
	case AttrAgility:
		s.Agility += points
	}
}
