package catalog

import (
	"github.com/tbranton/whisperwood/pkg/cond"
	"github.com/tbranton/whisperwood/pkg/tmpl"
)

// Default returns the compiled-in Willow Creek world: the village, the
// Whispering Wood, the goblin outpost and the spider caves. It is used
// when no catalog file is configured.
func Default() *Catalog {
	c := &Catalog{
		Items:           defaultItems(),
		Enemies:         defaultEnemies(),
		Locations:       defaultLocations(),
		NPCs:            defaultNPCs(),
		Quests:          defaultQuests(),
		StartLocationID: "starter_room",
	}
	return c
}

func defaultItems() map[string]Item {
	items := []Item{
		{
			ID: "rusty_sword", Name: "Rusty Sword", Type: ItemWeapon,
			Description: "An old, pitted blade. It has seen better days, but it still holds an edge.",
			AttackBonus: 3, Equippable: true, Slot: SlotMainHand, Value: 10,
		},
		{
			ID: "iron_sword", Name: "Iron Sword", Type: ItemWeapon,
			Description: "A dependable iron blade of solid village make.",
			AttackBonus: 6, Equippable: true, Slot: SlotMainHand, Value: 60,
		},
		{
			ID: "short_bow", Name: "Short Bow", Type: ItemWeapon,
			Description: "A compact bow of yew. Quick to draw, modest in punch.",
			AttackBonus: 5, Equippable: true, Slot: SlotMainHand, Value: 45,
		},
		{
			ID: "leather_cap", Name: "Leather Cap", Type: ItemArmor,
			Description: "A simple boiled-leather cap.",
			DefenseBonus: 1, Equippable: true, Slot: SlotHead, Value: 15,
		},
		{
			ID: "iron_helmet", Name: "Iron Helmet", Type: ItemArmor,
			Description: "A heavy helm with a nose guard. Dents included at no extra charge.",
			DefenseBonus: 3, Equippable: true, Slot: SlotHead, Value: 50,
		},
		{
			ID: "leather_armor", Name: "Leather Armor", Type: ItemArmor,
			Description: "A sturdy jerkin of hardened leather.",
			DefenseBonus: 3, Equippable: true, Slot: SlotTorso, Value: 40,
		},
		{
			ID: "studded_leather_armor", Name: "Studded Leather Armor", Type: ItemArmor,
			Description: "Leather armor reinforced with iron studs.",
			DefenseBonus: 5, Equippable: true, Slot: SlotTorso, Value: 85,
		},
		{
			ID: "spider_silk_tunic", Name: "Spider Silk Tunic", Type: ItemArmor,
			Description: "Woven from the silk of the great cave spider. Light as air, tough as mail.",
			DefenseBonus: 4, Equippable: true, Slot: SlotTorso, Value: 120,
		},
		{
			ID: "worn_leather_boots", Name: "Worn Leather Boots", Type: ItemArmor,
			Description: "Scuffed boots that have walked many miles.",
			DefenseBonus: 1, Equippable: true, Slot: SlotFeet, Value: 12,
		},
		{
			ID: "sturdy_iron_boots", Name: "Sturdy Iron Boots", Type: ItemArmor,
			Description: "Iron-shod boots that laugh at caltrops.",
			DefenseBonus: 3, Equippable: true, Slot: SlotFeet, Value: 55,
		},
		{
			ID: "rough_leather_gloves", Name: "Rough Leather Gloves", Type: ItemArmor,
			Description: "Thick gloves, good for handling thorns and goblin teeth.",
			DefenseBonus: 1, Equippable: true, Slot: SlotHands, Value: 14,
		},
		{
			ID: "wooden_buckler", Name: "Wooden Buckler", Type: ItemShield,
			Description: "A small round shield of oak planks.",
			DefenseBonus: 2, Equippable: true, Slot: SlotOffHand, Value: 25,
		},
		{
			ID: "iron_kite_shield", Name: "Iron Kite Shield", Type: ItemShield,
			Description: "A tall shield that covers from shoulder to shin.",
			DefenseBonus: 4, Equippable: true, Slot: SlotOffHand, Value: 90,
		},
		{
			ID: "health_potion", Name: "Health Potion", Type: ItemPotion,
			Description: "A swirling red liquid that knits wounds closed.",
			HealAmount: 25, Usable: true, Value: 20,
		},
		{
			ID: "potion_of_dexterity", Name: "Potion of Dexterity", Type: ItemPotion,
			Description: "A quicksilver draught that permanently sharpens reflexes.",
			StatBonus: &StatBonus{Attribute: AttrDexterity, Amount: 1},
			Usable:    true, Value: 150,
		},
		{
			ID: "crude_splint", Name: "Crude Splint", Type: ItemTool,
			Description: "Sticks and bandages for setting a badly injured limb.",
			BodyPartHeal: &BodyPartHeal{Condition: ConditionInjured},
			Usable:       true, Value: 30,
		},
		{
			ID: "goblin_ear", Name: "Goblin Ear", Type: ItemMisc,
			Description: "A grisly trophy. Proof of a goblin dealt with.",
			Value:       2,
		},
		{
			ID: "mystic_orb", Name: "Mystic Orb", Type: ItemQuestItem,
			Description: "A smooth sphere that glows faintly from within. It hums when held.",
			Value:       0,
		},
		{
			ID: "borins_lost_hammer", Name: "Borin's Forging Hammer", Type: ItemQuestItem,
			Description: "A masterwork dwarven forging hammer. Runes are stamped into the head.",
			Value:       0,
		},
		{
			ID: "goblin_totem", Name: "Goblin Totem", Type: ItemQuestItem,
			Description: "A crude fetish of bones, feathers and teeth. The goblins seem to prize it.",
			Value:       5,
		},
		{
			ID: "spider_venom_gland", Name: "Spider Venom Gland", Type: ItemQuestItem,
			Description: "A pulsing sac of potent venom, carefully extracted.",
			Value:       40,
		},
		{
			ID: "chieftain_hut_key", Name: "Crude Iron Key", Type: ItemKey,
			Description: "A heavy, roughly cast key. It looks goblin-made.",
			Unlocks:     "chieftain_hut_key", Value: 0,
		},
	}

	m := make(map[string]Item, len(items))
	for _, it := range items {
		m[it.ID] = it
	}
	return m
}

func defaultEnemies() map[string]Enemy {
	enemies := []Enemy{
		{
			ID: "goblin_scout", Name: "Goblin Scout",
			Description: "A small, wiry goblin with beady eyes and a crude dagger. It looks shifty.",
			MaxHealth:   30,
			Stats:       Stats{Strength: 5, Dexterity: 8, Constitution: 5, Intelligence: 4, Agility: 7},
			WeakSpots:   []BodyPart{PartHead},
			EvasionChance: 0.15, FleeChance: 0.3,
			Loot: []LootDrop{
				{ItemID: "goblin_ear", Chance: 0.8},
				{ItemID: "health_potion", Chance: 0.1},
				{ItemID: "leather_cap", Chance: 0.05},
				{ItemID: "worn_leather_boots", Chance: 0.05},
			},
			Gold: GoldRange{Min: 1, Max: 5}, XP: 20,
			DamageModifiers: map[BodyPart]map[AttackType]float64{
				PartTorso:    {AttackThrust: 1.5, AttackPower: 1.2},
				PartHead:     {AttackSlash: 1.5, AttackPower: 1.3},
				PartLeftArm:  {AttackSlash: 1.4},
				PartRightArm: {AttackSlash: 1.4},
				PartLeftLeg:  {AttackSlash: 1.4},
				PartRightLeg: {AttackSlash: 1.4},
			},
		},
		{
			ID: "goblin_warrior", Name: "Goblin Warrior",
			Description: "A tougher-looking goblin wielding a rusty scimitar and wearing scraps of leather armor.",
			MaxHealth:   45,
			Stats:       Stats{Strength: 7, Dexterity: 7, Constitution: 7, Intelligence: 4, Agility: 6},
			EvasionChance: 0.1, FleeChance: 0.15,
			Loot: []LootDrop{
				{ItemID: "goblin_ear", Chance: 0.9},
				{ItemID: "rusty_sword", Chance: 0.10},
				{ItemID: "leather_armor", Chance: 0.05},
				{ItemID: "leather_cap", Chance: 0.08},
			},
			Gold: GoldRange{Min: 3, Max: 10}, XP: 30,
			DamageModifiers: map[BodyPart]map[AttackType]float64{
				PartTorso:    {AttackThrust: 1.4, AttackPower: 1.2},
				PartHead:     {AttackSlash: 1.4, AttackPower: 1.3},
				PartLeftArm:  {AttackSlash: 1.3},
				PartRightArm: {AttackSlash: 1.3},
				PartLeftLeg:  {AttackSlash: 1.3},
				PartRightLeg: {AttackSlash: 1.3},
			},
		},
		{
			ID: "goblin_archer", Name: "Goblin Archer",
			Description: "A scrawny goblin with a poorly-made short bow, nocking an arrow with surprising speed.",
			MaxHealth:   40,
			Stats:       Stats{Strength: 5, Dexterity: 9, Constitution: 5, Intelligence: 4, Agility: 8},
			WeakSpots:   []BodyPart{PartHead, PartRightArm},
			EvasionChance: 0.2, FleeChance: 0.25,
			Loot: []LootDrop{
				{ItemID: "goblin_ear", Chance: 0.8},
				{ItemID: "short_bow", Chance: 0.1},
				{ItemID: "worn_leather_boots", Chance: 0.07},
			},
			Gold: GoldRange{Min: 2, Max: 8}, XP: 25,
			DamageModifiers: map[BodyPart]map[AttackType]float64{
				PartTorso:    {AttackThrust: 1.5, AttackPower: 1.2},
				PartHead:     {AttackSlash: 1.5, AttackPower: 1.3},
				PartLeftArm:  {AttackSlash: 1.4},
				PartRightArm: {AttackSlash: 1.4},
				PartLeftLeg:  {AttackSlash: 1.4},
				PartRightLeg: {AttackSlash: 1.4},
			},
		},
		{
			ID: "forest_spider", Name: "Giant Forest Spider",
			Description: "A horrifyingly large spider with hairy legs and multiple glowing eyes. It hisses menacingly.",
			MaxHealth:   60,
			Stats:       Stats{Strength: 7, Dexterity: 9, Constitution: 6, Intelligence: 3, Agility: 8},
			WeakSpots:   []BodyPart{PartHead, PartTorso},
			EvasionChance: 0.2,
			Gold:          GoldRange{Min: 0, Max: 0}, XP: 35,
			DamageModifiers: map[BodyPart]map[AttackType]float64{
				PartTorso:    {AttackThrust: 1.5, AttackSlash: 0.7, AttackPower: 1.2},
				PartHead:     {AttackThrust: 1.3, AttackSlash: 0.8, AttackPower: 1.4},
				PartLeftLeg:  {AttackSlash: 1.2},
				PartRightLeg: {AttackSlash: 1.2},
			},
		},
		{
			ID: "dire_wolf", Name: "Dire Wolf",
			Description: "A large, ferocious wolf with mangy fur and burning red eyes.",
			MaxHealth:   70,
			Stats:       Stats{Strength: 9, Dexterity: 8, Constitution: 8, Intelligence: 3, Agility: 7},
			EvasionChance: 0.15, FleeChance: 0.2,
			Gold: GoldRange{Min: 0, Max: 3}, XP: 45,
			DamageModifiers: map[BodyPart]map[AttackType]float64{
				PartTorso: {AttackSlash: 1.2, AttackThrust: 1.2, AttackPower: 1.3},
				PartHead:  {AttackSlash: 1.3, AttackThrust: 1.3, AttackPower: 1.5},
			},
		},
		{
			ID: "cave_bat", Name: "Cave Bat",
			Description: "A large, screeching bat that flits erratically through the darkness.",
			MaxHealth:   30,
			Stats:       Stats{Strength: 5, Dexterity: 10, Constitution: 4, Intelligence: 2, Agility: 9},
			EvasionChance: 0.3, FleeChance: 0.4,
			Gold: GoldRange{Min: 0, Max: 1}, XP: 12,
			DamageModifiers: map[BodyPart]map[AttackType]float64{
				PartTorso: {AttackSlash: 1.5, AttackThrust: 1.4},
				PartHead:  {AttackSlash: 1.6, AttackThrust: 1.5},
			},
		},
		{
			ID: "hobgoblin_bruiser", Name: "Hobgoblin Bruiser",
			Description: "Larger and meaner than its goblin cousins, this hobgoblin carries a hefty club and a cruel sneer.",
			MaxHealth:   100,
			Stats:       Stats{Strength: 11, Dexterity: 6, Constitution: 9, Intelligence: 5, Agility: 5},
			EvasionChance: 0.05,
			Loot: []LootDrop{
				{ItemID: "goblin_ear", Chance: 0.5},
				{ItemID: "iron_sword", Chance: 0.05},
				{ItemID: "goblin_totem", Chance: 0.2},
				{ItemID: "studded_leather_armor", Chance: 0.03},
				{ItemID: "wooden_buckler", Chance: 0.1},
			},
			Gold: GoldRange{Min: 15, Max: 30}, XP: 70,
			DamageModifiers: map[BodyPart]map[AttackType]float64{
				PartTorso: {AttackThrust: 1.2, AttackSlash: 0.9, AttackPower: 1.4},
				PartHead:  {AttackSlash: 1.2, AttackThrust: 1.1, AttackPower: 1.5},
			},
		},
		{
			ID: "giant_cave_spider", Name: "Giant Cave Spider",
			Description: "An enormous, ancient spider, its carapace like armor, its fangs dripping with venom. Its many eyes gleam with malevolent intelligence.",
			MaxHealth:   200,
			Stats:       Stats{Strength: 12, Dexterity: 10, Constitution: 10, Intelligence: 4, Agility: 8},
			WeakSpots:   []BodyPart{PartHead},
			EvasionChance: 0.1,
			Loot: []LootDrop{
				{ItemID: "spider_venom_gland", Chance: 1.0},
				{ItemID: "spider_silk_tunic", Chance: 0.5},
				{ItemID: "potion_of_dexterity", Chance: 0.3},
			},
			Gold: GoldRange{Min: 50, Max: 100}, XP: 175,
			DamageModifiers: map[BodyPart]map[AttackType]float64{
				PartTorso:    {AttackThrust: 1.5, AttackSlash: 0.6, AttackPower: 1.3},
				PartHead:     {AttackThrust: 1.2, AttackSlash: 0.7, AttackPower: 1.5},
				PartLeftLeg:  {AttackSlash: 1.3, AttackPower: 1.1},
				PartRightLeg: {AttackSlash: 1.3, AttackPower: 1.1},
			},
			Boss: true,
		},
	}

	m := make(map[string]Enemy, len(enemies))
	for _, e := range enemies {
		m[e.ID] = e
	}
	return m
}

func defaultLocations() map[string]Location {
	locations := []Location{
		{
			ID: "starter_room", Name: "Old Shack",
			Description: tmpl.Text{
				Base: "You awaken in a dusty, dilapidated shack. Sunlight streams through cracks in the wooden walls. There's a rickety table in the corner and a single wooden door leading outside.",
				Fragments: []tmpl.Fragment{
					{Text: "A Rusty Sword leans against the wall.", When: &cond.When{LocationHasItem: "rusty_sword"}},
				},
			},
			Exits:   []Exit{{Direction: "east", LocationID: "village_outskirts"}},
			ItemIDs: []string{"rusty_sword", "health_potion"},
		},
		{
			ID: "village_outskirts", Name: "Village Outskirts",
			Description: tmpl.Text{
				Base: "You stand on a worn path at the edge of Willow Creek. To the east you see the village proper. The ominous Whispering Wood looms to the north, and the path back west leads to the old shack.",
				Fragments: []tmpl.Fragment{
					{Text: "An Old Hermit sits by the path, observing you.", When: &cond.When{NPCPresent: "old_hermit"}},
				},
			},
			Exits: []Exit{
				{Direction: "east", LocationID: "village_square"},
				{Direction: "north", LocationID: "forest_entrance"},
				{Direction: "west", LocationID: "starter_room"},
			},
			NPCIDs: []string{"old_hermit"},
		},
		{
			ID: "village_square", Name: "Willow Creek Square",
			Description: tmpl.Text{
				Base: "The village square is modest but lively. A central well provides water, and a few stalls are set up. Paths lead west to the outskirts, north to a small library, and south towards Borin's Ironworks. A welcoming sign for the Sleeping Dragon Inn hangs to the east.",
				Fragments: []tmpl.Fragment{
					{Text: "Elara, a worried villager, paces near the well.", When: &cond.When{NPCPresent: "worried_villager"}},
				},
			},
			Exits: []Exit{
				{Direction: "north", LocationID: "willow_creek_library"},
				{Direction: "east", LocationID: "sleeping_dragon_inn"},
				{Direction: "west", LocationID: "village_outskirts"},
				{Direction: "south", LocationID: "blacksmith_shop"},
			},
			NPCIDs: []string{"worried_villager"},
		},
		{
			ID: "willow_creek_library", Name: "Willow Creek Library",
			Description: tmpl.Text{
				Base: "This small, dusty building houses a collection of old books and scrolls. The air smells of old paper and quiet contemplation. The only exit is south, back to the village square.",
				Fragments: []tmpl.Fragment{
					{Text: "Lyra the Healer has a small alcove here, tending to her herbs.", When: &cond.When{NPCPresent: "village_healer_lyra"}},
				},
			},
			Exits:  []Exit{{Direction: "south", LocationID: "village_square"}},
			NPCIDs: []string{"village_healer_lyra"},
		},
		{
			ID: "sleeping_dragon_inn", Name: "Sleeping Dragon Inn",
			Description: tmpl.Text{
				Base: "The common room of the Sleeping Dragon Inn is warm and filled with the smell of stew and ale. A crackling fire burns in the hearth. The exit west leads back to the village square.",
				Fragments: []tmpl.Fragment{
					{Text: "Barley, the cheerful innkeeper, polishes a mug behind the counter.", When: &cond.When{NPCPresent: "innkeeper_barley"}},
				},
			},
			Exits:  []Exit{{Direction: "west", LocationID: "village_square"}},
			NPCIDs: []string{"innkeeper_barley"},
			Inn:    true,
		},
		{
			ID: "blacksmith_shop", Name: "Borin's Ironworks",
			Description: tmpl.Text{
				Base: "The air is hot and filled with the clang of hammer on anvil. Sparks fly as the forge roars. Tools and weapons line the walls. The exit north leads back to the village square.",
				Fragments: []tmpl.Fragment{
					{Text: "Borin the Blacksmith nods at you, wiping sweat from his brow.", When: &cond.When{NPCPresent: "borin_blacksmith"}},
				},
			},
			Exits:  []Exit{{Direction: "north", LocationID: "village_square"}},
			NPCIDs: []string{"borin_blacksmith"},
			Shop:   true,
		},
		{
			ID: "forest_entrance", Name: "Whispering Wood Entrance",
			Description: tmpl.Text{
				Base: "The air grows colder as you step onto the path leading into the Whispering Wood. The trees are tall and dense, blocking out much of the sunlight. A narrow trail winds deeper north, a fainter path heads west, and a crude track leads east towards a goblin encampment. The path south leads back to the village outskirts.",
			},
			Exits: []Exit{
				{Direction: "north", LocationID: "deep_woods"},
				{Direction: "west", LocationID: "forest_west_edge"},
				{Direction: "east", LocationID: "goblin_outpost_approach"},
				{Direction: "south", LocationID: "village_outskirts"},
			},
			Spawns: []SpawnSpec{{ID: "goblin_scout", Count: 1}},
		},
		{
			ID: "deep_woods", Name: "Deep Woods",
			Description: tmpl.Text{
				Base: "You are deep within the Whispering Wood. The path is barely visible and strange shadows dance at the edge of your vision. A small, moss-covered clearing lies to the east. The path south leads back to the forest entrance.",
				Fragments: []tmpl.Fragment{
					{Text: "A faint glow emanates from a pedestal in the undergrowth.", When: &cond.When{LocationHasItem: "mystic_orb"}},
					{Text: "You spot something metallic glinting under a bush. It looks like a hammer!", When: &cond.When{LocationHasItem: "borins_lost_hammer"}},
				},
			},
			Exits: []Exit{
				{Direction: "east", LocationID: "mossy_clearing"},
				{Direction: "south", LocationID: "forest_entrance"},
			},
			ItemIDs: []string{"mystic_orb", "borins_lost_hammer"},
			Spawns: []SpawnSpec{
				{ID: "goblin_warrior", Count: 1},
				{ID: "forest_spider", Count: 1},
				{ID: "dire_wolf", Count: 1},
			},
		},
		{
			ID: "mossy_clearing", Name: "Mossy Clearing",
			Description: tmpl.Text{
				Base: "This small clearing is eerily quiet. Ancient stones are half-buried in the moss and a sense of old magic hangs in the air. The only exit is west, back into the deep woods.",
				Fragments: []tmpl.Fragment{
					{
						Text: "The Mystic Orb you placed here hums gently on its pedestal.",
						When: &cond.When{QuestStageIs: &cond.QuestStageRef{QuestID: "find_mystic_orb", Stage: 2}},
					},
				},
			},
			Exits: []Exit{{Direction: "west", LocationID: "deep_woods"}},
			OnEnter: []EnterHook{
				{
					When: &cond.When{
						QuestStageIs: &cond.QuestStageRef{QuestID: "find_mystic_orb", Stage: 1},
						HasItem:      "mystic_orb",
					},
					Effect: Effect{
						Message:      "As you hold the Mystic Orb in the clearing, it resonates with the ancient stones. You place it on a small, moss-covered pedestal. It seems to belong here.",
						TakeItems:    map[string]int{"mystic_orb": 1},
						AdvanceQuest: &QuestAdvance{QuestID: "find_mystic_orb", Stage: 2},
					},
				},
			},
		},
		{
			ID: "forest_west_edge", Name: "Forest West Edge",
			Description: tmpl.Text{
				Base: "This part of the Whispering Wood is wilder and less traveled. Dense undergrowth makes passage difficult. A narrow opening in some rocks to the north suggests a cave. The path east leads back to the forest entrance.",
				Fragments: []tmpl.Fragment{
					{Text: "Grizelda the Huntress, a rugged woman in leathers, is tracking something nearby.", When: &cond.When{NPCPresent: "grizelda_huntress"}},
				},
			},
			Exits: []Exit{
				{Direction: "east", LocationID: "forest_entrance"},
				{Direction: "north", LocationID: "dark_cave_entrance"},
			},
			NPCIDs: []string{"grizelda_huntress"},
			Spawns: []SpawnSpec{
				{ID: "dire_wolf", Count: 1},
				{ID: "goblin_scout"},
			},
		},
		{
			ID: "dark_cave_entrance", Name: "Dark Cave Entrance",
			Description: tmpl.Text{
				Base: "A chilling draft emanates from the mouth of this dark cave. The air is damp, and you hear faint skittering sounds from within. You can go south to return to the woods, or venture deeper into the darkness to the north.",
			},
			Exits: []Exit{
				{Direction: "north", LocationID: "spiders_lair"},
				{Direction: "south", LocationID: "forest_west_edge"},
			},
			Spawns: []SpawnSpec{{ID: "cave_bat", Count: 2}},
		},
		{
			ID: "spiders_lair", Name: "Spider's Lair",
			Description: tmpl.Text{
				Base: "The cave opens into a large, web-filled chamber. Thick, sticky strands cover every surface and bones litter the floor. The only way out is south, back towards the cave entrance.",
				Fragments: []tmpl.Fragment{
					{
						Text: "A monstrous Giant Cave Spider descends from the ceiling, its many eyes fixed on you!",
						When: &cond.When{BossAlive: "giant_cave_spider"},
					},
					{
						Text: "The lair is eerily quiet now, the great spider defeated. Webs still cling to everything.",
						When: &cond.When{BossDefeated: "giant_cave_spider"},
					},
				},
			},
			Exits:   []Exit{{Direction: "south", LocationID: "dark_cave_entrance"}},
			Spawns:  []SpawnSpec{{ID: "giant_cave_spider", Count: 1}},
			Dungeon: true,
			OnEnter: []EnterHook{
				{
					When:   &cond.When{BossAlive: "giant_cave_spider"},
					Effect: Effect{StartCombat: []string{"giant_cave_spider"}},
				},
			},
		},
		{
			ID: "goblin_outpost_approach", Name: "Goblin Outpost Approach",
			Description: tmpl.Text{
				Base: "The path here is littered with crude goblin refuse and poorly-made warning signs. You can hear guttural shouts and the clang of metal ahead to the east. The main forest entrance is to the west.",
			},
			Exits: []Exit{
				{Direction: "east", LocationID: "goblin_outpost"},
				{Direction: "west", LocationID: "forest_entrance"},
			},
			Spawns: []SpawnSpec{{ID: "goblin_scout", Count: 2}},
		},
		{
			ID: "goblin_outpost", Name: "Goblin Outpost",
			Description: tmpl.Text{
				Base: "This crude encampment is a mess of poorly constructed huts and a crackling bonfire. A larger hut to the north seems to be their leader's dwelling, its door barred with a heavy lock. The exit west leads back towards the forest.",
				Fragments: []tmpl.Fragment{
					{Text: "A strange Goblin Totem stands near the fire.", When: &cond.When{LocationHasItem: "goblin_totem"}},
					{Text: "A crude iron key hangs from a post by the bonfire.", When: &cond.When{LocationHasItem: "chieftain_hut_key"}},
				},
			},
			Exits: []Exit{
				{
					Direction: "north", LocationID: "goblin_chieftain_hut",
					Locked: true, KeyID: "chieftain_hut_key",
					LockMessage: "The chieftain's door is barred with a heavy goblin lock.",
				},
				{Direction: "west", LocationID: "goblin_outpost_approach"},
			},
			ItemIDs: []string{"goblin_totem", "chieftain_hut_key"},
			Spawns: []SpawnSpec{
				{ID: "goblin_warrior", Count: 2},
				{ID: "goblin_archer", Count: 1},
			},
		},
		{
			ID: "goblin_chieftain_hut", Name: "Goblin Chieftain's Hut",
			Description: tmpl.Text{
				Base: "This larger, filthier hut is clearly the domain of the goblin leader. Piles of stolen goods and bones are strewn about.",
			},
			Exits:  []Exit{{Direction: "south", LocationID: "goblin_outpost"}},
			Spawns: []SpawnSpec{{ID: "hobgoblin_bruiser", Count: 1}},
		},
	}

	m := make(map[string]Location, len(locations))
	for _, loc := range locations {
		m[loc.ID] = loc
	}
	return m
}

func defaultQuests() map[string]Quest {
	quests := []Quest{
		{
			ID: "find_mystic_orb", Title: "The Mystic Orb",
			Description: "The Old Hermit asked you to find a Mystic Orb in the Whispering Wood and take it to the Mossy Clearing.",
			GiverNPCID:  "old_hermit",
			Stages: []QuestStage{
				{
					Description:  "Find the Mystic Orb in the Whispering Wood.",
					CompleteWhen: &cond.When{HasItem: "mystic_orb"},
				},
				{Description: "Take the Mystic Orb to the Mossy Clearing and place it on the pedestal."},
				{Description: "Return to the Old Hermit to inform him of your success."},
				{Description: "Quest completed."},
			},
			Rewards: Rewards{Gold: 60, XP: 150, AttributePoints: 1, Items: []string{"health_potion"}},
		},
		{
			ID: "goblin_menace", Title: "Goblin Menace",
			Description: "Elara, a worried villager, has asked you to deal with goblins harassing people near the forest entrance.",
			GiverNPCID:  "worried_villager",
			Stages: []QuestStage{
				{Description: "Speak to Elara in Willow Creek Square about the goblin problem."},
				{
					Description: "Defeat goblins near the forest entrance and collect three of their ears as proof.",
					Target:      "goblin_scout", TargetCount: 3,
				},
				{Description: "Quest completed. The paths around Willow Creek are safer."},
			},
			Rewards: Rewards{Gold: 40, XP: 120, Items: []string{"health_potion", "leather_cap"}},
		},
		{
			ID: "borins_lost_hammer", Title: "Borin's Lost Hammer",
			Description: "Borin Ironbeard, the blacksmith, has lost his favorite forging hammer, possibly in the Deep Woods. Find it and return it to him.",
			GiverNPCID:  "borin_blacksmith",
			Stages: []QuestStage{
				{Description: "Find Borin's prized forging hammer, which he believes he lost in the Deep Woods."},
				{Description: "Quest completed. Borin's hammer sings on the anvil once more."},
			},
			Rewards: Rewards{Gold: 75, XP: 150, AttributePoints: 1, Items: []string{"iron_sword"}},
		},
		{
			ID: "spider_extermination", Title: "Spider Extermination",
			Description: "Grizelda the Huntress has asked you to kill the Giant Cave Spider in the Dark Cave and bring back its venom gland as proof.",
			GiverNPCID:  "grizelda_huntress",
			Stages: []QuestStage{
				{Description: "Slay the Giant Cave Spider in its lair within the Dark Cave and retrieve its venom gland."},
				{Description: "Quest completed. The caves are a little safer."},
			},
			Rewards: Rewards{Gold: 150, XP: 200, AttributePoints: 1, Items: []string{"potion_of_dexterity", "short_bow"}},
		},
		{
			ID: "clear_goblin_outpost", Title: "Clear the Goblin Outpost",
			Description: "Grizelda has tasked you with clearing out a goblin outpost east of the Whispering Wood entrance. Defeat their leader and retrieve their totem.",
			GiverNPCID:  "grizelda_huntress",
			Stages: []QuestStage{
				{
					Description:  "Travel to the goblin outpost east of the forest entrance.",
					CompleteWhen: &cond.When{AtLocation: "goblin_outpost"},
				},
				{
					Description: "Defeat the goblin leader and retrieve their totem.",
					Target:      "hobgoblin_bruiser", TargetCount: 1,
				},
				{Description: "Quest completed. The goblins' power is broken."},
			},
			Rewards: Rewards{Gold: 200, XP: 250, AttributePoints: 2, Items: []string{"iron_kite_shield"}},
		},
	}

	m := make(map[string]Quest, len(quests))
	for _, q := range quests {
		m[q.ID] = q
	}
	return m
}
