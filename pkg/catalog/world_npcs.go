package catalog

import "github.com/tbranton/whisperwood/pkg/cond"

func defaultNPCs() map[string]NPC {
	npcs := []NPC{
		hermitNPC(),
		elaraNPC(),
		borinNPC(),
		grizeldaNPC(),
		barleyNPC(),
		lyraNPC(),
	}

	m := make(map[string]NPC, len(npcs))
	for _, n := range npcs {
		m[n.ID] = n
	}
	return m
}

func hermitNPC() NPC {
	return NPC{
		ID: "old_hermit", Name: "Old Hermit",
		Description:  "A wizened old man with piercing eyes. He seems to know more than he lets on.",
		InitialStage: "start",
		Dialogue: map[string]DialogueStage{
			"start": {
				Text: []DialogueText{
					{
						When: &cond.When{QuestCompleted: "find_mystic_orb"},
						Text: `"The woods are calmer, thanks to you. But I sense a new disquiet, a shadow stirring..."`,
					},
					{
						When: &cond.When{QuestStageIs: &cond.QuestStageRef{QuestID: "find_mystic_orb", Stage: 2}},
						Text: `"You've returned. I felt a shift in the woods. Did you place the Orb in the Mossy Clearing?"`,
					},
					{
						Text: `The hermit looks you up and down. "Another wanderer, eh? The Whispering Wood to the north is dangerous. Best be prepared if you venture there."`,
					},
				},
				Choices: []DialogueChoice{
					{
						Text:      "Yes, I placed the Orb. The clearing felt... peaceful.",
						NextStage: "orb_placed_confirm",
						When:      &cond.When{QuestStageIs: &cond.QuestStageRef{QuestID: "find_mystic_orb", Stage: 2}},
					},
					{
						Text:      "Ask about the woods.",
						NextStage: "woods_info",
						When:      &cond.When{QuestNotStarted: "find_mystic_orb"},
					},
					{
						Text:      "Ask if he needs help.",
						NextStage: "ask_help",
						When:      &cond.When{QuestNotStarted: "find_mystic_orb"},
					},
					{Text: "Leave.", ClosesDialogue: true},
				},
			},
			"woods_info": {
				Text: []DialogueText{{
					Text: `"The Whispering Wood... they say ancient things stir within. Goblins, and worse. If you seek something, tread carefully."`,
				}},
				Choices: []DialogueChoice{
					{Text: "Anything else?", NextStage: "start"},
					{Text: "Leave.", ClosesDialogue: true},
				},
			},
			"ask_help": {
				Text: []DialogueText{{
					Text: `"Help? Heh. Perhaps. There's a Mystic Orb hidden deep in the woods. Said to have calming properties. If you were to find it and bring it to the Mossy Clearing, it might appease the restless spirits there. What say you?"`,
				}},
				Choices: []DialogueChoice{
					{Text: "I'll find the Mystic Orb.", NextStage: "accept_orb_quest"},
					{Text: "I can't right now.", NextStage: "start"},
				},
			},
			"accept_orb_quest": {
				Text: []DialogueText{{
					Text: `The hermit nods. "Good. The spirits of the wood will thank you, as will I."`,
				}},
				Effect:        &Effect{StartQuest: "find_mystic_orb"},
				AutoAdvanceTo: "accept_orb_quest_details",
			},
			"accept_orb_quest_details": {
				Text: []DialogueText{{
					Text: `"The orb is said to be in the deepest parts of the woods. Look for a pedestal. Then take it to the Mossy Clearing. Be safe."`,
				}},
				EndsDialogue: true,
			},
			"orb_placed_confirm": {
				Text: []DialogueText{{
					Text: `"Excellent. That was a vital task. The balance, for a time, is restored there. Take this for your troubles."`,
				}},
				Effect:       &Effect{AdvanceQuest: &QuestAdvance{QuestID: "find_mystic_orb", Stage: 3}},
				EndsDialogue: true,
			},
		},
		RelatedQuestIDs: []string{"find_mystic_orb"},
	}
}

func elaraNPC() NPC {
	return NPC{
		ID: "worried_villager", Name: "Worried Villager (Elara)",
		Description:  "A young woman named Elara, wringing her hands and looking distressed.",
		InitialStage: "start",
		Dialogue: map[string]DialogueStage{
			"start": {
				Text: []DialogueText{
					{
						When: &cond.When{QuestCompleted: "goblin_menace"},
						Text: `"Thank you again for dealing with those goblins. The paths are much safer."`,
					},
					{
						When: &cond.When{
							QuestStageIs: &cond.QuestStageRef{QuestID: "goblin_menace", Stage: 1},
							HasItem:      "goblin_ear",
						},
						Text: `"Oh, you found... one of *their* ears? That means you've dealt with some of them! Did you get enough?"`,
					},
					{
						Text: `"Oh, brave traveler! Goblins have been spotted near the forest entrance, harassing anyone who passes. My son was supposed to return from gathering herbs hours ago! Will you help?"`,
					},
				},
				Choices: []DialogueChoice{
					{
						Text:      "I'll deal with the goblins.",
						NextStage: "accept_goblin_quest",
						When:      &cond.When{QuestNotStarted: "goblin_menace"},
					},
					{
						Text:      "Here are the goblin ears you wanted.",
						NextStage: "ears_delivered",
						When: &cond.When{
							QuestStageIs: &cond.QuestStageRef{QuestID: "goblin_menace", Stage: 1},
							HasItem:      "goblin_ear",
						},
					},
					{Text: "I can't help right now.", ClosesDialogue: true},
				},
			},
			"accept_goblin_quest": {
				Text: []DialogueText{{
					Text: `Elara sighs in relief. "Oh, thank you! Be careful, they are vicious!"`,
				}},
				Effect: &Effect{
					StartQuest:   "goblin_menace",
					AdvanceQuest: &QuestAdvance{QuestID: "goblin_menace", Stage: 1},
				},
				AutoAdvanceTo: "accept_goblin_quest_details",
			},
			"accept_goblin_quest_details": {
				Text: []DialogueText{{
					Text: `"Please, defeat the goblins near the forest entrance. Bring me back proof, perhaps... some of their ears, as gruesome as that sounds. Three should do. It's the only way we'll know it's safe."`,
				}},
				EndsDialogue: true,
			},
			"ears_delivered": {
				Text: []DialogueText{{
					Text: `"Thank you, brave soul. Willow Creek is safer because of you. Please, take this as a token of my gratitude."`,
				}},
				Effect: &Effect{
					TakeItems:    map[string]int{"goblin_ear": 3},
					AdvanceQuest: &QuestAdvance{QuestID: "goblin_menace", Stage: 2},
				},
				EndsDialogue: true,
			},
		},
		RelatedQuestIDs: []string{"goblin_menace"},
	}
}

func borinNPC() NPC {
	return NPC{
		ID: "borin_blacksmith", Name: "Borin Ironbeard",
		Description:  "A stout dwarf with a magnificent beard, soot-stained apron, and powerful arms. He looks busy but acknowledges your presence.",
		InitialStage: "greet",
		Vendor:       true,
		Sells: []string{
			"iron_sword", "leather_armor", "health_potion", "iron_helmet",
			"crude_splint", "wooden_buckler", "short_bow", "studded_leather_armor",
			"sturdy_iron_boots", "rough_leather_gloves", "iron_kite_shield",
		},
		BuysTypes: []ItemType{ItemWeapon, ItemArmor, ItemMisc, ItemShield, ItemTool},
		Dialogue: map[string]DialogueStage{
			"greet": {
				Text: []DialogueText{
					{
						When: &cond.When{QuestCompleted: "borins_lost_hammer"},
						Text: `"Back again? Thanks for finding me hammer, she's singing sweetly on the anvil now! Need anything else?"`,
					},
					{
						When: &cond.When{
							QuestStageIs: &cond.QuestStageRef{QuestID: "borins_lost_hammer", Stage: 0},
							HasItem:      "borins_lost_hammer",
						},
						Text: `"By my beard, is that... me hammer?!"`,
					},
					{
						When: &cond.When{QuestStageIs: &cond.QuestStageRef{QuestID: "borins_lost_hammer", Stage: 0}},
						Text: `"Blast and botheration! Can't find me favorite hammer anywhere! Without it, me work suffers."`,
					},
					{
						Text: `"Welcome to Borin's Ironworks, traveler. Need a sturdy blade, some mending, or perhaps you're looking to trade?"`,
					},
				},
				Choices: []DialogueChoice{
					{Text: "What do you have for sale?", NextStage: "shop_talk"},
					{Text: "I'd like to sell some goods.", NextStage: "sell_talk"},
					{
						Text:      "A small job? Tell me more.",
						NextStage: "hammer_quest_intro",
						When:      &cond.When{QuestNotStarted: "borins_lost_hammer"},
					},
					{
						Text:      "I found this hammer. Is it yours?",
						NextStage: "return_hammer",
						When: &cond.When{
							QuestStageIs: &cond.QuestStageRef{QuestID: "borins_lost_hammer", Stage: 0},
							HasItem:      "borins_lost_hammer",
						},
					},
					{Text: "Ask about his work.", NextStage: "work_chat"},
					{Text: "Leave.", ClosesDialogue: true},
				},
			},
			"shop_talk": {
				Text: []DialogueText{{
					Text: `"Aye, got some fine wares. Quality dwarven steel, none of that flimsy stuff. Have a look and tell me what catches yer eye."`,
				}},
				Choices: []DialogueChoice{{Text: "Interesting. (Back to options)", NextStage: "greet"}},
			},
			"sell_talk": {
				Text: []DialogueText{{
					Text: `"Got something to part with, eh? I'm always interested in decent weapons, armor, shields, and sometimes other useful bits."`,
				}},
				Choices: []DialogueChoice{{Text: "Good to know. (Back to options)", NextStage: "greet"}},
			},
			"work_chat": {
				Text: []DialogueText{{
					Text: `"Keeps me busy, this forge. Always something to hammer out. Quality dwarven steel, none of that flimsy human stuff!" He chuckles.`,
				}},
				Choices: []DialogueChoice{
					{Text: "Back to other options.", NextStage: "greet"},
					{Text: "Leave.", ClosesDialogue: true},
				},
			},
			"hammer_quest_intro": {
				Text: []DialogueText{{
					Text: `"My best forging hammer! Vanished! Think I might've left it in the Deep Woods when I was out gathering special ironwood. If you could find it, I'd be mighty grateful. There's a good bit of coin in it for ya."`,
				}},
				Choices: []DialogueChoice{
					{Text: "I'll find your hammer, Borin.", NextStage: "accept_hammer_quest"},
					{Text: "Sorry, can't help with that now.", NextStage: "greet"},
				},
			},
			"accept_hammer_quest": {
				Text: []DialogueText{{
					Text: `"Bless yer heart! It's a dwarven make, can't miss it. Probably near where the path gets tricky in the Deep Woods."`,
				}},
				Effect:       &Effect{StartQuest: "borins_lost_hammer"},
				EndsDialogue: true,
			},
			"return_hammer": {
				Text: []DialogueText{{
					Text: `"She sings on the anvil once more! My eternal thanks, friend. Here's your reward, as promised!"`,
				}},
				Effect: &Effect{
					TakeItems:    map[string]int{"borins_lost_hammer": 1},
					AdvanceQuest: &QuestAdvance{QuestID: "borins_lost_hammer", Stage: 1},
				},
				EndsDialogue: true,
			},
		},
		RelatedQuestIDs: []string{"borins_lost_hammer"},
	}
}

func grizeldaNPC() NPC {
	return NPC{
		ID: "grizelda_huntress", Name: "Grizelda the Huntress",
		Description:  "A stern-faced woman with keen eyes, dressed in practical leathers. A longbow is slung over her shoulder.",
		InitialStage: "greet",
		Dialogue: map[string]DialogueStage{
			"greet": {
				Text: []DialogueText{
					{
						When: &cond.When{QuestCompleted: "spider_extermination"},
						Text: `"The cave is quieter now, thanks to you. Good hunting out there."`,
					},
					{
						When: &cond.When{
							QuestStageIs: &cond.QuestStageRef{QuestID: "spider_extermination", Stage: 0},
							HasItem:      "spider_venom_gland",
						},
						Text: `"You smell of the cave... and spider. Did you manage to deal with that monstrous arachnid?"`,
					},
					{
						When: &cond.When{QuestCompleted: "clear_goblin_outpost"},
						Text: `"The eastern path is clearer since you thinned out those goblins. Well done."`,
					},
					{
						Text: `"You're new to these parts of the woods. Watch your step; it's wilder here. I'm Grizelda."`,
					},
				},
				Choices: []DialogueChoice{
					{Text: "What do you hunt around here?", NextStage: "hunt_info"},
					{Text: "Any dangerous creatures I should know about?", NextStage: "danger_info"},
					{
						Text:      "I dealt with the Giant Cave Spider. Here's its venom gland.",
						NextStage: "return_venom_gland",
						When: &cond.When{
							QuestStageIs: &cond.QuestStageRef{QuestID: "spider_extermination", Stage: 0},
							HasItem:      "spider_venom_gland",
						},
					},
					{
						Text:      "About that goblin outpost...",
						NextStage: "outpost_status",
						When:      &cond.When{QuestStageIs: &cond.QuestStageRef{QuestID: "clear_goblin_outpost", Stage: 1}},
					},
					{Text: "Leave.", ClosesDialogue: true},
				},
			},
			"hunt_info": {
				Text: []DialogueText{{
					Text: `"Mostly dire wolves and the occasional overgrown boar. Keeps the beasts from getting too bold and provides good pelts. And those goblins to the east are a constant headache."`,
				}},
				Choices: []DialogueChoice{
					{Text: "Bigger things?", NextStage: "danger_info"},
					{Text: "Goblins to the east?", NextStage: "outpost_intro"},
					{Text: "Back.", NextStage: "greet"},
				},
			},
			"danger_info": {
				Text: []DialogueText{{
					Text: `"Aye. There's a dark cave north of here. Lately, a Giant Cave Spider has taken up residence. Vicious thing. Its venom is potent. If you're feeling brave enough to take it down, I'd pay well for its venom gland. Helps with making strong antidotes."`,
				}},
				Choices: []DialogueChoice{
					{
						Text:      "I'll take care of that spider for you.",
						NextStage: "accept_spider_quest",
						When:      &cond.When{QuestNotStarted: "spider_extermination"},
					},
					{Text: "A giant spider? No thanks.", NextStage: "greet"},
				},
			},
			"outpost_intro": {
				Text: []DialogueText{{
					Text: `"A nasty band of them have set up a camp to the east of the main forest entrance. They're getting bolder, raiding anyone who gets too close. Someone needs to clear them out before they cause serious trouble."`,
				}},
				Choices: []DialogueChoice{
					{
						Text:      "I can clear out the goblin outpost.",
						NextStage: "accept_outpost_quest",
						When:      &cond.When{QuestNotStarted: "clear_goblin_outpost"},
					},
					{Text: "I'll keep an eye out.", NextStage: "greet"},
				},
			},
			"accept_spider_quest": {
				Text: []DialogueText{{
					Text: `"Ha! Got guts, I'll give ya that. Find its lair in the Dark Cave to the north. Bring me the venom gland as proof. Don't get yourself killed."`,
				}},
				Effect:       &Effect{StartQuest: "spider_extermination"},
				EndsDialogue: true,
			},
			"accept_outpost_quest": {
				Text: []DialogueText{{
					Text: `"Good. That'll make the woods safer for everyone. Their main camp is east of the forest entrance. Taking out their leader should scatter them. Look for a crude totem too, they seem to draw power from it."`,
				}},
				Effect:       &Effect{StartQuest: "clear_goblin_outpost"},
				EndsDialogue: true,
			},
			"return_venom_gland": {
				Text: []DialogueText{{
					Text: `"Impressive work. This venom gland is perfect. Here's your payment. You've made the caves a bit safer."`,
				}},
				Effect: &Effect{
					TakeItems:    map[string]int{"spider_venom_gland": 1},
					AdvanceQuest: &QuestAdvance{QuestID: "spider_extermination", Stage: 1},
				},
				EndsDialogue: true,
			},
			"outpost_status": {
				Text: []DialogueText{
					{
						When: &cond.When{
							QuestStageIs: &cond.QuestStageRef{QuestID: "clear_goblin_outpost", Stage: 1},
							HasItem:      "goblin_totem",
						},
						Text: `"Ah, you have their totem! Excellent. That should disrupt them significantly. Well done."`,
					},
					{
						Text: `"The outpost still stands. Their leader is likely in the largest hut. Taking them out and grabbing any focus of their power, like a totem, should do the trick."`,
					},
				},
				Choices: []DialogueChoice{
					{
						Text:      "I have the Goblin Totem.",
						NextStage: "return_totem",
						When: &cond.When{
							QuestStageIs: &cond.QuestStageRef{QuestID: "clear_goblin_outpost", Stage: 1},
							HasItem:      "goblin_totem",
						},
					},
					{Text: "Still working on it.", NextStage: "greet"},
				},
			},
			"return_totem": {
				Text: []DialogueText{{
					Text: `"That totem was key. Their power is broken. Good work. Here's your reward."`,
				}},
				Effect: &Effect{
					TakeItems:    map[string]int{"goblin_totem": 1},
					AdvanceQuest: &QuestAdvance{QuestID: "clear_goblin_outpost", Stage: 2},
				},
				EndsDialogue: true,
			},
		},
		RelatedQuestIDs: []string{"spider_extermination", "clear_goblin_outpost"},
	}
}

func barleyNPC() NPC {
	return NPC{
		ID: "innkeeper_barley", Name: "Barley Buttercup",
		Description:  "The innkeeper of the Sleeping Dragon Inn, a cheerful halfling with a welcoming smile.",
		InitialStage: "greet",
		Dialogue: map[string]DialogueStage{
			"greet": {
				Text: []DialogueText{{
					Text: `"Welcome to the Sleeping Dragon, friend! Best beds and ale in Willow Creek. What can I get for ya?"`,
				}},
				Choices: []DialogueChoice{
					{Text: "I'd like to rent a room. (10 Gold)", NextStage: "rent_room_confirm"},
					{Text: "Any news or rumors?", NextStage: "rumors"},
					{Text: "Just looking around. (Leave)", ClosesDialogue: true},
				},
			},
			"rent_room_confirm": {
				Text: []DialogueText{
					{
						When: &cond.When{MinGold: 10},
						Text: `"Excellent choice! That'll be 10 gold for a good night's rest. Shall I prepare a room?"`,
					},
					{
						Text: `"A room is 10 gold, friend. Looks like you're a bit short at the moment."`,
					},
				},
				Choices: []DialogueChoice{
					{
						Text:      "Yes, please. (Pay 10 Gold)",
						NextStage: "rent_room_rest",
						When:      &cond.When{MinGold: 10},
					},
					{Text: "Maybe later.", NextStage: "greet"},
				},
			},
			"rent_room_rest": {
				Text: []DialogueText{{
					Text: `"Right this way... sleep well, friend."`,
				}},
				Effect:       &Effect{Gold: -10, Rest: true},
				EndsDialogue: true,
			},
			"rumors": {
				Text: []DialogueText{{
					Text: `"Well, Grizelda was in earlier, muttering about some giant spider in the caves west of the wood. And those goblins east of the forest have been getting bolder. Sounds like work for an adventurer!"`,
				}},
				Choices: []DialogueChoice{{Text: "Interesting. (Back to options)", NextStage: "greet"}},
			},
		},
	}
}

func lyraNPC() NPC {
	return NPC{
		ID: "village_healer_lyra", Name: "Lyra the Healer",
		Description:  "Lyra is a kind-faced woman with gentle eyes, her small alcove in the library filled with the scent of dried herbs and poultices.",
		InitialStage: "greet",
		Healer:       true,
		TreatCost:    25,
		Dialogue: map[string]DialogueStage{
			// Treatment choices for severely injured parts are added
			// dynamically by the dialogue engine.
			"greet": {
				Text: []DialogueText{{
					Text: `"Greetings. May your path be peaceful. I am Lyra. If you ever suffer grievous wounds, I can offer my aid."`,
				}},
				Choices: []DialogueChoice{
					{Text: "What do you offer?", NextStage: "services_explained"},
					{Text: "No treatment needed now. (Leave)", ClosesDialogue: true},
				},
			},
			"services_explained": {
				Text: []DialogueText{{
					Text: `"I can mend bones, stitch deep gashes, and draw out the worst of infections. If a part of you is severely injured, I can usually improve its condition so it can heal naturally with rest, or with potions. Each such treatment costs 25 gold for the herbs and supplies."`,
				}},
				Choices: []DialogueChoice{{Text: "Understood. (Back to options)", NextStage: "greet"}},
			},
		},
	}
}
