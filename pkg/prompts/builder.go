package prompts

import (
	"fmt"
	"strings"

	"github.com/tbranton/whisperwood/pkg/catalog"
	"github.com/tbranton/whisperwood/pkg/chat"
	"github.com/tbranton/whisperwood/pkg/cond"
	"github.com/tbranton/whisperwood/pkg/state"
)

// Builder constructs the translator's message array. It separates
// prompt assembly from the services that call the model.
type Builder struct {
	catalog *catalog.Catalog
	gs      *state.GameState
	input   string
}

// New creates a new prompt builder.
func New() *Builder {
	return &Builder{}
}

// WithCatalog sets the content catalog used to describe the world.
func (b *Builder) WithCatalog(c *catalog.Catalog) *Builder {
	b.catalog = c
	return b
}

// WithGameState sets the session being played.
func (b *Builder) WithGameState(gs *state.GameState) *Builder {
	b.gs = gs
	return b
}

// WithPlayerInput sets the raw command typed by the player.
func (b *Builder) WithPlayerInput(input string) *Builder {
	b.input = input
	return b
}

// Build constructs the final message array for the translator model.
func (b *Builder) Build() ([]chat.ChatMessage, error) {
	if b.catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if b.gs == nil {
		return nil, fmt.Errorf("gamestate is required")
	}
	if strings.TrimSpace(b.input) == "" {
		return nil, fmt.Errorf("player input is required")
	}

	return []chat.ChatMessage{
		{Role: chat.ChatRoleSystem, Content: TranslatorSystemPrompt},
		{Role: chat.ChatRoleSystem, Content: b.contextBlock()},
		{Role: chat.ChatRoleUser, Content: b.input},
	}, nil
}

// contextBlock summarizes everything the player can currently act on.
// Only ids and names go in; descriptions would waste the window.
func (b *Builder) contextBlock() string {
	gs := b.gs
	c := b.catalog
	var sb strings.Builder

	sb.WriteString("GAME CONTEXT\n")

	loc := c.Locations[gs.CurrentLocationID]
	ls := gs.CurrentLocation()
	fmt.Fprintf(&sb, "Location: %s (%s)\n", loc.Name, loc.ID)

	if len(loc.Exits) > 0 {
		sb.WriteString("Exits:")
		for _, exit := range loc.Exits {
			fmt.Fprintf(&sb, " %s->%s", exit.Direction, exit.LocationID)
			if exit.Locked && !ls.Unlocked(exit.Direction) {
				sb.WriteString(" (locked)")
			}
		}
		sb.WriteString("\n")
	}

	if len(ls.ItemIDs) > 0 {
		sb.WriteString("Items here:")
		for _, id := range ls.ItemIDs {
			if item, ok := c.Items[id]; ok {
				fmt.Fprintf(&sb, " %q", item.Name)
			}
		}
		sb.WriteString("\n")
	}

	if len(ls.NPCIDs) > 0 {
		sb.WriteString("People here:")
		for _, id := range ls.NPCIDs {
			if npc, ok := c.NPCs[id]; ok {
				fmt.Fprintf(&sb, " %q (id %s)", npc.Name, npc.ID)
			}
		}
		sb.WriteString("\n")
	}

	if len(gs.Player.Inventory) > 0 {
		sb.WriteString("Inventory:")
		for _, id := range gs.Player.Inventory {
			if item, ok := c.Items[id]; ok {
				fmt.Fprintf(&sb, " %q", item.Name)
			}
		}
		sb.WriteString("\n")
	}
	if len(gs.Player.Equipped) > 0 {
		sb.WriteString("Equipped:")
		for slot, id := range gs.Player.Equipped {
			if item, ok := c.Items[id]; ok {
				fmt.Fprintf(&sb, " %s=%q", slot, item.Name)
			}
		}
		sb.WriteString("\n")
	}

	if gs.InCombat() {
		sb.WriteString("IN COMBAT. Enemies:")
		for _, enemy := range gs.Combat.Remaining() {
			marker := ""
			if enemy.CombatID == gs.Combat.FocusID {
				marker = " (current target)"
			}
			fmt.Fprintf(&sb, " %q combat id %s%s", enemy.Name, enemy.CombatID, marker)
		}
		sb.WriteString("\n")
	}

	if gs.InDialogue() {
		npc := c.NPCs[gs.DialogueNPCID]
		fmt.Fprintf(&sb, "IN DIALOGUE with %q.", npc.Name)
		if stage, ok := npc.Dialogue[gs.DialogueStageID]; ok {
			sb.WriteString(" Choices:")
			i := 0
			for _, choice := range stage.Choices {
				if choice.When != nil && !cond.Evaluate(*choice.When, gs) {
					continue
				}
				fmt.Fprintf(&sb, " [%d] %q", i, choice.Text)
				i++
			}
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Player: level %d, %d/%d HP, %d gold, %d attribute points\n",
		gs.Player.Level, gs.Player.Health, gs.Player.MaxHealth, gs.Player.Gold, gs.Player.AttributePoints)

	return sb.String()
}
