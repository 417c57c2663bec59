package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/tbranton/whisperwood/pkg/catalog"
	"github.com/tbranton/whisperwood/pkg/state"
)

const PlaceHolderText = "What do you do?"

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config       *ConsoleConfig
	client       *http.Client
	gameState    *state.GameState
	chatViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int
	err          error
	loading      bool

	// Rendered log lines, rebuilt per width change
	log []state.Message

	// Quit confirmation state
	showQuitModal bool

	// Progress bar state
	progressTick int
}

type commandResponseMsg struct {
	response *CommandResponse
	err      error
}

type saveCodeMsg struct {
	code string
	err  error
}

type progressTickMsg struct{}

var (
	chatPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	combatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")) // salmon

	dialogueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")) // purple

	questStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")). // gold
			Bold(true)

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client, gs *state.GameState) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 500
	ta.SetWidth(50)
	ta.SetHeight(2)
	ta.ShowLineNumbers = false

	chatVp := viewport.New(50, 20)
	chatVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ConsoleUI{
		config:       cfg,
		client:       client,
		gameState:    gs,
		textarea:     ta,
		chatViewport: chatVp,
		metaViewport: metaVp,
		log:          gs.Messages,
	}
}

func styleFor(kind string) lipgloss.Style {
	switch kind {
	case state.MsgCombat, state.MsgBodyCondition:
		return combatStyle
	case state.MsgDialogue:
		return dialogueStyle
	case state.MsgQuest, state.MsgLevelUp:
		return questStyle
	case state.MsgError:
		return errorStyle
	case state.MsgSystem, state.MsgAssist:
		return promptStyle
	default:
		return gameStyle
	}
}

// writeChatContent rebuilds the chat panel from the message log for the
// current viewport width.
func (m *ConsoleUI) writeChatContent() {
	chatWidth := m.chatViewport.Width - 6 // Account for left(3) + right(3) padding
	if chatWidth < 10 {
		chatWidth = 10
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("WHISPERWOOD") + "\n\n")
	content.WriteString("Type what you want to do and press Enter.\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", chatWidth)) + "\n\n")

	for _, msg := range m.log {
		wrapped := wordwrap.String(msg.Text, chatWidth)
		if msg.Kind == "you" {
			content.WriteString(userStyle.Render(wrapped) + "\n\n")
			continue
		}
		content.WriteString(styleFor(msg.Kind).Render(wrapped) + "\n\n")
	}

	if m.loading {
		content.WriteString(m.renderProgressBar())
	}

	m.chatViewport.SetContent(content.String())
	m.chatViewport.GotoBottom()
}

func (m *ConsoleUI) writeMetadata() string {
	gs := m.gameState
	p := gs.Player
	var content strings.Builder

	content.WriteString(titleStyle.Render(strings.ToUpper(p.Name)) + "\n\n")
	content.WriteString(fmt.Sprintf("Level %d  (%d/%d XP)\n", p.Level, p.XP, p.XPToNextLevel))
	content.WriteString(fmt.Sprintf("HP: %d/%d\n", p.Health, p.MaxHealth))
	content.WriteString(fmt.Sprintf("Gold: %d\n", p.Gold))
	if p.AttributePoints > 0 {
		content.WriteString(questStyle.Render(fmt.Sprintf("Points to spend: %d", p.AttributePoints)) + "\n")
	}
	content.WriteString("\n")

	content.WriteString("Body:\n")
	for _, part := range catalog.BodyParts {
		bp := p.BodyParts[part]
		if bp == nil {
			continue
		}
		line := fmt.Sprintf("• %s: %s", part, bp.Condition)
		if bp.Condition == catalog.ConditionHealthy {
			content.WriteString(line + "\n")
		} else {
			content.WriteString(combatStyle.Render(line) + "\n")
		}
	}
	content.WriteString("\n")

	if gs.InCombat() {
		content.WriteString(combatStyle.Render("IN COMBAT") + "\n")
		for _, enemy := range gs.Combat.Remaining() {
			marker := " "
			if enemy.CombatID == gs.Combat.FocusID {
				marker = "▶"
			}
			content.WriteString(fmt.Sprintf("%s %s %d/%d\n", marker, enemy.Name, enemy.Health, enemy.MaxHealth))
		}
		content.WriteString("\n")
	}

	if len(gs.ActiveQuests) > 0 {
		content.WriteString("Quests:\n")
		for questID := range gs.ActiveQuests {
			content.WriteString(fmt.Sprintf("• %s\n", questID))
		}
		content.WriteString("\n")
	}

	content.WriteString("Commands:\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• Enter: Send\n")
	content.WriteString("• /save: Save code\n")
	content.WriteString("• /help: Help\n")

	return content.String()
}

func (m ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.chatViewport, vpCmd = m.chatViewport.Update(msg)
		m.textarea, tiCmd = m.textarea.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(tiCmd, vpCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		chatWidth := int(float64(m.width)*0.72) - 4
		metaWidth := m.width - chatWidth - 6

		m.chatViewport.Width = chatWidth - 2
		m.chatViewport.Height = m.height - 7
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.textarea.SetWidth(chatWidth - 4)

		m.ready = true
		m.writeChatContent()
		m.metaViewport.SetContent(m.writeMetadata())

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			if m.loading {
				return m, nil
			}

			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}

			if strings.HasPrefix(input, "/") {
				return m.handleCommand(input)
			}

			m.textarea.Reset()
			m.loading = true
			m.progressTick = 0

			m.log = append(m.log, state.Message{Text: "You: " + input, Kind: "you"})
			m.writeChatContent()

			return m, tea.Batch(m.runCommand(input), progressTick())
		}

	case commandResponseMsg:
		m.loading = false
		if msg.err != nil {
			m.log = append(m.log, state.Message{Text: "Error: " + msg.err.Error(), Kind: state.MsgError})
		} else {
			m.gameState = msg.response.GameState
			m.log = append(m.log, msg.response.Messages...)
			m.metaViewport.SetContent(m.writeMetadata())
		}
		m.writeChatContent()
		return m, nil

	case saveCodeMsg:
		m.loading = false
		if msg.err != nil {
			m.log = append(m.log, state.Message{Text: "Error: " + msg.err.Error(), Kind: state.MsgError})
		} else {
			text := "Save code (copied to clipboard):\n" + msg.code
			if err := clipboard.WriteAll(msg.code); err != nil {
				text = "Save code:\n" + msg.code
			}
			m.log = append(m.log, state.Message{Text: text, Kind: state.MsgSystem})
		}
		m.writeChatContent()
		return m, nil

	case progressTickMsg:
		if m.loading {
			m.progressTick++
			m.writeChatContent()
			return m, progressTick()
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.chatViewport, vpCmd = m.chatViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

func (m ConsoleUI) handleCommand(input string) (tea.Model, tea.Cmd) {
	cmd := strings.ToLower(strings.TrimSpace(input))
	m.textarea.Reset()

	switch cmd {
	case "/help":
		helpText := `Commands:
• /save - Export a save code
• /help - Show this help
• Ctrl+C - Quit game

How to play:
• Type your actions in plain words: "go east", "pick up the sword", "attack the goblin's head"
• Talk to people, take on quests, and watch your footing in the deep woods`
		m.log = append(m.log, state.Message{Text: helpText, Kind: state.MsgSystem})
		m.writeChatContent()
		return m, nil

	case "/save":
		m.loading = true
		m.progressTick = 0
		return m, tea.Batch(m.fetchSaveCode(), progressTick())
	}

	m.log = append(m.log, state.Message{Text: "Unknown command. Try /help.", Kind: state.MsgError})
	m.writeChatContent()
	return m, nil
}

func (m ConsoleUI) runCommand(input string) tea.Cmd {
	return func() tea.Msg {
		resp, err := sendCommand(m.client, m.config.APIBaseURL, m.gameState.ID, input)
		return commandResponseMsg{resp, err}
	}
}

func (m ConsoleUI) fetchSaveCode() tea.Cmd {
	return func() tea.Msg {
		code, err := getSaveCode(m.client, m.config.APIBaseURL, m.gameState.ID)
		return saveCodeMsg{code, err}
	}
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Unsaved progress is kept on the server for a day.\nExport a save code with /save to keep it longer.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue"))

	modal := modalStyle.Width(56).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	chatWidth := int(float64(m.width)*0.72) - 4
	metaWidth := m.width - chatWidth - 6

	chatPanel := chatPanelStyle.Width(chatWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.chatViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", chatWidth-4)),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, chatPanel, metaPanel)
}

// renderProgressBar creates an animated progress bar for loading states.
func (m ConsoleUI) renderProgressBar() string {
	usable := m.chatViewport.Width - 6
	if usable <= 0 {
		usable = 30
	}
	if usable > 80 {
		usable = 80
	} else if usable < 10 {
		usable = 10
	}

	const totalFrames = 40
	frame := m.progressTick % totalFrames
	filled := (frame * usable) / totalFrames

	var bar strings.Builder
	for i := 0; i < usable; i++ {
		if i < filled {
			bar.WriteString("█")
		} else if i == filled && frame%4 < 2 {
			bar.WriteString("▓")
		} else {
			bar.WriteString("░")
		}
	}
	return separatorStyle.Render(bar.String())
}

// progressTick creates a command that sends a progress tick message.
func progressTick() tea.Cmd {
	return tea.Tick(time.Millisecond*200, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}
