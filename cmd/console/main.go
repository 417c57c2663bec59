package main

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tbranton/whisperwood/pkg/state"
)

type ConsoleConfig struct {
	APIBaseURL string
	Timeout    time.Duration
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	cfg := &ConsoleConfig{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
		Timeout:    60 * time.Second,
	}

	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	if !testConnection(client, cfg.APIBaseURL) {
		fmt.Fprintf(os.Stderr, "Could not connect to API. Please ensure the API is running.\nTry: docker-compose up -d\n")
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Enter a save code to resume, or press Enter for a new game: ")
	code, _ := reader.ReadString('\n')
	code = strings.TrimSpace(code)

	var gs *state.GameState
	var err error

	if code != "" {
		gs, err = restoreSession(client, cfg.APIBaseURL, code)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to restore session: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Print("Name your adventurer: ")
		name, _ := reader.ReadString('\n')
		name = strings.TrimSpace(name)
		if name == "" {
			name = "Adventurer"
		}
		name = cases.Title(language.English).String(name)

		gs, err = createSession(client, cfg.APIBaseURL, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create session: %v\n", err)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(NewConsoleUI(cfg, client, gs),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
