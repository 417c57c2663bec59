package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/tbranton/whisperwood/pkg/state"
)

// CommandResponse matches the API response for a player command.
type CommandResponse struct {
	Messages  []state.Message  `json:"messages"`
	GameState *state.GameState `json:"game_state"`
}

// SaveCodeResponse matches the API response for a save code export.
type SaveCodeResponse struct {
	Code string `json:"code"`
}

func testConnection(client *http.Client, baseURL string) bool {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()
	return resp.StatusCode == http.StatusOK
}

func decodeOrError(body []byte, statusCode, wantStatus int, v interface{}) error {
	if statusCode != wantStatus {
		var errorResp ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil {
			return fmt.Errorf("API returned status %d: %s", statusCode, string(body))
		}
		return fmt.Errorf("%s", errorResp.Error)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func createSession(client *http.Client, baseURL string, playerName string) (*state.GameState, error) {
	jsonData, err := json.Marshal(map[string]string{"player_name": playerName})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(
		baseURL+"/v1/session",
		"application/json",
		bytes.NewBuffer(jsonData),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var gs state.GameState
	if err := decodeOrError(body, resp.StatusCode, http.StatusCreated, &gs); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &gs, nil
}

func restoreSession(client *http.Client, baseURL string, code string) (*state.GameState, error) {
	jsonData, err := json.Marshal(map[string]string{"code": code})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(
		baseURL+"/v1/session/restore",
		"application/json",
		bytes.NewBuffer(jsonData),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var gs state.GameState
	if err := decodeOrError(body, resp.StatusCode, http.StatusCreated, &gs); err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	return &gs, nil
}

func sendCommand(client *http.Client, baseURL string, sessionID uuid.UUID, input string) (*CommandResponse, error) {
	jsonData, err := json.Marshal(map[string]string{"input": input})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(
		fmt.Sprintf("%s/v1/session/%s/command", baseURL, sessionID),
		"application/json",
		bytes.NewBuffer(jsonData),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var cmdResp CommandResponse
	if err := decodeOrError(body, resp.StatusCode, http.StatusOK, &cmdResp); err != nil {
		return nil, fmt.Errorf("command failed: %w", err)
	}
	return &cmdResp, nil
}

func getSaveCode(client *http.Client, baseURL string, sessionID uuid.UUID) (string, error) {
	resp, err := client.Get(fmt.Sprintf("%s/v1/session/%s/save", baseURL, sessionID))
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var saveResp SaveCodeResponse
	if err := decodeOrError(body, resp.StatusCode, http.StatusOK, &saveResp); err != nil {
		return "", fmt.Errorf("failed to export save code: %w", err)
	}
	return saveResp.Code, nil
}
