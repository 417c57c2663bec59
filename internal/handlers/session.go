package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/tbranton/whisperwood/internal/services"
	"github.com/tbranton/whisperwood/internal/storage"
	"github.com/tbranton/whisperwood/pkg/action"
	"github.com/tbranton/whisperwood/pkg/engine"
	"github.com/tbranton/whisperwood/pkg/state"
)

// SessionHandler manages game sessions.
//
// Routes:
//
//	POST   /v1/session               - Start a new game
//	GET    /v1/session/{id}          - Read a session
//	DELETE /v1/session/{id}          - End a session
//	POST   /v1/session/{id}/command  - Run a player command
//	GET    /v1/session/{id}/save     - Export a save code
//	POST   /v1/session/restore       - Start a session from a save code
type SessionHandler struct {
	engine     *engine.Engine
	translator *services.Translator
	storage    storage.Storage
	logger     *slog.Logger

	// One command runs per session at a time. A concurrent request on
	// the same session gets 409 instead of racing the state write.
	locks sync.Map
}

func NewSessionHandler(eng *engine.Engine, translator *services.Translator, store storage.Storage, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		engine:     eng,
		translator: translator,
		storage:    store,
		logger:     logger,
	}
}

// CreateSessionRequest defines the request body for starting a new game.
type CreateSessionRequest struct {
	PlayerName string `json:"player_name"`
}

// CommandRequest defines the request body for a player command. Free
// text goes through the translator; a client that already knows what it
// wants (a UI button, a test) sends typed actions instead.
type CommandRequest struct {
	Input   string          `json:"input,omitempty"`
	Actions []action.Action `json:"actions,omitempty"`
}

// CommandResponse returns the messages the command produced plus the
// full state so clients can redraw without a second request.
type CommandResponse struct {
	Messages  []state.Message  `json:"messages"`
	GameState *state.GameState `json:"game_state"`
}

// SaveCodeResponse carries an exported save code.
type SaveCodeResponse struct {
	Code string `json:"code"`
}

// RestoreSessionRequest defines the request body for resuming from a
// save code.
type RestoreSessionRequest struct {
	Code string `json:"code"`
}

func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/session"), "/")
	parts := []string{}
	if path != "" {
		parts = strings.Split(path, "/")
	}

	switch {
	case len(parts) == 0 && r.Method == http.MethodPost:
		h.handleCreate(w, r)

	case len(parts) == 1 && parts[0] == "restore" && r.Method == http.MethodPost:
		h.handleRestore(w, r)

	case len(parts) >= 1:
		id, err := uuid.Parse(parts[0])
		if err != nil {
			h.logger.Warn("Invalid session ID", "id", parts[0], "error", err)
			writeError(w, h.logger, http.StatusBadRequest, "Invalid session ID format")
			return
		}

		switch {
		case len(parts) == 1 && r.Method == http.MethodGet:
			h.handleRead(w, r, id)
		case len(parts) == 1 && r.Method == http.MethodDelete:
			h.handleDelete(w, r, id)
		case len(parts) == 2 && parts[1] == "command" && r.Method == http.MethodPost:
			h.handleCommand(w, r, id)
		case len(parts) == 2 && parts[1] == "save" && r.Method == http.MethodGet:
			h.handleSaveCode(w, r, id)
		default:
			writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed")
		}

	default:
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *SessionHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if strings.TrimSpace(req.PlayerName) == "" {
		writeError(w, h.logger, http.StatusBadRequest, "player_name field is required")
		return
	}

	gs := h.engine.NewGame(strings.TrimSpace(req.PlayerName))
	if err := h.storage.SaveGameState(r.Context(), gs.ID, gs); err != nil {
		h.logger.Error("Failed to save new session", "error", err, "id", gs.ID.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to create session")
		return
	}

	h.logger.Debug("Session created", "id", gs.ID.String(), "player", gs.Player.Name)
	writeJSON(w, h.logger, http.StatusCreated, gs)
}

func (h *SessionHandler) handleRead(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	gs, err := h.storage.LoadGameState(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load session", "error", err, "id", id.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load session")
		return
	}
	if gs == nil {
		writeError(w, h.logger, http.StatusNotFound, "Session not found")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, gs)
}

func (h *SessionHandler) handleDelete(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := h.storage.DeleteGameState(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete session", "error", err, "id", id.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to delete session")
		return
	}
	h.logger.Debug("Session deleted", "id", id.String())
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) handleCommand(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if strings.TrimSpace(req.Input) == "" && len(req.Actions) == 0 {
		writeError(w, h.logger, http.StatusBadRequest, "input or actions field is required")
		return
	}

	lock, _ := h.locks.LoadOrStore(id, &sync.Mutex{})
	mu := lock.(*sync.Mutex)
	if !mu.TryLock() {
		writeError(w, h.logger, http.StatusConflict, "A command is already running for this session")
		return
	}
	defer mu.Unlock()

	gs, err := h.storage.LoadGameState(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load session", "error", err, "id", id.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load session")
		return
	}
	if gs == nil {
		writeError(w, h.logger, http.StatusNotFound, "Session not found")
		return
	}

	actions := req.Actions
	if len(actions) == 0 {
		actions, err = h.translator.Translate(r.Context(), h.engine.Catalog(), gs, req.Input)
		if err != nil {
			h.logger.Error("Translation failed", "error", err, "id", id.String())
			writeError(w, h.logger, http.StatusBadGateway, "Command translation failed")
			return
		}
	}

	before := len(gs.Messages)
	h.engine.Dispatch(gs, actions...)

	if err := h.storage.SaveGameState(r.Context(), gs.ID, gs); err != nil {
		h.logger.Error("Failed to save session", "error", err, "id", id.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to save session")
		return
	}

	// The message log is capped, so the marker can point past the
	// start after a trim.
	if before > len(gs.Messages) {
		before = 0
	}

	writeJSON(w, h.logger, http.StatusOK, CommandResponse{
		Messages:  gs.Messages[before:],
		GameState: gs,
	})
}

func (h *SessionHandler) handleSaveCode(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	gs, err := h.storage.LoadGameState(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load session", "error", err, "id", id.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load session")
		return
	}
	if gs == nil {
		writeError(w, h.logger, http.StatusNotFound, "Session not found")
		return
	}

	code, err := state.EncodeSaveCode(gs.Snapshot())
	if err != nil {
		h.logger.Error("Failed to encode save code", "error", err, "id", id.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to encode save code")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, SaveCodeResponse{Code: code})
}

func (h *SessionHandler) handleRestore(w http.ResponseWriter, r *http.Request) {
	var req RestoreSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	save, err := state.DecodeSaveCode(strings.TrimSpace(req.Code))
	if err != nil {
		h.logger.Warn("Invalid save code", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid save code")
		return
	}

	gs, err := state.Restore(h.engine.Catalog(), save)
	if err != nil {
		h.logger.Warn("Save code does not match the current world", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Save code does not match the current world")
		return
	}

	// Restored runs get a fresh session ID so the code can be shared
	// without two players fighting over one key.
	gs.ID = uuid.New()
	gs.AddMessage("Your journey resumes.", state.MsgSystem)

	if err := h.storage.SaveGameState(r.Context(), gs.ID, gs); err != nil {
		h.logger.Error("Failed to save restored session", "error", err, "id", gs.ID.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to create session")
		return
	}

	h.logger.Debug("Session restored from save code", "id", gs.ID.String())
	writeJSON(w, h.logger, http.StatusCreated, gs)
}
