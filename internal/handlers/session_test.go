package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbranton/whisperwood/internal/services"
	"github.com/tbranton/whisperwood/internal/storage"
	"github.com/tbranton/whisperwood/pkg/action"
	"github.com/tbranton/whisperwood/pkg/catalog"
	"github.com/tbranton/whisperwood/pkg/engine"
	"github.com/tbranton/whisperwood/pkg/state"
)

type sessionFixture struct {
	handler *SessionHandler
	storage *storage.MockStorage
	llm     *services.MockLLMAPI
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	store := storage.NewMockStorage()
	llm := services.NewMockLLMAPI()
	eng := engine.New(catalog.Default())
	return &sessionFixture{
		handler: NewSessionHandler(eng, services.NewTranslator(llm, logger), store, logger),
		storage: store,
		llm:     llm,
	}
}

func (f *sessionFixture) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}

func (f *sessionFixture) createSession(t *testing.T) *state.GameState {
	t.Helper()
	w := f.do(http.MethodPost, "/v1/session", CreateSessionRequest{PlayerName: "Wren"})
	require.Equal(t, http.StatusCreated, w.Code)

	var gs state.GameState
	require.NoError(t, json.NewDecoder(w.Body).Decode(&gs))
	return &gs
}

func TestCreateSession(t *testing.T) {
	f := newSessionFixture(t)

	gs := f.createSession(t)
	assert.Equal(t, "Wren", gs.Player.Name)
	assert.Equal(t, "starter_room", gs.CurrentLocationID)
	assert.NotEmpty(t, gs.Messages, "opening narration is present")

	saved, err := f.storage.LoadGameState(t.Context(), gs.ID)
	require.NoError(t, err)
	assert.NotNil(t, saved)
}

func TestCreateSessionRequiresPlayerName(t *testing.T) {
	f := newSessionFixture(t)
	w := f.do(http.MethodPost, "/v1/session", CreateSessionRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReadSession(t *testing.T) {
	f := newSessionFixture(t)
	gs := f.createSession(t)

	w := f.do(http.MethodGet, "/v1/session/"+gs.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got state.GameState
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, gs.ID, got.ID)
}

func TestReadMissingSession(t *testing.T) {
	f := newSessionFixture(t)
	w := f.do(http.MethodGet, "/v1/session/00000000-0000-0000-0000-000000000001", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvalidSessionID(t *testing.T) {
	f := newSessionFixture(t)
	w := f.do(http.MethodGet, "/v1/session/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteSession(t *testing.T) {
	f := newSessionFixture(t)
	gs := f.createSession(t)

	w := f.do(http.MethodDelete, "/v1/session/"+gs.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = f.do(http.MethodGet, "/v1/session/"+gs.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommandRunsActions(t *testing.T) {
	f := newSessionFixture(t)
	gs := f.createSession(t)

	f.llm.Script(`[{"actionType": "TAKE_ITEM", "params": {"itemName": "Rusty Sword"}}]`)

	w := f.do(http.MethodPost, "/v1/session/"+gs.ID.String()+"/command", CommandRequest{Input: "take the sword"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp CommandResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.NotNil(t, resp.GameState)
	assert.Contains(t, resp.GameState.Player.Inventory, "rusty_sword")
	require.NotEmpty(t, resp.Messages)
	assert.Contains(t, resp.Messages[0].Text, "Rusty Sword")

	saved, err := f.storage.LoadGameState(t.Context(), gs.ID)
	require.NoError(t, err)
	assert.Contains(t, saved.Player.Inventory, "rusty_sword")
}

func TestCommandAcceptsTypedActions(t *testing.T) {
	f := newSessionFixture(t)
	gs := f.createSession(t)

	w := f.do(http.MethodPost, "/v1/session/"+gs.ID.String()+"/command", CommandRequest{
		Actions: []action.Action{{Type: action.TakeItem, ItemID: "rusty_sword"}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp CommandResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Contains(t, resp.GameState.Player.Inventory, "rusty_sword")

	_, calls := f.llm.GetCalls()
	assert.Empty(t, calls, "typed actions bypass the translator")
}

func TestCommandRequiresInput(t *testing.T) {
	f := newSessionFixture(t)
	gs := f.createSession(t)

	w := f.do(http.MethodPost, "/v1/session/"+gs.ID.String()+"/command", CommandRequest{Input: "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommandMissingSession(t *testing.T) {
	f := newSessionFixture(t)
	w := f.do(http.MethodPost, "/v1/session/00000000-0000-0000-0000-000000000001/command", CommandRequest{Input: "look"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaveCodeRoundTrip(t *testing.T) {
	f := newSessionFixture(t)
	gs := f.createSession(t)

	w := f.do(http.MethodGet, "/v1/session/"+gs.ID.String()+"/save", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var save SaveCodeResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&save))
	require.NotEmpty(t, save.Code)

	w = f.do(http.MethodPost, "/v1/session/restore", RestoreSessionRequest{Code: save.Code})
	require.Equal(t, http.StatusCreated, w.Code)

	var restored state.GameState
	require.NoError(t, json.NewDecoder(w.Body).Decode(&restored))
	assert.NotEqual(t, gs.ID, restored.ID, "restored session gets a fresh ID")
	assert.Equal(t, "Wren", restored.Player.Name)
	assert.Equal(t, gs.CurrentLocationID, restored.CurrentLocationID)
}

func TestRestoreRejectsGarbage(t *testing.T) {
	f := newSessionFixture(t)
	w := f.do(http.MethodPost, "/v1/session/restore", RestoreSessionRequest{Code: "not a save code"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
