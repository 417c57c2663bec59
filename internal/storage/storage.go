// Package storage persists game sessions between requests. The API is
// stateless; every command loads the session, runs the engine, and
// saves the result back.
package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/tbranton/whisperwood/pkg/state"
)

// Storage defines the persistence interface for game sessions.
type Storage interface {
	// Ping checks backend connectivity.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close() error

	// SaveGameState persists a session.
	SaveGameState(ctx context.Context, id uuid.UUID, gs *state.GameState) error

	// LoadGameState retrieves a session. Returns (nil, nil) when the
	// session does not exist.
	LoadGameState(ctx context.Context, id uuid.UUID) (*state.GameState, error)

	// DeleteGameState removes a session.
	DeleteGameState(ctx context.Context, id uuid.UUID) error
}
