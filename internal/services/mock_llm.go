package services

import (
	"context"
	"sync"

	"github.com/tbranton/whisperwood/pkg/chat"
)

// MockLLMAPI is a mock implementation of LLMService for testing.
type MockLLMAPI struct {
	InitModelFunc func(ctx context.Context, modelName string) error
	ChatFunc      func(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error)

	// Track calls for testing
	InitModelCalls []string
	ChatCalls      []ChatCall

	// Responses are returned in order when ChatFunc is unset.
	Responses []string

	mu sync.Mutex // protects all fields above
}

var _ LLMService = (*MockLLMAPI)(nil)

type ChatCall struct {
	Messages []chat.ChatMessage
}

// NewMockLLMAPI creates a new mock LLM service.
func NewMockLLMAPI() *MockLLMAPI {
	return &MockLLMAPI{
		InitModelCalls: make([]string, 0),
		ChatCalls:      make([]ChatCall, 0),
	}
}

// InitModel mocks model initialization.
func (m *MockLLMAPI) InitModel(ctx context.Context, modelName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.InitModelCalls = append(m.InitModelCalls, modelName)

	if m.InitModelFunc != nil {
		return m.InitModelFunc(ctx, modelName)
	}
	return nil
}

// Chat mocks response generation. Scripted responses are consumed in
// order; when they run out, a default empty action list is returned.
func (m *MockLLMAPI) Chat(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ChatCalls = append(m.ChatCalls, ChatCall{Messages: messages})

	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, messages)
	}

	if len(m.Responses) > 0 {
		next := m.Responses[0]
		m.Responses = m.Responses[1:]
		return &chat.ChatResponse{Message: next}, nil
	}

	return &chat.ChatResponse{
		Message: `[{"actionType": "UNKNOWN_COMMAND", "params": {"reason": "mock has no scripted response"}}]`,
	}, nil
}

// Script queues responses to be returned by successive Chat calls.
func (m *MockLLMAPI) Script(responses ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses = append(m.Responses, responses...)
}

// SetChatError sets up the mock to return an error on Chat.
func (m *MockLLMAPI) SetChatError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ChatFunc = func(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error) {
		return nil, err
	}
}

// Reset clears all call tracking and scripted responses.
func (m *MockLLMAPI) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InitModelCalls = make([]string, 0)
	m.ChatCalls = make([]ChatCall, 0)
	m.Responses = nil
	m.InitModelFunc = nil
	m.ChatFunc = nil
}

// GetCalls returns a copy of the call tracking data in a thread-safe way.
func (m *MockLLMAPI) GetCalls() ([]string, []ChatCall) {
	m.mu.Lock()
	defer m.mu.Unlock()

	initCalls := make([]string, len(m.InitModelCalls))
	copy(initCalls, m.InitModelCalls)

	chatCalls := make([]ChatCall, len(m.ChatCalls))
	copy(chatCalls, m.ChatCalls)

	return initCalls, chatCalls
}
