// Package chat holds the message shapes shared by the LLM services
// and the prompt builder.
package chat

const (
	ChatRoleUser   = "user"
	ChatRoleAgent  = "assistant"
	ChatRoleSystem = "system"
)

// ChatMessage is a single message in an LLM conversation. The shape
// follows the Ollama and OpenAI chat APIs.
type ChatMessage struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// ChatResponse is the model's reply.
type ChatResponse struct {
	Message string `json:"message,omitempty"`
}
