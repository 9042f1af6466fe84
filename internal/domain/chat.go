package domain

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage é uma entrada da sequência ordenada (append-only) do chat
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
