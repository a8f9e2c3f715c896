package chat

// Roles accepted in widget conversations.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single exchange in the chat widget conversation. The widget
// resends the full history on every call; the server keeps no session state
// between turns.
type Turn struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}
