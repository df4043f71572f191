package contract

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one utterance in the rolling conversation history.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Passage is a retrievable chunk of the knowledge corpus. Immutable once
// created; the corpus is seeded at first startup and append-only afterwards.
type Passage struct {
	Content  string `json:"content"`
	Category string `json:"category"`
}

// ScoredPassage pairs a passage with its similarity score.
type ScoredPassage struct {
	Passage Passage `json:"passage"`
	Score   float64 `json:"score"`
}
