package ciagent

import "fmt"

// Role identifies the author of a chat turn.
type Role string

// Chat roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single message in a chat session.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Session is the state of a conversation about one company.
// A session is owned by a single conversation and is not safe for
// concurrent use.
type Session struct {
	CompanyID string `json:"companyId"`
	Turns     []Turn `json:"turns"`
}

// NewSession starts a conversation about a company, seeded with an
// assistant greeting.
func NewSession(companyID string) *Session {
	s := &Session{CompanyID: companyID}
	s.Add(RoleAssistant, Greeting(companyID))
	return s
}

// Greeting returns the opening assistant message for a company.
func Greeting(companyID string) string {
	return fmt.Sprintf("Hello! I've learned about %s. What would you like to know?", companyID)
}

// Add appends a turn to the transcript.
func (s *Session) Add(role Role, content string) {
	s.Turns = append(s.Turns, Turn{Role: role, Content: content})
}

// Questions returns the user turns in order.
func (s *Session) Questions() []string {
	var qs []string
	for _, t := range s.Turns {
		if t.Role == RoleUser {
			qs = append(qs, t.Content)
		}
	}
	return qs
}
