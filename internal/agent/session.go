package agent

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Turn is one exchange in a session.
type Turn struct {
	ID     uuid.UUID
	Prompt string
	Reply  string
	At     time.Time
}

// Session runs an agent against a provider and keeps the exchange
// history. Sessions are not safe for concurrent use; the event loop
// owns them.
type Session struct {
	ID       uuid.UUID
	Agent    Definition
	provider Provider
	turns    []Turn
}

// NewSession starts a session for the agent on the provider.
func NewSession(def Definition, p Provider) *Session {
	return &Session{
		ID:       uuid.New(),
		Agent:    def,
		provider: p,
	}
}

// Ask renders the agent's prompt template with vars as the system
// prompt, sends the user prompt, and records the turn.
func (s *Session) Ask(ctx context.Context, prompt string, vars map[string]string) (string, error) {
	reply, err := s.provider.Complete(ctx, Request{
		Model:  s.Agent.Model,
		System: RenderPrompt(s.Agent.Prompt, vars),
		Prompt: prompt,
	})
	if err != nil {
		return "", err
	}
	s.turns = append(s.turns, Turn{
		ID:     uuid.New(),
		Prompt: prompt,
		Reply:  reply,
		At:     time.Now(),
	})
	return reply, nil
}

// Turns returns the recorded exchanges, oldest first.
func (s *Session) Turns() []Turn {
	return s.turns
}
