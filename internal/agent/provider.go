package agent

import (
	"context"
	"fmt"
	"os"
)

// Request is a single completion request.
type Request struct {
	Model     string
	System    string
	Prompt    string
	MaxTokens int
}

// Provider runs completion requests against one model backend.
type Provider interface {
	// Name reports the provider identifier, e.g. "anthropic".
	Name() string

	// Complete sends the request and returns the model's text
	// response.
	Complete(ctx context.Context, req Request) (string, error)
}

// DefaultMaxTokens bounds responses when the request does not say.
const DefaultMaxTokens = 4096

// NewProvider builds the named provider. API keys come from the
// environment: SCRIBE_ANTHROPIC_KEY falling back to
// ANTHROPIC_API_KEY, and SCRIBE_OPENAI_KEY falling back to
// OPENAI_API_KEY.
func NewProvider(name string) (Provider, error) {
	switch name {
	case "anthropic":
		key := envKey("SCRIBE_ANTHROPIC_KEY", "ANTHROPIC_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("provider anthropic: no API key in environment")
		}
		return NewAnthropic(key), nil
	case "openai":
		key := envKey("SCRIBE_OPENAI_KEY", "OPENAI_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("provider openai: no API key in environment")
		}
		return NewOpenAI(key), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", name)
	}
}

func envKey(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}
