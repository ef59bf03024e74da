// Package tool exposes editor capabilities that agents can invoke.
// Tool arguments arrive as JSON documents; handlers pull fields out
// with gjson so a malformed or partial document degrades to missing
// arguments instead of a decode failure.
package tool

import (
	"context"
	"fmt"
)

// Tool is one invocable capability.
type Tool struct {
	// Name identifies the tool in invocations.
	Name string

	// Description tells the model what the tool does.
	Description string

	// Run executes the tool with raw JSON arguments.
	Run func(ctx context.Context, args string) (string, error)
}

// Registry holds tools in registration order.
type Registry struct {
	tools  []Tool
	byName map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Register adds a tool. Re-registering a name replaces the earlier
// tool in place, keeping its position.
func (r *Registry) Register(t Tool) error {
	if t.Name == "" {
		return fmt.Errorf("tool needs a name")
	}
	if t.Run == nil {
		return fmt.Errorf("tool %s needs a handler", t.Name)
	}
	if i, ok := r.byName[t.Name]; ok {
		r.tools[i] = t
		return nil
	}
	r.byName[t.Name] = len(r.tools)
	r.tools = append(r.tools, t)
	return nil
}

// Invoke runs the named tool with the JSON argument document.
func (r *Registry) Invoke(ctx context.Context, name, args string) (string, error) {
	i, ok := r.byName[name]
	if !ok {
		return "", fmt.Errorf("unknown tool %q", name)
	}
	out, err := r.tools[i].Run(ctx, args)
	if err != nil {
		return "", fmt.Errorf("tool %s: %w", name, err)
	}
	return out, nil
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Len reports the number of registered tools.
func (r *Registry) Len() int {
	return len(r.tools)
}
