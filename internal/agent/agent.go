// Package agent loads agent definitions and runs prompts against
// model providers. Definitions are markdown files with frontmatter
// metadata; the markdown body is the system prompt template.
package agent

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Definition is a loaded agent.
type Definition struct {
	// Name identifies the agent. Defaults to the file name without
	// extension when the frontmatter omits it.
	Name        string
	Description string

	// Provider and Model override the configured defaults when set.
	Provider    string
	Model       string
	Temperature float64

	// Prompt is the system prompt template with {{name}}
	// placeholders.
	Prompt string
}

// ParseDefinition builds a Definition from file contents. name is
// the fallback agent name.
func ParseDefinition(name string, data []byte) (Definition, error) {
	meta, body, err := ParseFrontmatter(data)
	if err != nil {
		return Definition{}, fmt.Errorf("agent %s: %w", name, err)
	}
	def := Definition{
		Name:        meta.Name,
		Description: meta.Description,
		Provider:    meta.Provider,
		Model:       meta.Model,
		Temperature: meta.Temperature,
		Prompt:      strings.TrimLeft(string(body), "\n"),
	}
	if def.Name == "" {
		def.Name = name
	}
	return def, nil
}

// LoadDir loads every .md file in dir as an agent definition,
// sorted by name. A missing directory yields no agents without
// error so a fresh install works before any agent is written.
func LoadDir(dir string) ([]Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading agent dir %s: %w", dir, err)
	}

	var defs []Definition
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading agent file %s: %w", entry.Name(), err)
		}
		base := strings.TrimSuffix(entry.Name(), ".md")
		def, err := ParseDefinition(base, data)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs, nil
}

// Find returns the definition with the given name.
func Find(defs []Definition, name string) (Definition, bool) {
	for _, d := range defs {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}
