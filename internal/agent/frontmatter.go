package agent

import (
	"bytes"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	yamlFence = []byte("---\n")
	tomlFence = []byte("+++\n")
)

// Meta is the frontmatter block of an agent definition file.
type Meta struct {
	Name        string  `yaml:"name" toml:"name"`
	Description string  `yaml:"description" toml:"description"`
	Provider    string  `yaml:"provider" toml:"provider"`
	Model       string  `yaml:"model" toml:"model"`
	Temperature float64 `yaml:"temperature" toml:"temperature"`
}

// ParseFrontmatter splits an agent definition into its metadata and
// prompt body. A leading "---" fence delimits YAML metadata, "+++"
// delimits TOML. A file with no fence is all body with empty
// metadata.
func ParseFrontmatter(data []byte) (Meta, []byte, error) {
	switch {
	case bytes.HasPrefix(data, yamlFence):
		head, body, err := splitFence(data, yamlFence)
		if err != nil {
			return Meta{}, nil, err
		}
		var m Meta
		if err := yaml.Unmarshal(head, &m); err != nil {
			return Meta{}, nil, fmt.Errorf("parsing YAML frontmatter: %w", err)
		}
		return m, body, nil

	case bytes.HasPrefix(data, tomlFence):
		head, body, err := splitFence(data, tomlFence)
		if err != nil {
			return Meta{}, nil, err
		}
		var m Meta
		if err := toml.Unmarshal(head, &m); err != nil {
			return Meta{}, nil, fmt.Errorf("parsing TOML frontmatter: %w", err)
		}
		return m, body, nil

	default:
		return Meta{}, data, nil
	}
}

// splitFence returns the metadata between the opening fence and its
// closing line, plus everything after the closing fence.
func splitFence(data, fence []byte) ([]byte, []byte, error) {
	rest := data[len(fence):]
	closing := append([]byte("\n"), fence...)

	// The closing fence may open the very first line after the
	// opening one (empty metadata).
	if bytes.HasPrefix(rest, fence) {
		return nil, rest[len(fence):], nil
	}
	idx := bytes.Index(rest, closing)
	if idx < 0 {
		return nil, nil, fmt.Errorf("unterminated frontmatter fence %q", bytes.TrimSpace(fence))
	}
	return rest[:idx+1], rest[idx+len(closing):], nil
}

// EncodeFrontmatter renders a definition back to file form with YAML
// frontmatter.
func EncodeFrontmatter(m Meta, body []byte) ([]byte, error) {
	head, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding frontmatter: %w", err)
	}
	var buf bytes.Buffer
	buf.Write(yamlFence)
	buf.Write(head)
	buf.Write(yamlFence)
	buf.Write(body)
	return buf.Bytes(), nil
}
