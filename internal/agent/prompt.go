package agent

import "strings"

// RenderPrompt substitutes {{name}} placeholders in an agent prompt
// template. Placeholders without a binding are left intact so a
// rendered prompt makes missing variables visible rather than
// silently dropping them.
func RenderPrompt(template string, vars map[string]string) string {
	if len(vars) == 0 {
		return template
	}
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{{"+name+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
