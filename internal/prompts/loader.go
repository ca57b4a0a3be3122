// Package prompts holds the LLM prompt templates shipped with the binary.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed *.json
var promptFiles embed.FS

// MustGet returns the named template from a prompt file, panicking when the
// file or key is missing. Prompt files are compiled into the binary, so a
// miss is a packaging defect, not a runtime condition.
func MustGet(filename, key string) string {
	templates, err := load(filename)
	if err != nil {
		panic(fmt.Sprintf("prompt file %s: %v", filename, err))
	}
	template, ok := templates[key]
	if !ok {
		panic(fmt.Sprintf("prompt %q not found in %s", key, filename))
	}
	return template
}

// Format substitutes {{.Name}} placeholders in a template
func Format(template string, data map[string]string) string {
	out := template
	for name, value := range data {
		out = strings.ReplaceAll(out, "{{."+name+"}}", value)
	}
	return out
}

func load(filename string) (map[string]string, error) {
	content, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	var templates map[string]string
	if err := json.Unmarshal(content, &templates); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	return templates, nil
}
