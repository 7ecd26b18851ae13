package instantiate

import (
	"sort"
	"strings"

	"github.com/agentforge-labs/agentforge/internal/template"
)

// RenderPrompt substitutes resolved specialization values into the
// template's base prompt. Substitution is a single pass over the template
// source: each {placeholder} occurrence is replaced with its value verbatim,
// and the source's whitespace (including multi-line indentation) is
// preserved exactly as authored. Values are inserted literally, so braces
// inside a value are never re-interpreted as placeholders.
//
// A placeholder with no resolved value fails with *RenderError. Load-time
// validation guarantees this cannot happen for templates that came out of a
// Registry; the check guards hand-built templates and registry defects.
func RenderPrompt(t *template.AgentTemplate, values map[string]string) (string, error) {
	var unresolved []string
	seen := make(map[string]bool)

	rendered := template.PlaceholderPattern.ReplaceAllStringFunc(t.BasePromptTemplate, func(token string) string {
		name := token[1 : len(token)-1]
		value, ok := values[name]
		if !ok {
			if !seen[name] {
				seen[name] = true
				unresolved = append(unresolved, name)
			}
			return token
		}
		return value
	})

	if len(unresolved) > 0 {
		sort.Strings(unresolved)
		return "", &RenderError{Template: t.Name, Unresolved: unresolved}
	}
	return rendered, nil
}

// AppendTraits appends a personality traits block to a rendered prompt, one
// bullet per trait. With no traits the prompt is returned unchanged. The
// block never becomes part of AgentConfig.RenderedPrompt; display layers opt
// in to it.
func AppendTraits(prompt string, traits []string) string {
	if len(traits) == 0 {
		return prompt
	}

	var b strings.Builder
	b.WriteString(prompt)
	b.WriteString("\n\nYour personality traits include:\n")
	for i, trait := range traits {
		b.WriteString("- ")
		b.WriteString(trait)
		if i < len(traits)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
