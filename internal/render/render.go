// Package render substitutes {{variable}} placeholders in template content.
package render

import "strings"

// Render replaces every occurrence of {{name}} for each supplied variable.
// Matching is textual and case-sensitive; tokens without a matching key are
// left verbatim. No escaping is performed, the caller owns content safety.
func Render(content string, vars map[string]string) string {
	for name, value := range vars {
		content = strings.ReplaceAll(content, "{{"+name+"}}", value)
	}
	return content
}
