package markdown

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---"

// SplitFrontmatter separates a leading YAML block fenced by "---" lines from
// the body. Text without an opening fence has empty metadata. An opening
// fence with no closing one, or YAML that does not decode to a mapping, is an
// error.
func SplitFrontmatter(content string) (map[string]any, string, error) {
	if !strings.HasPrefix(content, fence+"\n") {
		return map[string]any{}, content, nil
	}
	lines := strings.Split(content, "\n")
	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t") == fence {
			closing = i
			break
		}
	}
	if closing < 0 {
		return nil, "", fmt.Errorf("invalid frontmatter: missing closing %q", fence)
	}

	meta := map[string]any{}
	raw := strings.Join(lines[1:closing], "\n")
	if strings.TrimSpace(raw) != "" {
		if err := yaml.Unmarshal([]byte(raw), &meta); err != nil {
			return nil, "", fmt.Errorf("decode frontmatter: %w", err)
		}
	}
	return meta, strings.Join(lines[closing+1:], "\n"), nil
}
