package frontmatter

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseTags decodes a string-encoded tag list such as `['go', 'cli']`.
//
// Anything that does not decode to a sequence yields no tags; blank entries
// are dropped.
func ParseTags(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	var raw []string
	if err := yaml.Unmarshal([]byte(value), &raw); err != nil {
		return nil
	}

	tags := make([]string, 0, len(raw))
	for _, t := range raw {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
