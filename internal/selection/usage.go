package selection

import (
	"fmt"
	"strings"
)

// Usage returns the help text for a generation command such as "og" or "hero".
func Usage(command string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: sitegen %s [flags]\n\n", command)
	b.WriteString("Flags:\n")
	b.WriteString("  --slug <slug>[,<slug>...]  Generate only the named posts (repeatable).\n")
	b.WriteString("                             Named posts are generated even if drafts or already generated.\n")
	b.WriteString("  --posts-only               Generate post images only, skip static pages.\n")
	b.WriteString("  --tasks <posts,static>     Choose which groups to generate.\n")
	b.WriteString("  --all-posts                Regenerate images that already exist.\n")
	b.WriteString("  --no-static                Skip static pages.\n")
	b.WriteString("  -h, --help                 Show this help.\n")
	return b.String()
}
