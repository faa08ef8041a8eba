package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"['go', 'cli']", []string{"go", "cli"}},
		{`["hiring", "management"]`, []string{"hiring", "management"}},
		{"[a, b ,  c]", []string{"a", "b", "c"}},
		{"['', 'x']", []string{"x"}},
		{"[]", nil},
		{"", nil},
		{"go", nil},
		{"[unterminated", nil},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			assert.Equal(t, c.want, ParseTags(c.in))
		})
	}
}
