package content

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
)

// wordsPerMinute is the reading speed used for reading time estimates.
const wordsPerMinute = 200

// CountWords renders a Markdown/MDX body to HTML and counts the words of its
// text content. MDX module lines (import/export) are not counted.
func CountWords(body []byte) int {
	if len(bytes.TrimSpace(body)) == 0 {
		return 0
	}

	var rendered bytes.Buffer
	if err := goldmark.Convert(stripModuleLines(body), &rendered); err != nil {
		return len(strings.Fields(string(body)))
	}
	return CountWordsHTML(rendered.Bytes())
}

// CountWordsHTML counts the words in the text nodes of an HTML fragment.
func CountWordsHTML(fragment []byte) int {
	tokenizer := html.NewTokenizer(bytes.NewReader(fragment))
	count := 0
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// io.EOF or a malformed fragment; either way the count so far stands.
			return count
		case html.TextToken:
			count += len(strings.Fields(string(tokenizer.Text())))
		}
	}
}

// ReadingTime formats an estimated reading time, never less than one minute.
func ReadingTime(words int) string {
	minutes := int(math.Max(1, math.Round(float64(words)/wordsPerMinute)))
	return fmt.Sprintf("%d min read", minutes)
}

func stripModuleLines(body []byte) []byte {
	lines := bytes.Split(body, []byte("\n"))
	kept := lines[:0]
	for _, line := range lines {
		trimmed := bytes.TrimSpace(line)
		if bytes.HasPrefix(trimmed, []byte("import ")) || bytes.HasPrefix(trimmed, []byte("export ")) {
			continue
		}
		kept = append(kept, line)
	}
	return bytes.Join(kept, []byte("\n"))
}
