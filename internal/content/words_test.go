package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	body := []byte("import Callout from '@/components/Callout.astro'\n\n## Introduction\n\nYour content **here**...\n\n- one\n- two\n")
	assert.Equal(t, 7, CountWords(body))
	assert.Equal(t, 0, CountWords([]byte("  \n")))
}

func TestCountWordsHTML(t *testing.T) {
	assert.Equal(t, 3, CountWordsHTML([]byte("<p>one <em>two</em></p><p>three</p>")))
	assert.Equal(t, 0, CountWordsHTML([]byte("")))
}

func TestReadingTime(t *testing.T) {
	assert.Equal(t, "1 min read", ReadingTime(0))
	assert.Equal(t, "1 min read", ReadingTime(250))
	assert.Equal(t, "2 min read", ReadingTime(300))
	assert.Equal(t, "5 min read", ReadingTime(1000))
}
