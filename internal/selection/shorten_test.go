package selection

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortenContentFitsUnchanged(t *testing.T) {
	content := "Short enough already."
	assert.Equal(t, content, ShortenContent(content, 100))
}

func TestShortenContentKeepsWholeSentences(t *testing.T) {
	content := "First sentence here. Second sentence follows. Third sentence is long and will not fit at all."

	shortened := ShortenContent(content, 50)

	assert.Equal(t, "First sentence here. Second sentence follows.", shortened)
	assert.LessOrEqual(t, len(shortened), 50)
}

func TestShortenContentSingleSentenceFits(t *testing.T) {
	content := "First sentence here. Second sentence follows along nicely."

	shortened := ShortenContent(content, 25)

	assert.Equal(t, "First sentence here.", shortened)
}

func TestShortenContentHardTruncatesWhenNoSentenceFits(t *testing.T) {
	content := strings.Repeat("x", 200)

	shortened := ShortenContent(content, 50)

	assert.Len(t, shortened, 50)
	assert.True(t, strings.HasSuffix(shortened, ellipsis))
}

func TestShortenContentTinyTargets(t *testing.T) {
	content := "abcdefgh"

	assert.Equal(t, "abc", ShortenContent(content, 3))
	assert.Equal(t, "a", ShortenContent(content, 1))
	assert.Equal(t, "", ShortenContent(content, 0))
	assert.Equal(t, "", ShortenContent(content, -5))
}
