package selection

import "strings"

// ellipsis is appended when no whole sentence fits the target length
const ellipsis = "..."

// ShortenContent trims content to at most maxLength characters. Whole
// sentences are accumulated while they fit; if at least one fits, the
// accumulation is returned with a closing period. If no sentence fits, the
// content is hard-truncated with a trailing ellipsis. Targets too small for
// an ellipsis return a plain prefix.
func ShortenContent(content string, maxLength int) string {
	if len(content) <= maxLength {
		return content
	}
	if maxLength <= len(ellipsis) {
		if maxLength < 0 {
			maxLength = 0
		}
		return content[:maxLength]
	}

	sentences := strings.Split(content, ". ")
	var shortened strings.Builder

	for _, sentence := range sentences {
		candidate := sentence + ". "
		if shortened.Len()+len(candidate) > maxLength {
			break
		}
		if shortened.Len() > 0 {
			shortened.WriteString(". ")
		}
		shortened.WriteString(sentence)
	}

	if shortened.Len() == 0 {
		return content[:maxLength-len(ellipsis)] + ellipsis
	}

	result := shortened.String()
	if !strings.HasSuffix(result, ".") {
		result += "."
	}
	return result
}
