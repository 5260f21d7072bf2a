package vision

// extractJSONArray returns the first top-level JSON array substring of s.
// Model replies are frequently wrapped in prose or ```json fences, so the
// scan is bracket-matched rather than a regex slice: nesting is tracked and
// brackets inside string literals are ignored.
func extractJSONArray(s string) (string, bool) {
	return extractBalanced(s, '[', ']')
}

// extractJSONObject does the same for the first top-level JSON object.
func extractJSONObject(s string) (string, bool) {
	return extractBalanced(s, '{', '}')
}

func extractBalanced(s string, open, close byte) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if start == -1 {
			if c == open {
				start = i
				depth = 1
			}
			continue
		}
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
