package llm

import "strings"

// CleanText strips the wrappers models tend to add around plain prose: code
// fences, a leading "Bio:" label and enclosing quotes.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.Index(text, "\n"); idx >= 0 && !strings.Contains(text[:idx], " ") {
			text = text[idx+1:]
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	for _, label := range []string{"Bio:", "**Bio:**", "About me:"} {
		if len(text) >= len(label) && strings.EqualFold(text[:len(label)], label) {
			text = strings.TrimSpace(text[len(label):])
			break
		}
	}

	for _, q := range []string{`"`, "“"} {
		closing := q
		if q == "“" {
			closing = "”"
		}
		if strings.HasPrefix(text, q) && strings.HasSuffix(text, closing) && len(text) > len(q)+len(closing) {
			text = strings.TrimSpace(text[len(q) : len(text)-len(closing)])
		}
	}
	return text
}
