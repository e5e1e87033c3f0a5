package prompt

import (
	"fmt"
	"strings"
)

const preamble = "You are an AI assistant. Match YouTube video titles with syllabus topics only.\n" +
	"Return only a VALID JSON list of objects like this:\n" +
	`[{"topic": "Binary Trees", "videos": ["Video 1", "Video 2"]}]` + "\n\n"

// Build renders the instruction text sent to the generative model. It is a
// pure function: identical inputs produce byte-identical output. Topics and
// titles are rendered in the order given, without dedup or truncation;
// titles are numbered 1-based to match their playlist position.
func Build(topics []string, titles []string) string {
	var b strings.Builder
	b.WriteString(preamble)

	b.WriteString("Syllabus Topics:\n")
	for _, topic := range topics {
		b.WriteString("- ")
		b.WriteString(topic)
		b.WriteString("\n")
	}

	b.WriteString("\nVideo Titles:\n")
	for i, title := range titles {
		fmt.Fprintf(&b, "%d. %s\n", i+1, title)
	}

	return b.String()
}
