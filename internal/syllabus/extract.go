package syllabus

import (
	"regexp"
	"strings"
)

var (
	// Leading enumeration markers: "1.", "-", "*", "Module 3", "Unit 2:".
	// Only the first marker on a line is stripped.
	markerPattern = regexp.MustCompile(`(?i)^(\d+\.|-|\*|Module \d+:?|Unit \d+:?)\s*`)

	// Trailing credit-hour annotations like "3L" or "4 l".
	creditHoursPattern = regexp.MustCompile(`\d+\s*[Ll]$`)
)

// ExtractTopics normalizes raw syllabus text into an ordered list of topic
// strings. It never fails: garbage input yields an empty or short list.
//
// Per line: trim, strip one leading enumeration marker, strip a trailing
// credit-hour suffix, then drop the line unless at least two
// whitespace-separated tokens remain. A line that carried an enumeration
// marker is exempt from the two-token minimum: the marker already proves it
// was authored as a list entry ("Module 3: Recursion" is a topic even though
// one token remains after stripping). Line order is preserved because
// downstream consumers render topics by position.
func ExtractTopics(raw string) []string {
	lines := strings.Split(raw, "\n")
	topics := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		stripped := markerPattern.ReplaceAllString(line, "")
		hadMarker := stripped != line
		line = strings.TrimSpace(creditHoursPattern.ReplaceAllString(stripped, ""))

		if line == "" {
			continue
		}
		if !hadMarker && len(strings.Fields(line)) < 2 {
			continue
		}

		topics = append(topics, line)
	}

	return topics
}
