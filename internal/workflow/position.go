package workflow

import "strings"

// FindLine returns the 1-based number of the first line containing needle,
// or 1 when no line does. Repeated occurrences all resolve to the first one.
func FindLine(content, needle string) int {
	for i, line := range strings.Split(content, "\n") {
		if strings.Contains(line, needle) {
			return i + 1
		}
	}
	return 1
}
