package test

import "strings"

// Rows normalizes console text for comparison. Carriage returns go away, a
// raw string's opening newline is dropped, each row loses its trailing
// blanks and empty rows at the bottom are removed. Leading spaces are kept
// because they are columns.
func Rows(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.TrimPrefix(s, "\n")

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}
