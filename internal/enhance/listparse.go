package enhance

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// ListItem is a single parsed line of a list returned by language model.
// Number is 0 when the line wasn't numbered.
type ListItem struct {
	Number int
	Text   string
}

var markerRe = regexp.MustCompile(`^(?:(\d+)[.)]|[-*•])(?:\s+|$)`)

// ParseListLine parses one line of a list response.
// Leading list marker ("1.", "2)", "-", "*", "•") followed by whitespace is stripped.
// Returns false for lines with no usable content.
func ParseListLine(line string) (ListItem, bool) {
	s := strings.TrimSpace(line)
	if !hasAlphanumeric(s) {
		return ListItem{}, false
	}

	var item ListItem
	if m := markerRe.FindStringSubmatch(s); m != nil {
		if m[1] != "" {
			if n, err := strconv.Atoi(m[1]); err == nil {
				item.Number = n
			}
		}
		s = s[len(m[0]):]
	}

	item.Text = strings.TrimSpace(s)
	if item.Text == "" {
		return ListItem{}, false
	}

	return item, true
}

// ParseList parses every usable line of a list response, in order.
func ParseList(text string) []ListItem {
	var items []ListItem
	for _, line := range strings.Split(text, "\n") {
		if item, ok := ParseListLine(line); ok {
			items = append(items, item)
		}
	}

	return items
}

func hasAlphanumeric(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}

	return false
}
