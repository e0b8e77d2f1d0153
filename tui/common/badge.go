package common

import "strings"

// Badge renders one tag label.
func Badge(tag string) string {
	return BadgeStyle.Render(tag)
}

// Badges renders tags in order, separated by a space. Empty input renders "".
func Badges(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, Badge(t))
	}
	return strings.Join(parts, " ")
}
