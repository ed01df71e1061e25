package utils

import (
	"strings"
)

// JoinFunc joins the non-blank results of transform over s with sep.
func JoinFunc[Slice ~[]E, E any](s Slice, transform func(E) string, sep string) string {
	parts := make([]string, 0, len(s))
	for _, v := range s {
		if part := strings.TrimSpace(transform(v)); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, sep)
}
