package parser

import (
	"strings"
)

// escaper prefixes the characters that open an entity in Telegram's legacy
// Markdown parse mode with a backslash.
var escaper = strings.NewReplacer(
	`_`, `\_`,
	`*`, `\*`,
	"`", "\\`",
	`[`, `\[`,
)

// Escape makes text safe to send with [telebot.ModeMarkdown] outside of an entity.
func Escape(text string) string {
	return escaper.Replace(text)
}

// Bold wraps text in a bold entity. Escaping is not allowed inside an entity,
// so every asterisk closes the entity, is escaped, and reopens it.
func Bold(text string) string {
	var sb strings.Builder
	sb.Grow(len(text) + 2)
	sb.WriteByte('*')
	sb.WriteString(strings.ReplaceAll(text, `*`, `*\**`))
	sb.WriteByte('*')
	return sb.String()
}
