package handlers

import (
	"strings"
	"time"

	"gopkg.in/telebot.v4"
)

// logCommand logs and counts every handled update.
func (b *Bot) logCommand(next telebot.HandlerFunc) telebot.HandlerFunc {
	return func(c telebot.Context) error {
		start := time.Now()
		command := commandName(c.Text())
		b.metrics.ObserveCommand(command)

		err := next(c)

		keyvals := []any{"command", command, "duration", time.Since(start)}
		if chat := c.Chat(); chat != nil {
			keyvals = append(keyvals, "chat_id", chat.ID, "username", chat.Username)
		}
		if err != nil {
			b.logger.Error("Command failed", append(keyvals, "error", err)...)
			return err
		}
		b.logger.Info("Command handled", keyvals...)
		return nil
	}
}

// commandName extracts "custom" from "/custom@timetable_bot 2024-09-11".
func commandName(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "unknown"
	}
	name, _, _ := strings.Cut(strings.TrimPrefix(fields[0], "/"), "@")
	return name
}
