package handlers

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"
	"gopkg.in/telebot.v4"

	"schedulebot/pkg/telegram/wrapper"
	"schedulebot/pkg/timetable"
	"schedulebot/pkg/utils"
)

const maxBroadcastWorkers = 4

type broadcastResult struct {
	Chat telebot.ChatID
	Err  error
}

// Weekly schedules [Bot.Broadcast] when chats are configured.
func (b *Bot) Weekly() error {
	if len(b.weekly.Chats) == 0 {
		b.logger.Debug("Weekly broadcast disabled, no chats configured")
		return nil
	}

	location := b.schedule.Location
	if location == nil {
		location = time.Local
	}
	c := cron.New(
		cron.WithLocation(location),
		cron.WithLogger(cronLogger{b.logger}),
	)
	if _, err := c.AddFunc(b.weekly.Spec, b.Broadcast); err != nil {
		return fmt.Errorf("error scheduling weekly broadcast %q: %w", b.weekly.Spec, err)
	}
	c.Start()
	b.cron = c

	b.logger.Info("Weekly broadcast scheduled", "spec", b.weekly.Spec, "chats", len(b.weekly.Chats))
	return nil
}

// Broadcast sends the current work week to every configured chat.
// Chats are served concurrently, the days of one chat are sent in order.
func (b *Bot) Broadcast() {
	days := timetable.WorkWeek(b.schedule.Today())
	worker := utils.NewWorkerPool(min(len(b.weekly.Chats), maxBroadcastWorkers), func(chat telebot.ChatID) broadcastResult {
		return broadcastResult{Chat: chat, Err: b.sendWeek(chat, days)}
	})
	results := worker.Work()
	worker.AddAndClose(b.weekly.Chats...)

	var failed int
	for res := range results {
		b.metrics.ObserveBroadcast(res.Response.Err)
		if res.Response.Err != nil {
			failed++
			b.logger.Error("Failed to broadcast week", "chat_id", res.Response.Chat, "error", res.Response.Err)
			continue
		}
		b.logger.Debug("Week broadcast", "chat_id", res.Response.Chat, "worker", res.WorkerID)
	}
	b.logger.Info("Weekly broadcast finished", "chats", len(b.weekly.Chats), "failed", failed)
}

func (b *Bot) sendWeek(chat telebot.ChatID, days []time.Time) error {
	for _, day := range days {
		if err := b.context.Err(); err != nil {
			return err
		}
		text, err := b.schedule.Render(b.context, day)
		if err != nil {
			if _, sendErr := wrapper.Send(b.sender, chat, unavailableText, telebot.ModeMarkdown); sendErr != nil {
				b.logger.Warn("Failed to report unavailable timetable", "chat_id", chat, "error", sendErr)
			}
			return err
		}
		if _, err := wrapper.Send(b.sender, chat, text, telebot.ModeMarkdown); err != nil {
			return fmt.Errorf("error sending to telegram: %w", err)
		}
	}
	return nil
}

// cronLogger routes cron's own logging to the bot logger.
type cronLogger struct {
	logger *log.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
