package handlers

import (
	"errors"
	"time"

	"gopkg.in/telebot.v4"

	"schedulebot/pkg/timetable"
)

const (
	startText       = "Используй командную палитру для получения расписания"
	formatErrorText = "Неправильный формат. Нужен ГГГГ-ММ-ДД."
	unavailableText = "Не удалось получить расписание, попробуй позже."
)

var commands = []telebot.Command{
	{Text: "start", Description: "Как пользоваться ботом"},
	{Text: "today", Description: "Расписание на сегодня"},
	{Text: "tomorrow", Description: "Расписание на завтра"},
	{Text: "custom", Description: "Расписание на дату ГГГГ-ММ-ДД"},
	{Text: "week", Description: "Расписание на рабочую неделю"},
}

// Commands publishes the command palette to Telegram.
func (b *Bot) Commands() error {
	return b.Bot.SetCommands(commands)
}

// Handlers registers every command and schedules the weekly broadcast.
func (b *Bot) Handlers() error {
	b.Bot.Use(b.logCommand)
	for command, handler := range b.routes() {
		b.Bot.Handle("/"+command, handler)
	}
	return b.Weekly()
}

func (b *Bot) routes() map[string]telebot.HandlerFunc {
	return map[string]telebot.HandlerFunc{
		"start":    b.handleStart,
		"today":    b.handleToday,
		"tomorrow": b.handleTomorrow,
		"custom":   b.handleCustom,
		"week":     b.handleWeek,
	}
}

func (b *Bot) handleStart(c telebot.Context) error {
	return c.Send(startText)
}

func (b *Bot) handleToday(c telebot.Context) error {
	return b.sendDay(c, b.schedule.Today())
}

func (b *Bot) handleTomorrow(c telebot.Context) error {
	return b.sendDay(c, b.schedule.Today().AddDate(0, 0, 1))
}

func (b *Bot) handleCustom(c telebot.Context) error {
	args := c.Args()
	if len(args) != 1 {
		return c.Send(formatErrorText, telebot.ModeMarkdown)
	}

	day, err := b.schedule.ParseDay(args[0])
	if err != nil {
		b.logger.Debug("Rejected custom date", "arg", args[0], "error", err)
		return c.Send(formatErrorText, telebot.ModeMarkdown)
	}

	return b.sendDay(c, day)
}

// handleWeek sends Monday to Friday of the current week, one message per day.
// Each day is fetched only after the previous message was sent.
func (b *Bot) handleWeek(c telebot.Context) error {
	for _, day := range timetable.WorkWeek(b.schedule.Today()) {
		if err := b.sendDay(c, day); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bot) sendDay(c telebot.Context, day time.Time) error {
	if err := c.Notify(telebot.Typing); err != nil {
		b.logger.Debug("Failed to send chat action", "error", err)
	}

	text, err := b.schedule.Render(b.context, day)
	if err != nil {
		b.logger.Error("Failed to render schedule", "day", day.Format(time.DateOnly), "error", err)
		if sendErr := c.Send(unavailableText); sendErr != nil {
			return errors.Join(err, sendErr)
		}
		return err
	}

	return c.Send(text, telebot.ModeMarkdown)
}
