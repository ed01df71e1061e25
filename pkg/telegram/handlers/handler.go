package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"
	"gopkg.in/telebot.v4"

	"schedulebot/pkg/metrics"
	"schedulebot/pkg/telegram/wrapper"
	"schedulebot/pkg/timetable"
)

type Bot struct {
	Bot *telebot.Bot

	schedule *timetable.Formatter
	weekly   Weekly
	cron     *cron.Cron
	sender   wrapper.Sender

	metrics *metrics.Metrics
	context context.Context
	logger  *log.Logger
}

// Weekly configures the broadcast of the work week to a fixed set of chats.
type Weekly struct {
	Spec  string
	Chats []telebot.ChatID
}

func New(token string, pollTimeout time.Duration, schedule *timetable.Formatter, weekly Weekly, metrics *metrics.Metrics, logger *log.Logger, ctx context.Context) (*Bot, error) {
	settings := telebot.Settings{
		Token:  token,
		Poller: &telebot.LongPoller{Timeout: pollTimeout},
		OnError: func(err error, c telebot.Context) {
			if c != nil && c.Chat() != nil {
				logger.Error("Handler returned an error", "chat_id", c.Chat().ID, "error", err)
				return
			}
			logger.Error("Telegram error", "error", err)
		},
	}

	if ctx == nil {
		ctx = context.Background()
	}

	bot, err := telebot.NewBot(settings)
	if err != nil {
		return nil, fmt.Errorf("error creating telegram bot: %w", err)
	}

	return &Bot{
		Bot: bot,

		schedule: schedule,
		weekly:   weekly,
		sender:   bot,

		metrics: metrics,
		context: ctx,
		logger:  logger,
	}, nil
}

func (b *Bot) Logger() *log.Logger {
	return b.logger
}

func (b *Bot) Start() error {
	go b.Bot.Start()
	b.logger.Info("Telegram bot started", "username", b.Bot.Me.Username)
	return nil
}

func (b *Bot) Stop() error {
	b.logger.Info("Stopping Telegram bot")
	if b.cron != nil {
		<-b.cron.Stop().Done()
	}
	b.Bot.Stop()
	return nil
}
