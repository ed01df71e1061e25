package bot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/telebot.v4"

	"schedulebot/pkg/config"
	"schedulebot/pkg/metrics"
	"schedulebot/pkg/telegram/handlers"
	"schedulebot/pkg/timetable"
	"schedulebot/pkg/utils"
)

type Bot struct {
	Telegram *handlers.Bot
}

type Bots interface {
	Registrar
	Starter
	Stopper
	Logger
}

type Registrar interface {
	Commands() error
	Handlers() error
}

type Starter interface {
	Start() error
}

type Stopper interface {
	Stop() error
}

type Logger interface {
	Logger() *log.Logger
}

var _ Bots = (*handlers.Bot)(nil)

type Config struct {
	Settings *config.Config
	Output   io.Writer
	Metrics  *metrics.Metrics
	Context  context.Context
}

func New(config Config) (*Bot, error) {
	settings := config.Settings
	if settings == nil {
		return nil, errors.New("settings are required")
	}
	if settings.Token == "" {
		return nil, errors.New("telegram token is required")
	}

	query, err := settings.Query()
	if err != nil {
		return nil, err
	}
	location, err := settings.Location()
	if err != nil {
		return nil, err
	}

	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	chats := make([]telebot.ChatID, len(settings.Weekly.Chats))
	for i, id := range settings.Weekly.Chats {
		chats[i] = telebot.ChatID(id)
	}

	schedule := &timetable.Formatter{
		Source:   timetable.NewClient(query, &http.Client{Timeout: settings.FetchTimeout}, config.Metrics),
		Location: location,
		Options:  timetable.Options{Groups: settings.ShowGroups},
	}

	tgBot, err := handlers.New(
		settings.Token,
		settings.PollTimeout,
		schedule,
		handlers.Weekly{Spec: settings.Weekly.Spec, Chats: chats},
		config.Metrics,
		utils.NewLogger(output, "[Telegram]", settings.Level()),
		config.Context,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating Telegram bot: %w", err)
	}

	return &Bot{Telegram: tgBot}, nil
}

func (b *Bot) Start() error {
	bot := b.Telegram
	bot.Logger().Debug(
		"Registering handlers",
		"type", fmt.Sprintf("%T", bot),
	)
	if err := bot.Handlers(); err != nil {
		bot.Logger().Error(
			"Failed to register handlers",
			"type", fmt.Sprintf("%T", bot),
			"error", err,
		)
		return err
	}

	if err := bot.Start(); err != nil {
		bot.Logger().Error(
			"Failed to start bot",
			"type", fmt.Sprintf("%T", bot),
			"error", err,
		)
		return err
	}
	bot.Logger().Info(
		"Bot started successfully",
		"type", fmt.Sprintf("%T", bot),
	)

	if err := bot.Commands(); err != nil {
		bot.Logger().Warn(
			"Failed to publish commands",
			"type", fmt.Sprintf("%T", bot),
			"error", err,
		)
	}

	return nil
}

func (b *Bot) Shutdown() error {
	b.Telegram.Logger().Info("Shutting down bots")

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		err := b.Telegram.Stop()
		if err != nil {
			b.Telegram.Logger().Error(
				"Failed to stop bot",
				"type", fmt.Sprintf("%T", b.Telegram),
				"error", err,
			)
		} else {
			b.Telegram.Logger().Info(
				"Bot stopped successfully",
				"type", fmt.Sprintf("%T", b.Telegram),
			)
		}
	}()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		b.Telegram.Logger().Error(
			"Bot did not stop in time",
			"type", fmt.Sprintf("%T", b.Telegram),
		)
	}

	return nil
}
