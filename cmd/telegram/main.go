package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"schedulebot/pkg/config"
	"schedulebot/pkg/metrics"
	"schedulebot/pkg/telegram"
	"schedulebot/pkg/utils"
)

func main() {
	defer utils.LogOutput(os.Stdout)()
	ctx, done := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer done()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	log.SetLevel(cfg.Level())

	b, err := bot.New(bot.Config{
		Settings: cfg,
		Output:   os.Stdout,
		Metrics:  metrics.New(),
		Context:  ctx,
	})
	if err != nil {
		log.Fatalf("error creating bot: %v", err)
	}

	if err := b.Start(); err != nil {
		log.Fatalf("error starting bot: %v", err)
	}

	<-ctx.Done()

	if err := b.Shutdown(); err != nil {
		log.Fatalf("error shutting down bot: %v", err)
	}
}
