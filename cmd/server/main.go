package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"schedulebot/pkg/config"
	"schedulebot/pkg/metrics"
	"schedulebot/pkg/server"
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

	m := metrics.New()
	b, err := bot.New(bot.Config{
		Settings: cfg,
		Output:   os.Stdout,
		Metrics:  m,
		Context:  ctx,
	})
	if err != nil {
		log.Fatalf("error creating bot: %v", err)
	}

	s := server.New(fmt.Sprintf(":%d", cfg.Port), m, utils.NewLogger(os.Stdout, "[Server]", cfg.Level()))
	if err := s.Run(ctx, b); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
