package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AVick23/ML-Manager/bot/botstorage/sqlite"
	"github.com/AVick23/ML-Manager/bot/tgbot"
	"github.com/AVick23/ML-Manager/internal/config"
	"github.com/AVick23/ML-Manager/internal/logger"
	"github.com/AVick23/ML-Manager/internal/notify"
	"github.com/AVick23/ML-Manager/internal/scheduler"
	"github.com/AVick23/ML-Manager/internal/service"
	eventstorage "github.com/AVick23/ML-Manager/internal/storage/sqlite"
	"github.com/AVick23/ML-Manager/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	eventStore, err := eventstorage.New(log, cfg.Server)
	if err != nil {
		return err
	}
	botStore, err := sqlite.New(log, cfg.TgBot)
	if err != nil {
		return err
	}

	bot, err := tgbot.New(cfg, botStore, log)
	if err != nil {
		return err
	}
	channels := notify.NewChannelResolver(cfg.TgBot.GroupID, bot.LastGroupID)
	eventService := service.New(eventStore, eventStore, eventStore, bot, channels, log)
	bot.RegisterCommands(eventService)

	sched := scheduler.New(eventStore, botStore, bot, channels, cfg.Scheduler, log)

	srv, err := web.New(eventService, botStore, cfg.Server)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 3)
	running := 0
	if cfg.Server.TgBotEnabled {
		running++
		go func() {
			errCh <- bot.Run(ctx)
		}()
	}
	running++
	go func() {
		errCh <- sched.Run(ctx)
	}()
	running++
	go func() {
		errCh <- srv.Serve()
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-errCh:
		running--
		if err != nil && !errors.Is(err, context.Canceled) {
			log.WithError(err).Error("component failed")
			runErr = err
		}
	}
	stop()
	if err := srv.Shutdown(); err != nil && runErr == nil {
		runErr = err
	}
	// Wait for every component to return. The scheduler finishes its
	// in-flight tick before it does, so a call-up sent just before the
	// signal still gets marked.
	for ; running > 0; running-- {
		err := <-errCh
		if err != nil && !errors.Is(err, context.Canceled) && runErr == nil {
			runErr = err
		}
	}
	return runErr
}
