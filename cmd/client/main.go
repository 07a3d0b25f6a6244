package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/dkeye/ChatSync/internal/adapters/api"
	"github.com/dkeye/ChatSync/internal/adapters/push"
	"github.com/dkeye/ChatSync/internal/adapters/ui"
	"github.com/dkeye/ChatSync/internal/app/action"
	"github.com/dkeye/ChatSync/internal/app/controller"
	"github.com/dkeye/ChatSync/internal/app/effects"
	"github.com/dkeye/ChatSync/internal/app/orch"
	"github.com/dkeye/ChatSync/internal/app/store"
	"github.com/dkeye/ChatSync/internal/config"
	"github.com/dkeye/ChatSync/internal/domain"
)

func main() {
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	st := store.New(store.InitialState())
	router := ui.NewRouter(cfg.DefaultView)
	router.OnChange(func(path string) { fmt.Fprintf(os.Stdout, "view: %s\n", path) })
	alerts := ui.NewLogAlerter(os.Stdout)

	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)
	o := &orch.Orchestrator{
		Users:       api.NewUserService(client),
		Rooms:       api.NewRoomService(client),
		Auth:        api.NewAuthService(client),
		Nav:         router,
		Alerts:      alerts,
		DefaultView: cfg.DefaultView,
	}

	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	engine := effects.New(st)
	o.Bind(engine)
	engine.Start(ctx)

	if cfg.UserID != "" {
		st.Dispatch(action.GetCurrentUser{UserID: domain.UserID(cfg.UserID)})
	}

	console := controller.NewConsole(st, controller.NewSignupController(st, alerts), router, alerts, os.Stdout)
	feed := push.NewFeed(cfg.PushURL, st)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return console.Run(gctx, os.Stdin)
	})
	g.Go(func() error {
		return feed.Run(gctx)
	})

	log.Info().Str("api", cfg.APIBaseURL).Str("push", cfg.PushURL).Msg("ChatSync client started, type help")
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("client stopped with error")
	}

	engine.Stop()
	st.Close()
	log.Info().Msg("Client exited gracefully")
}
