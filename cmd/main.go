package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	authservice "github.com/goserg/trucoserver/auth/service"
	authsqlite "github.com/goserg/trucoserver/auth/storage/sqlite"
	botsqlite "github.com/goserg/trucoserver/bot/botstorage/sqlite"
	"github.com/goserg/trucoserver/bot/tgbot"
	"github.com/goserg/trucoserver/internal/config"
	"github.com/goserg/trucoserver/internal/logger"
	"github.com/goserg/trucoserver/internal/metrics"
	"github.com/goserg/trucoserver/internal/service"
	"github.com/goserg/trucoserver/internal/storage"
	"github.com/goserg/trucoserver/internal/storage/sqlite"
	"github.com/goserg/trucoserver/internal/teamdraw"
	"github.com/goserg/trucoserver/internal/tlscert"
	"github.com/goserg/trucoserver/internal/web"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var serverConfig, botConfig string
	flag.StringVar(&serverConfig, "server-config", "configs/server.toml", "server config path")
	flag.StringVar(&botConfig, "bot-config", "configs/bot.toml", "telegram bot config path")
	flag.Parse()

	cfg, err := config.New(serverConfig, botConfig)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.Open(cfg.Server.SqliteFile)
	if err != nil {
		return err
	}
	defer db.Close()

	st := sqlite.New(db, log)
	m := metrics.New()
	players := service.NewPlayerService(st, log)
	tournaments := service.NewTournamentService(st, st, log)
	matches := service.NewMatchService(st, players, m, cfg.Server.PageSize, log)
	svc := service.Services{
		Players:     players,
		Tournaments: tournaments,
		Matches:     matches,
		Scoring:     service.NewScoring(matches, m, log),
		Draws:       service.NewDrawService(teamdraw.New(nil), players, tournaments, matches, m, log),
	}

	auth, err := authservice.New(ctx, cfg.Server.Auth, authsqlite.New(db, log))
	if err != nil {
		return err
	}

	if err := ensureCert(cfg.Server.TLS, log); err != nil {
		return err
	}
	server, err := web.New(svc, auth, m, cfg.Server, log)
	if err != nil {
		return err
	}

	if cfg.TgBot.Enabled {
		bot, err := tgbot.New(svc, botsqlite.New(db, log), cfg, log)
		if err != nil {
			return err
		}
		go bot.Run()
		defer bot.Stop()
	}

	errs := make(chan error, 1)
	go func() {
		errs <- server.Serve()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
	}
	return server.Shutdown()
}

func ensureCert(cfg config.TLS, log *logrus.Logger) error {
	if !cfg.Enabled() || !cfg.Generate || !tlscert.Missing(cfg.Cert, cfg.Key) {
		return nil
	}
	if err := tlscert.Generate(cfg.Cert, cfg.Key, cfg.Hosts); err != nil {
		return err
	}
	log.WithField("cert", cfg.Cert).Info("self-signed certificate generated")
	return nil
}
