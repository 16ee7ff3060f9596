//go:build !test

/* main.go
 * The "main" method for running the service. Serves the HTTP api and, when enabled, the discord bot
 * Usage: go run . -mode="serve" -discord="true"
 *        go run . -mode="top"       prints the current top players as JSON and exits
 *        go run . -mode="fixtures"  prints the current gameweek's fixtures as JSON and exits
 * Authors: Zachary Bower
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"fpl-insights/api/api"
	"fpl-insights/api/external"
	"fpl-insights/bot"
	"fpl-insights/config"
	"fpl-insights/logger"
	"fpl-insights/web"
)

func main() {
	//Flags
	modePtr := flag.String("mode", "serve", "What to run: serve, top or fixtures")
	discordPtr := flag.String("discord", "false", "Run the discord bot alongside the HTTP server: takes true or false as argument")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	logCfg.Environment = cfg.Environment
	logCfg.Version = cfg.Version
	log := logger.InitLogger(logCfg)

	runDiscord, err := convertStrToBool(*discordPtr)
	if err != nil {
		log.Error("Invalid \"discord\" flag. Should be true or false", "value", *discordPtr)
		os.Exit(1)
	}

	client := external.NewClient(external.ClientConfig{
		BaseURL:   cfg.FPLBaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.RequestTimeout,
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
		Logger:    log,
	})
	apiPtr, err := api.NewAPI(client, cfg.Season, cfg.Location())
	if err != nil {
		log.Error("Failed to initialize API", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *modePtr {
	case "serve":
		err = serve(ctx, cfg, apiPtr, runDiscord)
	case "top":
		err = printTopPlayers(ctx, apiPtr)
	case "fixtures":
		err = printLiveFixtures(ctx, apiPtr)
	default:
		err = fmt.Errorf("invalid mode %q, expected serve, top or fixtures", *modePtr)
	}

	if err != nil {
		log.Error("Exiting with error", "mode", *modePtr, "error", err)
		stop()
		os.Exit(1)
	}
}

// serve runs the HTTP server, and the discord bot if enabled, until ctx is cancelled or either of them fails
func serve(ctx context.Context, cfg *config.Config, apiPtr *api.API, runDiscord bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	running := 1

	go func() {
		errCh <- web.Start(ctx, web.Config{Addr: cfg.HTTPAddr, API: apiPtr})
	}()

	if runDiscord {
		discordBot, err := bot.NewBot(cfg.DiscordToken, apiPtr)
		if err != nil {
			return fmt.Errorf("failed to initialize bot: %w", err)
		}
		running++
		go func() {
			errCh <- discordBot.Run(ctx)
		}()
	}

	// The first one to stop takes the other down with it
	var firstErr error
	for range running {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
		}
		cancel()
	}
	slog.Info("Shutdown complete")
	return firstErr
}

func printTopPlayers(ctx context.Context, apiPtr *api.API) error {
	top, err := apiPtr.GetTopPlayers(ctx)
	if err != nil {
		return err
	}
	return printJSON(os.Stdout, top)
}

func printLiveFixtures(ctx context.Context, apiPtr *api.API) error {
	live, err := apiPtr.GetLiveFixtures(ctx)
	if err != nil {
		return err
	}
	return printJSON(os.Stdout, live)
}
