package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/astrolabe/pkg/bot"
	"github.com/umputun/astrolabe/pkg/config"
	"github.com/umputun/astrolabe/pkg/feed"
	"github.com/umputun/astrolabe/pkg/gate"
	"github.com/umputun/astrolabe/pkg/llm"
	"github.com/umputun/astrolabe/pkg/misskey"
	"github.com/umputun/astrolabe/pkg/reconcile"
	"github.com/umputun/astrolabe/pkg/repository"
	"github.com/umputun/astrolabe/pkg/retry"
	"github.com/umputun/astrolabe/pkg/scheduler"
	"github.com/umputun/astrolabe/pkg/stream"
	"github.com/umputun/astrolabe/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"astrolabe.yml" description:"configuration file"`
	DB     string `long:"db" env:"ASTROLABE_DB" description:"database DSN, overrides config"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"status server listen address, overrides config"`

	NoStream    bool `long:"no-stream" env:"NO_STREAM" description:"don't connect to streaming channels"`
	NoSchedule  bool `long:"no-schedule" env:"NO_SCHEDULE" description:"don't run scheduled jobs and maintenance"`
	Maintenance bool `long:"maintenance" description:"run maintenance once and exit"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	SetupLog(opts.Debug)
	lgr.Printf("[INFO] starting astrolabe version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	lgr.Print("[INFO] shutdown complete")
}

// app holds wired components
type app struct {
	repos      *repository.Repositories
	dispatcher *stream.Dispatcher
	scheduler  *scheduler.Scheduler
	server     *server.Server
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.DB != "" {
		cfg.Database.DSN = opts.DB
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	SetupLog(opts.Debug, cfg.Misskey.Token, cfg.LLM.APIKey, cfg.Server.AdminPassword)

	a, err := newApp(ctx, cfg, opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	if opts.Maintenance {
		return a.scheduler.Maintenance(ctx)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.server.Run(gctx) })

	if !opts.NoStream {
		g.Go(func() error {
			if err := a.dispatcher.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("stream dispatcher: %w", err)
			}
			return nil
		})
	}

	if !opts.NoSchedule {
		if err := a.scheduler.Start(gctx); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
		g.Go(func() error {
			<-gctx.Done()
			a.scheduler.Stop()
			return nil
		})
	}

	return g.Wait()
}

// newApp opens the store and wires the bot components
func newApp(ctx context.Context, cfg *config.Config, opts Opts) (*app, error) {
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	client := misskey.NewClient(cfg.Misskey, repos.KV)
	postGate := gate.NewPostGate(repos.KV)
	chatGate := gate.NewChatGate(repos.KV)
	poster := bot.NewPoster(client, postGate, cfg.Misskey.AdminUserID)
	notifier := bot.NewNotifier(repos.Audit, poster)

	var chat bot.Asker // nil disables chat replies
	if cfg.LLM.Enabled {
		chat = llm.NewChat(cfg.LLM)
		lgr.Printf("[INFO] chat replies enabled, model %s", cfg.LLM.Model)
	}

	mentions := bot.NewMentionHandler(bot.MentionParams{
		BotUserID: cfg.Misskey.BotUserID,
		Poster:    poster,
		PostGate:  postGate,
		ChatGate:  chatGate,
		Chat:      chat,
		Notifier:  notifier,
		JokeRate:  cfg.LLM.JokeRate,
	})
	reconciler := reconcile.New(client)

	dispatcher := stream.New(cfg.Misskey, cfg.Stream, stream.Handlers{
		Mentions: mentions,
		Follows:  reconciler,
		Observer: bot.NewObserver(repos.Observation),
	})

	jobs := bot.NewJobs(bot.JobsParams{
		Poster:   poster,
		KV:       repos.KV,
		Menu:     repos.Menu,
		Social:   client,
		Feeds:    feed.NewParser(30*time.Second, "astrolabe/"+revision),
		Notifier: notifier,
	})

	sched := scheduler.NewScheduler(scheduler.Params{
		Jobs:         jobs,
		PostGate:     postGate,
		ChatGate:     chatGate,
		Reconciler:   reconciler,
		Observations: repos.Observation,
		Audit:        repos.Audit,
		Notifier:     notifier,
		BotUserID:    cfg.Misskey.BotUserID,
		Config:       cfg.Schedule,
		Location:     cfg.Location(),
		JobRetry:     retry.Policy{Attempts: 3, Delay: time.Minute},
	})

	srv := server.New(server.Params{
		Config:    cfg,
		Gates:     []server.Gate{postGate, chatGate},
		Scheduler: sched,
		Store:     repos,
		Version:   revision,
		Debug:     opts.Debug,
	})

	return &app{repos: repos, dispatcher: dispatcher, scheduler: sched, server: srv}, nil
}

// SetupLog configures lgr and the std logger, secrets are masked in every line
func SetupLog(dbg bool, secrets ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	nonEmpty := make([]string, 0, len(secrets))
	for _, s := range secrets {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	if len(nonEmpty) > 0 {
		logOpts = append(logOpts, lgr.Secret(nonEmpty...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
