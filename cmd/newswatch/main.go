package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newswatch/pkg/config"
	"github.com/umputun/newswatch/pkg/events"
	"github.com/umputun/newswatch/pkg/llm"
	"github.com/umputun/newswatch/pkg/monitor"
	"github.com/umputun/newswatch/pkg/repository"
	"github.com/umputun/newswatch/pkg/scraper"
	"github.com/umputun/newswatch/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

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

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	setupLog(opts.Debug, cfg.LLM.APIKey)

	log.Printf("[INFO] starting newswatch version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		log.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()
	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, debug bool) error {
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer repos.DB.Close()

	scr := scraper.New(scraper.Config{
		Timeout:      cfg.Scraper.Timeout,
		UserAgent:    cfg.Scraper.UserAgent,
		MinParagraph: cfg.Scraper.MinParagraph,
	})

	// summaries and rewrites are optional, everything else works without a key
	var writer *llm.Writer
	if cfg.LLM.APIKey != "" {
		writer = llm.NewWriter(cfg.LLM)
	} else {
		log.Print("[WARN] no LLM api key, summaries and rewrites disabled")
	}

	bus := events.NewBus()

	mgrParams := monitor.Params{
		Sources:  repos.Source,
		Articles: repos.Article,
		Scraper:  scr,
		Bus:      bus,
		Interval: time.Duration(cfg.Monitor.IntervalMinutes) * time.Minute,
		MaxPages: cfg.Monitor.MaxPages,
	}
	if writer != nil {
		mgrParams.Summarizer = writer
	}
	mgr := monitor.New(mgrParams)
	defer mgr.StopAll()

	if err := rearmSources(ctx, mgr, repos.Source); err != nil {
		return fmt.Errorf("re-arm sources: %w", err)
	}

	srvCfg := server.Config{
		Listen:  cfg.Server.Listen,
		Timeout: cfg.Server.Timeout,
		Version: revision,
		Debug:   debug,
	}
	var rewriter server.Rewriter
	if writer != nil {
		rewriter = writer
	}
	srv := server.New(srvCfg, repos.Source, repos.Article, mgr, rewriter, bus)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// rearmSources restarts monitoring for every active unpaused source, the
// scheduler state does not survive a restart
func rearmSources(ctx context.Context, mgr *monitor.Manager, store *repository.SourceRepository) error {
	sources, err := store.GetSources(ctx)
	if err != nil {
		return fmt.Errorf("load sources: %w", err)
	}

	// the group only bounds fan-out, timers must outlive it and keep the
	// long-lived ctx
	var g errgroup.Group
	g.SetLimit(4)
	count := 0
	for _, src := range sources {
		if !src.Active || src.Paused {
			continue
		}
		count++
		g.Go(func() error {
			if err := mgr.Start(ctx, src.ID, 0); err != nil {
				log.Printf("[WARN] failed to start monitoring for source %d: %v", src.ID, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if count > 0 {
		log.Printf("[INFO] monitoring re-armed for %d sources", count)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("[WARN] config file %s not found, using defaults", path)
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func setupLog(dbg bool, secs ...string) {
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

	var nonEmpty []string
	for _, s := range secs {
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
