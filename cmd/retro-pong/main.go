package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/retro-pong/audio"
	"github.com/lixenwraith/retro-pong/engine"
)

const sentryFlushTimeout = 2 * time.Second

func main() {
	os.Exit(realMain(os.Args[1:], os.Stderr))
}

// realMain returns the process exit code so deferred cleanup always runs
func realMain(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("retro-pong", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts := registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := opts.config()
	if err != nil {
		fmt.Fprintf(stderr, "Invalid flags: %v\n", err)
		fs.Usage()
		return 2
	}

	log, logFile := setupLogging(opts.debug)
	if logFile != nil {
		defer logFile.Close()
	}

	if opts.sentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: opts.sentryDSN, AttachStacktrace: true}); err != nil {
			log.WithError(err).Warn("sentry init failed, crash reports disabled")
		} else {
			sentry.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("seed", fmt.Sprint(cfg.Seed))
				scope.SetTag("lang", cfg.Presentation.Language.String())
			})
			defer sentry.Flush(sentryFlushTimeout)
		}
	}

	if opts.statsview != "" {
		// set configurations before calling statsview.New
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(opts.statsview))
		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
		log.WithField("addr", opts.statsview).Info("statsview listening")
	}

	if err := run(cfg, log, stderr); err != nil {
		log.WithError(err).Error("game exited with error")
		fmt.Fprintf(stderr, "retro-pong: %v\n", err)
		return 1
	}
	return 0
}

// crashed restores the terminal, reports r and describes it on w
// The terminal must be finalized before printing or the trace is lost in raw mode
func crashed(r any, fini func(), w io.Writer) error {
	fini()
	if hub := sentry.CurrentHub(); hub.Client() != nil {
		hub.Recover(r)
	}
	fmt.Fprintf(w, "\n\x1b[31mRETRO-PONG CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(w, "Stack Trace:\n%s\n", debug.Stack())
	return fmt.Errorf("crashed: %v", r)
}

// run owns the terminal for the lifetime of the game
func run(cfg engine.Config, log *logrus.Logger, stderr io.Writer) (err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	// Panic Recovery: restore the terminal before anything is printed
	defer func() {
		if r := recover(); r != nil {
			err = crashed(r, screen.Fini, stderr)
		}
	}()
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	sound := audio.NewSoundManager(&cfg.Audio, log)
	if err := sound.Initialize(); err != nil {
		log.WithError(err).Warn("audio unavailable, continuing without sound")
	} else {
		sound.StartMusic()
	}
	defer sound.Cleanup()

	game, err := engine.NewGame(cfg, screen, sound, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(logrus.Fields{
		"seed":   cfg.Seed,
		"target": cfg.Match.TargetScore,
		"layout": cfg.Presentation.Layout,
	}).Info("retro-pong started")

	if err := game.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
