// Command shownamer is the entrypoint for the episode renamer CLI.
// It parses flags and environment, and either prints diagnostics (--check)
// or runs the rename pass, optionally staying resident in watch mode.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/backmassage/shownamer/internal/check"
	"github.com/backmassage/shownamer/internal/config"
	"github.com/backmassage/shownamer/internal/display"
	"github.com/backmassage/shownamer/internal/logging"
	"github.com/backmassage/shownamer/internal/pipeline"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 1. Load config from defaults, CLI flags, and environment; exit on
	//    parse or validation error.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "shownamer: %v\n", err)
		return 1
	}
	if err := cfg.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "shownamer: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "shownamer: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shownamer: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()

	// 2. If user asked for diagnostics, print them and exit successfully.
	if cfg.CheckOnly {
		check.RunCheck(&cfg, log)
		return 0
	}

	// 3. Resolve the media folder; it must exist before anything is touched.
	abs, err := filepath.Abs(cfg.MediaFolder)
	if err == nil {
		abs, err = filepath.EvalSymlinks(abs)
	}
	if err != nil {
		log.Errorf("Media folder not found: %s", cfg.MediaFolder)
		return 1
	}
	if fi, err := os.Stat(abs); err != nil || !fi.IsDir() {
		log.Errorf("Not a directory: %s", cfg.MediaFolder)
		return 1
	}
	cfg.MediaFolder = abs

	log.Infof("=== shownamer v%s ===", config.Version)
	log.Infof("Processing folder: %s", cfg.MediaFolder)
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be renamed")
	}

	// 4. Run the rename pass, cancellable via SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline.Run(ctx, &cfg, log)

	// 5. Stay resident in watch mode until interrupted.
	if cfg.Watch {
		if err := pipeline.Watch(ctx, &cfg, log); err != nil {
			log.Errorf("Watch failed: %v", err)
			return 1
		}
	}
	return 0
}
