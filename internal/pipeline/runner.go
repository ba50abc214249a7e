// Package pipeline orchestrates library scanning, per-directory season
// inference, and the rename pass with its summary reporting.
package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/shownamer/internal/config"
	"github.com/backmassage/shownamer/internal/display"
	"github.com/backmassage/shownamer/internal/logging"
	"github.com/backmassage/shownamer/internal/naming"
)

// Run is the top-level batch entry point. It discovers video files, processes
// each directory as a unit, and returns aggregate stats.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats

	dirs, err := Discover(cfg.MediaFolder)
	if err != nil {
		log.Errorf("File discovery failed: %v", err)
		return stats
	}

	for _, dir := range dirs {
		processDirectory(ctx, cfg, log, dir, &stats)
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
	}

	logSummary(cfg, log, &stats)
	return stats
}

// candidate is one file of a directory with its parse result.
type candidate struct {
	name   string
	parsed naming.ParsedEpisode
	ok     bool
}

// processDirectory runs the two passes over one directory: parse every file
// first so the season can be inferred from all siblings, then decide and
// apply renames.
func processDirectory(ctx context.Context, cfg *config.Config, log *logging.Logger, dir Directory, stats *RunStats) {
	candidates := make([]candidate, 0, len(dir.Files))
	parses := make([]naming.ParsedEpisode, 0, len(dir.Files))
	for _, name := range dir.Files {
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		p, ok := naming.Parse(stem)
		candidates = append(candidates, candidate{name: name, parsed: p, ok: ok})
		if ok {
			parses = append(parses, p)
		}
	}

	inferred, haveInferred := naming.InferSeason(parses)
	if haveInferred {
		log.Debugf("Inferred season %d for %s", inferred, dir.Path)
	}

	for _, c := range candidates {
		if ctx.Err() != nil {
			return
		}
		stats.Total++
		path := filepath.Join(dir.Path, c.name)

		if !c.ok {
			log.Warnf("Could not parse episode info from: %s", path)
			stats.Skipped++
			continue
		}

		p := c.parsed
		if !p.HasSeason && haveInferred {
			p.Season = inferred
			p.HasSeason = true
		}

		rel, err := filepath.Rel(cfg.MediaFolder, path)
		if err != nil {
			rel = c.name
		}
		p.Show = naming.ResolveShowName(rel, p.Show)

		newName := naming.BuildStem(p) + filepath.Ext(c.name)
		renameFile(cfg, log, dir.Path, c.name, newName, stats)
	}
}

// renameFile applies one rename decision, honoring dry-run and refusing to
// clobber an existing destination.
func renameFile(cfg *config.Config, log *logging.Logger, dir, oldName, newName string, stats *RunStats) {
	if oldName == newName {
		log.Infof("Already compliant: %s", oldName)
		stats.Skipped++
		return
	}

	oldPath := filepath.Join(dir, oldName)
	newPath := filepath.Join(dir, newName)

	if cfg.DryRun {
		log.Infof("[DRY RUN] %s", display.Arrow(oldName, newName))
		stats.Renamed++
		return
	}

	// A destination that already exists blocks the rename, unless it is the
	// same file (case-only renames on case-insensitive filesystems).
	if newInfo, err := os.Stat(newPath); err == nil {
		oldInfo, statErr := os.Stat(oldPath)
		if statErr != nil || !os.SameFile(oldInfo, newInfo) {
			log.Warnf("Target already exists, skipping: %s", newPath)
			stats.Skipped++
			return
		}
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		log.Errorf("Rename failed for %s: %v", oldPath, err)
		stats.Skipped++
		return
	}
	log.Infof("Renamed: %s", display.Arrow(oldName, newName))
	stats.Renamed++
}

// logSummary prints the end-of-run counters.
func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	verb := "renamed"
	if cfg.DryRun {
		verb = "would be renamed"
	}
	log.Infof("Done: %s %s, %d skipped.",
		display.FormatCount(stats.Renamed, "file"), verb, stats.Skipped)
}
