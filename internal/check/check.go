// Package check implements --check mode: it prints the effective
// configuration, the recognized filename patterns, and the supported video
// extensions so a user can see what a run would act on.
package check

import (
	"os"
	"strings"

	"github.com/backmassage/shownamer/internal/config"
	"github.com/backmassage/shownamer/internal/naming"
	"github.com/backmassage/shownamer/internal/pipeline"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
}

// RunCheck runs the informational --check flow. It does not rename anything
// and never fails the process.
func RunCheck(cfg *config.Config, log Logger) {
	log.Infof("=== Configuration ===")
	if cfg.MediaFolder == "" {
		log.Warnf("Media folder: (not set)")
	} else if fi, err := os.Stat(cfg.MediaFolder); err != nil || !fi.IsDir() {
		log.Warnf("Media folder: %s (not a directory)", cfg.MediaFolder)
	} else {
		log.Infof("Media folder: %s", cfg.MediaFolder)
	}
	log.Infof("Dry run: %v", cfg.DryRun)
	log.Infof("Watch mode: %v", cfg.Watch)
	if cfg.LogFile != "" {
		log.Infof("Log file: %s", cfg.LogFile)
	}

	log.Infof("=== Recognized patterns ===")
	for _, r := range naming.Recognizers {
		log.Infof("  %-16s %s", r.Name, r.Pattern.String())
	}

	log.Infof("=== Video extensions ===")
	log.Infof("  %s", strings.Join(pipeline.VideoExtensions(), " "))
}
