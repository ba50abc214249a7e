package config

// This file implements CLI flag parsing and help text.
// Color flags (--color / --no-color) are applied after Parse so the Config
// default holds unless one is set.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// Version is shown in --version, help, and the startup banner; override at
// build time with -ldflags "-X github.com/backmassage/shownamer/internal/config.Version=...".
var Version = "1.0.0"

// ParseFlags parses os.Args into cfg. On --help or --version it prints and exits.
// On error it returns non-nil (e.g. unknown flag, too many positional args).
func ParseFlags(cfg *Config) error {
	fs := flag.NewFlagSet("shownamer", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	var extra extraFlags

	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview renames without touching files")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&cfg.Watch, "watch", false, "Keep running and re-scan on changes")
	fs.BoolVar(&cfg.Watch, "w", false, "Same as --watch")

	fs.StringVar(&cfg.EnvFile, "env-file", "", "Load environment from file (default: .env if present)")
	fs.BoolVar(&cfg.EnvOverride, "env-override", false, "Env file values override existing variables")

	fs.BoolVar(&extra.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&extra.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Show recognized patterns and configuration, then exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")

	fs.BoolVar(&extra.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&extra.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&extra.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&extra.showHelp, "h", false, "Same as --help")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if extra.noColor {
		cfg.ColorMode = ColorNever
	} else if extra.forceColor {
		cfg.ColorMode = ColorAlways
	}

	if extra.showHelp {
		printUsage(fs)
		os.Exit(0)
	}
	if extra.showVersion {
		fmt.Fprintln(os.Stdout, "shownamer v"+Version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// extraFlags holds flags that are applied after Parse or trigger an exit.
type extraFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// parsePositionalArgs sets MediaFolder from the optional positional arg.
// When absent it stays empty and MEDIA_FOLDER may fill it later.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	switch len(args) {
	case 0:
		return nil
	case 1:
		cfg.MediaFolder = NormalizeDirArg(args[0])
		return nil
	default:
		return fmt.Errorf("too many arguments: %s", strings.Join(args[1:], " "))
	}
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "shownamer v" + Version + " - Jellyfin-friendly episode renamer"},
		{"", ""},
		{"  shownamer [OPTIONS] [media_folder]", ""},
		{"", ""},
		{"  The media folder may also come from MEDIA_FOLDER (env or .env file).", ""},
		{"", ""},
		{"Behavior", ""},
		{"  -d, --dry-run", "Preview renames without touching files"},
		{"  -w, --watch", "Keep running and re-scan on changes"},
		{"", ""},
		{"Environment", ""},
		{"  --env-file <path>", "Load environment from file (default: .env if present)"},
		{"  --env-override", "Env file values override existing variables"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Show recognized patterns and configuration"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
