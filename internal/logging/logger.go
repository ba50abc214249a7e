// Package logging wires logrus to the runtime configuration: color handling,
// verbosity, and an optional plain-text file sink.
package logging

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/backmassage/shownamer/internal/config"
	"github.com/backmassage/shownamer/internal/term"
)

// Logger is a logrus logger with an optional file sink attached as a hook.
type Logger struct {
	*logrus.Logger
	file *os.File
}

// NewLogger configures terminal colors from cfg and builds the logger.
// Call Close when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		ForceColors:     term.Enabled(),
		DisableColors:   !term.Enabled(),
	})
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	l := &Logger{Logger: log}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		l.file = f
		log.AddHook(&fileHook{
			file: f,
			formatter: &logrus.TextFormatter{
				FullTimestamp:   true,
				TimestampFormat: "2006-01-02 15:04:05",
				DisableColors:   true,
			},
		})
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// fileHook mirrors every entry to the log file, always uncolored.
type fileHook struct {
	file      *os.File
	formatter logrus.Formatter
}

func (h *fileHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *fileHook) Fire(entry *logrus.Entry) error {
	b, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.file.Write(b)
	return err
}
