package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

type Options struct {
	Level logrus.Level

	// File, when set, receives every entry instead of the terminal, so that
	// log lines never interleave with the board.
	File string

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func (o Options) withDefaults() Options {
	if o.MaxSizeMB == 0 {
		o.MaxSizeMB = 10
	}
	if o.MaxBackups == 0 {
		o.MaxBackups = 3
	}
	if o.MaxAgeDays == 0 {
		o.MaxAgeDays = 28
	}
	return o
}

// Configure points log at stderr, or at a rotating file when opts.File is
// set.
func Configure(log *logrus.Logger, opts Options, stderr io.Writer) error {
	opts = opts.withDefaults()
	log.SetLevel(opts.Level)

	if opts.File == "" {
		log.SetOutput(stderr)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Level:      opts.Level,
		Formatter:  &logrus.JSONFormatter{TimestampFormat: time.RFC3339},
	})
	if err != nil {
		return fmt.Errorf("unable to create log file hook: %w", err)
	}

	log.SetOutput(io.Discard)
	log.AddHook(hook)
	return nil
}
