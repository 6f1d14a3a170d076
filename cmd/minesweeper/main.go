package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-cli/internal/cli"
	"github.com/vancomm/minesweeper-cli/internal/config"
	"github.com/vancomm/minesweeper-cli/internal/logging"
	"github.com/vancomm/minesweeper-cli/internal/mines"
)

var (
	log = mines.Log

	envPath        string
	difficultyFlag string
	seedFlag       string
	logFileFlag    string
)

func init() {
	const (
		defaultEnvPath  = ".env"
		envUsage        = "dotenv file to read before the environment"
		difficultyUsage = `board to play: "easy", "medium", "hard", "size:bombs" or "size=16 bombs=40"`
		seedUsage       = `two seed words "a:b" for a reproducible board`
		logFileUsage    = "write logs to this file instead of stderr"
	)
	flag.StringVar(&envPath, "env", defaultEnvPath, envUsage)
	flag.StringVar(&envPath, "e", defaultEnvPath, envUsage+" (shorthand)")
	flag.StringVar(&difficultyFlag, "difficulty", "", difficultyUsage)
	flag.StringVar(&difficultyFlag, "d", "", difficultyUsage+" (shorthand)")
	flag.StringVar(&seedFlag, "seed", "", seedUsage)
	flag.StringVar(&seedFlag, "s", "", seedUsage+" (shorthand)")
	flag.StringVar(&logFileFlag, "log-file", "", logFileUsage)
}

func setupLogging() {
	level, err := config.LogLevel()
	if err != nil {
		log.Fatal(err)
	}
	opts := logging.Options{Level: level}
	if path, ok := config.LogFile(); ok {
		opts.File = path
	}
	if logFileFlag != "" {
		opts.File = logFileFlag
	}
	if err := logging.Configure(log, opts, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func sessionOptions() (*cli.Options, error) {
	opts := &cli.Options{Logger: log}

	if difficultyFlag != "" {
		d, err := cli.ParseDifficulty(difficultyFlag)
		if err != nil {
			return nil, fmt.Errorf("invalid -difficulty: %w", err)
		}
		opts.Difficulty = &d
	} else if d, ok, err := config.DefaultDifficulty(); err != nil {
		return nil, err
	} else if ok {
		opts.Difficulty = &d
	}

	var err error
	if seedFlag != "" {
		opts.Rand, err = config.ParseSeed(seedFlag)
	} else {
		opts.Rand, _, err = config.Seed()
	}
	if err != nil {
		return nil, err
	}

	return opts, nil
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	if err := config.Load(envPath); err != nil {
		log.Fatal(err)
	}

	setupLogging()

	log.WithFields(logrus.Fields{
		"development": config.Development(),
		"level":       log.GetLevel().String(),
	}).Debug("starting up")

	opts, err := sessionOptions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	session := cli.NewSession(os.Stdin, os.Stdout, opts)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		defer stop()
		return session.Run(gCtx)
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("shutting down")
		return nil
	})

	err = g.Wait()
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		log.Debug("bye")
	case errors.Is(err, cli.ErrTooManyInvalidCommands),
		errors.Is(err, mines.ErrInvalidConfiguration):
		log.WithError(err).Info("exit reason")
		os.Exit(1)
	default:
		log.WithError(err).Error("exit reason")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
