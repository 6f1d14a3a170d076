package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-cli/internal/cli"
	"github.com/vancomm/minesweeper-cli/internal/mines"
)

// Load reads variables from the given .env files (".env" when none are
// given) without overriding the environment. Missing files are ignored.
func Load(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, f := range filenames {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("unable to load %s: %w", f, err)
		}
	}
	return nil
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

func LogFile() (string, bool) {
	path, ok := os.LookupEnv("MINES_LOG_FILE")
	return path, ok && path != ""
}

// LogLevel defaults to debug in development and to info otherwise.
func LogLevel() (logrus.Level, error) {
	levelStr, ok := os.LookupEnv("MINES_LOG_LEVEL")
	if !ok {
		if Development() {
			return logrus.DebugLevel, nil
		}
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid MINES_LOG_LEVEL: %w", err)
	}
	return level, nil
}

// Seed reads MINES_SEED as "a:b", the two PCG seed words.
func Seed() (*rand.Rand, bool, error) {
	seedStr, ok := os.LookupEnv("MINES_SEED")
	if !ok {
		return nil, false, nil
	}
	r, err := ParseSeed(seedStr)
	if err != nil {
		return nil, false, err
	}
	return r, true, nil
}

func ParseSeed(s string) (*rand.Rand, error) {
	first, second, found := strings.Cut(s, ":")
	if !found {
		return nil, fmt.Errorf(`seed must look like "a:b", got "%s"`, s)
	}
	a, err := strconv.ParseUint(first, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("unable to parse seed: %w", err)
	}
	b, err := strconv.ParseUint(second, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("unable to parse seed: %w", err)
	}
	return rand.New(rand.NewPCG(a, b)), nil
}

// DefaultDifficulty returns MINES_DIFFICULTY if it is set. It accepts the same
// values as the -difficulty flag. An unset variable means the player is asked.
func DefaultDifficulty() (mines.Difficulty, bool, error) {
	s, ok := os.LookupEnv("MINES_DIFFICULTY")
	if !ok || s == "" {
		return mines.Difficulty{}, false, nil
	}
	d, err := cli.ParseDifficulty(s)
	if err != nil {
		return mines.Difficulty{}, false, fmt.Errorf("invalid MINES_DIFFICULTY: %w", err)
	}
	return d, true, nil
}
