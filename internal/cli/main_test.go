package cli

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

func TestMain(m *testing.M) {
	mines.Log.SetOutput(io.Discard)
	mines.Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}
