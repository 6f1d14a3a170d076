package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureStderr(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	require.NoError(t, Configure(log, Options{Level: logrus.InfoLevel}, &buf))

	log.Debug("hidden")
	log.WithField("game", "abc").Info("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "abc")
}

func TestConfigureFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "mines.log")

	log := logrus.New()
	require.NoError(t, Configure(log, Options{Level: logrus.DebugLevel, File: path}, &buf))

	log.WithField("game", "abc").Debug("board generated")
	log.Trace("too verbose")

	assert.Empty(t, buf.String(), "terminal output is discarded")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "board generated", entry["msg"])
	assert.Equal(t, "abc", entry["game"])
	assert.Equal(t, "debug", entry["level"])
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	assert.Equal(t, 10, o.MaxSizeMB)
	assert.Equal(t, 3, o.MaxBackups)
	assert.Equal(t, 28, o.MaxAgeDays)

	o = Options{MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1}.withDefaults()
	assert.Equal(t, Options{MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1}, o)
}
