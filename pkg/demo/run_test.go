package demo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/patternworks/patterns/pkg/config"
	"github.com/patternworks/patterns/pkg/errors"
	"github.com/patternworks/patterns/pkg/logging"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Cache.Seed = map[string]string{"greeting": "hello"}
	cfg.Cache.Probe = "missing"
	cfg.Database.Query = "SELECT 1"
	cfg.Database.Backends = []string{"mysql", "sqlite"}
	cfg.Blog.Publisher = "Blog"
	cfg.Blog.Subscribers = []string{"A", "B"}
	cfg.Blog.Articles = []string{"T1", "T2"}
	return cfg
}

func testLogger(t *testing.T) *logging.ColoredLogger {
	t.Helper()
	logger, err := logging.NewColoredLogger(logging.ComponentDemo, false)
	require.NoError(t, err)
	return logger
}

func TestRun_OutputSequence(t *testing.T) {
	var buf bytes.Buffer

	err := Run(testConfig(), &buf, testLogger(t))
	require.NoError(t, err)

	want := strings.Join([]string{
		"cache[greeting] = hello",
		"cache[missing] is not set",
		"Connected to MySQL database",
		"MySQL executing query: SELECT 1",
		"Connected to SQLite database",
		"SQLite executing query: SELECT 1",
		"Blog published article: T1",
		"A received notification: T1",
		"B received notification: T1",
		"Blog published article: T2",
		"B received notification: T2",
	}, "\n") + "\n"

	require.Equal(t, want, buf.String())
}

func TestRun_UnknownBackend(t *testing.T) {
	cfg := testConfig()
	cfg.Database.Backends = []string{"oracle"}

	var buf bytes.Buffer
	err := Run(cfg, &buf, testLogger(t))

	require.Error(t, err)
	require.ErrorIs(t, err, errors.ErrInvalidInput)
}
