package logging_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/katalvlaran/lvtransport/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestNewTo_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewTo(&buf, slog.LevelInfo)
	log.Info("solve failed", "error", errors.New("boom"), "method", "vogel-approximation")

	out := buf.String()
	require.Contains(t, out, "err=boom")
	require.NotContains(t, out, "error=")
	require.Contains(t, out, "method=vogel-approximation")
}

func TestNewTo_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewTo(&buf, logging.Level(false))
	log.Debug("hidden")
	log.Info("hidden too")
	require.Empty(t, buf.String())

	log = logging.NewTo(&buf, logging.Level(true))
	log.Debug("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestNewNop(t *testing.T) {
	require.NotPanics(t, func() { logging.NewNop().Error("nothing", "k", 1) })
}
