package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInit_DisabledDiscards(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Enabled: false, Writer: &buf})
	Info("dropped", "k", 1)
	require.Zero(t, buf.Len())
}

func TestInit_TextRespectsLevel(t *testing.T) {
	defer Init(Options{})

	var buf bytes.Buffer
	Init(Options{Enabled: true, Writer: &buf, Level: slog.LevelWarn})

	Info("quiet")
	Warn("loud", "component", "freelist")

	out := buf.String()
	require.NotContains(t, out, "quiet")
	require.Contains(t, out, "loud")
	require.Contains(t, out, "component=freelist")
}

func TestInit_JSON(t *testing.T) {
	defer Init(Options{})

	var buf bytes.Buffer
	Init(Options{Enabled: true, Writer: &buf, JSON: true})
	Error("boom", "thread", 7)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &rec))
	require.Equal(t, "boom", rec["msg"])
	require.Equal(t, "ERROR", rec["level"])
	require.EqualValues(t, 7, rec["thread"])
}
