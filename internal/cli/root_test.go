package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/config"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/platform/logging"
)

func TestNewRootCmd_RegistersCommands(t *testing.T) {
	root := NewRootCmd()

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"season", "opponents", "trend", "players", "tactical", "quality", "validate", "load"} {
		assert.Contains(t, names, want)
	}

	for _, flag := range []string{"source", "club", "output", "log-level"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "persistent flag %q should exist", flag)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.Config{DataSource: config.SourcePostgres, ClubName: "Arsenal", LogLevel: logging.LevelInfo}
	flags := NewRootCmd().PersistentFlags()
	require.NoError(t, flags.Set("source", " Memory "))
	require.NoError(t, flags.Set("club", "Arsenal Women"))
	require.NoError(t, flags.Set("log-level", "debug"))

	require.NoError(t, applyOverrides(&cfg, flags))
	assert.Equal(t, config.SourceMemory, cfg.DataSource)
	assert.Equal(t, "Arsenal Women", cfg.ClubName)
	assert.Equal(t, logging.LevelDebug, cfg.LogLevel)

	bad := NewRootCmd().PersistentFlags()
	require.NoError(t, bad.Set("source", "sqlite"))
	if err := applyOverrides(&cfg, bad); err == nil {
		t.Fatalf("expected error for unknown source")
	}
}

func TestApplyOverrides_UnsetFlagsKeepConfig(t *testing.T) {
	cfg := config.Config{DataSource: config.SourcePostgres, ClubName: "Arsenal", LogLevel: logging.LevelWarn}

	require.NoError(t, applyOverrides(&cfg, NewRootCmd().PersistentFlags()))
	assert.Equal(t, config.SourcePostgres, cfg.DataSource)
	assert.Equal(t, "Arsenal", cfg.ClubName)
	assert.Equal(t, logging.LevelWarn, cfg.LogLevel)
}

func TestRootCmd_MemorySourceEndToEnd(t *testing.T) {
	t.Setenv("DOTENV_PATH", "")
	t.Setenv("APP_ENV", "dev")
	t.Setenv("CLUB_NAME", "Arsenal")

	state := &rootState{}
	root := newRootCmd(state)
	defer state.close()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--source", "memory", "--log-level", "error", "season"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "2024-25")
	assert.Contains(t, out.String(), "2023-24")
}

func TestRootCmd_RejectsUnknownOutput(t *testing.T) {
	state := &rootState{}
	root := newRootCmd(state)
	defer state.close()

	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--source", "memory", "-o", "yaml", "quality"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --output")
}
