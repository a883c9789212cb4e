package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/app"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/config"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/analytics"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/infrastructure/repository/memory"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/platform/logging"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/usecase"
)

func fixedNow() time.Time {
	return time.Date(2024, 10, 21, 12, 0, 0, 0, time.UTC)
}

func newTestEnv(t *testing.T, seeded bool, output string) *Env {
	t.Helper()

	repos := app.Repositories{
		Matches: memory.NewMatchRepository(nil),
		Shots:   memory.NewShotRepository(nil),
		Club:    memory.SeedClub,
	}
	if seeded {
		repos.Matches = memory.NewMatchRepository(memory.SeedMatches())
		repos.Shots = memory.NewShotRepository(memory.SeedShots())
	}

	env := NewEnv(config.Config{PlayerStatsWorkers: 2, TrendWindowDefault: 3}, repos, logging.NewNop(), fixedNow)
	env.Output = output
	return env
}

func execute(t *testing.T, env *Env, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(WithEnv(context.Background(), env))
	return out.String(), err
}

func TestCommandDefinitions(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		use   string
		flags []string
	}{
		{cmd: NewSeasonCommand(), use: "season [season]"},
		{cmd: NewOpponentsCommand(), use: "opponents", flags: []string{"season", "limit"}},
		{cmd: NewTrendCommand(), use: "trend <season>", flags: []string{"window"}},
		{cmd: NewPlayersCommand(), use: "players <season>", flags: []string{"limit", "player"}},
		{cmd: NewTacticalCommand(), use: "tactical <season>"},
		{cmd: NewQualityCommand(), use: "quality"},
		{cmd: NewValidateCommand(), use: "validate", flags: []string{"strict"}},
		{cmd: NewLoadCommand(), use: "load <file>...", flags: []string{"dry-run"}},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short, "Short should not be empty")
			for _, flag := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(flag), "flag %q should exist", flag)
			}
		})
	}
}

func TestCommand_WithoutEnvFails(t *testing.T) {
	cmd := NewQualityCommand()
	cmd.SetArgs(nil)
	cmd.SetOut(&bytes.Buffer{})
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatalf("expected error when no environment is in the context")
	}
}

func TestSeasonCommand_JSON(t *testing.T) {
	env := newTestEnv(t, true, OutputJSON)

	out, err := execute(t, env, NewSeasonCommand(), "2024-25")
	require.NoError(t, err)

	var summary analytics.SeasonSummary
	require.NoError(t, sonic.UnmarshalString(out, &summary))
	assert.Equal(t, "2024-25", summary.Season)
	assert.Equal(t, 5, summary.MatchesPlayed)
	assert.Equal(t, 8, summary.Points)
	assert.Equal(t, 1, summary.GoalDifference)
}

func TestSeasonCommand_ListsAllSeasons(t *testing.T) {
	env := newTestEnv(t, true, OutputJSON)

	out, err := execute(t, env, NewSeasonCommand())
	require.NoError(t, err)

	var summaries []analytics.SeasonSummary
	require.NoError(t, sonic.UnmarshalString(out, &summaries))
	require.Len(t, summaries, 2)
	assert.Equal(t, "2024-25", summaries[0].Season)
	assert.Equal(t, "2023-24", summaries[1].Season)
}

func TestSeasonCommand_UnknownSeason(t *testing.T) {
	env := newTestEnv(t, true, OutputTable)

	_, err := execute(t, env, NewSeasonCommand(), "1999-00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no matches recorded")
}

func TestSeasonCommand_Table(t *testing.T) {
	env := newTestEnv(t, true, OutputTable)

	out, err := execute(t, env, NewSeasonCommand(), "2024-25")
	require.NoError(t, err)
	assert.Contains(t, out, "Goal difference")
	assert.Contains(t, out, "2-2-1")
}

func TestOpponentsCommand(t *testing.T) {
	env := newTestEnv(t, true, OutputJSON)

	out, err := execute(t, env, NewOpponentsCommand(), "--season", "2023-24")
	require.NoError(t, err)

	var records []analytics.OpponentRecord
	require.NoError(t, sonic.UnmarshalString(out, &records))
	assert.Len(t, records, 2)

	out, err = execute(t, env, NewOpponentsCommand(), "--limit", "3")
	require.NoError(t, err)
	require.NoError(t, sonic.UnmarshalString(out, &records))
	assert.Len(t, records, 3)
}

func TestTrendCommand(t *testing.T) {
	env := newTestEnv(t, true, OutputJSON)

	out, err := execute(t, env, NewTrendCommand(), "2024-25", "--window", "2")
	require.NoError(t, err)

	var points []analytics.TrendPoint
	require.NoError(t, sonic.UnmarshalString(out, &points))
	require.Len(t, points, 5)
	assert.Equal(t, "26603", points[0].MatchID)

	_, err = execute(t, env, NewTrendCommand(), "2024-25", "--window", "-1")
	require.Error(t, err)
}

func TestPlayersCommand(t *testing.T) {
	env := newTestEnv(t, true, OutputJSON)

	out, err := execute(t, env, NewPlayersCommand(), "2024-25", "--limit", "1")
	require.NoError(t, err)

	var stats []analytics.PlayerSeasonStats
	require.NoError(t, sonic.UnmarshalString(out, &stats))
	require.Len(t, stats, 1)
	assert.Equal(t, "Kai Havertz", stats[0].PlayerName)

	out, err = execute(t, env, NewPlayersCommand(), "2024-25", "--player", "Kai Havertz")
	require.NoError(t, err)

	var one analytics.PlayerSeasonStats
	require.NoError(t, sonic.UnmarshalString(out, &one))
	assert.Equal(t, 4, one.TotalShots)
	assert.Equal(t, 2, one.Goals)

	_, err = execute(t, env, NewPlayersCommand(), "2024-25", "--player", "Erling Haaland")
	require.Error(t, err)
}

func TestTacticalCommand_Table(t *testing.T) {
	env := newTestEnv(t, true, OutputTable)

	out, err := execute(t, env, NewTacticalCommand(), "2024-25")
	require.NoError(t, err)
	for _, label := range []string{"0-15", "76-90", "Corner", "Rebound"} {
		assert.Contains(t, out, label)
	}

	_, err = execute(t, env, NewTacticalCommand(), "1999-00")
	require.Error(t, err)
}

func TestQualityCommand(t *testing.T) {
	env := newTestEnv(t, true, OutputJSON)

	out, err := execute(t, env, NewQualityCommand())
	require.NoError(t, err)

	var report analytics.DataQuality
	require.NoError(t, sonic.UnmarshalString(out, &report))
	assert.Equal(t, 7, report.TotalMatches)
	assert.Equal(t, "2 days ago", report.DataFreshness)
}

func TestValidateCommand(t *testing.T) {
	seeded := newTestEnv(t, true, OutputTable)

	out, err := execute(t, seeded, NewValidateCommand())
	require.NoError(t, err, "findings are advisory without --strict")
	assert.Contains(t, out, "TOTAL")

	_, err = execute(t, seeded, NewValidateCommand(), "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anomalies found")

	empty := newTestEnv(t, false, OutputTable)
	out, err = execute(t, empty, NewValidateCommand(), "--strict")
	require.NoError(t, err)
	assert.Contains(t, out, "no anomalies found")
}

const loadExport = `[{
  "match_id": "27001",
  "date": "2025-08-17 16:30:00",
  "season": "2025",
  "home_team": "Manchester United",
  "away_team": "Arsenal",
  "home_goals": "0",
  "away_goals": "1",
  "home_xg": "1.12",
  "away_xg": "0.93",
  "shots": {
    "h": [{"id": "700001", "minute": "30", "result": "SavedShot", "X": "0.85", "Y": "0.47", "xG": "0.12", "player": "Bruno Fernandes", "situation": "OpenPlay", "shotType": "RightFoot"}],
    "a": [
      {"id": "700002", "minute": "13", "result": "Goal", "X": "0.96", "Y": "0.50", "xG": "0.41", "player": "Riccardo Calafiori", "situation": "FromCorner", "shotType": "Head", "player_assisted": "Declan Rice", "lastAction": "Cross"},
      {"id": "700003", "minute": "140", "result": "MissedShots", "X": "0.70", "Y": "0.30", "xG": "0.03", "player": "Declan Rice", "situation": "OpenPlay", "shotType": "RightFoot"}
    ]
  }
}]`

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCommand_LoadsIntoStore(t *testing.T) {
	env := newTestEnv(t, false, OutputJSON)
	path := writeExport(t, loadExport)

	out, err := execute(t, env, NewLoadCommand(), path)
	require.NoError(t, err)

	var report usecase.LoadReport
	require.NoError(t, sonic.UnmarshalString(out, &report))
	assert.Equal(t, 1, report.Matches)
	assert.Equal(t, 3, report.Shots)
	require.Len(t, report.Anomalies, 1)
	assert.Equal(t, "shot 700003", report.Anomalies[0].Subject)

	summary, exists, err := env.Seasons.GetSummary(context.Background(), "2025-26")
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, 1, summary.Wins)
	assert.Equal(t, 1, summary.AwayMatches)
}

func TestLoadCommand_DryRunWritesNothing(t *testing.T) {
	env := newTestEnv(t, false, OutputTable)
	path := writeExport(t, loadExport)

	_, err := execute(t, env, NewLoadCommand(), "--dry-run", path)
	require.NoError(t, err)

	seasons, err := env.Seasons.ListSeasons(context.Background())
	require.NoError(t, err)
	assert.Empty(t, seasons)
}

func TestLoadCommand_Stdin(t *testing.T) {
	env := newTestEnv(t, false, OutputTable)

	cmd := NewLoadCommand()
	cmd.SetIn(strings.NewReader(loadExport))
	out, err := execute(t, env, cmd, "-")
	require.NoError(t, err)
	assert.Contains(t, out, "3")
}

func TestLoadCommand_Errors(t *testing.T) {
	env := newTestEnv(t, false, OutputTable)

	_, err := execute(t, env, NewLoadCommand(), filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	_, err = execute(t, env, NewLoadCommand(), writeExport(t, `{"match_id": "1"}`))
	require.Error(t, err)

	wrongClub := strings.ReplaceAll(loadExport, `"Arsenal"`, `"Chelsea"`)
	_, err = execute(t, env, NewLoadCommand(), writeExport(t, wrongClub))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neither")
}
