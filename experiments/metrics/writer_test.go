package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"homeworlds/game"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "cutoff")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "cutoff"), filepath.Dir(w.Dir()))

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
		{ID: 1, Goroutines: 8, Duration: 10 * time.Millisecond, Cutoff: 50},
	}))
	rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, [][]string{
		{"id", "goroutines", "duration", "episodes", "cutoff"},
		{"1", "8", "10ms", "0", "50"},
	}, rows)

	id := uuid.New()
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		Agent1: 1,
		Agent2: 2,
		GameMetric: GameMetric{
			ID:             id,
			StartingPlayer: game.First,
			Winner:         game.Second.String(),
			TotalActions:   42,
			Turns:          30,
		},
	}}))
	rows = readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, id.String(), rows[1][0])
	require.Equal(t, "Player2", rows[1][4])
	require.Equal(t, "42", rows[1][8])

	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game: id.String(),
		MoveMetric: MoveMetric{
			Step:         1,
			Player:       game.First,
			Action:       game.Establish(game.LargeGreen),
			SearchMetric: SearchMetric{Episodes: 100, IsTreeReset: true},
		},
	}}))
	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{id.String(), "1", "Player1"}, rows[1][:3])
	require.Equal(t, "100", rows[1][5])
	require.Equal(t, "true", rows[1][7])
}
