package convert

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/avolkovs/puzzletrack/internal/model"
)

func TestToTemplateJSON_OwnedAndSystem(t *testing.T) {
	t.Parallel()
	owner := uuid.Must(uuid.NewV4())
	ts := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	owned := ToTemplateJSON(model.PuzzleTemplate{
		ID:         "t1",
		UserID:     &owner,
		Name:       "Mine",
		PuzzleType: "sudoku",
		DataJSON:   `{"grid":[]}`,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	})
	require.NotNil(t, owned.UserID)
	require.Equal(t, owner.String(), *owned.UserID)
	require.Equal(t, `{"grid":[]}`, owned.DataJSON)

	system := ToTemplateJSON(model.PuzzleTemplate{ID: "system-puzzle-sample", Name: "Sample", IsSystem: true})
	require.Nil(t, system.UserID)
	require.True(t, system.IsSystem)

	raw, err := json.Marshal(system)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "userId")
	require.Contains(t, string(raw), `"isSystem":true`)
}

func TestToSessionJSON_OptionalFields(t *testing.T) {
	t.Parallel()
	user := uuid.Must(uuid.NewV4())
	started := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	done := started.Add(5 * time.Minute)
	score := 77

	open := ToSessionJSON(model.PuzzleSession{
		ID:               "s1",
		PuzzleTemplateID: "t1",
		UserID:           user,
		Status:           model.StatusInProgress,
		StartedAt:        started,
	})
	raw, err := json.Marshal(open)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "completedAt")
	require.NotContains(t, string(raw), "score")

	finished := ToSessionJSON(model.PuzzleSession{
		ID:          "s1",
		UserID:      user,
		Status:      model.StatusCompleted,
		Score:       &score,
		StartedAt:   started,
		CompletedAt: &done,
	})
	require.Equal(t, "completed", finished.Status)
	require.NotNil(t, finished.CompletedAt)
	require.Equal(t, 77, *finished.Score)
}

func TestSliceConversions_NeverNil(t *testing.T) {
	t.Parallel()
	require.NotNil(t, ToTemplateJSONs(nil))
	require.NotNil(t, ToSessionJSONs(nil))
	require.Len(t, ToTemplateJSONs([]model.PuzzleTemplate{{ID: "a"}}), 1)
}
