package sheets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lovelyhome/carehome/internal/domain/models"
	"github.com/lovelyhome/carehome/internal/store/memory"
)

type fakeRepo struct {
	ranges map[string][][]any
	failOn string
}

func (f *fakeRepo) ReplaceRange(_ context.Context, sheetRange string, rows [][]any) error {
	if sheetRange == f.failOn {
		return errors.New("quota exceeded")
	}
	if f.ranges == nil {
		f.ranges = map[string][][]any{}
	}
	f.ranges[sheetRange] = rows
	return nil
}

func snapshot() memory.Snapshot {
	return memory.Snapshot{
		Homes: []models.Home{{ID: "h1", Name: "Sunshine"}},
		Residents: []models.Resident{
			{ID: "r1", HomeID: "h1", Name: "Arun"},
			{ID: "r2", HomeID: "h1", Name: "Priya"},
		},
	}
}

func TestRosterSync(t *testing.T) {
	repo := &fakeRepo{}
	require.NoError(t, NewRosterSync(repo, nil).Sync(context.Background(), snapshot()))

	require.Len(t, repo.ranges["Homes!A:H"], 2)
	require.Len(t, repo.ranges["Residents!A:J"], 3)
	assert.Equal(t, "Sunshine", repo.ranges["Residents!A:J"][1][2])
}

func TestRosterSync_StopsOnFailure(t *testing.T) {
	repo := &fakeRepo{failOn: "Homes!A:H"}
	err := NewRosterSync(repo, nil).Sync(context.Background(), snapshot())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync homes")
	assert.NotContains(t, repo.ranges, "Residents!A:J")
}
