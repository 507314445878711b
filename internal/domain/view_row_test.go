package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(rows []ViewRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.SessionID
	}
	return out
}

func TestSortRows_Scenario(t *testing.T) {
	now := time.Now()
	rows := []ViewRow{
		{SessionID: "A", SortTimestamp: now.Add(-10 * time.Second)},
		{SessionID: "B"},
		{SessionID: "C", SortTimestamp: now.Add(-time.Hour)},
	}

	SortRows(rows)

	assert.Equal(t, []string{"A", "C", "B"}, ids(rows))
}

func TestSortRows_TimestamplessKeepInputOrder(t *testing.T) {
	now := time.Now()
	rows := []ViewRow{
		{SessionID: "x"},
		{SessionID: "y"},
		{SessionID: "new", SortTimestamp: now},
		{SessionID: "z"},
		{SessionID: "old", SortTimestamp: now.Add(-time.Minute)},
	}

	SortRows(rows)

	assert.Equal(t, []string{"new", "old", "x", "y", "z"}, ids(rows))
}

func TestCompareRecency_TotalPreorder(t *testing.T) {
	now := time.Now()
	rows := []ViewRow{
		{SessionID: "a", SortTimestamp: now},
		{SessionID: "b", SortTimestamp: now.Add(-time.Second)},
		{SessionID: "c", SortTimestamp: now.Add(-time.Second)},
		{SessionID: "d"},
		{SessionID: "e"},
	}

	for _, x := range rows {
		assert.Equal(t, 0, CompareRecency(x, x), "reflexive")
		for _, y := range rows {
			assert.Equal(t, CompareRecency(x, y), -CompareRecency(y, x), "antisymmetric %s %s", x.SessionID, y.SessionID)
			for _, z := range rows {
				if CompareRecency(x, y) <= 0 && CompareRecency(y, z) <= 0 {
					assert.LessOrEqual(t, CompareRecency(x, z), 0, "transitive %s %s %s", x.SessionID, y.SessionID, z.SessionID)
				}
			}
		}
	}
}

func TestSortRowsBy_SecondaryColumnUsesRecencyTiebreak(t *testing.T) {
	now := time.Now()
	rows := []ViewRow{
		{SessionID: "r-old", Status: StatusReady, SortTimestamp: now.Add(-time.Hour)},
		{SessionID: "k", Status: StatusKilled},
		{SessionID: "w", Status: StatusWaiting},
		{SessionID: "r-new", Status: StatusReady, SortTimestamp: now},
		{SessionID: "r-none", Status: StatusReady},
	}

	SortRowsBy(rows, SortByStatus)

	assert.Equal(t, []string{"w", "r-new", "r-old", "r-none", "k"}, ids(rows))
}

func TestSortRowsBy_Name(t *testing.T) {
	rows := []ViewRow{
		{SessionID: "2", DisplayName: "beta"},
		{SessionID: "1", DisplayName: "Alpha"},
	}

	SortRowsBy(rows, SortByName)

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "2"}, ids(rows))
}

func TestSortColumn_Next(t *testing.T) {
	assert.Equal(t, SortByName, SortByRecency.Next())
	assert.Equal(t, SortByRecency, SortByMode.Next())
	assert.Equal(t, "status", SortByStatus.String())
}
