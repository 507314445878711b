package domain

import (
	"sort"
	"strings"
	"time"
)

// ViewRow is one display row of the dashboard, rebuilt on every refresh
type ViewRow struct {
	Activity      string
	DisplayName   string
	Mode          string
	SessionID     string // Registry identifier, not the protocol session id
	SessionStatus SessionStatus
	SortTimestamp time.Time // Zero when the session has no recorded activity
	Status        Status
}

// SortColumn selects the primary ordering of rows
type SortColumn int

const (
	SortByRecency SortColumn = iota
	SortByName
	SortByStatus
	SortByMode
)

// SortColumns lists columns in the order they are cycled
var SortColumns = []SortColumn{SortByRecency, SortByName, SortByStatus, SortByMode}

func (c SortColumn) String() string {
	switch c {
	case SortByName:
		return "name"
	case SortByStatus:
		return "status"
	case SortByMode:
		return "mode"
	default:
		return "recency"
	}
}

// Next returns the column following c in SortColumns
func (c SortColumn) Next() SortColumn {
	for i, col := range SortColumns {
		if col == c {
			return SortColumns[(i+1)%len(SortColumns)]
		}
	}
	return SortByRecency
}

// CompareRecency orders rows by descending activity.
// Rows with a timestamp come before rows without one, newer before older.
// Two rows without a timestamp compare equal so a stable sort keeps their order.
func CompareRecency(a, b ViewRow) int {
	aZero, bZero := a.SortTimestamp.IsZero(), b.SortTimestamp.IsZero()
	switch {
	case aZero && bZero:
		return 0
	case aZero:
		return 1
	case bZero:
		return -1
	case a.SortTimestamp.After(b.SortTimestamp):
		return -1
	case a.SortTimestamp.Before(b.SortTimestamp):
		return 1
	default:
		return 0
	}
}

// SortRows sorts rows in place by descending recency
func SortRows(rows []ViewRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return CompareRecency(rows[i], rows[j]) < 0
	})
}

// SortRowsBy sorts rows in place by column, breaking ties by recency
func SortRowsBy(rows []ViewRow, column SortColumn) {
	if column == SortByRecency {
		SortRows(rows)
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if c := compareColumn(rows[i], rows[j], column); c != 0 {
			return c < 0
		}
		return CompareRecency(rows[i], rows[j]) < 0
	})
}

func compareColumn(a, b ViewRow, column SortColumn) int {
	switch column {
	case SortByName:
		return strings.Compare(strings.ToLower(a.DisplayName), strings.ToLower(b.DisplayName))
	case SortByStatus:
		return statusRank(a.Status) - statusRank(b.Status)
	case SortByMode:
		return strings.Compare(a.Mode, b.Mode)
	}
	return 0
}

func statusRank(s Status) int {
	for i, status := range AllStatuses {
		if status == s {
			return i
		}
	}
	return len(AllStatuses)
}
