package services

import (
	"time"

	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/models"
)

// MonthKey returns the snapshot key for t, e.g. "2026-08".
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// MergeMonthlyStat adds a (runs, wickets) delta to the snapshot for month,
// updating the matching entry in place or appending one. The list never
// holds two entries for the same month key.
func MergeMonthlyStat(snapshots []models.MonthlyStat, month string, runs, wickets int) []models.MonthlyStat {
	for i := range snapshots {
		if snapshots[i].Month == month {
			snapshots[i].Runs += runs
			snapshots[i].Wickets += wickets
			return snapshots
		}
	}
	return append(snapshots, models.MonthlyStat{Month: month, Runs: runs, Wickets: wickets})
}
