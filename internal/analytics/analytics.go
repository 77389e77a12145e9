// Package analytics derives productivity figures from a group's members and
// tasks. Every function is pure and never modifies its input.
package analytics

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/teamtally/internal/models"
)

// Entry is one row of a leaderboard.
type Entry struct {
	MemberID       string `json:"memberId"`
	Name           string `json:"name"`
	TotalPoints    int    `json:"totalPoints"`
	TasksCompleted int    `json:"tasksCompleted"`
	Rank           int    `json:"rank"`
}

// TopPerformer returns the member with the most points. Ties go to the
// member that comes first in members. It returns false when members is empty.
func TopPerformer(members []models.Member) (models.Member, bool) {
	if len(members) == 0 {
		return models.Member{}, false
	}
	top := members[0]
	for _, m := range members[1:] {
		if m.TotalPoints > top.TotalPoints {
			top = m
		}
	}
	return top, true
}

// ProductivityScore returns average points per completed task, rounded to
// two decimal places. It is 0 when nothing was completed and undefined
// (false) for an empty member set.
func ProductivityScore(members []models.Member) (float64, bool) {
	if len(members) == 0 {
		return 0, false
	}
	var points, completed int64
	for _, m := range members {
		points += int64(m.TotalPoints)
		completed += int64(m.TasksCompleted)
	}
	if completed == 0 {
		return 0, true
	}
	return ratio(points, completed, 2), true
}

// WorkloadDistribution returns the average number of tasks (pending plus
// completed) per member, rounded to two decimal places.
func WorkloadDistribution(members []models.Member) (float64, bool) {
	if len(members) == 0 {
		return 0, false
	}
	var load int64
	for _, m := range members {
		load += int64(m.TasksPending + m.TasksCompleted)
	}
	return ratio(load, int64(len(members)), 2), true
}

// OverduePercentage returns the share of tasks still pending past their
// deadline at now, on a 0-100 scale with one decimal place.
func OverduePercentage(tasks []models.Task, now time.Time) (float64, bool) {
	if len(tasks) == 0 {
		return 0, false
	}
	var overdue int64
	for _, t := range tasks {
		if t.IsOverdue(now) {
			overdue++
		}
	}
	return ratio(overdue*100, int64(len(tasks)), 1), true
}

// Leaderboard ranks members by points, highest first. Members with equal
// points keep their input order and still get distinct ranks.
func Leaderboard(members []models.Member) []Entry {
	sorted := slices.Clone(members)
	slices.SortStableFunc(sorted, func(a, b models.Member) int {
		return b.TotalPoints - a.TotalPoints
	})

	entries := make([]Entry, len(sorted))
	for i, m := range sorted {
		entries[i] = Entry{
			MemberID:       m.ID,
			Name:           m.Name,
			TotalPoints:    m.TotalPoints,
			TasksCompleted: m.TasksCompleted,
			Rank:           i + 1,
		}
	}
	return entries
}

func ratio(num, den int64, places int32) float64 {
	return decimal.NewFromInt(num).
		Div(decimal.NewFromInt(den)).
		Round(places).
		InexactFloat64()
}
