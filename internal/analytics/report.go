package analytics

import (
	"time"

	"github.com/mmynk/teamtally/internal/models"
)

// Report bundles every figure for one group. Figures that are undefined for
// an empty member or task set are nil.
type Report struct {
	TopPerformer         *Entry   `json:"topPerformer"`
	ProductivityScore    *float64 `json:"productivityScore"`
	WorkloadDistribution *float64 `json:"workloadDistribution"`
	OverduePercentage    *float64 `json:"overduePercentage"`
	Leaderboard          []Entry  `json:"leaderboard"`
	MemberCount          int      `json:"memberCount"`
	TaskCount            int      `json:"taskCount"`
	OverdueCount         int      `json:"overdueCount"`
}

// Build computes a Report from a group's members and tasks at now.
func Build(members []models.Member, tasks []models.Task, now time.Time) Report {
	r := Report{
		Leaderboard: Leaderboard(members),
		MemberCount: len(members),
		TaskCount:   len(tasks),
	}

	if top, ok := TopPerformer(members); ok {
		r.TopPerformer = &Entry{
			MemberID:       top.ID,
			Name:           top.Name,
			TotalPoints:    top.TotalPoints,
			TasksCompleted: top.TasksCompleted,
			Rank:           1,
		}
	}
	if v, ok := ProductivityScore(members); ok {
		r.ProductivityScore = &v
	}
	if v, ok := WorkloadDistribution(members); ok {
		r.WorkloadDistribution = &v
	}
	if v, ok := OverduePercentage(tasks, now); ok {
		r.OverduePercentage = &v
	}
	for _, t := range tasks {
		if t.IsOverdue(now) {
			r.OverdueCount++
		}
	}
	return r
}
