// Package jobs runs periodic background work against the tracker.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mmynk/teamtally/internal/metrics"
	"github.com/mmynk/teamtally/internal/tracker"
)

// DefaultSchedule runs the overdue check every five minutes.
const DefaultSchedule = "@every 5m"

// OverdueReporter periodically computes each group's overdue tasks,
// publishes them as gauges and logs groups that have any.
type OverdueReporter struct {
	cron    *cron.Cron
	tracker *tracker.Tracker
	metrics *metrics.Metrics
	timeout time.Duration
}

// NewOverdueReporter creates a reporter. Call Start to schedule it.
func NewOverdueReporter(t *tracker.Tracker, m *metrics.Metrics) *OverdueReporter {
	return &OverdueReporter{
		cron:    cron.New(),
		tracker: t,
		metrics: m,
		timeout: 30 * time.Second,
	}
}

// Start schedules Refresh with a cron spec such as "@every 5m" or "0 * * * *".
func (r *OverdueReporter) Start(schedule string) error {
	_, err := r.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if err := r.Refresh(ctx); err != nil {
			slog.Error("Overdue check failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid overdue schedule %q: %w", schedule, err)
	}

	r.cron.Start()
	slog.Info("Overdue reporter started", "schedule", schedule)
	return nil
}

// Stop stops scheduling and waits for a running check to finish.
func (r *OverdueReporter) Stop() {
	<-r.cron.Stop().Done()
	slog.Info("Overdue reporter stopped")
}

// Refresh recomputes the overdue gauges for every group. Gauges of deleted
// groups are dropped.
func (r *OverdueReporter) Refresh(ctx context.Context) error {
	groups, err := r.tracker.ListGroups(ctx)
	if err != nil {
		return fmt.Errorf("failed to list groups: %w", err)
	}

	r.metrics.OverduePercent.Reset()
	r.metrics.OverdueTasks.Reset()

	for _, g := range groups {
		report, err := r.tracker.Analytics(ctx, g.ID)
		if err != nil {
			return fmt.Errorf("failed to compute analytics for group %s: %w", g.ID, err)
		}

		r.metrics.OverdueTasks.WithLabelValues(g.ID).Set(float64(report.OverdueCount))
		if report.OverduePercentage != nil {
			r.metrics.OverduePercent.WithLabelValues(g.ID).Set(*report.OverduePercentage)
		}

		if report.OverdueCount > 0 {
			slog.Warn("Group has overdue tasks",
				"group_id", g.ID,
				"name", g.Name,
				"overdue", report.OverdueCount,
				"tasks", report.TaskCount,
			)
		}
	}
	return nil
}
