package sqlstore

import (
	"database/sql"
	"time"

	"github.com/mmynk/teamtally/internal/models"
)

// Timestamps are stored as Unix milliseconds in UTC.

type groupRow struct {
	ID          string `db:"id"`
	Position    int    `db:"position"`
	Name        string `db:"name"`
	Description string `db:"description"`
	CreatedAt   int64  `db:"created_at"`
	MemberCount int    `db:"member_count"`
	TaskCount   int    `db:"task_count"`
}

type memberRow struct {
	ID             string `db:"id"`
	Position       int    `db:"position"`
	Name           string `db:"name"`
	Email          string `db:"email"`
	GroupID        string `db:"group_id"`
	TotalPoints    int    `db:"total_points"`
	TasksCompleted int    `db:"tasks_completed"`
	TasksPending   int    `db:"tasks_pending"`
	JoinedAt       int64  `db:"joined_at"`
}

type taskRow struct {
	ID               string        `db:"id"`
	Position         int           `db:"position"`
	Title            string        `db:"title"`
	Description      string        `db:"description"`
	Deadline         int64         `db:"deadline"`
	Priority         string        `db:"priority"`
	Points           int           `db:"points"`
	Status           string        `db:"status"`
	AssignedMemberID string        `db:"assigned_member_id"`
	GroupID          string        `db:"group_id"`
	CreatedAt        int64         `db:"created_at"`
	CompletedAt      sql.NullInt64 `db:"completed_at"`
}

// Timestamps are stored as Unix milliseconds; finer precision is dropped.
func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func newGroupRow(pos int, g models.Group) groupRow {
	return groupRow{
		ID:          g.ID,
		Position:    pos,
		Name:        g.Name,
		Description: g.Description,
		CreatedAt:   toMillis(g.CreatedAt),
		MemberCount: g.MemberCount,
		TaskCount:   g.TaskCount,
	}
}

func (r groupRow) model() models.Group {
	return models.Group{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   fromMillis(r.CreatedAt),
		MemberCount: r.MemberCount,
		TaskCount:   r.TaskCount,
	}
}

func newMemberRow(pos int, m models.Member) memberRow {
	return memberRow{
		ID:             m.ID,
		Position:       pos,
		Name:           m.Name,
		Email:          m.Email,
		GroupID:        m.GroupID,
		TotalPoints:    m.TotalPoints,
		TasksCompleted: m.TasksCompleted,
		TasksPending:   m.TasksPending,
		JoinedAt:       toMillis(m.JoinedAt),
	}
}

func (r memberRow) model() models.Member {
	return models.Member{
		ID:             r.ID,
		Name:           r.Name,
		Email:          r.Email,
		GroupID:        r.GroupID,
		TotalPoints:    r.TotalPoints,
		TasksCompleted: r.TasksCompleted,
		TasksPending:   r.TasksPending,
		JoinedAt:       fromMillis(r.JoinedAt),
	}
}

func newTaskRow(pos int, t models.Task) taskRow {
	row := taskRow{
		ID:               t.ID,
		Position:         pos,
		Title:            t.Title,
		Description:      t.Description,
		Deadline:         toMillis(t.Deadline),
		Priority:         string(t.Priority),
		Points:           t.Points,
		Status:           string(t.Status),
		AssignedMemberID: t.AssignedMemberID,
		GroupID:          t.GroupID,
		CreatedAt:        toMillis(t.CreatedAt),
	}
	if t.CompletedAt != nil {
		row.CompletedAt = sql.NullInt64{Int64: toMillis(*t.CompletedAt), Valid: true}
	}
	return row
}

func (r taskRow) model() models.Task {
	t := models.Task{
		ID:               r.ID,
		Title:            r.Title,
		Description:      r.Description,
		Deadline:         fromMillis(r.Deadline),
		Priority:         models.Priority(r.Priority),
		Points:           r.Points,
		Status:           models.TaskStatus(r.Status),
		AssignedMemberID: r.AssignedMemberID,
		GroupID:          r.GroupID,
		CreatedAt:        fromMillis(r.CreatedAt),
	}
	if r.CompletedAt.Valid {
		completed := fromMillis(r.CompletedAt.Int64)
		t.CompletedAt = &completed
	}
	return t
}
