package models

import (
	"fmt"
	"strings"
	"time"
)

// TaskStatus is the lifecycle state of a task. There are no intermediate states.
type TaskStatus string

const (
	StatusPending   TaskStatus = "PENDING"
	StatusCompleted TaskStatus = "COMPLETED"
)

// Priority is informational only; no logic depends on it.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// MaxTaskPoints caps the points of a single task so member totals cannot
// overflow.
const MaxTaskPoints = 1_000_000

// DateLayout is the date-only deadline format accepted from callers.
const DateLayout = "2006-01-02"

// Task represents a point-valued unit of work assigned to one member.
type Task struct {
	// ID is the unique identifier for the task (UUID format).
	ID string `json:"id"`

	Title       string `json:"title"`
	Description string `json:"description"`

	// Deadline is compared as a timestamp, never as a formatted string.
	Deadline time.Time `json:"deadline"`

	Priority Priority `json:"priority"`

	// Points is the reward credited to the assignee on completion,
	// between 0 and MaxTaskPoints.
	Points int `json:"points"`

	Status TaskStatus `json:"status"`

	// AssignedMemberID references a member of the group GroupID.
	AssignedMemberID string `json:"assignedMemberId"`

	// GroupID is the owning group. Set at creation and never changed.
	GroupID string `json:"groupId"`

	CreatedAt time.Time `json:"createdAt"`

	// CompletedAt is nil until the task is completed, then set once.
	CompletedAt *time.Time `json:"completedAt"`
}

// IsPending reports whether the task has not been completed yet.
func (t Task) IsPending() bool {
	return t.Status != StatusCompleted
}

// IsOverdue reports whether the task is still pending past its deadline.
func (t Task) IsOverdue(now time.Time) bool {
	return t.IsPending() && t.Deadline.Before(now)
}

// ParseDeadline parses a deadline given either as a date (YYYY-MM-DD,
// interpreted as midnight UTC) or as an RFC 3339 timestamp.
func ParseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: deadline is required", ErrValidation)
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid deadline %q", ErrValidation, s)
	}
	return t, nil
}

// ParsePriority parses LOW, MEDIUM or HIGH, ignoring case. An empty string
// means MEDIUM.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToUpper(strings.TrimSpace(s))); p {
	case "":
		return PriorityMedium, nil
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	default:
		return "", fmt.Errorf("%w: invalid priority %q", ErrValidation, s)
	}
}
