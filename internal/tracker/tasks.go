package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/mmynk/teamtally/internal/models"
	"github.com/mmynk/teamtally/internal/storage"
)

// TaskInput holds the caller-supplied fields of a new task.
type TaskInput struct {
	Title       string
	Description string
	Deadline    time.Time
	Priority    models.Priority
	Points      int
}

func (in TaskInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: task title is required", models.ErrValidation)
	}
	if in.Points < 0 || in.Points > models.MaxTaskPoints {
		return fmt.Errorf("%w: points must be between 0 and %d, got %d", models.ErrValidation, models.MaxTaskPoints, in.Points)
	}
	return nil
}

// CreateTask creates a pending task in a group, assigned to one of its members.
func (t *Tracker) CreateTask(ctx context.Context, groupID, memberID string, in TaskInput) (*models.Task, error) {
	slog.Info("CreateTask request received",
		"group_id", groupID,
		"member_id", memberID,
		"title", in.Title,
		"points", in.Points,
	)

	if strings.TrimSpace(memberID) == "" {
		return nil, fmt.Errorf("%w: a member must be assigned to the task", models.ErrValidation)
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	var task models.Task
	err := t.update(ctx, "CreateTask", func(s *storage.Snapshot) error {
		if s.GroupIndex(groupID) < 0 {
			return groupNotFound(groupID)
		}
		i := s.MemberIndex(memberID)
		if i < 0 || !models.BelongsToGroup(s.Members[i], groupID) {
			return fmt.Errorf("%w: member %s is not part of group %s", models.ErrInvalidAssignment, memberID, groupID)
		}

		task = models.Task{
			ID:               t.newID(),
			Title:            in.Title,
			Description:      in.Description,
			Deadline:         in.Deadline,
			Priority:         in.Priority,
			Points:           in.Points,
			Status:           models.StatusPending,
			AssignedMemberID: memberID,
			GroupID:          groupID,
			CreatedAt:        t.now(),
		}
		s.Tasks = append(s.Tasks, task)
		applyCounts(s, counts{groupID: groupID, tasks: 1, memberID: memberID, pending: 1})
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Task created", "group_id", groupID, "task_id", task.ID, "member_id", memberID)
	return &task, nil
}

// CompleteTask marks a pending task completed and credits its points to the
// assignee. Completing a task twice fails with models.ErrAlreadyCompleted.
func (t *Tracker) CompleteTask(ctx context.Context, taskID string) (*models.Task, error) {
	slog.Info("CompleteTask request received", "task_id", taskID)

	var task models.Task
	err := t.update(ctx, "CompleteTask", func(s *storage.Snapshot) error {
		i := s.TaskIndex(taskID)
		if i < 0 {
			return fmt.Errorf("%w: task %s", models.ErrNotFound, taskID)
		}
		if !s.Tasks[i].IsPending() {
			return fmt.Errorf("%w: task %s", models.ErrAlreadyCompleted, taskID)
		}

		completedAt := t.now()
		s.Tasks[i].Status = models.StatusCompleted
		s.Tasks[i].CompletedAt = &completedAt
		task = s.Tasks[i]

		applyCounts(s, counts{
			memberID:  task.AssignedMemberID,
			pending:   -1,
			completed: 1,
			points:    task.Points,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Task completed", "task_id", taskID, "member_id", task.AssignedMemberID, "points", task.Points)
	return &task, nil
}

// DeleteTask removes a task from a group. The assignee's counters drop the
// task's contribution: one pending task, or one completed task and its points.
func (t *Tracker) DeleteTask(ctx context.Context, groupID, taskID string) error {
	slog.Info("DeleteTask request received", "group_id", groupID, "task_id", taskID)

	err := t.update(ctx, "DeleteTask", func(s *storage.Snapshot) error {
		i := s.TaskIndex(taskID)
		if i < 0 || s.Tasks[i].GroupID != groupID {
			return fmt.Errorf("%w: task %s in group %s", models.ErrNotFound, taskID, groupID)
		}
		task := s.Tasks[i]
		s.Tasks = slices.Delete(s.Tasks, i, i+1)

		c := counts{groupID: groupID, tasks: -1, memberID: task.AssignedMemberID}
		if task.IsPending() {
			c.pending = -1
		} else {
			c.completed = -1
			c.points = -task.Points
		}
		applyCounts(s, c)
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Task deleted", "group_id", groupID, "task_id", taskID)
	return nil
}
