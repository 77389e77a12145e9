package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/mmynk/teamtally/internal/models"
	"github.com/mmynk/teamtally/internal/storage"
)

// CreateGroup creates a new group with zeroed counters.
func (t *Tracker) CreateGroup(ctx context.Context, name, description string) (*models.Group, error) {
	slog.Info("CreateGroup request received", "name", name)

	if !models.IsValidGroupName(name) {
		return nil, fmt.Errorf("%w: group name is required", models.ErrValidation)
	}

	var group models.Group
	err := t.update(ctx, "CreateGroup", func(s *storage.Snapshot) error {
		if !models.IsUniqueGroupName(s.Groups, name) {
			return fmt.Errorf("%w: %q", models.ErrDuplicateName, name)
		}
		group = models.Group{
			ID:          t.newID(),
			Name:        name,
			Description: description,
			CreatedAt:   t.now(),
		}
		s.Groups = append(s.Groups, group)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Group created", "group_id", group.ID, "name", group.Name)
	return &group, nil
}

// DeleteGroup removes a group together with all of its members and tasks.
func (t *Tracker) DeleteGroup(ctx context.Context, groupID string) error {
	slog.Info("DeleteGroup request received", "group_id", groupID)

	var removedMembers, removedTasks int
	err := t.update(ctx, "DeleteGroup", func(s *storage.Snapshot) error {
		i := s.GroupIndex(groupID)
		if i < 0 {
			return groupNotFound(groupID)
		}
		s.Groups = slices.Delete(s.Groups, i, i+1)

		before := len(s.Members)
		s.Members = slices.DeleteFunc(s.Members, func(m models.Member) bool {
			return models.BelongsToGroup(m, groupID)
		})
		removedMembers = before - len(s.Members)

		before = len(s.Tasks)
		s.Tasks = slices.DeleteFunc(s.Tasks, func(task models.Task) bool {
			return task.GroupID == groupID
		})
		removedTasks = before - len(s.Tasks)
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Group deleted",
		"group_id", groupID,
		"members_removed", removedMembers,
		"tasks_removed", removedTasks,
	)
	return nil
}
