package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/mmynk/teamtally/internal/models"
	"github.com/mmynk/teamtally/internal/storage"
)

// AddMember adds a member with zeroed counters to an existing group.
func (t *Tracker) AddMember(ctx context.Context, groupID, name, email string) (*models.Member, error) {
	slog.Info("AddMember request received", "group_id", groupID, "name", name)

	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: name and email are required", models.ErrValidation)
	}

	var member models.Member
	err := t.update(ctx, "AddMember", func(s *storage.Snapshot) error {
		if s.GroupIndex(groupID) < 0 {
			return groupNotFound(groupID)
		}
		if !models.IsUniqueEmail(s.Members, email) {
			return fmt.Errorf("%w: %s", models.ErrDuplicateEmail, email)
		}
		member = models.Member{
			ID:       t.newID(),
			Name:     name,
			Email:    email,
			GroupID:  groupID,
			JoinedAt: t.now(),
		}
		s.Members = append(s.Members, member)
		applyCounts(s, counts{groupID: groupID, members: 1})
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Member added", "group_id", groupID, "member_id", member.ID)
	return &member, nil
}

// RemoveMember deletes a member of a group and every task assigned to them.
func (t *Tracker) RemoveMember(ctx context.Context, groupID, memberID string) error {
	slog.Info("RemoveMember request received", "group_id", groupID, "member_id", memberID)

	var removedTasks int
	err := t.update(ctx, "RemoveMember", func(s *storage.Snapshot) error {
		i := s.MemberIndex(memberID)
		if i < 0 || !models.BelongsToGroup(s.Members[i], groupID) {
			return fmt.Errorf("%w: member %s in group %s", models.ErrNotFound, memberID, groupID)
		}
		s.Members = slices.Delete(s.Members, i, i+1)

		before := len(s.Tasks)
		s.Tasks = slices.DeleteFunc(s.Tasks, func(task models.Task) bool {
			return task.AssignedMemberID == memberID
		})
		removedTasks = before - len(s.Tasks)

		applyCounts(s, counts{groupID: groupID, members: -1, tasks: -removedTasks})
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Member removed", "group_id", groupID, "member_id", memberID, "tasks_removed", removedTasks)
	return nil
}
