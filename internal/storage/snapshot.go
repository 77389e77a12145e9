package storage

import "github.com/mmynk/teamtally/internal/models"

// Snapshot holds the full contents of all collections, in stored order.
type Snapshot struct {
	Groups  []models.Group
	Members []models.Member
	Tasks   []models.Task
}

// GroupIndex returns the index of the group with id, or -1.
func (s *Snapshot) GroupIndex(id string) int {
	for i := range s.Groups {
		if s.Groups[i].ID == id {
			return i
		}
	}
	return -1
}

// MemberIndex returns the index of the member with id, or -1.
func (s *Snapshot) MemberIndex(id string) int {
	for i := range s.Members {
		if s.Members[i].ID == id {
			return i
		}
	}
	return -1
}

// TaskIndex returns the index of the task with id, or -1.
func (s *Snapshot) TaskIndex(id string) int {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// GroupMembers returns the members of groupID in stored order.
func (s *Snapshot) GroupMembers(groupID string) []models.Member {
	var members []models.Member
	for _, m := range s.Members {
		if models.BelongsToGroup(m, groupID) {
			members = append(members, m)
		}
	}
	return members
}

// GroupTasks returns the tasks of groupID in stored order.
func (s *Snapshot) GroupTasks(groupID string) []models.Task {
	var tasks []models.Task
	for _, t := range s.Tasks {
		if t.GroupID == groupID {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	c := &Snapshot{
		Groups:  append([]models.Group(nil), s.Groups...),
		Members: append([]models.Member(nil), s.Members...),
		Tasks:   append([]models.Task(nil), s.Tasks...),
	}
	for i := range c.Tasks {
		if at := c.Tasks[i].CompletedAt; at != nil {
			completed := *at
			c.Tasks[i].CompletedAt = &completed
		}
	}
	return c
}
