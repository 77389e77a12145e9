package models

import "time"

// Member represents a person belonging to exactly one group.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string `json:"id"`

	// Name is the display name of the member.
	Name string `json:"name"`

	// Email identifies the member for duplicate detection. Unique across
	// all members in all groups.
	Email string `json:"email"`

	// GroupID is the owning group. Set at creation and never changed.
	GroupID string `json:"groupId"`

	// TotalPoints is the sum of points of completed tasks assigned to this member.
	TotalPoints int `json:"totalPoints"`

	// TasksCompleted is the number of completed tasks assigned to this member.
	TasksCompleted int `json:"tasksCompleted"`

	// TasksPending is the number of pending tasks assigned to this member.
	TasksPending int `json:"tasksPending"`

	// JoinedAt is when the member was added.
	JoinedAt time.Time `json:"joinedAt"`
}

// IsUniqueEmail reports whether no member in members uses email.
func IsUniqueEmail(members []Member, email string) bool {
	for _, m := range members {
		if m.Email == email {
			return false
		}
	}
	return true
}

// BelongsToGroup reports whether member is part of the group with groupID.
func BelongsToGroup(member Member, groupID string) bool {
	return member.GroupID == groupID
}
