package models

import (
	"strings"
	"time"
)

// Group represents a team that owns members and tasks.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `json:"id"`

	// Name is the display name of the group. Unique across all groups
	// (case-sensitive exact match).
	Name string `json:"name"`

	// Description is optional free text.
	Description string `json:"description"`

	// CreatedAt is when the group was created.
	CreatedAt time.Time `json:"createdAt"`

	// MemberCount is the number of members currently in this group.
	MemberCount int `json:"memberCount"`

	// TaskCount is the number of tasks currently in this group.
	TaskCount int `json:"taskCount"`
}

// IsValidGroupName reports whether name is non-empty after trimming whitespace.
func IsValidGroupName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// IsUniqueGroupName reports whether no group in groups is named exactly name.
func IsUniqueGroupName(groups []Group, name string) bool {
	for _, g := range groups {
		if g.Name == name {
			return false
		}
	}
	return true
}
