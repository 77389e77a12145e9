// Package models defines the core domain models for teamtally.
//
// # Models
//
//   - Group: a team container owning members and tasks
//   - Member: a person belonging to exactly one group, accumulating points
//   - Task: a point-valued unit of work assigned to one member
//
// # Counters
//
// Group and Member carry denormalized counters (member/task counts, pending
// and completed tasks, total points). They are written only by the tracker
// package, one update per mutation, and must always equal what the member
// and task collections imply:
//
//	group.MemberCount    == |members where GroupID == group.ID|
//	group.TaskCount      == |tasks where GroupID == group.ID|
//	member.TasksPending  == |assigned tasks in PENDING|
//	member.TasksCompleted == |assigned tasks in COMPLETED|
//	member.TotalPoints   == sum of Points over assigned COMPLETED tasks
//
// # Relationships
//
// Relationships are expressed with ID strings instead of pointers so the
// three collections can be persisted and replaced independently.
package models
