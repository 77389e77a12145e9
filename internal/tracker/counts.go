package tracker

import "github.com/mmynk/teamtally/internal/storage"

// counts is the change to denormalized counters caused by one mutation.
// Every mutation applies exactly one counts value.
type counts struct {
	groupID string
	members int
	tasks   int

	memberID  string
	pending   int
	completed int
	points    int
}

// applyCounts applies c to the snapshot. Counters never go below zero,
// which tolerates state that drifted after a partial write.
func applyCounts(s *storage.Snapshot, c counts) {
	if i := s.GroupIndex(c.groupID); i >= 0 {
		g := &s.Groups[i]
		g.MemberCount = floorZero(g.MemberCount + c.members)
		g.TaskCount = floorZero(g.TaskCount + c.tasks)
	}
	if i := s.MemberIndex(c.memberID); i >= 0 {
		m := &s.Members[i]
		m.TasksPending = floorZero(m.TasksPending + c.pending)
		m.TasksCompleted = floorZero(m.TasksCompleted + c.completed)
		m.TotalPoints = floorZero(m.TotalPoints + c.points)
	}
}

func floorZero(n int) int {
	return max(n, 0)
}
