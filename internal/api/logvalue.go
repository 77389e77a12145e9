package api

import "log/slog"

// Requests implement slog.LogValuer so RPC logs carry the ids they act on.
// Free-text fields and emails are left out.

func (r *CreateGroupRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("name", r.Name))
}

func (r *DeleteGroupRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("group_id", r.GroupID))
}

func (r *GetGroupRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("group_id", r.GroupID))
}

func (r *AddMemberRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("group_id", r.GroupID))
}

func (r *RemoveMemberRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("group_id", r.GroupID),
		slog.String("member_id", r.MemberID),
	)
}

func (r *ListMembersRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("group_id", r.GroupID))
}

func (r *CreateTaskRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("group_id", r.GroupID),
		slog.String("member_id", r.MemberID),
		slog.Int("points", r.Points),
	)
}

func (r *CompleteTaskRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("task_id", r.TaskID))
}

func (r *DeleteTaskRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("group_id", r.GroupID),
		slog.String("task_id", r.TaskID),
	)
}

func (r *ListTasksRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("group_id", r.GroupID))
}

func (r *GetAnalyticsRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("group_id", r.GroupID))
}
