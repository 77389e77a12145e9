package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/teamtally/internal/api"
	"github.com/mmynk/teamtally/internal/models"
	"github.com/mmynk/teamtally/internal/tracker"
)

// Ensure TrackerService implements the Connect handler interface
var _ api.TrackerServiceHandler = (*TrackerService)(nil)

// TrackerService implements the Connect TrackerService
type TrackerService struct {
	tracker *tracker.Tracker
}

// NewTrackerService creates a new TrackerService backed by the given tracker.
func NewTrackerService(t *tracker.Tracker) *TrackerService {
	return &TrackerService{tracker: t}
}

// CreateGroup creates a new group.
func (s *TrackerService) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	group, err := s.tracker.CreateGroup(ctx, req.Msg.Name, req.Msg.Description)
	if err != nil {
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.CreateGroupResponse{Group: *group}), nil
}

// DeleteGroup deletes a group with its members and tasks.
func (s *TrackerService) DeleteGroup(ctx context.Context, req *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error) {
	if err := s.tracker.DeleteGroup(ctx, req.Msg.GroupID); err != nil {
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.DeleteGroupResponse{}), nil
}

// GetGroup retrieves a group by ID.
func (s *TrackerService) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	group, err := s.tracker.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.GetGroupResponse{Group: *group}), nil
}

// ListGroups retrieves all groups.
func (s *TrackerService) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	groups, err := s.tracker.ListGroups(ctx)
	if err != nil {
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.ListGroupsResponse{Groups: groups}), nil
}

// AddMember adds a member to a group.
func (s *TrackerService) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	member, err := s.tracker.AddMember(ctx, req.Msg.GroupID, req.Msg.Name, req.Msg.Email)
	if err != nil {
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.AddMemberResponse{Member: *member}), nil
}

// RemoveMember removes a member and every task assigned to them.
func (s *TrackerService) RemoveMember(ctx context.Context, req *connect.Request[api.RemoveMemberRequest]) (*connect.Response[api.RemoveMemberResponse], error) {
	if err := s.tracker.RemoveMember(ctx, req.Msg.GroupID, req.Msg.MemberID); err != nil {
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.RemoveMemberResponse{}), nil
}

// ListMembers retrieves the members of a group.
func (s *TrackerService) ListMembers(ctx context.Context, req *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error) {
	members, err := s.tracker.ListMembers(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.ListMembersResponse{Members: members}), nil
}

// CreateTask creates a pending task assigned to a group member.
func (s *TrackerService) CreateTask(ctx context.Context, req *connect.Request[api.CreateTaskRequest]) (*connect.Response[api.CreateTaskResponse], error) {
	deadline, err := models.ParseDeadline(req.Msg.Deadline)
	if err != nil {
		return nil, connectError(err)
	}
	priority, err := models.ParsePriority(req.Msg.Priority)
	if err != nil {
		return nil, connectError(err)
	}

	task, err := s.tracker.CreateTask(ctx, req.Msg.GroupID, req.Msg.MemberID, tracker.TaskInput{
		Title:       req.Msg.Title,
		Description: req.Msg.Description,
		Deadline:    deadline,
		Priority:    priority,
		Points:      req.Msg.Points,
	})
	if err != nil {
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.CreateTaskResponse{Task: *task}), nil
}

// CompleteTask marks a task completed and credits its points.
func (s *TrackerService) CompleteTask(ctx context.Context, req *connect.Request[api.CompleteTaskRequest]) (*connect.Response[api.CompleteTaskResponse], error) {
	task, err := s.tracker.CompleteTask(ctx, req.Msg.TaskID)
	if err != nil {
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.CompleteTaskResponse{Task: *task}), nil
}

// DeleteTask deletes a task from a group.
func (s *TrackerService) DeleteTask(ctx context.Context, req *connect.Request[api.DeleteTaskRequest]) (*connect.Response[api.DeleteTaskResponse], error) {
	if err := s.tracker.DeleteTask(ctx, req.Msg.GroupID, req.Msg.TaskID); err != nil {
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.DeleteTaskResponse{}), nil
}

// ListTasks retrieves the tasks of a group.
func (s *TrackerService) ListTasks(ctx context.Context, req *connect.Request[api.ListTasksRequest]) (*connect.Response[api.ListTasksResponse], error) {
	tasks, err := s.tracker.ListTasks(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.ListTasksResponse{Tasks: tasks}), nil
}

// GetAnalytics computes leaderboard and productivity figures for a group.
func (s *TrackerService) GetAnalytics(ctx context.Context, req *connect.Request[api.GetAnalyticsRequest]) (*connect.Response[api.GetAnalyticsResponse], error) {
	report, err := s.tracker.Analytics(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.GetAnalyticsResponse{Report: *report}), nil
}

// GetDashboard summarizes every group.
func (s *TrackerService) GetDashboard(ctx context.Context, req *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	dashboard, err := s.tracker.Dashboard(ctx)
	if err != nil {
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.GetDashboardResponse{Dashboard: *dashboard}), nil
}

// connectError maps tracker errors onto Connect status codes.
func connectError(err error) error {
	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrInvalidAssignment):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, models.ErrDuplicateName), errors.Is(err, models.ErrDuplicateEmail):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, models.ErrAlreadyCompleted):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, models.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		slog.Error("Internal error", "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
}
