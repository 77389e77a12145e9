// Package api defines the teamtally.v1.TrackerService RPC contract: request
// and response messages, procedure names, and the Connect handler and client.
package api

import (
	"github.com/mmynk/teamtally/internal/analytics"
	"github.com/mmynk/teamtally/internal/models"
	"github.com/mmynk/teamtally/internal/tracker"
)

type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateGroupResponse struct {
	Group models.Group `json:"group"`
}

type DeleteGroupRequest struct {
	GroupID string `json:"groupId"`
}

type DeleteGroupResponse struct{}

type GetGroupRequest struct {
	GroupID string `json:"groupId"`
}

type GetGroupResponse struct {
	Group models.Group `json:"group"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []models.Group `json:"groups"`
}

type AddMemberRequest struct {
	GroupID string `json:"groupId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

type AddMemberResponse struct {
	Member models.Member `json:"member"`
}

type RemoveMemberRequest struct {
	GroupID  string `json:"groupId"`
	MemberID string `json:"memberId"`
}

type RemoveMemberResponse struct{}

type ListMembersRequest struct {
	GroupID string `json:"groupId"`
}

type ListMembersResponse struct {
	Members []models.Member `json:"members"`
}

// CreateTaskRequest carries a new task. Deadline is YYYY-MM-DD or RFC 3339.
type CreateTaskRequest struct {
	GroupID     string `json:"groupId"`
	MemberID    string `json:"memberId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Priority    string `json:"priority"`
	Points      int    `json:"points"`
}

type CreateTaskResponse struct {
	Task models.Task `json:"task"`
}

type CompleteTaskRequest struct {
	TaskID string `json:"taskId"`
}

type CompleteTaskResponse struct {
	Task models.Task `json:"task"`
}

type DeleteTaskRequest struct {
	GroupID string `json:"groupId"`
	TaskID  string `json:"taskId"`
}

type DeleteTaskResponse struct{}

type ListTasksRequest struct {
	GroupID string `json:"groupId"`
}

type ListTasksResponse struct {
	Tasks []models.Task `json:"tasks"`
}

type GetAnalyticsRequest struct {
	GroupID string `json:"groupId"`
}

type GetAnalyticsResponse struct {
	Report analytics.Report `json:"report"`
}

type GetDashboardRequest struct{}

type GetDashboardResponse struct {
	Dashboard tracker.Dashboard `json:"dashboard"`
}
