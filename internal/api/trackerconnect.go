package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// TrackerServiceName is the fully-qualified name of the TrackerService service.
const TrackerServiceName = "teamtally.v1.TrackerService"

// Procedure paths, one per RPC.
const (
	TrackerServiceCreateGroupProcedure  = "/teamtally.v1.TrackerService/CreateGroup"
	TrackerServiceDeleteGroupProcedure  = "/teamtally.v1.TrackerService/DeleteGroup"
	TrackerServiceGetGroupProcedure     = "/teamtally.v1.TrackerService/GetGroup"
	TrackerServiceListGroupsProcedure   = "/teamtally.v1.TrackerService/ListGroups"
	TrackerServiceAddMemberProcedure    = "/teamtally.v1.TrackerService/AddMember"
	TrackerServiceRemoveMemberProcedure = "/teamtally.v1.TrackerService/RemoveMember"
	TrackerServiceListMembersProcedure  = "/teamtally.v1.TrackerService/ListMembers"
	TrackerServiceCreateTaskProcedure   = "/teamtally.v1.TrackerService/CreateTask"
	TrackerServiceCompleteTaskProcedure = "/teamtally.v1.TrackerService/CompleteTask"
	TrackerServiceDeleteTaskProcedure   = "/teamtally.v1.TrackerService/DeleteTask"
	TrackerServiceListTasksProcedure    = "/teamtally.v1.TrackerService/ListTasks"
	TrackerServiceGetAnalyticsProcedure = "/teamtally.v1.TrackerService/GetAnalytics"
	TrackerServiceGetDashboardProcedure = "/teamtally.v1.TrackerService/GetDashboard"
)

// TrackerServiceHandler is implemented by the server side of TrackerService.
type TrackerServiceHandler interface {
	CreateGroup(context.Context, *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error)
	DeleteGroup(context.Context, *connect.Request[DeleteGroupRequest]) (*connect.Response[DeleteGroupResponse], error)
	GetGroup(context.Context, *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error)
	ListGroups(context.Context, *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error)
	AddMember(context.Context, *connect.Request[AddMemberRequest]) (*connect.Response[AddMemberResponse], error)
	RemoveMember(context.Context, *connect.Request[RemoveMemberRequest]) (*connect.Response[RemoveMemberResponse], error)
	ListMembers(context.Context, *connect.Request[ListMembersRequest]) (*connect.Response[ListMembersResponse], error)
	CreateTask(context.Context, *connect.Request[CreateTaskRequest]) (*connect.Response[CreateTaskResponse], error)
	CompleteTask(context.Context, *connect.Request[CompleteTaskRequest]) (*connect.Response[CompleteTaskResponse], error)
	DeleteTask(context.Context, *connect.Request[DeleteTaskRequest]) (*connect.Response[DeleteTaskResponse], error)
	ListTasks(context.Context, *connect.Request[ListTasksRequest]) (*connect.Response[ListTasksResponse], error)
	GetAnalytics(context.Context, *connect.Request[GetAnalyticsRequest]) (*connect.Response[GetAnalyticsResponse], error)
	GetDashboard(context.Context, *connect.Request[GetDashboardRequest]) (*connect.Response[GetDashboardResponse], error)
}

// NewTrackerServiceHandler builds an HTTP handler serving every TrackerService
// procedure. It returns the path prefix to mount the handler on.
func NewTrackerServiceHandler(svc TrackerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	mux := http.NewServeMux()
	unary(mux, TrackerServiceCreateGroupProcedure, svc.CreateGroup, opts)
	unary(mux, TrackerServiceDeleteGroupProcedure, svc.DeleteGroup, opts)
	unary(mux, TrackerServiceGetGroupProcedure, svc.GetGroup, opts)
	unary(mux, TrackerServiceListGroupsProcedure, svc.ListGroups, opts)
	unary(mux, TrackerServiceAddMemberProcedure, svc.AddMember, opts)
	unary(mux, TrackerServiceRemoveMemberProcedure, svc.RemoveMember, opts)
	unary(mux, TrackerServiceListMembersProcedure, svc.ListMembers, opts)
	unary(mux, TrackerServiceCreateTaskProcedure, svc.CreateTask, opts)
	unary(mux, TrackerServiceCompleteTaskProcedure, svc.CompleteTask, opts)
	unary(mux, TrackerServiceDeleteTaskProcedure, svc.DeleteTask, opts)
	unary(mux, TrackerServiceListTasksProcedure, svc.ListTasks, opts)
	unary(mux, TrackerServiceGetAnalyticsProcedure, svc.GetAnalytics, opts)
	unary(mux, TrackerServiceGetDashboardProcedure, svc.GetDashboard, opts)

	return "/" + TrackerServiceName + "/", mux
}

func unary[Req, Res any](
	mux *http.ServeMux,
	procedure string,
	fn func(context.Context, *connect.Request[Req]) (*connect.Response[Res], error),
	opts []connect.HandlerOption,
) {
	mux.Handle(procedure, connect.NewUnaryHandler(procedure, fn, opts...))
}

// TrackerServiceClient is a client for TrackerService.
type TrackerServiceClient struct {
	createGroup  *connect.Client[CreateGroupRequest, CreateGroupResponse]
	deleteGroup  *connect.Client[DeleteGroupRequest, DeleteGroupResponse]
	getGroup     *connect.Client[GetGroupRequest, GetGroupResponse]
	listGroups   *connect.Client[ListGroupsRequest, ListGroupsResponse]
	addMember    *connect.Client[AddMemberRequest, AddMemberResponse]
	removeMember *connect.Client[RemoveMemberRequest, RemoveMemberResponse]
	listMembers  *connect.Client[ListMembersRequest, ListMembersResponse]
	createTask   *connect.Client[CreateTaskRequest, CreateTaskResponse]
	completeTask *connect.Client[CompleteTaskRequest, CompleteTaskResponse]
	deleteTask   *connect.Client[DeleteTaskRequest, DeleteTaskResponse]
	listTasks    *connect.Client[ListTasksRequest, ListTasksResponse]
	getAnalytics *connect.Client[GetAnalyticsRequest, GetAnalyticsResponse]
	getDashboard *connect.Client[GetDashboardRequest, GetDashboardResponse]
}

// NewTrackerServiceClient creates a client for the server at baseURL
// (for example, http://localhost:8080).
func NewTrackerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *TrackerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)

	return &TrackerServiceClient{
		createGroup:  connect.NewClient[CreateGroupRequest, CreateGroupResponse](httpClient, baseURL+TrackerServiceCreateGroupProcedure, opts...),
		deleteGroup:  connect.NewClient[DeleteGroupRequest, DeleteGroupResponse](httpClient, baseURL+TrackerServiceDeleteGroupProcedure, opts...),
		getGroup:     connect.NewClient[GetGroupRequest, GetGroupResponse](httpClient, baseURL+TrackerServiceGetGroupProcedure, opts...),
		listGroups:   connect.NewClient[ListGroupsRequest, ListGroupsResponse](httpClient, baseURL+TrackerServiceListGroupsProcedure, opts...),
		addMember:    connect.NewClient[AddMemberRequest, AddMemberResponse](httpClient, baseURL+TrackerServiceAddMemberProcedure, opts...),
		removeMember: connect.NewClient[RemoveMemberRequest, RemoveMemberResponse](httpClient, baseURL+TrackerServiceRemoveMemberProcedure, opts...),
		listMembers:  connect.NewClient[ListMembersRequest, ListMembersResponse](httpClient, baseURL+TrackerServiceListMembersProcedure, opts...),
		createTask:   connect.NewClient[CreateTaskRequest, CreateTaskResponse](httpClient, baseURL+TrackerServiceCreateTaskProcedure, opts...),
		completeTask: connect.NewClient[CompleteTaskRequest, CompleteTaskResponse](httpClient, baseURL+TrackerServiceCompleteTaskProcedure, opts...),
		deleteTask:   connect.NewClient[DeleteTaskRequest, DeleteTaskResponse](httpClient, baseURL+TrackerServiceDeleteTaskProcedure, opts...),
		listTasks:    connect.NewClient[ListTasksRequest, ListTasksResponse](httpClient, baseURL+TrackerServiceListTasksProcedure, opts...),
		getAnalytics: connect.NewClient[GetAnalyticsRequest, GetAnalyticsResponse](httpClient, baseURL+TrackerServiceGetAnalyticsProcedure, opts...),
		getDashboard: connect.NewClient[GetDashboardRequest, GetDashboardResponse](httpClient, baseURL+TrackerServiceGetDashboardProcedure, opts...),
	}
}

func (c *TrackerServiceClient) CreateGroup(ctx context.Context, req *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

func (c *TrackerServiceClient) DeleteGroup(ctx context.Context, req *connect.Request[DeleteGroupRequest]) (*connect.Response[DeleteGroupResponse], error) {
	return c.deleteGroup.CallUnary(ctx, req)
}

func (c *TrackerServiceClient) GetGroup(ctx context.Context, req *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}

func (c *TrackerServiceClient) ListGroups(ctx context.Context, req *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

func (c *TrackerServiceClient) AddMember(ctx context.Context, req *connect.Request[AddMemberRequest]) (*connect.Response[AddMemberResponse], error) {
	return c.addMember.CallUnary(ctx, req)
}

func (c *TrackerServiceClient) RemoveMember(ctx context.Context, req *connect.Request[RemoveMemberRequest]) (*connect.Response[RemoveMemberResponse], error) {
	return c.removeMember.CallUnary(ctx, req)
}

func (c *TrackerServiceClient) ListMembers(ctx context.Context, req *connect.Request[ListMembersRequest]) (*connect.Response[ListMembersResponse], error) {
	return c.listMembers.CallUnary(ctx, req)
}

func (c *TrackerServiceClient) CreateTask(ctx context.Context, req *connect.Request[CreateTaskRequest]) (*connect.Response[CreateTaskResponse], error) {
	return c.createTask.CallUnary(ctx, req)
}

func (c *TrackerServiceClient) CompleteTask(ctx context.Context, req *connect.Request[CompleteTaskRequest]) (*connect.Response[CompleteTaskResponse], error) {
	return c.completeTask.CallUnary(ctx, req)
}

func (c *TrackerServiceClient) DeleteTask(ctx context.Context, req *connect.Request[DeleteTaskRequest]) (*connect.Response[DeleteTaskResponse], error) {
	return c.deleteTask.CallUnary(ctx, req)
}

func (c *TrackerServiceClient) ListTasks(ctx context.Context, req *connect.Request[ListTasksRequest]) (*connect.Response[ListTasksResponse], error) {
	return c.listTasks.CallUnary(ctx, req)
}

func (c *TrackerServiceClient) GetAnalytics(ctx context.Context, req *connect.Request[GetAnalyticsRequest]) (*connect.Response[GetAnalyticsResponse], error) {
	return c.getAnalytics.CallUnary(ctx, req)
}

func (c *TrackerServiceClient) GetDashboard(ctx context.Context, req *connect.Request[GetDashboardRequest]) (*connect.Response[GetDashboardResponse], error) {
	return c.getDashboard.CallUnary(ctx, req)
}
