package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/teamtally/internal/api"
	"github.com/mmynk/teamtally/internal/models"
	"github.com/mmynk/teamtally/internal/storage/sqlstore"
	"github.com/mmynk/teamtally/internal/tracker"
)

var testNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

// setupTestServer creates a test server serving TrackerService over a
// temporary SQLite database.
func setupTestServer(t *testing.T) *api.TrackerServiceClient {
	t.Helper()

	store, err := sqlstore.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	tr := tracker.New(store, tracker.WithClock(func() time.Time { return testNow }))
	path, handler := api.NewTrackerServiceHandler(NewTrackerService(tr))

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)

	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return api.NewTrackerServiceClient(http.DefaultClient, server.URL)
}

func createGroup(t *testing.T, client *api.TrackerServiceClient, name string) models.Group {
	t.Helper()
	resp, err := client.CreateGroup(context.Background(), connect.NewRequest(&api.CreateGroupRequest{Name: name}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return resp.Msg.Group
}

func addMember(t *testing.T, client *api.TrackerServiceClient, groupID, name, email string) models.Member {
	t.Helper()
	resp, err := client.AddMember(context.Background(), connect.NewRequest(&api.AddMemberRequest{
		GroupID: groupID,
		Name:    name,
		Email:   email,
	}))
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	return resp.Msg.Member
}

func TestCreateGroup(t *testing.T) {
	client := setupTestServer(t)

	resp, err := client.CreateGroup(context.Background(), connect.NewRequest(&api.CreateGroupRequest{
		Name:        "Alpha",
		Description: "first team",
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	group := resp.Msg.Group
	if group.ID == "" {
		t.Error("expected group ID to be set")
	}
	if group.Name != "Alpha" || group.Description != "first team" {
		t.Errorf("unexpected group: %+v", group)
	}
	if !group.CreatedAt.Equal(testNow) {
		t.Errorf("expected CreatedAt %v, got %v", testNow, group.CreatedAt)
	}
	if group.MemberCount != 0 || group.TaskCount != 0 {
		t.Errorf("expected zero counters, got %+v", group)
	}
}

func TestErrorCodes(t *testing.T) {
	client := setupTestServer(t)
	ctx := context.Background()

	alpha := createGroup(t, client, "Alpha")
	ann := addMember(t, client, alpha.ID, "Ann", "ann@x.com")

	tests := []struct {
		name string
		call func() error
		want connect.Code
	}{
		{
			name: "blank group name",
			call: func() error {
				_, err := client.CreateGroup(ctx, connect.NewRequest(&api.CreateGroupRequest{Name: "  "}))
				return err
			},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "duplicate group name",
			call: func() error {
				_, err := client.CreateGroup(ctx, connect.NewRequest(&api.CreateGroupRequest{Name: "Alpha"}))
				return err
			},
			want: connect.CodeAlreadyExists,
		},
		{
			name: "duplicate email",
			call: func() error {
				_, err := client.AddMember(ctx, connect.NewRequest(&api.AddMemberRequest{
					GroupID: alpha.ID, Name: "Other Ann", Email: "ann@x.com",
				}))
				return err
			},
			want: connect.CodeAlreadyExists,
		},
		{
			name: "unknown group",
			call: func() error {
				_, err := client.GetGroup(ctx, connect.NewRequest(&api.GetGroupRequest{GroupID: "missing"}))
				return err
			},
			want: connect.CodeNotFound,
		},
		{
			name: "invalid deadline",
			call: func() error {
				_, err := client.CreateTask(ctx, connect.NewRequest(&api.CreateTaskRequest{
					GroupID: alpha.ID, MemberID: ann.ID, Title: "Ship", Deadline: "tomorrow",
				}))
				return err
			},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "invalid priority",
			call: func() error {
				_, err := client.CreateTask(ctx, connect.NewRequest(&api.CreateTaskRequest{
					GroupID: alpha.ID, MemberID: ann.ID, Title: "Ship", Deadline: "2026-10-20", Priority: "URGENT",
				}))
				return err
			},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "member outside group",
			call: func() error {
				_, err := client.CreateTask(ctx, connect.NewRequest(&api.CreateTaskRequest{
					GroupID: alpha.ID, MemberID: "nobody", Title: "Ship", Deadline: "2026-10-20",
				}))
				return err
			},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "unknown task",
			call: func() error {
				_, err := client.CompleteTask(ctx, connect.NewRequest(&api.CompleteTaskRequest{TaskID: "missing"}))
				return err
			},
			want: connect.CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := connect.CodeOf(err); got != tt.want {
				t.Errorf("expected code %v, got %v (%v)", tt.want, got, err)
			}
		})
	}
}

func TestTaskLifecycle(t *testing.T) {
	client := setupTestServer(t)
	ctx := context.Background()

	alpha := createGroup(t, client, "Alpha")
	ann := addMember(t, client, alpha.ID, "Ann", "ann@x.com")

	createResp, err := client.CreateTask(ctx, connect.NewRequest(&api.CreateTaskRequest{
		GroupID:  alpha.ID,
		MemberID: ann.ID,
		Title:    "Ship v1",
		Deadline: "2026-10-20",
		Priority: "high",
		Points:   10,
	}))
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	task := createResp.Msg.Task
	if task.Status != models.StatusPending || task.Priority != models.PriorityHigh {
		t.Errorf("unexpected task: %+v", task)
	}
	wantDeadline := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	if !task.Deadline.Equal(wantDeadline) {
		t.Errorf("expected deadline %v, got %v", wantDeadline, task.Deadline)
	}

	completeResp, err := client.CompleteTask(ctx, connect.NewRequest(&api.CompleteTaskRequest{TaskID: task.ID}))
	if err != nil {
		t.Fatalf("CompleteTask failed: %v", err)
	}
	if completeResp.Msg.Task.CompletedAt == nil {
		t.Error("expected CompletedAt to be set")
	}

	_, err = client.CompleteTask(ctx, connect.NewRequest(&api.CompleteTaskRequest{TaskID: task.ID}))
	if connect.CodeOf(err) != connect.CodeFailedPrecondition {
		t.Errorf("expected FailedPrecondition on second completion, got %v", err)
	}

	membersResp, err := client.ListMembers(ctx, connect.NewRequest(&api.ListMembersRequest{GroupID: alpha.ID}))
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(membersResp.Msg.Members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(membersResp.Msg.Members))
	}
	member := membersResp.Msg.Members[0]
	if member.TotalPoints != 10 || member.TasksCompleted != 1 || member.TasksPending != 0 {
		t.Errorf("unexpected member counters: %+v", member)
	}

	analyticsResp, err := client.GetAnalytics(ctx, connect.NewRequest(&api.GetAnalyticsRequest{GroupID: alpha.ID}))
	if err != nil {
		t.Fatalf("GetAnalytics failed: %v", err)
	}
	report := analyticsResp.Msg.Report
	if report.TopPerformer == nil || report.TopPerformer.MemberID != ann.ID {
		t.Errorf("expected Ann as top performer, got %+v", report.TopPerformer)
	}
	if report.ProductivityScore == nil || *report.ProductivityScore != 10 {
		t.Errorf("expected productivity score 10, got %v", report.ProductivityScore)
	}
	if report.OverduePercentage == nil || *report.OverduePercentage != 0 {
		t.Errorf("expected overdue percentage 0, got %v", report.OverduePercentage)
	}

	_, err = client.DeleteTask(ctx, connect.NewRequest(&api.DeleteTaskRequest{GroupID: alpha.ID, TaskID: task.ID}))
	if err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}

	tasksResp, err := client.ListTasks(ctx, connect.NewRequest(&api.ListTasksRequest{GroupID: alpha.ID}))
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasksResp.Msg.Tasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(tasksResp.Msg.Tasks))
	}
}

func TestAnalytics_EmptyGroup(t *testing.T) {
	client := setupTestServer(t)

	alpha := createGroup(t, client, "Alpha")

	resp, err := client.GetAnalytics(context.Background(), connect.NewRequest(&api.GetAnalyticsRequest{GroupID: alpha.ID}))
	if err != nil {
		t.Fatalf("GetAnalytics failed: %v", err)
	}
	report := resp.Msg.Report
	if report.TopPerformer != nil || report.ProductivityScore != nil || report.WorkloadDistribution != nil || report.OverduePercentage != nil {
		t.Errorf("expected undefined figures for an empty group, got %+v", report)
	}
}

func TestRemoveMemberAndDeleteGroup(t *testing.T) {
	client := setupTestServer(t)
	ctx := context.Background()

	alpha := createGroup(t, client, "Alpha")
	ann := addMember(t, client, alpha.ID, "Ann", "ann@x.com")
	addMember(t, client, alpha.ID, "Bob", "bob@x.com")

	_, err := client.RemoveMember(ctx, connect.NewRequest(&api.RemoveMemberRequest{GroupID: alpha.ID, MemberID: ann.ID}))
	if err != nil {
		t.Fatalf("RemoveMember failed: %v", err)
	}

	groupResp, err := client.GetGroup(ctx, connect.NewRequest(&api.GetGroupRequest{GroupID: alpha.ID}))
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if groupResp.Msg.Group.MemberCount != 1 {
		t.Errorf("expected member count 1, got %d", groupResp.Msg.Group.MemberCount)
	}

	_, err = client.DeleteGroup(ctx, connect.NewRequest(&api.DeleteGroupRequest{GroupID: alpha.ID}))
	if err != nil {
		t.Fatalf("DeleteGroup failed: %v", err)
	}

	dashResp, err := client.GetDashboard(ctx, connect.NewRequest(&api.GetDashboardRequest{}))
	if err != nil {
		t.Fatalf("GetDashboard failed: %v", err)
	}
	dash := dashResp.Msg.Dashboard
	if dash.TotalGroups != 0 || dash.TotalMembers != 0 {
		t.Errorf("expected empty dashboard, got %+v", dash)
	}

	listResp, err := client.ListGroups(ctx, connect.NewRequest(&api.ListGroupsRequest{}))
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(listResp.Msg.Groups) != 0 {
		t.Errorf("expected no groups, got %d", len(listResp.Msg.Groups))
	}
}
