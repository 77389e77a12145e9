package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/mmynk/teamtally/internal/models"
)

var now = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func member(name string, points, completed, pending int) models.Member {
	return models.Member{
		ID:             "id-" + name,
		Name:           name,
		TotalPoints:    points,
		TasksCompleted: completed,
		TasksPending:   pending,
	}
}

func TestTopPerformer(t *testing.T) {
	tests := []struct {
		name     string
		members  []models.Member
		wantName string
		wantOK   bool
	}{
		{
			name:   "empty member set",
			wantOK: false,
		},
		{
			name:     "single member",
			members:  []models.Member{member("Ann", 0, 0, 0)},
			wantName: "Ann",
			wantOK:   true,
		},
		{
			name:     "highest points wins",
			members:  []models.Member{member("Ann", 10, 1, 0), member("Bob", 30, 3, 0), member("Cy", 20, 2, 0)},
			wantName: "Bob",
			wantOK:   true,
		},
		{
			name:     "tie goes to first member",
			members:  []models.Member{member("Ann", 5, 1, 0), member("Bob", 20, 2, 0), member("Cy", 20, 1, 0)},
			wantName: "Bob",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TopPerformer(tt.members)
			if ok != tt.wantOK {
				t.Fatalf("TopPerformer() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.Name != tt.wantName {
				t.Errorf("TopPerformer() = %s, want %s", got.Name, tt.wantName)
			}
		})
	}
}

func TestProductivityScore(t *testing.T) {
	tests := []struct {
		name    string
		members []models.Member
		want    float64
		wantOK  bool
	}{
		{name: "empty member set", wantOK: false},
		{
			name:    "no completed tasks",
			members: []models.Member{member("Ann", 0, 0, 2)},
			want:    0,
			wantOK:  true,
		},
		{
			// 3 tasks for 30 points and 1 task for 10 points: 40 / 4
			name:    "points per completed task",
			members: []models.Member{member("Ann", 30, 3, 0), member("Bob", 10, 1, 0)},
			want:    10.00,
			wantOK:  true,
		},
		{
			name:    "rounded to two places",
			members: []models.Member{member("Ann", 10, 3, 0)},
			want:    3.33,
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ProductivityScore(tt.members)
			if ok != tt.wantOK {
				t.Fatalf("ProductivityScore() ok = %v, want %v", ok, tt.wantOK)
			}
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("ProductivityScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWorkloadDistribution(t *testing.T) {
	if _, ok := WorkloadDistribution(nil); ok {
		t.Error("expected undefined workload for empty member set")
	}

	members := []models.Member{member("Ann", 0, 2, 1), member("Bob", 0, 0, 1), member("Cy", 0, 1, 2)}
	got, ok := WorkloadDistribution(members)
	if !ok {
		t.Fatal("expected workload to be defined")
	}
	// (3 + 1 + 3) / 3 = 2.333…
	if math.Abs(got-2.33) > 0.001 {
		t.Errorf("WorkloadDistribution() = %v, want 2.33", got)
	}
}

func TestOverduePercentage(t *testing.T) {
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	task := func(status models.TaskStatus, deadline time.Time) models.Task {
		return models.Task{Status: status, Deadline: deadline}
	}

	tests := []struct {
		name   string
		tasks  []models.Task
		want   float64
		wantOK bool
	}{
		{name: "no tasks", wantOK: false},
		{
			name: "one of four pending past deadline",
			tasks: []models.Task{
				task(models.StatusPending, past),
				task(models.StatusPending, future),
				task(models.StatusCompleted, past),
				task(models.StatusCompleted, future),
			},
			want:   25.0,
			wantOK: true,
		},
		{
			name:   "completed late tasks are not overdue",
			tasks:  []models.Task{task(models.StatusCompleted, past)},
			want:   0,
			wantOK: true,
		},
		{
			name: "rounded to one place",
			tasks: []models.Task{
				task(models.StatusPending, past),
				task(models.StatusPending, future),
				task(models.StatusPending, future),
			},
			want:   33.3,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := OverduePercentage(tt.tasks, now)
			if ok != tt.wantOK {
				t.Fatalf("OverduePercentage() ok = %v, want %v", ok, tt.wantOK)
			}
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("OverduePercentage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLeaderboard(t *testing.T) {
	members := []models.Member{
		member("Ann", 10, 1, 0),
		member("Bob", 30, 3, 0),
		member("Cy", 10, 2, 0),
		member("Dee", 0, 0, 4),
	}

	board := Leaderboard(members)

	want := []struct {
		name string
		rank int
	}{
		{"Bob", 1},
		{"Ann", 2},
		{"Cy", 3},
		{"Dee", 4},
	}
	if len(board) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(board))
	}
	for i, w := range want {
		if board[i].Name != w.name || board[i].Rank != w.rank {
			t.Errorf("entry %d = %s/#%d, want %s/#%d", i, board[i].Name, board[i].Rank, w.name, w.rank)
		}
	}

	if members[0].Name != "Ann" || members[1].Name != "Bob" {
		t.Error("Leaderboard must not reorder its input")
	}
}

func TestLeaderboard_SingleMember(t *testing.T) {
	board := Leaderboard([]models.Member{member("Ann", 10, 1, 0)})

	want := Entry{MemberID: "id-Ann", Name: "Ann", TotalPoints: 10, TasksCompleted: 1, Rank: 1}
	if len(board) != 1 || board[0] != want {
		t.Errorf("Leaderboard() = %+v, want [%+v]", board, want)
	}
}

func TestBuild(t *testing.T) {
	t.Run("empty group", func(t *testing.T) {
		r := Build(nil, nil, now)
		if r.TopPerformer != nil || r.ProductivityScore != nil || r.WorkloadDistribution != nil || r.OverduePercentage != nil {
			t.Errorf("expected undefined figures, got %+v", r)
		}
		if r.Leaderboard == nil || len(r.Leaderboard) != 0 {
			t.Errorf("expected empty leaderboard, got %v", r.Leaderboard)
		}
	})

	t.Run("populated group", func(t *testing.T) {
		members := []models.Member{member("Ann", 30, 3, 1), member("Bob", 10, 1, 0)}
		tasks := []models.Task{
			{Status: models.StatusPending, Deadline: now.Add(-time.Hour)},
			{Status: models.StatusCompleted, Deadline: now.Add(-time.Hour)},
		}

		r := Build(members, tasks, now)
		if r.TopPerformer == nil || r.TopPerformer.Name != "Ann" {
			t.Errorf("TopPerformer = %+v, want Ann", r.TopPerformer)
		}
		if r.ProductivityScore == nil || *r.ProductivityScore != 10 {
			t.Errorf("ProductivityScore = %v, want 10", r.ProductivityScore)
		}
		if r.WorkloadDistribution == nil || *r.WorkloadDistribution != 2.5 {
			t.Errorf("WorkloadDistribution = %v, want 2.5", r.WorkloadDistribution)
		}
		if r.OverduePercentage == nil || *r.OverduePercentage != 50 {
			t.Errorf("OverduePercentage = %v, want 50", r.OverduePercentage)
		}
		if r.OverdueCount != 1 || r.MemberCount != 2 || r.TaskCount != 2 {
			t.Errorf("unexpected counts: %+v", r)
		}
	})
}
