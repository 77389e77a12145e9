// Package tracker implements the group, member and task operations. It is
// the only writer of the denormalized counters on groups and members.
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/teamtally/internal/analytics"
	"github.com/mmynk/teamtally/internal/models"
	"github.com/mmynk/teamtally/internal/storage"
)

// Tracker runs tracker operations against a storage.Store. It keeps no
// state between calls besides its dependencies.
type Tracker struct {
	store storage.Store
	now   func() time.Time
	newID func() string
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithIDGenerator overrides how identifiers are minted.
func WithIDGenerator(newID func() string) Option {
	return func(t *Tracker) { t.newID = newID }
}

// New creates a Tracker with the given storage backend.
func New(store storage.Store, opts ...Option) *Tracker {
	t := &Tracker{
		store: store,
		now:   Now,
		newID: NewID,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Now is the default clock: UTC, truncated to the millisecond precision the
// SQL store keeps, so a record reads back equal to what a mutation returned.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// NewID returns a time-ordered UUIDv7 string.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// ListGroups returns all groups in creation order.
func (t *Tracker) ListGroups(ctx context.Context) ([]models.Group, error) {
	snap, err := t.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Groups, nil
}

// GetGroup returns one group.
func (t *Tracker) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	snap, err := t.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := snap.GroupIndex(groupID)
	if i < 0 {
		return nil, groupNotFound(groupID)
	}
	return &snap.Groups[i], nil
}

// ListMembers returns the members of a group in the order they joined.
func (t *Tracker) ListMembers(ctx context.Context, groupID string) ([]models.Member, error) {
	snap, err := t.loadGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return snap.GroupMembers(groupID), nil
}

// ListTasks returns the tasks of a group in creation order.
func (t *Tracker) ListTasks(ctx context.Context, groupID string) ([]models.Task, error) {
	snap, err := t.loadGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return snap.GroupTasks(groupID), nil
}

// Analytics computes the analytics report for a group.
func (t *Tracker) Analytics(ctx context.Context, groupID string) (*analytics.Report, error) {
	snap, err := t.loadGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	report := analytics.Build(snap.GroupMembers(groupID), snap.GroupTasks(groupID), t.now())
	return &report, nil
}

// RecentGroupsLimit is how many groups the dashboard lists.
const RecentGroupsLimit = 5

// Dashboard summarizes all groups.
type Dashboard struct {
	TotalGroups    int            `json:"totalGroups"`
	TotalMembers   int            `json:"totalMembers"`
	CompletedTasks int            `json:"completedTasks"`
	TotalPoints    int            `json:"totalPoints"`
	RecentGroups   []models.Group `json:"recentGroups"`
}

// Dashboard returns totals across every group and the first few groups.
func (t *Tracker) Dashboard(ctx context.Context) (*Dashboard, error) {
	snap, err := t.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		TotalGroups:  len(snap.Groups),
		TotalMembers: len(snap.Members),
		RecentGroups: snap.Groups[:min(len(snap.Groups), RecentGroupsLimit)],
	}
	for _, task := range snap.Tasks {
		if task.Status == models.StatusCompleted {
			d.CompletedTasks++
		}
	}
	for _, m := range snap.Members {
		d.TotalPoints += m.TotalPoints
	}
	if d.RecentGroups == nil {
		d.RecentGroups = []models.Group{}
	}
	return d, nil
}

func (t *Tracker) loadGroup(ctx context.Context, groupID string) (*storage.Snapshot, error) {
	snap, err := t.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if snap.GroupIndex(groupID) < 0 {
		return nil, groupNotFound(groupID)
	}
	return snap, nil
}

// update runs fn in a store update and logs the outcome of the operation.
func (t *Tracker) update(ctx context.Context, op string, fn func(*storage.Snapshot) error) error {
	err := t.store.Update(ctx, fn)
	if err != nil {
		if isDomainError(err) {
			slog.Warn(op+" rejected", "error", err)
		} else {
			slog.Error(op+" failed", "error", err)
		}
	}
	return err
}

func groupNotFound(groupID string) error {
	return fmt.Errorf("%w: group %s", models.ErrNotFound, groupID)
}
