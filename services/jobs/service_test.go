package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"cpicareers/models"
)

type memPostings struct {
	created []models.JobPosting
	listAt  time.Time
	fail    error
}

func (m *memPostings) Create(_ context.Context, p *models.JobPosting) error {
	if m.fail != nil {
		return m.fail
	}
	m.created = append(m.created, *p)
	return nil
}

func (m *memPostings) ListActive(_ context.Context, now time.Time) ([]models.JobPosting, error) {
	m.listAt = now
	return m.created, nil
}

func (m *memPostings) EnsureIndexes(context.Context) error { return nil }

func TestCreatePublishesPosting(t *testing.T) {
	clock := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := &memPostings{}
	svc := &JobServiceImpl{Repo: repo, now: func() time.Time { return clock }}

	got, err := svc.Create(context.Background(), models.JobPosting{Title: "  Backend Engineer ", Description: "Go"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.ID == "" {
		t.Fatal("expected generated id")
	}
	if got.Title != "Backend Engineer" {
		t.Fatalf("title = %q", got.Title)
	}
	if !got.IsActive || !got.PostedAt.Equal(clock) {
		t.Fatalf("posting not published: active=%v postedAt=%v", got.IsActive, got.PostedAt)
	}
	if len(repo.created) != 1 || repo.created[0].ID != got.ID {
		t.Fatalf("repo holds %+v", repo.created)
	}
}

func TestCreatePropagatesStoreError(t *testing.T) {
	boom := errors.New("boom")
	svc := &JobServiceImpl{Repo: &memPostings{fail: boom}, now: time.Now}
	if _, err := svc.Create(context.Background(), models.JobPosting{Title: "x"}); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestListActiveUsesCurrentTime(t *testing.T) {
	clock := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := &memPostings{}
	svc := &JobServiceImpl{Repo: repo, now: func() time.Time { return clock }}
	if _, err := svc.ListActive(context.Background()); err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if !repo.listAt.Equal(clock) {
		t.Fatalf("listed at %v", repo.listAt)
	}
}
