package jobs

import (
	"context"
	"strings"
	"time"

	jobPostingRepo "cpicareers/database/repository/jobposting"
	"cpicareers/models"

	"github.com/google/uuid"
)

type JobService interface {
	ListActive(ctx context.Context) ([]models.JobPosting, error)
	Create(ctx context.Context, posting models.JobPosting) (*models.JobPosting, error)
}

type JobServiceImpl struct {
	Repo jobPostingRepo.JobPostingRepository
	now  func() time.Time
}

func NewJobService(repo jobPostingRepo.JobPostingRepository) *JobServiceImpl {
	return &JobServiceImpl{Repo: repo, now: time.Now}
}

func (s *JobServiceImpl) ListActive(ctx context.Context) ([]models.JobPosting, error) {
	return s.Repo.ListActive(ctx, s.now())
}

// Create publishes a posting. New postings are active immediately.
func (s *JobServiceImpl) Create(ctx context.Context, posting models.JobPosting) (*models.JobPosting, error) {
	posting.ID = uuid.New().String()
	posting.Title = strings.TrimSpace(posting.Title)
	posting.IsActive = true
	posting.PostedAt = s.now()
	if err := s.Repo.Create(ctx, &posting); err != nil {
		return nil, err
	}
	return &posting, nil
}
