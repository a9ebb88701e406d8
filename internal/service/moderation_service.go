package service

import (
	"context"
	"fmt"
	"time"

	"wellness-service/internal/models"
	"wellness-service/internal/repository"
)

// ModerationService manages positivity-wall contributions and user feedback.
type ModerationService struct {
	Repo *repository.ModerationRepository
}

func NewModerationService(repo *repository.ModerationRepository) *ModerationService {
	return &ModerationService{Repo: repo}
}

// SubmitContribution stores a new contribution in the pending queue.
func (s *ModerationService) SubmitContribution(ctx context.Context, name, content, kind string) (*models.Contribution, error) {
	if kind != models.ContributionQuote && kind != models.ContributionStory {
		return nil, fmt.Errorf("unknown contribution type %q", kind)
	}
	c := &models.Contribution{
		Name:      name,
		Content:   content,
		Type:      kind,
		Status:    models.ContributionPending,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.CreateContribution(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ModerationService) ListContributions(ctx context.Context, status string) ([]models.Contribution, error) {
	return s.Repo.ListContributions(ctx, status)
}

// Publish moves a pending contribution onto the public wall.
func (s *ModerationService) Publish(ctx context.Context, id string) error {
	return s.Repo.UpdateContributionStatus(ctx, id, models.ContributionPublished)
}

func (s *ModerationService) Delete(ctx context.Context, id string) error {
	return s.Repo.DeleteContribution(ctx, id)
}

func (s *ModerationService) SubmitFeedback(ctx context.Context, content, kind string) (*models.UserFeedback, error) {
	f := &models.UserFeedback{
		Content:   content,
		Type:      kind,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.CreateFeedback(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *ModerationService) ListFeedback(ctx context.Context) ([]models.UserFeedback, error) {
	return s.Repo.ListFeedback(ctx)
}
