// Package service provides business logic for the results module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/shaundavidpr/hashitup-sub000/internal/notification"
	"github.com/shaundavidpr/hashitup-sub000/internal/results/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/results/repository"
	submissionModel "github.com/shaundavidpr/hashitup-sub000/internal/submission/model"
)

// Service defines the interface for results publication. The superadmin
// gate lives in the HTTP layer.
type Service interface {
	// Publish snapshots the current review outcome into a fresh audit row.
	Publish(ctx context.Context, actorID string) (*model.PublishResponse, error)

	// Status reports whether results have been published.
	Status(ctx context.Context) (*model.StatusResponse, error)

	// IsPublished reports whether at least one publication exists.
	IsPublished(ctx context.Context) (bool, error)
}

type service struct {
	repo     repository.Repository
	notifier notification.Notifier
	logger   *zap.SugaredLogger
}

// New creates a new results service instance.
func New(repo repository.Repository, notifier notification.Notifier, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, notifier: notifier, logger: logger}
}

// Publish snapshots the current review outcome into a fresh audit row.
// Republishing appends another row; earlier rows are never touched. Zero
// accepted or waitlisted teams is a valid publication.
func (s *service) Publish(ctx context.Context, actorID string) (*model.PublishResponse, error) {
	accepted, err := s.repo.CountByStatus(ctx, submissionModel.StatusAccepted)
	if err != nil {
		return nil, err
	}
	waitlisted, err := s.repo.CountByStatus(ctx, submissionModel.StatusWaitlist)
	if err != nil {
		return nil, err
	}

	publication := &model.ResultPublication{
		PublishedByID:        actorID,
		AcceptedTeamsCount:   int(accepted),
		WaitlistedTeamsCount: int(waitlisted),
		TotalNotifications:   int(accepted + waitlisted),
	}
	if err := s.repo.Create(ctx, publication); err != nil {
		return nil, err
	}

	s.logger.Infow("results published",
		"publication_id", publication.ID,
		"published_by", actorID,
		"accepted", accepted,
		"waitlisted", waitlisted,
	)
	s.notifyOutcome(ctx, submissionModel.StatusAccepted)
	s.notifyOutcome(ctx, submissionModel.StatusWaitlist)

	return model.NewPublishResponse(publication), nil
}

// Status reports whether results have been published.
func (s *service) Status(ctx context.Context) (*model.StatusResponse, error) {
	latest, err := s.repo.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return &model.StatusResponse{Published: false}, nil
	}
	return &model.StatusResponse{Published: true, PublishedAt: &latest.PublishedAt}, nil
}

// IsPublished reports whether at least one publication exists.
func (s *service) IsPublished(ctx context.Context) (bool, error) {
	latest, err := s.repo.Latest(ctx)
	if err != nil {
		return false, err
	}
	return latest != nil, nil
}

func (s *service) notifyOutcome(ctx context.Context, status submissionModel.Status) {
	leaders, err := s.repo.LeadersByStatus(ctx, status)
	if err != nil {
		s.logger.Errorw("failed to load leader emails for notification",
			"status", status, "error", err)
		return
	}
	for _, leader := range leaders {
		subject, body := notification.ResultsPublished(leader.TeamName, string(status))
		notification.SendAsync(s.logger, s.notifier, []string{leader.Email}, subject, body)
	}
}
