// Package service provides business logic for the review workflow.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/shaundavidpr/hashitup-sub000/internal/notification"
	"github.com/shaundavidpr/hashitup-sub000/internal/review/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/review/repository"
	submissionModel "github.com/shaundavidpr/hashitup-sub000/internal/submission/model"
	submissionRepository "github.com/shaundavidpr/hashitup-sub000/internal/submission/repository"
	teamModel "github.com/shaundavidpr/hashitup-sub000/internal/team/model"
	teamRepository "github.com/shaundavidpr/hashitup-sub000/internal/team/repository"
)

// Service defines the interface for review workflow operations. Role gating
// happens in the HTTP layer; the actor here is a verified admin.
type Service interface {
	// SetStatus applies one review decision to a submission by idea id.
	SetStatus(ctx context.Context, actorID, ideaID string, status submissionModel.Status) (*submissionModel.ProjectIdea, error)

	// BulkSetStatus applies one decision across many teams, independently
	// per item.
	BulkSetStatus(ctx context.Context, actorID string, teamIDs []string, status submissionModel.Status) (*model.BulkSetStatusResponse, error)

	// List returns non-draft submissions with team info.
	List(ctx context.Context, status *submissionModel.Status) (*model.ListResponse, error)
}

type service struct {
	repo        repository.Repository
	submissions submissionRepository.Repository
	teams       teamRepository.Repository
	notifier    notification.Notifier
	logger      *zap.SugaredLogger
}

// New creates a new review service instance.
func New(repo repository.Repository, submissions submissionRepository.Repository, teams teamRepository.Repository, notifier notification.Notifier, logger *zap.SugaredLogger) Service {
	return &service{
		repo:        repo,
		submissions: submissions,
		teams:       teams,
		notifier:    notifier,
		logger:      logger,
	}
}

// SetStatus applies one review decision to a submission. Any transition
// between the four states is allowed, including a reset back to PENDING.
func (s *service) SetStatus(ctx context.Context, actorID, ideaID string, status submissionModel.Status) (*submissionModel.ProjectIdea, error) {
	if !status.Valid() {
		return nil, model.ErrInvalidStatus
	}

	idea, err := s.submissions.GetByID(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	if idea.IsDraft {
		return nil, model.ErrDraftNotEvaluable
	}

	idea.Status = status
	idea.UpdatedByID = &actorID
	if err := s.submissions.Update(ctx, idea); err != nil {
		return nil, err
	}

	s.logger.Infow("submission status updated",
		"idea_id", idea.ID,
		"team_id", idea.TeamID,
		"status", status,
		"reviewer_id", actorID,
	)
	s.notifyStatus(ctx, idea)

	return idea, nil
}

// BulkSetStatus applies one decision across many teams. Each team is
// processed independently; failures are reported, never propagated.
func (s *service) BulkSetStatus(ctx context.Context, actorID string, teamIDs []string, status submissionModel.Status) (*model.BulkSetStatusResponse, error) {
	if !status.Valid() {
		return nil, model.ErrInvalidStatus
	}

	resp := &model.BulkSetStatusResponse{
		Updated: []string{},
		Skipped: []model.SkippedItem{},
	}

	for _, teamID := range teamIDs {
		if _, err := s.teams.GetByID(ctx, teamID); err != nil {
			if err == teamModel.ErrTeamNotFound {
				resp.Skipped = append(resp.Skipped, model.SkippedItem{
					TeamID: teamID, Reason: model.SkipReasonUnknownTeam,
				})
				continue
			}
			return nil, err
		}

		idea, err := s.submissions.GetByTeam(ctx, teamID)
		if err != nil {
			if err == submissionModel.ErrIdeaNotFound {
				resp.Skipped = append(resp.Skipped, model.SkippedItem{
					TeamID: teamID, Reason: model.SkipReasonNoSubmission,
				})
				continue
			}
			return nil, err
		}
		if idea.IsDraft {
			resp.Skipped = append(resp.Skipped, model.SkippedItem{
				TeamID: teamID, Reason: model.SkipReasonDraft,
			})
			continue
		}

		idea.Status = status
		idea.UpdatedByID = &actorID
		if err := s.submissions.Update(ctx, idea); err != nil {
			s.logger.Errorw("bulk status update failed for team",
				"team_id", teamID, "error", err)
			resp.Skipped = append(resp.Skipped, model.SkippedItem{
				TeamID: teamID, Reason: "update failed",
			})
			continue
		}

		resp.Updated = append(resp.Updated, teamID)
		s.notifyStatus(ctx, idea)
	}

	s.logger.Infow("bulk status update applied",
		"status", status,
		"updated", len(resp.Updated),
		"skipped", len(resp.Skipped),
		"reviewer_id", actorID,
	)

	return resp, nil
}

// List returns non-draft submissions with team info.
func (s *service) List(ctx context.Context, status *submissionModel.Status) (*model.ListResponse, error) {
	if status != nil && !status.Valid() {
		return nil, model.ErrInvalidStatus
	}

	items, err := s.repo.ListSubmissions(ctx, status)
	if err != nil {
		return nil, err
	}

	return &model.ListResponse{Submissions: items, Total: len(items)}, nil
}

func (s *service) notifyStatus(ctx context.Context, idea *submissionModel.ProjectIdea) {
	team, err := s.teams.GetByID(ctx, idea.TeamID)
	if err != nil {
		s.logger.Errorw("failed to load team for notification",
			"team_id", idea.TeamID, "error", err)
		return
	}
	leader, err := s.teams.GetLeader(ctx, team)
	if err != nil {
		s.logger.Errorw("failed to load leader for notification",
			"team_id", team.ID, "error", err)
		return
	}
	subject, body := notification.StatusUpdated(team.Name, string(idea.Status))
	notification.SendAsync(s.logger, s.notifier, []string{leader.Email}, subject, body)
}
