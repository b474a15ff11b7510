// Package service provides business logic for the submission module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	authModel "github.com/shaundavidpr/hashitup-sub000/internal/auth/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/notification"
	"github.com/shaundavidpr/hashitup-sub000/internal/submission/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/submission/repository"
	teamModel "github.com/shaundavidpr/hashitup-sub000/internal/team/model"
	teamRepository "github.com/shaundavidpr/hashitup-sub000/internal/team/repository"
)

// ResultsGate reports whether review results have been published to teams.
// Satisfied by the results service.
type ResultsGate interface {
	IsPublished(ctx context.Context) (bool, error)
}

// Service defines the interface for submission business logic.
type Service interface {
	// Create records the team's single project idea.
	Create(ctx context.Context, actor *authModel.User, teamID string, req *model.SaveIdeaRequest) (*model.IdeaResponse, error)

	// Update edits the idea while it is still mutable.
	Update(ctx context.Context, actor *authModel.User, teamID string, req *model.SaveIdeaRequest) (*model.IdeaResponse, error)

	// Get returns the team's idea for an authorized reader.
	Get(ctx context.Context, actor *authModel.User, teamID string) (*model.IdeaResponse, error)
}

type service struct {
	repo     repository.Repository
	teams    teamRepository.Repository
	results  ResultsGate
	notifier notification.Notifier
	logger   *zap.SugaredLogger
}

// New creates a new submission service instance.
func New(repo repository.Repository, teams teamRepository.Repository, results ResultsGate, notifier notification.Notifier, logger *zap.SugaredLogger) Service {
	return &service{
		repo:     repo,
		teams:    teams,
		results:  results,
		notifier: notifier,
		logger:   logger,
	}
}

// authorize loads the team and checks that the actor belongs to it or holds
// an admin role.
func (s *service) authorize(ctx context.Context, actor *authModel.User, teamID string) (*teamModel.Team, error) {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if actor.Role.IsAdmin() || team.LeaderID == actor.ID {
		return team, nil
	}

	membership, err := s.teams.GetMembershipByUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		membership, err = s.teams.GetMembershipByEmail(ctx, actor.Email)
		if err != nil {
			return nil, err
		}
	}
	if membership == nil || membership.TeamID != team.ID {
		return nil, model.ErrNotTeamParticipant
	}

	return team, nil
}

// Create records the team's single project idea.
func (s *service) Create(ctx context.Context, actor *authModel.User, teamID string, req *model.SaveIdeaRequest) (*model.IdeaResponse, error) {
	team, err := s.authorize(ctx, actor, teamID)
	if err != nil {
		return nil, err
	}

	idea := &model.ProjectIdea{
		TeamID:           team.ID,
		Title:            strings.TrimSpace(req.Title),
		Description:      req.Description,
		TechStack:        req.TechStack,
		ProblemStatement: req.ProblemStatement,
		Solution:         req.Solution,
		Status:           model.StatusPending,
		IsDraft:          req.IsDraft,
		SubmittedByID:    actor.ID,
	}

	if err := s.repo.Create(ctx, idea); err != nil {
		return nil, err
	}

	s.logger.Infow("project idea created",
		"idea_id", idea.ID,
		"team_id", team.ID,
		"draft", idea.IsDraft,
	)

	if !idea.IsDraft {
		s.notifySubmitted(ctx, team, idea)
	}

	return s.buildResponse(ctx, actor, idea)
}

// Update edits the idea while it is still mutable. Clearing the draft flag
// promotes the idea to a real submission.
func (s *service) Update(ctx context.Context, actor *authModel.User, teamID string, req *model.SaveIdeaRequest) (*model.IdeaResponse, error) {
	team, err := s.authorize(ctx, actor, teamID)
	if err != nil {
		return nil, err
	}

	idea, err := s.repo.GetByTeam(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	if !idea.Mutable() {
		return nil, model.ErrIdeaLocked
	}

	wasDraft := idea.IsDraft

	idea.Title = strings.TrimSpace(req.Title)
	idea.Description = req.Description
	idea.TechStack = req.TechStack
	idea.ProblemStatement = req.ProblemStatement
	idea.Solution = req.Solution
	idea.IsDraft = req.IsDraft
	idea.UpdatedByID = &actor.ID

	if err := s.repo.Update(ctx, idea); err != nil {
		return nil, err
	}

	if wasDraft && !idea.IsDraft {
		s.notifySubmitted(ctx, team, idea)
	}

	return s.buildResponse(ctx, actor, idea)
}

// Get returns the team's idea for an authorized reader.
func (s *service) Get(ctx context.Context, actor *authModel.User, teamID string) (*model.IdeaResponse, error) {
	team, err := s.authorize(ctx, actor, teamID)
	if err != nil {
		return nil, err
	}

	idea, err := s.repo.GetByTeam(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	return s.buildResponse(ctx, actor, idea)
}

// buildResponse hides the review status from team readers until results go
// out; admins always see it.
func (s *service) buildResponse(ctx context.Context, actor *authModel.User, idea *model.ProjectIdea) (*model.IdeaResponse, error) {
	withStatus := actor.Role.IsAdmin()
	if !withStatus {
		published, err := s.results.IsPublished(ctx)
		if err != nil {
			s.logger.Errorw("failed to check results publication", "error", err)
			return nil, err
		}
		withStatus = published
	}
	return model.NewIdeaResponse(idea, withStatus), nil
}

func (s *service) notifySubmitted(ctx context.Context, team *teamModel.Team, idea *model.ProjectIdea) {
	leader, err := s.teams.GetLeader(ctx, team)
	if err != nil {
		s.logger.Errorw("failed to load leader for notification",
			"team_id", team.ID, "error", err)
		return
	}
	subject, body := notification.SubmissionReceived(team.Name, idea.Title)
	notification.SendAsync(s.logger, s.notifier, []string{leader.Email}, subject, body)
}
