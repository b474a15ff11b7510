// Package service provides business logic for the team module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	authModel "github.com/shaundavidpr/hashitup-sub000/internal/auth/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/notification"
	"github.com/shaundavidpr/hashitup-sub000/internal/team/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/team/repository"
)

// Gate reports whether registration is currently open. Satisfied by the
// registration service.
type Gate interface {
	IsOpen(ctx context.Context) (bool, error)
}

// Service defines the interface for team business logic.
type Service interface {
	// Create registers a new team led by the acting user.
	Create(ctx context.Context, actor *authModel.User, req *model.CreateTeamRequest) (*model.TeamResponse, error)

	// GetMine returns the team the acting user leads or belongs to.
	GetMine(ctx context.Context, actor *authModel.User) (*model.TeamResponse, error)
}

type service struct {
	repo     repository.Repository
	db       *gorm.DB
	gate     Gate
	notifier notification.Notifier
	logger   *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, db *gorm.DB, gate Gate, notifier notification.Notifier, logger *zap.SugaredLogger) Service {
	return &service{
		repo:     repo,
		db:       db,
		gate:     gate,
		notifier: notifier,
		logger:   logger,
	}
}

// Create registers a new team led by the acting user. The whole write is
// transactional: leader promotion, team row and placeholder rows commit
// together or not at all.
func (s *service) Create(ctx context.Context, actor *authModel.User, req *model.CreateTeamRequest) (*model.TeamResponse, error) {
	open, err := s.gate.IsOpen(ctx)
	if err != nil {
		s.logger.Errorw("failed to check registration gate", "error", err)
		return nil, err
	}
	if !open {
		return nil, model.ErrRegistrationClosed
	}

	if _, err := s.repo.GetByLeader(ctx, actor.ID); err == nil {
		return nil, model.ErrAlreadyLeader
	} else if err != model.ErrTeamNotFound {
		return nil, err
	}

	membership, err := s.repo.GetMembershipByUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		membership, err = s.repo.GetMembershipByEmail(ctx, actor.Email)
		if err != nil {
			return nil, err
		}
	}
	if membership != nil {
		return nil, model.ErrAlreadyMember
	}

	size := len(req.Members) + 1
	if size < model.MinTeamSize || size > model.MaxTeamSize {
		return nil, model.ErrInvalidTeamSize
	}

	seen := map[string]bool{strings.ToLower(actor.Email): true}
	for _, m := range req.Members {
		email := strings.ToLower(strings.TrimSpace(m.Email))
		if seen[email] {
			return nil, model.ErrMemberTaken
		}
		seen[email] = true
	}

	team := &model.Team{
		Name:            strings.TrimSpace(req.Name),
		Institution:     strings.TrimSpace(req.Institution),
		City:            strings.TrimSpace(req.City),
		NumberOfMembers: size,
		LeaderID:        actor.ID,
	}

	var members []model.TeamMember
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		if err := txRepo.Create(ctx, team); err != nil {
			return err
		}

		for _, m := range req.Members {
			member := model.TeamMember{
				TeamID: team.ID,
				Name:   strings.TrimSpace(m.Name),
				Email:  strings.ToLower(strings.TrimSpace(m.Email)),
				Phone:  strings.TrimSpace(m.Phone),
			}
			if err := txRepo.CreateMember(ctx, &member); err != nil {
				return err
			}
			members = append(members, member)
		}

		return txRepo.UpdateLeaderProfile(ctx, actor.ID, strings.TrimSpace(req.LeaderPhone))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team created",
		"team_id", team.ID,
		"leader_id", actor.ID,
		"size", size,
	)

	subject, body := notification.TeamCreated(team.Name)
	notification.SendAsync(s.logger, s.notifier, []string{actor.Email}, subject, body)

	return s.buildResponse(team, actor, members), nil
}

// GetMine returns the team the acting user leads or belongs to.
func (s *service) GetMine(ctx context.Context, actor *authModel.User) (*model.TeamResponse, error) {
	team, err := s.repo.GetByLeader(ctx, actor.ID)
	if err != nil && err != model.ErrTeamNotFound {
		return nil, err
	}

	if team == nil {
		membership, err := s.repo.GetMembershipByUser(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		if membership == nil {
			membership, err = s.repo.GetMembershipByEmail(ctx, actor.Email)
			if err != nil {
				return nil, err
			}
		}
		if membership == nil {
			return nil, model.ErrTeamNotFound
		}
		team, err = s.repo.GetByID(ctx, membership.TeamID)
		if err != nil {
			return nil, err
		}
	}

	return s.loadResponse(ctx, team)
}

func (s *service) loadResponse(ctx context.Context, team *model.Team) (*model.TeamResponse, error) {
	members, err := s.repo.GetMembers(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	leader, err := s.repo.GetLeader(ctx, team)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(team, leader, members), nil
}

func (s *service) buildResponse(team *model.Team, leader *authModel.User, members []model.TeamMember) *model.TeamResponse {
	resp := &model.TeamResponse{
		ID:              team.ID,
		Name:            team.Name,
		Institution:     team.Institution,
		City:            team.City,
		NumberOfMembers: team.NumberOfMembers,
		LeaderID:        team.LeaderID,
		Members:         make([]model.MemberResponse, 0, len(members)),
	}
	if leader != nil {
		resp.LeaderName = leader.Name
		resp.LeaderEmail = leader.Email
	}
	for _, m := range members {
		resp.Members = append(resp.Members, model.MemberResponse{
			Name:   m.Name,
			Email:  m.Email,
			Phone:  m.Phone,
			UserID: m.UserID,
		})
	}
	return resp
}
