// Package service provides business logic for the admin roster module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	authModel "github.com/shaundavidpr/hashitup-sub000/internal/auth/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/roster/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/roster/repository"
)

// Service defines the interface for roster operations. The HTTP layer
// guarantees the actor holds at least ADMIN; hierarchy checks against the
// target happen here.
type Service interface {
	// Grant promotes the user with the given email to ADMIN.
	Grant(ctx context.Context, actor *authModel.User, email string) (*model.AdminResponse, error)

	// Revoke demotes the admin with the given email back to MEMBER.
	Revoke(ctx context.Context, actor *authModel.User, email string) error

	// List returns all admins and superadmins with grant provenance.
	List(ctx context.Context) (*model.ListResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new roster service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// Grant promotes the user with the given email to ADMIN.
func (s *service) Grant(ctx context.Context, actor *authModel.User, email string) (*model.AdminResponse, error) {
	target, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}

	switch target.Role {
	case authModel.RoleSuperadmin:
		if actor.Role == authModel.RoleSuperadmin {
			return nil, model.ErrSuperadminImmutable
		}
		return nil, model.ErrForbiddenTarget
	case authModel.RoleAdmin:
		if actor.Role == authModel.RoleSuperadmin {
			return nil, model.ErrAlreadyAdmin
		}
		return nil, model.ErrForbiddenTarget
	}

	if err := s.repo.SetRole(ctx, target.ID, authModel.RoleAdmin, &actor.ID); err != nil {
		return nil, err
	}

	s.logger.Infow("admin role granted",
		"target_id", target.ID,
		"target_email", target.Email,
		"granted_by", actor.ID,
	)

	return &model.AdminResponse{
		ID:        target.ID,
		Email:     target.Email,
		Name:      target.Name,
		Role:      authModel.RoleAdmin,
		AddedByID: &actor.ID,
	}, nil
}

// Revoke demotes the admin with the given email back to MEMBER. A plain
// ADMIN may only revoke grants it made itself.
func (s *service) Revoke(ctx context.Context, actor *authModel.User, email string) error {
	target, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return err
	}

	if target.Role == authModel.RoleSuperadmin {
		return model.ErrSuperadminImmutable
	}
	if target.Role != authModel.RoleAdmin {
		return model.ErrNotAnAdmin
	}

	if actor.Role != authModel.RoleSuperadmin {
		if target.AddedByAdminID == nil || *target.AddedByAdminID != actor.ID {
			return model.ErrForbiddenTarget
		}
	}

	if err := s.repo.SetRole(ctx, target.ID, authModel.RoleMember, nil); err != nil {
		return err
	}

	s.logger.Infow("admin role revoked",
		"target_id", target.ID,
		"target_email", target.Email,
		"revoked_by", actor.ID,
	)
	return nil
}

// List returns all admins and superadmins with grant provenance.
func (s *service) List(ctx context.Context) (*model.ListResponse, error) {
	admins, err := s.repo.ListAdmins(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]string, len(admins))
	for _, a := range admins {
		byID[a.ID] = a.Email
	}

	resp := &model.ListResponse{Admins: make([]model.AdminResponse, 0, len(admins))}
	for _, a := range admins {
		row := model.AdminResponse{
			ID:        a.ID,
			Email:     a.Email,
			Name:      a.Name,
			Role:      a.Role,
			AddedByID: a.AddedByAdminID,
		}
		if a.AddedByAdminID != nil {
			row.AddedByEmail = byID[*a.AddedByAdminID]
		}
		resp.Admins = append(resp.Admins, row)
	}
	resp.Total = len(resp.Admins)

	return resp, nil
}
