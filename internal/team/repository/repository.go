// Package repository provides data access layer for the team module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	authModel "github.com/shaundavidpr/hashitup-sub000/internal/auth/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create persists a new team. Returns model.ErrAlreadyLeader when the
	// leader_id uniqueness constraint rejects the row.
	Create(ctx context.Context, team *model.Team) error

	// GetByID finds a team by id.
	GetByID(ctx context.Context, id string) (*model.Team, error)

	// GetByLeader finds the team led by the given user.
	GetByLeader(ctx context.Context, leaderID string) (*model.Team, error)

	// GetMembershipByEmail finds the placeholder row for an email, if any.
	GetMembershipByEmail(ctx context.Context, email string) (*model.TeamMember, error)

	// GetMembershipByUser finds the placeholder row linked to a user, if any.
	GetMembershipByUser(ctx context.Context, userID string) (*model.TeamMember, error)

	// CreateMember persists a member placeholder. Returns
	// model.ErrMemberTaken when the email uniqueness constraint rejects it.
	CreateMember(ctx context.Context, member *model.TeamMember) error

	// GetMembers returns all member placeholders of a team.
	GetMembers(ctx context.Context, teamID string) ([]model.TeamMember, error)

	// UpdateLeaderProfile promotes the user to LEADER and stores the phone.
	UpdateLeaderProfile(ctx context.Context, userID, phone string) error

	// GetLeader returns the user record of the team's leader.
	GetLeader(ctx context.Context, team *model.Team) (*authModel.User, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// isDuplicateError checks whether err is a unique-constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// Create persists a new team.
func (r *repository) Create(ctx context.Context, team *model.Team) error {
	err := r.db.WithContext(ctx).Create(team).Error
	if err != nil {
		if isDuplicateError(err) {
			return model.ErrAlreadyLeader
		}
		return err
	}
	return nil
}

// GetByID finds a team by id.
func (r *repository) GetByID(ctx context.Context, id string) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// GetByLeader finds the team led by the given user.
func (r *repository) GetByLeader(ctx context.Context, leaderID string) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Where("leader_id = ?", leaderID).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// GetMembershipByEmail finds the placeholder row for an email, if any.
func (r *repository) GetMembershipByEmail(ctx context.Context, email string) (*model.TeamMember, error) {
	var member model.TeamMember
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&member).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}

// GetMembershipByUser finds the placeholder row linked to a user, if any.
func (r *repository) GetMembershipByUser(ctx context.Context, userID string) (*model.TeamMember, error) {
	var member model.TeamMember
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&member).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}

// CreateMember persists a member placeholder.
func (r *repository) CreateMember(ctx context.Context, member *model.TeamMember) error {
	err := r.db.WithContext(ctx).Create(member).Error
	if err != nil {
		if isDuplicateError(err) {
			return model.ErrMemberTaken
		}
		return err
	}
	return nil
}

// GetMembers returns all member placeholders of a team.
func (r *repository) GetMembers(ctx context.Context, teamID string) ([]model.TeamMember, error) {
	var members []model.TeamMember
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at ASC").
		Find(&members).Error

	if err != nil {
		return nil, err
	}
	if members == nil {
		members = []model.TeamMember{}
	}

	return members, nil
}

// UpdateLeaderProfile promotes the user to LEADER and stores the phone.
// Admins keep their role; leading a team does not demote them.
func (r *repository) UpdateLeaderProfile(ctx context.Context, userID, phone string) error {
	updates := map[string]interface{}{"phone": phone}
	return r.db.WithContext(ctx).
		Model(&authModel.User{}).
		Where("id = ?", userID).
		Updates(updates).
		Update("role", gorm.Expr(
			"CASE WHEN role = ? THEN ? ELSE role END",
			authModel.RoleMember, authModel.RoleLeader,
		)).Error
}

// GetLeader returns the user record of the team's leader.
func (r *repository) GetLeader(ctx context.Context, team *model.Team) (*authModel.User, error) {
	var leader authModel.User
	err := r.db.WithContext(ctx).
		Where("id = ?", team.LeaderID).
		First(&leader).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authModel.ErrUserNotFound
		}
		return nil, err
	}

	return &leader, nil
}
