// Package service provides business logic layer for the auth module.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shaundavidpr/hashitup-sub000/internal/auth/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/auth/repository"
	appConfig "github.com/shaundavidpr/hashitup-sub000/internal/config"
)

// Service defines the interface for auth business logic operations.
type Service interface {
	// SignIn resolves a verified identity to a persisted user, creating one
	// on first sight, and issues a session token.
	SignIn(ctx context.Context, req *model.SignInRequest) (*model.SignInResponse, error)

	// ResolveToken validates a session token and re-resolves the user by the
	// verified email claim. Client-supplied ids are never trusted.
	ResolveToken(ctx context.Context, token string) (*model.User, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	cfg    appConfig.AuthConfig
	logger *zap.SugaredLogger
}

// New creates a new auth service instance.
func New(repo repository.Repository, db *gorm.DB, cfg appConfig.AuthConfig, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		cfg:    cfg,
		logger: logger,
	}
}

// SignIn resolves a verified identity to a persisted user and issues a token.
// Any persistence failure fails closed: no token is issued.
func (s *service) SignIn(ctx context.Context, req *model.SignInRequest) (*model.SignInResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, model.ErrInvalidEmail
	}

	var user *model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		existing, txErr := txRepo.GetByEmail(ctx, email)
		if txErr == nil {
			user = existing
			return s.refreshProfile(ctx, txRepo, user, req)
		}
		if !errors.Is(txErr, model.ErrUserNotFound) {
			return txErr
		}

		return s.createOnFirstSight(ctx, txRepo, email, req, &user)
	})
	if err != nil {
		s.logger.Errorw("sign-in failed", "email", email, "error", err)
		return nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	return &model.SignInResponse{
		Token: token,
		User:  model.NewUserResponse(user),
	}, nil
}

// createOnFirstSight creates a user for an email seen for the first time.
// Allow-listed emails become admins; the very first admin becomes superadmin.
// The admin count check runs right before the create, so the race window is
// a single transaction wide.
func (s *service) createOnFirstSight(
	ctx context.Context,
	txRepo repository.Repository,
	email string,
	req *model.SignInRequest,
	out **model.User,
) error {
	role := model.RoleMember
	if s.cfg.IsAdminEmail(email) {
		admins, countErr := txRepo.CountAdmins(ctx)
		if countErr != nil {
			return countErr
		}
		if admins == 0 {
			role = model.RoleSuperadmin
		} else {
			role = model.RoleAdmin
		}
	}

	user := &model.User{
		Email:     email,
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
		Role:      role,
	}
	if createErr := txRepo.Create(ctx, user); createErr != nil {
		return createErr
	}

	linked, linkErr := txRepo.LinkTeamPlaceholders(ctx, email, user.ID)
	if linkErr != nil {
		return linkErr
	}
	if linked > 0 {
		s.logger.Infow("linked placeholder membership", "email", email, "user_id", user.ID, "rows", linked)
	}

	s.logger.Infow("user created on first sign-in", "user_id", user.ID, "role", role)
	*out = user
	return nil
}

// refreshProfile updates mutable profile fields supplied by the identity
// provider. Role is never touched here.
func (s *service) refreshProfile(
	ctx context.Context,
	txRepo repository.Repository,
	user *model.User,
	req *model.SignInRequest,
) error {
	if user.Name == req.Name && user.AvatarURL == req.AvatarURL {
		return nil
	}
	user.Name = req.Name
	user.AvatarURL = req.AvatarURL
	return txRepo.Update(ctx, user)
}

// ResolveToken validates a session token and loads the user it belongs to.
func (s *service) ResolveToken(ctx context.Context, tokenString string) (*model.User, error) {
	email, err := s.parseEmailClaim(tokenString)
	if err != nil {
		return nil, model.ErrInvalidToken
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidToken
		}
		return nil, err
	}

	return user, nil
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// issueToken signs a session token for the user.
func (s *service) issueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// parseEmailClaim validates the token signature and extracts the email claim.
func (s *service) parseEmailClaim(tokenString string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", model.ErrInvalidToken
	}
	if claims.Email == "" {
		return "", model.ErrInvalidToken
	}

	return claims.Email, nil
}
