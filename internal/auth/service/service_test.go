package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shaundavidpr/hashitup-sub000/internal/auth/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/auth/repository"
	appConfig "github.com/shaundavidpr/hashitup-sub000/internal/config"
	teamModel "github.com/shaundavidpr/hashitup-sub000/internal/team/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &teamModel.Team{}, &teamModel.TeamMember{}))
	return db
}

func newTestService(t *testing.T, db *gorm.DB, adminEmails ...string) Service {
	cfg := appConfig.AuthConfig{
		JWTSecret:   "test-secret-at-least-16-chars",
		TokenTTL:    time.Hour,
		AdminEmails: adminEmails,
	}
	return New(repository.New(db), db, cfg, zap.NewNop().Sugar())
}

func signInReq(email string) *model.SignInRequest {
	return &model.SignInRequest{Email: email, Name: "User " + email}
}

func TestService_SignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("first sight creates member", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)

		resp, err := svc.SignIn(ctx, signInReq("alice@example.com"))
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, model.RoleMember, resp.User.Role)
	})

	t.Run("first allow-listed principal becomes superadmin", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db, "root@example.com", "staff@example.com")

		resp, err := svc.SignIn(ctx, signInReq("root@example.com"))
		require.NoError(t, err)
		assert.Equal(t, model.RoleSuperadmin, resp.User.Role)

		resp, err = svc.SignIn(ctx, signInReq("staff@example.com"))
		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, resp.User.Role)
	})

	t.Run("repeat sign-in keeps role and refreshes profile", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db, "root@example.com")

		first, err := svc.SignIn(ctx, signInReq("root@example.com"))
		require.NoError(t, err)

		again, err := svc.SignIn(ctx, &model.SignInRequest{
			Email: "root@example.com", Name: "Renamed", AvatarURL: "https://cdn/a.png",
		})
		require.NoError(t, err)
		assert.Equal(t, first.User.ID, again.User.ID)
		assert.Equal(t, model.RoleSuperadmin, again.User.Role)
		assert.Equal(t, "Renamed", again.User.Name)
	})

	t.Run("email is normalized", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)

		first, err := svc.SignIn(ctx, signInReq("Alice@Example.com"))
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", first.User.Email)

		again, err := svc.SignIn(ctx, signInReq("alice@example.com"))
		require.NoError(t, err)
		assert.Equal(t, first.User.ID, again.User.ID)
	})

	t.Run("links placeholder membership on first sight", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)

		leader := &model.User{Email: "leader@example.com", Name: "Leader", Role: model.RoleLeader}
		require.NoError(t, db.Create(leader).Error)
		team := &teamModel.Team{Name: "Rocket", NumberOfMembers: 2, LeaderID: leader.ID}
		require.NoError(t, db.Create(team).Error)
		require.NoError(t, db.Create(&teamModel.TeamMember{
			TeamID: team.ID, Name: "Bob", Email: "bob@example.com",
		}).Error)

		resp, err := svc.SignIn(ctx, signInReq("bob@example.com"))
		require.NoError(t, err)

		var member teamModel.TeamMember
		require.NoError(t, db.Where("email = ?", "bob@example.com").First(&member).Error)
		require.NotNil(t, member.UserID)
		assert.Equal(t, resp.User.ID, *member.UserID)
	})

	t.Run("blank email rejected", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)

		_, err := svc.SignIn(ctx, signInReq("   "))
		assert.ErrorIs(t, err, model.ErrInvalidEmail)
	})
}

func TestService_ResolveToken(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)

		resp, err := svc.SignIn(ctx, signInReq("alice@example.com"))
		require.NoError(t, err)

		user, err := svc.ResolveToken(ctx, resp.Token)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, user.ID)
	})

	t.Run("garbage token", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)

		_, err := svc.ResolveToken(ctx, "not-a-token")
		assert.ErrorIs(t, err, model.ErrInvalidToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		other := newTestService(t, db)
		other.(*service).cfg.JWTSecret = "another-secret-16-chars-long"

		resp, err := other.SignIn(ctx, signInReq("alice@example.com"))
		require.NoError(t, err)

		_, err = svc.ResolveToken(ctx, resp.Token)
		assert.ErrorIs(t, err, model.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		svc.(*service).cfg.TokenTTL = -time.Minute

		resp, err := svc.SignIn(ctx, signInReq("alice@example.com"))
		require.NoError(t, err)

		_, err = svc.ResolveToken(ctx, resp.Token)
		assert.ErrorIs(t, err, model.ErrInvalidToken)
	})

	t.Run("token for a deleted user", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)

		resp, err := svc.SignIn(ctx, signInReq("alice@example.com"))
		require.NoError(t, err)

		require.NoError(t, db.Where("email = ?", "alice@example.com").Delete(&model.User{}).Error)

		_, err = svc.ResolveToken(ctx, resp.Token)
		assert.ErrorIs(t, err, model.ErrInvalidToken)
	})
}
