package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authModel "github.com/shaundavidpr/hashitup-sub000/internal/auth/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/roster/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/roster/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authModel.User{}))
	return db
}

func newTestService(t *testing.T, db *gorm.DB) Service {
	return New(repository.New(db), zap.NewNop().Sugar())
}

func seedUser(t *testing.T, db *gorm.DB, email string, role authModel.Role, addedBy *string) *authModel.User {
	t.Helper()
	user := &authModel.User{Email: email, Name: "User " + email, Role: role, AddedByAdminID: addedBy}
	require.NoError(t, db.Create(user).Error)
	return user
}

func reload(t *testing.T, db *gorm.DB, id string) *authModel.User {
	t.Helper()
	var user authModel.User
	require.NoError(t, db.Where("id = ?", id).First(&user).Error)
	return &user
}

func TestService_Grant(t *testing.T) {
	ctx := context.Background()

	t.Run("superadmin grants member", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		super := seedUser(t, db, "root@example.com", authModel.RoleSuperadmin, nil)
		target := seedUser(t, db, "bob@example.com", authModel.RoleMember, nil)

		resp, err := svc.Grant(ctx, super, "bob@example.com")
		require.NoError(t, err)
		assert.Equal(t, authModel.RoleAdmin, resp.Role)

		updated := reload(t, db, target.ID)
		assert.Equal(t, authModel.RoleAdmin, updated.Role)
		require.NotNil(t, updated.AddedByAdminID)
		assert.Equal(t, super.ID, *updated.AddedByAdminID)
	})

	t.Run("admin grants leader", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		admin := seedUser(t, db, "admin@example.com", authModel.RoleAdmin, nil)
		seedUser(t, db, "lead@example.com", authModel.RoleLeader, nil)

		_, err := svc.Grant(ctx, admin, "lead@example.com")
		require.NoError(t, err)
	})

	t.Run("admin cannot touch another admin", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		admin := seedUser(t, db, "admin@example.com", authModel.RoleAdmin, nil)
		seedUser(t, db, "other@example.com", authModel.RoleAdmin, nil)

		_, err := svc.Grant(ctx, admin, "other@example.com")
		assert.ErrorIs(t, err, model.ErrForbiddenTarget)
	})

	t.Run("superadmin re-grant conflicts", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		super := seedUser(t, db, "root@example.com", authModel.RoleSuperadmin, nil)
		seedUser(t, db, "admin@example.com", authModel.RoleAdmin, nil)

		_, err := svc.Grant(ctx, super, "admin@example.com")
		assert.ErrorIs(t, err, model.ErrAlreadyAdmin)
	})

	t.Run("superadmin target is immutable", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		super := seedUser(t, db, "root@example.com", authModel.RoleSuperadmin, nil)
		seedUser(t, db, "root2@example.com", authModel.RoleSuperadmin, nil)

		_, err := svc.Grant(ctx, super, "root2@example.com")
		assert.ErrorIs(t, err, model.ErrSuperadminImmutable)
	})

	t.Run("unknown target", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		super := seedUser(t, db, "root@example.com", authModel.RoleSuperadmin, nil)

		_, err := svc.Grant(ctx, super, "ghost@example.com")
		assert.ErrorIs(t, err, authModel.ErrUserNotFound)
	})
}

func TestService_Revoke(t *testing.T) {
	ctx := context.Background()

	t.Run("superadmin revokes any admin", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		super := seedUser(t, db, "root@example.com", authModel.RoleSuperadmin, nil)
		other := seedUser(t, db, "granter@example.com", authModel.RoleAdmin, nil)
		target := seedUser(t, db, "admin@example.com", authModel.RoleAdmin, &other.ID)

		require.NoError(t, svc.Revoke(ctx, super, "admin@example.com"))

		updated := reload(t, db, target.ID)
		assert.Equal(t, authModel.RoleMember, updated.Role)
		assert.Nil(t, updated.AddedByAdminID)
	})

	t.Run("admin revokes only own grants", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		granter := seedUser(t, db, "granter@example.com", authModel.RoleAdmin, nil)
		stranger := seedUser(t, db, "stranger@example.com", authModel.RoleAdmin, nil)
		seedUser(t, db, "mine@example.com", authModel.RoleAdmin, &granter.ID)
		seedUser(t, db, "theirs@example.com", authModel.RoleAdmin, &stranger.ID)

		require.NoError(t, svc.Revoke(ctx, granter, "mine@example.com"))

		err := svc.Revoke(ctx, granter, "theirs@example.com")
		assert.ErrorIs(t, err, model.ErrForbiddenTarget)
	})

	t.Run("superadmin cannot be revoked", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		super := seedUser(t, db, "root@example.com", authModel.RoleSuperadmin, nil)
		seedUser(t, db, "root2@example.com", authModel.RoleSuperadmin, nil)

		err := svc.Revoke(ctx, super, "root2@example.com")
		assert.ErrorIs(t, err, model.ErrSuperadminImmutable)
	})

	t.Run("target without admin role conflicts", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(t, db)
		super := seedUser(t, db, "root@example.com", authModel.RoleSuperadmin, nil)
		seedUser(t, db, "bob@example.com", authModel.RoleMember, nil)

		err := svc.Revoke(ctx, super, "bob@example.com")
		assert.ErrorIs(t, err, model.ErrNotAnAdmin)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	db := setupTestDB(t)
	svc := newTestService(t, db)
	super := seedUser(t, db, "root@example.com", authModel.RoleSuperadmin, nil)
	seedUser(t, db, "admin@example.com", authModel.RoleAdmin, &super.ID)
	seedUser(t, db, "bob@example.com", authModel.RoleMember, nil)

	resp, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	byEmail := map[string]model.AdminResponse{}
	for _, a := range resp.Admins {
		byEmail[a.Email] = a
	}
	assert.Equal(t, "root@example.com", byEmail["admin@example.com"].AddedByEmail)
	assert.Empty(t, byEmail["root@example.com"].AddedByEmail)
}
