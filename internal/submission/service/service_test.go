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
	"github.com/shaundavidpr/hashitup-sub000/internal/notification"
	"github.com/shaundavidpr/hashitup-sub000/internal/submission/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/submission/repository"
	teamModel "github.com/shaundavidpr/hashitup-sub000/internal/team/model"
	teamRepository "github.com/shaundavidpr/hashitup-sub000/internal/team/repository"
)

type stubResults struct {
	published bool
}

func (s *stubResults) IsPublished(ctx context.Context) (bool, error) {
	return s.published, nil
}

type fixture struct {
	db      *gorm.DB
	svc     Service
	results *stubResults
	leader  *authModel.User
	team    *teamModel.Team
}

func newFixture(t *testing.T) *fixture {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&authModel.User{}, &teamModel.Team{}, &teamModel.TeamMember{}, &model.ProjectIdea{},
	))

	leader := &authModel.User{Email: "leader@example.com", Name: "Alice", Role: authModel.RoleLeader}
	require.NoError(t, db.Create(leader).Error)

	team := &teamModel.Team{Name: "Rocket", NumberOfMembers: 2, LeaderID: leader.ID}
	require.NoError(t, db.Create(team).Error)

	logger := zap.NewNop().Sugar()
	results := &stubResults{}
	svc := New(repository.New(db), teamRepository.New(db), results, notification.NewNop(logger), logger)

	return &fixture{db: db, svc: svc, results: results, leader: leader, team: team}
}

func validRequest() *model.SaveIdeaRequest {
	return &model.SaveIdeaRequest{
		Title:       "Smart Parking",
		Description: "Find free spots in real time",
		TechStack:   "Go, Postgres",
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("leader submits", func(t *testing.T) {
		f := newFixture(t)

		resp, err := f.svc.Create(ctx, f.leader, f.team.ID, validRequest())
		require.NoError(t, err)
		assert.Equal(t, "Smart Parking", resp.Title)
		assert.False(t, resp.IsDraft)
		// status hidden until results go out
		assert.Empty(t, resp.Status)
	})

	t.Run("linked member submits", func(t *testing.T) {
		f := newFixture(t)
		bob := &authModel.User{Email: "bob@example.com", Name: "Bob", Role: authModel.RoleMember}
		require.NoError(t, f.db.Create(bob).Error)
		require.NoError(t, f.db.Create(&teamModel.TeamMember{
			TeamID: f.team.ID, Name: "Bob", Email: "bob@example.com", UserID: &bob.ID,
		}).Error)

		_, err := f.svc.Create(ctx, bob, f.team.ID, validRequest())
		require.NoError(t, err)
	})

	t.Run("outsider forbidden", func(t *testing.T) {
		f := newFixture(t)
		mallory := &authModel.User{Email: "mallory@example.com", Name: "Mallory", Role: authModel.RoleMember}
		require.NoError(t, f.db.Create(mallory).Error)

		_, err := f.svc.Create(ctx, mallory, f.team.ID, validRequest())
		assert.ErrorIs(t, err, model.ErrNotTeamParticipant)
	})

	t.Run("second submission rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(ctx, f.leader, f.team.ID, validRequest())
		require.NoError(t, err)

		_, err = f.svc.Create(ctx, f.leader, f.team.ID, validRequest())
		assert.ErrorIs(t, err, model.ErrAlreadySubmitted)
	})

	t.Run("unknown team", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(ctx, f.leader, "missing", validRequest())
		assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("editable while pending", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Create(ctx, f.leader, f.team.ID, validRequest())
		require.NoError(t, err)

		req := validRequest()
		req.Title = "Smarter Parking"
		resp, err := f.svc.Update(ctx, f.leader, f.team.ID, req)
		require.NoError(t, err)
		assert.Equal(t, "Smarter Parking", resp.Title)
	})

	t.Run("draft promotion", func(t *testing.T) {
		f := newFixture(t)
		req := validRequest()
		req.IsDraft = true
		_, err := f.svc.Create(ctx, f.leader, f.team.ID, req)
		require.NoError(t, err)

		req.IsDraft = false
		resp, err := f.svc.Update(ctx, f.leader, f.team.ID, req)
		require.NoError(t, err)
		assert.False(t, resp.IsDraft)
	})

	t.Run("locked after review", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Create(ctx, f.leader, f.team.ID, validRequest())
		require.NoError(t, err)

		require.NoError(t, f.db.Model(&model.ProjectIdea{}).
			Where("team_id = ?", f.team.ID).
			Update("status", model.StatusAccepted).Error)

		_, err = f.svc.Update(ctx, f.leader, f.team.ID, validRequest())
		assert.ErrorIs(t, err, model.ErrIdeaLocked)
	})

	t.Run("reviewed draft stays editable", func(t *testing.T) {
		f := newFixture(t)
		req := validRequest()
		req.IsDraft = true
		_, err := f.svc.Create(ctx, f.leader, f.team.ID, req)
		require.NoError(t, err)

		_, err = f.svc.Update(ctx, f.leader, f.team.ID, req)
		require.NoError(t, err)
	})

	t.Run("no idea yet", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Update(ctx, f.leader, f.team.ID, validRequest())
		assert.ErrorIs(t, err, model.ErrIdeaNotFound)
	})
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("status hidden before publication", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Create(ctx, f.leader, f.team.ID, validRequest())
		require.NoError(t, err)

		resp, err := f.svc.Get(ctx, f.leader, f.team.ID)
		require.NoError(t, err)
		assert.Empty(t, resp.Status)
	})

	t.Run("status visible after publication", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Create(ctx, f.leader, f.team.ID, validRequest())
		require.NoError(t, err)

		f.results.published = true
		resp, err := f.svc.Get(ctx, f.leader, f.team.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, resp.Status)
	})

	t.Run("admin always sees status", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Create(ctx, f.leader, f.team.ID, validRequest())
		require.NoError(t, err)

		admin := &authModel.User{Email: "admin@example.com", Name: "Admin", Role: authModel.RoleAdmin}
		require.NoError(t, f.db.Create(admin).Error)

		resp, err := f.svc.Get(ctx, admin, f.team.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, resp.Status)
	})
}
