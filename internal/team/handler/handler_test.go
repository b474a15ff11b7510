package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	authModel "github.com/shaundavidpr/hashitup-sub000/internal/auth/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/middleware"
	"github.com/shaundavidpr/hashitup-sub000/internal/team/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/team/service"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Create(ctx context.Context, actor *authModel.User, req *model.CreateTeamRequest) (*model.TeamResponse, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamResponse), args.Error(1)
}

func (m *mockService) GetMine(ctx context.Context, actor *authModel.User) (*model.TeamResponse, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamResponse), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter(user *authModel.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if user != nil {
		r.Use(func(c *gin.Context) {
			middleware.SetCurrentUser(c, user)
			c.Next()
		})
	}
	return r
}

func testUser() *authModel.User {
	return &authModel.User{ID: "u1", Email: "leader@example.com", Name: "Alice", Role: authModel.RoleMember}
}

func createBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(model.CreateTeamRequest{
		Name:        "Rocket",
		LeaderPhone: "+79990001122",
		Members:     []model.MemberInput{{Name: "Bob", Email: "bob@example.com"}},
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter(testUser())
		router.POST("/teams", handler.Create)

		mockSvc.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(&model.TeamResponse{ID: "t1", Name: "Rocket", NumberOfMembers: 2, LeaderID: "u1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/teams", createBody(t))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp model.TeamResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "t1", resp.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter(nil)
		router.POST("/teams", handler.Create)

		req := httptest.NewRequest(http.MethodPost, "/teams", createBody(t))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("registration closed maps to 423", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter(testUser())
		router.POST("/teams", handler.Create)

		mockSvc.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, model.ErrRegistrationClosed)

		req := httptest.NewRequest(http.MethodPost, "/teams", createBody(t))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusLocked, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "REGISTRATION_CLOSED", resp.Error.Code)
	})

	t.Run("already leader maps to 409", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter(testUser())
		router.POST("/teams", handler.Create)

		mockSvc.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, model.ErrAlreadyLeader)

		req := httptest.NewRequest(http.MethodPost, "/teams", createBody(t))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid size maps to 400", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter(testUser())
		router.POST("/teams", handler.Create)

		mockSvc.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, model.ErrInvalidTeamSize)

		req := httptest.NewRequest(http.MethodPost, "/teams", createBody(t))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter(testUser())
		router.POST("/teams", handler.Create)

		req := httptest.NewRequest(http.MethodPost, "/teams", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "Create")
	})
}

func TestHandler_GetMine(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter(testUser())
		router.GET("/teams/me", handler.GetMine)

		mockSvc.On("GetMine", mock.Anything, mock.Anything).
			Return(&model.TeamResponse{ID: "t1", Name: "Rocket"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/teams/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no team maps to 404", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter(testUser())
		router.GET("/teams/me", handler.GetMine)

		mockSvc.On("GetMine", mock.Anything, mock.Anything).
			Return(nil, model.ErrTeamNotFound)

		req := httptest.NewRequest(http.MethodGet, "/teams/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
