package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"alpineair/internal/identity"
	"alpineair/internal/users"
)

// MockUserRepository is a mock implementation of users.Repository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetBySubjectID(ctx context.Context, subjectID string) (*users.User, error) {
	args := m.Called(ctx, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindOrCreate(ctx context.Context, subjectID, email, name string) (*users.User, error) {
	args := m.Called(ctx, subjectID, email, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func setupProtectedRoute(t *testing.T, verifier identity.Verifier, userRepo users.Repository) (*gin.Engine, *bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handlerRan := false
	engine := gin.New()
	engine.POST("/bookings", RequireAuth(verifier, userRepo), func(c *gin.Context) {
		handlerRan = true
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(ContextUserID)})
	})
	return engine, &handlerRan
}

func TestRequireAuth_MissingHeaderBlocksHandler(t *testing.T) {
	verifier := identity.NewHMACVerifier("test-secret")
	mockRepo := &MockUserRepository{}
	engine, handlerRan := setupProtectedRoute(t, verifier, mockRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/bookings", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *handlerRan, "handler must not run without credentials")
	mockRepo.AssertNotCalled(t, "FindOrCreate")
}

func TestRequireAuth_MalformedHeaderRejected(t *testing.T) {
	verifier := identity.NewHMACVerifier("test-secret")
	mockRepo := &MockUserRepository{}
	engine, handlerRan := setupProtectedRoute(t, verifier, mockRepo)

	for _, header := range []string{"token-without-scheme", "Basic dXNlcjpwYXNz"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/bookings", nil)
		req.Header.Set("Authorization", header)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *handlerRan)
	}
}

func TestRequireAuth_InvalidTokenRejected(t *testing.T) {
	verifier := identity.NewHMACVerifier("test-secret")
	mockRepo := &MockUserRepository{}
	engine, handlerRan := setupProtectedRoute(t, verifier, mockRepo)

	forged, err := identity.NewHMACVerifier("other-secret").IssueToken("sub-1", "a@b.c", "A", time.Hour)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *handlerRan)
	mockRepo.AssertNotCalled(t, "FindOrCreate")
}

func TestRequireAuth_ValidTokenMirrorsUserAndRuns(t *testing.T) {
	verifier := identity.NewHMACVerifier("test-secret")
	mockRepo := &MockUserRepository{}
	engine, handlerRan := setupProtectedRoute(t, verifier, mockRepo)

	user := &users.User{ID: uuid.New(), SubjectID: "sub-42", Email: "pat@example.com", Name: "Pat"}
	mockRepo.On("FindOrCreate", mock.Anything, "sub-42", "pat@example.com", "Pat").Return(user, nil)

	token, err := verifier.IssueToken("sub-42", "pat@example.com", "Pat", time.Hour)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *handlerRan)
	assert.Contains(t, w.Body.String(), user.ID.String())
	mockRepo.AssertExpectations(t)
}
