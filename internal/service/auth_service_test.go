package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"wolfstreet/internal/auth"
	apperrors "wolfstreet/internal/errors"
	"wolfstreet/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockSessionRepository is a mock implementation of SessionRepository.
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *model.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

// assignID mimics the store's BeforeCreate hook.
func assignID(m *MockUserRepository) *mock.Call {
	return m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			u := args.Get(1).(*model.User)
			if u.ID == uuid.Nil {
				u.ID = uuid.New()
			}
		})
}

func TestAuthService_Signup(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		displayName   string
		setupMock     func(*MockUserRepository, *MockSessionRepository)
		expectedError error
	}{
		{
			name:        "successful signup",
			email:       "ada@example.com",
			password:    "wolf123",
			displayName: "Ada",
			setupMock: func(mUsers *MockUserRepository, mSessions *MockSessionRepository) {
				assignID(mUsers).Return(nil)
				mSessions.On("Create", mock.Anything, mock.AnythingOfType("*model.Session")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:        "duplicate email rejected by store",
			email:       "ada@example.com",
			password:    "wolf123",
			displayName: "Ada",
			setupMock: func(mUsers *MockUserRepository, mSessions *MockSessionRepository) {
				mUsers.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
					Return(apperrors.ErrEmailAlreadyRegistered)
			},
			expectedError: apperrors.ErrEmailAlreadyRegistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockSessions := new(MockSessionRepository)
			tt.setupMock(mockUsers, mockSessions)

			service := NewAuthService(mockUsers, mockSessions, nil)
			token, user, err := service.Signup(context.Background(), tt.displayName, tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.displayName, user.Name)
				assert.Equal(t, model.PlanFree, user.Plan)
				assert.Equal(t, auth.HashPassword(tt.password), user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}

			mockUsers.AssertExpectations(t)
			mockSessions.AssertExpectations(t)
		})
	}
}

func TestAuthService_Signup_RetriesOnTokenCollision(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	assignID(mockUsers).Return(nil)
	mockSessions.On("Create", mock.Anything, mock.AnythingOfType("*model.Session")).
		Return(gorm.ErrDuplicatedKey).Once()
	mockSessions.On("Create", mock.Anything, mock.AnythingOfType("*model.Session")).
		Return(nil).Once()

	service := NewAuthService(mockUsers, mockSessions, nil)
	token, _, err := service.Signup(context.Background(), "Ada", "ada@example.com", "wolf123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	mockSessions.AssertNumberOfCalls(t, "Create", 2)
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	storedUser := &model.User{
		ID:           userID,
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: auth.HashPassword("wolf123"),
		Plan:         model.PlanFree,
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository, *MockSessionRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "ada@example.com",
			password: "wolf123",
			setupMock: func(mUsers *MockUserRepository, mSessions *MockSessionRepository) {
				mUsers.On("FindByEmail", mock.Anything, "ada@example.com").Return(storedUser, nil)
				mSessions.On("Create", mock.Anything, mock.AnythingOfType("*model.Session")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "wolf123",
			setupMock: func(mUsers *MockUserRepository, mSessions *MockSessionRepository) {
				mUsers.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "ada@example.com",
			password: "wrong",
			setupMock: func(mUsers *MockUserRepository, mSessions *MockSessionRepository) {
				mUsers.On("FindByEmail", mock.Anything, "ada@example.com").Return(storedUser, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockSessions := new(MockSessionRepository)
			tt.setupMock(mockUsers, mockSessions)

			service := NewAuthService(mockUsers, mockSessions, nil)
			token, user, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, tt.email, user.Email)
			}

			mockUsers.AssertExpectations(t)
			mockSessions.AssertExpectations(t)
		})
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_FailureIndistinguishable(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	mockUsers.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockUsers.On("FindByEmail", mock.Anything, "ada@example.com").Return(&model.User{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		PasswordHash: auth.HashPassword("wolf123"),
	}, nil)

	service := NewAuthService(mockUsers, mockSessions, nil)
	_, _, errUnknown := service.Login(context.Background(), "nobody@example.com", "wolf123")
	_, _, errWrong := service.Login(context.Background(), "ada@example.com", "hunter2")

	assert.Equal(t, errUnknown, errWrong)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestAuthService_Login_PriorSessionsStayValid(t *testing.T) {
	userID := uuid.New()
	storedUser := &model.User{
		ID:           userID,
		Email:        "ada@example.com",
		PasswordHash: auth.HashPassword("wolf123"),
	}

	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	mockUsers.On("FindByEmail", mock.Anything, "ada@example.com").Return(storedUser, nil)

	issued := make(map[string]*model.Session)
	mockSessions.On("Create", mock.Anything, mock.AnythingOfType("*model.Session")).
		Run(func(args mock.Arguments) {
			s := args.Get(1).(*model.Session)
			issued[s.Token] = s
		}).Return(nil)

	service := NewAuthService(mockUsers, mockSessions, nil)
	t1, _, err := service.Login(context.Background(), "ada@example.com", "wolf123")
	assert.NoError(t, err)
	t2, _, err := service.Login(context.Background(), "ada@example.com", "wolf123")
	assert.NoError(t, err)

	assert.NotEqual(t, t1, t2)

	// Both tokens still resolve afterwards; nothing was revoked.
	mockUsers.On("FindByID", mock.Anything, userID).Return(storedUser, nil)
	mockSessions.On("FindByToken", mock.Anything, t1).Return(issued[t1], nil)
	mockSessions.On("FindByToken", mock.Anything, t2).Return(issued[t2], nil)

	for _, token := range []string{t1, t2} {
		principal, err := service.Authenticate(context.Background(), "Bearer "+token)
		assert.NoError(t, err)
		assert.Equal(t, userID, principal.User.ID)
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	userID := uuid.New()
	storedUser := &model.User{ID: userID, Name: "Ada", Email: "ada@example.com"}
	liveSession := &model.Session{
		Token:     "live-token",
		UserID:    userID,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(model.SessionTTL),
	}
	expiredSession := &model.Session{
		Token:     "stale-token",
		UserID:    userID,
		CreatedAt: time.Now().Add(-8 * 24 * time.Hour),
		ExpiresAt: time.Now().Add(-24 * time.Hour),
	}

	tests := []struct {
		name          string
		authorization string
		setupMock     func(*MockUserRepository, *MockSessionRepository)
		expectedError error
	}{
		{
			name:          "empty header",
			authorization: "",
			setupMock:     func(*MockUserRepository, *MockSessionRepository) {},
			expectedError: apperrors.ErrMissingToken,
		},
		{
			name:          "missing scheme prefix",
			authorization: "live-token",
			setupMock:     func(*MockUserRepository, *MockSessionRepository) {},
			expectedError: apperrors.ErrMissingToken,
		},
		{
			name:          "wrong scheme",
			authorization: "Basic live-token",
			setupMock:     func(*MockUserRepository, *MockSessionRepository) {},
			expectedError: apperrors.ErrMissingToken,
		},
		{
			name:          "unknown token",
			authorization: "Bearer nope",
			setupMock: func(mUsers *MockUserRepository, mSessions *MockSessionRepository) {
				mSessions.On("FindByToken", mock.Anything, "nope").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidToken,
		},
		{
			name:          "expired session",
			authorization: "Bearer stale-token",
			setupMock: func(mUsers *MockUserRepository, mSessions *MockSessionRepository) {
				mSessions.On("FindByToken", mock.Anything, "stale-token").Return(expiredSession, nil)
			},
			expectedError: apperrors.ErrInvalidToken,
		},
		{
			name:          "user record gone",
			authorization: "Bearer live-token",
			setupMock: func(mUsers *MockUserRepository, mSessions *MockSessionRepository) {
				mSessions.On("FindByToken", mock.Anything, "live-token").Return(liveSession, nil)
				mUsers.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
		{
			name:          "successful resolution",
			authorization: "Bearer live-token",
			setupMock: func(mUsers *MockUserRepository, mSessions *MockSessionRepository) {
				mSessions.On("FindByToken", mock.Anything, "live-token").Return(liveSession, nil)
				mUsers.On("FindByID", mock.Anything, userID).Return(storedUser, nil)
			},
			expectedError: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockSessions := new(MockSessionRepository)
			tt.setupMock(mockUsers, mockSessions)

			service := NewAuthService(mockUsers, mockSessions, nil)
			principal, err := service.Authenticate(context.Background(), tt.authorization)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, principal)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, storedUser, principal.User)
				assert.Equal(t, liveSession, principal.Session)
			}

			mockUsers.AssertExpectations(t)
			mockSessions.AssertExpectations(t)
		})
	}
}
