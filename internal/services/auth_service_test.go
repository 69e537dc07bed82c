package services_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"skillswap/internal/apperrors"
	"skillswap/internal/models"
	"skillswap/internal/repositories"
	"skillswap/internal/services"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func notFoundErr(what string) error {
	return fmt.Errorf("%s: %w", what, apperrors.ErrNotFound)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	mockRepo.On("GetByEmail", "ann@x.com").Return(nil, notFoundErr("user")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	user, token, err := authService.Register("Ann", "ann@x.com", "secret1", "Boston")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, "ann@x.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, user.IsPublic)
	assert.False(t, user.IsBanned)
	assert.Empty(t, user.SkillsOffered)
	assert.Zero(t, user.Rating)
	assert.Zero(t, user.TotalSwaps)

	// The stored credential must be a verifiable hash, never the plaintext.
	assert.NotEqual(t, "secret1", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret1")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	mockRepo.On("GetByEmail", "ann@x.com").Return(&models.User{ID: "u1", Email: "ann@x.com"}, nil).Once()

	_, _, err := authService.Register("Ann", "ann@x.com", "secret1", "")
	assert.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_ConcurrentSameEmail(t *testing.T) {
	userRepo := repositories.NewMemoryUserRepository()
	authService := services.NewAuthService(userRepo, "test_jwt_secret")

	// Racing registrations for one email must produce exactly one account:
	// the store enforces uniqueness in the same critical section as the
	// insert, so the pre-insert lookup racing past a concurrent writer is
	// not enough to slip a duplicate in.
	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := authService.Register("Ann", "ann@x.com", "secret1", "")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	successes := 0
	for err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	}
	assert.Equal(t, 1, successes)

	users, err := userRepo.GetAll()
	require.NoError(t, err)
	require.Len(t, users, 1)

	// The store rejects a duplicate even when the caller skips the lookup.
	err = userRepo.Create(&models.User{Name: "Imposter", Email: "ann@x.com"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: string(hashedPassword),
		Role:     models.RoleUser,
	}

	// Successful login returns the same identity in the token claims.
	mockRepo.On("GetByEmail", "ann@x.com").Return(user, nil).Once()
	loggedIn, token, err := authService.Login("ann@x.com", "secret1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, user.Email, claims["email"])
	assert.Equal(t, user.Role, claims["role"])

	// Wrong password.
	mockRepo.On("GetByEmail", "ann@x.com").Return(user, nil).Once()
	_, _, err = authService.Login("ann@x.com", "wrongpassword")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	// Unknown email yields the same generic category as a wrong password.
	mockRepo.On("GetByEmail", "nobody@x.com").Return(nil, notFoundErr("user")).Once()
	_, _, err = authService.Login("nobody@x.com", "secret1")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid credentials")

	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_BannedBeforePasswordCheck(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	banned := &models.User{
		ID:       "user-456",
		Email:    "banned@x.com",
		Password: string(hashedPassword),
		IsBanned: true,
	}

	// The ban is reported even when the password is wrong: the ban check runs
	// before password verification.
	mockRepo.On("GetByEmail", "banned@x.com").Return(banned, nil).Twice()

	_, _, err := authService.Login("banned@x.com", "secret1")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, _, err = authService.Login("banned@x.com", "wrongpassword")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	user := &models.User{ID: "user-123", Email: "ann@x.com", Password: string(hashedPassword)}

	mockRepo.On("GetByEmail", "ann@x.com").Return(user, nil).Once()
	_, token, err := authService.Login("ann@x.com", "secret1")
	assert.NoError(t, err)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims["user_id"])

	_, err = authService.ValidateToken("not-a-token")
	assert.Error(t, err)

	// A token signed with another secret must be rejected.
	otherService := services.NewAuthService(mockRepo, "other_secret")
	mockRepo.On("GetByEmail", "ann@x.com").Return(user, nil).Once()
	_, otherToken, err := otherService.Login("ann@x.com", "secret1")
	assert.NoError(t, err)
	_, err = authService.ValidateToken(otherToken)
	assert.Error(t, err)
}
