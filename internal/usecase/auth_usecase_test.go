package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"foodmgmt/internal/domain/model"
	repo "foodmgmt/internal/repository"
	"foodmgmt/internal/usecase"
)

type AuthUserRepoMock struct{ mock.Mock }

func (m *AuthUserRepoMock) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}
func (m *AuthUserRepoMock) Create(ctx context.Context, u model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

const testSecret = "test_secret_for_signing"

func TestAuthUsecase_Register_InvalidEmail(t *testing.T) {
	uc := usecase.NewAuthUsecase(new(AuthUserRepoMock), testSecret)

	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		Email:    "not-an-email",
		Password: "long enough password",
	})
	assertErrContains(t, err, "invalid email format")
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestAuthUsecase_Register_PasswordTooShort(t *testing.T) {
	uc := usecase.NewAuthUsecase(new(AuthUserRepoMock), testSecret)

	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		Email:    "staff@example.com",
		Password: "short",
	})
	assertErrContains(t, err, "password too short")
}

func TestAuthUsecase_Register_Success(t *testing.T) {
	uRepo := new(AuthUserRepoMock)
	uc := usecase.NewAuthUsecase(uRepo, testSecret)

	uRepo.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "staff@example.com" &&
			u.Role == model.RoleStaff &&
			u.ID != "" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct horse battery")) == nil
	})).Return(nil)

	user, err := uc.Register(context.Background(), usecase.RegisterInput{
		Email:    "staff@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "staff@example.com", user.Email)
	uRepo.AssertExpectations(t)
}

func TestAuthUsecase_Register_DuplicateEmail(t *testing.T) {
	uRepo := new(AuthUserRepoMock)
	uc := usecase.NewAuthUsecase(uRepo, testSecret)

	uRepo.On("Create", mock.Anything, mock.Anything).Return(repo.ErrDuplicate)

	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		Email:    "staff@example.com",
		Password: "correct horse battery",
	})
	assertErrContains(t, err, "email already exists")
	assertHTTPStatus(t, err, http.StatusConflict)
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	uRepo := new(AuthUserRepoMock)
	uc := usecase.NewAuthUsecase(uRepo, testSecret)

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct horse battery"), bcrypt.MinCost)
	require.NoError(t, err)
	uRepo.On("FindByEmail", mock.Anything, "staff@example.com").
		Return(model.User{ID: "u1", Email: "staff@example.com", PasswordHash: string(hashed)}, nil)

	_, err = uc.Login(context.Background(), usecase.LoginInput{
		Email:    "staff@example.com",
		Password: "wrong password!!",
	})
	assertErrContains(t, err, "invalid credentials")
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuthUsecase_Login_UnknownEmailIsUnauthorized(t *testing.T) {
	uRepo := new(AuthUserRepoMock)
	uc := usecase.NewAuthUsecase(uRepo, testSecret)

	uRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(model.User{}, repo.ErrNotFound)

	_, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever password",
	})
	// 404ではなく401（メールの存在を漏らさない）
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuthUsecase_Login_TokenRoundTrip(t *testing.T) {
	uRepo := new(AuthUserRepoMock)
	uc := usecase.NewAuthUsecase(uRepo, testSecret)

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct horse battery"), bcrypt.MinCost)
	require.NoError(t, err)
	uRepo.On("FindByEmail", mock.Anything, "staff@example.com").
		Return(model.User{ID: "u1", Email: "staff@example.com", PasswordHash: string(hashed), Role: model.RoleStaff}, nil)

	out, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "staff@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, 15*60, out.ExpiresIn)

	tok, err := jwt.Parse(out.AccessToken, func(token *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	require.NoError(t, err)
	claims, ok := tok.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "u1", claims["sub"])
	assert.Equal(t, string(model.RoleStaff), claims["role"])
}
