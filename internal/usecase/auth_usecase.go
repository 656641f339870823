package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"foodmgmt/internal/domain/model"
	repo "foodmgmt/internal/repository"
)

type AuthUsecase struct {
	userRepo  repo.UserRepository
	jwtSecret []byte
	accessTTL time.Duration
}

// DI
func NewAuthUsecase(userRepo repo.UserRepository, jwtSecret string) *AuthUsecase {
	return &AuthUsecase{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		accessTTL: 15 * time.Minute,
	}
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginOutput struct {
	AccessToken string     `json:"access_token"`
	ExpiresIn   int        `json:"expires_in"`
	User        model.User `json:"user"`
}

func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (model.User, error) {
	email := strings.TrimSpace(in.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "invalid email format")
	}
	// 最小12文字
	if len(in.Password) < 12 {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "password too short")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	user := model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashed),
		Role:         model.RoleStaff,
	}
	err = u.userRepo.Create(ctx, user)
	if errors.Is(err, repo.ErrDuplicate) {
		return model.User{}, NewHTTPError(http.StatusConflict, "email already exists")
	}
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return user, nil
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	user, err := u.userRepo.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if errors.Is(err, repo.ErrNotFound) {
		// メール存在の有無は漏らさない
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(u.accessTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(u.jwtSecret)
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return LoginOutput{
		AccessToken: signed,
		ExpiresIn:   int(u.accessTTL.Seconds()),
		User:        user,
	}, nil
}
