package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/CryptoCrazy982/awesomecraft-server/internal/dto"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/model"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/repository"
)

// AuthService authenticates admins and issues the bearer tokens the
// management API requires.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RegisterAdmin(ctx context.Context, req dto.RegisterAdminRequest) (dto.AdminInfo, error)
}

type authService struct {
	users     repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(users repository.UserRepository, jwtSecret string, tokenTTL time.Duration) AuthService {
	return &authService{users: users, jwtSecret: []byte(jwtSecret), tokenTTL: tokenTTL}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	u, err := s.users.FindAdminByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The same message for unknown email and wrong password.
			return dto.LoginResponse{}, Invalid("Invalid email or password")
		}
		return dto.LoginResponse{}, err
	}
	if !u.IsActive {
		return dto.LoginResponse{}, Invalid("Invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return dto.LoginResponse{}, Invalid("Invalid email or password")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"email":   u.Email,
		"role":    u.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(s.tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return dto.LoginResponse{}, err
	}

	return dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		Admin: dto.AdminInfo{
			ID:    u.ID.String(),
			Name:  u.Name,
			Email: u.Email,
		},
	}, nil
}

func (s *authService) RegisterAdmin(ctx context.Context, req dto.RegisterAdminRequest) (dto.AdminInfo, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.AdminInfo{}, err
	}
	if err == nil && existing != nil {
		return dto.AdminInfo{}, Conflict("An account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.AdminInfo{}, err
	}

	u := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.AdminInfo{}, Conflict("An account with this email already exists")
		}
		return dto.AdminInfo{}, err
	}
	return dto.AdminInfo{ID: u.ID.String(), Name: u.Name, Email: u.Email}, nil
}
