package services

import (
	"context"
	"fmt"

	"rentmap-backend/internal/auth"
	"rentmap-backend/internal/models"
	"rentmap-backend/internal/repositories"
	"rentmap-backend/internal/validators"
	"rentmap-backend/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo      repositories.UserRepository
	validator validators.UserValidator
	jwtSecret string
}

func NewUserService(repo repositories.UserRepository, validator validators.UserValidator, jwtSecret string) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
		jwtSecret: jwtSecret,
	}
}

func (s *UserService) Register(ctx context.Context, user *models.User) (string, error) {
	if err := s.validator.ValidateRegister(user); err != nil {
		return "", err
	}

	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to check email existence: %v", err)
	}
	if existing != nil {
		return "", fmt.Errorf("email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %v", err)
	}

	user.ID = uuid.NewString()
	user.Password = string(hashedPassword)

	if err := s.repo.Create(ctx, user); err != nil {
		logger.GlobalLogger.Errorf("Failed to register user: email=%s, error=%v", user.Email, err)
		return "", fmt.Errorf("failed to register user: %v", err)
	}

	token, err := auth.GenerateJWT(user.ID, user.FullName, user.Email, s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %v", err)
	}
	return token, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	if err := s.validator.ValidateLogin(email, password); err != nil {
		return "", err
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to query user: %v", err)
	}
	if user == nil {
		return "", fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid email or password")
	}

	token, err := auth.GenerateJWT(user.ID, user.FullName, user.Email, s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %v", err)
	}
	return token, nil
}
