package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/kalimuthu765/sports-connect/models"
	"github.com/kalimuthu765/sports-connect/repositories"
)

const minPasswordLength = 6

type SignupInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Sport     string `json:"sport"`
	SportRole string `json:"sport_role"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*models.Account, error)
	Login(ctx context.Context, input LoginInput) (*models.Account, error)
}

type authService struct {
	accountRepo repositories.AccountRepository
	vocabulary  models.RoleVocabulary
}

func NewAuthService(accountRepo repositories.AccountRepository, vocabulary models.RoleVocabulary) AuthService {
	return &authService{accountRepo: accountRepo, vocabulary: vocabulary}
}

func (s *authService) Signup(ctx context.Context, input SignupInput) (*models.Account, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if input.Name == "" || input.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrValidationFailed)
	}
	if len(input.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	role := models.AccountRole(input.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if !s.vocabulary.KnownSport(input.Sport) {
		return nil, ErrUnknownSport
	}
	if !s.vocabulary.AllowsRole(input.Sport, input.SportRole) {
		return nil, ErrInvalidSportRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		Sport:        input.Sport,
	}
	if input.SportRole != "" {
		account.SportRole = &input.SportRole
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repositories.ErrAccountEmailConflict) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	account.PasswordHash = ""
	return account, nil
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*models.Account, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	account.PasswordHash = ""
	return account, nil
}
