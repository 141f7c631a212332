package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kalimuthu765/sports-connect/models"
	"github.com/kalimuthu765/sports-connect/repositories"
)

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	valid := SignupInput{
		Name:      "Ravi",
		Email:     "Ravi@Example.com",
		Password:  "secret123",
		Role:      "player",
		Sport:     "Cricket",
		SportRole: "Bowler",
	}

	t.Run("creates the account with a hashed password", func(t *testing.T) {
		var created *models.Account
		svc := NewAuthService(&fakeAccountRepo{
			CreateFunc: func(ctx context.Context, account *models.Account) error {
				account.ID = 1
				created = account
				return nil
			},
		}, models.DefaultRoleVocabulary)

		account, err := svc.Signup(ctx, valid)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "ravi@example.com", created.Email)
		assert.Equal(t, models.RolePlayer, created.Role)
		require.NotNil(t, created.SportRole)
		assert.Equal(t, "Bowler", *created.SportRole)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
		assert.Empty(t, account.PasswordHash, "hash must not leave the service")
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(*SignupInput)
			wantErr error
		}{
			{"short password", func(in *SignupInput) { in.Password = "abc" }, ErrPasswordTooShort},
			{"unknown role", func(in *SignupInput) { in.Role = "coach" }, ErrInvalidRole},
			{"unknown sport", func(in *SignupInput) { in.Sport = "Chess" }, ErrUnknownSport},
			{"role outside the sport", func(in *SignupInput) { in.SportRole = "Goalkeeper" }, ErrInvalidSportRole},
			{"missing name", func(in *SignupInput) { in.Name = "  " }, ErrValidationFailed},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := NewAuthService(&fakeAccountRepo{}, models.DefaultRoleVocabulary)
				input := valid
				tt.mutate(&input)
				_, err := svc.Signup(ctx, input)
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := NewAuthService(&fakeAccountRepo{
			CreateFunc: func(ctx context.Context, account *models.Account) error {
				return repositories.ErrAccountEmailConflict
			},
		}, models.DefaultRoleVocabulary)

		_, err := svc.Signup(ctx, valid)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &models.Account{ID: 1, Email: "ravi@example.com", PasswordHash: string(hash), Role: models.RolePlayer}
	repo := &fakeAccountRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.Account, error) {
			if email == stored.Email {
				return stored, nil
			}
			return nil, repositories.ErrAccountNotFound
		},
	}

	t.Run("valid credentials", func(t *testing.T) {
		svc := NewAuthService(repo, models.DefaultRoleVocabulary)
		account, err := svc.Login(ctx, LoginInput{Email: "Ravi@Example.com", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, 1, account.ID)
		assert.Empty(t, account.PasswordHash)
	})

	t.Run("wrong password", func(t *testing.T) {
		// The hash was cleared by the previous login; restore it.
		stored.PasswordHash = string(hash)
		svc := NewAuthService(repo, models.DefaultRoleVocabulary)
		_, err := svc.Login(ctx, LoginInput{Email: "ravi@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email reads as bad credentials", func(t *testing.T) {
		svc := NewAuthService(repo, models.DefaultRoleVocabulary)
		_, err := svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "secret123"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
