package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/kalimuthu765/sports-connect/models"
	"github.com/kalimuthu765/sports-connect/repositories"
	"github.com/kalimuthu765/sports-connect/storage"
)

const recommendationLimit = 5

type UpdateProfileInput struct {
	Name      *string `json:"name"`
	Bio       *string `json:"bio"`
	Sport     *string `json:"sport"`
	SportRole *string `json:"sport_role"`
}

type AddMatchStatInput struct {
	MatchDate time.Time      `json:"match_date"`
	Opponent  string         `json:"opponent"`
	Sport     string         `json:"sport"`
	Stats     models.StatMap `json:"stats"`
}

type AccountService interface {
	GetByID(ctx context.Context, id int) (*models.Account, error)
	UpdateProfile(ctx context.Context, callerID int, input UpdateProfileInput) (*models.Account, error)
	UploadAvatar(ctx context.Context, callerID int, contentType string, reader io.Reader) (*models.Account, error)
	AddMatchStat(ctx context.Context, callerID int, input AddMatchStatInput) (*models.MatchStat, error)
	ListMatchStats(ctx context.Context, accountID int) ([]models.MatchStat, error)
	ListTeams(ctx context.Context) ([]models.Account, error)
	Recommendations(ctx context.Context, callerID int) ([]models.Account, error)
}

type accountService struct {
	txRunner    repositories.TxRunner
	accountRepo repositories.AccountRepository
	followRepo  repositories.FollowRepository
	statRepo    repositories.StatRepository
	uploader    storage.FileUploader
	vocabulary  models.RoleVocabulary
}

func NewAccountService(
	txRunner repositories.TxRunner,
	accountRepo repositories.AccountRepository,
	followRepo repositories.FollowRepository,
	statRepo repositories.StatRepository,
	uploader storage.FileUploader,
	vocabulary models.RoleVocabulary,
) AccountService {
	return &accountService{
		txRunner:    txRunner,
		accountRepo: accountRepo,
		followRepo:  followRepo,
		statRepo:    statRepo,
		uploader:    uploader,
		vocabulary:  vocabulary,
	}
}

// GetByID returns the profile with its relationship sides attached: the
// roster for a team account, the team for an assigned player.
func (s *accountService) GetByID(ctx context.Context, id int) (*models.Account, error) {
	account, err := s.getAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	account.PasswordHash = ""
	s.populateAvatarURL(account)

	switch {
	case account.Role == models.RoleTeam:
		roster, err := s.accountRepo.ListRoster(ctx, account.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list roster for team %d: %w", account.ID, err)
		}
		for i := range roster {
			roster[i].PasswordHash = ""
			s.populateAvatarURL(&roster[i])
		}
		account.Roster = roster
	case account.TeamID != nil:
		team, err := s.accountRepo.GetByID(ctx, *account.TeamID)
		if err != nil && !errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, fmt.Errorf("failed to get team %d: %w", *account.TeamID, err)
		}
		if team != nil {
			team.PasswordHash = ""
			s.populateAvatarURL(team)
			account.Team = team
		}
	}
	return account, nil
}

// UpdateProfile applies the present fields only, validating sport and sport
// role against the vocabulary.
func (s *accountService) UpdateProfile(ctx context.Context, callerID int, input UpdateProfileInput) (*models.Account, error) {
	account, err := s.getAccount(ctx, callerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != "" {
		account.Name = *input.Name
	}
	if input.Bio != nil {
		account.Bio = input.Bio
	}
	if input.Sport != nil && *input.Sport != "" {
		if !s.vocabulary.KnownSport(*input.Sport) {
			return nil, ErrUnknownSport
		}
		account.Sport = *input.Sport
	}
	if input.SportRole != nil {
		if !s.vocabulary.AllowsRole(account.Sport, *input.SportRole) {
			return nil, ErrInvalidSportRole
		}
		account.SportRole = input.SportRole
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, repositories.ErrAccountEmailConflict) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update account %d: %w", callerID, err)
	}

	account.PasswordHash = ""
	s.populateAvatarURL(account)
	return account, nil
}

func (s *accountService) UploadAvatar(ctx context.Context, callerID int, contentType string, reader io.Reader) (*models.Account, error) {
	account, err := s.getAccount(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if s.uploader == nil {
		return nil, errors.New("avatar storage is not configured")
	}

	key := fmt.Sprintf("avatars/%d/%d", account.ID, time.Now().UnixNano())
	result, err := s.uploader.Upload(ctx, key, contentType, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	oldKey := account.AvatarKey
	if err := s.accountRepo.UpdateAvatarKey(ctx, account.ID, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to store avatar key: %w", err)
	}
	if oldKey != nil && *oldKey != result.Key {
		// Best effort; an orphaned object is not worth failing the request.
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	account.AvatarKey = &result.Key
	account.PasswordHash = ""
	s.populateAvatarURL(account)
	return account, nil
}

// AddMatchStat appends a per-match stat record and folds its numeric entries
// into the running overall totals, in one transaction.
func (s *accountService) AddMatchStat(ctx context.Context, callerID int, input AddMatchStatInput) (*models.MatchStat, error) {
	account, err := s.getAccount(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if account.Role != models.RolePlayer {
		return nil, ErrOnlyPlayersHaveStats
	}
	if input.Opponent == "" {
		return nil, fmt.Errorf("%w: opponent is required", ErrValidationFailed)
	}

	stat := &models.MatchStat{
		AccountID: account.ID,
		MatchDate: input.MatchDate,
		Opponent:  input.Opponent,
		Sport:     input.Sport,
		Stats:     input.Stats,
	}
	overall := models.AccumulateStats(account.OverallStats, input.Stats)

	err = s.txRunner.RunInTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.statRepo.Append(ctx, exec, stat); err != nil {
			return err
		}
		return s.accountRepo.UpdateOverallStats(ctx, exec, account.ID, overall)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record match stat: %w", err)
	}
	return stat, nil
}

func (s *accountService) ListMatchStats(ctx context.Context, accountID int) ([]models.MatchStat, error) {
	if _, err := s.getAccount(ctx, accountID); err != nil {
		return nil, err
	}
	stats, err := s.statRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list match stats for account %d: %w", accountID, err)
	}
	return stats, nil
}

func (s *accountService) ListTeams(ctx context.Context) ([]models.Account, error) {
	teams, err := s.accountRepo.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	for i := range teams {
		teams[i].PasswordHash = ""
		s.populateAvatarURL(&teams[i])
	}
	return teams, nil
}

// Recommendations is a plain equality filter: accounts in the caller's sport
// the caller does not already follow, excluding the caller.
func (s *accountService) Recommendations(ctx context.Context, callerID int) ([]models.Account, error) {
	caller, err := s.getAccount(ctx, callerID)
	if err != nil {
		return nil, err
	}

	following, err := s.followRepo.ListFollowingIDs(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list following for account %d: %w", callerID, err)
	}
	exclude := append(following, callerID)

	recommendations, err := s.accountRepo.ListBySportExcluding(ctx, caller.Sport, exclude, recommendationLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	for i := range recommendations {
		recommendations[i].PasswordHash = ""
		s.populateAvatarURL(&recommendations[i])
	}
	return recommendations, nil
}

func (s *accountService) getAccount(ctx context.Context, id int) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account %d: %w", id, err)
	}
	return account, nil
}

func (s *accountService) populateAvatarURL(account *models.Account) {
	if account == nil || account.AvatarKey == nil || *account.AvatarKey == "" || s.uploader == nil {
		return
	}
	url := s.uploader.GetPublicURL(*account.AvatarKey)
	if url != "" {
		account.AvatarURL = &url
	}
}
