package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kalimuthu765/sports-connect/models"
	"github.com/kalimuthu765/sports-connect/repositories"
)

// RelationshipService keeps the pairwise account relationships consistent:
// the team pointer / roster pair and the follower / following pair. The team
// pointer on a player account is the only stored side of roster membership,
// so assigning or clearing it can never leave the roster half-updated.
type RelationshipService interface {
	AssignTeam(ctx context.Context, playerID, teamID int) error
	ClearTeam(ctx context.Context, playerID int) error
	AddToRoster(ctx context.Context, teamID int, playerEmail string) (*models.Account, error)
	RemoveFromRoster(ctx context.Context, teamID, playerID int) error
	Follow(ctx context.Context, followerID, targetID int) error
	Roster(ctx context.Context, teamID int) ([]models.Account, error)
	Followers(ctx context.Context, accountID int) ([]int, error)
	Following(ctx context.Context, accountID int) ([]int, error)
}

type relationshipService struct {
	accountRepo repositories.AccountRepository
	followRepo  repositories.FollowRepository
}

func NewRelationshipService(
	accountRepo repositories.AccountRepository,
	followRepo repositories.FollowRepository,
) RelationshipService {
	return &relationshipService{
		accountRepo: accountRepo,
		followRepo:  followRepo,
	}
}

// AssignTeam points the player at the team. Re-assigning the same pair is a
// no-op, so approval retries stay idempotent.
func (s *relationshipService) AssignTeam(ctx context.Context, playerID, teamID int) error {
	player, err := s.getAccount(ctx, playerID)
	if err != nil {
		return err
	}
	if player.Role != models.RolePlayer {
		return ErrPlayerNotFound
	}

	team, err := s.getAccount(ctx, teamID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return ErrTeamNotFound
		}
		return err
	}
	if team.Role != models.RoleTeam {
		return ErrTeamNotFound
	}

	if player.TeamID != nil && *player.TeamID == teamID {
		return nil
	}

	if err := s.accountRepo.UpdateTeamID(ctx, nil, playerID, &teamID); err != nil {
		return fmt.Errorf("failed to assign player %d to team %d: %w", playerID, teamID, err)
	}
	return nil
}

// ClearTeam detaches the player from whatever team holds them. A player with
// no team is left alone.
func (s *relationshipService) ClearTeam(ctx context.Context, playerID int) error {
	player, err := s.getAccount(ctx, playerID)
	if err != nil {
		return err
	}
	if player.TeamID == nil {
		return nil
	}

	if err := s.accountRepo.UpdateTeamID(ctx, nil, playerID, nil); err != nil {
		return fmt.Errorf("failed to clear team for player %d: %w", playerID, err)
	}
	return nil
}

// AddToRoster resolves a player by email and assigns them to the team, the
// way a team manager adds members from the dashboard.
func (s *relationshipService) AddToRoster(ctx context.Context, teamID int, playerEmail string) (*models.Account, error) {
	team, err := s.getAccount(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.Role != models.RoleTeam {
		return nil, ErrOnlyTeamsCanManageRoster
	}

	player, err := s.accountRepo.FindPlayerByEmail(ctx, playerEmail)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to find player by email: %w", err)
	}

	if player.TeamID == nil || *player.TeamID != teamID {
		if err := s.accountRepo.UpdateTeamID(ctx, nil, player.ID, &teamID); err != nil {
			return nil, fmt.Errorf("failed to add player %d to roster of team %d: %w", player.ID, teamID, err)
		}
		player.TeamID = &teamID
	}
	return player, nil
}

func (s *relationshipService) RemoveFromRoster(ctx context.Context, teamID, playerID int) error {
	team, err := s.getAccount(ctx, teamID)
	if err != nil {
		return err
	}
	if team.Role != models.RoleTeam {
		return ErrOnlyTeamsCanManageRoster
	}

	player, err := s.getAccount(ctx, playerID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return ErrPlayerNotFound
		}
		return err
	}
	if player.TeamID == nil || *player.TeamID != teamID {
		// Not on this roster; removing is a no-op.
		return nil
	}

	if err := s.accountRepo.UpdateTeamID(ctx, nil, playerID, nil); err != nil {
		return fmt.Errorf("failed to remove player %d from roster of team %d: %w", playerID, teamID, err)
	}
	return nil
}

// Follow records follower → target. Duplicate calls do not duplicate entries.
func (s *relationshipService) Follow(ctx context.Context, followerID, targetID int) error {
	if followerID == targetID {
		return ErrSelfFollow
	}

	if _, err := s.getAccount(ctx, targetID); err != nil {
		return err
	}

	_, err := s.followRepo.Add(ctx, followerID, targetID)
	if err != nil {
		if errors.Is(err, repositories.ErrFollowAccountInvalid) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to follow account %d: %w", targetID, err)
	}
	return nil
}

func (s *relationshipService) Roster(ctx context.Context, teamID int) ([]models.Account, error) {
	team, err := s.getAccount(ctx, teamID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	if team.Role != models.RoleTeam {
		return nil, ErrTeamNotFound
	}

	roster, err := s.accountRepo.ListRoster(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster for team %d: %w", teamID, err)
	}
	return roster, nil
}

func (s *relationshipService) Followers(ctx context.Context, accountID int) ([]int, error) {
	return s.followRepo.ListFollowerIDs(ctx, accountID)
}

func (s *relationshipService) Following(ctx context.Context, accountID int) ([]int, error) {
	return s.followRepo.ListFollowingIDs(ctx, accountID)
}

func (s *relationshipService) getAccount(ctx context.Context, id int) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account %d: %w", id, err)
	}
	return account, nil
}
