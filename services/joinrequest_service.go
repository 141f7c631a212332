package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kalimuthu765/sports-connect/models"
	"github.com/kalimuthu765/sports-connect/repositories"
)

// JoinRequestService runs the player → team roster workflow:
// pending → {approved, rejected}, one request per (team, player) pair ever.
type JoinRequestService interface {
	Request(ctx context.Context, teamID, callerID int) (*models.JoinRequest, error)
	Decide(ctx context.Context, teamID, requestID int, status models.ReviewStatus, callerID int) (*models.JoinRequest, error)
	ListByTeam(ctx context.Context, teamID, callerID int) ([]models.JoinRequest, error)
}

type joinRequestService struct {
	txRunner    repositories.TxRunner
	requestRepo repositories.JoinRequestRepository
	accountRepo repositories.AccountRepository
}

func NewJoinRequestService(
	txRunner repositories.TxRunner,
	requestRepo repositories.JoinRequestRepository,
	accountRepo repositories.AccountRepository,
) JoinRequestService {
	return &joinRequestService{
		txRunner:    txRunner,
		requestRepo: requestRepo,
		accountRepo: accountRepo,
	}
}

// Request submits a pending join request from the caller onto the team. One
// entry per (team, player) pair ever exists, so a rejected player cannot
// re-apply to the same team.
func (s *joinRequestService) Request(ctx context.Context, teamID, callerID int) (*models.JoinRequest, error) {
	player, err := s.accountRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account %d: %w", callerID, err)
	}
	if player.Role != models.RolePlayer {
		return nil, ErrOnlyPlayersCanRequest
	}
	if player.TeamID != nil {
		return nil, ErrAlreadyOnTeam
	}

	team, err := s.accountRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", teamID, err)
	}
	if team.Role != models.RoleTeam {
		return nil, ErrTeamNotFound
	}

	// Any existing entry blocks, whatever its status.
	_, err = s.requestRepo.FindByTeamAndPlayer(ctx, teamID, callerID)
	if err == nil {
		return nil, ErrRequestAlreadySent
	}
	if !errors.Is(err, repositories.ErrJoinRequestNotFound) {
		return nil, fmt.Errorf("failed to check existing join request: %w", err)
	}

	request := &models.JoinRequest{
		TeamID:   teamID,
		PlayerID: callerID,
		Status:   models.StatusPending,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		if errors.Is(err, repositories.ErrJoinRequestConflict) {
			return nil, ErrRequestAlreadySent
		}
		return nil, fmt.Errorf("failed to create join request: %w", err)
	}
	return request, nil
}

// Decide records the team's verdict. Approval commits the status change and
// the player's team assignment in a single transaction, so a reader can never
// observe an approved request alongside an unassigned player.
func (s *joinRequestService) Decide(ctx context.Context, teamID, requestID int, status models.ReviewStatus, callerID int) (*models.JoinRequest, error) {
	if !status.Valid() || !status.Decided() {
		return nil, ErrInvalidStatus
	}

	// Only the team account itself manages its join requests.
	if callerID != teamID {
		return nil, ErrOperationForbidden
	}
	team, err := s.accountRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", teamID, err)
	}
	if team.Role != models.RoleTeam {
		return nil, ErrOnlyTeamsCanManageRoster
	}

	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrJoinRequestNotFound) {
			return nil, ErrJoinRequestNotFound
		}
		return nil, fmt.Errorf("failed to find join request %d: %w", requestID, err)
	}
	if request.TeamID != teamID {
		return nil, ErrJoinRequestNotFound
	}

	err = s.txRunner.RunInTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.requestRepo.UpdateStatus(ctx, exec, requestID, status); err != nil {
			return err
		}
		if status == models.StatusApproved {
			if err := s.accountRepo.UpdateTeamID(ctx, exec, request.PlayerID, &teamID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrJoinRequestNotFound) {
			return nil, ErrJoinRequestNotFound
		}
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to decide join request %d: %w", requestID, err)
	}

	request.Status = status
	return request, nil
}

func (s *joinRequestService) ListByTeam(ctx context.Context, teamID, callerID int) ([]models.JoinRequest, error) {
	if callerID != teamID {
		return nil, ErrOperationForbidden
	}

	team, err := s.accountRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", teamID, err)
	}
	if team.Role != models.RoleTeam {
		return nil, ErrOnlyTeamsCanManageRoster
	}

	requests, err := s.requestRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list join requests for team %d: %w", teamID, err)
	}
	return requests, nil
}
