package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kalimuthu765/sports-connect/models"
	"github.com/kalimuthu765/sports-connect/repositories"
)

// RegistrationService runs the team → competition sign-up workflow:
// pending → {approved, rejected}.
type RegistrationService interface {
	Register(ctx context.Context, competitionID, callerID int) (*models.Registration, error)
	Decide(ctx context.Context, competitionID, teamID int, status models.ReviewStatus, callerID int) (*models.Registration, error)
	ListByCompetition(ctx context.Context, competitionID int) ([]models.Registration, error)
}

type registrationService struct {
	registrationRepo repositories.RegistrationRepository
	competitionRepo  repositories.CompetitionRepository
	accountRepo      repositories.AccountRepository
}

func NewRegistrationService(
	registrationRepo repositories.RegistrationRepository,
	competitionRepo repositories.CompetitionRepository,
	accountRepo repositories.AccountRepository,
) RegistrationService {
	return &registrationService{
		registrationRepo: registrationRepo,
		competitionRepo:  competitionRepo,
		accountRepo:      accountRepo,
	}
}

// Register submits the caller team into the competition with status pending.
// A team that has ever registered, whatever the verdict was, cannot
// register again.
func (s *registrationService) Register(ctx context.Context, competitionID, callerID int) (*models.Registration, error) {
	caller, err := s.accountRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account %d: %w", callerID, err)
	}
	if caller.Role != models.RoleTeam {
		return nil, ErrOnlyTeamsCanRegister
	}

	if _, err := s.competitionRepo.GetByID(ctx, competitionID); err != nil {
		if errors.Is(err, repositories.ErrCompetitionNotFound) {
			return nil, ErrCompetitionNotFound
		}
		return nil, fmt.Errorf("failed to get competition %d: %w", competitionID, err)
	}

	// The duplicate check deliberately ignores status: a rejected team may
	// not re-register.
	_, err = s.registrationRepo.FindByCompetitionAndTeam(ctx, competitionID, callerID)
	if err == nil {
		return nil, ErrAlreadyRegistered
	}
	if !errors.Is(err, repositories.ErrRegistrationNotFound) {
		return nil, fmt.Errorf("failed to check existing registration: %w", err)
	}

	registration := &models.Registration{
		CompetitionID: competitionID,
		TeamID:        callerID,
		Status:        models.StatusPending,
	}
	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		// The unique constraint backs up the check above under concurrency.
		if errors.Is(err, repositories.ErrRegistrationConflict) {
			return nil, ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}
	return registration, nil
}

// Decide records the organizer's verdict. The status is set unconditionally:
// an already-decided entry can be re-decided, matching the behavior teams and
// organizers rely on today.
func (s *registrationService) Decide(ctx context.Context, competitionID, teamID int, status models.ReviewStatus, callerID int) (*models.Registration, error) {
	if !status.Valid() || !status.Decided() {
		return nil, ErrInvalidStatus
	}

	competition, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompetitionNotFound) {
			return nil, ErrCompetitionNotFound
		}
		return nil, fmt.Errorf("failed to get competition %d: %w", competitionID, err)
	}
	if competition.OrganizerID != callerID {
		return nil, ErrOnlyOrganizerAllowed
	}

	registration, err := s.registrationRepo.FindByCompetitionAndTeam(ctx, competitionID, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrRegistrationNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to find registration: %w", err)
	}

	if err := s.registrationRepo.UpdateStatus(ctx, registration.ID, status); err != nil {
		if errors.Is(err, repositories.ErrRegistrationNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to update registration status: %w", err)
	}

	registration.Status = status
	return registration, nil
}

func (s *registrationService) ListByCompetition(ctx context.Context, competitionID int) ([]models.Registration, error) {
	if _, err := s.competitionRepo.GetByID(ctx, competitionID); err != nil {
		if errors.Is(err, repositories.ErrCompetitionNotFound) {
			return nil, ErrCompetitionNotFound
		}
		return nil, fmt.Errorf("failed to get competition %d: %w", competitionID, err)
	}

	registrations, err := s.registrationRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations for competition %d: %w", competitionID, err)
	}
	return registrations, nil
}
