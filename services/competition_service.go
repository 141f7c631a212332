package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kalimuthu765/sports-connect/models"
	"github.com/kalimuthu765/sports-connect/repositories"
	"golang.org/x/sync/errgroup"
)

type CreateCompetitionInput struct {
	Name  string `json:"name"`
	Sport string `json:"sport"`
}

type ListCompetitionsInput struct {
	Sport       *string
	OrganizerID *int
	Limit       int
	Offset      int
}

type CompetitionService interface {
	Create(ctx context.Context, callerID int, input CreateCompetitionInput) (*models.Competition, error)
	GetByID(ctx context.Context, id int) (*models.Competition, error)
	List(ctx context.Context, input ListCompetitionsInput) ([]models.Competition, error)
}

type competitionService struct {
	competitionRepo  repositories.CompetitionRepository
	registrationRepo repositories.RegistrationRepository
	matchRepo        repositories.MatchRepository
	accountRepo      repositories.AccountRepository
	vocabulary       models.RoleVocabulary
}

func NewCompetitionService(
	competitionRepo repositories.CompetitionRepository,
	registrationRepo repositories.RegistrationRepository,
	matchRepo repositories.MatchRepository,
	accountRepo repositories.AccountRepository,
	vocabulary models.RoleVocabulary,
) CompetitionService {
	return &competitionService{
		competitionRepo:  competitionRepo,
		registrationRepo: registrationRepo,
		matchRepo:        matchRepo,
		accountRepo:      accountRepo,
		vocabulary:       vocabulary,
	}
}

func (s *competitionService) Create(ctx context.Context, callerID int, input CreateCompetitionInput) (*models.Competition, error) {
	caller, err := s.accountRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account %d: %w", callerID, err)
	}
	if caller.Role != models.RoleOrganizer {
		return nil, ErrOperationForbidden
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: competition name is required", ErrValidationFailed)
	}
	if !s.vocabulary.KnownSport(input.Sport) {
		return nil, ErrUnknownSport
	}

	competition := &models.Competition{
		Name:        name,
		Sport:       input.Sport,
		OrganizerID: callerID,
	}
	if err := s.competitionRepo.Create(ctx, competition); err != nil {
		return nil, fmt.Errorf("failed to create competition: %w", err)
	}
	return competition, nil
}

// GetByID returns the competition with its registrations, matches and
// organizer, loaded concurrently.
func (s *competitionService) GetByID(ctx context.Context, id int) (*models.Competition, error) {
	competition, err := s.competitionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCompetitionNotFound) {
			return nil, ErrCompetitionNotFound
		}
		return nil, fmt.Errorf("failed to get competition %d: %w", id, err)
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		registrations, err := s.registrationRepo.ListByCompetition(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to list registrations: %w", err)
		}
		competition.Registrations = registrations
		return nil
	})
	g.Go(func() error {
		matches, err := s.matchRepo.ListByCompetition(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to list matches: %w", err)
		}
		competition.Matches = matches
		return nil
	})
	g.Go(func() error {
		organizer, err := s.accountRepo.GetByID(gCtx, competition.OrganizerID)
		if err != nil {
			// The organizer row should always exist; treat a miss as
			// infrastructure trouble, not a 404 for the competition.
			return fmt.Errorf("failed to get organizer %d: %w", competition.OrganizerID, err)
		}
		organizer.PasswordHash = ""
		competition.Organizer = organizer
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return competition, nil
}

func (s *competitionService) List(ctx context.Context, input ListCompetitionsInput) ([]models.Competition, error) {
	competitions, err := s.competitionRepo.List(ctx, repositories.ListCompetitionsFilter{
		Sport:       input.Sport,
		OrganizerID: input.OrganizerID,
		Limit:       input.Limit,
		Offset:      input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list competitions: %w", err)
	}
	return competitions, nil
}
