package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kalimuthu765/sports-connect/models"
	"github.com/kalimuthu765/sports-connect/realtime"
	"github.com/kalimuthu765/sports-connect/repositories"
)

// EventPublisher is the notification sink the core publishes match events to.
// Delivery is fire-and-forget; the core never waits on subscribers.
type EventPublisher interface {
	BroadcastToRoom(roomID string, message interface{})
}

type CreateMatchInput struct {
	Name     string    `json:"match_name"`
	Date     time.Time `json:"date"`
	TeamIDs  []int     `json:"teams"`
	Location *string   `json:"location"`
}

// UpdateScoreInput lists the scorecard fields a request may carry; absent
// fields are left untouched (merge semantics).
type UpdateScoreInput struct {
	Team1Score       *string                      `json:"team1_score"`
	Team1Overs       *string                      `json:"team1_overs"`
	Team1PlayerStats models.PlayerPerformanceList `json:"team1_player_stats"`
	Team2Score       *string                      `json:"team2_score"`
	Team2Overs       *string                      `json:"team2_overs"`
	Team2PlayerStats models.PlayerPerformanceList `json:"team2_player_stats"`
}

// MatchService creates matches inside a competition and applies scorecard
// updates under organizer-only authorization.
type MatchService interface {
	CreateMatch(ctx context.Context, competitionID, callerID int, input CreateMatchInput) (*models.Match, error)
	UpdateScore(ctx context.Context, competitionID, matchID, callerID int, input UpdateScoreInput) (*models.Match, error)
	UpdateStatus(ctx context.Context, competitionID, matchID, callerID int, status models.MatchStatus) (*models.Match, error)
	GetMatch(ctx context.Context, competitionID, matchID int) (*models.Match, error)
	ListByCompetition(ctx context.Context, competitionID int) ([]models.Match, error)
}

type matchService struct {
	matchRepo        repositories.MatchRepository
	competitionRepo  repositories.CompetitionRepository
	registrationRepo repositories.RegistrationRepository
	publisher        EventPublisher
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	competitionRepo repositories.CompetitionRepository,
	registrationRepo repositories.RegistrationRepository,
	publisher EventPublisher,
) MatchService {
	return &matchService{
		matchRepo:        matchRepo,
		competitionRepo:  competitionRepo,
		registrationRepo: registrationRepo,
		publisher:        publisher,
	}
}

// CreateMatch appends a scheduled match with an empty scorecard. Both teams
// must hold an approved registration in the competition.
func (s *matchService) CreateMatch(ctx context.Context, competitionID, callerID int, input CreateMatchInput) (*models.Match, error) {
	competition, err := s.getCompetitionForOrganizer(ctx, competitionID, callerID)
	if err != nil {
		return nil, err
	}

	if len(input.TeamIDs) != 2 {
		return nil, ErrTwoTeamsRequired
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: match name is required", ErrValidationFailed)
	}

	for _, teamID := range input.TeamIDs {
		registration, err := s.registrationRepo.FindByCompetitionAndTeam(ctx, competition.ID, teamID)
		if err != nil {
			if errors.Is(err, repositories.ErrRegistrationNotFound) {
				return nil, ErrTeamNotApproved
			}
			return nil, fmt.Errorf("failed to check registration for team %d: %w", teamID, err)
		}
		if registration.Status != models.StatusApproved {
			return nil, ErrTeamNotApproved
		}
	}

	match := &models.Match{
		CompetitionID: competition.ID,
		Name:          input.Name,
		Date:          input.Date,
		Location:      input.Location,
		Status:        models.MatchScheduled,
		Team1:         models.TeamPerformance{TeamID: input.TeamIDs[0], PlayerStats: models.PlayerPerformanceList{}},
		Team2:         models.TeamPerformance{TeamID: input.TeamIDs[1], PlayerStats: models.PlayerPerformanceList{}},
	}
	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return match, nil
}

// UpdateScore merges the present fields into the scorecard, leaving the rest
// untouched, and publishes the updated match to its room. Match status is
// never advanced here.
func (s *matchService) UpdateScore(ctx context.Context, competitionID, matchID, callerID int, input UpdateScoreInput) (*models.Match, error) {
	if _, err := s.getCompetitionForOrganizer(ctx, competitionID, callerID); err != nil {
		return nil, err
	}

	update := repositories.ScorecardUpdate{
		Team1Score:       input.Team1Score,
		Team1Overs:       input.Team1Overs,
		Team1PlayerStats: input.Team1PlayerStats,
		Team2Score:       input.Team2Score,
		Team2Overs:       input.Team2Overs,
		Team2PlayerStats: input.Team2PlayerStats,
	}
	if update.Empty() {
		return nil, fmt.Errorf("%w: no scorecard fields provided", ErrValidationFailed)
	}

	if err := s.matchRepo.UpdateScorecard(ctx, competitionID, matchID, update); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to update scorecard for match %d: %w", matchID, err)
	}

	match, err := s.GetMatch(ctx, competitionID, matchID)
	if err != nil {
		return nil, err
	}

	s.publish(match, "MATCH_UPDATED")
	return match, nil
}

// UpdateStatus is the organizer-driven manual transition between scheduled,
// ongoing and completed.
func (s *matchService) UpdateStatus(ctx context.Context, competitionID, matchID, callerID int, status models.MatchStatus) (*models.Match, error) {
	if _, err := s.getCompetitionForOrganizer(ctx, competitionID, callerID); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	if err := s.matchRepo.UpdateStatus(ctx, competitionID, matchID, status); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to update status for match %d: %w", matchID, err)
	}

	match, err := s.GetMatch(ctx, competitionID, matchID)
	if err != nil {
		return nil, err
	}

	s.publish(match, "MATCH_STATUS_CHANGED")
	return match, nil
}

func (s *matchService) GetMatch(ctx context.Context, competitionID, matchID int) (*models.Match, error) {
	match, err := s.matchRepo.FindByID(ctx, competitionID, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match %d: %w", matchID, err)
	}
	return match, nil
}

func (s *matchService) ListByCompetition(ctx context.Context, competitionID int) ([]models.Match, error) {
	if _, err := s.competitionRepo.GetByID(ctx, competitionID); err != nil {
		if errors.Is(err, repositories.ErrCompetitionNotFound) {
			return nil, ErrCompetitionNotFound
		}
		return nil, fmt.Errorf("failed to get competition %d: %w", competitionID, err)
	}

	matches, err := s.matchRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for competition %d: %w", competitionID, err)
	}
	return matches, nil
}

func (s *matchService) getCompetitionForOrganizer(ctx context.Context, competitionID, callerID int) (*models.Competition, error) {
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
	return competition, nil
}

func (s *matchService) publish(match *models.Match, eventType string) {
	if s.publisher == nil {
		return
	}
	s.publisher.BroadcastToRoom(match.RoomID(), realtime.Message{
		Type:    eventType,
		Payload: match,
		RoomID:  match.RoomID(),
	})
}
