package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kalimuthu765/sports-connect/models"
	"github.com/lib/pq"
)

var (
	ErrRegistrationNotFound           = errors.New("registration not found")
	ErrRegistrationConflict           = errors.New("team already registered for this competition")
	ErrRegistrationTeamInvalid        = errors.New("registration team reference invalid")
	ErrRegistrationCompetitionInvalid = errors.New("registration competition reference invalid")
)

type RegistrationRepository interface {
	Create(ctx context.Context, registration *models.Registration) error
	FindByCompetitionAndTeam(ctx context.Context, competitionID, teamID int) (*models.Registration, error)
	UpdateStatus(ctx context.Context, id int, status models.ReviewStatus) error
	ListByCompetition(ctx context.Context, competitionID int) ([]models.Registration, error)
}

type postgresRegistrationRepository struct {
	db *sql.DB
}

func NewPostgresRegistrationRepository(db *sql.DB) RegistrationRepository {
	return &postgresRegistrationRepository{db: db}
}

func (r *postgresRegistrationRepository) Create(ctx context.Context, reg *models.Registration) error {
	query := `
		INSERT INTO registrations (competition_id, team_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, reg.CompetitionID, reg.TeamID, reg.Status).
		Scan(&reg.ID, &reg.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505":
				if pqErr.Constraint == "registrations_competition_id_team_id_key" {
					return ErrRegistrationConflict
				}
			case "23503":
				switch pqErr.Constraint {
				case "registrations_team_id_fkey":
					return ErrRegistrationTeamInvalid
				case "registrations_competition_id_fkey":
					return ErrRegistrationCompetitionInvalid
				}
			}
		}
		return fmt.Errorf("failed to create registration: %w", err)
	}
	return nil
}

func (r *postgresRegistrationRepository) FindByCompetitionAndTeam(ctx context.Context, competitionID, teamID int) (*models.Registration, error) {
	query := `
		SELECT id, competition_id, team_id, status, created_at
		FROM registrations
		WHERE competition_id = $1 AND team_id = $2`

	reg := &models.Registration{}
	err := r.db.QueryRowContext(ctx, query, competitionID, teamID).Scan(
		&reg.ID, &reg.CompetitionID, &reg.TeamID, &reg.Status, &reg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to find registration: %w", err)
	}
	return reg, nil
}

func (r *postgresRegistrationRepository) UpdateStatus(ctx context.Context, id int, status models.ReviewStatus) error {
	query := `UPDATE registrations SET status = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update registration status: %w", err)
	}
	return checkAffectedRows(result, ErrRegistrationNotFound)
}

func (r *postgresRegistrationRepository) ListByCompetition(ctx context.Context, competitionID int) ([]models.Registration, error) {
	query := `
		SELECT
			r.id, r.competition_id, r.team_id, r.status, r.created_at,
			COALESCE(a.name, '') AS team_name
		FROM registrations r
		LEFT JOIN accounts a ON r.team_id = a.id
		WHERE r.competition_id = $1
		ORDER BY r.created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	defer rows.Close()

	registrations := make([]models.Registration, 0)
	for rows.Next() {
		var reg models.Registration
		var teamName string
		if scanErr := rows.Scan(&reg.ID, &reg.CompetitionID, &reg.TeamID, &reg.Status, &reg.CreatedAt, &teamName); scanErr != nil {
			return nil, scanErr
		}
		if teamName != "" {
			reg.Team = &models.Account{ID: reg.TeamID, Name: teamName, Role: models.RoleTeam}
		}
		registrations = append(registrations, reg)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return registrations, nil
}
