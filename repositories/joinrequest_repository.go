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
	ErrJoinRequestNotFound      = errors.New("join request not found")
	ErrJoinRequestConflict      = errors.New("join request already exists for this player and team")
	ErrJoinRequestTeamInvalid   = errors.New("join request team reference invalid")
	ErrJoinRequestPlayerInvalid = errors.New("join request player reference invalid")
)

type JoinRequestRepository interface {
	Create(ctx context.Context, request *models.JoinRequest) error
	FindByID(ctx context.Context, id int) (*models.JoinRequest, error)
	FindByTeamAndPlayer(ctx context.Context, teamID, playerID int) (*models.JoinRequest, error)
	UpdateStatus(ctx context.Context, exec SQLExecutor, id int, status models.ReviewStatus) error
	ListByTeam(ctx context.Context, teamID int) ([]models.JoinRequest, error)
}

type postgresJoinRequestRepository struct {
	db *sql.DB
}

func NewPostgresJoinRequestRepository(db *sql.DB) JoinRequestRepository {
	return &postgresJoinRequestRepository{db: db}
}

func (r *postgresJoinRequestRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresJoinRequestRepository) Create(ctx context.Context, req *models.JoinRequest) error {
	query := `
		INSERT INTO join_requests (team_id, player_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, req.TeamID, req.PlayerID, req.Status).
		Scan(&req.ID, &req.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505":
				if pqErr.Constraint == "join_requests_team_id_player_id_key" {
					return ErrJoinRequestConflict
				}
			case "23503":
				switch pqErr.Constraint {
				case "join_requests_team_id_fkey":
					return ErrJoinRequestTeamInvalid
				case "join_requests_player_id_fkey":
					return ErrJoinRequestPlayerInvalid
				}
			}
		}
		return fmt.Errorf("failed to create join request: %w", err)
	}
	return nil
}

func (r *postgresJoinRequestRepository) FindByID(ctx context.Context, id int) (*models.JoinRequest, error) {
	query := `
		SELECT id, team_id, player_id, status, created_at
		FROM join_requests
		WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *postgresJoinRequestRepository) FindByTeamAndPlayer(ctx context.Context, teamID, playerID int) (*models.JoinRequest, error) {
	query := `
		SELECT id, team_id, player_id, status, created_at
		FROM join_requests
		WHERE team_id = $1 AND player_id = $2`
	return r.findOne(ctx, query, teamID, playerID)
}

func (r *postgresJoinRequestRepository) UpdateStatus(ctx context.Context, exec SQLExecutor, id int, status models.ReviewStatus) error {
	executor := r.getExecutor(exec)
	query := `UPDATE join_requests SET status = $1 WHERE id = $2`
	result, err := executor.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update join request status: %w", err)
	}
	return checkAffectedRows(result, ErrJoinRequestNotFound)
}

func (r *postgresJoinRequestRepository) ListByTeam(ctx context.Context, teamID int) ([]models.JoinRequest, error) {
	query := `
		SELECT
			jr.id, jr.team_id, jr.player_id, jr.status, jr.created_at,
			COALESCE(a.name, '') AS player_name, COALESCE(a.sport, '') AS player_sport
		FROM join_requests jr
		LEFT JOIN accounts a ON jr.player_id = a.id
		WHERE jr.team_id = $1
		ORDER BY jr.created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list join requests: %w", err)
	}
	defer rows.Close()

	requests := make([]models.JoinRequest, 0)
	for rows.Next() {
		var req models.JoinRequest
		var playerName, playerSport string
		if scanErr := rows.Scan(&req.ID, &req.TeamID, &req.PlayerID, &req.Status, &req.CreatedAt, &playerName, &playerSport); scanErr != nil {
			return nil, scanErr
		}
		if playerName != "" {
			req.Player = &models.Account{ID: req.PlayerID, Name: playerName, Sport: playerSport, Role: models.RolePlayer}
		}
		requests = append(requests, req)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *postgresJoinRequestRepository) findOne(ctx context.Context, query string, args ...interface{}) (*models.JoinRequest, error) {
	req := &models.JoinRequest{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&req.ID, &req.TeamID, &req.PlayerID, &req.Status, &req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJoinRequestNotFound
		}
		return nil, fmt.Errorf("failed to find join request: %w", err)
	}
	return req, nil
}
