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
	ErrMatchNotFound           = errors.New("match not found")
	ErrMatchTeamInvalid        = errors.New("match team reference invalid")
	ErrMatchCompetitionInvalid = errors.New("match competition reference invalid")
)

// ScorecardUpdate carries the field-presence merge for a scorecard: nil
// fields are left untouched on the row.
type ScorecardUpdate struct {
	Team1Score       *string
	Team1Overs       *string
	Team1PlayerStats models.PlayerPerformanceList
	Team2Score       *string
	Team2Overs       *string
	Team2PlayerStats models.PlayerPerformanceList
}

// Empty reports whether the update touches no field at all.
func (u ScorecardUpdate) Empty() bool {
	return u.Team1Score == nil && u.Team1Overs == nil && u.Team1PlayerStats == nil &&
		u.Team2Score == nil && u.Team2Overs == nil && u.Team2PlayerStats == nil
}

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	FindByID(ctx context.Context, competitionID, matchID int) (*models.Match, error)
	ListByCompetition(ctx context.Context, competitionID int) ([]models.Match, error)
	UpdateScorecard(ctx context.Context, competitionID, matchID int, update ScorecardUpdate) error
	UpdateStatus(ctx context.Context, competitionID, matchID int, status models.MatchStatus) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) Create(ctx context.Context, m *models.Match) error {
	query := `
		INSERT INTO matches (
			competition_id, name, date, location, status,
			team1_id, team1_score, team1_overs, team1_player_stats,
			team2_id, team2_score, team2_overs, team2_player_stats
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		m.CompetitionID, m.Name, m.Date, m.Location, m.Status,
		m.Team1.TeamID, m.Team1.Score, m.Team1.Overs, m.Team1.PlayerStats,
		m.Team2.TeamID, m.Team2.Score, m.Team2.Overs, m.Team2.PlayerStats,
	).Scan(&m.ID, &m.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			switch pqErr.Constraint {
			case "matches_competition_id_fkey":
				return ErrMatchCompetitionInvalid
			case "matches_team1_id_fkey", "matches_team2_id_fkey":
				return ErrMatchTeamInvalid
			}
		}
		return fmt.Errorf("failed to create match: %w", err)
	}
	return nil
}

const matchColumns = `
	id, competition_id, name, date, location, status,
	team1_id, team1_score, team1_overs, team1_player_stats,
	team2_id, team2_score, team2_overs, team2_player_stats,
	created_at`

func (r *postgresMatchRepository) FindByID(ctx context.Context, competitionID, matchID int) (*models.Match, error) {
	query := fmt.Sprintf(`SELECT %s FROM matches WHERE competition_id = $1 AND id = $2`, matchColumns)

	m := &models.Match{}
	err := r.scanMatch(r.db.QueryRowContext(ctx, query, competitionID, matchID), m)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to find match: %w", err)
	}
	return m, nil
}

func (r *postgresMatchRepository) ListByCompetition(ctx context.Context, competitionID int) ([]models.Match, error) {
	query := fmt.Sprintf(`SELECT %s FROM matches WHERE competition_id = $1 ORDER BY date ASC, id ASC`, matchColumns)

	rows, err := r.db.QueryContext(ctx, query, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var m models.Match
		if scanErr := r.scanMatch(rows, &m); scanErr != nil {
			return nil, scanErr
		}
		matches = append(matches, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

// UpdateScorecard builds the SET clause from the fields present in the
// update, so untouched scorecard fields keep their stored values.
func (r *postgresMatchRepository) UpdateScorecard(ctx context.Context, competitionID, matchID int, update ScorecardUpdate) error {
	query := `UPDATE matches SET`
	args := []interface{}{}
	argID := 1

	appendSet := func(column string, value interface{}) {
		if argID > 1 {
			query += ","
		}
		query += fmt.Sprintf(" %s = $%d", column, argID)
		args = append(args, value)
		argID++
	}

	if update.Team1Score != nil {
		appendSet("team1_score", *update.Team1Score)
	}
	if update.Team1Overs != nil {
		appendSet("team1_overs", *update.Team1Overs)
	}
	if update.Team1PlayerStats != nil {
		appendSet("team1_player_stats", update.Team1PlayerStats)
	}
	if update.Team2Score != nil {
		appendSet("team2_score", *update.Team2Score)
	}
	if update.Team2Overs != nil {
		appendSet("team2_overs", *update.Team2Overs)
	}
	if update.Team2PlayerStats != nil {
		appendSet("team2_player_stats", update.Team2PlayerStats)
	}

	if len(args) == 0 {
		return nil
	}

	query += fmt.Sprintf(" WHERE competition_id = $%d AND id = $%d", argID, argID+1)
	args = append(args, competitionID, matchID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update scorecard: %w", err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) UpdateStatus(ctx context.Context, competitionID, matchID int, status models.MatchStatus) error {
	query := `UPDATE matches SET status = $1 WHERE competition_id = $2 AND id = $3`
	result, err := r.db.ExecContext(ctx, query, status, competitionID, matchID)
	if err != nil {
		return fmt.Errorf("failed to update match status: %w", err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) scanMatch(scanner interface {
	Scan(dest ...interface{}) error
}, m *models.Match) error {
	return scanner.Scan(
		&m.ID, &m.CompetitionID, &m.Name, &m.Date, &m.Location, &m.Status,
		&m.Team1.TeamID, &m.Team1.Score, &m.Team1.Overs, &m.Team1.PlayerStats,
		&m.Team2.TeamID, &m.Team2.Score, &m.Team2.Overs, &m.Team2.PlayerStats,
		&m.CreatedAt,
	)
}
