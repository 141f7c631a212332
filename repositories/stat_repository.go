package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kalimuthu765/sports-connect/models"
	"github.com/lib/pq"
)

var ErrStatAccountInvalid = errors.New("match stat account reference invalid")

type StatRepository interface {
	Append(ctx context.Context, exec SQLExecutor, stat *models.MatchStat) error
	ListByAccount(ctx context.Context, accountID int) ([]models.MatchStat, error)
}

type postgresStatRepository struct {
	db *sql.DB
}

func NewPostgresStatRepository(db *sql.DB) StatRepository {
	return &postgresStatRepository{db: db}
}

func (r *postgresStatRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresStatRepository) Append(ctx context.Context, exec SQLExecutor, stat *models.MatchStat) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO match_stats (account_id, match_date, opponent, sport, stats)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := executor.QueryRowContext(ctx, query,
		stat.AccountID, stat.MatchDate, stat.Opponent, stat.Sport, stat.Stats,
	).Scan(&stat.ID, &stat.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrStatAccountInvalid
		}
		return fmt.Errorf("failed to append match stat: %w", err)
	}
	return nil
}

func (r *postgresStatRepository) ListByAccount(ctx context.Context, accountID int) ([]models.MatchStat, error) {
	query := `
		SELECT id, account_id, match_date, opponent, sport, stats, created_at
		FROM match_stats
		WHERE account_id = $1
		ORDER BY match_date ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list match stats: %w", err)
	}
	defer rows.Close()

	stats := make([]models.MatchStat, 0)
	for rows.Next() {
		var s models.MatchStat
		if scanErr := rows.Scan(&s.ID, &s.AccountID, &s.MatchDate, &s.Opponent, &s.Sport, &s.Stats, &s.CreatedAt); scanErr != nil {
			return nil, scanErr
		}
		stats = append(stats, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}
