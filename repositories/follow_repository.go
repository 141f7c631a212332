package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var ErrFollowAccountInvalid = errors.New("follow references a missing account")

type FollowRepository interface {
	// Add records follower → target. Returns false when the pair already
	// existed, so duplicate follow calls stay idempotent.
	Add(ctx context.Context, followerID, targetID int) (bool, error)
	ListFollowerIDs(ctx context.Context, accountID int) ([]int, error)
	ListFollowingIDs(ctx context.Context, accountID int) ([]int, error)
}

type postgresFollowRepository struct {
	db *sql.DB
}

func NewPostgresFollowRepository(db *sql.DB) FollowRepository {
	return &postgresFollowRepository{db: db}
}

func (r *postgresFollowRepository) Add(ctx context.Context, followerID, targetID int) (bool, error) {
	query := `
		INSERT INTO follows (follower_id, target_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, target_id) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query, followerID, targetID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return false, ErrFollowAccountInvalid
		}
		return false, fmt.Errorf("failed to add follow: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check affected rows: %w", err)
	}
	return rowsAffected > 0, nil
}

func (r *postgresFollowRepository) ListFollowerIDs(ctx context.Context, accountID int) ([]int, error) {
	query := `SELECT follower_id FROM follows WHERE target_id = $1 ORDER BY created_at ASC`
	return r.listIDs(ctx, query, accountID)
}

func (r *postgresFollowRepository) ListFollowingIDs(ctx context.Context, accountID int) ([]int, error) {
	query := `SELECT target_id FROM follows WHERE follower_id = $1 ORDER BY created_at ASC`
	return r.listIDs(ctx, query, accountID)
}

func (r *postgresFollowRepository) listIDs(ctx context.Context, query string, args ...interface{}) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, scanErr
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
