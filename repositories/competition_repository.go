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
	ErrCompetitionNotFound           = errors.New("competition not found")
	ErrCompetitionOrganizerInvalid   = errors.New("invalid organizer reference")
	ErrCompetitionNameConflict       = errors.New("competition name conflict for this organizer")
)

type ListCompetitionsFilter struct {
	Sport       *string
	OrganizerID *int
	Limit       int
	Offset      int
}

type CompetitionRepository interface {
	Create(ctx context.Context, competition *models.Competition) error
	GetByID(ctx context.Context, id int) (*models.Competition, error)
	List(ctx context.Context, filter ListCompetitionsFilter) ([]models.Competition, error)
}

type postgresCompetitionRepository struct {
	db *sql.DB
}

func NewPostgresCompetitionRepository(db *sql.DB) CompetitionRepository {
	return &postgresCompetitionRepository{db: db}
}

func (r *postgresCompetitionRepository) Create(ctx context.Context, c *models.Competition) error {
	query := `
		INSERT INTO competitions (name, sport, organizer_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, c.Name, c.Sport, c.OrganizerID).Scan(&c.ID, &c.CreatedAt)
	return r.handleCompetitionError(err)
}

func (r *postgresCompetitionRepository) GetByID(ctx context.Context, id int) (*models.Competition, error) {
	query := `
		SELECT id, name, sport, organizer_id, created_at
		FROM competitions
		WHERE id = $1`

	c := &models.Competition{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Sport, &c.OrganizerID, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCompetitionNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresCompetitionRepository) List(ctx context.Context, filter ListCompetitionsFilter) ([]models.Competition, error) {
	query := `
		SELECT id, name, sport, organizer_id, created_at
		FROM competitions
		WHERE 1=1`

	args := []interface{}{}
	argID := 1

	if filter.Sport != nil {
		query += fmt.Sprintf(" AND sport = $%d", argID)
		args = append(args, *filter.Sport)
		argID++
	}
	if filter.OrganizerID != nil {
		query += fmt.Sprintf(" AND organizer_id = $%d", argID)
		args = append(args, *filter.OrganizerID)
		argID++
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argID)
		args = append(args, filter.Limit)
		argID++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argID)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	competitions := make([]models.Competition, 0)
	for rows.Next() {
		var c models.Competition
		if scanErr := rows.Scan(&c.ID, &c.Name, &c.Sport, &c.OrganizerID, &c.CreatedAt); scanErr != nil {
			return nil, scanErr
		}
		competitions = append(competitions, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return competitions, nil
}

func (r *postgresCompetitionRepository) handleCompetitionError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			if pqErr.Constraint == "competitions_organizer_id_name_key" {
				return ErrCompetitionNameConflict
			}
		case "23503":
			if pqErr.Constraint == "competitions_organizer_id_fkey" {
				return ErrCompetitionOrganizerInvalid
			}
		}
	}
	return err
}
