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
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountEmailConflict = errors.New("account email conflict")
	ErrAccountTeamInvalid   = errors.New("account team reference invalid")
)

type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id int) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	FindPlayerByEmail(ctx context.Context, email string) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	UpdateTeamID(ctx context.Context, exec SQLExecutor, accountID int, teamID *int) error
	UpdateAvatarKey(ctx context.Context, accountID int, avatarKey *string) error
	UpdateOverallStats(ctx context.Context, exec SQLExecutor, accountID int, stats models.StatMap) error
	ListRoster(ctx context.Context, teamID int) ([]models.Account, error)
	ListTeams(ctx context.Context) ([]models.Account, error)
	ListBySportExcluding(ctx context.Context, sport string, excludeIDs []int, limit int) ([]models.Account, error)
}

type postgresAccountRepository struct {
	db *sql.DB
}

func NewPostgresAccountRepository(db *sql.DB) AccountRepository {
	return &postgresAccountRepository{db: db}
}

func (r *postgresAccountRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const accountColumns = `id, name, email, password_hash, role, sport, sport_role, bio, team_id, overall_stats, avatar_key, created_at`

func (r *postgresAccountRepository) Create(ctx context.Context, a *models.Account) error {
	query := `
		INSERT INTO accounts (name, email, password_hash, role, sport, sport_role, bio, team_id, overall_stats)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		a.Name, a.Email, a.PasswordHash, a.Role, a.Sport, a.SportRole, a.Bio, a.TeamID, a.OverallStats,
	).Scan(&a.ID, &a.CreatedAt)

	return r.handleAccountError(err)
}

func (r *postgresAccountRepository) GetByID(ctx context.Context, id int) (*models.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE id = $1`, accountColumns)
	return r.scanAccount(ctx, query, id)
}

func (r *postgresAccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE email = $1`, accountColumns)
	return r.scanAccount(ctx, query, email)
}

func (r *postgresAccountRepository) FindPlayerByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE email = $1 AND role = $2`, accountColumns)
	return r.scanAccount(ctx, query, email, models.RolePlayer)
}

func (r *postgresAccountRepository) Update(ctx context.Context, a *models.Account) error {
	query := `
		UPDATE accounts SET
			name = $1,
			email = $2,
			password_hash = $3,
			sport = $4,
			sport_role = $5,
			bio = $6
		WHERE id = $7`

	result, err := r.db.ExecContext(ctx, query,
		a.Name, a.Email, a.PasswordHash, a.Sport, a.SportRole, a.Bio, a.ID,
	)
	if err != nil {
		return r.handleAccountError(err)
	}
	return checkAffectedRows(result, ErrAccountNotFound)
}

func (r *postgresAccountRepository) UpdateTeamID(ctx context.Context, exec SQLExecutor, accountID int, teamID *int) error {
	executor := r.getExecutor(exec)
	query := `UPDATE accounts SET team_id = $1 WHERE id = $2`
	result, err := executor.ExecContext(ctx, query, teamID, accountID)
	if err != nil {
		return r.handleAccountError(err)
	}
	return checkAffectedRows(result, ErrAccountNotFound)
}

func (r *postgresAccountRepository) UpdateAvatarKey(ctx context.Context, accountID int, avatarKey *string) error {
	query := `UPDATE accounts SET avatar_key = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, avatarKey, accountID)
	if err != nil {
		return fmt.Errorf("failed to update account avatar key: %w", err)
	}
	return checkAffectedRows(result, ErrAccountNotFound)
}

func (r *postgresAccountRepository) UpdateOverallStats(ctx context.Context, exec SQLExecutor, accountID int, stats models.StatMap) error {
	executor := r.getExecutor(exec)
	query := `UPDATE accounts SET overall_stats = $1 WHERE id = $2`
	result, err := executor.ExecContext(ctx, query, stats, accountID)
	if err != nil {
		return fmt.Errorf("failed to update account overall stats: %w", err)
	}
	return checkAffectedRows(result, ErrAccountNotFound)
}

// ListRoster returns the player accounts currently assigned to the team.
func (r *postgresAccountRepository) ListRoster(ctx context.Context, teamID int) ([]models.Account, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM accounts
		WHERE team_id = $1 AND role = $2
		ORDER BY name ASC`, accountColumns)
	return r.listAccounts(ctx, query, teamID, models.RolePlayer)
}

func (r *postgresAccountRepository) ListTeams(ctx context.Context) ([]models.Account, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM accounts
		WHERE role = $1
		ORDER BY name ASC`, accountColumns)
	return r.listAccounts(ctx, query, models.RoleTeam)
}

func (r *postgresAccountRepository) ListBySportExcluding(ctx context.Context, sport string, excludeIDs []int, limit int) ([]models.Account, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM accounts
		WHERE sport = $1 AND NOT (id = ANY($2))
		ORDER BY created_at DESC
		LIMIT $3`, accountColumns)
	return r.listAccounts(ctx, query, sport, pq.Array(excludeIDs), limit)
}

func (r *postgresAccountRepository) scanAccount(ctx context.Context, query string, args ...interface{}) (*models.Account, error) {
	a := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role, &a.Sport,
		&a.SportRole, &a.Bio, &a.TeamID, &a.OverallStats, &a.AvatarKey, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}
	return a, nil
}

func (r *postgresAccountRepository) listAccounts(ctx context.Context, query string, args ...interface{}) ([]models.Account, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		var a models.Account
		if scanErr := rows.Scan(
			&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role, &a.Sport,
			&a.SportRole, &a.Bio, &a.TeamID, &a.OverallStats, &a.AvatarKey, &a.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		accounts = append(accounts, a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *postgresAccountRepository) handleAccountError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			if pqErr.Constraint == "accounts_email_key" {
				return ErrAccountEmailConflict
			}
		case "23503":
			if pqErr.Constraint == "accounts_team_id_fkey" {
				return ErrAccountTeamInvalid
			}
		}
	}
	return err
}
