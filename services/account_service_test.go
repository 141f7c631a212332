package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalimuthu765/sports-connect/models"
	"github.com/kalimuthu765/sports-connect/repositories"
)

func TestAccountService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("a team profile carries its roster", func(t *testing.T) {
		team := &models.Account{ID: 10, Role: models.RoleTeam, PasswordHash: "hash"}
		repo := &fakeAccountRepo{
			GetByIDFunc: func(ctx context.Context, id int) (*models.Account, error) { return team, nil },
			ListRosterFunc: func(ctx context.Context, teamID int) ([]models.Account, error) {
				return []models.Account{{ID: 20, Role: models.RolePlayer, PasswordHash: "hash"}}, nil
			},
		}
		svc := NewAccountService(&fakeTxRunner{}, repo, &fakeFollowRepo{}, &fakeStatRepo{}, nil, models.DefaultRoleVocabulary)

		account, err := svc.GetByID(ctx, team.ID)
		require.NoError(t, err)
		require.Len(t, account.Roster, 1)
		assert.Empty(t, account.PasswordHash)
		assert.Empty(t, account.Roster[0].PasswordHash)
	})

	t.Run("an assigned player carries their team", func(t *testing.T) {
		team := &models.Account{ID: 10, Role: models.RoleTeam}
		player := &models.Account{ID: 20, Role: models.RolePlayer, TeamID: intPtr(10)}
		repo := &fakeAccountRepo{
			GetByIDFunc: func(ctx context.Context, id int) (*models.Account, error) {
				if id == team.ID {
					return team, nil
				}
				return player, nil
			},
		}
		svc := NewAccountService(&fakeTxRunner{}, repo, &fakeFollowRepo{}, &fakeStatRepo{}, nil, models.DefaultRoleVocabulary)

		account, err := svc.GetByID(ctx, player.ID)
		require.NoError(t, err)
		require.NotNil(t, account.Team)
		assert.Equal(t, team.ID, account.Team.ID)
	})

	t.Run("missing account", func(t *testing.T) {
		repo := &fakeAccountRepo{
			GetByIDFunc: func(ctx context.Context, id int) (*models.Account, error) {
				return nil, repositories.ErrAccountNotFound
			},
		}
		svc := NewAccountService(&fakeTxRunner{}, repo, &fakeFollowRepo{}, &fakeStatRepo{}, nil, models.DefaultRoleVocabulary)
		_, err := svc.GetByID(ctx, 404)
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestAccountService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	newPlayer := func() *models.Account {
		return &models.Account{ID: 20, Role: models.RolePlayer, Name: "Ravi", Sport: "Cricket"}
	}

	t.Run("applies only the present fields", func(t *testing.T) {
		player := newPlayer()
		var saved *models.Account
		repo := &fakeAccountRepo{
			GetByIDFunc: func(ctx context.Context, id int) (*models.Account, error) { return player, nil },
			UpdateFunc: func(ctx context.Context, account *models.Account) error {
				saved = account
				return nil
			},
		}
		svc := NewAccountService(&fakeTxRunner{}, repo, &fakeFollowRepo{}, &fakeStatRepo{}, nil, models.DefaultRoleVocabulary)

		updated, err := svc.UpdateProfile(ctx, player.ID, UpdateProfileInput{Bio: strPtr("spin bowler")})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "Ravi", updated.Name)
		require.NotNil(t, updated.Bio)
		assert.Equal(t, "spin bowler", *updated.Bio)
	})

	t.Run("sport role is checked against the current sport", func(t *testing.T) {
		repo := &fakeAccountRepo{
			GetByIDFunc: func(ctx context.Context, id int) (*models.Account, error) { return newPlayer(), nil },
		}
		svc := NewAccountService(&fakeTxRunner{}, repo, &fakeFollowRepo{}, &fakeStatRepo{}, nil, models.DefaultRoleVocabulary)

		_, err := svc.UpdateProfile(ctx, 20, UpdateProfileInput{SportRole: strPtr("Goalkeeper")})
		assert.ErrorIs(t, err, ErrInvalidSportRole)
	})

	t.Run("unknown sport", func(t *testing.T) {
		repo := &fakeAccountRepo{
			GetByIDFunc: func(ctx context.Context, id int) (*models.Account, error) { return newPlayer(), nil },
		}
		svc := NewAccountService(&fakeTxRunner{}, repo, &fakeFollowRepo{}, &fakeStatRepo{}, nil, models.DefaultRoleVocabulary)

		_, err := svc.UpdateProfile(ctx, 20, UpdateProfileInput{Sport: strPtr("Chess")})
		assert.ErrorIs(t, err, ErrUnknownSport)
	})
}

func TestAccountService_AddMatchStat(t *testing.T) {
	ctx := context.Background()

	player := &models.Account{
		ID:           20,
		Role:         models.RolePlayer,
		Sport:        "Cricket",
		OverallStats: models.StatMap{"runs": float64(40), "wickets": float64(2)},
	}
	accounts := func() *fakeAccountRepo {
		return &fakeAccountRepo{
			GetByIDFunc: func(ctx context.Context, id int) (*models.Account, error) { return player, nil },
		}
	}

	input := AddMatchStatInput{
		MatchDate: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Opponent:  "City Strikers",
		Sport:     "Cricket",
		Stats:     models.StatMap{"runs": float64(55), "wickets": float64(1), "notes": "strong finish"},
	}

	t.Run("appends the record and folds numeric totals in one transaction", func(t *testing.T) {
		tx := &fakeTxRunner{}
		var appended *models.MatchStat
		var totals models.StatMap

		repo := accounts()
		repo.UpdateOverallStatsFunc = func(ctx context.Context, exec repositories.SQLExecutor, accountID int, stats models.StatMap) error {
			totals = stats
			return nil
		}

		svc := NewAccountService(
			tx,
			repo,
			&fakeFollowRepo{},
			&fakeStatRepo{
				AppendFunc: func(ctx context.Context, exec repositories.SQLExecutor, stat *models.MatchStat) error {
					stat.ID = 9
					appended = stat
					return nil
				},
			},
			nil,
			models.DefaultRoleVocabulary,
		)

		stat, err := svc.AddMatchStat(ctx, player.ID, input)
		require.NoError(t, err)
		assert.True(t, tx.Ran)
		require.NotNil(t, appended)
		assert.Equal(t, "City Strikers", stat.Opponent)

		require.NotNil(t, totals)
		assert.Equal(t, float64(95), totals["runs"])
		assert.Equal(t, float64(3), totals["wickets"])
		_, hasNotes := totals["notes"]
		assert.False(t, hasNotes, "non-numeric entries must not enter the totals")
	})

	t.Run("teams have no per-match stats", func(t *testing.T) {
		team := &models.Account{ID: 10, Role: models.RoleTeam}
		repo := &fakeAccountRepo{
			GetByIDFunc: func(ctx context.Context, id int) (*models.Account, error) { return team, nil },
		}
		svc := NewAccountService(&fakeTxRunner{}, repo, &fakeFollowRepo{}, &fakeStatRepo{}, nil, models.DefaultRoleVocabulary)

		_, err := svc.AddMatchStat(ctx, team.ID, input)
		assert.ErrorIs(t, err, ErrOnlyPlayersHaveStats)
	})
}

func TestAccountService_Recommendations(t *testing.T) {
	ctx := context.Background()

	caller := &models.Account{ID: 20, Role: models.RolePlayer, Sport: "Cricket"}
	repo := &fakeAccountRepo{
		GetByIDFunc: func(ctx context.Context, id int) (*models.Account, error) { return caller, nil },
	}

	var gotSport string
	var gotExclude []int
	repo.ListBySportExcludingFunc = func(ctx context.Context, sport string, excludeIDs []int, limit int) ([]models.Account, error) {
		gotSport, gotExclude = sport, excludeIDs
		return []models.Account{{ID: 31, Sport: sport}}, nil
	}

	follows := &fakeFollowRepo{
		ListFollowingIDsFunc: func(ctx context.Context, accountID int) ([]int, error) { return []int{30}, nil },
	}

	svc := NewAccountService(&fakeTxRunner{}, repo, follows, &fakeStatRepo{}, nil, models.DefaultRoleVocabulary)

	recommendations, err := svc.Recommendations(ctx, caller.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cricket", gotSport)
	assert.ElementsMatch(t, []int{30, caller.ID}, gotExclude, "followed accounts and the caller are excluded")
	require.Len(t, recommendations, 1)
	assert.Equal(t, 31, recommendations[0].ID)
}
