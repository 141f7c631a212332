package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalimuthu765/sports-connect/models"
	"github.com/kalimuthu765/sports-connect/repositories"
)

func relationshipAccounts(accounts ...*models.Account) *fakeAccountRepo {
	byID := map[int]*models.Account{}
	for _, a := range accounts {
		byID[a.ID] = a
	}
	return &fakeAccountRepo{
		GetByIDFunc: func(ctx context.Context, id int) (*models.Account, error) {
			if a, ok := byID[id]; ok {
				return a, nil
			}
			return nil, repositories.ErrAccountNotFound
		},
	}
}

func TestRelationshipService_AssignTeam(t *testing.T) {
	ctx := context.Background()

	team := &models.Account{ID: 10, Role: models.RoleTeam}

	t.Run("points the player at the team", func(t *testing.T) {
		player := &models.Account{ID: 20, Role: models.RolePlayer}
		repo := relationshipAccounts(team, player)
		var gotPlayer int
		var gotTeam *int
		repo.UpdateTeamIDFunc = func(ctx context.Context, exec repositories.SQLExecutor, accountID int, teamID *int) error {
			gotPlayer, gotTeam = accountID, teamID
			return nil
		}

		svc := NewRelationshipService(repo, &fakeFollowRepo{})
		require.NoError(t, svc.AssignTeam(ctx, player.ID, team.ID))
		assert.Equal(t, player.ID, gotPlayer)
		require.NotNil(t, gotTeam)
		assert.Equal(t, team.ID, *gotTeam)
	})

	t.Run("re-assigning the same pair is a no-op", func(t *testing.T) {
		player := &models.Account{ID: 20, Role: models.RolePlayer, TeamID: intPtr(10)}
		repo := relationshipAccounts(team, player) // UpdateTeamIDFunc nil: a call would panic

		svc := NewRelationshipService(repo, &fakeFollowRepo{})
		assert.NoError(t, svc.AssignTeam(ctx, player.ID, team.ID))
	})

	t.Run("assigning to a player account fails", func(t *testing.T) {
		player := &models.Account{ID: 20, Role: models.RolePlayer}
		other := &models.Account{ID: 21, Role: models.RolePlayer}
		svc := NewRelationshipService(relationshipAccounts(player, other), &fakeFollowRepo{})
		assert.ErrorIs(t, svc.AssignTeam(ctx, player.ID, other.ID), ErrTeamNotFound)
	})
}

func TestRelationshipService_ClearTeam(t *testing.T) {
	ctx := context.Background()

	t.Run("detaches an assigned player", func(t *testing.T) {
		player := &models.Account{ID: 20, Role: models.RolePlayer, TeamID: intPtr(10)}
		repo := relationshipAccounts(player)
		var cleared bool
		repo.UpdateTeamIDFunc = func(ctx context.Context, exec repositories.SQLExecutor, accountID int, teamID *int) error {
			cleared = accountID == player.ID && teamID == nil
			return nil
		}

		svc := NewRelationshipService(repo, &fakeFollowRepo{})
		require.NoError(t, svc.ClearTeam(ctx, player.ID))
		assert.True(t, cleared)
	})

	t.Run("a teamless player is left alone", func(t *testing.T) {
		player := &models.Account{ID: 20, Role: models.RolePlayer}
		svc := NewRelationshipService(relationshipAccounts(player), &fakeFollowRepo{})
		assert.NoError(t, svc.ClearTeam(ctx, player.ID))
	})
}

func TestRelationshipService_RemoveFromRoster(t *testing.T) {
	ctx := context.Background()

	team := &models.Account{ID: 10, Role: models.RoleTeam}

	t.Run("removing a player from another roster is a no-op", func(t *testing.T) {
		player := &models.Account{ID: 20, Role: models.RolePlayer, TeamID: intPtr(99)}
		svc := NewRelationshipService(relationshipAccounts(team, player), &fakeFollowRepo{})
		assert.NoError(t, svc.RemoveFromRoster(ctx, team.ID, player.ID))
	})

	t.Run("removes a roster member", func(t *testing.T) {
		player := &models.Account{ID: 20, Role: models.RolePlayer, TeamID: intPtr(10)}
		repo := relationshipAccounts(team, player)
		var cleared bool
		repo.UpdateTeamIDFunc = func(ctx context.Context, exec repositories.SQLExecutor, accountID int, teamID *int) error {
			cleared = teamID == nil
			return nil
		}

		svc := NewRelationshipService(repo, &fakeFollowRepo{})
		require.NoError(t, svc.RemoveFromRoster(ctx, team.ID, player.ID))
		assert.True(t, cleared)
	})
}

func TestRelationshipService_Follow(t *testing.T) {
	ctx := context.Background()

	target := &models.Account{ID: 30, Role: models.RolePlayer}

	t.Run("self-follow is rejected", func(t *testing.T) {
		svc := NewRelationshipService(relationshipAccounts(target), &fakeFollowRepo{})
		assert.ErrorIs(t, svc.Follow(ctx, target.ID, target.ID), ErrSelfFollow)
	})

	t.Run("duplicate follows stay idempotent", func(t *testing.T) {
		calls := 0
		follows := &fakeFollowRepo{
			AddFunc: func(ctx context.Context, followerID, targetID int) (bool, error) {
				calls++
				return calls == 1, nil
			},
		}
		svc := NewRelationshipService(relationshipAccounts(target), follows)

		require.NoError(t, svc.Follow(ctx, 20, target.ID))
		require.NoError(t, svc.Follow(ctx, 20, target.ID))
		assert.Equal(t, 2, calls)
	})

	t.Run("following a missing account fails", func(t *testing.T) {
		svc := NewRelationshipService(relationshipAccounts(), &fakeFollowRepo{})
		assert.ErrorIs(t, svc.Follow(ctx, 20, 999), ErrAccountNotFound)
	})
}
