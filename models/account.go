package models

import "time"

// AccountRole distinguishes the three kinds of profiles in the network.
type AccountRole string

const (
	RolePlayer    AccountRole = "player"
	RoleTeam      AccountRole = "team"
	RoleOrganizer AccountRole = "organizer"
)

func (r AccountRole) Valid() bool {
	switch r {
	case RolePlayer, RoleTeam, RoleOrganizer:
		return true
	}
	return false
}

// Account represents a player, team or organizer profile. TeamID is the
// single source of truth for roster membership: a team's roster is the set of
// player accounts whose TeamID points at it.
type Account struct {
	ID           int         `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	Email        string      `json:"email" db:"email"`
	PasswordHash string      `json:"-" db:"password_hash"`
	Role         AccountRole `json:"role" db:"role"`
	Sport        string      `json:"sport" db:"sport"`
	SportRole    *string     `json:"sport_role,omitempty" db:"sport_role"`
	Bio          *string     `json:"bio,omitempty" db:"bio"`
	TeamID       *int        `json:"team_id,omitempty" db:"team_id"`
	OverallStats StatMap     `json:"overall_stats,omitempty" db:"overall_stats"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`

	AvatarKey *string `json:"-" db:"avatar_key"`
	AvatarURL *string `json:"avatar_url,omitempty" db:"-"`

	Team   *Account  `json:"team,omitempty" db:"-"`
	Roster []Account `json:"roster,omitempty" db:"-"`
}

// ReviewStatus is the shared approval vocabulary for competition
// registrations and roster join requests.
type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"
	StatusApproved ReviewStatus = "approved"
	StatusRejected ReviewStatus = "rejected"
)

func (s ReviewStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Decided reports whether the status is a reviewer verdict (not pending).
func (s ReviewStatus) Decided() bool {
	return s == StatusApproved || s == StatusRejected
}

// JoinRequest is a player's application onto a team's roster, owned by the
// team account.
type JoinRequest struct {
	ID        int          `json:"id" db:"id"`
	TeamID    int          `json:"team_id" db:"team_id"`
	PlayerID  int          `json:"player_id" db:"player_id"`
	Status    ReviewStatus `json:"status" db:"status"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`

	Player *Account `json:"player,omitempty" db:"-"`
}

// MatchStat is one append-only per-match stat record on a player profile.
type MatchStat struct {
	ID        int       `json:"id" db:"id"`
	AccountID int       `json:"account_id" db:"account_id"`
	MatchDate time.Time `json:"match_date" db:"match_date"`
	Opponent  string    `json:"opponent" db:"opponent"`
	Sport     string    `json:"sport" db:"sport"`
	Stats     StatMap   `json:"stats" db:"stats"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
