package models

import "time"

// Competition is a tournament owned by one organizer account.
type Competition struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Sport       string    `json:"sport" db:"sport"`
	OrganizerID int       `json:"organizer_id" db:"organizer_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	Organizer     *Account       `json:"organizer,omitempty" db:"-"`
	Registrations []Registration `json:"registrations,omitempty" db:"-"`
	Matches       []Match        `json:"matches,omitempty" db:"-"`
}

// Registration is one team's sign-up entry in a competition. At most one row
// per (competition, team) pair ever exists, regardless of status.
type Registration struct {
	ID            int          `json:"id" db:"id"`
	CompetitionID int          `json:"competition_id" db:"competition_id"`
	TeamID        int          `json:"team_id" db:"team_id"`
	Status        ReviewStatus `json:"status" db:"status"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`

	Team *Account `json:"team,omitempty" db:"-"`
}
