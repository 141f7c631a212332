package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type MatchStatus string

const (
	MatchScheduled MatchStatus = "scheduled"
	MatchOngoing   MatchStatus = "ongoing"
	MatchCompleted MatchStatus = "completed"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchScheduled, MatchOngoing, MatchCompleted:
		return true
	}
	return false
}

// PlayerPerformance holds one player's stat line inside a match scorecard.
type PlayerPerformance struct {
	PlayerID int     `json:"player_id"`
	Stats    StatMap `json:"stats"`
}

// PlayerPerformanceList is stored as a JSONB column on the match row.
type PlayerPerformanceList []PlayerPerformance

func (l PlayerPerformanceList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

func (l *PlayerPerformanceList) Scan(src interface{}) error {
	if src == nil {
		*l = PlayerPerformanceList{}
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into PlayerPerformanceList", src)
	}
	if len(data) == 0 {
		*l = PlayerPerformanceList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// TeamPerformance is one side of a match scorecard. Score is free-form
// ("200/5", "3") because its shape depends on the sport.
type TeamPerformance struct {
	TeamID      int                   `json:"team_id"`
	Score       *string               `json:"score,omitempty"`
	Overs       *string               `json:"overs,omitempty"`
	PlayerStats PlayerPerformanceList `json:"player_stats"`
}

// Match belongs to exactly one competition and always has exactly two
// participant teams, both of which must hold an approved registration.
type Match struct {
	ID            int             `json:"id" db:"id"`
	CompetitionID int             `json:"competition_id" db:"competition_id"`
	Name          string          `json:"match_name" db:"name"`
	Date          time.Time       `json:"date" db:"date"`
	Location      *string         `json:"location,omitempty" db:"location"`
	Status        MatchStatus     `json:"status" db:"status"`
	Team1         TeamPerformance `json:"team1"`
	Team2         TeamPerformance `json:"team2"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// RoomID names the realtime room that updates for this match are published to.
func (m *Match) RoomID() string {
	return fmt.Sprintf("match_%d", m.ID)
}
