package entity

import (
	"time"

	"github.com/google/uuid"
)

type RaceStatus string

const (
	RaceScheduled RaceStatus = "scheduled"
	RaceRunning   RaceStatus = "running"
	RaceFinished  RaceStatus = "finished"
	RaceCancelled RaceStatus = "cancelled"
)

type RacePrize struct {
	Rank   int
	Amount float64
}

type WagerRace struct {
	Id          uuid.UUID
	Name        string
	Description string
	StartsAt    time.Time
	EndsAt      time.Time
	MinWager    float64
	Prizes      []RacePrize
	GameFilter  []string
	Cancelled   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r *WagerRace) StatusAt(now time.Time) RaceStatus {
	switch {
	case r.Cancelled:
		return RaceCancelled
	case now.Before(r.StartsAt):
		return RaceScheduled
	case now.Before(r.EndsAt):
		return RaceRunning
	default:
		return RaceFinished
	}
}

// WagerTotal is a per-player sum of bets inside a race window.
type WagerTotal struct {
	UserId   uuid.UUID
	Username string
	Total    float64
}
