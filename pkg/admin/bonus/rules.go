package bonus

import (
	"regexp"
	"strings"
	"time"

	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

// NormalizeCode upper-cases and checks a bonus code.
func NormalizeCode(code string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if !codePattern.MatchString(c) {
		return "", apperror.Field("code", "must be 3-32 characters of A-Z, 0-9, _ or -")
	}
	return c, nil
}

func ValidateWindow(startsAt time.Time, endsAt *time.Time) error {
	if endsAt != nil && !endsAt.After(startsAt) {
		return apperror.Field("ends_at", "must be after starts_at")
	}
	return nil
}

var transitions = map[entity.BonusStatus][]entity.BonusStatus{
	entity.BonusDraft:   {entity.BonusActive, entity.BonusExpired},
	entity.BonusActive:  {entity.BonusPaused, entity.BonusExpired},
	entity.BonusPaused:  {entity.BonusActive, entity.BonusExpired},
	entity.BonusExpired: {},
}

// CanTransition reports whether a bonus may move from one status to another.
// Expired is terminal.
func CanTransition(from, to entity.BonusStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
