package serverutils

import (
	"strconv"
	"strings"
	"time"

	"casino-admin-be/internal/pkg/apperror"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

// ParseTimeBound reads an RFC3339 timestamp or a YYYY-MM-DD date. When
// inclusiveEnd is set a bare date means the end of that day. Empty gives nil.
func ParseTimeBound(field, value string, inclusiveEnd bool) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, apperror.Field(field, "must be YYYY-MM-DD or RFC3339")
	}
	if inclusiveEnd {
		t = t.AddDate(0, 0, 1)
	}
	return &t, nil
}

func ParseFloatParam(field, value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, apperror.Field(field, "must be a number")
	}
	return &f, nil
}

func ParseUUIDParam(field, value string) (*uuid.UUID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, apperror.Field(field, "must be a valid UUID")
	}
	return &id, nil
}
