package entity

import (
	"time"

	"github.com/google/uuid"
)

type UtmEventType string

const (
	UtmVisit        UtmEventType = "visit"
	UtmRegister     UtmEventType = "register"
	UtmFirstDeposit UtmEventType = "first_deposit"
	UtmDeposit      UtmEventType = "deposit"
)

type UtmEvent struct {
	Id          uuid.UUID
	Event       UtmEventType
	UtmSource   string
	UtmMedium   string
	UtmCampaign string
	UtmContent  string
	UtmTerm     string
	VisitorId   string
	UserId      *uuid.UUID
	Amount      float64
	OccurredAt  time.Time
}

// UtmGroupCount is one (group key, event) bucket of an aggregate query.
type UtmGroupCount struct {
	Key    string
	Event  UtmEventType
	Count  int64
	Amount float64
}

// UtmDailyCount is the number of events of one type on one UTC day.
type UtmDailyCount struct {
	Day   string
	Event UtmEventType
	Count int64
}
