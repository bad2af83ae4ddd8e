package dto

import (
	"time"

	"github.com/google/uuid"
)

type UtmEventRequest struct {
	Event       string     `json:"event" validate:"required,oneof=visit register first_deposit deposit"`
	UtmSource   string     `json:"utm_source" validate:"max=100"`
	UtmMedium   string     `json:"utm_medium" validate:"max=100"`
	UtmCampaign string     `json:"utm_campaign" validate:"max=100"`
	UtmContent  string     `json:"utm_content" validate:"max=255"`
	UtmTerm     string     `json:"utm_term" validate:"max=255"`
	VisitorId   string     `json:"visitor_id" validate:"max=100"`
	UserId      *uuid.UUID `json:"user_id,omitempty"`
	Amount      float64    `json:"amount" validate:"gte=0"`
	OccurredAt  *time.Time `json:"occurred_at,omitempty"`
}

type UtmEventResponse struct {
	Id          uuid.UUID  `json:"id"`
	Event       string     `json:"event"`
	UtmSource   string     `json:"utm_source"`
	UtmMedium   string     `json:"utm_medium"`
	UtmCampaign string     `json:"utm_campaign"`
	UtmContent  string     `json:"utm_content"`
	UtmTerm     string     `json:"utm_term"`
	VisitorId   string     `json:"visitor_id"`
	UserId      *uuid.UUID `json:"user_id"`
	Amount      float64    `json:"amount"`
	OccurredAt  time.Time  `json:"occurred_at"`
}

type UtmEventListRequest struct {
	Page        int    `query:"page"`
	Limit       int    `query:"limit"`
	Event       string `query:"event"`
	UtmSource   string `query:"utm_source"`
	UtmCampaign string `query:"utm_campaign"`
	From        string `query:"from"`
	To          string `query:"to"`
}

type UtmReportRequest struct {
	From    string `query:"from"`
	To      string `query:"to"`
	GroupBy string `query:"group_by"`
}

type FunnelRow struct {
	Key              string  `json:"key"`
	Visits           int64   `json:"visits"`
	Registrations    int64   `json:"registrations"`
	FirstDeposits    int64   `json:"first_deposits"`
	DepositAmount    float64 `json:"deposit_amount"`
	RegistrationRate float64 `json:"registration_rate"`
	DepositRate      float64 `json:"deposit_rate"`
}

type FunnelResponse struct {
	From    time.Time   `json:"from"`
	To      time.Time   `json:"to"`
	GroupBy string      `json:"group_by"`
	Rows    []FunnelRow `json:"rows"`
	Totals  FunnelRow   `json:"totals"`
}

type TimeseriesPoint struct {
	Date          string `json:"date"`
	Visits        int64  `json:"visits"`
	Registrations int64  `json:"registrations"`
	FirstDeposits int64  `json:"first_deposits"`
	Deposits      int64  `json:"deposits"`
}

type TimeseriesResponse struct {
	From   time.Time         `json:"from"`
	To     time.Time         `json:"to"`
	Points []TimeseriesPoint `json:"points"`
}
