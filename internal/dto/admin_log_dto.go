package dto

import (
	"time"

	"github.com/google/uuid"
)

type LogListResponse struct {
	Id        string    `json:"id"`
	Level     string    `json:"level"`
	Module    string    `json:"module"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type LogDetailResponse struct {
	LogListResponse
	Caller  string                 `json:"caller"`
	Details map[string]interface{} `json:"details"`
}

type AuditLogListRequest struct {
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
	EntityType string `query:"entity_type"`
	AdminId    string `query:"admin_id"`
	Action     string `query:"action"`
}

type AuditLogResponse struct {
	Id         uuid.UUID              `json:"id"`
	AdminId    *uuid.UUID             `json:"admin_id"`
	AdminEmail string                 `json:"admin_email"`
	Action     string                 `json:"action"`
	EntityType string                 `json:"entity_type"`
	EntityId   string                 `json:"entity_id"`
	Details    map[string]interface{} `json:"details"`
	IpAddress  string                 `json:"ip_address"`
	CreatedAt  time.Time              `json:"created_at"`
}

// AuditMessage is the payload carried on the in-process audit topic and
// pushed to the websocket activity feed.
type AuditMessage struct {
	AdminId    *uuid.UUID             `json:"admin_id,omitempty"`
	AdminEmail string                 `json:"admin_email"`
	Action     string                 `json:"action"`
	EntityType string                 `json:"entity_type"`
	EntityId   string                 `json:"entity_id"`
	Details    map[string]interface{} `json:"details,omitempty"`
	IpAddress  string                 `json:"ip_address"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// --- Dashboard ---

type DashboardResponse struct {
	TotalPlayers       int64                 `json:"total_players"`
	ActivePlayers      int64                 `json:"active_players"`
	NewPlayersToday    int64                 `json:"new_players_today"`
	TotalDeposits      float64               `json:"total_deposits"`
	TotalWithdrawals   float64               `json:"total_withdrawals"`
	GGR                float64               `json:"ggr"`
	ActiveBonuses      int64                 `json:"active_bonuses"`
	RunningRaces       int64                 `json:"running_races"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
	GeneratedAt        time.Time             `json:"generated_at"`
}

// --- Uploads ---

type UploadResponse struct {
	Id           uuid.UUID `json:"id"`
	Key          string    `json:"key"`
	URL          string    `json:"url"`
	OriginalName string    `json:"original_name"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
}
