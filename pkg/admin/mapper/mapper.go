package mapper

import (
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/pkg/admin/race"
)

// mapAll converts a slice with fn, never returning nil.
func mapAll[E any, R any](items []*E, fn func(*E) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}

// RoleToResponse converts entity to response DTO
func RoleToResponse(r *entity.Role, adminCount int64) dto.RoleResponse {
	return dto.RoleResponse{
		Id:          r.Id,
		Name:        r.Name,
		Description: r.Description,
		Permissions: r.Permissions,
		IsSystem:    r.IsSystem,
		AdminCount:  adminCount,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// AdminToResponse converts entity to response DTO. Role is included when loaded.
func AdminToResponse(a *entity.Admin) dto.AdminResponse {
	res := dto.AdminResponse{
		Id:          a.Id,
		Email:       a.Email,
		FullName:    a.FullName,
		RoleId:      a.RoleId,
		Status:      string(a.Status),
		LastLoginAt: a.LastLoginAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.Role != nil {
		role := RoleToResponse(a.Role, 0)
		res.Role = &role
	}
	return res
}

func AdminsToResponse(admins []*entity.Admin) []dto.AdminResponse {
	return mapAll(admins, AdminToResponse)
}

// UserToListResponse converts a player to the list DTO
func UserToListResponse(p *entity.Player) dto.UserListResponse {
	return dto.UserListResponse{
		Id:           p.Id,
		Username:     p.Username,
		Email:        p.Email,
		Status:       string(p.Status),
		TierId:       p.TierId,
		Balance:      p.Balance,
		Country:      p.Country,
		RegisteredAt: p.RegisteredAt,
		LastLoginAt:  p.LastLoginAt,
	}
}

func UsersToListResponse(players []*entity.Player) []dto.UserListResponse {
	return mapAll(players, UserToListResponse)
}

func UserToDetailResponse(p *entity.Player, tier *entity.Tier, totals *entity.PlayerTotals) dto.UserDetailResponse {
	res := dto.UserDetailResponse{
		UserListResponse: UserToListResponse(p),
		StatusReason:     p.StatusReason,
		UtmSource:        p.UtmSource,
		UtmCampaign:      p.UtmCampaign,
	}
	if tier != nil {
		t := TierToResponse(tier, 0)
		res.Tier = &t
	}
	if totals != nil {
		res.TotalDeposits = totals.Deposits
		res.TotalWithdrawals = totals.Withdrawals
		res.TotalBets = totals.Bets
		res.TotalWins = totals.Wins
	}
	return res
}

func TransactionToResponse(t *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		Id:        t.Id,
		UserId:    t.UserId,
		Username:  t.Username,
		Type:      string(t.Type),
		Amount:    t.Amount,
		Currency:  t.Currency,
		Status:    string(t.Status),
		Reference: t.Reference,
		Game:      t.Game,
		CreatedAt: t.CreatedAt,
	}
}

func TransactionsToResponse(txs []*entity.Transaction) []dto.TransactionResponse {
	return mapAll(txs, TransactionToResponse)
}

func BonusToResponse(b *entity.Bonus) dto.BonusResponse {
	return dto.BonusResponse{
		Id:                 b.Id,
		Code:               b.Code,
		Name:               b.Name,
		Description:        b.Description,
		Type:               string(b.Type),
		Reward:             b.Reward,
		WageringMultiplier: b.WageringMultiplier,
		MinDeposit:         b.MinDeposit,
		MaxClaimsPerUser:   b.MaxClaimsPerUser,
		Status:             string(b.Status),
		StartsAt:           b.StartsAt,
		EndsAt:             b.EndsAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func BonusesToResponse(bonuses []*entity.Bonus) []dto.BonusResponse {
	return mapAll(bonuses, BonusToResponse)
}

func CashbackToResponse(p *entity.CashbackProgram) dto.CashbackResponse {
	tiers := make([]dto.CashbackTierPayload, 0, len(p.Tiers))
	for _, t := range p.Tiers {
		tiers = append(tiers, dto.CashbackTierPayload{
			MinLoss:    t.MinLoss,
			MaxLoss:    t.MaxLoss,
			Percentage: t.Percentage,
			MaxPayout:  t.MaxPayout,
		})
	}
	return dto.CashbackResponse{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Period:      string(p.Period),
		Tiers:       tiers,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func CashbacksToResponse(programs []*entity.CashbackProgram) []dto.CashbackResponse {
	return mapAll(programs, CashbackToResponse)
}

func TierToResponse(t *entity.Tier, playerCount int64) dto.TierResponse {
	benefits := t.Benefits
	if benefits == nil {
		benefits = []string{}
	}
	return dto.TierResponse{
		Id:               t.Id,
		Level:            t.Level,
		Name:             t.Name,
		MinPoints:        t.MinPoints,
		CashbackBonusPct: t.CashbackBonusPct,
		WithdrawalLimit:  t.WithdrawalLimit,
		Benefits:         benefits,
		Color:            t.Color,
		PlayerCount:      playerCount,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func PromotionToResponse(p *entity.Promotion, now time.Time) dto.PromotionResponse {
	return dto.PromotionResponse{
		Id:        p.Id,
		Title:     p.Title,
		Slug:      p.Slug,
		Summary:   p.Summary,
		Content:   p.Content,
		ImageURL:  p.ImageURL,
		BonusId:   p.BonusId,
		StartsAt:  p.StartsAt,
		EndsAt:    p.EndsAt,
		Status:    string(p.Status),
		SortOrder: p.SortOrder,
		IsLive:    p.IsLive(now),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func PromotionsToResponse(promotions []*entity.Promotion, now time.Time) []dto.PromotionResponse {
	return mapAll(promotions, func(p *entity.Promotion) dto.PromotionResponse {
		return PromotionToResponse(p, now)
	})
}

func BannerToResponse(b *entity.Banner) dto.BannerResponse {
	return dto.BannerResponse{
		Id:        b.Id,
		Title:     b.Title,
		ImageURL:  b.ImageURL,
		LinkURL:   b.LinkURL,
		Placement: string(b.Placement),
		SortOrder: b.SortOrder,
		IsActive:  b.IsActive,
		StartsAt:  b.StartsAt,
		EndsAt:    b.EndsAt,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func BannersToResponse(banners []*entity.Banner) []dto.BannerResponse {
	return mapAll(banners, BannerToResponse)
}

// ApiKeyToResponse never includes the hash.
func ApiKeyToResponse(k *entity.ApiKey) dto.ApiKeyResponse {
	return dto.ApiKeyResponse{
		Id:         k.Id,
		Name:       k.Name,
		Prefix:     k.Prefix,
		Scopes:     k.Scopes,
		CreatedBy:  k.CreatedBy,
		LastUsedAt: k.LastUsedAt,
		ExpiresAt:  k.ExpiresAt,
		RevokedAt:  k.RevokedAt,
		CreatedAt:  k.CreatedAt,
	}
}

func ApiKeysToResponse(keys []*entity.ApiKey) []dto.ApiKeyResponse {
	return mapAll(keys, ApiKeyToResponse)
}

func RaceToResponse(r *entity.WagerRace, now time.Time) dto.RaceResponse {
	prizes := make([]dto.RacePrizePayload, 0, len(r.Prizes))
	for _, p := range r.Prizes {
		prizes = append(prizes, dto.RacePrizePayload{Rank: p.Rank, Amount: p.Amount})
	}
	games := r.GameFilter
	if games == nil {
		games = []string{}
	}
	return dto.RaceResponse{
		Id:          r.Id,
		Name:        r.Name,
		Description: r.Description,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
		MinWager:    r.MinWager,
		Prizes:      prizes,
		PrizePool:   race.PrizePool(r.Prizes),
		GameFilter:  games,
		Cancelled:   r.Cancelled,
		Status:      string(r.StatusAt(now)),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func RacesToResponse(races []*entity.WagerRace, now time.Time) []dto.RaceResponse {
	return mapAll(races, func(r *entity.WagerRace) dto.RaceResponse {
		return RaceToResponse(r, now)
	})
}

func TriviaToResponse(q *entity.TriviaQuestion) dto.TriviaResponse {
	return dto.TriviaResponse{
		Id:           q.Id,
		Question:     q.Question,
		Options:      q.Options,
		CorrectIndex: q.CorrectIndex,
		Category:     q.Category,
		Difficulty:   string(q.Difficulty),
		RewardAmount: q.RewardAmount,
		IsActive:     q.IsActive,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

func TriviasToResponse(questions []*entity.TriviaQuestion) []dto.TriviaResponse {
	return mapAll(questions, TriviaToResponse)
}

func UtmEventToResponse(e *entity.UtmEvent) dto.UtmEventResponse {
	return dto.UtmEventResponse{
		Id:          e.Id,
		Event:       string(e.Event),
		UtmSource:   e.UtmSource,
		UtmMedium:   e.UtmMedium,
		UtmCampaign: e.UtmCampaign,
		UtmContent:  e.UtmContent,
		UtmTerm:     e.UtmTerm,
		VisitorId:   e.VisitorId,
		UserId:      e.UserId,
		Amount:      e.Amount,
		OccurredAt:  e.OccurredAt,
	}
}

func UtmEventsToResponse(events []*entity.UtmEvent) []dto.UtmEventResponse {
	return mapAll(events, UtmEventToResponse)
}

func AuditLogToResponse(l *entity.AuditLog) dto.AuditLogResponse {
	return dto.AuditLogResponse{
		Id:         l.Id,
		AdminId:    l.AdminId,
		AdminEmail: l.AdminEmail,
		Action:     l.Action,
		EntityType: l.EntityType,
		EntityId:   l.EntityId,
		Details:    l.Details,
		IpAddress:  l.IpAddress,
		CreatedAt:  l.CreatedAt,
	}
}

func AuditLogsToResponse(logs []*entity.AuditLog) []dto.AuditLogResponse {
	return mapAll(logs, AuditLogToResponse)
}

func UploadToResponse(u *entity.Upload) dto.UploadResponse {
	return dto.UploadResponse{
		Id:           u.Id,
		Key:          u.Key,
		URL:          u.URL,
		OriginalName: u.OriginalName,
		ContentType:  u.ContentType,
		Size:         u.Size,
		CreatedAt:    u.CreatedAt,
	}
}
