package bonus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/pkg/admin/money"
)

// Reward is the decoded, validated reward payload of one bonus type.
type Reward interface {
	// Credit is the amount credited for a qualifying deposit.
	Credit(deposit float64) float64
}

type DepositMatchReward struct {
	Percentage float64 `json:"percentage" validate:"gt=0,lte=1000"`
	MaxAmount  float64 `json:"max_amount" validate:"gt=0"`
}

func (r *DepositMatchReward) Credit(deposit float64) float64 {
	return money.RoundCents(math.Min(deposit*r.Percentage/100, r.MaxAmount))
}

type FreeSpinsReward struct {
	Spins     int      `json:"spins" validate:"gte=1"`
	SpinValue float64  `json:"spin_value" validate:"gt=0"`
	Games     []string `json:"games" validate:"min=1,dive,required"`
}

// Credit is the face value of the spins.
func (r *FreeSpinsReward) Credit(float64) float64 {
	return money.RoundCents(float64(r.Spins) * r.SpinValue)
}

type FixedCashReward struct {
	Amount float64 `json:"amount" validate:"gt=0"`
}

func (r *FixedCashReward) Credit(float64) float64 {
	return money.RoundCents(r.Amount)
}

type NoDepositReward struct {
	Amount     float64 `json:"amount" validate:"gt=0"`
	MaxCashout float64 `json:"max_cashout" validate:"gtefield=Amount"`
}

func (r *NoDepositReward) Credit(float64) float64 {
	return money.RoundCents(r.Amount)
}

type ReloadReward struct {
	Percentage float64 `json:"percentage" validate:"gt=0,lte=1000"`
	MaxAmount  float64 `json:"max_amount" validate:"gt=0"`
	Weekdays   []int   `json:"weekdays" validate:"min=1,unique,dive,gte=0,lte=6"`
}

func (r *ReloadReward) Credit(deposit float64) float64 {
	return money.RoundCents(math.Min(deposit*r.Percentage/100, r.MaxAmount))
}

// AppliesOn reports whether the reload runs on the weekday of at.
func (r *ReloadReward) AppliesOn(at time.Time) bool {
	day := int(at.UTC().Weekday())
	for _, d := range r.Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

func newReward(t entity.BonusType) (Reward, error) {
	switch t {
	case entity.BonusDepositMatch:
		return &DepositMatchReward{}, nil
	case entity.BonusFreeSpins:
		return &FreeSpinsReward{}, nil
	case entity.BonusFixedCash:
		return &FixedCashReward{}, nil
	case entity.BonusNoDeposit:
		return &NoDepositReward{}, nil
	case entity.BonusReload:
		return &ReloadReward{}, nil
	}
	return nil, apperror.Field("type", fmt.Sprintf("unknown bonus type %q", t))
}

// ParseReward decodes raw strictly into the shape of t and validates it.
// Validation errors are keyed "reward.<field>".
func ParseReward(t entity.BonusType, raw json.RawMessage) (Reward, error) {
	reward, err := newReward(t)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, apperror.Field("reward", "is required")
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	if err := dec.Decode(reward); err != nil {
		return nil, apperror.Field("reward", fmt.Sprintf("invalid %s reward: %s", t, err.Error()))
	}
	if dec.More() {
		return nil, apperror.Field("reward", "unexpected data after reward object")
	}

	if err := serverutils.Validate(reward); err != nil {
		fields := apperror.Fields(err)
		if fields == nil {
			return nil, err
		}
		prefixed := make(map[string]string, len(fields))
		for k, v := range fields {
			prefixed["reward."+k] = v
		}
		return nil, apperror.Validation(prefixed)
	}
	return reward, nil
}

// NormalizeReward validates raw and returns its canonical encoding.
func NormalizeReward(t entity.BonusType, raw json.RawMessage) (json.RawMessage, error) {
	reward, err := ParseReward(t, raw)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(reward)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EstimateReward returns what a deposit of the given size would be credited
// under b at time at. Deposit-based types require deposit >= MinDeposit; reload
// bonuses also require a matching weekday. No-deposit bonuses always qualify.
func EstimateReward(b *entity.Bonus, deposit float64, at time.Time) (credited float64, eligible bool, err error) {
	reward, err := ParseReward(b.Type, b.Reward)
	if err != nil {
		return 0, false, err
	}

	if b.Type != entity.BonusNoDeposit && deposit < b.MinDeposit {
		return 0, false, nil
	}
	if reload, ok := reward.(*ReloadReward); ok && !reload.AppliesOn(at) {
		return 0, false, nil
	}
	return reward.Credit(deposit), true, nil
}
