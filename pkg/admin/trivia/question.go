package trivia

import (
	"fmt"
	"strings"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/pkg/admin/money"
)

const (
	MinOptions = 2
	MaxOptions = 6
)

// ValidateQuestion checks a question beyond its struct tags: option count,
// blank or duplicate options (case-insensitive) and the answer index.
func ValidateQuestion(req dto.TriviaRequest) error {
	if err := serverutils.Validate(req); err != nil {
		return err
	}

	fields := map[string]string{}
	if strings.TrimSpace(req.Question) == "" {
		fields["question"] = "must not be blank"
	}

	n := len(req.Options)
	if n < MinOptions || n > MaxOptions {
		fields["options"] = fmt.Sprintf("must have between %d and %d options", MinOptions, MaxOptions)
	}

	seen := map[string]int{}
	for i, opt := range req.Options {
		key := strings.ToLower(strings.TrimSpace(opt))
		if key == "" {
			fields[fmt.Sprintf("options[%d]", i)] = "must not be blank"
			continue
		}
		if first, dup := seen[key]; dup {
			fields[fmt.Sprintf("options[%d]", i)] = fmt.Sprintf("duplicates options[%d]", first)
			continue
		}
		seen[key] = i
	}

	if req.CorrectIndex < 0 || req.CorrectIndex >= n {
		fields["correct_index"] = "must point at one of the options"
	}

	if len(fields) > 0 {
		return apperror.Validation(fields)
	}
	return nil
}

// apply copies a validated request onto q.
func apply(q *entity.TriviaQuestion, req dto.TriviaRequest) {
	options := make([]string, len(req.Options))
	for i, opt := range req.Options {
		options[i] = strings.TrimSpace(opt)
	}
	q.Question = strings.TrimSpace(req.Question)
	q.Options = options
	q.CorrectIndex = req.CorrectIndex
	q.Category = strings.TrimSpace(req.Category)
	q.Difficulty = entity.TriviaDifficulty(req.Difficulty)
	q.RewardAmount = money.RoundCents(req.RewardAmount)
	if req.IsActive != nil {
		q.IsActive = *req.IsActive
	}
}
