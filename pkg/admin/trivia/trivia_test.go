package trivia

import (
	"testing"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuestion() dto.TriviaRequest {
	return dto.TriviaRequest{
		Question:     "Which game uses a shoe?",
		Options:      []string{"Baccarat", "Roulette", "Keno"},
		CorrectIndex: 0,
		Difficulty:   "easy",
		RewardAmount: 1.5,
	}
}

func TestValidateQuestion(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.TriviaRequest)
		field  string
	}{
		{"one option", func(r *dto.TriviaRequest) { r.Options = []string{"A"} }, "options"},
		{"seven options", func(r *dto.TriviaRequest) { r.Options = []string{"a", "b", "c", "d", "e", "f", "g"} }, "options"},
		{"blank option", func(r *dto.TriviaRequest) { r.Options = []string{"A", "  "} }, "options[1]"},
		{"duplicate option", func(r *dto.TriviaRequest) { r.Options = []string{"Yes", "No", " yes"} }, "options[2]"},
		{"index past end", func(r *dto.TriviaRequest) { r.CorrectIndex = 3 }, "correct_index"},
		{"blank question", func(r *dto.TriviaRequest) { r.Question = "   " }, "question"},
		{"bad difficulty", func(r *dto.TriviaRequest) { r.Difficulty = "extreme" }, "difficulty"},
		{"negative reward", func(r *dto.TriviaRequest) { r.RewardAmount = -1 }, "reward_amount"},
	}

	require.NoError(t, ValidateQuestion(validQuestion()))

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validQuestion()
			tc.mutate(&req)
			err := ValidateQuestion(req)
			require.ErrorIs(t, err, apperror.ErrValidation)
			assert.Contains(t, apperror.Fields(err), tc.field)
		})
	}
}

func TestApplyTrimsAndRounds(t *testing.T) {
	req := validQuestion()
	req.Options = []string{" Baccarat ", "Roulette"}
	req.RewardAmount = 2.499
	active := false
	req.IsActive = &active

	q := &entity.TriviaQuestion{IsActive: true}
	apply(q, req)
	assert.Equal(t, []string{"Baccarat", "Roulette"}, q.Options)
	assert.Equal(t, 2.5, q.RewardAmount)
	assert.False(t, q.IsActive)
	assert.Equal(t, entity.TriviaEasy, q.Difficulty)
}

func TestParseImportFile(t *testing.T) {
	file, err := ParseImportFile([]byte(`{"questions":[
		{"question":"Q1","options":["a","b"],"correct_index":1,"difficulty":"hard"},
		{"question":"Q2","options":["a"],"correct_index":0,"difficulty":"easy"}
	]}`))
	require.NoError(t, err)
	require.Len(t, file.Questions, 2)
	assert.Equal(t, 1, file.Questions[0].CorrectIndex)

	_, err = ParseImportFile([]byte(`not json`))
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = ParseImportFile([]byte(`{"questions":[]}`))
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = ParseImportFile([]byte(`{"questions":[{"question":"Q","options":["a","b"],"correct_index":"0","difficulty":"easy"}]}`))
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Contains(t, apperror.Fields(err)["file"], "correct_index")

	_, err = ParseImportFile([]byte(`{"questions":[{"question":"Q","options":["a","b"],"correct_index":0,"difficulty":"easy","answer":"a"}]}`))
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestDescribe(t *testing.T) {
	err := apperror.Validation(map[string]string{"options": "too few"})
	assert.Equal(t, "options: too few", describe(err))
}
