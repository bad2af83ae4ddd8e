package transaction

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	userId := uuid.New()
	f, err := ParseFilter(dto.TransactionListRequest{
		UserId:    userId.String(),
		Type:      "deposit",
		Status:    "completed",
		From:      "2026-03-01",
		To:        "2026-03-31",
		MinAmount: "10",
		MaxAmount: "500.5",
	})
	require.NoError(t, err)
	assert.Equal(t, userId, *f.UserId)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), *f.To)
	assert.Equal(t, 500.5, *f.MaxAmount)
	assert.Len(t, Specs(f), 6)

	empty, err := ParseFilter(dto.TransactionListRequest{})
	require.NoError(t, err)
	assert.Nil(t, empty.UserId)
	assert.Len(t, Specs(empty), 1)
}

func TestParseFilterCollectsAllErrors(t *testing.T) {
	_, err := ParseFilter(dto.TransactionListRequest{
		UserId:    "nope",
		Type:      "refund",
		Status:    "done",
		From:      "2026-03-10",
		To:        "2026-03-01",
		MinAmount: "100",
		MaxAmount: "10",
	})
	require.ErrorIs(t, err, apperror.ErrValidation)
	fields := apperror.Fields(err)
	for _, k := range []string{"user_id", "type", "status", "to", "max_amount"} {
		assert.Contains(t, fields, k)
	}

	_, err = ParseFilter(dto.TransactionListRequest{MinAmount: "ten"})
	assert.Contains(t, apperror.Fields(err), "min_amount")
}

func TestWriteCSV(t *testing.T) {
	created := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	tx := &entity.Transaction{
		Id:        uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		UserId:    uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Username:  "lucky, \"7\"",
		Type:      entity.TransactionBet,
		Amount:    12.5,
		Currency:  "EUR",
		Status:    entity.TransactionCompleted,
		Game:      "starburst",
		CreatedAt: created,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []*entity.Transaction{tx}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(csvHeader, ","), lines[0])
	assert.Equal(t,
		`11111111-1111-1111-1111-111111111111,22222222-2222-2222-2222-222222222222,"lucky, ""7""",bet,12.50,EUR,completed,,starburst,2026-03-05T10:00:00Z`,
		lines[1])
}

func TestWriteCSVNeutralisesFormulas(t *testing.T) {
	tx := &entity.Transaction{
		Username:  "=HYPERLINK(\"http://evil\")",
		Type:      entity.TransactionDeposit,
		Amount:    -5,
		Status:    entity.TransactionCompleted,
		Reference: "@SUM(A1)",
		Game:      "+cmd",
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []*entity.Transaction{tx}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	row := records[1]
	assert.Equal(t, `'=HYPERLINK("http://evil")`, row[2])
	assert.Equal(t, "-5.00", row[4], "numeric columns are left alone")
	assert.Equal(t, "'@SUM(A1)", row[7])
	assert.Equal(t, "'+cmd", row[8])
}
