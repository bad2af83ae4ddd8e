package testutil

import (
	"testing"
	"time"

	"casino-admin-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func CreateRole(t *testing.T, db *gorm.DB, name string, perms ...string) *model.Role {
	t.Helper()
	role := &model.Role{Name: name, Permissions: datatypes.JSONSlice[string](perms)}
	require.NoError(t, db.Create(role).Error)
	return role
}

func CreateAdmin(t *testing.T, db *gorm.DB, email, password string, roleId uuid.UUID) *model.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &model.Admin{Email: email, FullName: email, PasswordHash: string(hash), RoleId: roleId, Status: "active"}
	require.NoError(t, db.Create(admin).Error)
	return admin
}

func CreatePlayer(t *testing.T, db *gorm.DB, username string, tierId *uuid.UUID) *model.Player {
	t.Helper()
	p := &model.Player{
		Username:     username,
		Email:        username + "@example.com",
		Status:       "active",
		TierId:       tierId,
		Country:      "MT",
		RegisteredAt: time.Now().UTC().Add(-48 * time.Hour),
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func CreateTransaction(t *testing.T, db *gorm.DB, userId uuid.UUID, txType string, amount float64, at time.Time) *model.Transaction {
	t.Helper()
	tx := &model.Transaction{
		UserId:    userId,
		Type:      txType,
		Amount:    amount,
		Currency:  "EUR",
		Status:    "completed",
		CreatedAt: at.UTC(),
	}
	require.NoError(t, db.Create(tx).Error)
	return tx
}

func CreateTier(t *testing.T, db *gorm.DB, level int, name string, minPoints int64) *model.Tier {
	t.Helper()
	tier := &model.Tier{Level: level, Name: name, MinPoints: minPoints, Benefits: datatypes.JSONSlice[string]{}}
	require.NoError(t, db.Create(tier).Error)
	return tier
}
