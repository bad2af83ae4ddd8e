package main

import (
	_ "embed"
	"fmt"
	"os"

	"casino-admin-be/internal/config"
	"casino-admin-be/internal/model"
	"casino-admin-be/pkg/database"

	"github.com/fatih/color"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

//go:embed fixtures.yaml
var fixtureFile []byte

type fixtures struct {
	Roles []struct {
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		System      bool     `yaml:"system"`
		Permissions []string `yaml:"permissions"`
	} `yaml:"roles"`
	Tiers []struct {
		Level            int      `yaml:"level"`
		Name             string   `yaml:"name"`
		MinPoints        int64    `yaml:"min_points"`
		CashbackBonusPct float64  `yaml:"cashback_bonus_pct"`
		WithdrawalLimit  float64  `yaml:"withdrawal_limit"`
		Benefits         []string `yaml:"benefits"`
		Color            string   `yaml:"color"`
	} `yaml:"tiers"`
	Players []struct {
		Username    string `yaml:"username"`
		Email       string `yaml:"email"`
		Country     string `yaml:"country"`
		UtmSource   string `yaml:"utm_source"`
		UtmCampaign string `yaml:"utm_campaign"`
		TierLevel   int    `yaml:"tier_level"`
	} `yaml:"players"`
}

var (
	ok   = color.New(color.FgGreen).PrintfFunc()
	skip = color.New(color.FgYellow).PrintfFunc()
	fail = color.New(color.FgRed, color.Bold).PrintfFunc()
)

func main() {
	cfg := config.Load()

	var fx fixtures
	if err := yaml.Unmarshal(fixtureFile, &fx); err != nil {
		fail("Invalid fixture file: %v\n", err)
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, true)
	if err != nil {
		fail("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		roles, err := seedRoles(tx, fx)
		if err != nil {
			return err
		}
		if err := seedAdmin(tx, cfg.Seed, roles["Super Admin"]); err != nil {
			return err
		}
		tiers, err := seedTiers(tx, fx)
		if err != nil {
			return err
		}
		return seedPlayers(tx, fx, tiers)
	})
	if err != nil {
		fail("Seeding failed: %v\n", err)
		os.Exit(1)
	}
	color.New(color.FgGreen, color.Bold).Println("Seeding completed")
}

func seedRoles(tx *gorm.DB, fx fixtures) (map[string]*model.Role, error) {
	out := make(map[string]*model.Role, len(fx.Roles))
	for _, r := range fx.Roles {
		role := &model.Role{}
		res := tx.Where(model.Role{Name: r.Name}).Attrs(model.Role{
			Description: r.Description,
			Permissions: datatypes.JSONSlice[string](r.Permissions),
			IsSystem:    r.System,
		}).FirstOrCreate(role)
		if res.Error != nil {
			return nil, fmt.Errorf("role %s: %w", r.Name, res.Error)
		}
		report(res.RowsAffected, "role", r.Name)
		out[r.Name] = role
	}
	return out, nil
}

func seedAdmin(tx *gorm.DB, seed config.SeedConfig, role *model.Role) error {
	if role == nil {
		return fmt.Errorf("fixtures define no Super Admin role")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &model.Admin{}
	res := tx.Where(model.Admin{Email: seed.AdminEmail}).Attrs(model.Admin{
		FullName:     "Administrator",
		PasswordHash: string(hash),
		RoleId:       role.Id,
		Status:       "active",
	}).FirstOrCreate(admin)
	if res.Error != nil {
		return fmt.Errorf("admin %s: %w", seed.AdminEmail, res.Error)
	}
	report(res.RowsAffected, "admin", seed.AdminEmail)
	return nil
}

func seedTiers(tx *gorm.DB, fx fixtures) (map[int]*model.Tier, error) {
	out := make(map[int]*model.Tier, len(fx.Tiers))
	for _, t := range fx.Tiers {
		tier := &model.Tier{}
		res := tx.Where(model.Tier{Level: t.Level}).Attrs(model.Tier{
			Name:             t.Name,
			MinPoints:        t.MinPoints,
			CashbackBonusPct: t.CashbackBonusPct,
			WithdrawalLimit:  t.WithdrawalLimit,
			Benefits:         datatypes.JSONSlice[string](t.Benefits),
			Color:            t.Color,
		}).FirstOrCreate(tier)
		if res.Error != nil {
			return nil, fmt.Errorf("tier %d: %w", t.Level, res.Error)
		}
		report(res.RowsAffected, "tier", t.Name)
		out[t.Level] = tier
	}
	return out, nil
}

func seedPlayers(tx *gorm.DB, fx fixtures, tiers map[int]*model.Tier) error {
	for _, p := range fx.Players {
		attrs := model.Player{
			Email:       p.Email,
			Status:      "active",
			Country:     p.Country,
			UtmSource:   p.UtmSource,
			UtmCampaign: p.UtmCampaign,
		}
		if t, found := tiers[p.TierLevel]; found {
			attrs.TierId = &t.Id
		}
		player := &model.Player{}
		res := tx.Where(model.Player{Username: p.Username}).Attrs(attrs).FirstOrCreate(player)
		if res.Error != nil {
			return fmt.Errorf("player %s: %w", p.Username, res.Error)
		}
		report(res.RowsAffected, "player", p.Username)
	}
	return nil
}

func report(created int64, kind, name string) {
	if created > 0 {
		ok("  created %-7s %s\n", kind, name)
		return
	}
	skip("  exists  %-7s %s\n", kind, name)
}
