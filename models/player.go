package models

import (
	"time"

	"gorm.io/datatypes"
)

type PlayerRole string
type PlayerSubRole string

const (
	RoleBatsman      PlayerRole = "Batsman"
	RoleBowler       PlayerRole = "Bowler"
	RoleAllRounder   PlayerRole = "All-rounder"
	RoleWicketkeeper PlayerRole = "Wicketkeeper"

	SubRoleCaptain      PlayerSubRole = "Captain"
	SubRoleViceCaptain  PlayerSubRole = "Vice-Captain"
	SubRoleWicketkeeper PlayerSubRole = "Wicketkeeper"
	SubRolePlayer       PlayerSubRole = "Player"
)

// MonthlyStat is one per-month snapshot in a player's stats list.
// The list holds at most one entry per month key.
type MonthlyStat struct {
	Month   string `json:"month"` // "2006-01"
	Runs    int    `json:"runs"`
	Wickets int    `json:"wickets"`
}

type Player struct {
	ID           uint32                            `gorm:"primarykey" json:"id"`
	Name         string                            `gorm:"size:100;not null" json:"name"`
	JerseyNo     int                               `gorm:"not null" json:"jerseyNo"`
	Role         PlayerRole                        `gorm:"size:20;not null" json:"role"`
	SubRole      PlayerSubRole                     `gorm:"size:20;default:'Player'" json:"subRole"`
	Age          int                               `json:"age"`
	Image        string                            `gorm:"size:2048" json:"image"`
	Matches      int                               `gorm:"default:0" json:"matches"`
	Runs         int                               `gorm:"default:0" json:"runs"`
	Wickets      int                               `gorm:"default:0" json:"wickets"`
	BestScore    string                            `gorm:"size:20" json:"bestScore"`
	MonthlyStats datatypes.JSONType[[]MonthlyStat] `json:"monthlyStats"`
	CreatedAt    time.Time                         `json:"created_at"`
	UpdatedAt    time.Time                         `json:"updated_at"`
}

func (Player) TableName() string {
	return "bcc_player"
}
