package models

import (
	"time"
)

// FixtureStatus transitions are not enforced; any value may follow any other.
type FixtureStatus string

const (
	FixtureUpcoming  FixtureStatus = "upcoming"
	FixtureOngoing   FixtureStatus = "ongoing"
	FixtureCompleted FixtureStatus = "completed"
)

// FixtureTeam is one side of a fixture, embedded twice per record.
type FixtureTeam struct {
	Name  string `gorm:"size:100" json:"name"`
	Logo  string `gorm:"size:2048" json:"logo"`
	Score string `gorm:"size:50" json:"score"`
}

type Fixture struct {
	ID        uint32        `gorm:"primarykey" json:"id"`
	Date      string        `gorm:"size:30;not null" json:"date"`
	MatchNo   int           `gorm:"not null" json:"matchNo"`
	Status    FixtureStatus `gorm:"size:20;not null;default:'upcoming'" json:"status"`
	TeamA     FixtureTeam   `gorm:"embedded;embeddedPrefix:team_a_" json:"teamA"`
	TeamB     FixtureTeam   `gorm:"embedded;embeddedPrefix:team_b_" json:"teamB"`
	Result    string        `gorm:"size:255" json:"result"`
	Venue     string        `gorm:"size:255" json:"venue"`
	Time      string        `gorm:"size:30" json:"time"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (Fixture) TableName() string {
	return "bcc_fixture"
}
