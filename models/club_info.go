package models

import (
	"time"

	"gorm.io/datatypes"
)

// ClubInfo is append-only: the record with the newest created_at is the
// authoritative one. No uniqueness is enforced at the storage level.
type ClubInfo struct {
	ID          uint32                                `gorm:"primarykey" json:"id"`
	Name        string                                `gorm:"size:100;not null" json:"name"`
	Association string                                `gorm:"size:100" json:"association"`
	Description string                                `gorm:"type:text" json:"description"`
	Tagline     string                                `gorm:"size:255" json:"tagline"`
	Logo        string                                `gorm:"size:2048" json:"logo"`
	TeamImg     string                                `gorm:"size:2048" json:"teamImg"`
	Email       string                                `gorm:"size:100" json:"email"`
	Phone       string                                `gorm:"size:20" json:"phone"`
	SocialLinks datatypes.JSONType[map[string]string] `json:"socialLinks"`
	CreatedAt   time.Time                             `json:"created_at"`
	UpdatedAt   time.Time                             `json:"updated_at"`
}

func (ClubInfo) TableName() string {
	return "bcc_club_info"
}
