package models

import (
	"time"
)

// CarouselItem display is capped to the 4 most recent by timestamp;
// older records stay in the table but are never listed.
type CarouselItem struct {
	ID        uint32    `gorm:"primarykey" json:"id"`
	Image     string    `gorm:"size:2048;not null" json:"image"`
	Caption   string    `gorm:"size:255" json:"caption"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CarouselItem) TableName() string {
	return "bcc_carousel"
}
