package models

import (
	"time"

	"gorm.io/datatypes"
)

type GalleryItem struct {
	ID        uint32                       `gorm:"primarykey" json:"id"`
	Thumbnail string                       `gorm:"size:2048;not null" json:"thumbnail"`
	Caption   string                       `gorm:"size:255" json:"caption"`
	Images    datatypes.JSONType[[]string] `json:"images"`
	CreatedAt time.Time                    `json:"created_at"`
	UpdatedAt time.Time                    `json:"updated_at"`
}

func (GalleryItem) TableName() string {
	return "bcc_gallery"
}
