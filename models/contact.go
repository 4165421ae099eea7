package models

import (
	"time"
)

// ContactMessage is validated at bind time; an invalid submission is
// rejected before anything reaches the table.
type ContactMessage struct {
	ID        uint32    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Mobile    string    `gorm:"size:10;not null" json:"mobile"`
	Email     string    `gorm:"size:100;not null" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ContactMessage) TableName() string {
	return "bcc_contact_message"
}
