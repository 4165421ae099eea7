package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/dto"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/models"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/services"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/storage"
)

// ContactController accepts public submissions and lists them for the admin
// inbox. There is no update route and no files are involved.
type ContactController struct {
	Resource[models.ContactMessage]
}

func NewContactController(db *gorm.DB, store storage.Uploader, cache *services.ListCache) *ContactController {
	cc := &ContactController{}
	cc.Resource = Resource[models.ContactMessage]{
		DB:    db,
		Store: store,
		Cache: cache,
		Name:  "contact",
		Label: "Contact message",
		Scope: func(q *gorm.DB) *gorm.DB { return q.Order("created_at desc") },
		Bind:  cc.bind,
	}
	return cc
}

func (cc *ContactController) bind(c *gin.Context, _ *FileFields, m *models.ContactMessage, update bool) error {
	var req dto.ContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return invalid(err)
	}

	m.Name = req.Name
	m.Mobile = req.Mobile
	m.Email = req.Email
	m.Message = req.Message
	return nil
}
