package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/dto"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/models"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/services"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/storage"
)

type NewsController struct {
	Resource[models.NewsItem]
}

func NewNewsController(db *gorm.DB, store storage.Uploader, cache *services.ListCache) *NewsController {
	nc := &NewsController{}
	nc.Resource = Resource[models.NewsItem]{
		DB:    db,
		Store: store,
		Cache: cache,
		Name:  "news",
		Label: "News item",
		Scope: func(q *gorm.DB) *gorm.DB { return q.Order("created_at desc") },
		Bind:  nc.bind,
	}
	return nc
}

func (n *NewsController) bind(c *gin.Context, files *FileFields, m *models.NewsItem, update bool) error {
	if !update {
		var req dto.CreateNewsReq
		if err := c.ShouldBind(&req); err != nil {
			return invalid(err)
		}

		m.Title = req.Title
		m.Description = req.Description

		image, ok, err := files.URL("image")
		if err != nil {
			return err
		}
		if !ok {
			return invalidf("image file is required")
		}
		m.Image = image
		return nil
	}

	var req dto.UpdateNewsReq
	if err := c.ShouldBind(&req); err != nil {
		return invalid(err)
	}

	if req.Title != nil {
		m.Title = *req.Title
	}
	if req.Description != nil {
		m.Description = *req.Description
	}

	if image, ok, err := files.URL("image"); err != nil {
		return err
	} else if ok {
		m.Image = image
	}
	return nil
}
