package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/dto"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/models"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/services"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/storage"
)

type CarouselController struct {
	Resource[models.CarouselItem]
}

func NewCarouselController(db *gorm.DB, store storage.Uploader, cache *services.ListCache) *CarouselController {
	cc := &CarouselController{}
	cc.Resource = Resource[models.CarouselItem]{
		DB:    db,
		Store: store,
		Cache: cache,
		Name:  "carousel",
		Label: "Carousel item",
		// Display is capped to the 4 newest regardless of table size.
		Scope: func(q *gorm.DB) *gorm.DB { return q.Order("created_at desc, id desc").Limit(4) },
		Bind:  cc.bind,
	}
	return cc
}

func (cc *CarouselController) bind(c *gin.Context, files *FileFields, m *models.CarouselItem, update bool) error {
	if !update {
		var req dto.CreateCarouselReq
		if err := c.ShouldBind(&req); err != nil {
			return invalid(err)
		}
		m.Caption = req.Caption

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

	var req dto.UpdateCarouselReq
	if err := c.ShouldBind(&req); err != nil {
		return invalid(err)
	}
	if req.Caption != nil {
		m.Caption = *req.Caption
	}

	if image, ok, err := files.URL("image"); err != nil {
		return err
	} else if ok {
		m.Image = image
	}
	return nil
}
