package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/dto"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/models"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/services"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/storage"
)

type GalleryController struct {
	Resource[models.GalleryItem]
}

func NewGalleryController(db *gorm.DB, store storage.Uploader, cache *services.ListCache) *GalleryController {
	gc := &GalleryController{}
	gc.Resource = Resource[models.GalleryItem]{
		DB:    db,
		Store: store,
		Cache: cache,
		Name:  "gallery",
		Label: "Gallery item",
		Scope: func(q *gorm.DB) *gorm.DB { return q.Order("created_at desc") },
		Bind:  gc.bind,
	}
	return gc
}

func (g *GalleryController) bind(c *gin.Context, files *FileFields, m *models.GalleryItem, update bool) error {
	if !update {
		var req dto.CreateGalleryReq
		if err := c.ShouldBind(&req); err != nil {
			return invalid(err)
		}
		m.Caption = req.Caption

		thumb, ok, err := files.URL("thumbnail")
		if err != nil {
			return err
		}
		if !ok {
			return invalidf("thumbnail file is required")
		}
		m.Thumbnail = thumb

		images, err := files.URLs("images")
		if err != nil {
			return err
		}
		if images == nil {
			images = []string{}
		}
		m.Images = datatypes.NewJSONType(images)
		return nil
	}

	var req dto.UpdateGalleryReq
	if err := c.ShouldBind(&req); err != nil {
		return invalid(err)
	}
	if req.Caption != nil {
		m.Caption = *req.Caption
	}

	if thumb, ok, err := files.URL("thumbnail"); err != nil {
		return err
	} else if ok {
		m.Thumbnail = thumb
	}

	// New image parts extend the existing list.
	images, err := files.URLs("images")
	if err != nil {
		return err
	}
	if len(images) > 0 {
		m.Images = datatypes.NewJSONType(append(m.Images.Data(), images...))
	}
	return nil
}
