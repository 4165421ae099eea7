package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/dto"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/models"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/services"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/storage"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/utils"
)

type InfoController struct {
	Resource[models.ClubInfo]
}

func NewInfoController(db *gorm.DB, store storage.Uploader, cache *services.ListCache) *InfoController {
	ic := &InfoController{}
	ic.Resource = Resource[models.ClubInfo]{
		DB:    db,
		Store: store,
		Cache: cache,
		Name:  "info",
		Label: "Club info",
		Scope: func(q *gorm.DB) *gorm.DB { return q.Order("created_at desc") },
		Bind:  ic.bind,
	}
	return ic
}

// Latest returns the authoritative record: newest created_at wins.
func (i *InfoController) Latest(c *gin.Context) {
	var info models.ClubInfo
	if err := i.DB.Order("created_at desc").First(&info).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, "Club info not found", err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (i *InfoController) bind(c *gin.Context, files *FileFields, m *models.ClubInfo, update bool) error {
	if !update {
		var req dto.CreateInfoReq
		if err := c.ShouldBind(&req); err != nil {
			return invalid(err)
		}

		m.Name = req.Name
		m.Association = req.Association
		m.Description = req.Description
		m.Tagline = req.Tagline
		m.Email = req.Email
		m.Phone = req.Phone

		links, err := parseSocialLinks(req.SocialLinks)
		if err != nil {
			return err
		}
		m.SocialLinks = datatypes.NewJSONType(links)

		logo, ok, err := files.URL("logo")
		if err != nil {
			return err
		}
		if !ok {
			return invalidf("logo file is required")
		}
		m.Logo = logo

		teamImg, ok, err := files.URL("teamImg")
		if err != nil {
			return err
		}
		if !ok {
			return invalidf("teamImg file is required")
		}
		m.TeamImg = teamImg
		return nil
	}

	var req dto.UpdateInfoReq
	if err := c.ShouldBind(&req); err != nil {
		return invalid(err)
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Association != nil {
		m.Association = *req.Association
	}
	if req.Description != nil {
		m.Description = *req.Description
	}
	if req.Tagline != nil {
		m.Tagline = *req.Tagline
	}
	if req.Email != nil {
		m.Email = *req.Email
	}
	if req.Phone != nil {
		m.Phone = *req.Phone
	}
	if req.SocialLinks != nil {
		links, err := parseSocialLinks(*req.SocialLinks)
		if err != nil {
			return err
		}
		m.SocialLinks = datatypes.NewJSONType(links)
	}

	if logo, ok, err := files.URL("logo"); err != nil {
		return err
	} else if ok {
		m.Logo = logo
	}
	if teamImg, ok, err := files.URL("teamImg"); err != nil {
		return err
	} else if ok {
		m.TeamImg = teamImg
	}
	return nil
}

func parseSocialLinks(raw string) (map[string]string, error) {
	links := map[string]string{}
	if raw == "" {
		return links, nil
	}
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		return nil, invalid(err)
	}
	return links, nil
}
