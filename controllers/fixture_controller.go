package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/dto"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/models"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/services"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/storage"
)

type FixtureController struct {
	Resource[models.Fixture]
}

func NewFixtureController(db *gorm.DB, store storage.Uploader, cache *services.ListCache) *FixtureController {
	fc := &FixtureController{}
	fc.Resource = Resource[models.Fixture]{
		DB:    db,
		Store: store,
		Cache: cache,
		Name:  "fixture",
		Label: "Fixture",
		// Reverse insertion order for display.
		Scope: func(q *gorm.DB) *gorm.DB { return q.Order("id desc") },
		Bind:  fc.bind,
	}
	return fc
}

func (f *FixtureController) bind(c *gin.Context, files *FileFields, m *models.Fixture, update bool) error {
	if !update {
		var req dto.CreateFixtureReq
		if err := c.ShouldBind(&req); err != nil {
			return invalid(err)
		}

		m.Date = req.Date
		m.MatchNo = req.MatchNo
		if req.Status != "" {
			m.Status = models.FixtureStatus(req.Status)
		} else {
			m.Status = models.FixtureUpcoming
		}
		m.TeamA.Name = req.TeamAName
		m.TeamA.Score = req.TeamAScore
		m.TeamB.Name = req.TeamBName
		m.TeamB.Score = req.TeamBScore
		m.Result = req.Result
		m.Venue = req.Venue
		m.Time = req.Time

		// Both logos must be stored before the record is persisted; their
		// relative upload order carries no meaning.
		logoA, ok, err := files.URL("teamALogo")
		if err != nil {
			return err
		}
		if !ok {
			return invalidf("teamALogo file is required")
		}
		m.TeamA.Logo = logoA

		logoB, ok, err := files.URL("teamBLogo")
		if err != nil {
			return err
		}
		if !ok {
			return invalidf("teamBLogo file is required")
		}
		m.TeamB.Logo = logoB
		return nil
	}

	var req dto.UpdateFixtureReq
	if err := c.ShouldBind(&req); err != nil {
		return invalid(err)
	}

	if req.Date != nil {
		m.Date = *req.Date
	}
	if req.MatchNo != nil {
		m.MatchNo = *req.MatchNo
	}
	if req.Status != nil {
		m.Status = models.FixtureStatus(*req.Status)
	}
	if req.TeamAName != nil {
		m.TeamA.Name = *req.TeamAName
	}
	if req.TeamAScore != nil {
		m.TeamA.Score = *req.TeamAScore
	}
	if req.TeamBName != nil {
		m.TeamB.Name = *req.TeamBName
	}
	if req.TeamBScore != nil {
		m.TeamB.Score = *req.TeamBScore
	}
	if req.Result != nil {
		m.Result = *req.Result
	}
	if req.Venue != nil {
		m.Venue = *req.Venue
	}
	if req.Time != nil {
		m.Time = *req.Time
	}

	if logoA, ok, err := files.URL("teamALogo"); err != nil {
		return err
	} else if ok {
		m.TeamA.Logo = logoA
	}
	if logoB, ok, err := files.URL("teamBLogo"); err != nil {
		return err
	} else if ok {
		m.TeamB.Logo = logoB
	}
	return nil
}
