package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/dto"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/models"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/services"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/storage"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/utils"
)

type PlayerController struct {
	Resource[models.Player]
}

func NewPlayerController(db *gorm.DB, store storage.Uploader, cache *services.ListCache) *PlayerController {
	pc := &PlayerController{}
	pc.Resource = Resource[models.Player]{
		DB:    db,
		Store: store,
		Cache: cache,
		Name:  "player",
		Label: "Player",
		Scope: func(q *gorm.DB) *gorm.DB { return q.Order("id asc") },
		Bind:  pc.bind,
	}
	return pc
}

func (p *PlayerController) bind(c *gin.Context, files *FileFields, m *models.Player, update bool) error {
	if !update {
		var req dto.CreatePlayerReq
		if err := c.ShouldBind(&req); err != nil {
			return invalid(err)
		}

		m.Name = req.Name
		m.JerseyNo = req.JerseyNo
		m.Role = models.PlayerRole(req.Role)
		if req.SubRole != "" {
			m.SubRole = models.PlayerSubRole(req.SubRole)
		} else {
			m.SubRole = models.SubRolePlayer
		}
		m.Age = req.Age
		m.Matches = req.Matches
		m.Runs = req.Runs
		m.Wickets = req.Wickets
		m.BestScore = req.BestScore
		m.MonthlyStats = datatypes.NewJSONType([]models.MonthlyStat{})

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

	var req dto.UpdatePlayerReq
	if err := c.ShouldBind(&req); err != nil {
		return invalid(err)
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.JerseyNo != nil {
		m.JerseyNo = *req.JerseyNo
	}
	if req.Role != nil {
		m.Role = models.PlayerRole(*req.Role)
	}
	if req.SubRole != nil {
		m.SubRole = models.PlayerSubRole(*req.SubRole)
	}
	if req.Age != nil {
		m.Age = *req.Age
	}
	if req.Matches != nil {
		m.Matches = *req.Matches
	}
	if req.Runs != nil {
		m.Runs = *req.Runs
	}
	if req.Wickets != nil {
		m.Wickets = *req.Wickets
	}
	if req.BestScore != nil {
		m.BestScore = *req.BestScore
	}

	if image, ok, err := files.URL("image"); err != nil {
		return err
	} else if ok {
		m.Image = image
	}
	return nil
}

// AddStats merges a (runs, wickets) delta into the player's snapshot for the
// current month and adds it to the career totals. Two deltas inside one
// month accumulate in a single snapshot entry.
func (p *PlayerController) AddStats(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, http.StatusNotFound, "Player not found", nil)
		return
	}

	var req dto.StatsDeltaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid stats payload", err)
		return
	}

	var player models.Player
	if err := p.DB.First(&player, id).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, "Player not found", err)
		return
	}

	month := services.MonthKey(time.Now())
	merged := services.MergeMonthlyStat(player.MonthlyStats.Data(), month, req.Runs, req.Wickets)
	player.MonthlyStats = datatypes.NewJSONType(merged)
	player.Runs += req.Runs
	player.Wickets += req.Wickets

	if err := p.DB.Save(&player).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Failed to update player stats", err)
		return
	}

	p.Cache.Invalidate(c.Request.Context(), p.listKey())
	utils.Envelope(c, http.StatusOK, "Player stats updated successfully", "player", player)
}
