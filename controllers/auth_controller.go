package controllers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/dto"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/models"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/utils"
)

type AuthController struct {
	db         *gorm.DB
	adminEmail string
	tokens     *utils.TokenManager
}

func NewAuthController(db *gorm.DB, adminEmail string, tokens *utils.TokenManager) *AuthController {
	return &AuthController{db: db, adminEmail: adminEmail, tokens: tokens}
}

// Login checks the submitted pair against the operator-configured address
// and the stored hash, then issues a 1-hour session token. The distinct
// email/password messages match the behavior the dashboard relies on.
func (a *AuthController) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Email and password are required", err)
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Email), []byte(a.adminEmail)) != 1 {
		utils.Fail(c, http.StatusUnauthorized, "Invalid email", nil)
		return
	}

	var admin models.Admin
	if err := a.db.Where("email = ?", a.adminEmail).First(&admin).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Admin account not provisioned", err)
		return
	}

	if !admin.CheckPassword(req.Password) {
		utils.Fail(c, http.StatusUnauthorized, "Invalid password", nil)
		return
	}

	token, err := a.tokens.Generate(admin.Email)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
