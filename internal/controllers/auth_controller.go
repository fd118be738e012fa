package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"trucker_profit/internal/config"
	"trucker_profit/internal/middleware"
	"trucker_profit/internal/models"
)

type loginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// LoginUser authenticates either the owner (environment-configured
// credentials, user id 0) or a driver (database row looked up by email) and
// issues a role-scoped JWT.
func LoginUser(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identifier := strings.TrimSpace(input.Identifier)

	// Owner login
	if identifier == config.AdminUsername {
		if err := bcrypt.CompareHashAndPassword([]byte(config.AdminPasswordHash), []byte(input.Password)); err != nil {
			logrus.WithField("ip", c.ClientIP()).Warn("Failed owner login attempt")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		token, err := middleware.GenerateToken(0, models.RoleOwner)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
			return
		}

		logrus.Info("Owner logged in")
		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"user":  gin.H{"name": "Owner", "role": models.RoleOwner},
		})
		return
	}

	// Driver login by email
	email := strings.ToLower(identifier)
	var driver models.Driver
	if err := config.DB.Where("email = ?", email).First(&driver).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(driver.PasswordHash), []byte(input.Password)); err != nil {
		logrus.WithFields(logrus.Fields{"email": email, "ip": c.ClientIP()}).Warn("Failed driver login attempt")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := middleware.GenerateToken(driver.ID, models.RoleDriver)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	logrus.WithField("email", email).Info("Driver logged in")
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    driver.ID,
			"name":  driver.Name,
			"email": driver.Email,
			"role":  models.RoleDriver,
		},
	})
}
