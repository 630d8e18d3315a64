package controllers

import (
	"context"
	"strings"
	"time"

	"city-portal/models"

	"github.com/gin-gonic/gin"
)

// Authenticator is the slice of the hosted auth service the controller
// proxies to.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	SignOut(ctx context.Context, token string) error
}

type AuthController struct {
	auth Authenticator
}

func NewAuthController(auth Authenticator) *AuthController {
	return &AuthController{auth: auth}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// @Summary Login
// @Description Exchange credentials for a session at the hosted auth service
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	session, err := ctrl.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(401, models.ErrorResponse{
			Success: false,
			Message: "Invalid credentials",
		})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Login successful",
		Data: models.LoginResponse{
			Token:     session.AccessToken,
			Session:   session,
			ExpiresIn: int64(time.Until(session.ExpiresAt).Seconds()),
		},
	})
}

// @Summary Logout
// @Description Revoke the session at the hosted auth service
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	token := ""
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.Split(header, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			token = parts[1]
		}
	}

	if err := ctrl.auth.SignOut(c.Request.Context(), token); err != nil {
		c.JSON(502, models.ErrorResponse{
			Success: false,
			Message: "Failed to sign out",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Logged out successfully",
	})
}
