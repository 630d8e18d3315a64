package controllers

import (
	"city-portal/models"
	"city-portal/nav"
	"city-portal/session"

	"github.com/gin-gonic/gin"
)

type NavController struct {
	sessions *session.Provider
	colors   nav.Colors
}

func NewNavController(sessions *session.Provider, colors nav.Colors) *NavController {
	return &NavController{sessions: sessions, colors: colors}
}

// @Summary Navigation state
// @Description Compute the bottom navigation links for the current path and session presence
// @Tags Navigation
// @Produce json
// @Param path query string false "Current route" default(/)
// @Success 200 {object} models.Response
// @Router /nav [get]
func (ctrl *NavController) GetNav(c *gin.Context) {
	path := c.DefaultQuery("path", nav.HomeTarget)
	hasSession := ctrl.sessions.Current() != nil

	c.JSON(200, models.Response{
		Success: true,
		Message: "Navigation computed",
		Data: gin.H{
			"links":          nav.Links(path, hasSession, ctrl.colors),
			"profile_target": nav.ProfileLinkTarget(hasSession),
		},
	})
}
