package controllers

import (
	"context"
	"errors"

	"city-portal/config"
	"city-portal/libs"
	"city-portal/middleware"
	"city-portal/models"

	"github.com/gin-gonic/gin"
)

// ProfileManager is the profile accessor the controller talks to.
type ProfileManager interface {
	Fetch(ctx context.Context, session *models.Session) (*models.Profile, error)
	Update(ctx context.Context, session *models.Session, req models.UpdateProfileRequest) (*models.Profile, error)
	DeleteAvatar(ctx context.Context, session *models.Session) (*models.Profile, error)
	DeleteCover(ctx context.Context, session *models.Session) (*models.Profile, error)
}

type ProfileController struct {
	profiles     ProfileManager
	uploadFolder string
}

func NewProfileController(profiles ProfileManager) *ProfileController {
	uploadFolder := "./uploads"
	if config.AppConfig != nil {
		uploadFolder = config.AppConfig.UploadDir
	}
	return &ProfileController{profiles: profiles, uploadFolder: uploadFolder}
}

// @Summary Get profile
// @Description Get the authenticated identity's profile
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /perfil [get]
func (ctrl *ProfileController) GetProfile(c *gin.Context) {
	profile, err := ctrl.profiles.Fetch(c.Request.Context(), middleware.SessionFromContext(c))
	if err != nil {
		ctrl.renderProfileError(c, err, "Failed to retrieve profile", 502)
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Profile retrieved successfully",
		Data:    profile,
	})
}

// @Summary Update profile
// @Description Partially update the authenticated identity's profile; only submitted fields change
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Changed fields"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /perfil [patch]
func (ctrl *ProfileController) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Invalid request data",
			Error:   err.Error(),
		})
		return
	}

	profile, err := ctrl.profiles.Update(c.Request.Context(), middleware.SessionFromContext(c), req)
	if err != nil {
		ctrl.renderProfileError(c, err, "Failed to update profile", 500)
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Profile updated successfully",
		Data:    profile,
	})
}

// @Summary Delete avatar
// @Description Clear the avatar URL on the authenticated identity's profile
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /perfil/avatar [delete]
func (ctrl *ProfileController) DeleteAvatar(c *gin.Context) {
	profile, err := ctrl.profiles.DeleteAvatar(c.Request.Context(), middleware.SessionFromContext(c))
	if err != nil {
		ctrl.renderProfileError(c, err, "Failed to delete avatar", 500)
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Avatar removed successfully",
		Data:    profile,
	})
}

// @Summary Delete cover
// @Description Clear the cover URL on the authenticated identity's profile
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /perfil/cover [delete]
func (ctrl *ProfileController) DeleteCover(c *gin.Context) {
	profile, err := ctrl.profiles.DeleteCover(c.Request.Context(), middleware.SessionFromContext(c))
	if err != nil {
		ctrl.renderProfileError(c, err, "Failed to delete cover", 500)
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Cover removed successfully",
		Data:    profile,
	})
}

// @Summary Upload profile photo
// @Description Upload an avatar or cover image to Cloudinary and commit its URL to the profile
// @Tags Profile
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Image file"
// @Param target formData string false "avatar or cover" default(avatar)
// @Success 200 {object} models.Response
// @Router /perfil/photo [post]
func (ctrl *ProfileController) UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil || file == nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Photo file is required",
		})
		return
	}

	target := c.DefaultPostForm("target", "avatar")
	if target != "avatar" && target != "cover" {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Target must be avatar or cover",
		})
		return
	}

	var maxSize int64 = 5242880
	if config.AppConfig != nil {
		maxSize = config.AppConfig.MaxUploadSize
	}

	localPath, err := libs.SaveUploadedImage(c, file, ctrl.uploadFolder, maxSize)
	if err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	photoURL, err := libs.UploadToCloudinary(localPath, "profiles")
	if err != nil {
		c.JSON(500, models.ErrorResponse{
			Success: false,
			Message: "Failed to upload photo",
			Error:   err.Error(),
		})
		return
	}

	req := models.UpdateProfileRequest{}
	if target == "avatar" {
		req.AvatarURL = &photoURL
	} else {
		req.CoverURL = &photoURL
	}

	profile, err := ctrl.profiles.Update(c.Request.Context(), middleware.SessionFromContext(c), req)
	if err != nil {
		ctrl.renderProfileError(c, err, "Failed to update profile", 500)
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Photo uploaded successfully",
		Data: gin.H{
			"photo_url": photoURL,
			"profile":   profile,
		},
	})
}

func (ctrl *ProfileController) renderProfileError(c *gin.Context, err error, message string, fallback int) {
	switch {
	case errors.Is(err, models.ErrNotAuthenticated):
		c.JSON(401, models.ErrorResponse{
			Success: false,
			Message: "Unauthorized",
		})
	case errors.Is(err, models.ErrProfileNotFound):
		c.JSON(404, models.ErrorResponse{
			Success: false,
			Message: "Profile not found",
		})
	default:
		c.JSON(fallback, models.ErrorResponse{
			Success: false,
			Message: message,
			Error:   err.Error(),
		})
	}
}
