package controllers

import (
	"context"

	"city-portal/models"

	"github.com/gin-gonic/gin"
)

// PlaceLister is the places accessor the controller talks to.
type PlaceLister interface {
	List(ctx context.Context) ([]models.Place, error)
}

type PlaceController struct {
	places PlaceLister
}

func NewPlaceController(places PlaceLister) *PlaceController {
	return &PlaceController{places: places}
}

// @Summary List places
// @Description Get every place in the directory, ascending by name. Optional contact fields are omitted when empty.
// @Tags Places
// @Produce json
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /lugares [get]
func (ctrl *PlaceController) GetAllPlaces(c *gin.Context) {
	places, err := ctrl.places.List(c.Request.Context())
	if err != nil {
		c.JSON(502, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve places",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Places retrieved successfully",
		Data:    places,
	})
}
