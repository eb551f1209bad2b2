package controllers

import (
	"context"
	"net/http"

	"hotel-website/content"
	"hotel-website/models"
	"hotel-website/utils"

	"github.com/gin-gonic/gin"
)

// RoomLister is the slice of the API client the room endpoints need.
type RoomLister interface {
	ListRooms(ctx context.Context) ([]models.Room, error)
	GetRoom(ctx context.Context, id uint) (models.Room, error)
}

type RoomController struct {
	api RoomLister
}

func NewRoomController(api RoomLister) *RoomController {
	return &RoomController{api: api}
}

// GetRooms proxies the backend's room list, filtered to available rooms.
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.api.ListRooms(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	available := make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		if r.IsAvailable {
			available = append(available, r)
		}
	}
	utils.JSONSuccess(c, http.StatusOK, available)
}

// GetCatalog serves the static accommodation showcase.
func (rc *RoomController) GetCatalog(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, content.ShowcaseRooms)
}
