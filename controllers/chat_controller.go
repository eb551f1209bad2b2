package controllers

import (
	"net/http"

	"hotel-website/services"
	"hotel-website/utils"

	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

type ChatController struct {
	svc *services.ChatService
}

func NewChatController(svc *services.ChatService) *ChatController {
	return &ChatController{svc: svc}
}

// Greeting serves the widget's opening bubble.
func (cc *ChatController) Greeting(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{"greeting": cc.svc.Greeting()})
}

// Reply answers a visitor message with the scripted response.
func (cc *ChatController) Reply(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "message is required")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"reply": cc.svc.Reply(req.Message)})
}
