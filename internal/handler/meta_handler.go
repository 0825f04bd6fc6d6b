package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type MessageResponse struct {
	Message string `json:"message" example:"Motivational Sentence Generator API is running"`
}

// Home godoc
// @Summary      서비스 상태 메시지
// @Tags         Meta
// @Produce      json
// @Success      200 {object} handler.MessageResponse
// @Router       / [get]
func Home(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Motivational Sentence Generator API is running"})
}

// Healthz godoc
// @Summary      헬스 체크
// @Tags         Meta
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /healthz [get]
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
