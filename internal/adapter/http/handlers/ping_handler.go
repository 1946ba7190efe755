package handlers

import (
	"net/http"

	response "ponto_eletronica/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

// StorageHealth reports the outcome of the latest slot write.
type StorageHealth interface {
	LastSaveError() error
}

type PingHandler struct {
	storage StorageHealth
}

func NewPingHandler(storage StorageHealth) *PingHandler {
	return &PingHandler{storage: storage}
}

// Ping godoc
// @Summary  Liveness and storage status
// @Tags     health
// @Produce  json
// @Success  200  {object}  response.PingResponse
// @Router   /ping [get]
func (h *PingHandler) Ping(c *gin.Context) {
	resp := response.PingResponse{Message: "pong", Storage: "ok"}
	if err := h.storage.LastSaveError(); err != nil {
		resp.Storage = "degraded"
		resp.StorageError = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}
