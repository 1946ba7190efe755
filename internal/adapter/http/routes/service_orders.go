package routes

import (
	"ponto_eletronica/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing      = "/ping"
	PathDashboard = "/dashboard"
	PathOrders    = "/orders"
	PathDrafts    = "/drafts"
)

func addPingRoutes(rg *gin.RouterGroup, h *handlers.PingHandler) {
	rg.GET(PathPing, h.Ping)
}

func addServiceOrderRoutes(rg *gin.RouterGroup, h *handlers.ServiceOrderHandler) {
	rg.GET(PathDashboard, h.GetDashboard)

	orders := rg.Group(PathOrders)
	{
		orders.GET("", h.ListServiceOrders)
		orders.GET("/:id", h.GetServiceOrder)
		orders.DELETE("/:id", h.DeleteServiceOrder)
		orders.GET("/:id/document", h.DownloadDocument)
	}
}

func addDraftRoutes(rg *gin.RouterGroup, h *handlers.DraftHandler) {
	drafts := rg.Group(PathDrafts)
	{
		drafts.POST("", h.OpenDraft)
		drafts.GET("/:id", h.GetDraft)
		drafts.PATCH("/:id", h.UpdateDraft)
		drafts.DELETE("/:id", h.CancelDraft)
		drafts.POST("/:id/images", h.AttachImages)
		drafts.DELETE("/:id/images/:index", h.RemoveImage)
		drafts.POST("/:id/submit", h.SubmitDraft)
	}
}
