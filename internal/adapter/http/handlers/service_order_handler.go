package handlers

import (
	"errors"
	"mime"
	"net/http"

	request "ponto_eletronica/internal/adapter/http/dto/request"
	response "ponto_eletronica/internal/adapter/http/dto/response"
	"ponto_eletronica/internal/usecase"
	"ponto_eletronica/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ServiceOrderHandler serves the stored collection: lists, dashboard, delete
// and the printable document.
type ServiceOrderHandler struct {
	usecase  usecase.IServiceOrderUseCase
	renderer interfaces.IDocumentRenderer
	log      logrus.FieldLogger
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase, renderer interfaces.IDocumentRenderer, log logrus.FieldLogger) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc, renderer: renderer, log: log.WithField("component", "http")}
}

// ListServiceOrders godoc
// @Summary      List service orders
// @Description  Filtered by view (orders, budgets, history), status and a search term matched against name, brand and id. Most recent first.
// @Tags         orders
// @Produce      json
// @Param        view    query  string  false  "orders | budgets | history"
// @Param        status  query  string  false  "Pendente | Concluído | Desistência | Orçamento | all"
// @Param        q       query  string  false  "search term"
// @Success      200  {object}  response.ServiceOrderListResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /orders [get]
func (h *ServiceOrderHandler) ListServiceOrders(c *gin.Context) {
	var params request.ListServiceOrdersQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	q, err := params.ToQuery()
	switch {
	case errors.Is(err, request.ErrUnknownStatus):
		writeAppError(c, errInvalidStatus)
		return
	case err != nil:
		writeAppError(c, errInvalidView)
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrderList(h.usecase.List(c.Request.Context(), q)))
}

// GetServiceOrder godoc
// @Summary  Get a service order
// @Tags     orders
// @Produce  json
// @Param    id   path      string  true  "service order id"
// @Success  200  {object}  response.ServiceOrderResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /orders/{id} [get]
func (h *ServiceOrderHandler) GetServiceOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// DeleteServiceOrder godoc
// @Summary      Delete a service order
// @Description  Requires confirm=true. Without it nothing is deleted and 428 is returned.
// @Tags         orders
// @Param        id       path   string  true   "service order id"
// @Param        confirm  query  bool    false  "explicit confirmation"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      428  {object}  pkg.HTTPError
// @Router       /orders/{id} [delete]
func (h *ServiceOrderHandler) DeleteServiceOrder(c *gin.Context) {
	var params request.DeleteServiceOrderQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id, params.Confirm); err != nil {
		writeError(c, err)
		return
	}
	flagStorage(c, h.usecase)
	c.Status(http.StatusNoContent)
}

// DownloadDocument godoc
// @Summary  Download the printable PDF of a service order or quote
// @Tags     orders
// @Produce  application/pdf
// @Param    id   path  string  true  "service order id"
// @Success  200  {file}    binary
// @Failure  404  {object}  pkg.HTTPError
// @Failure  500  {object}  pkg.HTTPError
// @Router   /orders/{id}/document [get]
func (h *ServiceOrderHandler) DownloadDocument(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	name, content, err := h.renderer.Render(order)
	if err != nil {
		h.log.WithError(err).WithField("order_id", order.ID).Error("document download failed")
		writeAppError(c, errDocumentFailed)
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	c.Data(http.StatusOK, "application/pdf", content)
}

// GetDashboard godoc
// @Summary  Dashboard counters and the five most recent records
// @Tags     dashboard
// @Produce  json
// @Success  200  {object}  response.DashboardResponse
// @Router   /dashboard [get]
func (h *ServiceOrderHandler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromDashboard(h.usecase.Dashboard(c.Request.Context())))
}
