package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/Azimiwizard/App-1/pkg/resp"
	"github.com/Azimiwizard/App-1/services"
	"github.com/Azimiwizard/App-1/utils"
)

type OrderController struct {
	Svc     *services.OrderService
	BaseURL string
}

func NewOrderController(s *services.OrderService, baseURL string) *OrderController {
	return &OrderController{Svc: s, BaseURL: baseURL}
}

// GET /orders
func (h *OrderController) ListMine(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	orders, err := h.Svc.ListForUser(ident.UserID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.Svc.Detail(id, ident.UserID, ident.IsAdmin)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders/:id/qr — PNG QR code pointing at the order's status page,
// for printing on receipts.
func (h *OrderController) QR(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	if _, err := h.Svc.Detail(id, ident.UserID, ident.IsAdmin); err != nil {
		resp.Error(c, err)
		return
	}

	png, err := qrcode.Encode(fmt.Sprintf("%s/orders/%d", h.BaseURL, id), qrcode.Medium, 256)
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
