package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Azimiwizard/App-1/pkg/resp"
	"github.com/Azimiwizard/App-1/services"
	"github.com/Azimiwizard/App-1/utils"
)

type CartController struct {
	Svc      *services.CartService
	Checkout *services.CheckoutService
}

func NewCartController(s *services.CartService, co *services.CheckoutService) *CartController {
	return &CartController{Svc: s, Checkout: co}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	view, err := h.Svc.Get(c.Request.Context(), ident.UserID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /cart/add/:dishId
func (h *CartController) Add(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	dishID, err := paramID(c, "dishId")
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	// Body is optional; an empty POST adds one.
	_ = c.ShouldBindJSON(&req)

	if err := h.Svc.Add(ident.UserID, dishID, req.Quantity); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "added to cart"})
}

// POST /cart/update/:itemId
func (h *CartController) Update(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	itemID, err := paramID(c, "itemId")
	if err != nil {
		resp.BadRequest(c, "invalid cart item id")
		return
	}
	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQty(ident.UserID, itemID, req.Quantity); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "cart updated"})
}

// POST /cart/remove/:itemId
func (h *CartController) Remove(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	itemID, err := paramID(c, "itemId")
	if err != nil {
		resp.BadRequest(c, "invalid cart item id")
		return
	}
	if err := h.Svc.Remove(ident.UserID, itemID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "item removed"})
}

// POST /cart/redeem
func (h *CartController) Redeem(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	view, err := h.Svc.FlagRedemption(c.Request.Context(), ident.UserID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// DELETE /cart/redeem
func (h *CartController) CancelRedeem(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	if err := h.Svc.CancelRedemption(c.Request.Context(), ident.UserID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "redemption cancelled"})
}

// POST /checkout
func (h *CartController) DoCheckout(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	order, err := h.Checkout.Checkout(c.Request.Context(), ident.UserID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}
