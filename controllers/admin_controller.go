package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Azimiwizard/App-1/entity"
	"github.com/Azimiwizard/App-1/pkg/resp"
	"github.com/Azimiwizard/App-1/services"
)

type AdminController struct {
	Dishes  *services.DishService
	Orders  *services.OrderService
	Revenue *services.RevenueService
	Auth    *services.AuthService
}

func NewAdminController(ds *services.DishService, os *services.OrderService, rs *services.RevenueService, as *services.AuthService) *AdminController {
	return &AdminController{Dishes: ds, Orders: os, Revenue: rs, Auth: as}
}

// GET /admin/dishes
func (h *AdminController) ListDishes(c *gin.Context) {
	dishes, err := h.Dishes.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, dishes)
}

// POST /admin/dishes
func (h *AdminController) CreateDish(c *gin.Context) {
	var req services.DishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dish, err := h.Dishes.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, dish)
}

// PATCH /admin/dishes/:id
func (h *AdminController) UpdateDish(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	var req services.DishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dish, err := h.Dishes.Update(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, dish)
}

// DELETE /admin/dishes/:id
func (h *AdminController) DeleteDish(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	if err := h.Dishes.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "dish deleted"})
}

// GET /admin/orders
func (h *AdminController) ListOrders(c *gin.Context) {
	orders, err := h.Orders.ListAll()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// PATCH /admin/orders/:id/status
func (h *AdminController) SetOrderStatus(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Orders.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "status updated", "status": req.Status})
}

// GET /admin/revenue
func (h *AdminController) RevenueReport(c *gin.Context) {
	report, err := h.Revenue.Report()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, report)
}

// POST /admin/promote-all
func (h *AdminController) PromoteAll(c *gin.Context) {
	var req struct {
		AdminCode string `json:"adminCode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Auth.PromoteAll(req.AdminCode); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "all users promoted to admin"})
}
